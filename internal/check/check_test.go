package check_test

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirkon/go-enum2map/internal/check"
)

func TestDiff(t *testing.T) {
	color.NoColor = true

	t.Run("equal", func(t *testing.T) {
		var buf bytes.Buffer
		differ, err := check.Diff(&buf, "style.go", []byte("a\nb\n"), []byte("a\nb\n"))
		require.NoError(t, err)
		assert.False(t, differ)
		assert.Empty(t, buf.String())
	})

	t.Run("changed", func(t *testing.T) {
		var buf bytes.Buffer
		differ, err := check.Diff(
			&buf,
			"style.go",
			[]byte("package style\n\nfunc old() {}\n"),
			[]byte("package style\n\nfunc new() {}\nfunc more() {}\n"),
		)
		require.NoError(t, err)
		assert.True(t, differ)
		assert.Equal(
			t,
			"--- style.go\n+++ style.go (generated)\n-func old() {}\n+func new() {}\n+func more() {}\n",
			buf.String(),
		)
	})

	t.Run("missing file", func(t *testing.T) {
		var buf bytes.Buffer
		differ, err := check.Diff(&buf, "style.go", nil, []byte("package style\n"))
		require.NoError(t, err)
		assert.True(t, differ)
		assert.Contains(t, buf.String(), "+package style\n")
	})
}
