// Package check reports differences between the generated source and what is on disk.
package check

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff writes line diff of the current file content against the expected one. Returns true if they differ.
func Diff(w io.Writer, name string, current, expected []byte) (bool, error) {
	if bytes.Equal(current, expected) {
		return false, nil
	}

	diffCfg := diffpatch.New()
	a, b, lines := diffCfg.DiffLinesToChars(string(current), string(expected))
	diffs := diffCfg.DiffCharsToLines(diffCfg.DiffMain(a, b, false), lines)

	if _, err := fmt.Fprintf(w, "%s\n%s\n", color.RedString("--- %s", name), color.GreenString("+++ %s (generated)", name)); err != nil {
		return true, err
	}
	for _, diff := range diffs {
		var prefix string
		var paint func(format string, a ...interface{}) string
		switch diff.Type {
		case diffpatch.DiffInsert:
			prefix = "+"
			paint = color.GreenString
		case diffpatch.DiffDelete:
			prefix = "-"
			paint = color.RedString
		default:
			continue
		}
		for _, line := range strings.SplitAfter(diff.Text, "\n") {
			if line == "" {
				continue
			}
			if _, err := fmt.Fprint(w, paint("%s%s", prefix, strings.TrimSuffix(line, "\n")), "\n"); err != nil {
				return true, err
			}
		}
	}

	return true, nil
}
