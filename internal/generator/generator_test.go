package generator_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirkon/go-enum2map/internal/generator"
	"github.com/sirkon/go-enum2map/internal/schema"
)

func testValueSchema() *schema.Schema {
	return &schema.Schema{
		Package: "style",
		Name:    "TestValue",
		Variants: []schema.Variant{
			{Name: "Padding", Type: "int"},
			{Name: "Margin", Type: "string"},
		},
		Decl:   "type enum2mapTestValue interface {\n\tPadding(int)\n\tMargin(string)\n}",
		Origin: "style.go",
	}
}

// declarations collects top level declarations of the file: types, functions and Recv.Method methods
func declarations(t *testing.T, src []byte) (*ast.File, map[string]struct{}) {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "generated.go", src, parser.ParseComments)
	require.NoError(t, err, string(src))

	res := map[string]struct{}{}
	for _, decl := range file.Decls {
		switch v := decl.(type) {
		case *ast.GenDecl:
			for _, spec := range v.Specs {
				switch s := spec.(type) {
				case *ast.TypeSpec:
					res[s.Name.Name] = struct{}{}
				case *ast.ValueSpec:
					for _, name := range s.Names {
						res[name.Name] = struct{}{}
					}
				}
			}
		case *ast.FuncDecl:
			if v.Recv == nil {
				res[v.Name.Name] = struct{}{}
				continue
			}
			recv := v.Recv.List[0].Type
			if star, ok := recv.(*ast.StarExpr); ok {
				recv = star.X
			}
			res[recv.(*ast.Ident).Name+"."+v.Name.Name] = struct{}{}
		}
	}
	return file, res
}

func TestRender(t *testing.T) {
	src := append([]byte("package style\n\nimport \"fmt\"\n\n"), generator.Render(testValueSchema())...)
	_, decls := declarations(t, src)

	for _, name := range []string{
		"TestValue",
		"Padding",
		"Padding.isTestValue",
		"Padding.Key",
		"Margin",
		"Margin.isTestValue",
		"Margin.Key",
		"TestValueKey",
		"TestValueKeyPadding",
		"TestValueKeyMargin",
		"TestValueKey.String",
		"TestValueKeys",
		"TestValueMap",
		"NewTestValueMap",
		"TestValueMap.Len",
		"TestValueMap.Set",
		"TestValueMap.Insert",
		"TestValueMap.Get",
		"TestValueMap.GetOrDefault",
		"TestValueMap.GetPadding",
		"TestValueMap.SetPadding",
		"TestValueMap.GetMargin",
		"TestValueMap.SetMargin",
	} {
		assert.Contains(t, decls, name)
	}
}

func TestRenderOrder(t *testing.T) {
	src := string(generator.Render(testValueSchema()))

	order := []string{
		"type TestValue interface",
		"type TestValueKey int",
		"type TestValueMap struct",
		"func NewTestValueMap()",
		") Set(value TestValue)",
		") Get(key TestValueKey)",
		") GetOrDefault(key TestValueKey)",
		") GetPadding() int",
		") SetPadding(value int)",
		") GetMargin() string",
		") SetMargin(value string)",
	}
	last := -1
	for _, item := range order {
		idx := strings.Index(src, item)
		require.True(t, idx >= 0, "%s not found", item)
		assert.Greater(t, idx, last, "%s is out of order", item)
		last = idx
	}

	assert.Contains(t, src, `panic("unexpected condition: didn't find type string for Margin")`)
	assert.Contains(t, src, `panic("unexpected condition: didn't find type int for Padding")`)
}

func TestMismatchMessage(t *testing.T) {
	assert.Equal(
		t,
		"unexpected condition: didn't find type string for Margin",
		generator.MismatchMessage(schema.Variant{Name: "Margin", Type: "string"}),
	)
}

func TestFileInPlace(t *testing.T) {
	res, err := generator.File(testValueSchema(), generator.LayoutInPlace)
	require.NoError(t, err)

	file, decls := declarations(t, res)
	assert.Equal(t, "style", file.Name.Name)
	assert.Contains(t, decls, "enum2mapTestValue")
	assert.Contains(t, decls, "TestValueMap.GetMargin")
	assert.Contains(t, string(res), "//go:generate go-enum2map style.go\n")
	require.Len(t, file.Imports, 1)
	assert.Equal(t, `"fmt"`, file.Imports[0].Path.Value)

	t.Run("regeneration is idempotent", func(t *testing.T) {
		sch, err := schema.FromGo("style.go", res)
		require.NoError(t, err)
		again, err := generator.File(sch, generator.LayoutInPlace)
		require.NoError(t, err)
		assert.Equal(t, string(res), string(again))
	})
}

func TestFileStandalone(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "schema", "testdata", "style.yaml"))
	require.NoError(t, err)
	sch, err := schema.FromYAML("style.yaml", data)
	require.NoError(t, err)

	res, err := generator.File(sch, generator.LayoutStandalone)
	require.NoError(t, err)

	assert.True(
		t,
		strings.HasPrefix(string(res), "// Code generated by go-enum2map from style.yaml. DO NOT EDIT.\n"),
		string(res),
	)
	file, decls := declarations(t, res)
	assert.NotContains(t, decls, "enum2mapTestValue")
	assert.Contains(t, decls, "TestValueMap.GetStamp")

	var paths []string
	for _, imp := range file.Imports {
		paths = append(paths, imp.Path.Value)
	}
	// yml is not referenced by any payload
	assert.ElementsMatch(t, []string{`"fmt"`, `"time"`}, paths)
}

func TestFileWithoutDeclaration(t *testing.T) {
	sch := testValueSchema()
	sch.Decl = ""
	_, err := generator.File(sch, generator.LayoutInPlace)
	require.Error(t, err)
}

func TestFileListing(t *testing.T) {
	sch := testValueSchema()
	sch.Variants = append(sch.Variants, schema.Variant{Name: "Broken", Type: "map[string"})
	_, err := generator.File(sch, generator.LayoutStandalone)
	require.Error(t, err)
	// numbered source follows the diagnostic
	assert.Contains(t, err.Error(), " package style\n")
}

func TestExampleIsCurrent(t *testing.T) {
	path := filepath.Join("..", "..", "example", "style", "style.go")
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	sch, err := schema.FromGo("style.go", data)
	require.NoError(t, err)
	res, err := generator.File(sch, generator.LayoutInPlace)
	require.NoError(t, err)

	_, want := declarations(t, res)
	_, got := declarations(t, data)
	assert.Equal(t, want, got)
}

func TestFileImports(t *testing.T) {
	type test struct {
		name    string
		imports string
		variant string
		want    []string
	}

	tests := []test{
		{
			name:    "fmt only",
			variant: "Padding(int)",
			want:    []string{`"fmt"`},
		},
		{
			name:    "fmt is not duplicated",
			imports: `import "fmt"`,
			variant: "Text(fmt.Stringer)",
			want:    []string{`"fmt"`},
		},
		{
			name:    "unused fmt alias",
			imports: `import f "fmt"`,
			variant: "Text(string)",
			want:    []string{`"fmt"`},
		},
		{
			name:    "used fmt alias",
			imports: `import f "fmt"`,
			variant: "Text(f.Stringer)",
			want:    []string{`"fmt"`, `f "fmt"`},
		},
		{
			name:    "unused imports are dropped",
			imports: "import (\n\t\"strings\"\n\t\"time\"\n)",
			variant: "Stamp(time.Time)",
			want:    []string{`"fmt"`, `"time"`},
		},
		{
			name:    "alias",
			imports: `import tm "time"`,
			variant: "Stamp(tm.Time)",
			want:    []string{`"fmt"`, `tm "time"`},
		},
		{
			name:    "major version suffix",
			imports: `import "github.com/jackc/pgx/v5"`,
			variant: "Conn(*pgx.Conn)",
			want:    []string{`"fmt"`, `"github.com/jackc/pgx/v5"`},
		},
		{
			name:    "unused major version suffix",
			imports: `import "github.com/jackc/pgx/v5"`,
			variant: "Conn(int)",
			want:    []string{`"fmt"`},
		},
		{
			name:    "name cannot be guessed",
			imports: `import "gopkg.in/yaml.v3"`,
			variant: "Conn(int)",
			want:    []string{`"fmt"`, `"gopkg.in/yaml.v3"`},
		},
		{
			name:    "dot and blank imports",
			imports: "import (\n\t. \"time\"\n\t_ \"embed\"\n)",
			variant: "Stamp(Time)",
			want:    []string{`"fmt"`, `. "time"`, `_ "embed"`},
		},
		{
			name:    "receiver name is not a qualifier",
			imports: `import m "math"`,
			variant: "Ratio(float64)",
			want:    []string{`"fmt"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := "package p\n\n" + tt.imports + "\n\ntype enum2mapValue interface {\n\t" + tt.variant + "\n}\n"
			sch, err := schema.FromGo("value.go", []byte(src))
			require.NoError(t, err)

			res, err := generator.File(sch, generator.LayoutInPlace)
			require.NoError(t, err)

			file, _ := declarations(t, res)
			var got []string
			for _, imp := range file.Imports {
				if imp.Name != nil {
					got = append(got, imp.Name.Name+" "+imp.Path.Value)
					continue
				}
				got = append(got, imp.Path.Value)
			}
			assert.ElementsMatch(t, tt.want, got, string(res))
		})
	}
}

func TestRenderGetterDoc(t *testing.T) {
	src := string(generator.Render(testValueSchema()))
	assert.Contains(t, src, "// GetPadding returns Padding payload, the zero value if it was not set.\n"+
		"// The payload is a shallow copy: slices, maps and pointers are shared with the stored value\n")
}
