package generator

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirkon/gosrcfmt"
	"github.com/sirkon/gotify"
	"golang.org/x/tools/go/ast/astutil"

	"github.com/sirkon/go-enum2map/internal/schema"
)

// Command name of the generator as it is referred to in go:generate directives
const Command = "go-enum2map"

// Layout of the generated file
type Layout int

const (
	// LayoutStandalone file holds generated code only
	LayoutStandalone Layout = iota
	// LayoutInPlace file is the rewritten declaration file: it keeps the enum2map declaration
	// and the go:generate directive regenerating itself
	LayoutInPlace
)

type names struct {
	union    string
	is       string
	key      string
	keys     string
	keyNames string
	mapT     string
	ctor     string
}

func newNames(s *schema.Schema) names {
	gotifier := gotify.New(nil)
	return names{
		union:    s.Name,
		is:       "is" + s.Name,
		key:      s.Name + "Key",
		keys:     s.Name + "Keys",
		keyNames: gotifier.Private(s.Name + "KeyNames"),
		mapT:     s.Name + "Map",
		ctor:     "New" + s.Name + "Map",
	}
}

func (n names) keyOf(v schema.Variant) string {
	return n.key + v.Name
}

// Render renders the tagged union, its key type, the container and all container operations
func Render(s *schema.Schema) []byte {
	var c Collector
	n := newNames(s)

	renderUnion(&c, s, n)
	renderKey(&c, s, n)
	renderContainer(&c, s, n)
	renderOperations(&c, s, n)
	for _, v := range s.Variants {
		renderAccessors(&c, v, n)
	}

	return c.Bytes()
}

// File renders complete formatted Go file for the schema. Nothing is returned on error.
func File(s *schema.Schema, layout Layout) ([]byte, error) {
	var dest Collector

	switch layout {
	case LayoutInPlace:
		if s.Decl == "" {
			return nil, fmt.Errorf("in place layout requires enum2map declaration of %s", s.Name)
		}
		dest.Line(`package $0`, s.Package)
		dest.Newl()
		_, base := filepath.Split(s.Origin)
		dest.Line(`//go:generate $0 $1`, Command, base)
		dest.Newl()
	default:
		dest.Rawl("// Code generated by " + Command + " from " + filepath.Base(s.Origin) + ". DO NOT EDIT.")
		dest.Newl()
		dest.Line(`package $0`, s.Package)
		dest.Newl()
	}

	dest.Rawl(`import (`)
	if len(s.Imports) == 0 {
		dest.Rawl(`"fmt"`)
	}
	for _, imp := range s.Imports {
		if imp.Name != "" {
			dest.Line(`$0 $1`, imp.Name, strconv.Quote(imp.Path))
		} else {
			dest.Line(`$0`, strconv.Quote(imp.Path))
		}
	}
	dest.Rawl(`)`)
	dest.Newl()

	if layout == LayoutInPlace {
		dest.Rawl(s.Decl)
		dest.Newl()
	}
	dest.Rawl(string(Render(s)))

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "", dest.Bytes(), parser.ParseComments|parser.AllErrors)
	if err != nil {
		return nil, listing(err, dest.String())
	}
	astutil.AddImport(fset, file, "fmt")

	// imports the dropped part of the declaration file used
	type importRef struct {
		name string
		path string
	}
	var unused []importRef
	for _, imp := range file.Imports {
		path, _ := strconv.Unquote(imp.Path.Value)
		var name string
		if imp.Name != nil {
			name = imp.Name.Name
		}
		local := importName(name, path)
		if local == "" || usesName(file, local) {
			continue
		}
		unused = append(unused, importRef{name: name, path: path})
	}
	for _, ref := range unused {
		astutil.DeleteNamedImport(fset, file, ref.name, ref.path)
	}

	var buf bytes.Buffer
	if err := printer.Fprint(&buf, fset, file); err != nil {
		return nil, fmt.Errorf("print generated source: %w", err)
	}

	res, err := gosrcfmt.Source(buf.Bytes(), "<output>")
	if err != nil {
		return nil, listing(err, buf.String())
	}

	return res, nil
}

// importName returns the name the import is referred by in the file, empty if it cannot be told
// or the import must stay regardless of references
func importName(name, path string) string {
	switch name {
	case "_", ".":
		return ""
	case "":
	default:
		return name
	}

	elems := strings.Split(path, "/")
	last := elems[len(elems)-1]
	if isMajorVersion(last) && len(elems) > 1 {
		// github.com/jackc/pgx/v5 is package pgx
		last = elems[len(elems)-2]
	}
	if !token.IsIdentifier(last) {
		return ""
	}
	return last
}

func isMajorVersion(elem string) bool {
	if len(elem) < 2 || elem[0] != 'v' {
		return false
	}
	for _, r := range elem[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// usesName checks if name is used as a package qualifier, locals resolved by the parser do not count
func usesName(file *ast.File, name string) bool {
	var used bool
	ast.Inspect(file, func(node ast.Node) bool {
		if used {
			return false
		}
		sel, ok := node.(*ast.SelectorExpr)
		if !ok {
			return true
		}
		if id, ok := sel.X.(*ast.Ident); ok && id.Obj == nil && id.Name == name {
			used = true
		}
		return true
	})
	return used
}
