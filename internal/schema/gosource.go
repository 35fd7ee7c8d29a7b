package schema

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"strconv"
	"strings"

	"github.com/sirkon/gotify"
	"golang.org/x/tools/go/ast/astutil"
)

// FromGo extracts schema from Go source holding exactly one top level enum2map<Name> interface.
// Every method of the interface is a variant, its only unnamed parameter is the payload:
//
//	type enum2mapTestValue interface {
//	    Padding(int)
//	    Margin(string)
//	}
//
// Syntax errors are returned as scanner.ErrorList, shape violations as Errors.
func FromGo(filename string, src []byte) (*Schema, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.AllErrors|parser.ParseComments)
	if err != nil {
		return nil, err
	}

	gotifier := gotify.New(nil)

	var errs Errors
	var spec *ast.TypeSpec
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}
		for _, s := range gen.Specs {
			ts := s.(*ast.TypeSpec)
			if _, ok := ts.Type.(*ast.InterfaceType); !ok {
				continue
			}
			if !strings.HasPrefix(ts.Name.Name, Prefix) {
				continue
			}
			if spec != nil {
				errs = append(errs, &Error{
					Pos:  fset.Position(ts.Pos()).String(),
					Rule: fmt.Sprintf("%s, the previous one was %s", RuleDuplicateDef, spec.Name.Name),
				})
				continue
			}
			spec = ts
		}
	}
	if spec == nil {
		return nil, Errors{{Pos: filename + ":1", Rule: "no " + Prefix + " candidates found"}}
	}
	if len(errs) > 0 {
		return nil, errs
	}

	name := spec.Name.Name[len(Prefix):]
	if name == "" || name != gotifier.Public(name) {
		return nil, Errors{{
			Pos:  fset.Position(spec.Name.NamePos).String(),
			Rule: fmt.Sprintf("name must be %s%s, got %s", Prefix, gotifier.Public(name), spec.Name.Name),
		}}
	}

	res := &Schema{
		Package: file.Name.Name,
		Name:    name,
		Origin:  filename,
	}

	// keep the declaration as it is written before payload types get rewritten
	var decl bytes.Buffer
	decl.WriteString("type ")
	if err := printer.Fprint(&decl, fset, spec); err != nil {
		return nil, fmt.Errorf("render original %s declaration: %w", spec.Name.Name, err)
	}
	res.Decl = decl.String()

	for _, imp := range file.Imports {
		path, err := strconv.Unquote(imp.Path.Value)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid import path %s: %w", fset.Position(imp.Path.Pos()), imp.Path.Value, err)
		}
		var alias string
		if imp.Name != nil {
			alias = imp.Name.Name
		}
		res.Imports = append(res.Imports, Import{Name: alias, Path: path})
	}

	var positions []token.Pos
	iface := spec.Type.(*ast.InterfaceType)
	for _, f := range iface.Methods.List {
		if len(f.Names) == 0 {
			errs = append(errs, &Error{Pos: fset.Position(f.Pos()).String(), Rule: RuleEmbedding})
			continue
		}
		variant := f.Names[0].Name
		pos := fset.Position(f.Names[0].NamePos).String()
		fn := f.Type.(*ast.FuncType)

		if fn.Results != nil && len(fn.Results.List) > 0 {
			errs = append(errs, &Error{Pos: pos, Variant: variant, Rule: RuleResults})
		}
		if fieldCount(fn.Params) != 1 {
			errs = append(errs, &Error{Pos: pos, Variant: variant, Rule: RuleFieldCount})
			continue
		}
		param := fn.Params.List[0]
		if len(param.Names) > 0 {
			errs = append(errs, &Error{Pos: pos, Variant: variant, Rule: RuleNamedFields})
			continue
		}
		if _, ok := param.Type.(*ast.Ellipsis); ok {
			errs = append(errs, &Error{Pos: pos, Variant: variant, Rule: RuleVariadic})
			continue
		}

		// references to the declaration itself are references to the union, the union is an
		// interface so pointers to it are dropped
		param.Type = astutil.Apply(param.Type, nil, func(c *astutil.Cursor) bool {
			switch v := c.Node().(type) {
			case *ast.StarExpr:
				if id, ok := v.X.(*ast.Ident); ok && id.Name == name {
					c.Replace(id)
				}
			case *ast.Ident:
				if v.Name == spec.Name.Name {
					v.Name = name
				}
			}
			return true
		}).(ast.Expr)

		var typ bytes.Buffer
		if err := printer.Fprint(&typ, fset, param.Type); err != nil {
			return nil, fmt.Errorf("%s: render payload type of %s: %w", pos, variant, err)
		}
		res.Variants = append(res.Variants, Variant{Name: variant, Type: typ.String()})
		positions = append(positions, f.Names[0].NamePos)
	}

	if len(errs) > 0 && len(res.Variants) == 0 {
		return nil, errs
	}
	errs = append(errs, res.check(gotifier.Public, func(i int) string {
		if i < 0 {
			return fset.Position(spec.Name.NamePos).String()
		}
		return fset.Position(positions[i]).String()
	})...)
	if len(errs) > 0 {
		return nil, errs
	}

	return res, nil
}

func fieldCount(list *ast.FieldList) int {
	if list == nil {
		return 0
	}
	var res int
	for _, f := range list.List {
		if len(f.Names) == 0 {
			res++
			continue
		}
		res += len(f.Names)
	}
	return res
}
