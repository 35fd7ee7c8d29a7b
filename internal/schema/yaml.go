package schema

import (
	"fmt"
	"go/parser"
	"go/token"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/sirkon/gotify"
)

type yamlSchema struct {
	Package  string        `yaml:"package"`
	Name     string        `yaml:"name"`
	Imports  []string      `yaml:"imports"`
	Variants []yamlVariant `yaml:"variants"`
}

type yamlVariant struct {
	Name   string            `yaml:"name"`
	Type   string            `yaml:"type"`
	Types  []string          `yaml:"types"`
	Fields map[string]string `yaml:"fields"`
}

// FromYAML extracts schema from YAML description:
//
//	package: style
//	name: TestValue
//	imports:
//	  - time
//	  - yaml github.com/goccy/go-yaml
//	variants:
//	  - name: Padding
//	    type: int
//	  - name: Margin
//	    type: string
func FromYAML(filename string, data []byte) (*Schema, error) {
	var raw yamlSchema
	if err := yaml.UnmarshalWithOptions(data, &raw, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("decode %s:\n%s", filename, yaml.FormatError(err, false, true))
	}

	var errs Errors
	if !token.IsIdentifier(raw.Package) {
		errs = append(errs, &Error{Pos: filename, Rule: fmt.Sprintf("invalid package name %q", raw.Package)})
	}
	gotifier := gotify.New(nil)
	if raw.Name == "" || raw.Name != gotifier.Public(raw.Name) || !token.IsIdentifier(raw.Name) {
		errs = append(errs, &Error{
			Pos:  filename,
			Rule: fmt.Sprintf("name must be an exported identifier like %s, got %q", gotifier.Public(raw.Name), raw.Name),
		})
	}

	res := &Schema{
		Package: raw.Package,
		Name:    raw.Name,
		Origin:  filename,
	}

	for _, imp := range raw.Imports {
		parts := strings.Fields(imp)
		switch len(parts) {
		case 1:
			res.Imports = append(res.Imports, Import{Path: parts[0]})
		case 2:
			res.Imports = append(res.Imports, Import{Name: parts[0], Path: parts[1]})
		default:
			errs = append(errs, &Error{Pos: filename, Rule: fmt.Sprintf("invalid import %q, must be [name] path", imp)})
		}
	}

	pos := func(i int) string {
		if i < 0 {
			return filename + ": variants"
		}
		return fmt.Sprintf("%s: variants[%d]", filename, i)
	}
	var variantErrs bool
	for i, v := range raw.Variants {
		if !token.IsIdentifier(v.Name) {
			errs = append(errs, &Error{Pos: pos(i), Variant: v.Name, Rule: "variant name must be a Go identifier"})
			variantErrs = true
			continue
		}
		if len(v.Fields) > 0 {
			errs = append(errs, &Error{Pos: pos(i), Variant: v.Name, Rule: RuleNamedFields})
			variantErrs = true
			continue
		}

		types := v.Types
		if v.Type != "" {
			types = append([]string{v.Type}, types...)
		}
		if len(types) != 1 {
			errs = append(errs, &Error{Pos: pos(i), Variant: v.Name, Rule: RuleFieldCount})
			variantErrs = true
			continue
		}
		if strings.HasPrefix(strings.TrimSpace(types[0]), "...") {
			errs = append(errs, &Error{Pos: pos(i), Variant: v.Name, Rule: RuleVariadic})
			variantErrs = true
			continue
		}
		if _, err := parser.ParseExpr(types[0]); err != nil {
			errs = append(errs, &Error{Pos: pos(i), Variant: v.Name, Rule: fmt.Sprintf("%s: %s", RuleInvalidType, err)})
			variantErrs = true
			continue
		}

		res.Variants = append(res.Variants, Variant{Name: v.Name, Type: strings.TrimSpace(types[0])})
	}

	if !variantErrs || len(res.Variants) > 0 {
		// indices of extracted variants match raw ones only when nothing was skipped
		posOf := pos
		if variantErrs {
			posOf = func(i int) string {
				return fmt.Sprintf("%s: variants.%s", filename, res.Variants[i].Name)
			}
		}
		errs = append(errs, res.check(gotifier.Public, posOf)...)
	}
	if len(errs) > 0 {
		return nil, errs
	}

	return res, nil
}
