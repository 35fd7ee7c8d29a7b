package schema

import (
	"fmt"
	"strings"
)

// Prefix of the Go declaration the schema is extracted from: enum2mapTestValue describes TestValue
const Prefix = "enum2map"

// Shape rules a variant can violate
const (
	RuleFieldCount   = "variant has zero or multiple fields"
	RuleNamedFields  = "variant uses named fields"
	RuleResults      = "variant must not have results"
	RuleVariadic     = "variant payload cannot be variadic"
	RuleEmbedding    = "embedding is not allowed"
	RuleExported     = "variant name must be exported"
	RuleCollision    = "variant name collides with generated identifier"
	RuleDuplicate    = "duplicate variant"
	RuleInvalidType  = "payload is not a valid Go type expression"
	RuleNoVariants   = "no variants"
	RuleDuplicateDef = "duplicate enum2map declaration"
)

// Variant one branch of a tagged union: its name and payload type as Go source
type Variant struct {
	Name string
	Type string
}

// Import of the package payload types may refer to
type Import struct {
	Name string
	Path string
}

// Schema ordered variant list of a tagged union
type Schema struct {
	Package  string
	Name     string
	Imports  []Import
	Variants []Variant

	// Decl original enum2map declaration, empty when the schema does not come from Go source
	Decl string
	// Origin file the schema was extracted from
	Origin string
}

// Error shape violation
type Error struct {
	Pos     string
	Variant string
	Rule    string
}

func (e *Error) Error() string {
	if e.Variant == "" {
		return fmt.Sprintf("%s: %s", e.Pos, e.Rule)
	}
	return fmt.Sprintf("%s: variant %s: %s", e.Pos, e.Variant, e.Rule)
}

// Errors all shape violations found in one schema
type Errors []*Error

func (e Errors) Error() string {
	parts := make([]string, len(e))
	for i, err := range e {
		parts[i] = err.Error()
	}
	return strings.Join(parts, "\n")
}

// Err returns nil for an empty list
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// generated returns identifiers the generated code declares in the schema package, besides variant types
func (s *Schema) generated() map[string]struct{} {
	res := map[string]struct{}{}
	for _, name := range []string{
		s.Name,
		s.Name + "Key",
		s.Name + "Keys",
		s.Name + "Map",
		"New" + s.Name + "Map",
	} {
		res[name] = struct{}{}
	}
	for _, v := range s.Variants {
		res[s.Name+"Key"+v.Name] = struct{}{}
	}
	return res
}

// check validates names of variants, public is the exported form of an identifier
func (s *Schema) check(public func(string) string, pos func(i int) string) Errors {
	var errs Errors
	if len(s.Variants) == 0 {
		errs = append(errs, &Error{Pos: pos(-1), Rule: RuleNoVariants})
		return errs
	}

	generated := s.generated()
	seen := map[string]struct{}{}
	for i, v := range s.Variants {
		if v.Name != public(v.Name) {
			errs = append(errs, &Error{
				Pos:     pos(i),
				Variant: v.Name,
				Rule:    fmt.Sprintf("%s as %s", RuleExported, public(v.Name)),
			})
		}
		if _, ok := seen[v.Name]; ok {
			errs = append(errs, &Error{Pos: pos(i), Variant: v.Name, Rule: RuleDuplicate})
		}
		seen[v.Name] = struct{}{}

		// GetOrDefault is a generic operation of the container
		if _, ok := generated[v.Name]; ok || v.Name == "OrDefault" {
			errs = append(errs, &Error{Pos: pos(i), Variant: v.Name, Rule: RuleCollision})
		}
	}
	return errs
}
