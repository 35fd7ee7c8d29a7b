package generator

import (
	"fmt"
	"strconv"

	"github.com/sirkon/go-enum2map/internal/schema"
)

// MismatchMessage is the panic value of a named getter finding a value of another variant under its key
func MismatchMessage(v schema.Variant) string {
	return fmt.Sprintf("unexpected condition: didn't find type %s for %s", v.Type, v.Name)
}

// renderOperations renders generic operations of the container
func renderOperations(c *Collector, s *schema.Schema, n names) {
	c.Rawl(`// Set puts value under the key of its variant replacing the previous one.`)
	c.Rawl(`// Returns the replaced value and true if there was one.`)
	c.Line(`func (m *$0) Set(value $1) ($1, bool) {`, n.mapT, n.union)
	c.Line(`    var key $0`, n.key)
	c.Line(`    switch value.(type) {`)
	for _, v := range s.Variants {
		c.Line(`    case $0:`, v.Name)
		c.Line(`        key = $0`, n.keyOf(v))
	}
	c.Line(`    default:`)
	c.Line(
		`        panic(fmt.Sprintf($0, value))`,
		strconv.Quote(n.mapT+": unsupported "+n.union+" implementation %T"),
	)
	c.Line(`    }`)
	c.Line(`    if m.Values == nil {`)
	c.Line(`        m.Values = map[$0]$1{}`, n.key, n.union)
	c.Line(`    }`)
	c.Newl()
	c.Rawl(`    prev, ok := m.Values[key]`)
	c.Rawl(`    m.Values[key] = value`)
	c.Line(`    return prev, ok`)
	c.Line(`}`)
	c.Newl()

	c.Rawl(`// Insert does the same as Set`)
	c.Line(`func (m *$0) Insert(value $1) ($1, bool) {`, n.mapT, n.union)
	c.Line(`    return m.Set(value)`)
	c.Line(`}`)
	c.Newl()

	c.Rawl(`// Get returns value stored under the key`)
	c.Line(`func (m *$0) Get(key $1) ($2, bool) {`, n.mapT, n.key, n.union)
	c.Rawl(`    value, ok := m.Values[key]`)
	c.Line(`    return value, ok`)
	c.Line(`}`)
	c.Newl()

	c.Rawl(`// GetOrDefault returns value stored under the key or the variant the key denotes`)
	c.Rawl(`// with zero payload. The zero valued variant is not stored.`)
	c.Line(`func (m *$0) GetOrDefault(key $1) $2 {`, n.mapT, n.key, n.union)
	c.Rawl(`    if value, ok := m.Values[key]; ok {`)
	c.Line(`        return value`)
	c.Line(`    }`)
	c.Newl()
	c.Line(`    switch key {`)
	for _, v := range s.Variants {
		c.Line(`    case $0:`, n.keyOf(v))
		c.Line(`        return $0{}`, v.Name)
	}
	c.Line(`    default:`)
	c.Line(`        panic(fmt.Sprintf($0, key))`, strconv.Quote(n.mapT+": unknown key %s"))
	c.Line(`    }`)
	c.Line(`}`)
	c.Newl()
}

// renderAccessors renders named getter and setter of the variant
func renderAccessors(c *Collector, v schema.Variant, n names) {
	c.Line(`// Get$0 returns $0 payload, the zero value if it was not set.`, v.Name)
	c.Rawl(`// The payload is a shallow copy: slices, maps and pointers are shared with the stored value`)
	c.Line(`func (m *$0) Get$1() $2 {`, n.mapT, v.Name, v.Type)
	c.Rawl(`    value, ok := m.Values[` + n.keyOf(v) + `]`)
	c.Line(`    if !ok {`)
	c.Line(`        var zero $0`, v.Type)
	c.Line(`        return zero`)
	c.Line(`    }`)
	c.Newl()
	c.Line(`    variant, ok := value.($0)`, v.Name)
	c.Line(`    if !ok {`)
	c.Line(`        panic($0)`, strconv.Quote(MismatchMessage(v)))
	c.Line(`    }`)
	c.Line(`    return variant.Value`)
	c.Line(`}`)
	c.Newl()

	c.Line(`// Set$0 puts $0 with the given payload replacing the previous one`, v.Name)
	c.Line(`func (m *$0) Set$1(value $2) {`, n.mapT, v.Name, v.Type)
	c.Line(`    m.Set($0{Value: value})`, v.Name)
	c.Line(`}`)
	c.Newl()
}
