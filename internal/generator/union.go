package generator

import (
	"strings"

	"github.com/sirkon/go-enum2map/internal/schema"
)

// renderUnion renders sealed interface standing for the tagged union and its branch types
func renderUnion(c *Collector, s *schema.Schema, n names) {
	branches := make([]string, len(s.Variants))
	for i, v := range s.Variants {
		branches[i] = v.Name
	}

	c.Line(`// $0 tagged union of $1`, n.union, strings.Join(branches, ", "))
	c.Line(`type $0 interface {`, n.union)
	c.Line(`    $0()`, n.is)
	c.Newl()
	c.Rawl(`    // Key returns the key denoting the variant of this value`)
	c.Line(`    Key() $0`, n.key)
	c.Line(`}`)
	c.Newl()

	for _, v := range s.Variants {
		c.Line(`// $0 variant of $1`, v.Name, n.union)
		c.Line(`type $0 struct {`, v.Name)
		c.Line(`    Value $0`, v.Type)
		c.Line(`}`)
		c.Newl()
		c.Line(`func ($0) $1() {}`, v.Name, n.is)
		c.Newl()
		c.Line(`// Key returns $0`, n.keyOf(v))
		c.Line(`func ($0) Key() $1 { return $2 }`, v.Name, n.key, n.keyOf(v))
		c.Newl()
	}
}
