package generator

import (
	"github.com/sirkon/go-enum2map/internal/schema"
)

// renderContainer renders container type and its constructor
func renderContainer(c *Collector, s *schema.Schema, n names) {
	c.Line(`// $0 maps $1 to $2 values, at most one value per key.`, n.mapT, n.key, n.union)
	c.Rawl(`// It has no internal synchronization, callers must guard concurrent mutations.`)
	c.Line(`type $0 struct {`, n.mapT)
	c.Line(`    Values map[$0]$1`, n.key, n.union)
	c.Line(`}`)
	c.Newl()

	c.Line(`// $0 creates empty $1`, n.ctor, n.mapT)
	c.Line(`func $0() *$1 {`, n.ctor, n.mapT)
	c.Line(`    return &$0{`, n.mapT)
	c.Line(`        Values: map[$0]$1{},`, n.key, n.union)
	c.Line(`    }`)
	c.Line(`}`)
	c.Newl()

	c.Rawl(`// Len returns the number of stored values`)
	c.Line(`func (m *$0) Len() int {`, n.mapT)
	c.Line(`    return len(m.Values)`)
	c.Line(`}`)
	c.Newl()
}
