package generator

import (
	"strconv"

	"github.com/sirkon/go-enum2map/internal/schema"
)

// renderKey renders key type with a bare tag per variant
func renderKey(c *Collector, s *schema.Schema, n names) {
	c.Line(`// $0 enumerates variants of $1`, n.key, n.union)
	c.Line(`type $0 int`, n.key)
	c.Newl()
	c.Line(`const (`)
	for i, v := range s.Variants {
		if i == 0 {
			c.Line(`    $0 $1 = iota`, n.keyOf(v), n.key)
			continue
		}
		c.Line(`    $0`, n.keyOf(v))
	}
	c.Line(`)`)
	c.Newl()

	c.Line(`var $0 = [...]string{`, n.keyNames)
	for _, v := range s.Variants {
		c.Rawl("    " + n.keyOf(v) + ": " + strconv.Quote(v.Name) + ",")
	}
	c.Line(`}`)
	c.Newl()

	c.Rawl(`// String returns the name of the variant`)
	c.Line(`func (k $0) String() string {`, n.key)
	c.Line(`    if k < 0 || int(k) >= len($0) {`, n.keyNames)
	c.Line(`        return fmt.Sprintf($0, int(k))`, strconv.Quote(n.key+"(%d)"))
	c.Line(`    }`)
	c.Rawl("    return " + n.keyNames + "[k]")
	c.Line(`}`)
	c.Newl()

	c.Line(`// $0 returns all keys in declaration order`, n.keys)
	c.Line(`func $0() []$1 {`, n.keys, n.key)
	c.Line(`    return []$0{`, n.key)
	for _, v := range s.Variants {
		c.Line(`        $0,`, n.keyOf(v))
	}
	c.Line(`    }`)
	c.Line(`}`)
	c.Newl()
}
