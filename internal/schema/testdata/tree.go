package tree

import (
	"time"

	yml "github.com/goccy/go-yaml"
)

type enum2mapNode interface {
	Leaf(string)
	Children([]enum2mapNode)
	Index(map[string]*enum2mapNode)
	Parent(*enum2mapNode)
	Stamp(time.Time)
	Raw(yml.MapSlice)
}

// Dropped is regenerated away
type Dropped struct{}
