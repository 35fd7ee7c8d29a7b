package invalid

import "io"

type enum2mapShape interface {
	io.Reader
	Empty()
	Pair(int, string)
	Named(width int)
	Result(int) error
	Rest(...int)
	lower(int)
	OrDefault(int)
	Shape(int)
	Valid(int)
}
