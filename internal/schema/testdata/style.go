package style

//go:generate go-enum2map style.go

type enum2mapTestValue interface {
	Padding(int)
	Margin(string)
}
