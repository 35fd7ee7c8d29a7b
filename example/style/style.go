package style

//go:generate go-enum2map style.go

import (
	"fmt"
)

type enum2mapTestValue interface {
	Padding(int)
	Margin(string)
}

// TestValue tagged union of Padding, Margin
type TestValue interface {
	isTestValue()

	// Key returns the key denoting the variant of this value
	Key() TestValueKey
}

// Padding variant of TestValue
type Padding struct {
	Value int
}

func (Padding) isTestValue() {}

// Key returns TestValueKeyPadding
func (Padding) Key() TestValueKey { return TestValueKeyPadding }

// Margin variant of TestValue
type Margin struct {
	Value string
}

func (Margin) isTestValue() {}

// Key returns TestValueKeyMargin
func (Margin) Key() TestValueKey { return TestValueKeyMargin }

// TestValueKey enumerates variants of TestValue
type TestValueKey int

const (
	TestValueKeyPadding TestValueKey = iota
	TestValueKeyMargin
)

var testValueKeyNames = [...]string{
	TestValueKeyPadding: "Padding",
	TestValueKeyMargin:  "Margin",
}

// String returns the name of the variant
func (k TestValueKey) String() string {
	if k < 0 || int(k) >= len(testValueKeyNames) {
		return fmt.Sprintf("TestValueKey(%d)", int(k))
	}
	return testValueKeyNames[k]
}

// TestValueKeys returns all keys in declaration order
func TestValueKeys() []TestValueKey {
	return []TestValueKey{
		TestValueKeyPadding,
		TestValueKeyMargin,
	}
}

// TestValueMap maps TestValueKey to TestValue values, at most one value per key.
// It has no internal synchronization, callers must guard concurrent mutations.
type TestValueMap struct {
	Values map[TestValueKey]TestValue
}

// NewTestValueMap creates empty TestValueMap
func NewTestValueMap() *TestValueMap {
	return &TestValueMap{
		Values: map[TestValueKey]TestValue{},
	}
}

// Len returns the number of stored values
func (m *TestValueMap) Len() int {
	return len(m.Values)
}

// Set puts value under the key of its variant replacing the previous one.
// Returns the replaced value and true if there was one.
func (m *TestValueMap) Set(value TestValue) (TestValue, bool) {
	var key TestValueKey
	switch value.(type) {
	case Padding:
		key = TestValueKeyPadding
	case Margin:
		key = TestValueKeyMargin
	default:
		panic(fmt.Sprintf("TestValueMap: unsupported TestValue implementation %T", value))
	}
	if m.Values == nil {
		m.Values = map[TestValueKey]TestValue{}
	}

	prev, ok := m.Values[key]
	m.Values[key] = value
	return prev, ok
}

// Insert does the same as Set
func (m *TestValueMap) Insert(value TestValue) (TestValue, bool) {
	return m.Set(value)
}

// Get returns value stored under the key
func (m *TestValueMap) Get(key TestValueKey) (TestValue, bool) {
	value, ok := m.Values[key]
	return value, ok
}

// GetOrDefault returns value stored under the key or the variant the key denotes
// with zero payload. The zero valued variant is not stored.
func (m *TestValueMap) GetOrDefault(key TestValueKey) TestValue {
	if value, ok := m.Values[key]; ok {
		return value
	}

	switch key {
	case TestValueKeyPadding:
		return Padding{}
	case TestValueKeyMargin:
		return Margin{}
	default:
		panic(fmt.Sprintf("TestValueMap: unknown key %s", key))
	}
}

// GetPadding returns Padding payload, the zero value if it was not set.
// The payload is a shallow copy: slices, maps and pointers are shared with the stored value
func (m *TestValueMap) GetPadding() int {
	value, ok := m.Values[TestValueKeyPadding]
	if !ok {
		var zero int
		return zero
	}

	variant, ok := value.(Padding)
	if !ok {
		panic("unexpected condition: didn't find type int for Padding")
	}
	return variant.Value
}

// SetPadding puts Padding with the given payload replacing the previous one
func (m *TestValueMap) SetPadding(value int) {
	m.Set(Padding{Value: value})
}

// GetMargin returns Margin payload, the zero value if it was not set.
// The payload is a shallow copy: slices, maps and pointers are shared with the stored value
func (m *TestValueMap) GetMargin() string {
	value, ok := m.Values[TestValueKeyMargin]
	if !ok {
		var zero string
		return zero
	}

	variant, ok := value.(Margin)
	if !ok {
		panic("unexpected condition: didn't find type string for Margin")
	}
	return variant.Value
}

// SetMargin puts Margin with the given payload replacing the previous one
func (m *TestValueMap) SetMargin(value string) {
	m.Set(Margin{Value: value})
}
