package types

type Entity interface {
	URI() string
	Type() string

	// Attribute returns the value stored under name. The boolean result is
	// false when the attribute is undefined or holds a null value.
	Attribute(name string) (any, bool)
	ForEachAttribute(func(attributeName string, contents any))

	MarshalJSON() ([]byte, error)
}
