package junction

// An Enumerable is a type with a fixed set of valid values,
// typically a string type whose exported constants enumerate them.
//
// [Environment] is junction's own example of one.
type Enumerable interface {
	String() string
	Valid() error
}
