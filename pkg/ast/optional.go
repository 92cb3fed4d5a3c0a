package ast

// Optional is a two variant presence type: Present(value) or Absent. It is
// distinct from a null Value — an input field can carry an explicit default
// of null, or no default at all, and consumers must be able to tell the two
// apart. The fields are unexported so a present-but-zero or absent-but-set
// state cannot be constructed.
type Optional[V any] struct {
	value     V
	isPresent bool
}

func Present[V any](value V) Optional[V] {
	return Optional[V]{value: value, isPresent: true}
}

func Absent[V any]() Optional[V] {
	return Optional[V]{}
}

func (o Optional[V]) IsPresent() bool {
	return o.isPresent
}

// Value returns the contained value, or the zero value when absent.
func (o Optional[V]) Value() V {
	return o.value
}

// Get returns the contained value and whether it is present.
func (o Optional[V]) Get() (V, bool) {
	return o.value, o.isPresent
}
