package attr

import "reflect"

// Key names an attribute and fixes the Go type of its value.
type Key[T any] struct {
	name string
}

// NewKey returns the key for the attribute called name.
func NewKey[T any](name string) Key[T] {
	return Key[T]{name: name}
}

// Name returns the attribute name.
func (k Key[T]) Name() string { return k.name }

// String implements fmt.Stringer.
func (k Key[T]) String() string {
	return k.name + "(" + typeOf[T]().String() + ")"
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}
