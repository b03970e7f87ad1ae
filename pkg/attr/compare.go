package attr

// Delta describes how one attribute differs between two stores.
type Delta uint8

const (
	Unchanged Delta = iota // absent on both sides, or equal
	Added                  // absent in a, present in b
	Removed                // present in a, absent in b
	Updated                // present on both sides with different values
)

// String returns the string representation of the Delta.
func (d Delta) String() string {
	switch d {
	case Unchanged:
		return "Unchanged"
	case Added:
		return "Added"
	case Removed:
		return "Removed"
	case Updated:
		return "Updated"
	default:
		return "Unknown"
	}
}

// Compare reports how the scalar attribute under k differs from a to b.
func Compare[T comparable](a, b *Store, k Key[T]) Delta {
	return CompareFunc(a, b, k, func(x, y T) bool { return x == y })
}

// CompareEqual is Compare for values that define their own equality.
func CompareEqual[T interface{ Equal(T) bool }](a, b *Store, k Key[T]) Delta {
	return CompareFunc(a, b, k, func(x, y T) bool { return x.Equal(y) })
}

// CompareFunc reports how the attribute under k differs from a to b, using
// eq to compare values present on both sides. It panics with E201 if either
// store holds the name with another type.
func CompareFunc[T any](a, b *Store, k Key[T], eq func(x, y T) bool) Delta {
	ca := cellOf(a, k, "E201")
	cb := cellOf(b, k, "E201")
	switch {
	case ca == nil && cb == nil:
		return Unchanged
	case ca == nil:
		return Added
	case cb == nil:
		return Removed
	case eq(*ca, *cb):
		return Unchanged
	default:
		return Updated
	}
}
