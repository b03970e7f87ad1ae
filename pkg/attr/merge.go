package attr

import "iter"

// Mergeable is implemented by collection attributes that absorb new items
// into their existing contents.
type Mergeable[E any] interface {
	MergeItems(items iter.Seq[E])
}

// MergeInto merges items into the collection stored under k. When k is
// absent, a zero T is created and seeded from items. It panics with E203 if
// the name holds a value of another type.
func MergeInto[T any, E any, PT interface {
	*T
	Mergeable[E]
}](s *Store, k Key[T], items iter.Seq[E]) {
	if cell := cellOf(s, k, "E203"); cell != nil {
		PT(cell).MergeItems(items)
		return
	}
	cell := new(T)
	PT(cell).MergeItems(items)
	insert(s, k, cell)
}

// SetSimple stores a singular scalar attribute such as a width.
func SetSimple[T any](s *Store, k Key[T], v T) {
	Set(s, k, v)
}

// SetClassLike merges the labels produced by src into the label set under k.
// A nil src still creates an empty set when k is absent.
func SetClassLike(s *Store, k Key[ClassSet], src ClassSource) {
	if src == nil {
		src = Labels(nil)
	}
	MergeInto(s, k, src.Classes())
}

// SetCustom sets one free-form attribute inside the collection under k.
func SetCustom(s *Store, k Key[CustomAttrs], name, value string) {
	MergeInto(s, k, iter.Seq[Pair](func(yield func(Pair) bool) {
		yield(Pair{Name: name, Value: value})
	}))
}
