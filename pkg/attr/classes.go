package attr

import (
	"encoding/json"
	"iter"
	"slices"
	"strings"
)

// ClassSource produces class labels. Sources are restartable: every call to
// Classes yields the same labels again.
//
// Each yielded item is split on whitespace before it joins a ClassSet, so
// Label("a b") and Labels{"a", "b"} produce the same set, and Label("")
// contributes nothing.
type ClassSource interface {
	Classes() iter.Seq[string]
}

// Label is a single class label.
type Label string

// Classes implements ClassSource.
func (l Label) Classes() iter.Seq[string] {
	return func(yield func(string) bool) {
		yield(string(l))
	}
}

// Labels is a list of class labels.
type Labels []string

// Classes implements ClassSource.
func (l Labels) Classes() iter.Seq[string] {
	return slices.Values(l)
}

// Sources chains several sources, in order.
type Sources []ClassSource

// Classes implements ClassSource.
func (s Sources) Classes() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, src := range s {
			if src == nil {
				continue
			}
			for label := range src.Classes() {
				if !yield(label) {
					return
				}
			}
		}
	}
}

// Compose returns a source yielding the labels of every src in turn.
func Compose(srcs ...ClassSource) ClassSource {
	return Sources(srcs)
}

// ClassSet is a sorted set of class labels. Merging splits labels on
// whitespace and drops empty ones, so two sets built from the same labels
// in any order are equal.
type ClassSet struct {
	labels []string
}

// NewClassSet returns the set of labels produced by src.
func NewClassSet(src ClassSource) ClassSet {
	var c ClassSet
	if src != nil {
		c.MergeItems(src.Classes())
	}
	return c
}

// MergeItems implements Mergeable.
func (c *ClassSet) MergeItems(items iter.Seq[string]) {
	for item := range items {
		for _, label := range strings.Fields(item) {
			i, found := slices.BinarySearch(c.labels, label)
			if !found {
				c.labels = slices.Insert(c.labels, i, label)
			}
		}
	}
}

// Has reports whether label is in the set.
func (c ClassSet) Has(label string) bool {
	_, found := slices.BinarySearch(c.labels, label)
	return found
}

// Len returns the number of labels.
func (c ClassSet) Len() int { return len(c.labels) }

// Labels returns the labels in ascending order.
func (c ClassSet) Labels() []string { return slices.Clone(c.labels) }

// All iterates over the labels in ascending order.
func (c ClassSet) All() iter.Seq[string] { return slices.Values(c.labels) }

// Equal reports whether both sets hold the same labels.
func (c ClassSet) Equal(other ClassSet) bool {
	return slices.Equal(c.labels, other.labels)
}

// Clone implements Cloner.
func (c ClassSet) Clone() ClassSet {
	return ClassSet{labels: slices.Clone(c.labels)}
}

// String returns the labels joined by spaces, as in an HTML class attribute.
func (c ClassSet) String() string {
	return strings.Join(c.labels, " ")
}

// MarshalJSON encodes the set as a JSON array.
func (c ClassSet) MarshalJSON() ([]byte, error) {
	if c.labels == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c.labels)
}
