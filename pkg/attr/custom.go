package attr

import (
	"encoding/json"
	"iter"
	"slices"
	"strings"
)

// Pair is a free-form attribute such as data-id="7".
type Pair struct {
	Name  string
	Value string
}

// CustomAttrs holds free-form attributes sorted by name. Merging a name
// that is already present replaces its value.
type CustomAttrs struct {
	pairs []Pair
}

func (c *CustomAttrs) find(name string) (int, bool) {
	return slices.BinarySearchFunc(c.pairs, name, func(p Pair, name string) int {
		return strings.Compare(p.Name, name)
	})
}

// MergeItems implements Mergeable.
func (c *CustomAttrs) MergeItems(items iter.Seq[Pair]) {
	for p := range items {
		if p.Name == "" {
			continue
		}
		i, found := c.find(p.Name)
		if found {
			c.pairs[i].Value = p.Value
			continue
		}
		c.pairs = slices.Insert(c.pairs, i, p)
	}
}

// Get returns the value of the attribute called name.
func (c CustomAttrs) Get(name string) (string, bool) {
	i, found := c.find(name)
	if !found {
		return "", false
	}
	return c.pairs[i].Value, true
}

// Len returns the number of attributes.
func (c CustomAttrs) Len() int { return len(c.pairs) }

// All iterates over the attributes in ascending name order.
func (c CustomAttrs) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, p := range c.pairs {
			if !yield(p.Name, p.Value) {
				return
			}
		}
	}
}

// Equal reports whether both collections hold the same attributes.
func (c CustomAttrs) Equal(other CustomAttrs) bool {
	return slices.Equal(c.pairs, other.pairs)
}

// Clone implements Cloner.
func (c CustomAttrs) Clone() CustomAttrs {
	return CustomAttrs{pairs: slices.Clone(c.pairs)}
}

// MarshalJSON encodes the attributes as a JSON object.
func (c CustomAttrs) MarshalJSON() ([]byte, error) {
	m := make(map[string]string, len(c.pairs))
	for _, p := range c.pairs {
		m[p.Name] = p.Value
	}
	return json.Marshal(m)
}
