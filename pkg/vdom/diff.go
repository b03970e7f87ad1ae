package vdom

import (
	"strings"

	"github.com/vango-dev/elattr/pkg/attr"
)

// Change is one attribute that differs between two elements.
type Change struct {
	Key string     // Attribute name
	Op  attr.Delta // Added, Removed or Updated, seen from the previous element
}

// String returns "key:Op".
func (c Change) String() string {
	return c.Key + ":" + c.Op.String()
}

// Changes lists attribute differences in rule order.
type Changes []Change

// Changed reports whether any attribute differs.
func (c Changes) Changed() bool { return len(c) > 0 }

// Keys returns the names of the changed attributes.
func (c Changes) Keys() []string {
	keys := make([]string, len(c))
	for i, ch := range c {
		keys[i] = ch.Key
	}
	return keys
}

// String joins the changes with commas.
func (c Changes) String() string {
	parts := make([]string, len(c))
	for i, ch := range c {
		parts[i] = ch.String()
	}
	return strings.Join(parts, ",")
}

func record(out Changes, key string, d attr.Delta) Changes {
	if d == attr.Unchanged {
		return out
	}
	return append(out, Change{Key: key, Op: d})
}

// elementRule compares the attributes declared by Element.
func elementRule(a, b *attr.Store, out Changes) Changes {
	out = record(out, ClassKey.Name(), attr.CompareEqual(a, b, ClassKey))
	return record(out, CustomKey.Name(), attr.CompareEqual(a, b, CustomKey))
}

// canvasRule compares the attributes declared by HTMLCanvasElement and
// everything it refines.
func canvasRule(a, b *attr.Store, out Changes) Changes {
	out = elementRule(a, b, out)
	out = record(out, CanvasWidthKey.Name(), attr.Compare(a, b, CanvasWidthKey))
	return record(out, CanvasHeightKey.Name(), attr.Compare(a, b, CanvasHeightKey))
}

// ElementChanges compares the attributes declared by Element.
func ElementChanges[E Element[E]](a, b E) Changes {
	return elementRule(a.Attrs(), b.Attrs(), nil)
}

// HTMLElementChanges compares the attributes declared by HTMLElement.
func HTMLElementChanges[E HTMLElement[E]](a, b E) Changes {
	return ElementChanges(a, b)
}

// CanvasElementChanges compares the attributes declared by HTMLCanvasElement.
func CanvasElementChanges[E HTMLCanvasElement[E]](a, b E) Changes {
	return canvasRule(a.Attrs(), b.Attrs(), nil)
}

// ElementDiff reports whether any Element attribute differs.
func ElementDiff[E Element[E]](a, b E) bool {
	return ElementChanges(a, b).Changed()
}

// HTMLElementDiff reports whether any HTMLElement attribute differs.
func HTMLElementDiff[E HTMLElement[E]](a, b E) bool {
	return HTMLElementChanges(a, b).Changed()
}

// CanvasElementDiff reports whether any HTMLCanvasElement attribute differs.
func CanvasElementDiff[E HTMLCanvasElement[E]](a, b E) bool {
	return CanvasElementChanges(a, b).Changed()
}

// Diffable is an element kind that knows its own diff rule.
type Diffable[E any] interface {
	Kind() string
	Changes(other E) Changes
}

// Diff reports whether the attributes of two elements of the same kind
// differ, using the kind's most specific rule.
func Diff[E Diffable[E]](a, b E) bool {
	return a.Changes(b).Changed()
}
