// Package attr provides the typed attribute store backing element descriptors.
//
// A Store maps attribute names to values of arbitrary Go types. Values are
// addressed through a Key[T], which binds the name to the value type so the
// compiler rejects most misuse:
//
//	var width = attr.NewKey[uint]("canvas_width")
//
//	var s attr.Store
//	attr.Set(&s, width, 200)
//	w, ok := attr.Get(&s, width) // 200, true
//
// A name is bound to the type it was first stored with for the lifetime of
// the Store. Reading, writing or merging it through a Key of another type is
// a programming error and panics with an *errors.ElattrError (codes E201,
// E202 and E203). Absence is not an error: Get reports it through its
// boolean result.
//
// # Ordering
//
// Entries are kept sorted by name. Keys, All and MarshalJSON walk them in
// ascending order, and overwriting a name keeps its slot and storage cell.
//
// # Multi-valued attributes
//
// Collection attributes implement Mergeable and are grown with MergeInto.
// ClassSet merges text labels as a sorted set; CustomAttrs merges
// name/value pairs with last-write-wins per name. Label sources
// (ClassSource) normalize a single label, a slice of labels, or any
// composition of sources into the same sequence of labels.
package attr
