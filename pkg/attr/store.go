package attr

import (
	"bytes"
	"encoding/json"
	"iter"
	"reflect"
	"slices"
	"strings"

	"github.com/vango-dev/elattr/internal/errors"
)

// entry is one stored attribute. cell is a *T for the entry's typ.
type entry struct {
	name  string
	typ   reflect.Type
	cell  any
	load  func() any
	clone func() entry
}

// Store is an ordered attribute map. The zero value is an empty store.
//
// A Store owns its values: Get and All hand out copies of collection
// attributes, and Set copies collection values on the way in.
// A Store is not safe for concurrent writes.
type Store struct {
	entries []entry
}

// Cloner is implemented by attribute values that share memory when copied.
// The store clones such values whenever they cross its boundary.
type Cloner[T any] interface {
	Clone() T
}

func own[T any](v T) T {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}
	return v
}

func (s *Store) find(name string) (int, bool) {
	return slices.BinarySearchFunc(s.entries, name, func(e entry, name string) int {
		return strings.Compare(e.name, name)
	})
}

// cellOf returns the storage cell for k, or nil when k is absent.
// code is the contract violation raised on a type mismatch.
func cellOf[T any](s *Store, k Key[T], code string) *T {
	if s == nil {
		return nil
	}
	i, ok := s.find(k.name)
	if !ok {
		return nil
	}
	e := s.entries[i]
	if want := typeOf[T](); e.typ != want {
		panic(errors.New(code).
			WithDetailf("attribute %q holds %s, accessed as %s", k.name, e.typ, want))
	}
	return e.cell.(*T)
}

func newEntry[T any](name string, cell *T) entry {
	return entry{
		name: name,
		typ:  typeOf[T](),
		cell: cell,
		load: func() any { return own(*cell) },
		clone: func() entry {
			dup := new(T)
			*dup = own(*cell)
			return newEntry(name, dup)
		},
	}
}

// insert adds a new entry for k at its sorted position. k must be absent.
func insert[T any](s *Store, k Key[T], cell *T) {
	i, _ := s.find(k.name)
	s.entries = slices.Insert(s.entries, i, newEntry(k.name, cell))
}

// Get returns the value stored under k and whether it is present.
// It panics with E201 if the name holds a value of another type.
func Get[T any](s *Store, k Key[T]) (T, bool) {
	cell := cellOf(s, k, "E201")
	if cell == nil {
		var zero T
		return zero, false
	}
	return own(*cell), true
}

// Set stores v under k. An existing value is overwritten in place, keeping
// its position and storage cell. It panics with E202 if the name holds a
// value of another type.
func Set[T any](s *Store, k Key[T], v T) {
	if cell := cellOf(s, k, "E202"); cell != nil {
		*cell = own(v)
		return
	}
	cell := new(T)
	*cell = own(v)
	insert(s, k, cell)
}

// Len returns the number of stored attributes.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// Has reports whether an attribute called name is stored.
func (s *Store) Has(name string) bool {
	if s == nil {
		return false
	}
	_, ok := s.find(name)
	return ok
}

// Keys returns the stored attribute names in ascending order.
func (s *Store) Keys() []string {
	if s == nil {
		return nil
	}
	keys := make([]string, len(s.entries))
	for i, e := range s.entries {
		keys[i] = e.name
	}
	return keys
}

// All iterates over the stored attributes in ascending name order.
func (s *Store) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if s == nil {
			return
		}
		for _, e := range s.entries {
			if !yield(e.name, e.load()) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the store.
func (s *Store) Clone() Store {
	if s == nil || len(s.entries) == 0 {
		return Store{}
	}
	entries := make([]entry, len(s.entries))
	for i, e := range s.entries {
		entries[i] = e.clone()
	}
	return Store{entries: entries}
}

// MarshalJSON encodes the store as a JSON object with keys in store order.
func (s *Store) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	i := 0
	for name, v := range s.All() {
		if i > 0 {
			buf.WriteByte(',')
		}
		i++
		kb, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
