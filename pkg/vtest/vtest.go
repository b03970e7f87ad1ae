package vtest

import (
	stderrors "errors"
	"slices"
	"testing"

	"github.com/vango-dev/elattr/internal/errors"
	"github.com/vango-dev/elattr/pkg/attr"
	"github.com/vango-dev/elattr/pkg/vdom"
)

// ExpectUnchanged asserts that prev and next have no attribute changes.
func ExpectUnchanged[E vdom.Diffable[E]](t testing.TB, prev, next E) {
	t.Helper()
	if changes := prev.Changes(next); changes.Changed() {
		t.Errorf("expected %s attributes to be unchanged, got %s", prev.Kind(), changes)
	}
}

// ExpectChangedKeys asserts that exactly keys changed from prev to next, in
// that order.
//
// Example:
//
//	vtest.ExpectChangedKeys(t, prev, next, "class", "canvas_height")
func ExpectChangedKeys[E vdom.Diffable[E]](t testing.TB, prev, next E, keys ...string) {
	t.Helper()
	got := prev.Changes(next).Keys()
	if len(keys) == 0 {
		keys = []string{}
	}
	if !slices.Equal(got, keys) {
		t.Errorf("expected %s changed keys %v, got %v", prev.Kind(), keys, got)
	}
}

// ExpectChange asserts that key changed from prev to next with op.
func ExpectChange[E vdom.Diffable[E]](t testing.TB, prev, next E, key string, op attr.Delta) {
	t.Helper()
	changes := prev.Changes(next)
	for _, c := range changes {
		if c.Key == key {
			if c.Op != op {
				t.Errorf("expected %s change %s:%s, got %s", prev.Kind(), key, op, c)
			}
			return
		}
	}
	t.Errorf("expected %s change %s:%s, got %q", prev.Kind(), key, op, changes.String())
}

// ExpectAttribute asserts that s holds want under k.
//
// Example:
//
//	vtest.ExpectAttribute(t, c.Attrs(), vdom.CanvasWidthKey, 200)
func ExpectAttribute[T comparable](t testing.TB, s *attr.Store, k attr.Key[T], want T) {
	t.Helper()
	got, ok := attr.Get(s, k)
	if !ok {
		t.Errorf("expected attribute %s = %v, not set", k, want)
		return
	}
	if got != want {
		t.Errorf("expected attribute %s = %v, got %v", k, want, got)
	}
}

// ExpectNoAttribute asserts that s has nothing stored under name.
func ExpectNoAttribute(t testing.TB, s *attr.Store, name string) {
	t.Helper()
	if s.Has(name) {
		t.Errorf("expected attribute %q to be absent, store has %v", name, s.Keys())
	}
}

// ExpectClasses asserts that e carries exactly labels as its class set.
// Order and duplicates in labels are ignored.
func ExpectClasses(t testing.TB, e vdom.AttrHolder, labels ...string) {
	t.Helper()
	got, ok := attr.Get(e.Attrs(), vdom.ClassKey)
	if !ok {
		t.Errorf("expected classes %v, class not set", labels)
		return
	}
	want := attr.NewClassSet(attr.Labels(labels))
	if !got.Equal(want) {
		t.Errorf("expected classes %q, got %q", want.String(), got.String())
	}
}

// ExpectPanicCode asserts that fn panics with an error carrying code.
func ExpectPanicCode(t testing.TB, code string, fn func()) {
	t.Helper()
	p := catch(fn)
	if p == nil {
		t.Errorf("expected panic with %s, got none", code)
		return
	}
	err, ok := p.(error)
	var ee *errors.ElattrError
	if !ok || !stderrors.As(err, &ee) {
		t.Errorf("expected panic with %s, got %v", code, p)
		return
	}
	if ee.Code != code {
		t.Errorf("expected panic with %s, got %s", code, ee.Code)
	}
}

func catch(fn func()) (p any) {
	defer func() {
		p = recover()
	}()
	fn()
	return nil
}
