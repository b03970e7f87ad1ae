package descriptor

import (
	"context"

	"github.com/vango-dev/elattr/internal/errors"
	"github.com/vango-dev/elattr/pkg/telemetry"
	"github.com/vango-dev/elattr/pkg/vdom"
)

// Diff compares two elements of the same kind using that kind's
// capability rule and records the result on r, which may be nil.
func Diff(ctx context.Context, r *telemetry.Recorder, prev, next Element) (vdom.Changes, error) {
	if prev.Kind() != next.Kind() {
		return nil, errors.New("E212").WithDetailf("%s vs %s", prev.Kind(), next.Kind())
	}

	switch a := prev.(type) {
	case *vdom.Div:
		return telemetry.Observe(ctx, r, a, next.(*vdom.Div)), nil
	case *vdom.Header:
		return telemetry.Observe(ctx, r, a, next.(*vdom.Header)), nil
	case *vdom.P:
		return telemetry.Observe(ctx, r, a, next.(*vdom.P)), nil
	case *vdom.Canvas:
		return telemetry.Observe(ctx, r, a, next.(*vdom.Canvas)), nil
	default:
		return nil, errors.New("E210").WithDetailf("%q", prev.Kind())
	}
}

// Change is the JSON form of one attribute change.
type Change struct {
	Key string `json:"key"`
	Op  string `json:"op"`
}

// Result is the JSON form of a diff.
type Result struct {
	Kind    string   `json:"kind"`
	Changed bool     `json:"changed"`
	Changes []Change `json:"changes"`
}

// NewResult converts changes between two elements of kind. Changes is never
// nil, so it encodes as [] when nothing differs.
func NewResult(kind string, changes vdom.Changes) Result {
	r := Result{
		Kind:    kind,
		Changed: changes.Changed(),
		Changes: make([]Change, 0, len(changes)),
	}
	for _, c := range changes {
		r.Changes = append(r.Changes, Change{Key: c.Key, Op: c.Op.String()})
	}
	return r
}
