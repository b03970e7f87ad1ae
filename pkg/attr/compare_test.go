package attr

import "testing"

func TestCompare(t *testing.T) {
	build := func(w *uint) *Store {
		var s Store
		if w != nil {
			Set(&s, testWidth, *w)
		}
		return &s
	}
	u := func(v uint) *uint { return &v }

	tests := []struct {
		name string
		a, b *uint
		want Delta
	}{
		{"both absent", nil, nil, Unchanged},
		{"added", nil, u(1), Added},
		{"removed", u(1), nil, Removed},
		{"equal", u(5), u(5), Unchanged},
		{"updated", u(5), u(6), Updated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(build(tt.a), build(tt.b), testWidth); got != tt.want {
				t.Errorf("Compare() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompareEqualClassSets(t *testing.T) {
	var a, b Store
	SetClassLike(&a, testClass, Labels{"view", "dynamic"})
	SetClassLike(&b, testClass, Labels{"dynamic", "view"})

	if got := CompareEqual(&a, &b, testClass); got != Unchanged {
		t.Errorf("CompareEqual() = %v, want Unchanged", got)
	}

	SetClassLike(&b, testClass, Label("extra"))
	if got := CompareEqual(&a, &b, testClass); got != Updated {
		t.Errorf("CompareEqual() = %v, want Updated", got)
	}
}

func TestCompareTypeMismatchPanics(t *testing.T) {
	var a, b Store
	Set(&a, NewKey[int]("canvas_width"), 1)
	Set(&b, testWidth, 1)
	expectContractPanic(t, "E201", func() { Compare(&a, &b, testWidth) })
}

func TestDeltaString(t *testing.T) {
	for d, want := range map[Delta]string{
		Unchanged: "Unchanged",
		Added:     "Added",
		Removed:   "Removed",
		Updated:   "Updated",
		Delta(99): "Unknown",
	} {
		if got := d.String(); got != want {
			t.Errorf("Delta(%d).String() = %q, want %q", d, got, want)
		}
	}
}
