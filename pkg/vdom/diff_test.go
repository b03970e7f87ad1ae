package vdom

import (
	"slices"
	"testing"

	"github.com/vango-dev/elattr/pkg/attr"
)

func TestDiffReflexive(t *testing.T) {
	div := NewDiv().Class(attr.Labels{"a", "b"}).Attr("data-id", "1")
	canvas := NewCanvas().Width(200).Height(100).Class(attr.Label("view"))

	if Diff(div, div) {
		t.Error("Diff(div, div) = true")
	}
	if Diff(canvas, canvas) {
		t.Error("Diff(canvas, canvas) = true")
	}
	if CanvasElementDiff(canvas, canvas.Clone()) {
		t.Error("canvas differs from its clone")
	}
}

func TestDiffSymmetric(t *testing.T) {
	canvases := []*Canvas{
		NewCanvas(),
		NewCanvas().Width(200),
		NewCanvas().Width(200).Height(100),
		NewCanvas().Height(100),
		NewCanvas().Class(attr.Label("view")),
		NewCanvas().Class(attr.Labels{"view", "dynamic"}).Width(200),
		NewCanvas().Attr("data-id", "1"),
	}

	for i, a := range canvases {
		for j, b := range canvases {
			if Diff(a, b) != Diff(b, a) {
				t.Errorf("Diff(%d,%d) != Diff(%d,%d)", i, j, j, i)
			}
			if (i == j) == Diff(a, b) {
				t.Errorf("Diff(%d,%d) = %v", i, j, Diff(a, b))
			}
		}
	}
}

func TestCanvasDiffIncludesHeight(t *testing.T) {
	a := NewCanvas().Width(200).Height(100).Class(attr.Label("view"))
	b := a.Clone().Height(101)

	if !CanvasElementDiff(a, b) {
		t.Error("height change not detected")
	}
	if !Diff(a, b) {
		t.Error("Diff should use the canvas rule")
	}
	if HTMLElementDiff(a, b) {
		t.Error("HTMLElementDiff should only look at element attributes")
	}

	want := Changes{{Key: "canvas_height", Op: attr.Updated}}
	if got := a.Changes(b); !slices.Equal(got, want) {
		t.Errorf("Changes() = %v, want %v", got, want)
	}
}

func TestCanvasDiffIncludesElementRule(t *testing.T) {
	a := NewCanvas().Width(200).Class(attr.Label("view"))
	b := NewCanvas().Width(200).Class(attr.Label("other"))

	if !CanvasElementDiff(a, b) {
		t.Error("canvas diff skipped the class attribute")
	}
}

func TestClassPresenceDiffers(t *testing.T) {
	a := NewDiv()
	b := NewDiv().Class(attr.Label("card"))

	if !ElementDiff(a, b) {
		t.Error("unset vs set class should differ")
	}
	if got := a.Changes(b); !slices.Equal(got, Changes{{Key: "class", Op: attr.Added}}) {
		t.Errorf("a.Changes(b) = %v", got)
	}
	if got := b.Changes(a); !slices.Equal(got, Changes{{Key: "class", Op: attr.Removed}}) {
		t.Errorf("b.Changes(a) = %v", got)
	}
}

func TestEmptyClassSetIsPresent(t *testing.T) {
	a := NewP()
	b := NewP().Class(attr.Labels{})

	if !Diff(a, b) {
		t.Error("present empty class set should differ from absent class")
	}
}

func TestClassInsertionOrderIgnored(t *testing.T) {
	a := NewCanvas().Width(200).Height(100).Class(attr.Labels{"view", "dynamic"})
	b := NewCanvas().Width(200).Height(100).Class(attr.Labels{"dynamic", "view"})

	if Diff(a, b) {
		t.Errorf("same labels in a different order reported as changed: %v", a.Changes(b))
	}
}

func TestClassDuplicatesAcrossCallsIgnored(t *testing.T) {
	a := NewHeader().Class(attr.Labels{"a", "b"}).Class(attr.Labels{"b", "c"})
	b := NewHeader().Class(attr.Labels{"c", "a", "b"})

	if Diff(a, b) {
		t.Error("merged label sets should be equal")
	}
}

func TestCustomAttrsDiff(t *testing.T) {
	a := NewDiv().Attr("data-id", "1")
	b := NewDiv().Attr("data-id", "2")

	want := Changes{{Key: "custom", Op: attr.Updated}}
	if got := a.Changes(b); !slices.Equal(got, want) {
		t.Errorf("Changes() = %v, want %v", got, want)
	}
}

func TestChangesRuleOrder(t *testing.T) {
	a := NewCanvas()
	b := NewCanvas().Height(1).Width(2).Attr("x", "y").Class(attr.Label("c"))

	got := a.Changes(b).Keys()
	want := []string{"class", "custom", "canvas_width", "canvas_height"}
	if !slices.Equal(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if s := a.Changes(b).String(); s != "class:Added,custom:Added,canvas_width:Added,canvas_height:Added" {
		t.Errorf("String() = %q", s)
	}
}

func TestDiffNilElements(t *testing.T) {
	var a, b *Canvas
	if Diff(a, b) {
		t.Error("two nil canvases should not differ")
	}
	if !Diff(a, NewCanvas().Width(1)) {
		t.Error("nil vs sized canvas should differ")
	}
	if Diff(a, NewCanvas()) {
		t.Error("nil vs empty canvas have the same attributes")
	}
}

func TestChangesEmpty(t *testing.T) {
	var c Changes
	if c.Changed() {
		t.Error("empty Changes reported changed")
	}
	if len(c.Keys()) != 0 || c.String() != "" {
		t.Error("empty Changes should have no keys")
	}
}
