package vdom

import "testing"

func TestSeqFlattens(t *testing.T) {
	inner := Seq(Text("b"), Text("c"))
	got := Seq(Text("a"), inner, nil, Seq(), Text("d"))

	want := []Text{"a", "b", "c", "d"}
	if got.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", got.Len(), len(want))
	}
	for i, n := range got {
		if n != want[i] {
			t.Errorf("child %d = %v, want %v", i, n, want[i])
		}
	}
}

func TestSeqEmpty(t *testing.T) {
	if Seq() != nil {
		t.Error("Seq() should be the nil sequence")
	}
	var zero Children
	if zero.Len() != 0 {
		t.Error("zero Children should be empty")
	}
	if Seq(nil, Children(nil)) != nil {
		t.Error("Seq of nils should be empty")
	}
}

func TestSeqDropsTypedNilElements(t *testing.T) {
	var div *Div
	var canvas *Canvas
	got := Seq(div, Text("x"), canvas)
	if got.Len() != 1 {
		t.Errorf("Len() = %d, want 1", got.Len())
	}
}

func TestAppendDoesNotAlias(t *testing.T) {
	base := Seq(Text("a"))
	x := base.Append(Text("x"))
	y := base.Append(Text("y"))

	if x[1] != Text("x") || y[1] != Text("y") {
		t.Errorf("Append aliased its receiver: x=%v y=%v", x, y)
	}
	if base.Len() != 1 {
		t.Errorf("receiver changed length to %d", base.Len())
	}
}

func TestChildrenAll(t *testing.T) {
	c := Seq(Text("a"), NewP(Text("b")), Text("c"))
	n := 0
	for node := range c.All() {
		n++
		if n == 2 {
			if _, ok := node.(*P); !ok {
				t.Errorf("second node = %T, want *P", node)
			}
			break
		}
	}
	if n != 2 {
		t.Errorf("iterations = %d, want 2", n)
	}
}
