// Package vdom provides typed element descriptors and their attribute diff.
//
// Each element kind is its own Go type pairing a children sequence with an
// attribute store. The setters an element exposes are gated by the
// capabilities it implements, mirroring the DOM interfaces:
//
//   - Element: Class and Attr, available on every kind.
//   - HTMLElement: a refinement of Element implemented by every kind.
//   - HTMLCanvasElement: adds Width and Height; only Canvas implements it.
//
// # Element API
//
// Elements are created with a constructor taking their children and refined
// with chained setters:
//
//	view := NewDiv(
//	    NewHeader(Text("Header")).Class(attr.Labels{"header", "bold"}),
//	    NewDiv(NewP(Text("Hello World!"))).Class(attr.Label("hello-world")),
//	    NewCanvas().
//	        Class(attr.Labels{"game", "render-view"}).
//	        Width(200).
//	        Height(100),
//	)
//
// Setters mutate the element and return the same pointer. Once an element
// has been handed to a parent it must not be changed again.
//
// # Diffing
//
// Each capability contributes a rule comparing the attributes it declares.
// ElementChanges, HTMLElementChanges and CanvasElementChanges compose those
// rules bottom-up, so a more specific comparison never skips an attribute
// covered by a more general one. Every kind also has a Changes method bound
// to its own rule, which is what Diff uses.
package vdom
