// Package vtest provides testing helpers for element attributes and diffs.
//
// # Diff Assertions
//
//	prev := vdom.NewCanvas().Width(10)
//	next := prev.Clone().Width(20)
//	vtest.ExpectChangedKeys(t, prev, next, "canvas_width")
//	vtest.ExpectChange(t, prev, next, "canvas_width", attr.Updated)
//	vtest.ExpectUnchanged(t, prev, prev.Clone())
//
// # Attribute Assertions
//
//	vtest.ExpectAttribute(t, next.Attrs(), vdom.CanvasWidthKey, 20)
//	vtest.ExpectClasses(t, next, "view", "dynamic")
//	vtest.ExpectNoAttribute(t, next.Attrs(), "canvas_height")
//
// # Contract Violations
//
// Type mismatches on a store panic with a coded error:
//
//	vtest.ExpectPanicCode(t, "E201", func() {
//	    attr.Get(s, attr.NewKey[string]("canvas_width"))
//	})
package vtest
