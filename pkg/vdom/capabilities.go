package vdom

import "github.com/vango-dev/elattr/pkg/attr"

// Attribute keys declared by the capabilities.
var (
	ClassKey        = attr.NewKey[attr.ClassSet]("class")
	CustomKey       = attr.NewKey[attr.CustomAttrs]("custom")
	CanvasWidthKey  = attr.NewKey[uint]("canvas_width")
	CanvasHeightKey = attr.NewKey[uint]("canvas_height")
)

// AttrHolder exposes an element's attribute store.
type AttrHolder interface {
	Attrs() *attr.Store
}

// Element is the capability shared by every element kind.
// Self is the concrete element type returned by the setters.
type Element[Self any] interface {
	AttrHolder

	// Class merges the labels of src into the class attribute.
	Class(src attr.ClassSource) Self

	// Attr sets a free-form attribute such as data-id or aria-label.
	Attr(name, value string) Self
}

// HTMLElement refines Element. It adds no setters yet and can only be
// implemented by the element kinds of this package.
type HTMLElement[Self any] interface {
	Element[Self]
	htmlElement()
}

// HTMLCanvasElement refines HTMLElement with the drawing surface size.
type HTMLCanvasElement[Self any] interface {
	HTMLElement[Self]
	Width(w uint) Self
	Height(h uint) Self
}

func setClass(s *attr.Store, src attr.ClassSource) {
	attr.SetClassLike(s, ClassKey, src)
}

func setCustom(s *attr.Store, name, value string) {
	attr.SetCustom(s, CustomKey, name, value)
}
