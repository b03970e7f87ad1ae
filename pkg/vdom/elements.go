package vdom

import "github.com/vango-dev/elattr/pkg/attr"

// Div is the <div> element.
type Div struct {
	attrs    attr.Store
	children Children
}

// NewDiv returns a <div> element with the given children.
func NewDiv(children ...Node) *Div {
	return &Div{children: Seq(children...)}
}

func (*Div) isNode()      {}
func (*Div) htmlElement() {}

// Kind returns the tag name.
func (*Div) Kind() string { return "div" }

// Attrs implements AttrHolder.
func (e *Div) Attrs() *attr.Store {
	if e == nil {
		return nil
	}
	return &e.attrs
}

// Children returns the child sequence.
func (e *Div) Children() Children {
	if e == nil {
		return nil
	}
	return e.children
}

// Class implements Element.
func (e *Div) Class(src attr.ClassSource) *Div {
	setClass(&e.attrs, src)
	return e
}

// Attr implements Element.
func (e *Div) Attr(name, value string) *Div {
	setCustom(&e.attrs, name, value)
	return e
}

// Clone returns a copy with its own attribute store. Children are shared.
func (e *Div) Clone() *Div {
	return &Div{attrs: e.attrs.Clone(), children: e.children}
}

// Changes reports the attribute differences from e to other.
func (e *Div) Changes(other *Div) Changes {
	return HTMLElementChanges(e, other)
}

// Header is the <header> element.
type Header struct {
	attrs    attr.Store
	children Children
}

// NewHeader returns a <header> element with the given children.
func NewHeader(children ...Node) *Header {
	return &Header{children: Seq(children...)}
}

func (*Header) isNode()      {}
func (*Header) htmlElement() {}

// Kind returns the tag name.
func (*Header) Kind() string { return "header" }

// Attrs implements AttrHolder.
func (e *Header) Attrs() *attr.Store {
	if e == nil {
		return nil
	}
	return &e.attrs
}

// Children returns the child sequence.
func (e *Header) Children() Children {
	if e == nil {
		return nil
	}
	return e.children
}

// Class implements Element.
func (e *Header) Class(src attr.ClassSource) *Header {
	setClass(&e.attrs, src)
	return e
}

// Attr implements Element.
func (e *Header) Attr(name, value string) *Header {
	setCustom(&e.attrs, name, value)
	return e
}

// Clone returns a copy with its own attribute store. Children are shared.
func (e *Header) Clone() *Header {
	return &Header{attrs: e.attrs.Clone(), children: e.children}
}

// Changes reports the attribute differences from e to other.
func (e *Header) Changes(other *Header) Changes {
	return HTMLElementChanges(e, other)
}

// P is the <p> element.
type P struct {
	attrs    attr.Store
	children Children
}

// NewP returns a <p> element with the given children.
func NewP(children ...Node) *P {
	return &P{children: Seq(children...)}
}

func (*P) isNode()      {}
func (*P) htmlElement() {}

// Kind returns the tag name.
func (*P) Kind() string { return "p" }

// Attrs implements AttrHolder.
func (e *P) Attrs() *attr.Store {
	if e == nil {
		return nil
	}
	return &e.attrs
}

// Children returns the child sequence.
func (e *P) Children() Children {
	if e == nil {
		return nil
	}
	return e.children
}

// Class implements Element.
func (e *P) Class(src attr.ClassSource) *P {
	setClass(&e.attrs, src)
	return e
}

// Attr implements Element.
func (e *P) Attr(name, value string) *P {
	setCustom(&e.attrs, name, value)
	return e
}

// Clone returns a copy with its own attribute store. Children are shared.
func (e *P) Clone() *P {
	return &P{attrs: e.attrs.Clone(), children: e.children}
}

// Changes reports the attribute differences from e to other.
func (e *P) Changes(other *P) Changes {
	return HTMLElementChanges(e, other)
}

// Canvas is the <canvas> element.
type Canvas struct {
	attrs    attr.Store
	children Children
}

// NewCanvas returns a <canvas> element with the given children.
func NewCanvas(children ...Node) *Canvas {
	return &Canvas{children: Seq(children...)}
}

func (*Canvas) isNode()      {}
func (*Canvas) htmlElement() {}

// Kind returns the tag name.
func (*Canvas) Kind() string { return "canvas" }

// Attrs implements AttrHolder.
func (e *Canvas) Attrs() *attr.Store {
	if e == nil {
		return nil
	}
	return &e.attrs
}

// Children returns the child sequence.
func (e *Canvas) Children() Children {
	if e == nil {
		return nil
	}
	return e.children
}

// Class implements Element.
func (e *Canvas) Class(src attr.ClassSource) *Canvas {
	setClass(&e.attrs, src)
	return e
}

// Attr implements Element.
func (e *Canvas) Attr(name, value string) *Canvas {
	setCustom(&e.attrs, name, value)
	return e
}

// Clone returns a copy with its own attribute store. Children are shared.
func (e *Canvas) Clone() *Canvas {
	return &Canvas{attrs: e.attrs.Clone(), children: e.children}
}

// Changes reports the attribute differences from e to other.
func (e *Canvas) Changes(other *Canvas) Changes {
	return CanvasElementChanges(e, other)
}

// Width implements HTMLCanvasElement.
func (e *Canvas) Width(w uint) *Canvas {
	attr.SetSimple(&e.attrs, CanvasWidthKey, w)
	return e
}

// Height implements HTMLCanvasElement.
func (e *Canvas) Height(h uint) *Canvas {
	attr.SetSimple(&e.attrs, CanvasHeightKey, h)
	return e
}

var (
	_ HTMLElement[*Div]          = (*Div)(nil)
	_ HTMLElement[*Header]       = (*Header)(nil)
	_ HTMLElement[*P]            = (*P)(nil)
	_ HTMLCanvasElement[*Canvas] = (*Canvas)(nil)
)
