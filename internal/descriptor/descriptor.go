package descriptor

import (
	"bytes"
	"encoding/json"
	"os"
	"slices"
	"strings"

	"github.com/vango-dev/elattr/internal/errors"
	"github.com/vango-dev/elattr/pkg/attr"
	"github.com/vango-dev/elattr/pkg/vdom"
)

// Kinds lists the element kinds a descriptor may name.
var Kinds = []string{"div", "header", "p", "canvas"}

// Descriptor is the JSON form of an element or text node.
type Descriptor struct {
	Kind     string            `json:"kind,omitempty"`
	Text     *string           `json:"text,omitempty"`
	Class    []string          `json:"class,omitempty"`
	Width    *uint             `json:"width,omitempty"`
	Height   *uint             `json:"height,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Children []Descriptor      `json:"children,omitempty"`
}

// Element is implemented by every element variant in pkg/vdom.
type Element interface {
	vdom.Node
	Kind() string
	Attrs() *attr.Store
	Children() vdom.Children
}

// ReadFile decodes the descriptor stored at path and builds its element.
func ReadFile(path string) (Element, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E214").WithFile(path).Wrap(err)
	}
	return Parse(path, data)
}

// Parse decodes data and builds its element. name is used in error
// locations.
func Parse(name string, data []byte) (Element, error) {
	d, err := Decode(name, data)
	if err != nil {
		return nil, err
	}
	e, err := d.Build()
	if err != nil {
		if ee, ok := err.(*errors.ElattrError); ok && ee.Location == nil {
			ee.WithFile(name)
		}
		return nil, err
	}
	return e, nil
}

// Decode unmarshals a descriptor. Unknown fields are rejected.
func Decode(name string, data []byte) (*Descriptor, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var d Descriptor
	if err := dec.Decode(&d); err != nil {
		e := errors.New("E213").Wrap(err).WithDetail(err.Error())
		if line, col, ok := errors.JSONPosition(data, err); ok {
			return nil, e.WithLocation(name, line, col)
		}
		return nil, e.WithFile(name)
	}
	return &d, nil
}

// Build converts d into an element. d must describe an element, not a text
// node.
func (d *Descriptor) Build() (Element, error) {
	if d.Text != nil {
		return nil, errors.New("E213").WithDetail("a text node cannot be used as an element")
	}

	children, err := buildChildren(d.Children)
	if err != nil {
		return nil, err
	}

	kind := strings.ToLower(d.Kind)
	if kind != "canvas" && (d.Width != nil || d.Height != nil) {
		return nil, errors.New("E211").WithDetailf("%q does not accept width or height", d.Kind)
	}

	switch kind {
	case "div":
		e := vdom.NewDiv(children...)
		applyElement(e, d)
		return e, nil
	case "header":
		e := vdom.NewHeader(children...)
		applyElement(e, d)
		return e, nil
	case "p":
		e := vdom.NewP(children...)
		applyElement(e, d)
		return e, nil
	case "canvas":
		e := vdom.NewCanvas(children...)
		applyElement(e, d)
		if d.Width != nil {
			e.Width(*d.Width)
		}
		if d.Height != nil {
			e.Height(*d.Height)
		}
		return e, nil
	case "":
		return nil, errors.New("E210").WithDetail(`missing "kind"`)
	default:
		return nil, errors.New("E210").WithDetailf("%q", d.Kind)
	}
}

func buildChildren(ds []Descriptor) ([]vdom.Node, error) {
	if len(ds) == 0 {
		return nil, nil
	}
	nodes := make([]vdom.Node, 0, len(ds))
	for i := range ds {
		c := &ds[i]
		if c.Text != nil {
			if c.Kind != "" {
				return nil, errors.New("E213").WithDetailf("child %d has both \"text\" and \"kind\"", i)
			}
			nodes = append(nodes, vdom.Text(*c.Text))
			continue
		}
		e, err := c.Build()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, e)
	}
	return nodes, nil
}

// applyElement sets the attributes every element kind accepts. Custom
// attributes are applied in name order.
func applyElement[E vdom.Element[E]](e E, d *Descriptor) {
	if d.Class != nil {
		e.Class(attr.Labels(d.Class))
	}
	names := make([]string, 0, len(d.Attrs))
	for name := range d.Attrs {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		e.Attr(name, d.Attrs[name])
	}
}
