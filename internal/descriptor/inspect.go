package descriptor

import (
	"encoding/json"

	"github.com/vango-dev/elattr/pkg/attr"
	"github.com/vango-dev/elattr/pkg/vdom"
)

// Report is the inspect view of an element.
type Report struct {
	Kind     string      `json:"kind"`
	Attrs    *attr.Store `json:"attrs"`
	Children []any       `json:"children,omitempty"`
}

// Inspect builds the report for e. Element children are reported
// recursively and text children as strings.
func Inspect(e Element) Report {
	r := Report{Kind: e.Kind(), Attrs: e.Attrs()}
	for n := range e.Children().All() {
		switch c := n.(type) {
		case vdom.Text:
			r.Children = append(r.Children, string(c))
		case Element:
			r.Children = append(r.Children, Inspect(c))
		}
	}
	return r
}

// MarshalReport encodes the report for e as indented JSON.
func MarshalReport(e Element) ([]byte, error) {
	return json.MarshalIndent(Inspect(e), "", "  ")
}
