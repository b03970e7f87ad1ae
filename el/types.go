package el

import (
	"github.com/vango-dev/elattr/pkg/attr"
	"github.com/vango-dev/elattr/pkg/vdom"
)

// Type aliases for the element and attribute primitives used by the DSL.
type Node = vdom.Node
type Text = vdom.Text
type Children = vdom.Children
type Changes = vdom.Changes
type ClassSource = attr.ClassSource
type Label = attr.Label
type Labels = attr.Labels
