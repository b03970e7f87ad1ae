package vdom

import "iter"

// Node is anything that can appear in a children sequence.
type Node interface {
	isNode()
}

// Text is a text child.
type Text string

func (Text) isNode() {}

// Children is an ordered sequence of child nodes. The zero value is the
// empty sequence. A Children value is itself a Node, so sequences compose.
type Children []Node

func (Children) isNode() {}

// Seq builds a sequence from nodes, flattening nested sequences and
// dropping nil entries.
func Seq(nodes ...Node) Children {
	var c Children
	return c.Append(nodes...)
}

// Append returns c followed by nodes, flattened as in Seq.
func (c Children) Append(nodes ...Node) Children {
	out := make(Children, len(c), len(c)+len(nodes))
	copy(out, c)
	for _, n := range nodes {
		switch v := n.(type) {
		case nil:
		case Children:
			out = append(out, v...)
		default:
			if isNilElement(n) {
				continue
			}
			out = append(out, n)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Len returns the number of nodes.
func (c Children) Len() int { return len(c) }

// All iterates over the nodes in order.
func (c Children) All() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for _, n := range c {
			if !yield(n) {
				return
			}
		}
	}
}

// isNilElement reports whether n is a typed nil element pointer.
func isNilElement(n Node) bool {
	switch v := n.(type) {
	case *Div:
		return v == nil
	case *Header:
		return v == nil
	case *P:
		return v == nil
	case *Canvas:
		return v == nil
	}
	return false
}
