// This file re-exports vdom element constructors for the el package.
package el

import "github.com/vango-dev/elattr/pkg/vdom"

func Div(children ...Node) *vdom.Div {
	return vdom.NewDiv(children...)
}
func Header(children ...Node) *vdom.Header {
	return vdom.NewHeader(children...)
}
func P(children ...Node) *vdom.P {
	return vdom.NewP(children...)
}
func Canvas(children ...Node) *vdom.Canvas {
	return vdom.NewCanvas(children...)
}
func Seq(nodes ...Node) Children {
	return vdom.Seq(nodes...)
}
