// Package el provides the element DSL for elattr.
//
// It re-exports the element constructors of
// github.com/vango-dev/elattr/pkg/vdom and the class label sources of
// github.com/vango-dev/elattr/pkg/attr under short names, for dot-import:
//
//	import . "github.com/vango-dev/elattr/el"
//
//	view := Div(
//	    Header(Text("Header")).Class(Classes("header", "bold")),
//	    Canvas().Class(Classes("game", "render-view")).Width(200).Height(100),
//	)
package el
