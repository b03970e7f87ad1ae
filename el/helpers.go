// This file re-exports vdom diff helpers for the el package.
package el

import "github.com/vango-dev/elattr/pkg/vdom"

// Diff reports whether two elements of the same kind have different attributes.
func Diff[E vdom.Diffable[E]](a, b E) bool {
	return vdom.Diff(a, b)
}
