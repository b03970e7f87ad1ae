// This file re-exports attr label sources for the el package.
package el

import "github.com/vango-dev/elattr/pkg/attr"

// Class is a single class label.
func Class(label string) ClassSource {
	return attr.Label(label)
}

// Classes is a list of class labels.
func Classes(labels ...string) ClassSource {
	return attr.Labels(labels)
}

// Compose chains label sources, e.g. Compose(Class("view"), Classes(extra...)).
func Compose(srcs ...ClassSource) ClassSource {
	return attr.Compose(srcs...)
}
