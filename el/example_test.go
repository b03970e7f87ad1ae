package el_test

import (
	"testing"

	"github.com/vango-dev/elattr/pkg/attr"
	"github.com/vango-dev/elattr/pkg/vdom"
	"github.com/vango-dev/elattr/pkg/vtest"

	. "github.com/vango-dev/elattr/el"
)

func TestDSLScenario(t *testing.T) {
	prev := Canvas(Text("fallback")).
		Class(Compose(Class("view"), Classes("dynamic", "view"))).
		Width(200).
		Height(100)
	next := prev.Clone().Height(120).Attr("data-frame", "2")

	vtest.ExpectClasses(t, prev, "view", "dynamic")
	vtest.ExpectAttribute(t, next.Attrs(), vdom.CanvasHeightKey, 120)
	vtest.ExpectChangedKeys(t, prev, next, "custom", "canvas_height")
	vtest.ExpectChange(t, prev, next, "custom", attr.Added)
	if !Diff(prev, next) {
		t.Error("Diff() = false, want true")
	}
	vtest.ExpectUnchanged(t, Div(P(Text("a"))).Class(Class("x")), Div().Class(Class("x")))
}
