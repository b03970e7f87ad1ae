package vdom

import (
	"testing"

	"github.com/vango-dev/elattr/pkg/attr"
)

func benchCanvas() *Canvas {
	return NewCanvas().
		Class(attr.Labels{"game", "render-view"}).
		Width(200).
		Height(100).
		Class(attr.Compose(attr.Label("view"), attr.Label("dynamic")))
}

func BenchmarkBuildCanvas(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = benchCanvas()
	}
}

func BenchmarkCanvasDiffUnchanged(b *testing.B) {
	x, y := benchCanvas(), benchCanvas()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if Diff(x, y) {
			b.Fatal("unexpected change")
		}
	}
}

func BenchmarkCanvasDiffChanged(b *testing.B) {
	x, y := benchCanvas(), benchCanvas().Height(101)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !Diff(x, y) {
			b.Fatal("expected change")
		}
	}
}

func BenchmarkRepeatedWidth(b *testing.B) {
	c := NewCanvas()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		c.Width(uint(i))
	}
}
