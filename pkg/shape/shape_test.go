package shape

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"tikzsketch/pkg/cfg"
	"tikzsketch/pkg/descriptor"
	"tikzsketch/pkg/geometry"
)

func circle(cx, cy, r float64, n int) geometry.Path {
	path := make(geometry.Path, 0, n+1)
	for i := 0; i <= n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		path = append(path, geometry.Point{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)})
	}
	return path
}

func box(x, y, w, h float64) geometry.Path {
	return geometry.Path{{X: x, Y: y}, {X: x + w, Y: y}, {X: x + w, Y: y + h}, {X: x, Y: y + h}, {X: x, Y: y}}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		path geometry.Path
		want Kind
	}{
		{"circle", circle(0, 0, 50, 20), Dot},
		{"wide box", box(0, 0, 200, 50), Morphism},
		{"tall box", box(0, 0, 60, 240), Morphism},
		// a square fills 2/pi of its circumscribed circle, which is above the dot cut-off
		{"square", box(0, 0, 100, 100), Dot},
		{"open zig-zag", geometry.Path{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 20, Y: 0}}, Wire},
		{"straight stroke", geometry.Path{{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 100, Y: 0}}, Wire},
		{"concave closed", geometry.Path{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 90}, {X: 90, Y: 90}, {X: 90, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}, {X: 0, Y: 0}}, Wire},
		{"degenerate point", geometry.Path{{X: 1, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 1}}, Wire},
		// closed and convex but neither round nor boxy
		{"thin diamond", geometry.Path{{X: 0, Y: 50}, {X: 200, Y: 0}, {X: 400, Y: 50}, {X: 200, Y: 100}, {X: 0, Y: 50}}, Wire},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.path, cfg.Default())
			if got.Kind != tt.want {
				d := got.Descriptors
				t.Errorf("Classify() = %s, want %s (open=%v convex=%v circ=%g rect=%g)",
					got.Kind, tt.want, d.Open, d.Convex, d.Circularity, d.Rectangularity)
			}
		})
	}
}

func TestDecideNonFinite(t *testing.T) {
	d := descriptor.Descriptors{
		Convex:         true,
		Circularity:    math.NaN(),
		Rectangularity: 0.9,
	}
	if got := Decide(d, cfg.Default()); got != Wire {
		t.Errorf("Decide(NaN circularity) = %s, want wire", got)
	}
}

func TestDecideRuleOrder(t *testing.T) {
	base := descriptor.Descriptors{
		Area: 1, Perimeter: 1, Compactness: 1, Eccentricity: 1, AspectRatio: 1,
		ConvexityRatio: 1, Convex: true,
	}
	tests := []struct {
		name string
		edit func(d *descriptor.Descriptors)
		want Kind
	}{
		{"open beats round", func(d *descriptor.Descriptors) { d.Open = true; d.Circularity = 0.9 }, Wire},
		{"round beats boxy", func(d *descriptor.Descriptors) { d.Circularity = 0.6; d.Rectangularity = 0.9 }, Dot},
		{"boxy", func(d *descriptor.Descriptors) { d.Circularity = 0.3; d.Rectangularity = 0.9 }, Morphism},
		{"circularity exactly at cut-off", func(d *descriptor.Descriptors) { d.Circularity = 0.5; d.Rectangularity = 0.9 }, Wire},
		{"neither", func(d *descriptor.Descriptors) { d.Circularity = 0.3; d.Rectangularity = 0.4 }, Wire},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := base
			tt.edit(&d)
			if got := Decide(d, cfg.Default()); got != tt.want {
				t.Errorf("Decide() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestClassifyAllAssignsIDs(t *testing.T) {
	paths := []geometry.Path{
		box(0, 0, 200, 50),
		circle(400, 400, 10, 16),
		{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 20, Y: 0}},
		circle(300, 300, 10, 16),
		box(500, 0, 200, 50),
	}
	set := ClassifyAll(paths, cfg.Default())

	type id struct {
		Kind  Kind
		ID    int
		Index int
		X     float64
	}
	var got []id
	for _, group := range [][]Shape{set.Dots, set.Morphisms, set.Wires} {
		for _, s := range group {
			got = append(got, id{s.Kind, s.ID, s.Index, s.Path[0].X})
		}
	}
	want := []id{
		{Dot, 0, 1, 410},
		{Dot, 1, 3, 310},
		{Morphism, 0, 0, 0},
		{Morphism, 1, 4, 500},
		{Wire, 0, 2, 0},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("incorrect ids: %s", diff)
	}

	again := ClassifyAll(paths, cfg.Default())
	if diff := cmp.Diff(set, again); diff != "" {
		t.Errorf("second run differs: %s", diff)
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		s    Shape
		want string
	}{
		{Shape{Kind: Dot, ID: 3}, "d3"},
		{Shape{Kind: Morphism, ID: 0}, "m0"},
		{Shape{Kind: Wire, ID: 12}, "w12"},
	}
	for _, tt := range tests {
		if got := tt.s.Name(); got != tt.want {
			t.Errorf("Name() = %q, want %q", got, tt.want)
		}
	}
}
