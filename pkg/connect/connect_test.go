package connect

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"tikzsketch/pkg/cfg"
	"tikzsketch/pkg/geometry"
	"tikzsketch/pkg/shape"
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

// classified runs the classifier so fixtures carry real centroids and IDs.
func classified(t *testing.T, paths ...geometry.Path) shape.Set {
	t.Helper()
	return shape.ClassifyAll(paths, cfg.Default())
}

func TestResolveProximity(t *testing.T) {
	end := geometry.Point{X: 10, Y: 10}

	near := classified(t, circle(40, 40, 5, 16))
	if len(near.Dots) != 1 {
		t.Fatalf("fixture should hold one dot, got %+v", near)
	}
	r := NewResolver(near.Dots, near.Morphisms, cfg.Default())
	want := Connection{Kind: DotCenter, Node: 0, At: end}
	if diff := cmp.Diff(want, r.Resolve(end)); diff != "" {
		t.Errorf("near dot: incorrect connection: %s", diff)
	}

	far := classified(t, circle(100, 100, 5, 16))
	r = NewResolver(far.Dots, far.Morphisms, cfg.Default())
	want = Connection{Kind: Free, At: end}
	if diff := cmp.Diff(want, r.Resolve(end)); diff != "" {
		t.Errorf("far dot: incorrect connection: %s", diff)
	}
}

func TestResolveContainmentWins(t *testing.T) {
	// the endpoint is inside the big dot but much closer to the morphism centroid
	set := classified(t,
		box(0, 95, 40, 10),
		circle(100, 100, 90, 32),
	)
	if len(set.Dots) != 1 || len(set.Morphisms) != 1 {
		t.Fatalf("fixture should hold one dot and one morphism, got %d and %d", len(set.Dots), len(set.Morphisms))
	}
	p := geometry.Point{X: 25, Y: 100}
	r := NewResolver(set.Dots, set.Morphisms, cfg.Default())
	got := r.Resolve(p)
	if got.Kind != DotCenter || got.Node != 0 {
		t.Errorf("Resolve(%v) = %v (%s), want the containing dot", p, got, got.Kind)
	}
}

func TestResolveContainmentBeyondThreshold(t *testing.T) {
	set := classified(t, box(0, 0, 400, 100))
	p := geometry.Point{X: 390, Y: 90}
	r := NewResolver(set.Dots, set.Morphisms, cfg.Default())
	got := r.Resolve(p)
	if got.Kind != MorphismBoundary || got.Node != 0 {
		t.Errorf("Resolve(%v) = %v, want morphism m0", p, got)
	}
}

func TestResolveNearestAndTies(t *testing.T) {
	dots := []shape.Shape{
		{Kind: shape.Dot, ID: 0, Centroid: geometry.Point{X: 30, Y: 0}, Path: circle(30, 0, 2, 8)},
		{Kind: shape.Dot, ID: 1, Centroid: geometry.Point{X: 20, Y: 0}, Path: circle(20, 0, 2, 8)},
		{Kind: shape.Dot, ID: 2, Centroid: geometry.Point{X: -20, Y: 0}, Path: circle(-20, 0, 2, 8)},
	}
	morphisms := []shape.Shape{
		{Kind: shape.Morphism, ID: 0, Centroid: geometry.Point{X: 0, Y: 20}, Path: box(-5, 15, 10, 10)},
		{Kind: shape.Morphism, ID: 1, Centroid: geometry.Point{X: 0, Y: 10}, Path: box(-5, 5, 10, 10)},
	}
	for i := range dots {
		dots[i].Bounds = dots[i].Path.Bounds()
	}
	for i := range morphisms {
		morphisms[i].Bounds = morphisms[i].Path.Bounds()
	}

	tests := []struct {
		name      string
		dots      []shape.Shape
		morphisms []shape.Shape
		want      Connection
	}{
		{
			name:      "closest morphism",
			dots:      dots,
			morphisms: morphisms,
			want:      Connection{Kind: MorphismBoundary, Node: 1},
		},
		{
			name: "dot and morphism equidistant, dot scanned first",
			dots: dots[1:2],
			morphisms: []shape.Shape{
				{Kind: shape.Morphism, ID: 0, Centroid: geometry.Point{X: 0, Y: 20}, Path: box(-5, 15, 10, 10), Bounds: morphisms[0].Bounds},
			},
			want: Connection{Kind: DotCenter, Node: 1},
		},
		{
			name: "equidistant dots, lower id first",
			dots: dots[1:3],
			want: Connection{Kind: DotCenter, Node: 1},
		},
		{
			name: "single dot in range",
			dots: []shape.Shape{dots[0]},
			want: Connection{Kind: DotCenter, Node: 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(tt.dots, tt.morphisms, cfg.Default())
			got := r.Resolve(geometry.Point{})
			got.At = geometry.Point{}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("incorrect connection: %s", diff)
			}
		})
	}

	c := cfg.Default()
	c.ConnectThreshold = 20
	r := NewResolver(dots[:2], nil, c)
	if got := r.Resolve(geometry.Point{}); got.Kind != Free {
		t.Errorf("distance equal to the threshold should not attach, got %v", got)
	}
}

func TestResolveSharedCentroid(t *testing.T) {
	dots := []shape.Shape{
		{Kind: shape.Dot, ID: 0, Centroid: geometry.Point{X: 10, Y: 10}, Path: circle(10, 10, 2, 8)},
		{Kind: shape.Dot, ID: 1, Centroid: geometry.Point{X: 10, Y: 10}, Path: circle(10, 10, 3, 8)},
	}
	for i := range dots {
		dots[i].Bounds = dots[i].Path.Bounds()
	}
	r := NewResolver(dots, nil, cfg.Default())
	got := r.Resolve(geometry.Point{X: 30, Y: 30})
	if got.Kind != DotCenter || got.Node != 0 {
		t.Errorf("Resolve() = %v, want d0", got)
	}
}

func TestAnnotate(t *testing.T) {
	set := classified(t,
		box(100, 100, 200, 50),
		geometry.Path{{X: 200, Y: 20}, {X: 200, Y: 60}, {X: 200, Y: 110}},
		geometry.Path{{X: 500, Y: 500}, {X: 520, Y: 480}, {X: 560, Y: 520}},
		circle(500, 540, 8, 16),
	)
	if len(set.Wires) != 2 {
		t.Fatalf("fixture should hold two wires, got %d", len(set.Wires))
	}
	r := NewResolver(set.Dots, set.Morphisms, cfg.Default())
	wires := r.Annotate(set.Wires)

	type ends struct{ Begin, End string }
	var got []ends
	for _, w := range wires {
		got = append(got, ends{w.Begin.String(), w.End.String()})
	}
	want := []ends{
		{"(200, 20)", "m0"},
		{"d0", "(560, 520)"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("incorrect annotation: %s", diff)
	}
}
