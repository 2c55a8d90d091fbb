package diagram

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"

	"tikzsketch/pkg/anchor"
	"tikzsketch/pkg/connect"
	"tikzsketch/pkg/geometry"
	"tikzsketch/pkg/wire"
)

func circle(cx, cy, r float64, n int) geometry.Path {
	path := make(geometry.Path, 0, n+1)
	for i := 0; i <= n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		path = append(path, geometry.Point{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)})
	}
	return path
}

func scene() []geometry.Path {
	return []geometry.Path{
		{{X: 100, Y: 100}, {X: 300, Y: 100}, {X: 300, Y: 150}, {X: 100, Y: 150}, {X: 100, Y: 100}},
		circle(200, 350, 10, 16),
		{{X: 200, Y: 345}, {X: 200, Y: 250}, {X: 200, Y: 160}},
		{{X: 7, Y: 7}},
		{{X: 150, Y: 20}, {X: 150, Y: 60}, {X: 170, Y: 95}},
		{{X: 250, Y: 20}, {X: 250, Y: 60}, {X: 230, Y: 95}},
		{{X: 400, Y: 400}, {X: 450, Y: 400}, {X: 450, Y: 450}},
	}
}

func TestBuild(t *testing.T) {
	g := Build(scene(), Options{})

	if len(g.Dots) != 1 || len(g.Morphisms) != 1 || len(g.Edges) != 4 {
		t.Fatalf("Build() = %d dots, %d morphisms, %d edges", len(g.Dots), len(g.Morphisms), len(g.Edges))
	}

	var got []string
	for _, e := range g.Edges {
		got = append(got, e.Begin.String()+" -> "+e.End.String())
	}
	want := []string{
		"d0.center -> m0.south",
		"(150, 20) -> m0.north west",
		"(250, 20) -> m0.north east",
		"(400, 400) -> (450, 450)",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("incorrect edges: %s", diff)
	}

	for i, e := range g.Edges {
		if e.Wire.Shape.ID != i {
			t.Errorf("edge %d carries wire %d", i, e.Wire.Shape.ID)
		}
		if e.Route.First().Point != e.Wire.Shape.Path.First() || e.Route.Last().Point != e.Wire.Shape.Path.Last() {
			t.Errorf("edge %d route lost its endpoints", i)
		}
	}
}

func TestBuildIsRepeatable(t *testing.T) {
	first, err := json.Marshal(Build(scene(), Options{}))
	if err != nil {
		t.Fatal(err)
	}
	second, err := json.Marshal(Build(scene(), Options{}))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("runs differ:\n%s\n%s", first, second)
	}
}

func TestBuildEmpty(t *testing.T) {
	g := Build(nil, Options{})
	if len(g.Dots)+len(g.Morphisms)+len(g.Edges) != 0 {
		t.Errorf("Build(nil) = %+v", g)
	}
	var buf bytes.Buffer
	if err := WriteJSON(&buf, g); err != nil {
		t.Fatal(err)
	}
	var decoded map[string][]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"dots", "morphisms", "edges"} {
		if list, ok := decoded[key]; !ok || list == nil {
			t.Errorf("%s should be an empty list, got %v", key, decoded[key])
		}
	}
}

func TestBuildLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	Build(scene(), Options{Logger: logger})

	out := buf.String()
	for _, want := range []string{"Skipping path 3", "morphism 0", "Built diagram: 1 dots, 1 morphisms, 4 wires"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestEnd(t *testing.T) {
	g := &Graph{}
	free := g.end(connect.Connection{Kind: connect.Free, At: geometry.Point{X: 1, Y: 2}}, geometry.Point{}, wire.None, nil)
	if free.Anchor != (anchor.Anchor{}) {
		t.Errorf("free end has anchor %v", free.Anchor)
	}
	// a dangling morphism reference keeps no anchor rather than panicking
	dangling := g.end(connect.Connection{Kind: connect.MorphismBoundary, Node: 3}, geometry.Point{}, wire.None, nil)
	if dangling.Anchor != (anchor.Anchor{}) {
		t.Errorf("dangling end has anchor %v", dangling.Anchor)
	}
	if _, ok := g.Morphism(3); ok {
		t.Error("Morphism(3) found in an empty graph")
	}
}

func TestMarshalJSON(t *testing.T) {
	paths := []geometry.Path{
		{{X: 100, Y: 100}, {X: 300, Y: 100}, {X: 300, Y: 150}, {X: 100, Y: 150}, {X: 100, Y: 100}},
		{{X: 200, Y: 20}, {X: 200, Y: 60}, {X: 200, Y: 95}},
	}
	data, err := json.Marshal(Build(paths, Options{}))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"dots":[],"morphisms":[{"id":"m0","at":{"x":200,"y":125},` +
		`"bounds":{"min":{"x":100,"y":100},"max":{"x":300,"y":150}},"orientation":"both-flip"}],` +
		`"edges":[{"wire":0,"begin":{"kind":"free","at":{"x":200,"y":20}},` +
		`"end":{"kind":"morphism-boundary","node":"m0","anchor":"north","at":{"x":200,"y":95}},` +
		`"route":[{"point":{"x":200,"y":20},"in":null,"out":-90},{"point":{"x":200,"y":95},"in":90,"out":null}],"d":"M 200 20 L 200 95"}]}`
	if diff := cmp.Diff(want, string(data)); diff != "" {
		t.Errorf("incorrect JSON: %s", diff)
	}
}
