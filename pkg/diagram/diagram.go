// Package diagram runs the whole stroke pipeline: classification, wire
// attachment, route simplification and anchoring. The result is a Graph
// that the serializers turn into text.
package diagram

import (
	"io"

	"github.com/charmbracelet/log"

	"tikzsketch/pkg/anchor"
	"tikzsketch/pkg/cfg"
	"tikzsketch/pkg/connect"
	"tikzsketch/pkg/geometry"
	"tikzsketch/pkg/shape"
	"tikzsketch/pkg/wire"
)

// End is one resolved end of an edge. Anchor is Center for dots and unset
// for free ends.
type End struct {
	connect.Connection
	Anchor anchor.Anchor
}

type Edge struct {
	Wire  connect.Wire
	Route wire.Route
	Begin End
	End   End
}

// Graph is the finished diagram. Dots and Morphisms are in ID order.
type Graph struct {
	Dots      []shape.Shape
	Morphisms []shape.Shape
	Edges     []Edge
}

// Morphism returns the morphism with the given ID.
func (g *Graph) Morphism(id int) (shape.Shape, bool) {
	for _, m := range g.Morphisms {
		if m.ID == id {
			return m, true
		}
	}
	return shape.Shape{}, false
}

type Options struct {
	// Config holds the thresholds; the zero value means cfg.Default().
	Config cfg.Config
	// Logger receives debug output. Nil discards it.
	Logger *log.Logger
}

func (o Options) config() cfg.Config {
	if o.Config == (cfg.Config{}) {
		return cfg.Default()
	}
	return o.Config
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.New(io.Discard)
	}
	return o.Logger
}

// Build runs the pipeline over one snapshot of strokes. Paths with fewer
// than two points are skipped. Build keeps no state between calls, so the
// same input always yields the same Graph.
func Build(paths []geometry.Path, opts Options) *Graph {
	c := opts.config()
	logger := opts.logger()

	kept := make([]geometry.Path, 0, len(paths))
	for i, path := range paths {
		if len(path) < 2 {
			logger.Debugf("Skipping path %d: %d point(s)", i, len(path))
			continue
		}
		kept = append(kept, path)
	}

	set := shape.ClassifyAll(kept, c)
	for _, group := range [][]shape.Shape{set.Dots, set.Morphisms, set.Wires} {
		for _, s := range group {
			d := s.Descriptors
			logger.Debugf("%s %d: open=%t convex=%t circularity=%.3f rectangularity=%.3f",
				s.Kind, s.ID, d.Open, d.Convex, d.Circularity, d.Rectangularity)
		}
	}

	g := &Graph{Dots: set.Dots, Morphisms: set.Morphisms}
	resolver := connect.NewResolver(set.Dots, set.Morphisms, c)
	wires := resolver.Annotate(set.Wires)
	for _, w := range wires {
		route := wire.Simplify(w.Shape.Path, c)
		first, last := route.First(), route.Last()
		edge := Edge{
			Wire:  w,
			Route: route,
			Begin: g.end(w.Begin, first.Point, first.Out, wires),
			End:   g.end(w.End, last.Point, last.In, wires),
		}
		logger.Debugf("wire %d: %s -> %s, %d corner(s)", w.Shape.ID, edge.Begin, edge.End, len(route))
		g.Edges = append(g.Edges, edge)
	}

	logger.Debugf("Built diagram: %d dots, %d morphisms, %d wires", len(g.Dots), len(g.Morphisms), len(g.Edges))
	return g
}

func (g *Graph) end(conn connect.Connection, p geometry.Point, angle wire.Direction, wires []connect.Wire) End {
	switch conn.Kind {
	case connect.DotCenter:
		return End{Connection: conn, Anchor: anchor.Anchor{Name: anchor.Center}}
	case connect.MorphismBoundary:
		if m, ok := g.Morphism(conn.Node); ok {
			return End{Connection: conn, Anchor: anchor.Select(m, p, angle, wires)}
		}
	}
	return End{Connection: conn}
}

func (e End) String() string {
	if e.Kind == connect.Free {
		return e.Connection.String()
	}
	return e.Connection.String() + "." + e.Anchor.String()
}
