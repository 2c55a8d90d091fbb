// Package connect decides where each end of a wire attaches.
//
// An endpoint inside a dot or morphism outline attaches to the first such
// shape in scan order (all dots by ID, then all morphisms by ID), however
// far its centroid is. Otherwise the endpoint attaches to the shape with the
// nearest centroid, if that distance is below the connect threshold; equal
// distances keep the earlier shape in scan order, so a dot wins over an
// equidistant morphism. Failing both, the endpoint stays a free coordinate.
package connect

import (
	"fmt"

	"tikzsketch/pkg/cfg"
	"tikzsketch/pkg/geometry"
	"tikzsketch/pkg/shape"
)

type Kind int

const (
	Free Kind = iota
	DotCenter
	MorphismBoundary
)

func (k Kind) String() string {
	switch k {
	case Free:
		return "free"
	case DotCenter:
		return "dot-center"
	case MorphismBoundary:
		return "morphism-boundary"
	}
	return "unknown"
}

// Connection is where one wire endpoint attaches. Node is the ID of the
// attached dot or morphism and is meaningless for Free. At is always the
// wire endpoint itself, in screen space.
type Connection struct {
	Kind Kind
	Node int
	At   geometry.Point
}

func (c Connection) String() string {
	switch c.Kind {
	case DotCenter:
		return fmt.Sprintf("d%d", c.Node)
	case MorphismBoundary:
		return fmt.Sprintf("m%d", c.Node)
	}
	return fmt.Sprintf("(%g, %g)", c.At.X, c.At.Y)
}

// Attaches reports whether c attaches to the morphism with the given ID.
func (c Connection) Attaches(morphism int) bool {
	return c.Kind == MorphismBoundary && c.Node == morphism
}

// Wire is a wire stroke together with its resolved endpoints.
type Wire struct {
	Shape shape.Shape
	Begin Connection
	End   Connection
}

type Resolver struct {
	dots      []shape.Shape
	morphisms []shape.Shape
	threshold float64
	tree      *centroidTree
}

// NewResolver indexes the given shapes. The slices must not be modified
// while the resolver is in use.
func NewResolver(dots, morphisms []shape.Shape, c cfg.Config) *Resolver {
	return &Resolver{
		dots:      dots,
		morphisms: morphisms,
		threshold: c.ConnectThreshold,
		tree:      newCentroidTree(dots, morphisms),
	}
}

func connectionTo(s *shape.Shape, p geometry.Point) Connection {
	if s.Kind == shape.Dot {
		return Connection{Kind: DotCenter, Node: s.ID, At: p}
	}
	return Connection{Kind: MorphismBoundary, Node: s.ID, At: p}
}

func inside(s *shape.Shape, p geometry.Point) bool {
	return s.Bounds.Contains(p) && s.Path.Contains(p)
}

// Resolve finds the attachment of a single endpoint.
func (r *Resolver) Resolve(p geometry.Point) Connection {
	for i := range r.dots {
		if inside(&r.dots[i], p) {
			return connectionTo(&r.dots[i], p)
		}
	}
	for i := range r.morphisms {
		if inside(&r.morphisms[i], p) {
			return connectionTo(&r.morphisms[i], p)
		}
	}

	bestDistance := r.threshold
	var best *shape.Shape
	// the margin keeps centroids on the search box border in play
	for _, c := range r.tree.within(p.X, p.Y, r.threshold+1) {
		if d := c.shape.Centroid.Distance(p); d < bestDistance {
			bestDistance = d
			best = c.shape
		}
	}
	if best != nil {
		return connectionTo(best, p)
	}
	return Connection{Kind: Free, At: p}
}

// Annotate resolves both ends of every wire, independently.
func (r *Resolver) Annotate(wires []shape.Shape) []Wire {
	annotated := make([]Wire, 0, len(wires))
	for _, w := range wires {
		annotated = append(annotated, Wire{
			Shape: w,
			Begin: r.Resolve(w.Path.First()),
			End:   r.Resolve(w.Path.Last()),
		})
	}
	return annotated
}
