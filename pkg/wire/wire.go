// Package wire reduces a hand-drawn connector to its routing corners.
//
// Every point of the stroke is tagged with snapped incoming and outgoing
// directions. Points whose incoming direction is close to horizontal or
// vertical are kept as corners, and corners that sit on a straight run
// between their neighbours are pruned. The stroke's own endpoints always
// survive.
package wire

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"

	"tikzsketch/pkg/cfg"
	"tikzsketch/pkg/geometry"
)

// Vertex is one corner of a route. In points back toward the previous
// stroke point, Out toward the next one.
type Vertex struct {
	Point geometry.Point `json:"point"`
	In    Direction      `json:"in"`
	Out   Direction      `json:"out"`
}

// Route is a simplified wire: at least two vertices, starting and ending
// at the stroke's own endpoints.
type Route []Vertex

func (r Route) First() Vertex {
	return r[0]
}

func (r Route) Last() Vertex {
	return r[len(r)-1]
}

// Points returns the corner positions.
func (r Route) Points() geometry.Path {
	path := make(geometry.Path, len(r))
	for i, v := range r {
		path[i] = v.Point
	}
	return path
}

// Simplify turns a wire stroke into its route. The path needs at least two
// points; shorter input yields a nil Route.
func Simplify(path geometry.Path, c cfg.Config) Route {
	if len(path) < 2 {
		return nil
	}
	if c.WirePresimplify > 0 {
		path = presimplify(path, c.WirePresimplify)
	}

	tagged := tag(path, c.AngleSnapThreshold)

	corners := Route{tagged[0]}
	for _, v := range tagged[1 : len(tagged)-1] {
		if geometry.IsHorizontalOrVertical(v.In.deg, c.AngleThreshold) {
			corners = append(corners, v)
		}
	}
	corners = append(corners, tagged[len(tagged)-1])

	// A corner whose incoming direction is opposite to the previous corner's
	// outgoing direction lies on a straight run.
	sparse := Route{corners[0]}
	for i := 1; i < len(corners)-1; i++ {
		if !Antiparallel(corners[i].In, corners[i-1].Out) {
			sparse = append(sparse, corners[i])
		}
	}

	final := corners[len(corners)-1]
	if len(sparse) > 1 && Antiparallel(final.In, sparse.Last().Out) {
		sparse = sparse[:len(sparse)-1]
	}
	return append(sparse, final)
}

// tag computes the snapped directions of every point.
func tag(path geometry.Path, step float64) Route {
	snap := func(from, to geometry.Point) Direction {
		return Heading(geometry.Snap(geometry.AngleFromTo(from, to), step))
	}

	n := len(path)
	tagged := make(Route, n)
	tagged[0] = Vertex{Point: path[0], In: None, Out: snap(path[0], path[1])}
	for i := 1; i < n-1; i++ {
		tagged[i] = Vertex{
			Point: path[i],
			In:    snap(path[i], path[i-1]),
			Out:   snap(path[i], path[i+1]),
		}
	}
	tagged[n-1] = Vertex{Point: path[n-1], In: snap(path[n-1], path[n-2]), Out: None}
	return tagged
}

// presimplify drops points within tolerance of the Douglas-Peucker chord.
// The endpoints are kept by construction.
func presimplify(path geometry.Path, tolerance float64) geometry.Path {
	reduced, ok := simplify.DouglasPeucker(tolerance).Simplify(path.LineString()).(orb.LineString)
	if !ok || len(reduced) < 2 {
		return path
	}
	return geometry.PathFromOrb(reduced)
}
