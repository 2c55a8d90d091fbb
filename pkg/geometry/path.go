package geometry

import (
	"math"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Path is the ordered point sequence of one stroke. The order is the
// drawing order and is never rearranged.
type Path []Point

func (path Path) LineString() orb.LineString {
	ls := make(orb.LineString, len(path))
	for i, p := range path {
		ls[i] = p.Orb()
	}
	return ls
}

// Ring views the path as a polygon boundary. The closing edge from the last
// point back to the first is implied.
func (path Path) Ring() orb.Ring {
	return orb.Ring(path.LineString())
}

func PathFromOrb(ls orb.LineString) Path {
	path := make(Path, len(ls))
	for i, p := range ls {
		path[i] = FromOrb(p)
	}
	return path
}

func (path Path) First() Point {
	return path[0]
}

func (path Path) Last() Point {
	return path[len(path)-1]
}

// Clone returns a copy that shares no memory with path.
func (path Path) Clone() Path {
	if path == nil {
		return nil
	}
	c := make(Path, len(path))
	copy(c, path)
	return c
}

// Bounds returns the bounding box of the path. An empty path yields NaN corners.
func (path Path) Bounds() Rectangle {
	if len(path) == 0 {
		nan := Point{X: math.NaN(), Y: math.NaN()}
		return Rectangle{Min: nan, Max: nan}
	}
	b := path.LineString().Bound()
	return Rectangle{Min: FromOrb(b.Min), Max: FromOrb(b.Max)}
}

// Perimeter is the length of the open polyline; the closing edge is not counted.
func (path Path) Perimeter() float64 {
	return planar.Length(path.LineString())
}

// CentroidArea returns the polygon centroid and the signed shoelace area.
// A zero-area path reports its first point as centroid.
func (path Path) CentroidArea() (Point, float64) {
	if len(path) == 0 {
		return Point{X: math.NaN(), Y: math.NaN()}, 0
	}
	c, a := planar.CentroidArea(path.Ring())
	return FromOrb(c), a
}

// Contains is the point-in-polygon test over the closed path.
func (path Path) Contains(p Point) bool {
	if len(path) < 3 {
		return false
	}
	return planar.RingContains(path.Ring(), p.Orb())
}

// ConvexHull returns the convex hull of the path's points in counter-clockwise
// order (in a y-up frame) using the monotone chain algorithm. Duplicate and
// collinear points are dropped; fewer than three distinct points yield a
// degenerate hull of one or two points.
func (path Path) ConvexHull() Path {
	points := path.Clone()
	sort.Slice(points, func(i, j int) bool {
		if points[i].X == points[j].X {
			return points[i].Y < points[j].Y
		}
		return points[i].X < points[j].X
	})

	// drop exact duplicates
	unique := points[:0]
	for i, p := range points {
		if i > 0 && p == unique[len(unique)-1] {
			continue
		}
		unique = append(unique, p)
	}
	if len(unique) < 3 {
		return unique
	}

	turn := func(o, a, b Point) float64 {
		return a.Minus(o).CrossProductZ(b.Minus(o))
	}

	hull := make(Path, 0, 2*len(unique))
	for _, p := range unique {
		for len(hull) >= 2 && turn(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	lower := len(hull) + 1
	for i := len(unique) - 2; i >= 0; i-- {
		p := unique[i]
		for len(hull) >= lower && turn(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	// the last point repeats the first
	return hull[:len(hull)-1]
}
