// Package descriptor computes the geometric measures used to tell strokes
// apart. Every measure is a pure function of one path.
//
// Degenerate paths (zero perimeter, zero-area bounding box, collinear points)
// are not rejected; their ratios come out as NaN or ±Inf and Finite reports
// false. Callers decide what to do with them.
package descriptor

import (
	"math"

	"tikzsketch/pkg/cfg"
	"tikzsketch/pkg/geometry"
)

// Orientation records which way a box was drawn, from the quadrant of its
// farthest corner relative to the centroid. The zero value needs no flip.
type Orientation int

const (
	NoFlip Orientation = iota
	HorizontalFlip
	VerticalFlip
	BothFlip
)

var orientationNames = map[Orientation]string{
	NoFlip:         "no-flip",
	HorizontalFlip: "horizontal-flip",
	VerticalFlip:   "vertical-flip",
	BothFlip:       "both-flip",
}

func (o Orientation) String() string {
	if name, ok := orientationNames[o]; ok {
		return name
	}
	return "unknown"
}

// Descriptors is the full measure set of one path.
type Descriptors struct {
	Bounds   geometry.Rectangle
	Centroid geometry.Point

	Area      float64 // absolute shoelace area
	Perimeter float64 // open polyline length

	// Compactness, Eccentricity and AspectRatio are informational; the
	// classifier does not consult them.
	Compactness  float64
	Eccentricity float64
	AspectRatio  float64

	Rectangularity float64
	Circularity    float64
	ConvexityRatio float64
	Openness       float64

	Open        bool
	Convex      bool
	Orientation Orientation
}

// Compute measures path. It never fails; see the package comment for
// degenerate input.
func Compute(path geometry.Path, c cfg.Config) Descriptors {
	var d Descriptors

	d.Bounds = path.Bounds()
	centroid, signed := path.CentroidArea()
	d.Centroid = centroid
	d.Area = math.Abs(signed)
	d.Perimeter = path.Perimeter()

	d.Compactness = 2 * math.Sqrt(d.Area*math.Pi) / d.Perimeter
	d.Eccentricity = Eccentricity(path, centroid)
	d.Rectangularity = d.Area / d.Bounds.Area()
	d.Circularity = Circularity(path, centroid, d.Area)
	d.AspectRatio = d.Bounds.Width() / d.Bounds.Height()
	d.ConvexityRatio = d.Area / math.Abs(hullArea(path))

	if len(path) > 0 {
		d.Openness = path.First().Distance(path.Last()) / d.Perimeter
	} else {
		d.Openness = math.NaN()
	}
	d.Open = d.Openness > c.OpenThreshold
	d.Convex = d.ConvexityRatio >= c.ConvexityThreshold
	d.Orientation = Orient(path, centroid)

	return d
}

// Finite reports whether every numeric measure is a real number.
func (d Descriptors) Finite() bool {
	for _, v := range []float64{
		d.Area, d.Perimeter,
		d.Compactness, d.Eccentricity, d.AspectRatio,
		d.Rectangularity, d.Circularity, d.ConvexityRatio, d.Openness,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return d.Centroid.Finite()
}

// Eccentricity is the ratio of the smaller to the larger eigenvalue of the
// covariance matrix of the points about centre.
func Eccentricity(path geometry.Path, centre geometry.Point) float64 {
	var cxx, cxy, cyy float64
	for _, p := range path {
		v := p.Minus(centre)
		cxx += v.X * v.X
		cxy += v.X * v.Y
		cyy += v.Y * v.Y
	}
	trace := cxx + cyy
	det := cxx*cyy - cxy*cxy
	// rounding can push the discriminant of a symmetric matrix just below zero
	b := math.Sqrt(math.Max(0, trace*trace-4*det))
	large := (trace + b) / 2
	small := (trace - b) / 2
	return small / large
}

// Circularity compares area with the circle through the point farthest from centre.
func Circularity(path geometry.Path, centre geometry.Point, area float64) float64 {
	farthest := 0.0
	for _, p := range path {
		if d := p.Distance(centre); d > farthest {
			farthest = d
		}
	}
	return area / (math.Pi * farthest * farthest)
}

// Orient classifies the quadrant of the point farthest from centre, in
// screen coordinates. Ties keep the earliest point.
func Orient(path geometry.Path, centre geometry.Point) Orientation {
	if len(path) == 0 {
		return NoFlip
	}
	corner := path[0]
	farthest := corner.Distance(centre)
	for _, p := range path[1:] {
		if d := p.Distance(centre); d > farthest {
			farthest = d
			corner = p
		}
	}
	v := corner.Minus(centre)
	switch {
	case v.X < 0 && v.Y < 0:
		return BothFlip
	case v.X >= 0 && v.Y < 0:
		return HorizontalFlip
	case v.X >= 0 && v.Y >= 0:
		return NoFlip
	}
	return VerticalFlip
}

func hullArea(path geometry.Path) float64 {
	hull := path.ConvexHull()
	if len(hull) < 3 {
		return 0
	}
	_, a := hull.CentroidArea()
	return a
}
