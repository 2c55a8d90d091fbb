package geometry

import (
	"math"

	"github.com/paulmach/orb"
)

// Point is a location in screen space: X grows rightward, Y grows downward.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Vector2 = Point

func FromOrb(p orb.Point) Point {
	return Point{X: p.X(), Y: p.Y()}
}

func (p Point) Orb() orb.Point {
	return orb.Point{p.X, p.Y}
}

func (a Vector2) Minus(b Vector2) Vector2 {
	return Vector2{
		X: a.X - b.X,
		Y: a.Y - b.Y,
	}
}

func (a Vector2) CrossProductZ(b Vector2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Distance returns the distance between two points.
func (p Point) Distance(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// Finite reports whether both coordinates are real numbers.
func (p Point) Finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Rectangle is an axis-aligned box given by its min and max corners.
type Rectangle struct {
	Min Point `json:"min"`
	Max Point `json:"max"`
}

func (r Rectangle) Width() float64 {
	return r.Max.X - r.Min.X
}

func (r Rectangle) Height() float64 {
	return r.Max.Y - r.Min.Y
}

func (r Rectangle) Area() float64 {
	return r.Width() * r.Height()
}

// Contains reports whether p lies inside r or on its border.
func (r Rectangle) Contains(p Point) bool {
	return r.Min.X <= p.X && p.X <= r.Max.X &&
		r.Min.Y <= p.Y && p.Y <= r.Max.Y
}
