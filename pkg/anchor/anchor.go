// Package anchor picks where on a morphism box a wire end is drawn.
//
// Wires attached to a morphism are counted by the side they come from: an
// end above the box centroid counts as north, anything else as south. One
// wire on a side goes to the middle of that side, two go to the corners,
// three are spread over corner, middle and corner by thirds of the box
// width. Every other layout falls back to the wire's own tangent angle.
//
// The corner of a pair is picked per end from its x against the centroid,
// so two ends on the same half share a corner.
package anchor

import (
	"tikzsketch/pkg/connect"
	"tikzsketch/pkg/geometry"
	"tikzsketch/pkg/shape"
	"tikzsketch/pkg/wire"
)

// Compass is a named anchor of a TikZ node.
type Compass string

const (
	North     Compass = "north"
	South     Compass = "south"
	NorthWest Compass = "north west"
	NorthEast Compass = "north east"
	SouthWest Compass = "south west"
	SouthEast Compass = "south east"
	Center    Compass = "center"
)

// Anchor is either a compass name or, when Name is empty, a boundary angle.
type Anchor struct {
	Name  Compass
	Angle wire.Direction
}

func (a Anchor) String() string {
	if a.Name != "" {
		return string(a.Name)
	}
	return a.Angle.String()
}

func (a Anchor) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// Sides counts the wire ends attached to one morphism by side.
type Sides struct {
	North int
	South int
}

// Count tallies the wire ends attached to morphism m, using each wire's
// own stroke endpoint.
func Count(m shape.Shape, wires []connect.Wire) Sides {
	var s Sides
	tally := func(p geometry.Point) {
		if p.Y < m.Centroid.Y {
			s.North++
		} else {
			s.South++
		}
	}
	for _, w := range wires {
		if w.Begin.Attaches(m.ID) {
			tally(w.Shape.Path.First())
		}
		if w.End.Attaches(m.ID) {
			tally(w.Shape.Path.Last())
		}
	}
	return s
}

// Select chooses the anchor on morphism m for a wire end at p whose
// snapped tangent is angle.
func Select(m shape.Shape, p geometry.Point, angle wire.Direction, wires []connect.Wire) Anchor {
	return choose(m, Count(m, wires), p, angle)
}

func choose(m shape.Shape, sides Sides, p geometry.Point, angle wire.Direction) Anchor {
	c := m.Centroid
	above := p.Y <= c.Y
	below := p.Y >= c.Y

	if sides.North == 1 && above {
		return Anchor{Name: North}
	}
	if sides.South == 1 && below {
		return Anchor{Name: South}
	}

	if sides.North == 2 && above {
		if p.X <= c.X {
			return Anchor{Name: NorthWest}
		}
		return Anchor{Name: NorthEast}
	}
	if sides.South == 2 && below {
		if p.X <= c.X {
			return Anchor{Name: SouthWest}
		}
		return Anchor{Name: SouthEast}
	}

	third := m.Bounds.Width() / 6
	spread := func(west, middle, east Compass) Anchor {
		switch {
		case p.X < c.X-third:
			return Anchor{Name: west}
		case p.X > c.X+third:
			return Anchor{Name: east}
		}
		return Anchor{Name: middle}
	}
	if sides.North == 3 && above {
		return spread(NorthWest, North, NorthEast)
	}
	if sides.South == 3 && below {
		return spread(SouthWest, South, SouthEast)
	}

	return Anchor{Angle: angle}
}
