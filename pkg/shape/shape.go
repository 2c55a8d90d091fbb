// Package shape sorts strokes into wires, dots and morphisms.
//
// The decision is a fixed rule list over the stroke's descriptors, first
// match wins:
//
//  1. open or not convex: Wire
//  2. circularity above the dot cut-off: Dot
//  3. rectangularity above the morphism cut-off and circularity below the
//     dot cut-off: Morphism
//  4. anything else: Wire
//
// A stroke with any non-finite descriptor is a Wire.
package shape

import (
	"strconv"

	"tikzsketch/pkg/cfg"
	"tikzsketch/pkg/descriptor"
	"tikzsketch/pkg/geometry"
)

type Kind int

const (
	Wire Kind = iota
	Dot
	Morphism
)

func (k Kind) String() string {
	switch k {
	case Wire:
		return "wire"
	case Dot:
		return "dot"
	case Morphism:
		return "morphism"
	}
	return "unknown"
}

// Shape is one classified stroke. ID numbers shapes of the same Kind in
// classification order and is the node's identity in the output; it is
// never recomputed from slice positions. Index is the stroke's position
// in the classified input.
type Shape struct {
	Kind        Kind
	ID          int
	Index       int
	Path        geometry.Path
	Centroid    geometry.Point
	Bounds      geometry.Rectangle
	Orientation descriptor.Orientation
	Descriptors descriptor.Descriptors
}

// Name is the node identifier used in the output: d0, m0, or w0 for wires.
func (s Shape) Name() string {
	prefix := "w"
	switch s.Kind {
	case Dot:
		prefix = "d"
	case Morphism:
		prefix = "m"
	}
	return prefix + strconv.Itoa(s.ID)
}

// Decide applies the rule list to one descriptor set.
func Decide(d descriptor.Descriptors, c cfg.Config) Kind {
	if !d.Finite() {
		return Wire
	}
	if d.Open || !d.Convex {
		return Wire
	}
	if d.Circularity > c.DotCircularity {
		return Dot
	}
	if d.Rectangularity > c.MorphismRectangularity && d.Circularity < c.DotCircularity {
		return Morphism
	}
	return Wire
}

// Classify measures and classifies one path, without assigning an ID.
func Classify(path geometry.Path, c cfg.Config) Shape {
	d := descriptor.Compute(path, c)
	return Shape{
		Kind:        Decide(d, c),
		Path:        path,
		Centroid:    d.Centroid,
		Bounds:      d.Bounds,
		Orientation: d.Orientation,
		Descriptors: d,
	}
}

// Set is the classification of a whole drawing, split by kind.
type Set struct {
	Wires     []Shape
	Dots      []Shape
	Morphisms []Shape
}

// ClassifyAll classifies every path in order and issues IDs per kind.
// Each call starts numbering from zero.
func ClassifyAll(paths []geometry.Path, c cfg.Config) Set {
	var set Set
	for i, path := range paths {
		s := Classify(path, c)
		s.Index = i
		switch s.Kind {
		case Dot:
			s.ID = len(set.Dots)
			set.Dots = append(set.Dots, s)
		case Morphism:
			s.ID = len(set.Morphisms)
			set.Morphisms = append(set.Morphisms, s)
		default:
			s.ID = len(set.Wires)
			set.Wires = append(set.Wires, s)
		}
	}
	return set
}
