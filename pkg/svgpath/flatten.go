package svgpath

import (
	"strconv"
	"strings"

	"tikzsketch/pkg/geometry"
)

// Flatten turns a subpath into a polyline. Each cubic curve becomes steps
// straight segments; a closepath adds the start point again.
func (path *SubPath) Flatten(steps int) geometry.Path {
	if steps < 1 {
		steps = 1
	}
	points := geometry.Path{{X: path.X, Y: path.Y}}
	last := points[0]
	for _, drawTo := range path.DrawTo {
		end := geometry.Point{X: drawTo.X, Y: drawTo.Y}
		if drawTo.Command == CurveTo {
			c1 := geometry.Point{X: drawTo.X1, Y: drawTo.Y1}
			c2 := geometry.Point{X: drawTo.X2, Y: drawTo.Y2}
			for i := 1; i < steps; i++ {
				points = append(points, cubic(last, c1, c2, end, float64(i)/float64(steps)))
			}
		}
		points = append(points, end)
		last = end
	}
	return points
}

// cubic evaluates a cubic Bézier curve at t.
func cubic(p0, p1, p2, p3 geometry.Point, t float64) geometry.Point {
	u := 1 - t
	a, b, c, d := u*u*u, 3*u*u*t, 3*u*t*t, t*t*t
	return geometry.Point{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

// Paths parses path data and flattens every subpath into one stroke.
func Paths(data string, curveSteps int) ([]geometry.Path, error) {
	subPaths, err := Parse(data)
	if err != nil {
		return nil, err
	}
	paths := make([]geometry.Path, 0, len(subPaths))
	for _, sp := range subPaths {
		paths = append(paths, sp.Flatten(curveSteps))
	}
	return paths, nil
}

// Format writes a stroke as "M x y L x y ..." path data.
func Format(path geometry.Path) string {
	var buf strings.Builder
	for i, p := range path {
		if i == 0 {
			buf.WriteString("M ")
		} else {
			buf.WriteString(" L ")
		}
		buf.WriteString(strconv.FormatFloat(p.X, 'f', -1, 64))
		buf.WriteString(" ")
		buf.WriteString(strconv.FormatFloat(p.Y, 'f', -1, 64))
	}
	return buf.String()
}
