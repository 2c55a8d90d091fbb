package tikz

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"tikzsketch/pkg/geometry"
)

var ErrSurface = errors.New("surface width and height must be positive")

// Transform maps screen coordinates onto a 10x10 picture with y pointing
// up, snapped to Grid.
type Transform struct {
	Width  float64
	Height float64
	Grid   float64
}

func (t Transform) Validate() error {
	if !(t.Width > 0) || !(t.Height > 0) || math.IsInf(t.Width, 0) || math.IsInf(t.Height, 0) {
		return fmt.Errorf("%w: got %gx%g", ErrSurface, t.Width, t.Height)
	}
	return nil
}

// Apply returns the picture coordinates of a screen point.
func (t Transform) Apply(p geometry.Point) (x, y float64) {
	x = geometry.RoundToGrid(p.X*10/t.Width, t.Grid)
	y = geometry.RoundToGrid(10-p.Y*10/t.Height, t.Grid)
	return x, y
}

// Format writes the picture coordinates of p as "x, y". x keeps up to two
// decimals and y up to one.
func (t Transform) Format(p geometry.Point) string {
	x, y := t.Apply(p)
	return formatFixed(x, 2) + ", " + formatFixed(y, 1)
}

// formatFixed rounds v to the given number of decimals and prints the
// shortest form. Negative zero prints as 0.
func formatFixed(v float64, decimals int) string {
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	v, _ = strconv.ParseFloat(s, 64)
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
