package svgpath

import (
	"fmt"
	"math"

	"tikzsketch/pkg/geometry"
)

// Matrix is an SVG affine transform:
//
//	⎡ A  C  E ⎤
//	⎢ B  D  F ⎥
//	⎣ 0  0  1 ⎦
type Matrix struct {
	A float64
	B float64
	C float64
	D float64
	E float64
	F float64
}

var Identity = Matrix{A: 1, D: 1}

// ParseTransform parses the value of a transform attribute. The empty
// string is the identity.
func ParseTransform(transform string) (Matrix, error) {
	m := Identity
	if transform == "" {
		return m, nil
	}

	functions, err := ParseFunctions(transform)
	if err != nil {
		return m, fmt.Errorf("failed to parse transform %q: %w", transform, err)
	}

	for _, function := range functions {
		args := function.Args
		arity := func(counts ...int) error {
			for _, n := range counts {
				if len(args) == n {
					return nil
				}
			}
			return fmt.Errorf("%s transform takes %v args, got %v", function.Name, counts, args)
		}

		switch function.Name {
		case "matrix":
			if err := arity(6); err != nil {
				return m, err
			}
			m = m.Multiply(Matrix{
				A: args[0], C: args[2], E: args[4],
				B: args[1], D: args[3], F: args[5],
			})
		case "translate":
			if err := arity(1, 2); err != nil {
				return m, err
			}
			y := 0.0
			if len(args) == 2 {
				y = args[1]
			}
			m = m.Multiply(Matrix{A: 1, D: 1, E: args[0], F: y})
		case "scale":
			if err := arity(1, 2); err != nil {
				return m, err
			}
			y := args[0]
			if len(args) == 2 {
				y = args[1]
			}
			m = m.Multiply(Matrix{A: args[0], D: y})
		case "rotate":
			//  ⎡ cos(θ)  −sin(θ)  −x⋅cos(θ)+y⋅sin(θ)+x ⎤
			//  ⎢ sin(θ)   cos(θ)  −x⋅sin(θ)−y⋅cos(θ)+y |
			//  ⎣   0        0               1          ⎦
			if err := arity(1, 3); err != nil {
				return m, err
			}
			cos := math.Cos(args[0] * math.Pi / 180)
			sin := math.Sin(args[0] * math.Pi / 180)
			x, y := 0.0, 0.0
			if len(args) == 3 {
				x, y = args[1], args[2]
			}
			m = m.Multiply(Matrix{
				A: cos, C: -sin, E: -x*cos + y*sin + x,
				B: sin, D: cos, F: -x*sin - y*cos + y,
			})
		case "skewX":
			if err := arity(1); err != nil {
				return m, err
			}
			m = m.Multiply(Matrix{A: 1, D: 1, C: math.Tan(args[0] * math.Pi / 180)})
		case "skewY":
			if err := arity(1); err != nil {
				return m, err
			}
			m = m.Multiply(Matrix{A: 1, D: 1, B: math.Tan(args[0] * math.Pi / 180)})
		default:
			return m, fmt.Errorf("unknown transform function %q %v", function.Name, args)
		}
	}

	return m, nil
}

func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.C*other.B,
		B: m.B*other.A + m.D*other.B,
		C: m.A*other.C + m.C*other.D,
		D: m.B*other.C + m.D*other.D,
		E: m.A*other.E + m.C*other.F + m.E,
		F: m.B*other.E + m.D*other.F + m.F,
	}
}

func (m Matrix) TransformPoint(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.E, m.B*x + m.D*y + m.F
}

// Apply transforms every point of path in place.
func (m Matrix) Apply(path geometry.Path) {
	for i, p := range path {
		path[i].X, path[i].Y = m.TransformPoint(p.X, p.Y)
	}
}
