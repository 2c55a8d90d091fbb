// Package drawing reads the strokes of an SVG drawing surface.
//
// Strokes are taken from every <path>, <polyline> and <polygon> element,
// with the transforms of enclosing groups applied. The surface size is the
// viewBox when there is one, otherwise the root width and height converted
// to pixels.
package drawing

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"tikzsketch/pkg/geometry"
	"tikzsketch/pkg/svgpath"
)

var ErrNoSurface = errors.New("drawing has no surface size")

// Drawing is one snapshot of the capture surface.
type Drawing struct {
	Width  float64
	Height float64
	Paths  []geometry.Path
}

// skipped elements hold geometry that is not drawn directly.
var skipped = map[string]bool{
	"defs":     true,
	"clipPath": true,
	"mask":     true,
	"marker":   true,
	"symbol":   true,
	"pattern":  true,
}

type Options struct {
	// CurveSteps is the number of segments each cubic curve is flattened into.
	CurveSteps int
	// Width and Height, when both positive, replace the document's own
	// surface size.
	Width  float64
	Height float64
}

// Parse reads an SVG document.
func Parse(data []byte, opts Options) (*Drawing, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("failed to read svg: %w", err)
	}
	return fromDocument(doc, opts)
}

// FromPathData builds a drawing from raw path data strings, one stroke
// group per string, as the capture page holds them.
func FromPathData(data []string, width, height float64, curveSteps int) (*Drawing, error) {
	if !(width > 0) || !(height > 0) {
		return nil, fmt.Errorf("%w: %gx%g", ErrNoSurface, width, height)
	}
	d := &Drawing{Width: width, Height: height}
	for i, pathData := range data {
		paths, err := svgpath.Paths(pathData, curveSteps)
		if err != nil {
			return nil, fmt.Errorf("path %d: %w", i, err)
		}
		d.add(paths)
	}
	return d, nil
}

// add keeps the strokes that have at least two points.
func (d *Drawing) add(paths []geometry.Path) {
	for _, path := range paths {
		if len(path) >= 2 {
			d.Paths = append(d.Paths, path)
		}
	}
}

func fromDocument(doc *etree.Document, opts Options) (*Drawing, error) {
	root := doc.Root()
	if root == nil || root.Tag != "svg" {
		return nil, errors.New("document has no <svg> root")
	}

	d := &Drawing{}
	origin := svgpath.Identity
	if viewBox := root.SelectAttrValue("viewBox", ""); viewBox != "" {
		minX, minY, w, h, err := parseViewBox(viewBox)
		if err != nil {
			return nil, err
		}
		d.Width, d.Height = w, h
		origin = svgpath.Matrix{A: 1, D: 1, E: -minX, F: -minY}
	}
	if opts.Width > 0 && opts.Height > 0 {
		d.Width, d.Height = opts.Width, opts.Height
	} else if d.Width == 0 && d.Height == 0 {
		var err error
		if d.Width, err = parseLength(root.SelectAttrValue("width", "")); err != nil {
			return nil, fmt.Errorf("%w: width: %v", ErrNoSurface, err)
		}
		if d.Height, err = parseLength(root.SelectAttrValue("height", "")); err != nil {
			return nil, fmt.Errorf("%w: height: %v", ErrNoSurface, err)
		}
	}
	if !(d.Width > 0) || !(d.Height > 0) {
		return nil, fmt.Errorf("%w: %gx%g", ErrNoSurface, d.Width, d.Height)
	}

	var descend func(el *etree.Element, matrix svgpath.Matrix) error
	descend = func(el *etree.Element, matrix svgpath.Matrix) error {
		if skipped[el.Tag] {
			return nil
		}
		transform, err := svgpath.ParseTransform(el.SelectAttrValue("transform", ""))
		if err != nil {
			return fmt.Errorf("<%s id=%q>: %w", el.Tag, el.SelectAttrValue("id", ""), err)
		}
		matrix = matrix.Multiply(transform)

		var data string
		switch el.Tag {
		case "path":
			data = el.SelectAttrValue("d", "")
		case "polyline":
			data = pointsToPathData(el.SelectAttrValue("points", ""), false)
		case "polygon":
			data = pointsToPathData(el.SelectAttrValue("points", ""), true)
		}
		if data != "" {
			paths, err := svgpath.Paths(data, opts.CurveSteps)
			if err != nil {
				return fmt.Errorf("<%s id=%q>: %w", el.Tag, el.SelectAttrValue("id", ""), err)
			}
			for _, path := range paths {
				matrix.Apply(path)
			}
			d.add(paths)
		}

		for _, child := range el.ChildElements() {
			if err := descend(child, matrix); err != nil {
				return err
			}
		}
		return nil
	}

	for _, child := range root.ChildElements() {
		if err := descend(child, origin); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func pointsToPathData(points string, closed bool) string {
	points = strings.TrimSpace(points)
	if points == "" {
		return ""
	}
	if closed {
		return "M" + points + "Z"
	}
	return "M" + points
}

func parseViewBox(viewBox string) (minX, minY, width, height float64, err error) {
	fields := strings.FieldsFunc(viewBox, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields) != 4 {
		return 0, 0, 0, 0, fmt.Errorf("%w: malformed viewBox %q", ErrNoSurface, viewBox)
	}
	var values [4]float64
	for i, f := range fields {
		if values[i], err = strconv.ParseFloat(f, 64); err != nil {
			return 0, 0, 0, 0, fmt.Errorf("%w: malformed viewBox %q", ErrNoSurface, viewBox)
		}
	}
	return values[0], values[1], values[2], values[3], nil
}

var lengthRE = regexp.MustCompile(`^\s*([0-9.eE+-]+)\s*([a-zA-Z%]*)\s*$`)

// pixelsPer holds CSS absolute length units in pixels,
// see https://www.w3.org/TR/css3-values/#absolute-lengths
var pixelsPer = map[string]float64{
	"":   1,
	"px": 1,
	"in": 96,
	"cm": 96 / 2.54,
	"mm": 96 / 25.4,
	"Q":  96 / 101.6,
	"pt": 96.0 / 72,
	"pc": 16,
}

// parseLength converts an absolute SVG length to pixels.
func parseLength(length string) (float64, error) {
	if length == "" {
		return 0, errors.New("missing")
	}
	match := lengthRE.FindStringSubmatch(length)
	if match == nil {
		return 0, fmt.Errorf("malformed length %q", length)
	}
	factor, ok := pixelsPer[match[2]]
	if !ok {
		return 0, fmt.Errorf("unsupported unit in %q", length)
	}
	n, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, fmt.Errorf("malformed length %q", length)
	}
	return n * factor, nil
}
