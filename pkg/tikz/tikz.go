// Package tikz writes a diagram as TikZ source for the freetikz styles.
package tikz

import (
	"bufio"
	"io"
	"strings"

	"tikzsketch/pkg/connect"
	"tikzsketch/pkg/descriptor"
	"tikzsketch/pkg/diagram"
)

const (
	preamble = "\\documentclass{standalone}\n" +
		"\\usepackage{freetikz}\n" +
		"\\begin{document}\n" +
		"\\begin{tikzpicture}\n"
	postamble = "\\end{tikzpicture}\n" +
		"\\end{document}\n"
)

var flips = map[descriptor.Orientation]string{
	descriptor.NoFlip:         "",
	descriptor.HorizontalFlip: ", hflip",
	descriptor.VerticalFlip:   ", vflip",
	descriptor.BothFlip:       ", hvflip",
}

type Options struct {
	// Fragment omits the document wrapper and writes the picture body only.
	Fragment bool
}

// Write emits dots, then morphisms, then one draw statement per edge.
func Write(w io.Writer, g *diagram.Graph, t Transform, opts Options) error {
	if err := t.Validate(); err != nil {
		return err
	}
	out := bufio.NewWriter(w)

	if !opts.Fragment {
		out.WriteString(preamble)
	}

	for _, d := range g.Dots {
		out.WriteString("  \\node[dot] (" + d.Name() + ") at (" + t.Format(d.Centroid) + ") {};\n")
	}
	for _, m := range g.Morphisms {
		out.WriteString("  \\node[morphism" + flips[m.Orientation] + "] (" + m.Name() +
			") at (" + t.Format(m.Centroid) + ") {" + m.Name() + "};\n")
	}
	for _, e := range g.Edges {
		writeEdge(out, e, t)
	}

	if !opts.Fragment {
		out.WriteString(postamble)
	}
	return out.Flush()
}

// writeEdge chains the route corners with out/in controls. Interior
// corners are always plain coordinates.
func writeEdge(out *bufio.Writer, e diagram.Edge, t Transform) {
	route := e.Route
	out.WriteString("  \\draw (" + endpoint(e.Begin, t) + ")")
	for i := 1; i < len(route); i++ {
		out.WriteString(" to[out=" + route[i-1].Out.String() + ", in=" + route[i].In.String() + "] (")
		if i == len(route)-1 {
			out.WriteString(endpoint(e.End, t))
		} else {
			out.WriteString(t.Format(route[i].Point))
		}
		out.WriteString(")")
	}
	out.WriteString(";\n")
}

func endpoint(e diagram.End, t Transform) string {
	if e.Kind == connect.Free {
		return t.Format(e.At)
	}
	return e.String()
}

// Generate is Write into a string.
func Generate(g *diagram.Graph, t Transform, opts Options) (string, error) {
	var sb strings.Builder
	if err := Write(&sb, g, t, opts); err != nil {
		return "", err
	}
	return sb.String(), nil
}
