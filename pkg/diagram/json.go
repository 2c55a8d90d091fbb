package diagram

import (
	"encoding/json"
	"io"

	"tikzsketch/pkg/anchor"
	"tikzsketch/pkg/connect"
	"tikzsketch/pkg/geometry"
	"tikzsketch/pkg/svgpath"
	"tikzsketch/pkg/wire"
)

type jsonNode struct {
	ID          string             `json:"id"`
	At          geometry.Point     `json:"at"`
	Bounds      geometry.Rectangle `json:"bounds"`
	Orientation string             `json:"orientation,omitempty"`
}

type jsonEnd struct {
	Kind   string         `json:"kind"`
	Node   string         `json:"node,omitempty"`
	Anchor *anchor.Anchor `json:"anchor,omitempty"`
	At     geometry.Point `json:"at"`
}

type jsonEdge struct {
	Wire  int        `json:"wire"`
	Begin jsonEnd    `json:"begin"`
	End   jsonEnd    `json:"end"`
	Route wire.Route `json:"route"`
	// D is the route as SVG path data, for overlaying on the drawing.
	D string `json:"d"`
}

type jsonGraph struct {
	Dots      []jsonNode `json:"dots"`
	Morphisms []jsonNode `json:"morphisms"`
	Edges     []jsonEdge `json:"edges"`
}

func (e End) toJSON() jsonEnd {
	j := jsonEnd{Kind: e.Kind.String(), At: e.At}
	if e.Kind != connect.Free {
		j.Node = e.Connection.String()
		a := e.Anchor
		j.Anchor = &a
	}
	return j
}

// MarshalJSON writes the graph in screen coordinates. Absent route angles
// are null; each edge also carries its route as path data.
func (g *Graph) MarshalJSON() ([]byte, error) {
	out := jsonGraph{
		Dots:      []jsonNode{},
		Morphisms: []jsonNode{},
		Edges:     []jsonEdge{},
	}
	for _, d := range g.Dots {
		out.Dots = append(out.Dots, jsonNode{ID: d.Name(), At: d.Centroid, Bounds: d.Bounds})
	}
	for _, m := range g.Morphisms {
		out.Morphisms = append(out.Morphisms, jsonNode{
			ID:          m.Name(),
			At:          m.Centroid,
			Bounds:      m.Bounds,
			Orientation: m.Orientation.String(),
		})
	}
	for _, e := range g.Edges {
		out.Edges = append(out.Edges, jsonEdge{
			Wire:  e.Wire.Shape.ID,
			Begin: e.Begin.toJSON(),
			End:   e.End.toJSON(),
			Route: e.Route,
			D:     svgpath.Format(e.Route.Points()),
		})
	}
	return json.Marshal(out)
}

// WriteJSON writes g as indented JSON.
func WriteJSON(w io.Writer, g *Graph) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(g)
}
