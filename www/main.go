//go:build js && wasm

package main

import (
	"fmt"
	"syscall/js"

	"tikzsketch/pkg/cfg"
	"tikzsketch/pkg/diagram"
	"tikzsketch/pkg/drawing"
	"tikzsketch/pkg/tikz"
)

func main() {
	js.Global().Set("goFreeTikz", js.FuncOf(goFreeTikz))
	<-make(chan any)
}

// goFreeTikz converts the path data strings of a drawing surface into a
// TikZ document. Arguments: an array of SVG path data strings, the surface
// width and the surface height. Returns the document, or an object with an
// "error" field.
func goFreeTikz(this js.Value, args []js.Value) any {
	if len(args) != 3 {
		return errorValue(fmt.Errorf("goFreeTikz: want 3 arguments, got %d", len(args)))
	}
	list := args[0]
	data := make([]string, list.Length())
	for i := range data {
		data[i] = list.Index(i).String()
	}
	width := args[1].Float()
	height := args[2].Float()

	c := cfg.Default()
	d, err := drawing.FromPathData(data, width, height, c.CurveSteps)
	if err != nil {
		return errorValue(err)
	}
	g := diagram.Build(d.Paths, diagram.Options{Config: c})
	out, err := tikz.Generate(g, tikz.Transform{Width: d.Width, Height: d.Height, Grid: c.Grid}, tikz.Options{})
	if err != nil {
		return errorValue(err)
	}
	return out
}

func errorValue(err error) any {
	return map[string]any{"error": err.Error()}
}
