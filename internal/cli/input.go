package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"tikzsketch/pkg/cfg"
	"tikzsketch/pkg/drawing"
)

// surfaceOpts overrides the surface size of the input drawing.
type surfaceOpts struct {
	width  float64
	height float64
}

func (s *surfaceOpts) addFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&s.width, "width", 0, "surface width, overriding the drawing's own size")
	cmd.Flags().Float64Var(&s.height, "height", 0, "surface height, overriding the drawing's own size")
}

// readDrawing reads the SVG named by args, or standard input when args is
// empty or "-".
func readDrawing(cmd *cobra.Command, args []string, c cfg.Config, surface surfaceOpts) (*drawing.Drawing, string, error) {
	name := "-"
	if len(args) > 0 {
		name = args[0]
	}

	var r io.Reader
	if name == "-" {
		r = cmd.InOrStdin()
		name = "<stdin>"
	} else {
		f, err := os.Open(name)
		if err != nil {
			return nil, name, err
		}
		defer f.Close()
		r = f
	}

	data, err := readAll(cmd.Context(), r)
	if err != nil {
		return nil, name, err
	}
	d, err := drawing.Parse(data, drawing.Options{
		CurveSteps: c.CurveSteps,
		Width:      surface.width,
		Height:     surface.height,
	})
	if err != nil {
		return nil, name, fmt.Errorf("%s: %w", name, err)
	}

	logger := loggerFromContext(cmd.Context())
	logger.Infof("Read %d strokes from %s (%gx%g)", len(d.Paths), name, d.Width, d.Height)
	return d, name, nil
}

// openOutput returns the writer for the -o flag, standard output when empty.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

// readAll reads r to the end, giving up when ctx is cancelled. A read
// blocked on standard input is abandoned, not interrupted.
func readAll(ctx context.Context, r io.Reader) ([]byte, error) {
	type result struct {
		data []byte
		err  error
	}
	done := make(chan result, 1)
	go func() {
		data, err := io.ReadAll(r)
		done <- result{data, err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-done:
		return res.data, res.err
	}
}
