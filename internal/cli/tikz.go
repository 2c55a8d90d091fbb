package cli

import (
	"github.com/spf13/cobra"

	"tikzsketch/pkg/diagram"
	"tikzsketch/pkg/tikz"
)

type tikzOpts struct {
	output   string
	fragment bool
	surface  surfaceOpts
}

func newTikzCmd(global *globalOpts) *cobra.Command {
	var opts tikzOpts

	cmd := &cobra.Command{
		Use:   "tikz [file.svg|-]",
		Short: "Convert a drawing to TikZ source",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTikz(cmd, args, global, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: standard output)")
	cmd.Flags().BoolVar(&opts.fragment, "fragment", false, "write the picture body only, without the document wrapper")
	opts.surface.addFlags(cmd)

	return cmd
}

func runTikz(cmd *cobra.Command, args []string, global *globalOpts, opts tikzOpts) error {
	c, err := global.loadConfig()
	if err != nil {
		return err
	}
	d, _, err := readDrawing(cmd, args, c, opts.surface)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	g := diagram.Build(d.Paths, diagram.Options{Config: c, Logger: logger})
	if ctx.Err() != nil {
		return ctx.Err()
	}

	w, closeOutput, err := openOutput(cmd, opts.output)
	if err != nil {
		return err
	}
	transform := tikz.Transform{Width: d.Width, Height: d.Height, Grid: c.Grid}
	if err := tikz.Write(w, g, transform, tikz.Options{Fragment: opts.fragment}); err != nil {
		closeOutput()
		return err
	}
	if err := closeOutput(); err != nil {
		return err
	}

	logger.Infof("Generated %d dots, %d morphisms, %d wires", len(g.Dots), len(g.Morphisms), len(g.Edges))
	if opts.output != "" {
		logger.Infof("Wrote %s", opts.output)
	}
	return nil
}
