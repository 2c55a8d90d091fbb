package cli

import (
	"github.com/spf13/cobra"

	"tikzsketch/pkg/diagram"
)

func newGraphCmd(global *globalOpts) *cobra.Command {
	var output string
	var surface surfaceOpts

	cmd := &cobra.Command{
		Use:   "graph [file.svg|-]",
		Short: "Write the recognised diagram as JSON",
		Long:  `Write the diagram graph as JSON: dots and morphisms with their centroids, and every wire with its resolved ends and simplified route, all in drawing coordinates.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := global.loadConfig()
			if err != nil {
				return err
			}
			d, _, err := readDrawing(cmd, args, c, surface)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			g := diagram.Build(d.Paths, diagram.Options{Config: c, Logger: loggerFromContext(ctx)})
			if ctx.Err() != nil {
				return ctx.Err()
			}

			w, closeOutput, err := openOutput(cmd, output)
			if err != nil {
				return err
			}
			if err := diagram.WriteJSON(w, g); err != nil {
				closeOutput()
				return err
			}
			return closeOutput()
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: standard output)")
	surface.addFlags(cmd)

	return cmd
}
