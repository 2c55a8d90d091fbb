package cli

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"tikzsketch/pkg/shape"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func newInspectCmd(global *globalOpts) *cobra.Command {
	var surface surfaceOpts

	cmd := &cobra.Command{
		Use:   "inspect [file.svg|-]",
		Short: "Show the measures and classification of every stroke",
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

			set := shape.ClassifyAll(d.Paths, c)
			if err := cmd.Context().Err(); err != nil {
				return err
			}
			shapes := make([]shape.Shape, 0, len(d.Paths))
			shapes = append(shapes, set.Wires...)
			shapes = append(shapes, set.Dots...)
			shapes = append(shapes, set.Morphisms...)
			sort.Slice(shapes, func(i, j int) bool {
				return shapes[i].Index < shapes[j].Index
			})

			fmt.Fprintln(cmd.OutOrStdout(), inspectTable(shapes))
			return nil
		},
	}
	surface.addFlags(cmd)

	return cmd
}

func formatMeasure(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

// inspectTable lays out one row per stroke.
func inspectTable(shapes []shape.Shape) *table.Table {
	rows := make([][]string, 0, len(shapes))
	for _, s := range shapes {
		d := s.Descriptors
		rows = append(rows, []string{
			strconv.Itoa(s.Index),
			s.Name(),
			strconv.Itoa(len(s.Path)),
			formatMeasure(d.Area),
			formatMeasure(d.Perimeter),
			formatMeasure(d.Compactness),
			formatMeasure(d.Eccentricity),
			formatMeasure(d.AspectRatio),
			formatMeasure(d.Rectangularity),
			formatMeasure(d.Circularity),
			formatMeasure(d.ConvexityRatio),
			formatMeasure(d.Openness),
			d.Orientation.String(),
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "shape", "points", "area", "perimeter", "compact", "eccentric", "aspect", "rect", "circ", "convex", "open", "orientation").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return cellStyle
		})
}
