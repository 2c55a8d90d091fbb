// Package cli implements the tikzsketch command-line interface.
//
// Every command reads one SVG drawing (a file, or standard input for "-"
// or no argument), runs the stroke pipeline over it and prints a result:
//
//   - tikz: the diagram as TikZ source
//   - graph: the diagram as JSON
//   - inspect: per-stroke measures and classification
//
// All commands accept --config for a TOML threshold file and --verbose for
// debug logging on standard error.
package cli

import (
	"context"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"tikzsketch/pkg/cfg"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the version information shown by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// globalOpts holds the flags shared by every command.
type globalOpts struct {
	verbose    bool
	configPath string
}

// loadConfig returns the defaults, overlaid by the --config file if given.
func (o *globalOpts) loadConfig() (cfg.Config, error) {
	if o.configPath == "" {
		return cfg.Default(), nil
	}
	return cfg.Load(o.configPath)
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	opts := &globalOpts{}

	root := &cobra.Command{
		Use:          "tikzsketch",
		Short:        "tikzsketch turns hand-drawn strokes into TikZ diagrams",
		Long:         `tikzsketch classifies the strokes of an SVG drawing into dots, boxes and wires, connects the wires to the shapes they touch and writes the result as TikZ source for the freetikz styles.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if opts.verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("tikzsketch %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "TOML file overriding the pipeline thresholds")

	root.AddCommand(newTikzCmd(opts))
	root.AddCommand(newGraphCmd(opts))
	root.AddCommand(newInspectCmd(opts))

	return root
}

// Execute runs the CLI with the process arguments.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}
