package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dialoguewheel/pkg/pipeline"
)

// statesCommand creates the states command for selection state diagrams.
func (c *CLI) statesCommand() *cobra.Command {
	var (
		src        sourceFlags
		formatsStr string
		output     string
		noCache    bool
	)
	opts := pipeline.Options{
		View:     pipeline.ViewStates,
		Selected: pipeline.NoSelection,
		Scale:    pipeline.DefaultScale,
	}

	cmd := &cobra.Command{
		Use:   "states [options-file]",
		Short: "Render the selection state diagram of a wheel",
		Long: `Render the selection state diagram of a wheel.

Each enabled option is a "selected" state reachable from "unselected" and,
unless --hide-transfers is set, from every other selected state. Disabled
options appear as unreachable nodes. Graphviz lays out the diagram; use -f dot
to get the source.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				src.options = args[0]
			}
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(pipeline.ViewStates, opts.Formats); err != nil {
				return err
			}
			return c.runStates(cmd.Context(), src, opts, output, noCache)
		},
	}

	src.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format), base path (multiple), or - for stdout")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, dot (comma-separated)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().IntVar(&opts.Selected, "current", opts.Selected, "highlight the state of this option (-1 for unselected)")
	cmd.Flags().BoolVar(&opts.Detailed, "detailed", false, "label states with option colors and flags")
	cmd.Flags().BoolVar(&opts.HideTransfers, "hide-transfers", false, "omit transitions between selected states")
	cmd.Flags().Float64Var(&opts.Scale, "scale", opts.Scale, "pixel scale factor (png)")

	return cmd
}

func (c *CLI) runStates(ctx context.Context, flags sourceFlags, opts pipeline.Options, output string, noCache bool) error {
	src, err := flags.load(c.Config)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	spinner := newSpinnerWithContext(ctx, "Laying out state diagram...")
	spinner.Start()

	result, err := runner.Execute(ctx, src, opts)
	if err != nil {
		spinner.StopWithError("State diagram failed")
		return fmt.Errorf("states: %w", err)
	}
	if output != stdoutPath {
		spinner.StopWithSuccess("State diagram complete")
	} else {
		spinner.Stop()
	}

	suffix := ""
	if output == "" {
		suffix = "_states"
	}
	return writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		input:     flags.options,
		output:    output,
		suffix:    suffix,
		cacheHit:  result.CacheInfo.RenderHit,
	})
}
