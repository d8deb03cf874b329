package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dialoguewheel/pkg/pipeline"
)

// renderCommand creates the render command for static wheel exports.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		src        sourceFlags
		formatsStr string
		output     string
		noCache    bool
	)
	opts := pipeline.Options{
		View:       pipeline.ViewWheel,
		Selected:   pipeline.NoSelection,
		Scale:      pipeline.DefaultScale,
		Rasterizer: "builtin",
	}

	cmd := &cobra.Command{
		Use:   "render [options-file]",
		Short: "Render a dialogue wheel to SVG, HTML, PNG, PDF, or JSON",
		Long: `Render a dialogue wheel from an option list.

The option list is a JSON or YAML array of {text, color, disabled} entries,
or a TOML file with [[options]] tables. The appearance comes from the config
file's [appearance] section unless --appearance or --demo is given.

Results are cached locally for faster subsequent runs.`,
		Example: `  dialoguewheel render choices.yaml -f svg,png
  dialoguewheel render --demo -f html -o demo.html
  dialoguewheel render choices.json --selected 2 --flat -o - > wheel.svg`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				src.options = args[0]
			}
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(pipeline.ViewWheel, opts.Formats); err != nil {
				return err
			}
			if err := pipeline.ValidateRasterizer(opts.Rasterizer); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), src, opts, output, noCache)
		},
	}

	src.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format), base path (multiple), or - for stdout")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), html, png, pdf, json (comma-separated)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "re-render even when a cached artifact exists")

	cmd.Flags().IntVar(&opts.Selected, "selected", opts.Selected, "index of the option to mark as selected (-1 for none)")
	cmd.Flags().BoolVar(&opts.Inline, "inline", false, "use presentation attributes instead of a stylesheet (svg)")
	cmd.Flags().BoolVar(&opts.Flat, "flat", false, "ignore the perspective tilt (svg, png, pdf)")
	cmd.Flags().StringVar(&opts.Background, "background", "", "background color as hex, e.g. #1e1e24")
	cmd.Flags().BoolVar(&opts.Interactive, "interactive", false, "embed a click handler script (svg)")
	cmd.Flags().StringVar(&opts.Title, "title", pipeline.DefaultTitle, "page title (html)")
	cmd.Flags().Float64Var(&opts.Scale, "scale", opts.Scale, "pixel scale factor (png)")
	cmd.Flags().StringVar(&opts.Rasterizer, "rasterizer", opts.Rasterizer, "png backend: builtin (default), rsvg")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, flags sourceFlags, opts pipeline.Options, output string, noCache bool) error {
	src, err := flags.load(c.Config)
	if err != nil {
		return err
	}
	if opts.Selected != pipeline.NoSelection && opts.Selected >= 0 && opts.Selected < len(src.Options) && src.Options[opts.Selected].Disabled {
		printWarning("Option %d is disabled; rendering without a selection", opts.Selected)
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, "Rendering wheel...")
	spinner.Start()

	result, err := runner.Execute(ctx, src, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("render: %w", err)
	}
	cancelled := spinner.Cancelled()
	spinner.Stop()
	if cancelled {
		return ctx.Err()
	}
	prog.done(fmt.Sprintf("Rendered %s", plural(len(opts.Formats), "format")))

	if output != stdoutPath {
		printSuccess("Render complete")
	}
	if err := writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		input:     flags.options,
		output:    output,
		cacheHit:  result.CacheInfo.RenderHit,
	}); err != nil {
		return err
	}
	if output != stdoutPath {
		printStats(result.Stats.Segments, result.Stats.Layers, result.CacheInfo.RenderHit)
	}
	return nil
}
