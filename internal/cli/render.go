package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/longpath/edgelist"
	"github.com/katalvlaran/longpath/longest"
	"github.com/katalvlaran/longpath/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	solveOpts        // same decode/search knobs as solve
	format    string // "dot" or "svg"
}

func newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Visualize the graph with its longest path highlighted",
		Long: `Render decodes the same edge-list input as solve, runs the search, and
emits a Graphviz drawing of the whole graph with the winning path in red.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, &opts)
		},
	}

	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail on the first malformed record instead of dropping it")
	cmd.Flags().BoolVar(&opts.closedTours, "closed-tours", false, "also accept paths closing back to their start vertex")
	cmd.Flags().DurationVar(&opts.timeLimit, "time-limit", 0, "soft search budget (e.g. 2s); 0 disables")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the drawing to a file instead of stdout")
	cmd.Flags().StringVar(&opts.config, "config", "", "TOML config file with solver defaults")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "dot", "output format: dot or svg")

	return cmd
}

func runRender(cmd *cobra.Command, args []string, opts *renderOpts) error {
	logger := loggerFromContext(cmd.Context())
	if err := opts.applyConfig(cmd); err != nil {
		return err
	}
	if opts.format != "dot" && opts.format != "svg" {
		return fmt.Errorf("unknown format %q (want dot or svg)", opts.format)
	}

	in, closeFn, name, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	if closeFn != nil {
		defer closeFn() //nolint:errcheck // read-only stream
	}

	dec, err := edgelist.Decode(in, opts.decodeOptions()...)
	if err != nil {
		return err
	}
	logger.Debugf("decoded %s: %d edges, %d vertices", name, dec.Edges, dec.Graph.VertexCount())

	res, err := longest.Longest(dec.Graph, opts.searchOptions())
	if err != nil {
		return err
	}

	var label string
	if res.Found {
		label = fmt.Sprintf("distance %g", res.Distance)
	}
	dot := render.ToDOT(dec.Graph, res.Path, render.Options{Label: label})

	payload := []byte(dot)
	if opts.format == "svg" {
		p := newProgress(logger)
		if payload, err = render.RenderSVG(cmd.Context(), dot); err != nil {
			return err
		}
		p.done("rendered SVG")
	}

	out, closeOut, err := openOutput(cmd, opts.output)
	if err != nil {
		return err
	}
	if closeOut != nil {
		defer closeOut() //nolint:errcheck // single write below
	}
	_, err = out.Write(payload)

	return err
}
