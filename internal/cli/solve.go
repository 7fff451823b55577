package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/longpath/edgelist"
	"github.com/katalvlaran/longpath/longest"
)

// solveOpts holds the command-line flags for the solve command.
type solveOpts struct {
	strict      bool          // abort on the first malformed record
	closedTours bool          // also accept tours closing back to the start
	timeLimit   time.Duration // soft search budget, 0 = none
	output      string        // output file path (stdout if empty)
	config      string        // optional TOML config path
}

// applyConfig folds file-based defaults into o for every flag the user did
// not set explicitly.
func (o *solveOpts) applyConfig(cmd *cobra.Command) error {
	cfg, err := loadConfig(o.config)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("strict") {
		o.strict = cfg.Parse.Strict
	}
	if !cmd.Flags().Changed("closed-tours") {
		o.closedTours = cfg.Search.ClosedTours
	}
	if !cmd.Flags().Changed("time-limit") {
		if o.timeLimit, err = cfg.Search.timeLimit(); err != nil {
			return err
		}
	}

	return nil
}

// searchOptions converts solveOpts into longest.Options.
func (o *solveOpts) searchOptions() longest.Options {
	opts := longest.DefaultOptions()
	if o.closedTours {
		opts.Closure = longest.ClosedTours
	}
	opts.TimeLimit = o.timeLimit

	return opts
}

// decodeOptions converts solveOpts into edgelist options.
func (o *solveOpts) decodeOptions() []edgelist.Option {
	if o.strict {
		return []edgelist.Option{edgelist.WithStrict()}
	}

	return nil
}

func newSolveCmd() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Find the longest simple path in an edge list",
		Long: `Solve reads edge records ("src, dst, weight", one per line) from the named
file or standard input and prints the longest path's vertex ids, one per
line (CRLF-separated). An empty graph produces no output.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, args, &opts)
		},
	}

	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail on the first malformed record instead of dropping it")
	cmd.Flags().BoolVar(&opts.closedTours, "closed-tours", false, "also accept paths closing back to their start vertex")
	cmd.Flags().DurationVar(&opts.timeLimit, "time-limit", 0, "soft search budget (e.g. 2s); 0 disables")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the result to a file instead of stdout")
	cmd.Flags().StringVar(&opts.config, "config", "", "TOML config file with solver defaults")

	return cmd
}

func runSolve(cmd *cobra.Command, args []string, opts *solveOpts) error {
	logger := loggerFromContext(cmd.Context())
	if err := opts.applyConfig(cmd); err != nil {
		return err
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
	logger.Debugf("decoded %s: %d records, %d edges, %d skipped, %d vertices",
		name, dec.Records, dec.Edges, dec.Skipped, dec.Graph.VertexCount())

	p := newProgress(logger)
	res, err := longest.Longest(dec.Graph, opts.searchOptions())
	if err != nil {
		return err
	}
	if !res.Found {
		logger.Debug("empty graph, nothing to report")

		return nil
	}
	p.done(fmt.Sprintf("longest path: %d vertices, distance %g, %d branches pruned",
		len(res.Path), res.Distance, res.Pruned))

	out, closeOut, err := openOutput(cmd, opts.output)
	if err != nil {
		return err
	}
	if closeOut != nil {
		defer closeOut() //nolint:errcheck // flushed by EncodePath's final write
	}

	return edgelist.EncodePath(out, res.Path)
}

// openOutput returns the destination stream for --output, defaulting to the
// command's stdout.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" {
		return cmd.OutOrStdout(), nil, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open output: %w", err)
	}

	return f, f.Close, nil
}
