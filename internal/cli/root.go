package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// Typically called by the main package with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the longpath CLI under ctx and returns the first command
// error.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// newRootCmd wires the solve and render subcommands, the --verbose flag,
// and a context-attached logger. Split from Execute for tests.
func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "longpath",
		Short: "longpath finds a longest simple path in a weighted directed graph",
		Long: `longpath reads a flat edge list (one "src, dst, weight" record per line),
searches for a longest simple path with branch-and-bound pruning, and prints
the winning vertex sequence.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true, // main prints the final error itself
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("longpath %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newSolveCmd())
	root.AddCommand(newRenderCmd())

	return root
}

// openInput returns the input stream for an optional positional file
// argument, falling back to the command's stdin. The caller closes the
// returned closer when it is non-nil.
func openInput(cmd *cobra.Command, args []string) (stream io.Reader, closeFn func() error, name string, err error) {
	if len(args) == 0 {
		return cmd.InOrStdin(), nil, "stdin", nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, "", fmt.Errorf("open input: %w", err)
	}

	return f, f.Close, args[0], nil
}
