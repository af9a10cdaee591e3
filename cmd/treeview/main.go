package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matzehuels/treeview/internal/cli"
	treeerrors "github.com/matzehuels/treeview/pkg/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		code := exitCode(err)
		if code != 130 {
			fmt.Fprintln(os.Stderr, "Error:", treeerrors.UserMessage(err))
		}
		os.Exit(code)
	}
}

// exitCode maps an error to the process status: 130 for an interrupt, 2 for
// bad input, 1 for everything else.
func exitCode(err error) int {
	if errors.Is(err, context.Canceled) {
		return 130
	}
	switch treeerrors.GetCode(err) {
	case treeerrors.ErrCodeInvalidInput, treeerrors.ErrCodeInvalidFormat,
		treeerrors.ErrCodeInvalidTree, treeerrors.ErrCodeInvalidName,
		treeerrors.ErrCodeFileNotFound:
		return 2
	}
	return 1
}

func run(ctx context.Context) error {
	var verbose bool

	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()
	root.SilenceErrors = true

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	// The level must be known before the root's own pre-run registers hooks.
	originalPreRun := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level := cli.LogInfo
		if verbose {
			level = cli.LogDebug
		}
		c.SetLogLevel(level)

		if originalPreRun != nil {
			return originalPreRun(cmd, args)
		}
		return nil
	}

	return root.ExecuteContext(ctx)
}
