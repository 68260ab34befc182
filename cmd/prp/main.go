// Package main provides the CLI entry point for prp.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/richhaase/pr-prompt/internal/clipboard"
	"github.com/richhaase/pr-prompt/internal/domain"
	"github.com/richhaase/pr-prompt/internal/terminal"
)

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := &cobra.Command{
		Use:   "prp <pr-number>",
		Short: "Copy a pull request review prompt to the clipboard",
		Long: `Fetch a pull request's metadata and diff for the repository in the
current directory, sync the local branches to the PR head, assemble a
review prompt (title, description, changed files, pre-change file
contents, and the full diff), and copy it to the system clipboard.

Requires the git CLI on PATH and a GITHUB_TOKEN environment variable.

Exit codes:
  0 - Prompt copied
  1 - Error
  130 - Interrupted`,
		Args:          cobra.ExactArgs(1),
		RunE:          runPrompt,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	if err := rootCmd.Execute(); err != nil {
		if exitErr, ok := err.(exitCodeError); ok {
			return exitErr.code.Int()
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return domain.ExitError.Int()
	}

	return 0
}

func runPrompt(_ *cobra.Command, args []string) error {
	// Disable colors if stderr is not a TTY
	if !terminal.IsStderrTTY() {
		terminal.DisableColors()
	}

	logger := terminal.NewLogger()

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr)
		logger.Log("Interrupted, shutting down...", terminal.StyleWarning)
		cancel()
	}()

	code := execute(ctx, args[0], clipboard.System{}, logger)
	return exitCode(code)
}
