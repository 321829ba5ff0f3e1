package cmd

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// inputReader returns the reader a command takes SQL from when no path is
// given. An interactive terminal is rejected rather than waiting for input.
func inputReader(cmd *cli.Command) (io.Reader, error) {
	var r io.Reader = os.Stdin
	if root := cmd.Root(); root.Reader != nil {
		r = root.Reader
	}

	if isTerminal(r) {
		return nil, errors.New("no input: pass a path or pipe SQL to standard input")
	}

	return r, nil
}

// outputWriter returns the writer of the root command, which is where the
// application's output is configured.
func outputWriter(cmd *cli.Command) io.Writer {
	if root := cmd.Root(); root.Writer != nil {
		return root.Writer
	}
	if cmd.Writer != nil {
		return cmd.Writer
	}
	return os.Stdout
}

// isTerminal reports whether v is an *os.File attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
