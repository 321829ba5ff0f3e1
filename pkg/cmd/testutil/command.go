package testutil

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"
)

// RunCommand executes a command with test context and returns its output.
// Standard input is empty.
func RunCommand(t *testing.T, command *cli.Command, args []string) (string, error) {
	t.Helper()
	return RunCommandWithInput(context.Background(), t, command, strings.NewReader(""), args)
}

// RunCommandWithInput executes a command with a custom context and standard
// input, returning everything it wrote to its output.
func RunCommandWithInput(ctx context.Context, t *testing.T, command *cli.Command, stdin io.Reader, args []string) (string, error) {
	t.Helper()

	var buf bytes.Buffer

	// Create a test CLI app
	app := &cli.Command{
		Name:     "test",
		Reader:   stdin,
		Writer:   &buf,
		Commands: []*cli.Command{command},
	}

	// Prepend command name to args
	fullArgs := append([]string{"test", command.Name}, args...)

	err := app.Run(ctx, fullArgs)
	return buf.String(), err
}
