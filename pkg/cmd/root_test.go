package cmd

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/pseudomuto/sqlfmt/pkg/cmd/testutil"
	"github.com/pseudomuto/sqlfmt/pkg/config"
)

func TestApp_Version(t *testing.T) {
	app := newApp(Params{
		Version: &Version{Version: "v1.2.3", Commit: "abc123", Timestamp: "2024-01-01"},
	})

	var buf bytes.Buffer
	app.Writer = &buf

	require.NoError(t, app.Run(context.Background(), []string{"sqlfmt", "--version"}))
	require.Contains(t, buf.String(), "Version: v1.2.3")
	require.Contains(t, buf.String(), "Commit: abc123")
	require.Contains(t, buf.String(), "Date: 2024-01-01")
}

func TestApp_Verbose(t *testing.T) {
	t.Cleanup(func() { slog.SetLogLoggerLevel(slog.LevelInfo) })

	app := newApp(Params{
		Version:  &Version{},
		Commands: []*cli.Command{tokensCmd()},
	})

	var buf bytes.Buffer
	app.Writer = &buf
	app.Reader = bytes.NewBufferString("select 1")

	require.NoError(t, app.Run(context.Background(), []string{"sqlfmt", "--verbose", "tokens"}))
	require.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
	require.Contains(t, buf.String(), "ReservedTopLevel")
}

func TestModule(t *testing.T) {
	err := fx.ValidateApp(
		config.Module,
		Module,
		fx.Supply([]string{"sqlfmt", "--help"}),
		fx.Supply(&Version{Version: "test"}),
		fx.Provide(context.Background),
	)
	require.NoError(t, err)
}

func TestRun_ExitCode(t *testing.T) {
	dir := testutil.SQLDir(t, map[string]string{"clean.sql": formattedSQL})

	tests := []struct {
		name     string
		args     []string
		expected int
	}{
		{name: "success", args: []string{"sqlfmt", "fmt", "-l", dir}, expected: 0},
		{name: "missing path", args: []string{"sqlfmt", "fmt", "/nonexistent/x.sql"}, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fxtest.New(t,
				config.Module,
				Module,
				fx.Supply(tt.args),
				fx.Supply(&Version{Version: "test"}),
				fx.Provide(context.Background),
				fx.NopLogger,
			)

			app.RequireStart()
			signal := <-app.Wait()
			app.RequireStop()

			require.Equal(t, tt.expected, signal.ExitCode)
		})
	}
}
