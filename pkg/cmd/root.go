package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pseudomuto/sqlfmt/pkg/consts"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

type (
	Params struct {
		fx.In

		Args       []string
		Commands   []*cli.Command `group:"commands"`
		Ctx        context.Context
		Lifecycle  fx.Lifecycle
		Shutdowner fx.Shutdowner
		Version    *Version
	}

	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}
)

// Run registers a start hook that executes the sqlfmt CLI application with
// the given arguments and shuts the fx application down with the command's
// exit code.
//
// Global Flags:
//   - --config, -c: Config file (defaults to .sqlfmt.yaml, env SQLFMT_CONFIG)
//   - --verbose: Enable debug logging
//
// Example usage:
//
//	fx.New(
//		config.Module,
//		cmd.Module,
//		fx.Supply(os.Args),
//		fx.Supply(&cmd.Version{Version: "v1.0.0"}),
//		fx.Provide(context.Background),
//	).Run()
func Run(p Params) {
	p.Lifecycle.Append(fx.StartHook(func() {
		if err := newApp(p).Run(p.Ctx, p.Args); err != nil {
			slog.Error("Error running command", "err", err)
			_ = p.Shutdowner.Shutdown(fx.ExitCode(1))
			return
		}

		_ = p.Shutdowner.Shutdown(fx.ExitCode(0))
	}))
}

func newApp(p Params) *cli.Command {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Writer, "Version:", p.Version.Version)
		fmt.Fprintln(cmd.Writer, "Commit:", p.Version.Commit)
		fmt.Fprintln(cmd.Writer, "Date:", p.Version.Timestamp)
	}

	return &cli.Command{
		Name:  "sqlfmt",
		Usage: "A pretty-printer for SQL",
		Description: `sqlfmt reformats SQL statements with consistent line breaks and
indentation. It does not validate SQL, so any input can be formatted.`,
		Version: p.Version.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "the sqlfmt config file",
				Sources: cli.EnvVars(consts.ConfigFileEnv),
				Value:   consts.ConfigFile,
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable debug logging",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("verbose") {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			}

			return ctx, nil
		},
		Commands: p.Commands,
	}
}
