package main

import (
	"context"
	"os"
	"time"

	"github.com/pseudomuto/sqlfmt/pkg/cmd"
	"github.com/pseudomuto/sqlfmt/pkg/config"
	"go.uber.org/fx"
)

// NB: These are set by GoReleaser during a build.
var (
	version string
	commit  string
	date    string
)

func main() {
	fx.New(
		config.Module,
		cmd.Module,
		fx.Supply(os.Args),
		fx.Supply(&cmd.Version{
			Version:   version,
			Commit:    commit,
			Timestamp: date,
		}),
		fx.Provide(context.Background),
		fx.StartTimeout(time.Hour),
		fx.NopLogger,
	).Run()
}
