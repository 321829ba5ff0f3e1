package config

import (
	"os"

	"go.uber.org/fx"

	"github.com/pseudomuto/sqlfmt/pkg/consts"
	"github.com/pseudomuto/sqlfmt/pkg/format"
)

var Module = fx.Module("config", fx.Provide(
	// Loads the configuration named by $SQLFMT_CONFIG, falling back to
	// .sqlfmt.yaml. Returns nil if the file doesn't exist so the formatter runs
	// with defaults.
	func() (*Config, error) {
		return LoadDefault()
	},
	func(c *Config) *format.Formatter {
		return c.GetFormatter()
	},
))

// LoadDefault loads the configuration file named by the SQLFMT_CONFIG
// environment variable, or consts.ConfigFile when it is unset. A missing file
// is not an error: the returned config is nil.
func LoadDefault() (*Config, error) {
	path := os.Getenv(consts.ConfigFileEnv)
	if path == "" {
		path = consts.ConfigFile
	}

	return LoadOptional(path)
}

// LoadOptional is like LoadConfigFile but returns a nil config when path does
// not exist.
func LoadOptional(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	return LoadConfigFile(path)
}
