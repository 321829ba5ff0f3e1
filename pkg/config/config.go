package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/pseudomuto/sqlfmt/pkg/format"
)

// Config represents the formatter configuration read from .sqlfmt.yaml.
//
// Zero values mean "use the default", so a config file only needs to list the
// settings it changes.
type Config struct {
	// IndentSize is the number of spaces per indent level
	IndentSize int `yaml:"indent_size,omitempty"`

	// InlineMaxLength is the number of characters a parenthesized group may
	// hold before it is broken over several lines
	InlineMaxLength int `yaml:"inline_max_length,omitempty"`

	// Lookahead is the number of tokens scanned when classifying a
	// parenthesized group
	Lookahead int `yaml:"lookahead,omitempty"`

	// SplitStatements formats each statement of a script on its own and
	// separates them with a blank line
	SplitStatements bool `yaml:"split_statements,omitempty"`
}

// LoadConfig parses a formatter configuration from the provided io.Reader.
//
// The function expects YAML-formatted configuration data. Unset values are
// replaced with format.Defaults and negative values are rejected. An empty
// document yields the default configuration.
//
// Example:
//
//	yamlData := `
//	indent_size: 2
//	split_statements: true
//	`
//
//	cfg, err := config.LoadConfig(strings.NewReader(yamlData))
//	if err != nil {
//		panic(err)
//	}
//
//	fmt.Printf("Indent size: %d\n", cfg.IndentSize)
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "failed to unmarshal sqlfmt config")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.IndentSize == 0 {
		cfg.IndentSize = format.Defaults.IndentSize
	}
	if cfg.InlineMaxLength == 0 {
		cfg.InlineMaxLength = format.Defaults.InlineMaxLength
	}
	if cfg.Lookahead == 0 {
		cfg.Lookahead = format.Defaults.Lookahead
	}

	return &cfg, nil
}

// LoadConfigFile loads a configuration from the specified file path.
// This is a convenience function that opens the file and calls LoadConfig.
//
// Example:
//
//	cfg, err := config.LoadConfigFile(".sqlfmt.yaml")
//	if err != nil {
//		log.Fatal("Failed to load config:", err)
//	}
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	cfg, err := LoadConfig(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load config: %s", path)
	}

	return cfg, nil
}

// Options returns the formatting options described by the config. A nil
// config yields format.Defaults.
func (c *Config) Options() format.Options {
	if c == nil {
		return format.Defaults
	}

	return format.Options{
		IndentSize:      c.IndentSize,
		InlineMaxLength: c.InlineMaxLength,
		Lookahead:       c.Lookahead,
	}
}

// GetFormatter returns a formatter configured from c. It is safe to call on
// a nil config.
func (c *Config) GetFormatter() *format.Formatter {
	return format.New(c.Options())
}

func (c *Config) validate() error {
	fields := []struct {
		name  string
		value int
	}{
		{"indent_size", c.IndentSize},
		{"inline_max_length", c.InlineMaxLength},
		{"lookahead", c.Lookahead},
	}

	for _, f := range fields {
		if f.value < 0 {
			return errors.Errorf("invalid %s: %d (must not be negative)", f.name, f.value)
		}
	}

	return nil
}
