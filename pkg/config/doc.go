// Package config loads formatter settings from a YAML file.
//
// The file is named .sqlfmt.yaml by default and is looked up in the working
// directory. The SQLFMT_CONFIG environment variable or the --config flag
// point the CLI at another file.
//
//	# .sqlfmt.yaml
//	indent_size: 4
//	inline_max_length: 30
//	lookahead: 250
//	split_statements: false
//
// Module wires the loaded *Config and a *format.Formatter built from it into
// an fx application.
package config
