// Package cmd provides CLI commands for the sqlfmt tool.
//
// # Available Commands
//
// The cmd package currently provides:
//   - fmt: Format SQL files, directories or standard input
//   - tokens: Print the token stream of a SQL file for debugging
//
// # Command Structure
//
// Each command is implemented as a separate function that returns a
// *cli.Command, following the urfave/cli/v3 pattern. Commands are collected
// through the fx "commands" value group and mounted under the root command
// built by Run.
//
// # Global Options
//
// All commands support global flags:
//   - --config, -c: Config file (defaults to .sqlfmt.yaml, env SQLFMT_CONFIG)
//   - --verbose: Enable debug logging
//   - --help, -h: Display command help
//   - --version: Display version information
//
// # Example Usage
//
//	sqlfmt fmt query.sql               # Print formatted SQL
//	sqlfmt fmt -w queries/             # Rewrite every .sql file in place
//	sqlfmt fmt -l -j 8 queries/        # List files that need formatting
//	sqlfmt fmt -d query.sql            # Show a unified diff
//	cat query.sql | sqlfmt fmt -s      # Format each statement of stdin
//	sqlfmt tokens query.sql            # Dump the tokens
package cmd
