package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"github.com/pseudomuto/sqlfmt/pkg/lexer"
)

// tokensCmd creates a CLI command that prints the token stream of a SQL file
// or standard input, one token per line. It is meant for debugging the
// keyword tables and layout decisions.
//
// Examples:
//
//	sqlfmt tokens query.sql
//	echo "select a from t" | sqlfmt tokens --all
func tokensCmd() *cli.Command {
	return &cli.Command{
		Name:      "tokens",
		Usage:     "Print the tokens of a SQL file",
		ArgsUsage: "[path]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "all",
				Aliases: []string{"a"},
				Usage:   "Include whitespace tokens",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() > 1 {
				return errors.New("at most one path argument is allowed")
			}

			sql, err := readInput(cmd, cmd.Args().First())
			if err != nil {
				return err
			}

			w := outputWriter(cmd)
			for _, tok := range lexer.Tokenize(sql) {
				if tok.Type == lexer.Whitespace && !cmd.Bool("all") {
					continue
				}

				if _, err := fmt.Fprintf(w, "%4d  %-16s  %q\n", tok.Index, tok.Type, tok.Text); err != nil {
					return errors.Wrap(err, "failed to write tokens to output")
				}
			}

			return nil
		},
	}
}

// readInput returns the contents of path, or of standard input when path is
// empty or "-".
func readInput(cmd *cli.Command, path string) (string, error) {
	if path != "" && path != "-" {
		content, err := os.ReadFile(path)
		if err != nil {
			return "", errors.Wrapf(err, "failed to read file: %s", path)
		}
		return string(content), nil
	}

	r, err := inputReader(cmd)
	if err != nil {
		return "", err
	}

	content, err := io.ReadAll(r)
	if err != nil {
		return "", errors.Wrap(err, "failed to read standard input")
	}
	return string(content), nil
}
