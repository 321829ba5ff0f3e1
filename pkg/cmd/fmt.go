package cmd

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/pseudomuto/sqlfmt/pkg/compare"
	"github.com/pseudomuto/sqlfmt/pkg/config"
	"github.com/pseudomuto/sqlfmt/pkg/consts"
	"github.com/pseudomuto/sqlfmt/pkg/format"
)

const stdinName = "<standard input>"

type (
	// fmtOptions holds the parsed flags of the fmt command.
	fmtOptions struct {
		write bool
		list  bool
		diff  bool
		split bool
		jobs  int
		color bool
	}

	// fmtResult is the outcome of formatting one input.
	fmtResult struct {
		path      string
		original  string
		formatted string
	}
)

func (r *fmtResult) changed() bool {
	return r.original != r.formatted
}

// fmtCmd creates a CLI command for formatting SQL files. It behaves like
// gofmt: formatted SQL goes to stdout unless -w, -l or -d select another
// output.
//
// The formatter comes from the loaded config unless --config names another
// file on the command line.
//
// Path handling:
//   - File paths: Format the specified SQL file directly
//   - Directory paths: Recursively find and format all .sql files
//   - No path or "-": Format standard input
//
// Flags:
//   - -w: Write formatted results back to source files instead of stdout
//   - -l: List files whose formatting differs
//   - -d: Print a unified diff of the changes
//   - -s: Format every statement separately
//   - -j: Number of files formatted concurrently
//
// Examples:
//
//	# Format a query from stdin
//	echo "select a from t" | sqlfmt fmt
//
//	# Format all SQL files in directory tree in-place
//	sqlfmt fmt -w queries/
//
//	# Show what would change
//	sqlfmt fmt -d queries/report.sql
func fmtCmd(cfg *config.Config, formatter *format.Formatter) *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Usage:     "Format SQL files",
		ArgsUsage: "[path ...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "Write result to source files instead of stdout",
			},
			&cli.BoolFlag{
				Name:    "list",
				Aliases: []string{"l"},
				Usage:   "List files whose formatting differs",
			},
			&cli.BoolFlag{
				Name:    "diff",
				Aliases: []string{"d"},
				Usage:   "Display diffs instead of rewriting files",
			},
			&cli.BoolFlag{
				Name:    "split",
				Aliases: []string{"s"},
				Usage:   "Format each statement separately",
			},
			&cli.IntFlag{
				Name:        "jobs",
				Aliases:     []string{"j"},
				Usage:       "Number of files to format concurrently",
				Value:       runtime.NumCPU(),
				DefaultText: "number of CPUs",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			conf, formatter, err := commandConfig(cmd, cfg, formatter)
			if err != nil {
				return err
			}

			w := outputWriter(cmd)
			opts := fmtOptions{
				write: cmd.Bool("write"),
				list:  cmd.Bool("list"),
				diff:  cmd.Bool("diff"),
				split: cmd.Bool("split") || (conf != nil && conf.SplitStatements),
				jobs:  cmd.Int("jobs"),
				color: isTerminal(w),
			}

			paths := cmd.Args().Slice()
			if len(paths) == 0 || (len(paths) == 1 && paths[0] == "-") {
				if opts.write {
					return errors.New("cannot use --write with standard input")
				}

				r, err := inputReader(cmd)
				if err != nil {
					return err
				}

				res, err := formatReader(r, formatter, opts)
				if err != nil {
					return err
				}

				return report(w, []*fmtResult{res}, opts)
			}

			files, err := collectFiles(paths)
			if err != nil {
				return err
			}

			results, err := formatFiles(ctx, files, formatter, opts)
			if err != nil {
				return err
			}

			return report(w, results, opts)
		},
	}
}

// commandConfig returns the config named by an explicit --config flag along
// with a formatter built from it. Without the flag cfg and formatter are
// used, building the formatter from cfg when none was provided.
func commandConfig(cmd *cli.Command, cfg *config.Config, formatter *format.Formatter) (*config.Config, *format.Formatter, error) {
	if cmd.IsSet("config") {
		conf, err := config.LoadConfigFile(cmd.String("config"))
		if err != nil {
			return nil, nil, err
		}

		return conf, conf.GetFormatter(), nil
	}

	if formatter == nil {
		formatter = cfg.GetFormatter()
	}

	return cfg, formatter, nil
}

// collectFiles expands the given paths into a list of SQL files. Files are
// kept as given, directories are searched recursively.
func collectFiles(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to access path: %s", path)
		}

		if !info.IsDir() {
			files = append(files, path)
			continue
		}

		sqlFiles, err := sqlFilesIn(path)
		if err != nil {
			return nil, err
		}
		files = append(files, sqlFiles...)
	}

	return files, nil
}

// sqlFilesIn recursively walks through a directory and returns all .sql files
// in lexicographical order.
func sqlFilesIn(dir string) ([]string, error) {
	var sqlFiles []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.EqualFold(filepath.Ext(d.Name()), consts.SQLExtension) {
			sqlFiles = append(sqlFiles, path)
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to walk directory: %s", dir)
	}

	if len(sqlFiles) == 0 {
		return nil, errors.Errorf("no SQL files found in directory: %s", dir)
	}

	return sqlFiles, nil
}

// formatFiles formats files concurrently, writing changed files back when
// requested. Results are returned in the order of files.
func formatFiles(ctx context.Context, files []string, formatter *format.Formatter, opts fmtOptions) ([]*fmtResult, error) {
	jobs := opts.jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	results := make([]*fmtResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, max(len(files), 1)))

	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			res, err := formatFile(path, formatter, opts)
			if err != nil {
				return errors.Wrapf(err, "failed to format file: %s", path)
			}

			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// formatFile formats a single SQL file and writes it back when the content
// changed and write mode is on. The file keeps its permissions, and is never
// written when the formatted text lexes to different tokens.
func formatFile(path string, formatter *format.Formatter, opts fmtOptions) (*fmtResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to access path: %s", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read file: %s", path)
	}

	formatted, err := formatSource(formatter, string(content), opts.split)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to split statements in file: %s", path)
	}

	res := &fmtResult{path: path, original: string(content), formatted: formatted}
	slog.Debug("Formatted file", "path", path, "changed", res.changed())

	if opts.write && res.changed() {
		if err := compare.Equivalent(res.original, res.formatted); err != nil {
			return nil, errors.Wrapf(err, "refusing to write %s, formatting changed its tokens", path)
		}

		if err := os.WriteFile(path, []byte(formatted), info.Mode().Perm()); err != nil {
			return nil, errors.Wrapf(err, "failed to write formatted content to file: %s", path)
		}
	}

	return res, nil
}

func formatReader(r io.Reader, formatter *format.Formatter, opts fmtOptions) (*fmtResult, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read standard input")
	}

	formatted, err := formatSource(formatter, string(content), opts.split)
	if err != nil {
		return nil, errors.Wrap(err, "failed to split statements in standard input")
	}

	return &fmtResult{path: stdinName, original: string(content), formatted: formatted}, nil
}

func formatSource(formatter *format.Formatter, sql string, split bool) (string, error) {
	if split {
		return formatter.Script(sql)
	}

	return formatter.Format(sql), nil
}

// report prints results according to the output flags. Without -l, -d or -w
// the formatted SQL of every input is printed.
func report(w io.Writer, results []*fmtResult, opts fmtOptions) error {
	for _, res := range results {
		if opts.list && res.changed() {
			if _, err := fmt.Fprintln(w, res.path); err != nil {
				return errors.Wrap(err, "failed to write formatted content to output")
			}
		}

		if opts.diff && res.changed() {
			if err := writeDiff(w, res, opts.color); err != nil {
				return err
			}
		}

		if opts.list || opts.diff || opts.write {
			continue
		}

		if _, err := fmt.Fprint(w, res.formatted); err != nil {
			return errors.Wrap(err, "failed to write formatted content to output")
		}
	}

	return nil
}
