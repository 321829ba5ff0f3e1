package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/pseudomuto/sqlfmt/pkg/cmd/testutil"
	"github.com/pseudomuto/sqlfmt/pkg/config"
	"github.com/pseudomuto/sqlfmt/pkg/consts"
	"github.com/pseudomuto/sqlfmt/pkg/format"
)

const (
	unformattedSQL = "select a from t;"
	formattedSQL   = "select\n    a\nfrom\n    t;\n"
)

// runFmt runs the fmt command as the root of a test application.
func runFmt(t *testing.T, cfg *config.Config, stdin string, args ...string) (string, error) {
	t.Helper()

	command := fmtCmd(cfg, nil)

	var buf bytes.Buffer
	app := &cli.Command{
		Name:   "test",
		Flags:  command.Flags,
		Action: command.Action,
		Reader: strings.NewReader(stdin),
		Writer: &buf,
	}

	err := app.Run(context.Background(), append([]string{"test"}, args...))
	return buf.String(), err
}

func TestFmtCommand_Stdin(t *testing.T) {
	output, err := runFmt(t, nil, unformattedSQL)
	require.NoError(t, err)
	require.Equal(t, formattedSQL, output)

	output, err = runFmt(t, nil, unformattedSQL, "-")
	require.NoError(t, err)
	require.Equal(t, formattedSQL, output)
}

func TestFmtCommand_StdinWriteBack(t *testing.T) {
	_, err := runFmt(t, nil, unformattedSQL, "-w")
	require.Error(t, err)
	require.Contains(t, err.Error(), "cannot use --write with standard input")
}

func TestFmtCommand_SingleFile(t *testing.T) {
	dir := testutil.SQLDir(t, map[string]string{"test.sql": unformattedSQL})

	output, err := runFmt(t, nil, "", filepath.Join(dir, "test.sql"))
	require.NoError(t, err)
	require.Equal(t, formattedSQL, output)

	// Without -w the file is left alone
	testutil.RequireFileContent(t, filepath.Join(dir, "test.sql"), unformattedSQL)
}

func TestFmtCommand_SingleFileWriteBack(t *testing.T) {
	dir := testutil.SQLDir(t, map[string]string{"test.sql": unformattedSQL})
	sqlFile := filepath.Join(dir, "test.sql")
	require.NoError(t, os.Chmod(sqlFile, 0o600))

	output, err := runFmt(t, nil, "", "-w", sqlFile)
	require.NoError(t, err)
	require.Empty(t, output)

	testutil.RequireFileContent(t, sqlFile, formattedSQL)

	// Permissions are preserved
	info, err := os.Stat(sqlFile)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFmtCommand_Directory(t *testing.T) {
	dir := testutil.SQLDir(t, map[string]string{
		"b.sql":          "select b from t",
		"a.sql":          "select a from t",
		"nested/c.SQL":   "select c from t",
		"nested/readme":  "not sql",
		"nested/doc.txt": "select d from t",
	})

	output, err := runFmt(t, nil, "", "-j", "2", dir)
	require.NoError(t, err)
	require.Equal(t, strings.Join([]string{
		"select\n    a\nfrom\n    t\n",
		"select\n    b\nfrom\n    t\n",
		"select\n    c\nfrom\n    t\n",
	}, ""), output)
}

func TestFmtCommand_DirectoryWriteBack(t *testing.T) {
	dir := testutil.SQLDir(t, map[string]string{
		"schema1.sql":     unformattedSQL,
		"sub/schema2.sql": formattedSQL,
	})

	_, err := runFmt(t, nil, "", "-w", dir)
	require.NoError(t, err)

	testutil.RequireFileContent(t, filepath.Join(dir, "schema1.sql"), formattedSQL)
	testutil.RequireFileContent(t, filepath.Join(dir, "sub", "schema2.sql"), formattedSQL)
}

func TestFmtCommand_WriteBackRefusesTokenChanges(t *testing.T) {
	// Trailing blanks inside a multi-line literal are stripped from the output
	original := "select 'a  \nb' from t"
	dir := testutil.SQLDir(t, map[string]string{"literal.sql": original})
	sqlFile := filepath.Join(dir, "literal.sql")

	_, err := runFmt(t, nil, "", "-w", sqlFile)
	require.Error(t, err)
	require.Contains(t, err.Error(), "refusing to write "+sqlFile)
	require.Contains(t, err.Error(), "token 1 differs")

	testutil.RequireFileContent(t, sqlFile, original)

	// Printing is still allowed
	output, err := runFmt(t, nil, "", sqlFile)
	require.NoError(t, err)
	require.Equal(t, "select\n    'a\nb'\nfrom\n    t\n", output)
}

func TestFmtCommand_MultiplePaths(t *testing.T) {
	dir := testutil.SQLDir(t, map[string]string{
		"one.sql": "select 1",
		"two.sql": "select 2",
	})

	output, err := runFmt(t, nil, "", filepath.Join(dir, "two.sql"), filepath.Join(dir, "one.sql"))
	require.NoError(t, err)
	require.Equal(t, "select\n    2\nselect\n    1\n", output)
}

func TestFmtCommand_List(t *testing.T) {
	dir := testutil.SQLDir(t, map[string]string{
		"clean.sql": formattedSQL,
		"dirty.sql": unformattedSQL,
	})

	output, err := runFmt(t, nil, "", "-l", dir)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "dirty.sql")+"\n", output)
}

func TestFmtCommand_Diff(t *testing.T) {
	dir := testutil.SQLDir(t, map[string]string{"test.sql": "select a from t\n"})
	sqlFile := filepath.Join(dir, "test.sql")

	output, err := runFmt(t, nil, "", "-d", sqlFile)
	require.NoError(t, err)
	require.Contains(t, output, "--- "+sqlFile+".orig\n")
	require.Contains(t, output, "+++ "+sqlFile+"\n")
	require.Contains(t, output, "-select a from t\n")
	require.Contains(t, output, "+select\n")
	require.Contains(t, output, "+    a\n")
	require.NotContains(t, output, "\x1b[")

	// Formatted files produce no diff
	output, err = runFmt(t, nil, "select\n    a\nfrom\n    t\n", "-d")
	require.NoError(t, err)
	require.Empty(t, output)
}

func TestFmtCommand_Split(t *testing.T) {
	output, err := runFmt(t, nil, "select 1; select 2;\n", "-s")
	require.NoError(t, err)
	require.Equal(t, "select\n    1;\n\nselect\n    2;\n", output)

	cfg, err := config.LoadConfig(strings.NewReader("split_statements: true"))
	require.NoError(t, err)

	output, err = runFmt(t, cfg, "select 1; select 2;\n")
	require.NoError(t, err)
	require.Equal(t, "select\n    1;\n\nselect\n    2;\n", output)
}

func TestFmtCommand_ProvidedFormatter(t *testing.T) {
	command := fmtCmd(nil, format.New(format.Options{IndentSize: 2}))

	output, err := testutil.RunCommandWithInput(context.Background(), t, command, strings.NewReader(unformattedSQL), nil)
	require.NoError(t, err)
	require.Equal(t, "select\n  a\nfrom\n  t;\n", output)
}

func TestFmtCommand_Config(t *testing.T) {
	dir := testutil.SQLDir(t, map[string]string{
		consts.ConfigFile: "indent_size: 2\n",
		"test.sql":        unformattedSQL,
	})

	run := func(args ...string) (string, error) {
		command := fmtCmd(nil, nil)

		var buf bytes.Buffer
		app := &cli.Command{
			Name: "test",
			Flags: append([]cli.Flag{
				&cli.StringFlag{Name: "config", Aliases: []string{"c"}},
			}, command.Flags...),
			Action: command.Action,
			Reader: strings.NewReader(""),
			Writer: &buf,
		}

		err := app.Run(context.Background(), append([]string{"test"}, args...))
		return buf.String(), err
	}

	output, err := run("-c", filepath.Join(dir, consts.ConfigFile), filepath.Join(dir, "test.sql"))
	require.NoError(t, err)
	require.Equal(t, "select\n  a\nfrom\n  t;\n", output)

	_, err = run("-c", filepath.Join(dir, "missing.yaml"), "-")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to open file")
}

func TestFmtCommand_NonexistentPath(t *testing.T) {
	_, err := runFmt(t, nil, "", "/nonexistent/path")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to access path")
}

func TestFmtCommand_EmptyDirectory(t *testing.T) {
	dir := testutil.SQLDir(t, map[string]string{"readme.txt": "Not SQL"})

	_, err := runFmt(t, nil, "", dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), "no SQL files found")
}

func TestFmtCommand_EmptyFile(t *testing.T) {
	dir := testutil.SQLDir(t, map[string]string{"empty.sql": ""})

	output, err := runFmt(t, nil, "", filepath.Join(dir, "empty.sql"))
	require.NoError(t, err)

	// Empty file should produce empty output
	require.Empty(t, strings.TrimSpace(output))
}

func TestFmtCommand_FlagConfiguration(t *testing.T) {
	command := fmtCmd(nil, nil)

	require.Equal(t, "fmt", command.Name)
	require.Equal(t, "Format SQL files", command.Usage)
	require.Equal(t, "[path ...]", command.ArgsUsage)
	require.Len(t, command.Flags, 5)

	expected := map[string]string{
		"write": "w",
		"list":  "l",
		"diff":  "d",
		"split": "s",
		"jobs":  "j",
	}

	for _, flag := range command.Flags {
		names := flag.Names()
		require.Len(t, names, 2)
		require.Equal(t, expected[names[0]], names[1])
	}
}

func TestFmtCommand_Subcommand(t *testing.T) {
	dir := testutil.SQLDir(t, map[string]string{"test.sql": unformattedSQL})

	output, err := testutil.RunCommand(t, fmtCmd(nil, nil), []string{filepath.Join(dir, "test.sql")})
	require.NoError(t, err)
	require.Equal(t, formattedSQL, output)

	output, err = testutil.RunCommandWithInput(context.Background(), t, fmtCmd(nil, nil), strings.NewReader("select 1"), nil)
	require.NoError(t, err)
	require.Equal(t, "select\n    1\n", output)
}

func TestDiffColors(t *testing.T) {
	colors := newDiffColors()

	for _, line := range []string{"+++ a.sql\n", "--- a.sql.orig\n", "@@ -1 +1 @@\n", "+added\n", "-removed\n"} {
		colored := colors.line(line)
		require.Contains(t, colored, "\x1b[")
		require.Contains(t, colored, strings.TrimSuffix(line, "\n"))
		require.True(t, strings.HasSuffix(colored, "\n"))
	}

	require.Equal(t, " context\n", colors.line(" context\n"))

	var buf bytes.Buffer
	res := &fmtResult{path: "a.sql", original: "select a\n", formatted: "select\n    a\n"}
	require.NoError(t, writeDiff(&buf, res, true))
	require.Contains(t, buf.String(), "\x1b[")

	buf.Reset()
	require.NoError(t, writeDiff(&buf, res, false))
	require.NotContains(t, buf.String(), "\x1b[")
}
