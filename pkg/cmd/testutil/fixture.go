package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pseudomuto/sqlfmt/pkg/consts"
)

// SQLDir creates an isolated temp directory holding the given files, keyed by
// path relative to the directory. Parent directories are created as needed.
func SQLDir(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		WriteFile(t, filepath.Join(dir, name), content)
	}

	return dir
}

// WriteFile writes content to path with the standard file mode.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), consts.ModeDir))
	require.NoError(t, os.WriteFile(path, []byte(content), consts.ModeFile))
}

// RequireFileContent asserts that the file at path holds exactly expected.
func RequireFileContent(t *testing.T, path, expected string) {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err, "Failed to read file: %s", path)
	require.Equal(t, expected, string(content), "Unexpected content in %s", path)
}
