package consts

import "os"

const (
	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// ConfigFile is the default configuration file name, looked up in the
	// working directory
	ConfigFile = ".sqlfmt.yaml"

	// ConfigFileEnv names the environment variable that overrides ConfigFile
	ConfigFileEnv = "SQLFMT_CONFIG"

	// SQLExtension is the extension of files picked up when formatting a
	// directory
	SQLExtension = ".sql"
)
