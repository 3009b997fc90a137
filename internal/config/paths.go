package config

import (
	"os"
	"path/filepath"
)

// Environment overrides for the data directory and database path. Mainly
// useful for tests and sandboxed CI runs.
const (
	EnvGorelHome = "GOREL_HOME"
	EnvGorelDB   = "GOREL_DB"
)

// DataDir returns the directory used to store gorel data.
func DataDir() (string, error) {
	if d := os.Getenv(EnvGorelHome); d != "" {
		return d, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	// Use a dot-directory in the user's home on all platforms
	return filepath.Join(home, ".gorel"), nil
}

// EnsureDataDir returns the data directory, creating it if needed.
func EnsureDataDir() (string, error) {
	d, err := DataDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(d, 0o755); err != nil {
		return "", err
	}
	return d, nil
}

// DBPath returns the full path to the SQLite database file.
func DBPath() (string, error) {
	if p := os.Getenv(EnvGorelDB); p != "" {
		return p, nil
	}
	d, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, "gorel.db"), nil
}
