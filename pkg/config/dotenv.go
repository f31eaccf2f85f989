package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// DefaultDotEnvPaths are searched by LoadDotEnv when no paths are given.
var DefaultDotEnvPaths = []string{".env", "../.env"}

// LoadDotEnv loads the first existing file among paths into the process
// environment and returns its path. Variables already set in the
// environment are never overwritten. A missing file is not an error; the
// returned path is empty in that case.
func LoadDotEnv(paths ...string) (string, error) {
	if len(paths) == 0 {
		paths = DefaultDotEnvPaths
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return "", fmt.Errorf("stat %s: %w", path, err)
		}
		if err := godotenv.Load(path); err != nil {
			return "", fmt.Errorf("load %s: %w", path, err)
		}
		return path, nil
	}
	return "", nil
}
