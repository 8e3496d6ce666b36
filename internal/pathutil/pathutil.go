// Package pathutil provides path manipulation utilities.
//
// Local paths (configuration and log files) follow the host filesystem rules.
// Remote paths name objects in the daemon's music database: they are slash
// separated, relative to the database root, and never carry a leading slash.
package pathutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalPath resolves a host filesystem path given in a config file, such as
// log_file. Unlike remote paths it may be absolute. "~" and "~/..." refer to
// the user's home directory; other relative paths are taken from baseDir,
// the directory holding the config file.
func LocalPath(p, baseDir string) (string, error) {
	switch {
	case p == "":
		return "", errors.New("path cannot be empty")
	case p == "~" || strings.HasPrefix(p, "~/"):
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand home dir: %w", err)
		}
		return filepath.Join(home, strings.TrimPrefix(p[1:], "/")), nil
	case filepath.IsAbs(p):
		return p, nil
	default:
		return filepath.Join(baseDir, p), nil
	}
}
