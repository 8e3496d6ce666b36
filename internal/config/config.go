// Package config handles mpdsh paths and connection settings.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// Connection defaults, used when neither flags, environment nor the config
// file name a value.
const (
	DefaultHost      = "localhost"
	DefaultPort      = 6600
	DefaultKeepalive = 10 * time.Second
)

// Paths holds common paths used by mpdsh.
type Paths struct {
	Home   string
	Config string
	Logs   string
	Log    string
}

// GetPaths returns the paths for the current user.
func GetPaths() (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	mpdshHome := filepath.Join(home, ".mpdsh")
	logsDir := filepath.Join(mpdshHome, "logs")
	return &Paths{
		Home:   mpdshHome,
		Config: filepath.Join(mpdshHome, "config.yaml"),
		Logs:   logsDir,
		Log:    filepath.Join(logsDir, "mpdsh.log"),
	}, nil
}

// EnsureDirectories creates the required directories if they don't exist.
func (p *Paths) EnsureDirectories() error {
	dirs := []string{p.Home, p.Logs}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}
