package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"github.com/mpdsh/mpdsh/internal/config"
)

type LogsCmd struct {
	Follow bool `short:"f" help:"Follow the session log as it grows (tail -f)"`
	Lines  int  `short:"n" default:"10" help:"Number of trailing lines to show"`
}

func (c *LogsCmd) Run(g *Globals) error {
	s, err := loadSettings(g)
	if err != nil {
		return err
	}
	path, err := sessionLogPath(s)
	if err != nil {
		return err
	}

	tail, err := exec.LookPath("tail")
	if err != nil {
		return fmt.Errorf("tail command not found in PATH (install coreutils or similar)")
	}

	// Replace current process with tail
	return syscall.Exec(tail, c.tailArgs(path), os.Environ())
}

func (c *LogsCmd) tailArgs(path string) []string {
	args := []string{"tail", "-n", fmt.Sprint(c.Lines)}
	if c.Follow {
		args = append(args, "-f")
	}
	return append(args, path)
}

// sessionLogPath returns the log file written by shell sessions and checks
// that it exists.
func sessionLogPath(s *config.Settings) (string, error) {
	path := s.LogFile
	if path == "" {
		paths, err := getPaths()
		if err != nil {
			return "", err
		}
		path = paths.Log
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("log file not found: %s\nHint: it is created the first time mpdsh connects", path)
	}
	return path, nil
}
