package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mpdsh/mpdsh/internal/config"
	"github.com/mpdsh/mpdsh/internal/logging"
	"github.com/mpdsh/mpdsh/internal/session"
)

// stdin is the input source for prompts and the shell. Can be replaced for testing.
var stdin = bufio.NewReader(os.Stdin)

// getenv is replaced in tests.
var getenv = os.Getenv

// promptLine prompts the user for input and returns the trimmed response.
// If defaultVal is provided, it's shown in brackets and returned if input is empty.
func promptLine(label, defaultVal string) (string, error) {
	if defaultVal != "" {
		fmt.Printf("%s [%s]: ", label, defaultVal)
	} else {
		fmt.Printf("%s: ", label)
	}
	input, err := stdin.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && input != "") {
		return "", err
	}
	input = strings.TrimSpace(input)
	if input == "" {
		return defaultVal, nil
	}
	return input, nil
}

// promptConfirm prompts the user for a yes/no confirmation.
// Returns true only if user enters "y" or "Y".
func promptConfirm(message string) bool {
	fmt.Printf("%s (y/N): ", message)
	input, err := stdin.ReadString('\n')
	if err != nil && input == "" {
		return false
	}
	input = strings.TrimSpace(input)
	return input == "y" || input == "Y"
}

func getPaths() (*config.Paths, error) {
	paths, err := config.GetPaths()
	if err != nil {
		return nil, fmt.Errorf("get paths: %w", err)
	}
	return paths, nil
}

// configPath returns the config file named by --config or the default one.
func configPath(g *Globals) (string, error) {
	if g.Config != "" {
		return g.Config, nil
	}
	paths, err := getPaths()
	if err != nil {
		return "", err
	}
	return paths.Config, nil
}

// loadSettings merges flags, environment and the config file.
func loadSettings(g *Globals) (*config.Settings, error) {
	path, err := configPath(g)
	if err != nil {
		return nil, err
	}
	file, err := config.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return config.Resolve(file, getenv, config.Overrides{
		Host:      g.Host,
		Port:      g.Port,
		Password:  g.Password,
		Keepalive: g.Keepalive,
		Protolog:  g.Protolog,
	})
}

// openLog opens the rotating log file. The returned closer must be called
// when the command finishes.
func openLog(s *config.Settings) (*slog.Logger, io.Closer, error) {
	path := s.LogFile
	if path == "" {
		paths, err := getPaths()
		if err != nil {
			return nil, nil, err
		}
		if err := paths.EnsureDirectories(); err != nil {
			return nil, nil, fmt.Errorf("create directories: %w", err)
		}
		path = paths.Log
	}

	w := logging.NewRotatingWriter(logging.DefaultConfig(path))
	return logging.NewLogger(w, s.Protolog), w, nil
}

// connect dials the configured daemon and maps failures to exit codes.
func connect(ctx context.Context, s *config.Settings, logger *slog.Logger) (*session.Session, error) {
	opts := session.Options{
		Keepalive: s.Keepalive,
		Password:  s.Password,
		Logger:    logger,
	}
	if s.Protolog {
		opts.Trace = os.Stderr
	}

	sess, err := session.Dial(ctx, s.Network(), s.Address(), opts)
	if err != nil {
		var authErr *session.AuthError
		switch {
		case session.IsHandshakeError(err):
			return nil, errHandshake(err)
		case errors.As(err, &authErr):
			return nil, errAuth(authErr.Err)
		default:
			return nil, errConnectFailed(s.Address(), err)
		}
	}
	return sess, nil
}
