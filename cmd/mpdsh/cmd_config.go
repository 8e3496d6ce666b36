package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/mpdsh/mpdsh/internal/config"
	"github.com/mpdsh/mpdsh/internal/editor"
	"github.com/mpdsh/mpdsh/internal/ui"
)

type ConfigCmd struct {
	Show ConfigShowCmd `cmd:"" default:"1" help:"Show the effective connection settings"`
	Init ConfigInitCmd `cmd:"" help:"Create the config file interactively"`
	Edit ConfigEditCmd `cmd:"" help:"Open the config file in $EDITOR"`
}

type ConfigShowCmd struct{}

func (c *ConfigShowCmd) Run(g *Globals) error {
	path, err := configPath(g)
	if err != nil {
		return err
	}
	s, err := loadSettings(g)
	if err != nil {
		return err
	}

	logFile := s.LogFile
	if logFile == "" {
		paths, err := getPaths()
		if err != nil {
			return err
		}
		logFile = paths.Log
	}

	password := ui.Dim("(none)")
	if s.Password != "" {
		password = "(set)"
	}

	ui.Blank()
	ui.PrintKV("Config", path)
	ui.PrintKV("Daemon", s.Endpoint.String())
	ui.PrintKV("Password", password)
	ui.PrintKV("Keepalive", s.Keepalive.String())
	ui.PrintKV("Protolog", strconv.FormatBool(s.Protolog))
	ui.PrintKV("Log", logFile)
	ui.Blank()
	return nil
}

type ConfigInitCmd struct {
	Force bool `short:"f" help:"Overwrite an existing config file without asking"`
}

func (c *ConfigInitCmd) Run(g *Globals) error {
	path, err := configPath(g)
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil && !c.Force {
		if !promptConfirm(fmt.Sprintf("%s exists. Overwrite?", path)) {
			ui.PrintInfo("Cancelled.")
			return nil
		}
	}

	f, err := collectConfigInputs()
	if err != nil {
		return err
	}
	if err := f.Save(path); err != nil {
		return err
	}

	ui.PrintSuccess(fmt.Sprintf("Saved %s", path))
	return nil
}

// collectConfigInputs prompts for connection settings. Values equal to the
// defaults are left out of the file.
func collectConfigInputs() (*config.File, error) {
	host, err := promptLine("Host", config.DefaultHost)
	if err != nil {
		return nil, err
	}
	portStr, err := promptLine("Port", strconv.Itoa(config.DefaultPort))
	if err != nil {
		return nil, err
	}
	keepaliveStr, err := promptLine("Keepalive", config.DefaultKeepalive.String())
	if err != nil {
		return nil, err
	}

	f := &config.File{}
	if host != config.DefaultHost {
		f.Host = host
	}

	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 || port > 65535 {
		return nil, fmt.Errorf("invalid port %q", portStr)
	}
	if port != config.DefaultPort {
		f.Port = port
	}

	keepalive, err := time.ParseDuration(keepaliveStr)
	if err != nil || keepalive <= 0 {
		return nil, fmt.Errorf("invalid keepalive %q", keepaliveStr)
	}
	if keepalive != config.DefaultKeepalive {
		f.Keepalive = keepalive.String()
	}
	return f, nil
}

type ConfigEditCmd struct{}

func (c *ConfigEditCmd) Run(g *Globals) error {
	path, err := configPath(g)
	if err != nil {
		return err
	}

	// Create an empty file so the editor has something to open
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := (&config.File{}).Save(path); err != nil {
			return err
		}
	}

	ed, err := editor.Find(getenv)
	if err != nil {
		return err
	}
	if err := editor.Open(ed, path); err != nil {
		return err
	}

	// Validate what was saved
	if _, err := loadSettings(g); err != nil {
		return fmt.Errorf("%s is invalid: %w", path, err)
	}
	ui.PrintSuccess(fmt.Sprintf("Saved %s", path))
	return nil
}
