package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/mpdsh/mpdsh/internal/shell"
	"github.com/mpdsh/mpdsh/internal/ui"
)

const dialTimeout = 10 * time.Second

// isInteractive reports whether stdin is a terminal. Replaced in tests.
var isInteractive = func() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

type ShellCmd struct{}

func (c *ShellCmd) Run(g *Globals) error {
	s, err := loadSettings(g)
	if err != nil {
		return err
	}
	logger, logFile, err := openLog(s)
	if err != nil {
		return err
	}
	defer logFile.Close()

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()
	sess, err := connect(ctx, s, logger)
	if err != nil {
		return err
	}
	defer sess.Close()

	interactive := isInteractive()
	if interactive {
		ui.PrintInfo(fmt.Sprintf("Connected to %s (MPD %s)", s.Endpoint, sess.Version()))
		ui.PrintInfo(`Type "help" for a list of commands.`)
	}

	if err := shell.New(sess).Run(stdin, interactive); err != nil {
		if errors.Is(err, shell.ErrSessionClosed) {
			return errConnectionLost()
		}
		return err
	}
	return nil
}
