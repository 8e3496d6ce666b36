package main

import (
	"context"
	"errors"

	"github.com/mpdsh/mpdsh/internal/shell"
)

type CmdCmd struct {
	Words []string `arg:"" passthrough:"" predictor:"remote-path" help:"Shell command and its arguments, e.g. 'ls -l Music'"`
}

func (c *CmdCmd) Run(g *Globals) error {
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

	sh := shell.New(sess)
	if _, err := sh.Exec(c.Words); err != nil {
		if errors.Is(err, shell.ErrSessionClosed) {
			return errConnectionLost()
		}
		return err
	}
	if sh.Failed() {
		return errCommandFailed()
	}
	return nil
}
