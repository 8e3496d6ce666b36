package main

import (
	"context"
	"time"

	"github.com/mpdsh/mpdsh/internal/session"
	"github.com/mpdsh/mpdsh/internal/shell"
	"github.com/posener/complete"
)

// completionTimeout bounds the connection made while completing, so a
// missing daemon never stalls the user's shell.
const completionTimeout = 2 * time.Second

// remotePathPredictor implements complete.Predictor for 'cmd' words. It
// completes shell command names and, for browsing commands, paths in the
// daemon's music directory.
type remotePathPredictor struct {
	// executor opens a session; replaced in tests.
	executor func(ctx context.Context) (shell.Executor, func(), error)
}

func newRemotePathPredictor() complete.Predictor {
	return &remotePathPredictor{executor: dialForCompletion}
}

// Predict implements complete.Predictor interface.
func (p *remotePathPredictor) Predict(args complete.Args) []string {
	// Note: complete.Predictor does not provide a context, so the dial is
	// bounded by completionTimeout instead.
	ctx, cancel := context.WithTimeout(context.Background(), completionTimeout)
	defer cancel()

	if len(args.Completed) == 0 {
		return shell.New(nil).Complete(nil, args.Last)
	}

	exec, done, err := p.executor(ctx)
	if err != nil {
		return nil
	}
	defer done()

	return shell.New(exec).Complete(args.Completed, args.Last)
}

// dialForCompletion connects with the settings from the environment and
// config file. Flags on the command line being completed are not parsed yet.
func dialForCompletion(ctx context.Context) (shell.Executor, func(), error) {
	s, err := loadSettings(&Globals{})
	if err != nil {
		return nil, nil, err
	}

	sess, err := session.Dial(ctx, s.Network(), s.Address(), session.Options{
		Keepalive:        s.Keepalive,
		HandshakeTimeout: completionTimeout,
		Password:         s.Password,
		// never exit the completing process
		OnFatal: func(error) {},
	})
	if err != nil {
		return nil, nil, err
	}
	return sess, func() { sess.Close() }, nil
}
