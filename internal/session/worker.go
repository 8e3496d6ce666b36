package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"time"

	"github.com/mpdsh/mpdsh/internal/protocol"
)

type result struct {
	reply *protocol.Reply
	err   error // nil or *protocol.AckError
}

// worker owns the connection. All reads and writes happen on its goroutine;
// callers reach it only through cmds and replies.
type worker struct {
	conn net.Conn
	rd   *protocol.Reader
	bw   *bufio.Writer

	cmds    chan string
	replies chan result
	done    chan struct{}

	idle      time.Duration
	keepalive string

	logger  *slog.Logger
	trace   io.Writer
	onFatal func(error)
}

func newWorker(conn net.Conn, rd *protocol.Reader, opts Options) *worker {
	return &worker{
		conn:      conn,
		rd:        rd,
		bw:        bufio.NewWriter(conn),
		cmds:      make(chan string, 1),
		replies:   make(chan result, 1),
		done:      make(chan struct{}),
		idle:      opts.Keepalive,
		keepalive: opts.KeepaliveCommand,
		logger:    opts.Logger,
		trace:     opts.Trace,
		onFatal:   opts.OnFatal,
	}
}

func (w *worker) run() {
	defer close(w.done)
	defer close(w.replies)

	timer := time.NewTimer(w.idle)
	defer timer.Stop()

	for {
		cmd, fromCaller := w.next(timer.C)

		if fromCaller && cmd == protocol.CmdQuit {
			w.replies <- result{reply: &protocol.Reply{}}
			if err := w.write(cmd, true); err != nil {
				w.logger.Warn("write quit", "err", err)
			}
			w.shutdown()
			return
		}

		res, err := w.roundTrip(cmd, fromCaller)
		if err != nil {
			if errors.Is(err, io.EOF) {
				w.logger.Info("connection closed by peer")
				w.shutdown()
				return
			}
			w.fail(err)
			return
		}

		if fromCaller {
			w.replies <- res
		} else if res.err != nil {
			w.logger.Warn("keepalive rejected", "command", cmd, "err", res.err)
		} else {
			w.logger.Debug("keepalive", "command", cmd)
		}

		timer.Reset(w.idle)
	}
}

// next waits for the next command to send. A caller command that is already
// queued when the idle timer fires is served instead of the keepalive.
func (w *worker) next(idle <-chan time.Time) (cmd string, fromCaller bool) {
	select {
	case cmd = <-w.cmds:
		return cmd, true
	case <-idle:
		select {
		case cmd = <-w.cmds:
			return cmd, true
		default:
			return w.keepalive, false
		}
	}
}

// roundTrip writes cmd and reads its complete reply. The returned error is a
// transport condition; a daemon rejection is carried inside the result.
func (w *worker) roundTrip(cmd string, traced bool) (result, error) {
	if err := w.write(cmd, traced); err != nil {
		return result{}, fmt.Errorf("write %q: %w", cmd, err)
	}

	if traced {
		w.rd.Trace = w.trace
	} else {
		w.rd.Trace = nil
	}

	reply, err := w.rd.ReadReply()
	if err != nil {
		var ack *protocol.AckError
		if errors.As(err, &ack) {
			return result{err: ack}, nil
		}
		if errors.Is(err, io.EOF) {
			return result{}, err
		}
		return result{}, fmt.Errorf("read reply to %q: %w", cmd, err)
	}
	return result{reply: reply}, nil
}

func (w *worker) write(cmd string, traced bool) error {
	if traced && w.trace != nil {
		fmt.Fprintf(w.trace, "> %s\n", cmd)
	}
	if _, err := w.bw.WriteString(cmd); err != nil {
		return err
	}
	if err := w.bw.WriteByte('\n'); err != nil {
		return err
	}
	return w.bw.Flush()
}

// fail handles a transport failure. The connection cannot be trusted any
// more, so it is dropped without a graceful shutdown.
func (w *worker) fail(err error) {
	w.logger.Error("session transport failure", "err", err)
	w.conn.Close()
	w.onFatal(err)
}

// shutdown closes both directions of the connection, reporting failures
// without treating them as fatal.
func (w *worker) shutdown() {
	if cw, ok := w.conn.(interface{ CloseWrite() error }); ok {
		if err := cw.CloseWrite(); err != nil {
			w.logger.Warn("shutdown write side", "err", err)
		}
	}
	if err := w.conn.Close(); err != nil {
		w.logger.Warn("close connection", "err", err)
	}
}
