// Package session implements the connection engine for an MPD daemon: a
// single worker goroutine owns the socket, executes one command at a time,
// and keeps the connection alive while the caller is idle.
package session

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"sync"
	"time"

	"github.com/mpdsh/mpdsh/internal/logging"
	"github.com/mpdsh/mpdsh/internal/protocol"
)

// Defaults applied by Options.withDefaults.
const (
	DefaultKeepalive        = 10 * time.Second
	DefaultHandshakeTimeout = 10 * time.Second
)

// Options configure a session.
type Options struct {
	// Keepalive is how long the worker waits for a caller command before it
	// sends KeepaliveCommand on its own.
	Keepalive time.Duration

	// KeepaliveCommand defaults to "ping".
	KeepaliveCommand string

	HandshakeTimeout time.Duration

	// Password, when set, is sent with the password command after the greeting.
	Password string

	Logger *slog.Logger

	// Trace receives caller commands ("> cmd") and reply lines ("< line").
	// Keepalive traffic is never traced.
	Trace io.Writer

	// OnFatal is called from the worker goroutine when the connection fails.
	// The default prints the error and exits the process.
	OnFatal func(error)
}

func (o Options) withDefaults() Options {
	if o.Keepalive <= 0 {
		o.Keepalive = DefaultKeepalive
	}
	if o.KeepaliveCommand == "" {
		o.KeepaliveCommand = protocol.CmdPing
	}
	if o.HandshakeTimeout <= 0 {
		o.HandshakeTimeout = DefaultHandshakeTimeout
	}
	if o.Logger == nil {
		o.Logger = logging.Discard()
	}
	if o.OnFatal == nil {
		o.OnFatal = exitOnFatal
	}
	return o
}

func exitOnFatal(err error) {
	fmt.Fprintf(os.Stderr, "\nconnection lost: %v\n", err)
	os.Exit(1)
}

// Session is a live, handshake-validated connection to a daemon.
type Session struct {
	// mu keeps at most one command outstanding when callers share a session.
	mu      sync.Mutex
	w       *worker
	version string
}

// Dial connects to a daemon and performs the handshake.
func Dial(ctx context.Context, network, addr string, opts Options) (*Session, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, network, addr)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", addr, err)
	}

	s, err := New(conn, opts)
	if err != nil {
		conn.Close()
		return nil, err
	}
	return s, nil
}

// New takes ownership of an established connection, validates the greeting
// and starts the worker.
func New(conn net.Conn, opts Options) (*Session, error) {
	opts = opts.withDefaults()

	rd := protocol.NewReader(conn)
	if err := conn.SetReadDeadline(time.Now().Add(opts.HandshakeTimeout)); err != nil {
		return nil, &HandshakeError{Addr: remoteAddr(conn), Err: err}
	}
	version, err := rd.ReadGreeting()
	if err != nil {
		return nil, &HandshakeError{Addr: remoteAddr(conn), Err: err}
	}
	if err := conn.SetReadDeadline(time.Time{}); err != nil {
		return nil, &HandshakeError{Addr: remoteAddr(conn), Err: err}
	}

	opts.Logger.Info("connected", "addr", remoteAddr(conn), "version", version)

	s := &Session{
		w:       newWorker(conn, rd, opts),
		version: version,
	}
	go s.w.run()

	if opts.Password != "" {
		if _, err := s.Execute(protocol.Command(protocol.CmdPassword, opts.Password)); err != nil {
			s.Close()
			return nil, &AuthError{Err: err}
		}
	}
	return s, nil
}

// Version returns the protocol version announced by the daemon.
func (s *Session) Version() string {
	return s.version
}

// Execute sends one command line and waits for its reply. A daemon rejection
// is returned as a *protocol.AckError. When the worker has stopped, the
// error is an AckError with code protocol.AckTransport.
//
// Executing "quit" returns an empty reply at once and ends the session.
func (s *Session) Execute(cmd string) (*protocol.Reply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	select {
	case s.w.cmds <- cmd:
	case <-s.w.done:
		return nil, protocol.NewTransportError()
	}

	res, ok := <-s.w.replies
	if !ok {
		return nil, protocol.NewTransportError()
	}
	return res.reply, res.err
}

// Close sends quit and waits for the worker to stop. Closing a session whose
// worker already stopped is a no-op.
func (s *Session) Close() error {
	_, err := s.Execute(protocol.CmdQuit)
	<-s.w.done
	if protocol.IsTransport(err) {
		return nil
	}
	return err
}

// Done is closed when the worker has stopped.
func (s *Session) Done() <-chan struct{} {
	return s.w.done
}

func remoteAddr(conn net.Conn) string {
	if a := conn.RemoteAddr(); a != nil {
		return a.String()
	}
	return ""
}
