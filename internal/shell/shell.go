// Package shell implements the interactive command layer on top of a
// session: argument handling, browsing with a current directory, queue and
// playback commands, and remote path completion.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/mpdsh/mpdsh/internal/pathutil"
	"github.com/mpdsh/mpdsh/internal/protocol"
	"github.com/mpdsh/mpdsh/internal/ui"
)

// Executor runs one command line against the daemon.
// *session.Session satisfies it.
type Executor interface {
	Execute(cmd string) (*protocol.Reply, error)
}

// Shell tracks the current remote directory and dispatches command lines.
type Shell struct {
	exec   Executor
	cwd    string // canonical, "" is the root
	failed bool   // a command was rejected by the daemon
}

// New returns a shell positioned at the root of the music directory.
func New(exec Executor) *Shell {
	return &Shell{exec: exec}
}

// Cwd returns the current directory as displayed to the user.
func (s *Shell) Cwd() string {
	return pathutil.Display(s.cwd)
}

// Failed reports whether the daemon rejected any command so far.
func (s *Shell) Failed() bool {
	return s.failed
}

// Prompt returns the interactive prompt.
func (s *Shell) Prompt() string {
	return fmt.Sprintf("mpdsh:%s> ", s.Cwd())
}

// call is one parsed command line.
type call struct {
	cmd  Command
	name string   // as typed
	args []string // positional arguments
	opts []string // tokens starting with "-"
	raw  []string // every word after the name, before any comment
}

func (c call) hasOpt(opt string) bool {
	for _, o := range c.opts {
		if o == opt {
			return true
		}
	}
	return false
}

func (c call) arg(i int) (string, bool) {
	if i < len(c.args) {
		return c.args[i], true
	}
	return "", false
}

// parseCall splits words into a call. A word starting with "#" ends the
// argument list.
func parseCall(words []string) (call, bool) {
	var c call
	for i, w := range words {
		if strings.HasPrefix(w, "#") {
			break
		}
		if i == 0 {
			c.name = w
			c.cmd, _ = Lookup(w)
			continue
		}
		c.raw = append(c.raw, w)
		if strings.HasPrefix(w, "-") {
			c.opts = append(c.opts, w)
		} else {
			c.args = append(c.args, w)
		}
	}
	return c, c.name != ""
}

// RunLine tokenizes and executes one command line. It reports whether the
// session was ended with quit. The returned error is non-nil only when the
// session is no longer usable.
func (s *Shell) RunLine(line string) (bool, error) {
	words, err := shellquote.Split(line)
	if err != nil {
		ui.PrintError(fmt.Sprintf("parse error.. (%v)", err))
		return false, nil
	}
	return s.Exec(words)
}

// Exec executes an already tokenized command line.
func (s *Shell) Exec(words []string) (bool, error) {
	c, ok := parseCall(words)
	if !ok {
		return false, nil
	}

	var err error
	switch c.cmd {
	case CmdCd:
		err = s.cd(c)
	case CmdLs:
		err = s.ls(c)
	case CmdAdd:
		err = s.add(c, false)
	case CmdAddTop:
		err = s.add(c, true)
	case CmdPl:
		err = s.playlist(c)
	case CmdAddURI:
		err = s.withArgs(c, protocol.CmdAddID, 2)
	case CmdDel:
		err = s.withArgs(c, "delete", 1)
	case CmdClr:
		err = s.withArgs(c, "clear", 0)
	case CmdMove:
		err = s.withArgs(c, "move", 2)
	case CmdPlay:
		err = s.withArgs(c, "play", 1)
	case CmdStop:
		err = s.withArgs(c, "stop", 0)
	case CmdPause:
		err = s.withArgs(c, "pause 1", 0)
	case CmdResume:
		err = s.withArgs(c, "pause 0", 0)
	case CmdPrev:
		err = s.withArgs(c, "previous", 0)
	case CmdNext:
		err = s.withArgs(c, "next", 0)
	case CmdRandom:
		err = s.toggle(c, "random", "random")
	case CmdRepeat:
		err = s.toggle(c, "repeat", "repeat")
	case CmdSingle:
		err = s.toggle(c, "single", "single")
	case CmdVolume:
		err = s.toggle(c, "setvol", "volume")
	case CmdStatus:
		err = s.status()
	case CmdUpdate:
		err = s.withArgs(c, "update", 1)
	case CmdCmd:
		err = s.raw(c)
	case CmdHelp:
		s.help(c)
	case CmdQuit:
		_, err = s.exec.Execute(protocol.CmdQuit)
		return true, s.check(err)
	default:
		ui.PrintWarning("unknown.. (use help command)")
	}
	return false, err
}

// Run reads command lines from in until quit or end of input. When
// interactive is set a prompt is printed before each line. End of input
// quits the session.
func (s *Shell) Run(in io.Reader, interactive bool) error {
	sc := bufio.NewScanner(in)
	for {
		if interactive {
			fmt.Fprint(ui.Output, s.Prompt())
		}
		if !sc.Scan() {
			break
		}
		quit, err := s.RunLine(sc.Text())
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if interactive {
		ui.Blank()
	}
	_, err := s.exec.Execute(protocol.CmdQuit)
	return s.check(err)
}

// ErrSessionClosed is returned once the connection to the daemon is gone.
var ErrSessionClosed = errors.New("session closed")

// check prints a daemon rejection and swallows it. A dead session is
// reported as ErrSessionClosed.
func (s *Shell) check(err error) error {
	if err == nil {
		return nil
	}
	if protocol.IsTransport(err) {
		return ErrSessionClosed
	}
	var ack *protocol.AckError
	if errors.As(err, &ack) {
		s.failed = true
		ui.PrintAck(ack)
		return nil
	}
	return err
}
