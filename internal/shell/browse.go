package shell

import (
	"strconv"

	"github.com/mpdsh/mpdsh/internal/listing"
	"github.com/mpdsh/mpdsh/internal/pathutil"
	"github.com/mpdsh/mpdsh/internal/protocol"
	"github.com/mpdsh/mpdsh/internal/ui"
)

func (s *Shell) cd(c call) error {
	arg, ok := c.arg(0)
	if !ok {
		ui.PrintInfo(s.Cwd())
		return nil
	}

	dir := pathutil.Resolve(s.cwd, arg)
	parent, leaf := pathutil.SplitParent(dir)
	if leaf == "" {
		s.cwd = ""
		return nil
	}

	reply, err := s.exec.Execute(protocol.Command(protocol.CmdListFiles, parent))
	if err != nil {
		return s.check(err)
	}
	for _, f := range listing.Names(reply.Fields, listing.TypeDirectory) {
		if f.Value == leaf {
			s.cwd = dir
			return nil
		}
	}
	ui.PrintError("No such directory")
	return nil
}

// target resolves the optional path argument. A wildcard in the last
// segment selects the parent directory and is returned as the pattern.
func (s *Shell) target(c call) (dir, pattern string) {
	arg, ok := c.arg(0)
	if !ok {
		return s.cwd, ""
	}
	dir = pathutil.Resolve(s.cwd, arg)
	if parent, leaf := pathutil.SplitParent(dir); listing.HasWildcard(leaf) {
		return parent, leaf
	}
	return dir, ""
}

func (s *Shell) ls(c call) error {
	dir, pattern := s.target(c)

	if !c.hasOpt("-l") {
		reply, err := s.exec.Execute(protocol.Command(protocol.CmdListFiles, dir))
		if err != nil {
			return s.check(err)
		}
		for _, f := range listing.Names(reply.Fields, listing.TypeDirectory, listing.TypeFile) {
			if pattern == "" || listing.Match(pattern, f.Value) {
				ui.PrintName(f.Key, f.Value)
			}
		}
		return nil
	}

	entries, err := s.lsinfo(dir, pattern)
	if err != nil {
		return s.check(err)
	}
	for i, e := range entries {
		if i == 0 || len(e.Fields) > 0 {
			ui.Blank()
		}
		ui.PrintEntry(string(e.Type), e.Name, displayFields(e.Fields))
	}
	if len(entries) > 0 {
		ui.Blank()
	}
	return nil
}

func (s *Shell) lsinfo(dir, pattern string) ([]listing.Entry, error) {
	reply, err := s.exec.Execute(protocol.Command(protocol.CmdLsInfo, dir))
	if err != nil {
		return nil, err
	}
	entries := listing.Assemble(reply.Fields)
	if pattern != "" {
		entries = listing.Filter(entries, pattern)
	}
	return entries, nil
}

// add queues every file and playlist of the target. With top set, entries
// are inserted at the head of the queue in listing order.
func (s *Shell) add(c call, top bool) error {
	dir, pattern := s.target(c)

	entries, err := s.lsinfo(dir, pattern)
	if err != nil {
		return s.check(err)
	}

	pos := 0
	for _, e := range entries {
		if e.Type != listing.TypeFile && e.Type != listing.TypePlaylist {
			continue
		}
		cmd := protocol.Command(protocol.CmdAdd, e.Name)
		if top {
			cmd = protocol.Command(protocol.CmdAddID, e.Name, strconv.Itoa(pos))
		}
		if _, err := s.exec.Execute(cmd); err != nil {
			if err := s.check(err); err != nil {
				return err
			}
			break
		}
		ui.PrintAdded(string(e.Type), e.Name)
		pos++
	}

	if pos == 0 {
		ui.PrintWarning("No files added...")
	}
	return nil
}
