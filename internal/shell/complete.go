package shell

import (
	"strings"

	"github.com/mpdsh/mpdsh/internal/listing"
	"github.com/mpdsh/mpdsh/internal/pathutil"
	"github.com/mpdsh/mpdsh/internal/protocol"
)

// Complete returns candidates for the word being typed (last) after the
// words already completed on the line.
func (s *Shell) Complete(completed []string, last string) []string {
	if len(completed) == 0 {
		return withPrefix(Names(), last)
	}

	c, _ := parseCall(completed)
	switch c.cmd {
	case CmdCd:
		return s.CompletePath(last, false)
	case CmdLs, CmdAdd, CmdAddTop:
		return s.CompletePath(last, true)
	case CmdHelp:
		if len(c.args) == 0 {
			return withPrefix(Names(), last)
		}
	}
	return nil
}

// CompletePath completes a remote path argument. Candidates keep the
// directory part exactly as typed and directories end in "/".
//
// If partial names an existing directory its contents are offered. When the
// daemon answers "no such object" the parent directory is listed instead and
// its names are matched against the typed leaf.
func (s *Shell) CompletePath(partial string, withFiles bool) []string {
	dir := pathutil.Resolve(s.cwd, partial)
	typed := dirPart(partial)

	prefix := partial
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	match := func(string) bool { return true }

	if parent, leaf := pathutil.SplitParent(dir); listing.HasWildcard(leaf) {
		dir, prefix = parent, typed
		match = func(name string) bool { return listing.Match(leaf, name) }
	}

	reply, err := s.exec.Execute(protocol.Command(protocol.CmdListFiles, dir))
	if err != nil {
		if !protocol.IsAck(err, protocol.AckNoExist) {
			return nil
		}
		parent, leaf := pathutil.SplitParent(dir)
		reply, err = s.exec.Execute(protocol.Command(protocol.CmdListFiles, parent))
		if err != nil {
			return nil
		}
		prefix = typed
		match = func(name string) bool { return strings.HasPrefix(name, leaf) }
	}

	types := []listing.Type{listing.TypeDirectory}
	if withFiles {
		types = append(types, listing.TypeFile)
	}

	var out []string
	for _, f := range listing.Names(reply.Fields, types...) {
		_, name := pathutil.SplitParent(f.Value)
		if !match(name) {
			continue
		}
		cand := prefix + name
		if f.Key == string(listing.TypeDirectory) {
			cand += "/"
		}
		out = append(out, cand)
	}
	return out
}

// dirPart returns partial up to and including its last slash.
func dirPart(partial string) string {
	return partial[:strings.LastIndex(partial, "/")+1]
}

func withPrefix(names []string, prefix string) []string {
	var out []string
	for _, n := range names {
		if strings.HasPrefix(n, prefix) {
			out = append(out, n)
		}
	}
	return out
}
