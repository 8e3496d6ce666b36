package shell

import (
	"fmt"
	"strings"

	"github.com/mpdsh/mpdsh/internal/listing"
	"github.com/mpdsh/mpdsh/internal/protocol"
	"github.com/mpdsh/mpdsh/internal/ui"
)

// withArgs sends cmd with at most n positional arguments of the call.
func (s *Shell) withArgs(c call, cmd string, n int) error {
	args := c.args
	if len(args) > n {
		args = args[:n]
	}
	if _, err := s.exec.Execute(protocol.Command(cmd, args...)); err != nil {
		return s.check(err)
	}
	ui.PrintSuccess("OK.")
	return nil
}

// toggle sets a player option when an argument is given, otherwise it shows
// the current value read from status under key.
func (s *Shell) toggle(c call, cmd, key string) error {
	if len(c.args) > 0 {
		return s.withArgs(c, cmd, 1)
	}

	reply, err := s.exec.Execute(protocol.CmdStatus)
	if err != nil {
		return s.check(err)
	}
	if v, ok := reply.Get(key); ok {
		ui.Blank()
		ui.PrintKV(key, v)
		ui.Blank()
	}
	return nil
}

// songsByID indexes queue entries by their Id field.
func songsByID(entries []listing.Entry) map[string]listing.Entry {
	m := make(map[string]listing.Entry, len(entries))
	for _, e := range entries {
		if id, ok := e.Get("Id"); ok {
			m[id] = e
		}
	}
	return m
}

func (s *Shell) status() error {
	reply, err := s.exec.Execute(protocol.CmdStatus)
	if err != nil {
		return s.check(err)
	}
	st := reply.Map()

	ui.Blank()
	ui.PrintKV("State", ui.StateBadge(st["state"]))
	ui.Blank()
	ui.PrintKV("Volume", st["volume"])
	ui.PrintKV("Repeat", st["repeat"])
	ui.PrintKV("Random", st["random"])
	ui.PrintKV("Single", st["single"])

	if songID, ok := st["songid"]; ok {
		queue, err := s.exec.Execute(protocol.CmdPlaylistInfo)
		if err != nil {
			return s.check(err)
		}
		songs := songsByID(listing.Assemble(queue.Fields))

		if cur, ok := songs[songID]; ok {
			ui.Blank()
			printSong("Now song", cur)
			if d, ok := formatDuration(st["duration"]); ok {
				ui.PrintKV("Duration", d)
			}
			if d, ok := formatDuration(st["elapsed"]); ok {
				ui.PrintKV("Elapsed", d)
			}
			if audio, ok := st["audio"]; ok {
				if bitrate, ok := st["bitrate"]; ok {
					audio = fmt.Sprintf("%s (bitrate: %s Kbps)", audio, bitrate)
				}
				ui.PrintKV("Audio", audio)
			}

			if next, ok := songs[st["nextsongid"]]; ok {
				ui.Blank()
				printSong("Next song", next)
			}
		}
	}

	ui.Blank()
	return nil
}

func printSong(label string, e listing.Entry) {
	ui.PrintKV(label, e.Name)
	for _, key := range []string{"Artist", "Title", "Album"} {
		v, _ := e.Get(key)
		ui.PrintKV(key, v)
	}
}

func (s *Shell) playlist(c call) error {
	var current, next string
	reply, err := s.exec.Execute(protocol.CmdStatus)
	if err != nil {
		if protocol.IsTransport(err) {
			return s.check(err)
		}
	} else {
		current, _ = reply.Get("songid")
		next, _ = reply.Get("nextsongid")
	}

	queue, err := s.exec.Execute(protocol.CmdPlaylistInfo)
	if err != nil {
		return s.check(err)
	}

	long := c.hasOpt("-l")
	entries := listing.Assemble(queue.Fields)
	for pos, e := range entries {
		flag := ""
		switch id, _ := e.Get("Id"); {
		case id == "":
		case id == current:
			flag = "=>"
		case id == next:
			flag = "."
		}

		if pos == 0 || long && len(e.Fields) > 0 {
			ui.Blank()
		}
		ui.PrintQueueEntry(flag, pos, string(e.Type), e.Name)
		if long {
			for _, f := range displayFields(e.Fields) {
				ui.PrintQueueField(f.Key, f.Value)
			}
		}
	}

	if len(entries) == 0 {
		ui.PrintInfo("No files ...")
	} else {
		ui.Blank()
	}
	return nil
}

// raw sends an arbitrary protocol command built from the words after "cmd".
func (s *Shell) raw(c call) error {
	if len(c.raw) == 0 {
		ui.PrintWarning("Please specify MPD Command...")
		return nil
	}

	reply, err := s.exec.Execute(protocol.Command(c.raw[0], c.raw[1:]...))
	if err != nil {
		return s.check(err)
	}
	ui.PrintFields(reply.Fields)
	if reply.Binary != nil {
		ui.PrintInfo(fmt.Sprintf("binary payload: %d bytes", len(reply.Binary)))
	}
	return nil
}

func (s *Shell) help(c call) {
	if name, ok := c.arg(0); ok {
		if cmd, ok := Lookup(name); ok {
			ui.Blank()
			fmt.Fprintln(ui.Output, cmd.Help())
		}
	}
	ui.Blank()
	fmt.Fprintf(ui.Output, "help [ %s ]\n", strings.Join(Names(), " "))
	ui.Blank()
}
