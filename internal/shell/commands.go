package shell

// Command is one shell command, resolved once from its name or alias.
type Command int

const (
	CmdUnknown Command = iota
	CmdCd
	CmdLs
	CmdPl
	CmdAdd
	CmdAddTop
	CmdAddURI
	CmdDel
	CmdClr
	CmdMove
	CmdPlay
	CmdStop
	CmdPause
	CmdResume
	CmdPrev
	CmdNext
	CmdRandom
	CmdRepeat
	CmdSingle
	CmdVolume
	CmdStatus
	CmdUpdate
	CmdCmd
	CmdQuit
	CmdHelp
)

type commandInfo struct {
	name    string
	aliases []string
	help    string
}

// commands is indexed by Command and ordered the way help lists them.
var commands = []commandInfo{
	CmdUnknown: {},
	CmdCd: {
		name: "cd",
		help: `cd [<DIR>]
 - change directory
 - You can use the <TAB> key for completion.`,
	},
	CmdLs: {
		name: "ls",
		help: `ls [-l] [<DIR|FILE>]
 - list file or directory
 - [-l] more info ( file only )
 - Wildcards (* and ?) in the last path segment filter the listing.
 - You can use the <TAB> key for completion.`,
	},
	CmdPl: {
		name:    "pl",
		aliases: []string{"plist"},
		help: `pl [-l]
 - show playlist
 - [-l] more info
 - FLG ` + "`=>`" + ` The current song stopped on or playing.
 - FLG ` + "`.`" + `  The next song to be played.
 - alias( plist )`,
	},
	CmdAdd: {
		name:    "add",
		aliases: []string{"a"},
		help: `add [<FILE|DIR>]
 - Adds the file to the playlist.
 - If no file is specified, all files under the current directory are targeted.
 - You can use the <TAB> key for completion.
 - alias( a )`,
	},
	CmdAddTop: {
		name:    "add_top",
		aliases: []string{"at"},
		help: `add_top [<FILE|DIR>]
 - Adds the file to the playlist top.
 - You can use the <TAB> key for completion.
 - alias( at )`,
	},
	CmdAddURI: {
		name: "add_uri",
		help: `add_uri <URI> [<POSITION>]
 - Adds the file to the playlist.
 - URL of Internet radio, etc.`,
	},
	CmdDel: {
		name: "del",
		help: `del <POS>|<START:END>
 - Deletes a song from the playlist.`,
	},
	CmdClr: {
		name: "clr",
		help: `clr
 - Deletes all songs from the playlist.`,
	},
	CmdMove: {
		name: "move",
		help: `move <POS>|<START:END> <TOPOS>
 - Moves the song in the playlist.`,
	},
	CmdPlay: {
		name:    "play",
		aliases: []string{"p"},
		help: `play [<POS>]
 - Begins playing the playlist.
 - alias( p )`,
	},
	CmdStop: {
		name:    "stop",
		aliases: []string{"s"},
		help: `stop
 - Stops playing.
 - alias( s )`,
	},
	CmdPause: {
		name:    "pause",
		aliases: []string{"u"},
		help: `pause
 - Pauses playing.
 - alias( u )`,
	},
	CmdResume: {
		name:    "resume",
		aliases: []string{"e"},
		help: `resume
 - Resumes playing.
 - alias( e )`,
	},
	CmdPrev: {
		name:    "prev",
		aliases: []string{"r"},
		help: `prev
 - Plays previous song in the playlist.
 - alias( r )`,
	},
	CmdNext: {
		name:    "next",
		aliases: []string{"n"},
		help: `next
 - Plays next song in the playlist.
 - alias( n )`,
	},
	CmdRandom: {
		name: "random",
		help: `random [<STATE>]
 - Sets random state to STATE, STATE should be 0 or 1.
 - Or display the current value.`,
	},
	CmdRepeat: {
		name: "repeat",
		help: `repeat [<STATE>]
 - Sets repeat state to STATE, STATE should be 0 or 1.
 - Or display the current value.`,
	},
	CmdSingle: {
		name: "single",
		help: `single [<STATE>]
 - Sets single state to STATE, STATE should be 0, 1 or oneshot.
 - Playback stops after the current song, or the song is repeated if repeat is on.
 - Or display the current value.`,
	},
	CmdVolume: {
		name:    "volume",
		aliases: []string{"v"},
		help: `volume [<VOL>]
 - Sets volume to VOL, the range of volume is 0-100.
 - Or display the current value.
 - alias( v )`,
	},
	CmdStatus: {
		name:    "status",
		aliases: []string{"st"},
		help: `status
 - Reports the current status of the player and the volume level.
 - alias( st )`,
	},
	CmdUpdate: {
		name: "update",
		help: `update [<DIR>]
 - Updates the music database on MPD`,
	},
	CmdCmd: {
		name: "cmd",
		help: `cmd <MPDCOMMAND> [<MPDCOMMAND_ARG> ...]
 - Exec MPD Protocol command (see: https://mpd.readthedocs.io/en/latest/protocol.html)`,
	},
	CmdQuit: {
		name:    "quit",
		aliases: []string{"q"},
		help: `quit
 - Quit this program.
 - alias( q )`,
	},
	CmdHelp: {
		name:    "help",
		aliases: []string{"h"},
		help: `help [<COMMAND>]
 - Show help for a command.
 - alias( h )`,
	},
}

var byName = func() map[string]Command {
	m := make(map[string]Command)
	for i, info := range commands {
		if info.name == "" {
			continue
		}
		m[info.name] = Command(i)
		for _, a := range info.aliases {
			m[a] = Command(i)
		}
	}
	return m
}()

// Lookup resolves a command name or alias.
func Lookup(name string) (Command, bool) {
	c, ok := byName[name]
	return c, ok
}

// Names returns the canonical command names in help order.
func Names() []string {
	names := make([]string, 0, len(commands)-1)
	for _, info := range commands[1:] {
		names = append(names, info.name)
	}
	return names
}

func (c Command) String() string {
	if c <= CmdUnknown || int(c) >= len(commands) {
		return "unknown"
	}
	return commands[c].name
}

// Help returns the help text of the command.
func (c Command) Help() string {
	if c <= CmdUnknown || int(c) >= len(commands) {
		return ""
	}
	return commands[c].help
}
