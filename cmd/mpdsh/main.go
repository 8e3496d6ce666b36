package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/willabides/kongplete"
)

var (
	version = "dev"
	commit  = "none"
)

// Globals are connection flags shared by every command.
type Globals struct {
	Host      string        `short:"H" help:"MPD host: [password@]host, a unix socket path or @abstract socket" placeholder:"HOST"`
	Port      int           `short:"p" help:"MPD port (default 6600)"`
	Password  string        `help:"MPD password"`
	Keepalive time.Duration `help:"Idle interval before a keepalive ping (default 10s)"`
	Protolog  bool          `short:"d" help:"Trace protocol traffic to stderr"`
	Config    string        `name:"config" type:"path" help:"Config file (default ~/.mpdsh/config.yaml)" placeholder:"FILE"`
}

type CLI struct {
	Globals

	Shell    ShellCmd    `cmd:"" default:"1" help:"Start the interactive shell (default)"`
	Cmd      CmdCmd      `cmd:"" help:"Run one shell command and exit"`
	Discover DiscoverCmd `cmd:"" help:"Find MPD daemons on the local network"`
	Settings ConfigCmd   `cmd:"" name:"config" help:"Show or create the config file"`
	Logs     LogsCmd     `cmd:"" help:"Show mpdsh logs"`
	Version  VersionCmd  `cmd:"" help:"Show version"`

	InstallCompletions kongplete.InstallCompletions `cmd:"" help:"Install shell completions"`
}

func main() {
	cli := CLI{}
	parser := kong.Must(&cli,
		kong.Name("mpdsh"),
		kong.Description("Interactive shell for Music Player Daemon"),
		kong.UsageOnError(),
	)

	kongplete.Complete(parser,
		kongplete.WithPredictor("remote-path", newRemotePathPredictor()),
	)

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	if err := ctx.Run(&cli.Globals); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				fmt.Fprintln(os.Stderr, exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitError)
	}
}
