package main

import (
	"context"
	"fmt"
	"time"

	"github.com/mpdsh/mpdsh/internal/discovery"
	"github.com/mpdsh/mpdsh/internal/ui"
)

type DiscoverCmd struct {
	Timeout time.Duration `default:"3s" help:"How long to listen for announcements"`
}

func (c *DiscoverCmd) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), c.Timeout)
	defer cancel()

	ui.PrintInfo(fmt.Sprintf("Browsing for %s for %s...", discovery.ServiceType, c.Timeout))
	daemons, err := discovery.Discover(ctx)
	if err != nil {
		return err
	}

	printDaemons(daemons)
	return nil
}

func printDaemons(daemons []discovery.Daemon) {
	if len(daemons) == 0 {
		ui.PrintWarning("No MPD daemons found.")
		return
	}
	for _, d := range daemons {
		fmt.Fprintf(ui.Output, "  %s  %s\n", ui.Bold(d.Name), ui.Cyan(d.Address()))
	}
	ui.Blank()
	fmt.Fprintf(ui.Output, "%s\n", ui.Dim("Connect with: mpdsh -H <host> -p <port>"))
}
