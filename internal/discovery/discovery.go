// Package discovery finds MPD daemons advertised on the local network via
// mDNS/DNS-SD.
package discovery

import (
	"cmp"
	"context"
	"fmt"
	"net"
	"slices"
	"strconv"
	"strings"

	"github.com/grandcat/zeroconf"
)

// ServiceType is the DNS-SD service type MPD registers under.
const ServiceType = "_mpd._tcp"

// Domain is the mDNS browsing domain.
const Domain = "local."

// Daemon is one advertised MPD instance.
type Daemon struct {
	Name string
	Host string // IP address, or host name when no address was resolved
	Port int
}

// Address returns host:port suitable for dialing.
func (d Daemon) Address() string {
	return net.JoinHostPort(d.Host, strconv.Itoa(d.Port))
}

// fromEntry converts a resolved service entry. IPv4 addresses are preferred.
func fromEntry(entry *zeroconf.ServiceEntry) Daemon {
	d := Daemon{
		Name: entry.Instance,
		Port: entry.Port,
	}
	switch {
	case len(entry.AddrIPv4) > 0:
		d.Host = entry.AddrIPv4[0].String()
	case len(entry.AddrIPv6) > 0:
		d.Host = entry.AddrIPv6[0].String()
	default:
		d.Host = strings.TrimSuffix(entry.HostName, ".")
	}
	return d
}

// collect drains entries into a sorted list without duplicates.
func collect(entries <-chan *zeroconf.ServiceEntry) []Daemon {
	seen := make(map[string]bool)
	var daemons []Daemon
	for entry := range entries {
		d := fromEntry(entry)
		key := d.Name + "\x00" + d.Address()
		if seen[key] {
			continue
		}
		seen[key] = true
		daemons = append(daemons, d)
	}
	slices.SortFunc(daemons, func(a, b Daemon) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.Address(), b.Address()))
	})
	return daemons
}

// browser is the part of *zeroconf.Resolver used here.
type browser interface {
	Browse(ctx context.Context, service, domain string, entries chan<- *zeroconf.ServiceEntry) error
}

// newBrowser is replaced in tests.
var newBrowser = func() (browser, error) {
	return zeroconf.NewResolver(nil)
}

// Discover browses for daemons until ctx is done and returns what was found.
func Discover(ctx context.Context) ([]Daemon, error) {
	resolver, err := newBrowser()
	if err != nil {
		return nil, fmt.Errorf("mdns resolver: %w", err)
	}

	entries := make(chan *zeroconf.ServiceEntry)
	if err := resolver.Browse(ctx, ServiceType, Domain, entries); err != nil {
		return nil, fmt.Errorf("mdns browse: %w", err)
	}

	// The resolver closes entries once ctx is done.
	return collect(entries), nil
}
