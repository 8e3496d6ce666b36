package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// Environment variables understood by MPD clients.
const (
	EnvHost = "MPD_HOST"
	EnvPort = "MPD_PORT"
)

// Endpoint identifies a daemon.
type Endpoint struct {
	Host     string
	Port     int
	Password string
}

// IsSocket reports whether the endpoint is a local unix socket.
func (e Endpoint) IsSocket() bool {
	return strings.HasPrefix(e.Host, "/") || strings.HasPrefix(e.Host, "@")
}

// Network returns the dial network for the endpoint.
func (e Endpoint) Network() string {
	if e.IsSocket() {
		return "unix"
	}
	return "tcp"
}

// Address returns the dial address for the endpoint.
func (e Endpoint) Address() string {
	if e.IsSocket() {
		return e.Host
	}
	return net.JoinHostPort(e.Host, strconv.Itoa(e.Port))
}

func (e Endpoint) String() string {
	return e.Address()
}

// ParseHostEnv splits an MPD_HOST value of the form [password@]host, where
// host is a hostname, an address, or a unix socket path.
func ParseHostEnv(v string) (host, password string) {
	if strings.HasPrefix(v, "@") {
		// abstract socket, no password
		return v, ""
	}
	if pass, rest, ok := strings.Cut(v, "@@"); ok {
		return "@" + rest, pass
	}
	if pass, rest, ok := strings.Cut(v, "@"); ok {
		return rest, pass
	}
	return v, ""
}

// Overrides are values given on the command line. Zero values mean unset.
type Overrides struct {
	Host      string
	Port      int
	Password  string
	Keepalive time.Duration
	Protolog  bool
}

// Settings are the effective connection settings.
type Settings struct {
	Endpoint
	Keepalive time.Duration
	Protolog  bool
	LogFile   string
}

// Resolve merges command line, environment, config file and defaults, in
// that order of precedence.
func Resolve(file *File, getenv func(string) string, flags Overrides) (*Settings, error) {
	if file == nil {
		file = &File{}
	}

	s := &Settings{
		Endpoint: Endpoint{
			Host:     DefaultHost,
			Port:     DefaultPort,
			Password: file.Password,
		},
		Keepalive: DefaultKeepalive,
		Protolog:  file.Protolog || flags.Protolog,
		LogFile:   file.LogFile,
	}

	if file.Host != "" {
		s.Host = file.Host
	}
	if file.Port != 0 {
		s.Port = file.Port
	}
	keepalive, err := file.keepalive()
	if err != nil {
		return nil, err
	}
	if keepalive > 0 {
		s.Keepalive = keepalive
	}

	if v := getenv(EnvHost); v != "" {
		host, pass := ParseHostEnv(v)
		s.Host = host
		if pass != "" {
			s.Password = pass
		}
	}
	if v := getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvPort, err)
		}
		s.Port = port
	}

	if flags.Host != "" {
		host, pass := ParseHostEnv(flags.Host)
		s.Host = host
		if pass != "" {
			s.Password = pass
		}
	}
	if flags.Port != 0 {
		s.Port = flags.Port
	}
	if flags.Password != "" {
		s.Password = flags.Password
	}
	if flags.Keepalive > 0 {
		s.Keepalive = flags.Keepalive
	}

	if s.Port <= 0 || s.Port > 65535 {
		return nil, fmt.Errorf("port out of range: %d", s.Port)
	}
	return s, nil
}
