package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestGetPaths(t *testing.T) {
	paths, err := GetPaths()
	if err != nil {
		t.Fatalf("GetPaths() error = %v", err)
	}

	home, _ := os.UserHomeDir()
	mpdshHome := filepath.Join(home, ".mpdsh")
	logsDir := filepath.Join(mpdshHome, "logs")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"Home", paths.Home, mpdshHome},
		{"Config", paths.Config, filepath.Join(mpdshHome, "config.yaml")},
		{"Logs", paths.Logs, logsDir},
		{"Log", paths.Log, filepath.Join(logsDir, "mpdsh.log")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestPaths_EnsureDirectories(t *testing.T) {
	tmpDir := t.TempDir()
	mpdshHome := filepath.Join(tmpDir, ".mpdsh")
	paths := &Paths{
		Home: mpdshHome,
		Logs: filepath.Join(mpdshHome, "logs"),
	}

	if _, err := os.Stat(paths.Home); !os.IsNotExist(err) {
		t.Fatal("Home directory should not exist before EnsureDirectories")
	}

	if err := paths.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories() error = %v", err)
	}

	for _, dir := range []string{paths.Home, paths.Logs} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Errorf("Directory %q should exist: %v", dir, err)
			continue
		}
		if !info.IsDir() {
			t.Errorf("%q should be a directory", dir)
		}
	}

	// Calling again should not error (idempotent)
	if err := paths.EnsureDirectories(); err != nil {
		t.Errorf("EnsureDirectories() second call error = %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	t.Run("missing file yields empty config", func(t *testing.T) {
		f, err := LoadFile(filepath.Join(t.TempDir(), "config.yaml"))
		if err != nil {
			t.Fatalf("LoadFile() error = %v", err)
		}
		if f.Host != "" || f.Port != 0 {
			t.Errorf("LoadFile() = %+v, want empty", f)
		}
	})

	t.Run("parses all keys", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		data := "host: music.lan\nport: 6601\npassword: secret\nkeepalive: 30s\nprotolog: true\nlog_file: logs/mpdsh.log\n"
		if err := os.WriteFile(path, []byte(data), 0644); err != nil {
			t.Fatal(err)
		}

		f, err := LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile() error = %v", err)
		}
		if f.Host != "music.lan" || f.Port != 6601 || f.Password != "secret" || !f.Protolog {
			t.Errorf("LoadFile() = %+v", f)
		}
		if f.Keepalive != "30s" {
			t.Errorf("Keepalive = %q, want %q", f.Keepalive, "30s")
		}
		if want := filepath.Join(dir, "logs", "mpdsh.log"); f.LogFile != want {
			t.Errorf("LogFile = %q, want %q", f.LogFile, want)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte("host: [unterminated\n"), 0644); err != nil {
			t.Fatal(err)
		}

		_, err := LoadFile(path)
		if err == nil || !strings.Contains(err.Error(), "parse config") {
			t.Errorf("LoadFile() error = %v, want parse error", err)
		}
	})
}

func TestFile_SaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	orig := &File{Host: "10.0.0.5", Port: 6600, Keepalive: "5s"}

	if err := orig.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if *got != *orig {
		t.Errorf("LoadFile() = %+v, want %+v", got, orig)
	}
}

func TestParseHostEnv(t *testing.T) {
	tests := []struct {
		value    string
		host     string
		password string
	}{
		{"localhost", "localhost", ""},
		{"secret@music.lan", "music.lan", "secret"},
		{"/run/mpd/socket", "/run/mpd/socket", ""},
		{"secret@/run/mpd/socket", "/run/mpd/socket", "secret"},
		{"@mpd", "@mpd", ""},
		{"secret@@mpd", "@mpd", "secret"},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			host, password := ParseHostEnv(tt.value)
			if host != tt.host || password != tt.password {
				t.Errorf("ParseHostEnv(%q) = (%q, %q), want (%q, %q)",
					tt.value, host, password, tt.host, tt.password)
			}
		})
	}
}

func TestEndpoint(t *testing.T) {
	tcp := Endpoint{Host: "music.lan", Port: 6600}
	if tcp.Network() != "tcp" || tcp.Address() != "music.lan:6600" {
		t.Errorf("tcp endpoint = %s %s", tcp.Network(), tcp.Address())
	}

	v6 := Endpoint{Host: "::1", Port: 6600}
	if v6.Address() != "[::1]:6600" {
		t.Errorf("Address() = %q, want %q", v6.Address(), "[::1]:6600")
	}

	sock := Endpoint{Host: "/run/mpd/socket", Port: 6600}
	if sock.Network() != "unix" || sock.Address() != "/run/mpd/socket" {
		t.Errorf("socket endpoint = %s %s", sock.Network(), sock.Address())
	}
}

func TestResolve(t *testing.T) {
	env := func(m map[string]string) func(string) string {
		return func(k string) string { return m[k] }
	}

	t.Run("defaults", func(t *testing.T) {
		s, err := Resolve(nil, env(nil), Overrides{})
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if s.Host != DefaultHost || s.Port != DefaultPort || s.Keepalive != DefaultKeepalive {
			t.Errorf("Resolve() = %+v", s)
		}
	})

	t.Run("file over defaults", func(t *testing.T) {
		s, err := Resolve(&File{Host: "file.lan", Port: 7000, Keepalive: "3s"}, env(nil), Overrides{})
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if s.Host != "file.lan" || s.Port != 7000 || s.Keepalive != 3*time.Second {
			t.Errorf("Resolve() = %+v", s)
		}
	})

	t.Run("environment over file", func(t *testing.T) {
		s, err := Resolve(
			&File{Host: "file.lan", Port: 7000, Password: "filepw"},
			env(map[string]string{EnvHost: "envpw@env.lan", EnvPort: "7100"}),
			Overrides{},
		)
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if s.Host != "env.lan" || s.Port != 7100 || s.Password != "envpw" {
			t.Errorf("Resolve() = %+v", s)
		}
	})

	t.Run("flags over environment", func(t *testing.T) {
		s, err := Resolve(
			&File{},
			env(map[string]string{EnvHost: "env.lan", EnvPort: "7100"}),
			Overrides{Host: "flag.lan", Port: 7200, Keepalive: time.Second, Protolog: true},
		)
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if s.Host != "flag.lan" || s.Port != 7200 || s.Keepalive != time.Second || !s.Protolog {
			t.Errorf("Resolve() = %+v", s)
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		if _, err := Resolve(&File{Keepalive: "soon"}, env(nil), Overrides{}); err == nil {
			t.Error("expected error for bad keepalive")
		}
		if _, err := Resolve(&File{Keepalive: "-1s"}, env(nil), Overrides{}); err == nil {
			t.Error("expected error for negative keepalive")
		}
		if _, err := Resolve(nil, env(map[string]string{EnvPort: "abc"}), Overrides{}); err == nil {
			t.Error("expected error for bad MPD_PORT")
		}
		if _, err := Resolve(nil, env(nil), Overrides{Port: 70000}); err == nil {
			t.Error("expected error for port out of range")
		}
	})
}
