package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mpdsh/mpdsh/internal/config"
)

func TestCollectConfigInputs(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  config.File
	}{
		{
			name:  "all defaults leave the file empty",
			input: "\n\n\n",
			want:  config.File{},
		},
		{
			name:  "custom values are stored",
			input: "mpd.lan\n6601\n30s\n",
			want:  config.File{Host: "mpd.lan", Port: 6601, Keepalive: "30s"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captureOutput(t)
			setStdinInput(t, tt.input)

			got, err := collectConfigInputs()
			if err != nil {
				t.Fatalf("collectConfigInputs() error = %v", err)
			}
			if *got != tt.want {
				t.Errorf("collectConfigInputs() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestCollectConfigInputs_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"port not a number", "\nabc\n\n"},
		{"port out of range", "\n70000\n\n"},
		{"bad keepalive", "\n\nsoon\n"},
		{"negative keepalive", "\n\n-5s\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captureOutput(t)
			setStdinInput(t, tt.input)

			if _, err := collectConfigInputs(); err == nil {
				t.Error("collectConfigInputs() expected error")
			}
		})
	}
}

func TestConfigInitCmd_WritesFile(t *testing.T) {
	captureOutput(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	setStdinInput(t, "mpd.lan\n\n1m\n")

	cmd := &ConfigInitCmd{}
	if err := cmd.Run(&Globals{Config: path}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	f, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if f.Host != "mpd.lan" || f.Port != 0 || f.Keepalive != (time.Minute).String() {
		t.Errorf("saved config = %+v", f)
	}
}

func TestConfigInitCmd_KeepsExistingFileWhenDeclined(t *testing.T) {
	captureOutput(t)
	path := writeConfig(t, "host: keep.lan\n")
	setStdinInput(t, "n\n")

	cmd := &ConfigInitCmd{}
	if err := cmd.Run(&Globals{Config: path}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "host: keep.lan\n" {
		t.Errorf("config was modified: %q", data)
	}
}

func TestConfigShowCmd(t *testing.T) {
	out := captureOutput(t)
	setEnv(t, nil)
	path := writeConfig(t, "host: show.lan\npassword: hunter2\nlog_file: mpdsh.log\n")

	cmd := &ConfigShowCmd{}
	if err := cmd.Run(&Globals{Config: path}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	output := out.String()
	for _, want := range []string{"Daemon: show.lan:6600", "Password: (set)", "Keepalive: 10s"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
	if strings.Contains(output, "hunter2") {
		t.Error("password must not be printed")
	}
}

func TestConfigEditCmd_CreatesAndValidates(t *testing.T) {
	captureOutput(t)
	truePath, err := exec.LookPath("true")
	if err != nil {
		t.Skip("true not available")
	}
	setEnv(t, map[string]string{"EDITOR": truePath})
	path := filepath.Join(t.TempDir(), "config.yaml")

	cmd := &ConfigEditCmd{}
	if err := cmd.Run(&Globals{Config: path}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file not created: %v", err)
	}
}

func TestConfigEditCmd_ReportsInvalidFile(t *testing.T) {
	captureOutput(t)
	truePath, err := exec.LookPath("true")
	if err != nil {
		t.Skip("true not available")
	}
	setEnv(t, map[string]string{"EDITOR": truePath})
	path := writeConfig(t, "keepalive: soon\n")

	cmd := &ConfigEditCmd{}
	err = cmd.Run(&Globals{Config: path})

	if err == nil || !strings.Contains(err.Error(), "is invalid") {
		t.Errorf("Run() error = %v, want invalid config error", err)
	}
}
