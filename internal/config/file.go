package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mpdsh/mpdsh/internal/pathutil"
	"gopkg.in/yaml.v3"
)

// File is the on-disk configuration (~/.mpdsh/config.yaml).
type File struct {
	Host      string `yaml:"host,omitempty"`
	Port      int    `yaml:"port,omitempty"`
	Password  string `yaml:"password,omitempty"`
	Keepalive string `yaml:"keepalive,omitempty"` // Go duration, e.g. "10s"
	Protolog  bool   `yaml:"protolog,omitempty"`
	LogFile   string `yaml:"log_file,omitempty"` // relative to the config file directory
}

// LoadFile reads the config file at path. A missing file yields an empty File.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &File{}, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if f.LogFile != "" {
		resolved, err := pathutil.LocalPath(f.LogFile, filepath.Dir(path))
		if err != nil {
			return nil, fmt.Errorf("log_file: %w", err)
		}
		f.LogFile = resolved
	}
	return &f, nil
}

// Save writes f to path as YAML.
func (f *File) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (f *File) keepalive() (time.Duration, error) {
	if f.Keepalive == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(f.Keepalive)
	if err != nil {
		return 0, fmt.Errorf("keepalive: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("keepalive must be positive, got %s", f.Keepalive)
	}
	return d, nil
}
