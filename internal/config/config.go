package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures Atlas runtime settings.
type Config struct {
	APIURL         string
	TimeoutSeconds int
	LogDir         string
	ExportDir      string
	Listen         string // empty runs the terminal UI
}

const (
	defaultConfigPath     = "~/.config/atlas/config.toml"
	defaultAPIURL         = "https://restcountries.com/v3.1/all"
	defaultTimeoutSeconds = 15
	defaultLogDir         = "~/.local/share/atlas/logs"
	defaultExportDir      = "~/.local/share/atlas/charts"
)

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		APIURL:         defaultAPIURL,
		TimeoutSeconds: defaultTimeoutSeconds,
		LogDir:         mustExpand(defaultLogDir),
		ExportDir:      mustExpand(defaultExportDir),
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIURL         string `toml:"api_url"`
		TimeoutSeconds int    `toml:"request_timeout_seconds"`
		LogDir         string `toml:"log_dir"`
		ExportDir      string `toml:"export_dir"`
		Listen         string `toml:"listen"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if api := strings.TrimSpace(raw.APIURL); api != "" {
		cfg.APIURL = api
	}
	if raw.TimeoutSeconds < 0 {
		return Config{}, fmt.Errorf("parse config: request_timeout_seconds must not be negative")
	}
	if raw.TimeoutSeconds > 0 {
		cfg.TimeoutSeconds = raw.TimeoutSeconds
	}
	if dir := strings.TrimSpace(raw.LogDir); dir != "" {
		cfg.LogDir = mustExpand(dir)
	}
	if dir := strings.TrimSpace(raw.ExportDir); dir != "" {
		cfg.ExportDir = mustExpand(dir)
	}
	cfg.Listen = strings.TrimSpace(raw.Listen)

	return cfg, nil
}

// RequestTimeout returns the HTTP timeout for the country fetch.
func (c Config) RequestTimeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return defaultTimeoutSeconds * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// LogPath returns the path to the Atlas log file.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.LogDir) == "" {
		return mustExpand(defaultLogDir + "/atlas.log")
	}
	return filepath.Join(c.LogDir, "atlas.log")
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
