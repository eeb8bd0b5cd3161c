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

// Config captures the settings Shuttle needs to reach and page through the
// Loom gateway.
type Config struct {
	APIBind         string
	PageSize        int
	DebounceMS      int
	ScrollThreshold int
}

const (
	defaultConfigPath      = "~/.config/shuttle/config.toml"
	defaultAPIBind         = "127.0.0.1:7600"
	defaultPageSize        = 100
	defaultDebounceMS      = 200
	defaultScrollThreshold = 12
)

// Load locates and parses the Shuttle config, falling back to defaults when
// the file is missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		APIBind:         defaultAPIBind,
		PageSize:        defaultPageSize,
		DebounceMS:      defaultDebounceMS,
		ScrollThreshold: defaultScrollThreshold,
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
		APIBind         string `toml:"api_bind"`
		PageSize        int    `toml:"page_size"`
		DebounceMS      int    `toml:"debounce_ms"`
		ScrollThreshold int    `toml:"scroll_threshold"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if bind := strings.TrimSpace(raw.APIBind); bind != "" {
		cfg.APIBind = bind
	}
	if raw.PageSize > 0 {
		cfg.PageSize = raw.PageSize
	}
	if raw.DebounceMS > 0 {
		cfg.DebounceMS = raw.DebounceMS
	}
	if raw.ScrollThreshold > 0 {
		cfg.ScrollThreshold = raw.ScrollThreshold
	}

	return cfg, nil
}

// Debounce returns the parameter-change quiet period as a duration.
func (c Config) Debounce() time.Duration {
	if c.DebounceMS <= 0 {
		return defaultDebounceMS * time.Millisecond
	}
	return time.Duration(c.DebounceMS) * time.Millisecond
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
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
