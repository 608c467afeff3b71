package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the runtime settings of the dashboard.
type Config struct {
	LogPath       string
	LogLevel      string
	LogFormat     string // "json" or "console"
	GenerateDelay time.Duration
	ScrollStep    int // rows moved per smooth-scroll frame
}

const (
	defaultConfigPath    = "~/.config/reelboard/config.toml"
	defaultLogPath       = "~/.local/state/reelboard/reelboard.log"
	defaultLogLevel      = "info"
	defaultLogFormat     = "json"
	defaultGenerateDelay = 600 * time.Millisecond
	defaultScrollStep    = 3
)

// envOverrides are applied after the file is read.
type envOverrides struct {
	LogPath       string        `env:"REELBOARD_LOG_PATH"`
	LogLevel      string        `env:"REELBOARD_LOG_LEVEL"`
	GenerateDelay time.Duration `env:"REELBOARD_GENERATE_DELAY"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		LogPath:       mustExpand(defaultLogPath),
		LogLevel:      defaultLogLevel,
		LogFormat:     defaultLogFormat,
		GenerateDelay: defaultGenerateDelay,
		ScrollStep:    defaultScrollStep,
	}
}

// Load locates and parses the config, falling back to defaults when missing.
// Environment variables override file values.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// defaults only
	case err != nil:
		return Config{}, fmt.Errorf("open config: %w", err)
	default:
		defer file.Close()
		if err := cfg.readFile(file); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) readFile(r io.Reader) error {
	bytes, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		LogPath         string `toml:"log_path"`
		LogLevel        string `toml:"log_level"`
		LogFormat       string `toml:"log_format"`
		GenerateDelayMS int    `toml:"generate_delay_ms"`
		ScrollStep      int    `toml:"scroll_step"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	if p := strings.TrimSpace(raw.LogPath); p != "" {
		c.LogPath = mustExpand(p)
	}
	if lvl := strings.TrimSpace(raw.LogLevel); lvl != "" {
		c.LogLevel = strings.ToLower(lvl)
	}
	switch strings.ToLower(strings.TrimSpace(raw.LogFormat)) {
	case "console":
		c.LogFormat = "console"
	case "", "json":
		c.LogFormat = defaultLogFormat
	default:
		return fmt.Errorf("parse config: unknown log_format %q", raw.LogFormat)
	}
	if raw.GenerateDelayMS > 0 {
		c.GenerateDelay = time.Duration(raw.GenerateDelayMS) * time.Millisecond
	}
	if raw.ScrollStep > 0 {
		c.ScrollStep = raw.ScrollStep
	}
	return nil
}

func (c *Config) applyEnv() error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	if p := strings.TrimSpace(o.LogPath); p != "" {
		c.LogPath = mustExpand(p)
	}
	if lvl := strings.TrimSpace(o.LogLevel); lvl != "" {
		c.LogLevel = strings.ToLower(lvl)
	}
	if o.GenerateDelay > 0 {
		c.GenerateDelay = o.GenerateDelay
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultConfigPath)
	}
	return ExpandPath(path)
}

func mustExpand(path string) string {
	expanded, err := ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading ~ and returns an absolute path.
func ExpandPath(path string) (string, error) {
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
