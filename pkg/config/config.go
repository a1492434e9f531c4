// Package config loads the optional collectionkit.yaml file that supplies
// default section layout and logging settings.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/collectionkit/pkg/errors"
	"github.com/go-drift/collectionkit/pkg/layout"
)

// FileName is the configuration file looked up in a directory.
const FileName = "collectionkit.yaml"

// Config represents the optional collectionkit.yaml configuration.
type Config struct {
	Layout  LayoutConfig  `yaml:"layout"`
	Logging LoggingConfig `yaml:"logging"`
}

// LayoutConfig contains default section layout metadata. Nil fields keep the
// built-in defaults.
type LayoutConfig struct {
	Inset                   *layout.EdgeInsets `yaml:"inset,omitempty"`
	MinimumInterItemSpacing *float64           `yaml:"minimum_inter_item_spacing,omitempty"`
	LineSpacing             *float64           `yaml:"line_spacing,omitempty"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level,omitempty"`
	Verbose bool   `yaml:"verbose,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root     string
	Layout   layout.SectionLayout
	LogLevel slog.Level
	Verbose  bool
}

// LoadOptional reads collectionkit.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}
	return Parse(data)
}

// Parse decodes configuration from YAML bytes.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	return &cfg, nil
}

// Resolve loads collectionkit.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	resolved, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}
	resolved.Root = dir
	return resolved, nil
}

// Resolve applies defaults to cfg and validates the result.
func (cfg *Config) Resolve() (*Resolved, error) {
	l := layout.DefaultSectionLayout()
	if cfg.Layout.Inset != nil {
		l.Inset = *cfg.Layout.Inset
	}
	if cfg.Layout.MinimumInterItemSpacing != nil {
		l.MinimumInterItemSpacing = *cfg.Layout.MinimumInterItemSpacing
	}
	if cfg.Layout.LineSpacing != nil {
		l.LineSpacing = *cfg.Layout.LineSpacing
	}
	if err := validateLayout(l); err != nil {
		return nil, err
	}

	level, err := parseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, err
	}

	return &Resolved{
		Layout:   l,
		LogLevel: level,
		Verbose:  cfg.Logging.Verbose,
	}, nil
}

func validateLayout(l layout.SectionLayout) error {
	in := l.Inset
	switch {
	case in.Top < 0 || in.Left < 0 || in.Bottom < 0 || in.Right < 0:
		return configError("layout.inset", fmt.Errorf("insets cannot be negative (got %+v)", in))
	case l.MinimumInterItemSpacing < 0:
		return configError("layout.minimum_inter_item_spacing", fmt.Errorf("cannot be negative (got %g)", l.MinimumInterItemSpacing))
	case l.LineSpacing < 0:
		return configError("layout.line_spacing", fmt.Errorf("cannot be negative (got %g)", l.LineSpacing))
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, configError("logging.level", fmt.Errorf("unknown level %q", s))
	}
}

func configError(field string, err error) error {
	return &errors.CollectionError{
		Op:   "config." + field,
		Kind: errors.KindConfig,
		Err:  err,
	}
}
