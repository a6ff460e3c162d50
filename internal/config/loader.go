// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ManuGH/sitecfg/internal/log"
	"github.com/ManuGH/sitecfg/internal/metrics"
	"github.com/ManuGH/sitecfg/internal/site"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a supported config file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatFromPath maps a file extension to its Format.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q (yaml, json or toml)", ErrUnsupportedFormat, ext)
	}
}

// Loader handles configuration loading with precedence ENV > File > Defaults.
type Loader struct {
	configPath      string
	manifestPath    string
	version         string
	ConsumedEnvKeys map[string]struct{} // Mechanical tracking of consumed keys
}

// NewLoader creates a new configuration loader
func NewLoader(configPath, version string) *Loader {
	return &Loader{
		configPath:      configPath,
		version:         version,
		ConsumedEnvKeys: make(map[string]struct{}),
	}
}

// WithManifest sets a package manifest whose description is used when the
// config file does not provide one.
func (l *Loader) WithManifest(path string) *Loader {
	l.manifestPath = path
	return l
}

// Path returns the config file path.
func (l *Loader) Path() string {
	return l.configPath
}

func (l *Loader) envString(key string) (string, bool) {
	l.ConsumedEnvKeys[key] = struct{}{}
	return LookupString(key)
}

func (l *Loader) envBool(key string) (bool, bool) {
	l.ConsumedEnvKeys[key] = struct{}{}
	return LookupBool(key)
}

// Load loads and resolves the configuration.
// It enforces Strict Validated Order: Parse File (Strict) -> Manifest -> Apply Env -> Resolve
func (l *Loader) Load() (site.Config, error) {
	cfg, err := l.load()
	if err != nil {
		metrics.ConfigLoadTotal.WithLabelValues(metrics.ResultError).Inc()
		return site.Config{}, err
	}
	metrics.ConfigLoadTotal.WithLabelValues(metrics.ResultOK).Inc()
	return cfg, nil
}

func (l *Loader) load() (site.Config, error) {
	logger := log.WithComponent("config")

	fileCfg := &FileConfig{}
	var format Format

	// 1. Load from file (if provided)
	if l.configPath != "" {
		var err error
		fileCfg, err = LoadFileConfig(l.configPath)
		if err != nil {
			return site.Config{}, fmt.Errorf("load config file: %w", err)
		}
		format, _ = FormatFromPath(l.configPath) // already accepted by LoadFileConfig
	}

	// 2. Description from the package manifest
	if fileCfg.Description == "" && l.manifestPath != "" {
		desc, err := ReadManifestDescription(l.manifestPath)
		if err != nil {
			return site.Config{}, fmt.Errorf("load manifest: %w", err)
		}
		fileCfg.Description = desc
	}

	// 3. Override with environment variables (highest priority)
	l.mergeEnvConfig(fileCfg)

	// 4. Resolve defaults and validate
	cfg, err := Resolve(*fileCfg)
	if err != nil {
		return site.Config{}, fmt.Errorf("config validation failed: %w", err)
	}

	logger.Debug().
		Str(log.FieldEvent, "config.loaded").
		Str(log.FieldPath, l.configPath).
		Str(log.FieldFormat, string(format)).
		Str(log.FieldVersion, l.version).
		Int("nav_items", len(cfg.Theme.Nav)).
		Int("sidebar_sections", len(cfg.Theme.Sidebar)).
		Int("plugins", len(cfg.Plugins)).
		Msg("configuration resolved")

	return cfg, nil
}

func (l *Loader) mergeEnvConfig(cfg *FileConfig) {
	if v, ok := l.envString(EnvTitle); ok {
		cfg.Title = v
	}
	if v, ok := l.envString(EnvDescription); ok {
		cfg.Description = v
	}
	if v, ok := l.envString(EnvBase); ok {
		cfg.Base = &v
	}
	if v, ok := l.envString(EnvRepo); ok {
		cfg.ThemeConfig.Repo = v
	}
	if v, ok := l.envString(EnvDocsDir); ok {
		cfg.ThemeConfig.DocsDir = v
	}
	if v, ok := l.envBool(EnvEditLinks); ok {
		cfg.ThemeConfig.EditLinks = &v
	}
	if v, ok := l.envBool(EnvLastUpdated); ok {
		cfg.ThemeConfig.LastUpdated = &v
	}
}

// LoadFileConfig loads a config file without applying env overrides or
// defaults. Parsing is strict: unknown fields are rejected.
func LoadFileConfig(path string) (*FileConfig, error) {
	path = filepath.Clean(path)

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	// #nosec G304 -- configuration file paths are provided by the operator via CLI/ENV
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return ParseFileConfig(data, format)
}

// ParseFileConfig strictly decodes data in the given format.
func ParseFileConfig(data []byte, format Format) (*FileConfig, error) {
	switch format {
	case FormatYAML:
		return parseYAML(data)
	case FormatJSON:
		return parseJSON(data)
	case FormatTOML:
		return parseTOML(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func parseYAML(data []byte) (*FileConfig, error) {
	var fileCfg FileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true) // Reject unknown fields

	if err := dec.Decode(&fileCfg); err != nil {
		if errors.Is(err, io.EOF) {
			return &FileConfig{}, nil
		}
		if strings.Contains(err.Error(), "field") && strings.Contains(err.Error(), "not found") {
			return nil, fmt.Errorf("strict config parse error: %w: %w", ErrUnknownConfigField, err)
		}
		return nil, fmt.Errorf("strict config parse error: %w", err)
	}

	// Strict: Ensure no multiple documents or trailing content
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config file contains multiple documents or trailing content")
	}

	return &fileCfg, nil
}

func parseJSON(data []byte) (*FileConfig, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return &FileConfig{}, nil
	}

	var fileCfg FileConfig
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	dec.UseNumber() // keep integers above 2^53 exact, as YAML and TOML do

	if err := dec.Decode(&fileCfg); err != nil {
		if strings.Contains(err.Error(), "unknown field") {
			return nil, fmt.Errorf("strict config parse error: %w: %w", ErrUnknownConfigField, err)
		}
		return nil, fmt.Errorf("strict config parse error: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("config file contains trailing content")
	}
	return &fileCfg, nil
}

func parseTOML(data []byte) (*FileConfig, error) {
	var fileCfg FileConfig
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	if err := dec.Decode(&fileCfg); err != nil {
		var strictErr *toml.StrictMissingError
		if errors.As(err, &strictErr) {
			return nil, fmt.Errorf("strict config parse error: %w: %s", ErrUnknownConfigField, strictErr.String())
		}
		return nil, fmt.Errorf("strict config parse error: %w", err)
	}
	return &fileCfg, nil
}
