// SPDX-License-Identifier: MIT

package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ManuGH/sitecfg/internal/log"
	"github.com/ManuGH/sitecfg/internal/site"
	"github.com/google/renameio/v2"
	"gopkg.in/yaml.v3"
)

// Encode writes cfg in the site generator's wire shape.
func Encode(w io.Writer, cfg site.Config, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("encode config: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("close encoder: %w", err)
		}
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("encode config: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: cannot encode %q", ErrUnsupportedFormat, format)
	}
}

// Manager handles configuration persistence.
type Manager struct {
	configPath string
}

// NewManager creates a new configuration manager.
func NewManager(configPath string) *Manager {
	return &Manager{
		configPath: configPath,
	}
}

// Save writes the resolved configuration to disk in the format implied by
// the file extension (YAML or JSON).
func (m *Manager) Save(cfg site.Config) error {
	format, err := FormatFromPath(m.configPath)
	if err != nil {
		return err
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(m.configPath), 0750); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	// renameio handles: temp file creation, fsync, atomic rename, cleanup on error
	pendingFile, err := renameio.NewPendingFile(m.configPath, renameio.WithPermissions(0o644))
	if err != nil {
		return fmt.Errorf("create pending config file: %w", err)
	}
	defer func() {
		if err := pendingFile.Cleanup(); err != nil {
			logger := log.WithComponent("config")
			logger.Debug().Err(err).Msg("cleanup pending config file")
		}
	}()

	if err := Encode(pendingFile, cfg, format); err != nil {
		return err
	}

	// CloseAtomicallyReplace: fsync + rename (durable + atomic)
	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace config file: %w", err)
	}
	return nil
}
