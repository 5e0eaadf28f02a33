// Copyright © 2025 Launchdeck contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: catalog/instance.go
// Summary: Instance manifest structure for the catalog.
// Usage: Instances provide an instance.json or instance.yaml file
// describing their metadata; the backend launcher consumes the same
// files, the shell only reads them.

package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Manifest file names probed in order inside an instance directory.
var manifestNames = []string{"instance.json", "instance.yaml", "instance.yml"}

// Instance describes a launchable instance's metadata.
type Instance struct {
	// ID is the unique identifier for this instance (e.g. "vanilla-1.21")
	ID string `json:"id" yaml:"id"`

	// DisplayName is the human-readable name shown on the page.
	// Defaults to ID when omitted.
	DisplayName string `json:"display_name" yaml:"display_name"`

	// Description provides a brief explanation shown next to the tile
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Icon is a symbolic icon name resolved by the icon glyph table
	Icon string `json:"icon,omitempty" yaml:"icon,omitempty"`

	// Kind distinguishes instance roles (e.g. "client", "server")
	Kind string `json:"kind,omitempty" yaml:"kind,omitempty"`

	// Loader names the mod loader this instance boots with
	Loader string `json:"loader,omitempty" yaml:"loader,omitempty"`

	// GameVersion is the upstream version the instance targets
	GameVersion string `json:"game_version,omitempty" yaml:"game_version,omitempty"`

	// Tags are searchable keywords
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`

	// Manifest holds the raw manifest bytes for the preview pane
	Manifest []byte `json:"-" yaml:"-"`

	// Path is where the manifest was read from
	Path string `json:"-" yaml:"-"`

	// Source names the provider that produced this instance
	Source string `json:"-" yaml:"-"`
}

// LoadInstance reads and parses the manifest from an instance directory.
func LoadInstance(dir string) (*Instance, error) {
	path, data, err := readManifest(dir)
	if err != nil {
		return nil, err
	}

	inst, err := decodeManifest(path, data)
	if err != nil {
		return nil, err
	}

	inst.Manifest = data
	inst.Path = path
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst, nil
}

func readManifest(dir string) (string, []byte, error) {
	for _, name := range manifestNames {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err == nil {
			return path, data, nil
		}
		if !os.IsNotExist(err) {
			return "", nil, fmt.Errorf("read manifest: %w", err)
		}
	}
	return "", nil, fmt.Errorf("no manifest in %s", dir)
}

func decodeManifest(path string, data []byte) (*Instance, error) {
	var inst Instance
	switch filepath.Ext(path) {
	case ".json":
		if err := json.Unmarshal(data, &inst); err != nil {
			return nil, fmt.Errorf("parse manifest: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &inst); err != nil {
			return nil, fmt.Errorf("parse manifest: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported manifest format: %s", path)
	}
	return &inst, nil
}

// Validate checks required fields and fills defaults.
func (i *Instance) Validate() error {
	if i.ID == "" {
		return fmt.Errorf("manifest missing required field: id")
	}
	if i.DisplayName == "" {
		i.DisplayName = i.ID
	}
	return nil
}
