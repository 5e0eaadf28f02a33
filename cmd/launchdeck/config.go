// Copyright © 2025 Launchdeck contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/launchdeck/config.go
// Summary: Filesystem locations launchdeck works from, flag > config >
// default.

package main

import (
	"fmt"
	"os"

	"github.com/framegrace/launchdeck/config"
)

// Paths holds the resolved locations for this run.
type Paths struct {
	CatalogDir string // instance manifests, one subdirectory each
	InstanceDB string // backend-maintained database, empty when absent
}

// resolvePaths settles the catalog and database locations. Flags win over
// the config file, which wins over the XDG defaults.
func resolvePaths(sys config.Config, catalogFlag, dbFlag string) (Paths, error) {
	p := Paths{CatalogDir: catalogFlag, InstanceDB: dbFlag}

	if p.CatalogDir == "" {
		p.CatalogDir = sys.GetString("catalog", "dir", "")
	}
	if p.CatalogDir == "" {
		dir, err := config.DefaultCatalogDir()
		if err != nil {
			return Paths{}, fmt.Errorf("default catalog dir: %w", err)
		}
		p.CatalogDir = dir
	}

	if p.InstanceDB == "" {
		p.InstanceDB = sys.GetString("catalog", "instance_db", "")
	}
	// The default database only counts when the backend has written one;
	// a configured path is passed through and complains on open instead.
	if p.InstanceDB == "" {
		if path, err := config.DefaultInstanceDBPath(); err == nil {
			if _, statErr := os.Stat(path); statErr == nil {
				p.InstanceDB = path
			}
		}
	}

	return p, nil
}

// EnsureCatalogDir creates the catalog directory if it doesn't exist, so
// a fresh install starts with an empty page instead of a scan error.
func (p *Paths) EnsureCatalogDir() error {
	if p.CatalogDir == "" {
		return nil
	}
	return os.MkdirAll(p.CatalogDir, 0o755)
}
