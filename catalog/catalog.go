// Copyright © 2025 Launchdeck contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: catalog/catalog.go
// Summary: Instance catalog, merging directory scans with registered sources.
// Usage: Create with New, call Scan or Reload, then List/Get. Instances
// found by a directory scan shadow same-ID instances from other sources.

package catalog

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// ErrNotFound is returned by Get for unknown instance IDs.
var ErrNotFound = errors.New("instance not found")

// Options configures a Catalog.
type Options struct {
	// Dir is the catalog directory scanned for instance subdirectories.
	// Empty disables the directory source.
	Dir string

	// InstanceDB is the path of a read-only SQLite instance database.
	// Empty disables the database source.
	InstanceDB string
}

// Catalog aggregates instances from a directory scan and any
// registered sources.
type Catalog struct {
	mu      sync.RWMutex
	opts    Options
	scanned map[string]*Instance
	sourced map[string]*Instance
	sources []Source
}

// New creates an empty catalog. Call Reload (or Scan) to populate it.
func New(opts Options) *Catalog {
	return &Catalog{
		opts:    opts,
		scanned: make(map[string]*Instance),
		sourced: make(map[string]*Instance),
	}
}

// Options returns the options the catalog was created with.
func (c *Catalog) Options() Options {
	return c.opts
}

// AddSource attaches a source to the catalog. Its instances appear
// after the next Reload.
func (c *Catalog) AddSource(s Source) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sources = append(c.sources, s)
}

// Scan walks one level of subdirectories under dir and loads the
// manifest of each. Directories without a readable manifest are
// logged and skipped. Previous scan results are replaced.
func (c *Catalog) Scan(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read catalog directory: %w", err)
	}

	found := make(map[string]*Instance)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		inst, err := LoadInstance(filepath.Join(dir, entry.Name()))
		if err != nil {
			log.Printf("Catalog: skipping %s: %v", entry.Name(), err)
			continue
		}
		inst.Source = "dir"
		found[inst.ID] = inst
	}

	c.mu.Lock()
	c.scanned = found
	c.mu.Unlock()

	log.Printf("Catalog: scanned %d instance(s) from %s", len(found), dir)
	return nil
}

// Reload rescans the catalog directory and re-queries every source.
// Source errors do not abort the reload; the failing source simply
// contributes nothing.
func (c *Catalog) Reload() error {
	if c.opts.Dir != "" {
		if err := c.Scan(c.opts.Dir); err != nil {
			return err
		}
	}

	c.mu.RLock()
	sources := append([]Source(nil), c.sources...)
	c.mu.RUnlock()

	sourced := make(map[string]*Instance)
	for _, src := range sources {
		instances, err := src.Instances()
		if err != nil {
			log.Printf("Catalog: source %s failed: %v", src.Name(), err)
			continue
		}
		for _, inst := range instances {
			if inst == nil || inst.ID == "" {
				continue
			}
			inst.Source = src.Name()
			sourced[inst.ID] = inst
		}
	}

	c.mu.Lock()
	c.sourced = sourced
	c.mu.Unlock()
	return nil
}

// List returns all instances sorted by display name. Scanned
// instances shadow sourced instances with the same ID.
func (c *Catalog) List() []*Instance {
	c.mu.RLock()
	defer c.mu.RUnlock()

	merged := make([]*Instance, 0, len(c.scanned)+len(c.sourced))
	for _, inst := range c.scanned {
		merged = append(merged, inst)
	}
	for id, inst := range c.sourced {
		if _, shadowed := c.scanned[id]; shadowed {
			continue
		}
		merged = append(merged, inst)
	}

	sort.Slice(merged, func(i, j int) bool {
		if merged[i].DisplayName != merged[j].DisplayName {
			return merged[i].DisplayName < merged[j].DisplayName
		}
		return merged[i].ID < merged[j].ID
	})
	return merged
}

// Get returns the instance with the given ID.
func (c *Catalog) Get(id string) (*Instance, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if inst, ok := c.scanned[id]; ok {
		return inst, nil
	}
	if inst, ok := c.sourced[id]; ok {
		return inst, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Count returns the number of distinct instances.
func (c *Catalog) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n := len(c.scanned)
	for id := range c.sourced {
		if _, shadowed := c.scanned[id]; !shadowed {
			n++
		}
	}
	return n
}

// Close releases every attached source.
func (c *Catalog) Close() error {
	c.mu.Lock()
	sources := c.sources
	c.sources = nil
	c.mu.Unlock()

	var firstErr error
	for _, src := range sources {
		if err := src.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
