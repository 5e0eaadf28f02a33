// Copyright © 2025 Launchdeck contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: catalog/sources.go
// Summary: Pluggable instance sources and their registration.

package catalog

import "sync"

// Source supplies instances from somewhere other than the catalog
// directory (a database, a remote index, ...).
type Source interface {
	// Name identifies the source in logs and Instance.Source.
	Name() string

	// Instances returns the source's current instances.
	Instances() ([]*Instance, error)

	// Close releases the source's resources.
	Close() error
}

// SourceProvider builds a source for a catalog. Providers may return
// nil when the catalog's options do not enable them.
type SourceProvider func(c *Catalog) Source

var (
	providerMu sync.Mutex
	providers  []SourceProvider
)

// RegisterSourceProvider registers a provider. Typically called from
// an init function in the source's own file.
func RegisterSourceProvider(p SourceProvider) {
	providerMu.Lock()
	defer providerMu.Unlock()
	providers = append(providers, p)
}

// RegisterSources instantiates all registered providers and attaches
// the sources they produce to the catalog.
func RegisterSources(c *Catalog) {
	providerMu.Lock()
	list := make([]SourceProvider, len(providers))
	copy(list, providers)
	providerMu.Unlock()

	for _, p := range list {
		if src := p(c); src != nil {
			c.AddSource(src)
		}
	}
}
