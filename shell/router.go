// Copyright © 2025 Launchdeck contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: shell/router.go
// Summary: Path-to-page route table for the shell.
// Usage: The shell registers "/" for the launch page; the nav bar's home
// link navigates back to it.

package shell

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrNoRoute is returned when navigating to an unregistered path.
	ErrNoRoute = errors.New("no route")
	// ErrRouteExists is returned when registering a path twice.
	ErrRouteExists = errors.New("route already registered")
)

// PageFactory builds the page app for a route. It runs once, on first
// navigation; the constructed page is cached for the session.
type PageFactory func() (App, error)

type route struct {
	factory PageFactory
	page    App
}

// Router maps paths to pages. It holds no rendering state of its own; the
// shell hands the active page to the layout after every navigation.
type Router struct {
	mu      sync.RWMutex
	routes  map[string]*route
	current string
}

// NewRouter creates an empty route table.
func NewRouter() *Router {
	return &Router{routes: make(map[string]*route)}
}

// Register adds a route. Registering the same path twice is an error.
func (r *Router) Register(path string, factory PageFactory) error {
	if factory == nil {
		return fmt.Errorf("register %q: nil page factory", path)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.routes[path]; exists {
		return fmt.Errorf("%w: %s", ErrRouteExists, path)
	}
	r.routes[path] = &route{factory: factory}
	return nil
}

// Navigate makes path the current route, constructing its page on first
// visit. Unknown paths leave the current route untouched.
func (r *Router) Navigate(path string) (App, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rt, ok := r.routes[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoRoute, path)
	}
	if rt.page == nil {
		page, err := rt.factory()
		if err != nil {
			return nil, fmt.Errorf("build page for %s: %w", path, err)
		}
		rt.page = page
	}
	r.current = path
	return rt.page, nil
}

// Current returns the active path and its page, or "" and nil before the
// first navigation.
func (r *Router) Current() (string, App) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rt, ok := r.routes[r.current]
	if !ok {
		return "", nil
	}
	return r.current, rt.page
}

// Paths lists the registered paths, for diagnostics.
func (r *Router) Paths() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.routes))
	for p := range r.routes {
		out = append(out, p)
	}
	return out
}
