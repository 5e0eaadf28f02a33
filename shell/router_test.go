// Copyright © 2025 Launchdeck contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: shell/router_test.go
// Summary: Tests for the route table.

package shell

import (
	"errors"
	"testing"
)

func TestRouterNavigateBuildsPageOnce(t *testing.T) {
	r := NewRouter()
	builds := 0
	err := r.Register("/", func() (App, error) {
		builds++
		return newStubApp("page"), nil
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	p1, err := r.Navigate("/")
	if err != nil {
		t.Fatalf("Navigate failed: %v", err)
	}
	p2, err := r.Navigate("/")
	if err != nil {
		t.Fatalf("Second Navigate failed: %v", err)
	}

	if builds != 1 {
		t.Errorf("Expected factory to run once, ran %d times", builds)
	}
	if p1 != p2 {
		t.Error("Expected the cached page on repeat navigation")
	}
	if path, page := r.Current(); path != "/" || page != p1 {
		t.Errorf("Expected current (/, page), got (%q, %v)", path, page)
	}
}

func TestRouterDuplicateRegistrationFails(t *testing.T) {
	r := NewRouter()
	factory := func() (App, error) { return newStubApp("page"), nil }

	if err := r.Register("/", factory); err != nil {
		t.Fatalf("First Register failed: %v", err)
	}
	err := r.Register("/", factory)
	if !errors.Is(err, ErrRouteExists) {
		t.Errorf("Expected ErrRouteExists, got %v", err)
	}
}

func TestRouterUnknownPathFails(t *testing.T) {
	r := NewRouter()
	if err := r.Register("/", func() (App, error) { return newStubApp("page"), nil }); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if _, err := r.Navigate("/missing"); !errors.Is(err, ErrNoRoute) {
		t.Errorf("Expected ErrNoRoute, got %v", err)
	}

	// A failed navigation must not disturb the current route.
	if _, err := r.Navigate("/"); err != nil {
		t.Fatalf("Navigate failed: %v", err)
	}
	if _, err := r.Navigate("/missing"); !errors.Is(err, ErrNoRoute) {
		t.Errorf("Expected ErrNoRoute, got %v", err)
	}
	if path, _ := r.Current(); path != "/" {
		t.Errorf("Expected current path to stay /, got %q", path)
	}
}

func TestRouterFactoryErrorPropagates(t *testing.T) {
	r := NewRouter()
	boom := errors.New("boom")
	if err := r.Register("/", func() (App, error) { return nil, boom }); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if _, err := r.Navigate("/"); !errors.Is(err, boom) {
		t.Errorf("Expected factory error to propagate, got %v", err)
	}
}

func TestRouterCurrentBeforeNavigation(t *testing.T) {
	r := NewRouter()
	if path, page := r.Current(); path != "" || page != nil {
		t.Errorf("Expected empty current before navigation, got (%q, %v)", path, page)
	}
}
