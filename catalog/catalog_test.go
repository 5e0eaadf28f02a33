// Copyright © 2025 Launchdeck contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: catalog/catalog_test.go
// Summary: Tests for manifest loading, scanning and source merging.

package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeInstance(t *testing.T, root, dir, name, content string) {
	t.Helper()
	path := filepath.Join(root, dir)
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(path, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
}

type fakeSource struct {
	name      string
	instances []*Instance
	err       error
	closed    bool
}

func (f *fakeSource) Name() string { return f.name }

func (f *fakeSource) Instances() ([]*Instance, error) { return f.instances, f.err }

func (f *fakeSource) Close() error { f.closed = true; return nil }

func TestScanLoadsManifests(t *testing.T) {
	root := t.TempDir()
	writeInstance(t, root, "vanilla", "instance.json",
		`{"id":"vanilla-1.21","display_name":"Vanilla 1.21","icon":"game"}`)
	writeInstance(t, root, "fabric", "instance.yaml",
		"id: fabric-dev\ndisplay_name: Fabric Dev\nloader: fabric\ntags: [dev, fabric]\n")
	writeInstance(t, root, "broken", "instance.json", `{"id":`)
	if err := os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	c := New(Options{Dir: root})
	if err := c.Scan(root); err != nil {
		t.Fatalf("scan: %v", err)
	}

	if got := c.Count(); got != 2 {
		t.Fatalf("expected 2 instances, got %d", got)
	}
	list := c.List()
	if list[0].ID != "fabric-dev" || list[1].ID != "vanilla-1.21" {
		t.Errorf("expected sort by display name, got %s, %s", list[0].ID, list[1].ID)
	}
	if list[0].Loader != "fabric" || len(list[0].Tags) != 2 {
		t.Errorf("yaml manifest not decoded: %+v", list[0])
	}
	if list[0].Source != "dir" {
		t.Errorf("expected source dir, got %q", list[0].Source)
	}
	if len(list[1].Manifest) == 0 {
		t.Error("expected raw manifest bytes to be kept")
	}
}

func TestLoadInstanceDefaultsDisplayName(t *testing.T) {
	root := t.TempDir()
	writeInstance(t, root, "bare", "instance.json", `{"id":"bare"}`)

	inst, err := LoadInstance(filepath.Join(root, "bare"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if inst.DisplayName != "bare" {
		t.Errorf("expected display name to default to id, got %q", inst.DisplayName)
	}
}

func TestLoadInstanceRequiresID(t *testing.T) {
	root := t.TempDir()
	writeInstance(t, root, "anon", "instance.json", `{"display_name":"Anon"}`)

	if _, err := LoadInstance(filepath.Join(root, "anon")); err == nil {
		t.Fatal("expected error for manifest without id")
	}
}

func TestLoadInstanceMissingManifest(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "empty"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if _, err := LoadInstance(filepath.Join(root, "empty")); err == nil {
		t.Fatal("expected error for directory without manifest")
	}
}

func TestGetReturnsErrNotFound(t *testing.T) {
	c := New(Options{})
	if _, err := c.Get("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestScannedShadowsSourced(t *testing.T) {
	root := t.TempDir()
	writeInstance(t, root, "vanilla", "instance.json",
		`{"id":"vanilla-1.21","display_name":"Vanilla (local)"}`)

	c := New(Options{Dir: root})
	c.AddSource(&fakeSource{name: "db", instances: []*Instance{
		{ID: "vanilla-1.21", DisplayName: "Vanilla (db)"},
		{ID: "server-main", DisplayName: "Main Server", Kind: "server"},
	}})
	if err := c.Reload(); err != nil {
		t.Fatalf("reload: %v", err)
	}

	if got := c.Count(); got != 2 {
		t.Fatalf("expected 2 instances after shadowing, got %d", got)
	}
	inst, err := c.Get("vanilla-1.21")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if inst.DisplayName != "Vanilla (local)" {
		t.Errorf("expected scanned instance to shadow sourced, got %q", inst.DisplayName)
	}
	srv, err := c.Get("server-main")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if srv.Source != "db" {
		t.Errorf("expected sourced instance tagged with source name, got %q", srv.Source)
	}
}

func TestReloadSurvivesSourceError(t *testing.T) {
	root := t.TempDir()
	writeInstance(t, root, "vanilla", "instance.json", `{"id":"vanilla-1.21"}`)

	c := New(Options{Dir: root})
	c.AddSource(&fakeSource{name: "db", err: errors.New("locked")})
	if err := c.Reload(); err != nil {
		t.Fatalf("expected reload to survive source error, got %v", err)
	}
	if got := c.Count(); got != 1 {
		t.Errorf("expected 1 instance, got %d", got)
	}
}

func TestReloadRefreshesSources(t *testing.T) {
	src := &fakeSource{name: "db", instances: []*Instance{{ID: "a", DisplayName: "A"}}}
	c := New(Options{})
	c.AddSource(src)

	if err := c.Reload(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got := c.Count(); got != 1 {
		t.Fatalf("expected 1 instance, got %d", got)
	}

	src.instances = []*Instance{{ID: "a", DisplayName: "A"}, {ID: "b", DisplayName: "B"}}
	if err := c.Reload(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got := c.Count(); got != 2 {
		t.Errorf("expected 2 instances after refresh, got %d", got)
	}
}

func TestCloseClosesSources(t *testing.T) {
	src := &fakeSource{name: "db"}
	c := New(Options{})
	c.AddSource(src)

	if err := c.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if !src.closed {
		t.Error("expected source to be closed")
	}
}
