// Copyright © 2025 Launchdeck contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/launchpage/launchpage.go
// Summary: The instance chooser page: icon tiles, cursor, manifest preview.
// Usage: Registered on "/"; the only component holding the selection
// writer. Activating an instance selects it, activating the selected one
// clears the selection.

package launchpage

import (
	"log"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/launchdeck/catalog"
	"github.com/framegrace/launchdeck/config"
	"github.com/framegrace/launchdeck/internal/theming"
	"github.com/framegrace/launchdeck/preview"
	"github.com/framegrace/launchdeck/shell"
	"github.com/framegrace/launchdeck/uikit/adapter"
	"github.com/framegrace/launchdeck/uikit/core"
	"github.com/framegrace/launchdeck/uikit/icon"
	"github.com/framegrace/launchdeck/uikit/widgets"
)

const appName = "launchpage"

// Compile-time interface checks
var _ shell.App = (*Page)(nil)
var _ shell.MouseHandler = (*Page)(nil)
var _ shell.Listener = (*Page)(nil)
var _ shell.SelectionObserver = (*Page)(nil)

// Page displays catalog instances as icon tiles and owns the selection
// writer. The cursor (keyboard position) is page-local state; the
// selection lives in the shell's cell and comes back in through
// SelectionChanged like for every other observer.
type Page struct {
	*adapter.UIApp

	catalog *catalog.Catalog
	reader  shell.SelectionReader
	writer  shell.SelectionWriter

	mu            sync.RWMutex
	instances     []*catalog.Instance
	cursor        int
	scroll        int
	selectedID    string
	hasSelection  bool
	reloadPending bool

	built    bool
	bg       *widgets.Pane
	hint     *widgets.Label
	buttons  []*widgets.IconButton
	names    []*widgets.Label
	details  []*widgets.Label
	detail   *widgets.Border
	manifest *manifestView

	tileSize      int
	tileGap       int
	previewHeight int
	showPreview   bool
	tileSpec      core.StyleSpec

	width, height int
}

// New creates the launch page over the given catalog. The reader is
// consulted on activation (toggle semantics); the writer is the single
// mutation path for the selection.
func New(cat *catalog.Catalog, reader shell.SelectionReader, writer shell.SelectionWriter) *Page {
	cfg := config.App(appName)
	p := &Page{
		catalog:       cat,
		reader:        reader,
		writer:        writer,
		tileSize:      cfg.GetInt(appName, "tile_size", 8),
		tileGap:       cfg.GetInt(appName, "tile_gap", 2),
		showPreview:   cfg.GetBool(appName, "show_preview", true),
		previewHeight: cfg.GetInt(appName, "preview_height", 12),
	}
	p.tileSpec = core.StyleSpec{
		Color:         cfg.GetString("launchpage.colors", "tile", "bg.raised"),
		SelectedColor: cfg.GetString("launchpage.colors", "tile_selected", "accent.primary"),
		Size:          p.tileSize,
	}

	ui := core.NewUIManager()
	p.UIApp = adapter.NewUIApp("Launch Page", ui)

	p.loadInstances()

	// Note: UI will be built on first Resize() call

	return p
}

// loadInstances fetches the current instance list from the catalog.
func (p *Page) loadInstances() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.catalog == nil {
		log.Printf("LaunchPage: No catalog available")
		p.instances = nil
		return
	}
	p.instances = p.catalog.List()
	p.clampCursorLocked()
	log.Printf("LaunchPage: Loaded %d instance(s)", len(p.instances))
}

func (p *Page) clampCursorLocked() {
	if p.cursor >= len(p.instances) {
		p.cursor = len(p.instances) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

// buildUILocked constructs the widget tree.
// Assumes p.mu is held; runs on the event goroutine only.
func (p *Page) buildUILocked() {
	ui := p.UI()
	tm := theming.ForApp(appName)
	bgColor := tm.GetSemanticColor("bg.base")

	p.bg = widgets.NewPane()
	p.bg.Style = tcell.StyleDefault.Background(bgColor)
	ui.AddWidget(p.bg)

	p.buttons = nil
	p.names = nil
	p.details = nil
	p.hint = nil

	if len(p.instances) == 0 {
		p.hint = widgets.NewLabel("No instances found. Add one under the catalog directory.")
		p.hint.Style = tcell.StyleDefault.
			Foreground(tm.GetSemanticColor("text.muted")).Background(bgColor)
		ui.AddWidget(p.hint)
	}

	for _, inst := range p.instances {
		inst := inst
		btn := widgets.NewIconButton(icon.Named(inst.Icon), p.tileSpec)
		btn.Selected = p.hasSelection && inst.ID == p.selectedID
		btn.OnClick = func(tcell.Event) { p.clickTile(inst.ID) }
		p.buttons = append(p.buttons, btn)
		ui.AddWidget(btn)

		name := widgets.NewLabel(inst.DisplayName)
		p.names = append(p.names, name)
		ui.AddWidget(name)

		detail := widgets.NewLabel(detailLine(inst))
		p.details = append(p.details, detail)
		ui.AddWidget(detail)
	}

	if p.showPreview {
		p.manifest = newManifestView(tm)
		p.detail = widgets.NewBorder()
		p.detail.Style = tcell.StyleDefault.
			Foreground(tm.GetColor("ui", "border_fg", tcell.ColorGray)).
			Background(bgColor)
		p.detail.SetChild(p.manifest)
		ui.AddWidget(p.detail)
	}

	if p.cursor < len(p.buttons) {
		ui.Focus(p.buttons[p.cursor])
	}

	p.built = true
	p.updateCursorLocked()
	p.updatePreviewLocked()
}

// detailLine is the second label row: loader, version and kind.
func detailLine(inst *catalog.Instance) string {
	parts := make([]string, 0, 3)
	if inst.Loader != "" {
		parts = append(parts, inst.Loader)
	}
	if inst.GameVersion != "" {
		parts = append(parts, inst.GameVersion)
	}
	if inst.Kind != "" {
		parts = append(parts, inst.Kind)
	}
	if len(parts) == 0 {
		return inst.Source
	}
	return strings.Join(parts, " · ")
}

// updateCursorLocked restyles the name labels so the cursor row stands
// out. The cursor is not the selection; that shows on the tiles.
func (p *Page) updateCursorLocked() {
	tm := theming.ForApp(appName)
	bg := tm.GetSemanticColor("bg.base")
	normalFg := tm.GetSemanticColor("text.primary")
	cursorFg := tm.GetSemanticColor("accent.primary")
	mutedFg := tm.GetSemanticColor("text.muted")

	for i := range p.names {
		if i == p.cursor {
			p.names[i].Style = tcell.StyleDefault.Foreground(cursorFg).Background(bg).Bold(true)
		} else {
			p.names[i].Style = tcell.StyleDefault.Foreground(normalFg).Background(bg)
		}
		p.details[i].Style = tcell.StyleDefault.Foreground(mutedFg).Background(bg)
	}
}

// updatePreviewLocked feeds the selected instance's manifest to the
// detail pane. Assumes p.mu is held.
func (p *Page) updatePreviewLocked() {
	if p.manifest == nil {
		return
	}
	if !p.hasSelection {
		p.manifest.SetLines(nil)
		return
	}
	var inst *catalog.Instance
	for _, candidate := range p.instances {
		if candidate.ID == p.selectedID {
			inst = candidate
			break
		}
	}
	if inst == nil || len(inst.Manifest) == 0 {
		p.manifest.SetLines(nil)
		return
	}
	p.manifest.SetLines(preview.Render(inst.Manifest, preview.Options{
		Filename: filepath.Base(inst.Path),
		Base:     p.manifest.style,
		MaxLines: p.previewHeight,
	}))
}

// Resize builds the UI on first call and lays the widgets out.
func (p *Page) Resize(cols, rows int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.width, p.height = cols, rows

	if !p.built && cols > 0 && rows > 0 {
		p.buildUILocked()
	}

	p.UIApp.Resize(cols, rows)
	p.layoutLocked()
}

// layoutLocked positions every widget for the current size, keeping the
// cursor row scrolled into view. Assumes p.mu is held.
func (p *Page) layoutLocked() {
	if !p.built || p.width <= 0 || p.height <= 0 {
		return
	}

	p.bg.SetPosition(0, 0)
	p.bg.Resize(p.width, p.height)

	previewH := 0
	if p.showPreview && p.detail != nil {
		previewH = min(p.previewHeight, p.height/2)
		if previewH < 3 {
			previewH = 0
		}
	}
	listH := p.height - previewH

	if p.hint != nil {
		p.hint.SetPosition(2, 2)
		p.hint.Resize(max(0, p.width-4), 1)
	}

	step := p.tileSize + p.tileGap
	visible := max(1, (listH-2)/step)
	if p.cursor < p.scroll {
		p.scroll = p.cursor
	} else if p.cursor >= p.scroll+visible {
		p.scroll = p.cursor - visible + 1
	}
	if p.scroll < 0 {
		p.scroll = 0
	}

	textX := 2 + p.tileSize + 2
	for i, btn := range p.buttons {
		y := 2 + (i-p.scroll)*step
		btn.SetPosition(2, y)

		nameY := y + p.tileSize/2 - 1
		p.names[i].SetPosition(textX, nameY)
		p.names[i].Resize(max(0, p.width-textX-2), 1)
		p.details[i].SetPosition(textX, nameY+1)
		p.details[i].Resize(max(0, p.width-textX-2), 1)
	}

	if p.detail != nil {
		if previewH > 0 {
			p.detail.SetPosition(0, listH)
			p.detail.Resize(p.width, previewH)
		} else {
			p.detail.Resize(0, 0)
		}
	}
}

// HandleKey handles cursor movement and activation.
func (p *Page) HandleKey(ev *tcell.EventKey) {
	p.mu.Lock()

	switch ev.Key() {
	case tcell.KeyUp:
		if p.cursor > 0 {
			p.cursor--
			p.focusCursorLocked()
		}
		p.mu.Unlock()
		return

	case tcell.KeyDown:
		if p.cursor < len(p.instances)-1 {
			p.cursor++
			p.focusCursorLocked()
		}
		p.mu.Unlock()
		return

	case tcell.KeyHome:
		if len(p.instances) > 0 && p.cursor != 0 {
			p.cursor = 0
			p.focusCursorLocked()
		}
		p.mu.Unlock()
		return

	case tcell.KeyEnd:
		if n := len(p.instances); n > 0 && p.cursor != n-1 {
			p.cursor = n - 1
			p.focusCursorLocked()
		}
		p.mu.Unlock()
		return

	case tcell.KeyEnter:
		var id string
		if p.cursor >= 0 && p.cursor < len(p.instances) {
			id = p.instances[p.cursor].ID
		}
		// Release before writing: the cell notifies observers (this
		// page included) synchronously within the call.
		p.mu.Unlock()
		if id != "" {
			p.activate(id)
		}
		return
	}

	p.mu.Unlock()

	// Pass to UI manager for other keys (Tab cycling, space on a tile)
	p.UIApp.HandleKey(ev)
}

// focusCursorLocked moves widget focus and layout to the cursor row.
func (p *Page) focusCursorLocked() {
	if p.cursor < len(p.buttons) {
		p.UI().Focus(p.buttons[p.cursor])
	}
	p.updateCursorLocked()
	p.layoutLocked()
}

// clickTile moves the cursor to an activated tile, then toggles its
// selection. Runs under the UI manager's mutex (widget OnClick), so it
// must not call back into the manager; focus already followed the click.
func (p *Page) clickTile(id string) {
	p.mu.Lock()
	for i, inst := range p.instances {
		if inst.ID == id {
			p.cursor = i
			break
		}
	}
	p.updateCursorLocked()
	p.layoutLocked()
	p.mu.Unlock()

	p.activate(id)
}

// activate toggles the selection for an instance. Never called with
// p.mu held: the selection cell notifies synchronously and
// SelectionChanged takes the lock back. Safe under the UI manager's
// mutex (tile OnClick), which is why it reads the cell instead of the
// page's own copy.
func (p *Page) activate(id string) {
	if p.writer == nil {
		return
	}
	var cur string
	var ok bool
	if p.reader != nil {
		cur, ok = p.reader.Selected()
	}
	if ok && cur == id {
		log.Printf("LaunchPage: Clearing selection '%s'", id)
		p.writer.Clear()
		return
	}
	log.Printf("LaunchPage: Selecting instance '%s'", id)
	p.writer.Select(id)
}

// SelectionChanged implements shell.SelectionObserver. It may run under
// the UI manager's mutex (mouse activation), so it only touches page
// state and the dirty list.
func (p *Page) SelectionChanged(id string, ok bool) {
	p.mu.Lock()
	p.selectedID, p.hasSelection = id, ok
	for i, btn := range p.buttons {
		btn.Selected = ok && p.instances[i].ID == id
	}
	p.updatePreviewLocked()
	p.mu.Unlock()

	p.UI().InvalidateAll()
}

// OnEvent implements shell.Listener. Catalog reloads arrive on the
// watcher goroutine; the rebuild is deferred to the next Render so all
// widget work stays on the event goroutine.
func (p *Page) OnEvent(event shell.Event) {
	if event.Type != shell.EventCatalogReloaded {
		return
	}
	p.mu.Lock()
	p.reloadPending = true
	p.mu.Unlock()
	p.UI().InvalidateAll()
}

// Render applies any pending catalog reload, then renders the surface.
func (p *Page) Render() [][]shell.Cell {
	p.mu.Lock()
	if p.reloadPending {
		p.reloadPending = false
		if p.catalog != nil {
			p.instances = p.catalog.List()
		}
		p.clampCursorLocked()
		if p.built {
			p.UI().RemoveAllWidgets()
			p.buildUILocked()
			p.layoutLocked()
		}
		log.Printf("LaunchPage: Rebuilt after catalog reload, %d instance(s)", len(p.instances))
	}
	p.mu.Unlock()

	return p.UIApp.Render()
}

// GetTitle returns the page title.
func (p *Page) GetTitle() string {
	return "Launch Page"
}
