// Copyright © 2025 Launchdeck contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/launchfooter/launchfooter.go
// Summary: Bottom status bar showing selection, run state and launch output.
// Usage: Bound to the selection cell as an observer and to the dispatcher
// as a listener; the backend's run reports end up here.

package launchfooter

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/launchdeck/config"
	"github.com/framegrace/launchdeck/shell"
	"github.com/framegrace/launchdeck/uikit/theme"
)

// Powerline characters for the selection pill.
// Note: These require a Powerline-patched font or a Nerd Font to render correctly.
const (
	leftTabSeparator  = '' // Left half circle thick separator
	rightTabSeparator = '' // Right half circle thick separator
	noSelectionText   = "no selection"
)

// App is the launch footer.
type App struct {
	mu            sync.RWMutex
	width, height int
	refreshChan   chan<- bool
	stop          chan struct{}

	// Selection state
	selectedID   string
	hasSelection bool
	displayName  string

	// Launch state from the dispatcher
	runState shell.RunState
	progress string
	output   string

	showProgress bool
	showOutput   bool

	// ResolveName maps an instance id to its display name. Without it
	// the id is shown as-is.
	ResolveName func(id string) string
}

var _ shell.App = (*App)(nil)
var _ shell.Listener = (*App)(nil)
var _ shell.SelectionObserver = (*App)(nil)

// New creates the footer. Segment visibility comes from the system
// config's footer section.
func New() *App {
	cfg := config.System()
	return &App{
		stop:         make(chan struct{}),
		showProgress: cfg.GetBool("footer", "show_progress", true),
		showOutput:   cfg.GetBool("footer", "show_output", true),
	}
}

func (a *App) SetRefreshNotifier(refreshChan chan<- bool) {
	a.refreshChan = refreshChan
}

func (a *App) Run() error {
	<-a.stop
	return nil
}

func (a *App) Stop() {
	close(a.stop)
}

func (a *App) Resize(cols, rows int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.width, a.height = cols, rows
}

func (a *App) GetTitle() string {
	return "Launch Footer"
}

func (a *App) HandleKey(ev *tcell.EventKey) {}

// SelectionChanged implements shell.SelectionObserver. It runs on the
// mutating goroutine, synchronously within the selection write.
func (a *App) SelectionChanged(id string, ok bool) {
	name := ""
	if ok {
		name = a.resolveName(id)
	}

	a.mu.Lock()
	a.selectedID = id
	a.hasSelection = ok
	a.displayName = name
	// The new instance's run state is unknown until the backend reports.
	a.runState = shell.RunStateIdle
	a.mu.Unlock()

	a.requestRefresh()
}

func (a *App) resolveName(id string) string {
	if a.ResolveName != nil {
		if name := a.ResolveName(id); name != "" {
			return name
		}
	}
	return id
}

// OnEvent implements shell.Listener.
func (a *App) OnEvent(event shell.Event) {
	switch event.Type {
	case shell.EventRunStateChanged:
		payload, ok := event.Payload.(shell.RunStatePayload)
		if !ok {
			return
		}
		a.mu.Lock()
		if a.hasSelection && payload.Instance == a.selectedID {
			a.runState = payload.State
		}
		a.mu.Unlock()
	case shell.EventLaunchProgress:
		payload, ok := event.Payload.(shell.ProgressPayload)
		if !ok {
			return
		}
		a.mu.Lock()
		a.progress = fmt.Sprintf("%d/%d %s", payload.Current, payload.Total,
			strings.TrimSpace(payload.Message))
		a.mu.Unlock()
	case shell.EventLaunchOutput:
		payload, ok := event.Payload.(shell.OutputPayload)
		if !ok {
			return
		}
		a.mu.Lock()
		a.output = strings.TrimSpace(payload.Text)
		a.mu.Unlock()
	case shell.EventCatalogReloaded:
		a.mu.RLock()
		id, ok := a.selectedID, a.hasSelection
		a.mu.RUnlock()
		if ok {
			name := a.resolveName(id)
			a.mu.Lock()
			a.displayName = name
			a.mu.Unlock()
		}
	default:
		return
	}
	a.requestRefresh()
}

func (a *App) requestRefresh() {
	if a.refreshChan != nil {
		select {
		case a.refreshChan <- true:
		default:
		}
	}
}

func (a *App) Render() [][]shell.Cell {
	a.mu.RLock()
	defer a.mu.RUnlock()

	buf := make([][]shell.Cell, a.height)
	for i := range buf {
		buf[i] = make([]shell.Cell, a.width)
	}
	if a.height == 0 || a.width == 0 {
		return buf
	}

	tm := theme.Get()
	barBg := tm.GetSemanticColor("bg.mantle").TrueColor()
	barFg := tm.GetSemanticColor("text.primary").TrueColor()
	styleBase := tcell.StyleDefault.Background(barBg).Foreground(barFg)

	// Selection pill: accent when something is selected, sunken when not.
	pillBg := tm.GetSemanticColor("bg.crust").TrueColor()
	pillFg := tm.GetSemanticColor("text.muted").TrueColor()
	pillText := noSelectionText
	if a.hasSelection {
		pillBg = tm.GetSemanticColor("accent.primary").TrueColor()
		pillFg = tm.GetSemanticColor("text.inverse").TrueColor()
		pillText = a.displayName
	}
	stylePill := tcell.StyleDefault.Background(pillBg).Foreground(pillFg)
	styleCap := tcell.StyleDefault.Background(barBg).Foreground(pillBg)

	for i := 0; i < a.width; i++ {
		buf[0][i] = shell.Cell{Ch: ' ', Style: styleBase}
	}

	// --- Left: selection pill ---
	col := 0
	put := func(r rune, st tcell.Style) {
		if col < a.width {
			buf[0][col] = shell.Cell{Ch: r, Style: st}
			col++
		}
	}
	put(leftTabSeparator, styleCap)
	for _, r := range " " + pillText + " " {
		put(r, stylePill)
	}
	put(rightTabSeparator, styleCap)
	leftEnd := col

	// --- Right: progress, or the latest output line ---
	rightStr := ""
	if a.showProgress && a.progress != "" {
		rightStr = fmt.Sprintf(" %s ", a.progress)
	} else if a.showOutput && a.output != "" {
		rightStr = fmt.Sprintf(" %s ", a.output)
	}
	rightCol := a.width - len([]rune(rightStr))
	if rightStr != "" && rightCol > leftEnd {
		i := 0
		for _, r := range rightStr {
			buf[0][rightCol+i] = shell.Cell{Ch: r, Style: styleBase}
			i++
		}
	} else {
		rightCol = a.width
	}

	// --- Middle: run state for the selected instance ---
	if a.hasSelection {
		stateFg := tm.GetSemanticColor("text.muted").TrueColor()
		switch a.runState {
		case shell.RunStatePreparing:
			stateFg = tm.GetSemanticColor("action.warn").TrueColor()
		case shell.RunStateRunning:
			stateFg = tm.GetSemanticColor("action.ok").TrueColor()
		}
		stateStyle := tcell.StyleDefault.Background(barBg).Foreground(stateFg)

		centerCol := leftEnd + 2
		for _, r := range a.runState.String() {
			if centerCol < a.width && centerCol < rightCol {
				buf[0][centerCol] = shell.Cell{Ch: r, Style: stateStyle}
				centerCol++
			}
		}
	}

	return buf
}
