// Copyright © 2025 Launchdeck contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: shell/shell.go
// Summary: The application root: owns the screen driver, the selection
// cell, the router and the layout, and drives the event loop.
// Usage: cmd/launchdeck builds nav bar and footer, registers the "/" page
// and calls Run.

package shell

import (
	"fmt"
	"log"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// PageContext carries the root-owned collaborators a page factory may bind
// to. The selection writer appears only here: pages are the one place
// allowed to mutate the selection.
type PageContext struct {
	Selection SelectionWriter
	Events    *EventDispatcher
}

// Options tune shell startup.
type Options struct {
	// QueryColors probes the terminal for its default colors before the
	// driver starts. Disable for tests and non-tty environments.
	QueryColors bool
	// FillStyle paints frame cells no region claims. Zero value means
	// white on black (or the queried terminal defaults).
	FillStyle tcell.Style
}

// Shell is the application root. It holds exactly one piece of shared UI
// state (the selection cell), one route table, and the layout that stacks
// nav bar, page and footer.
type Shell struct {
	driver     ScreenDriver
	dispatcher *EventDispatcher
	selection  *SelectionCell
	router     *Router
	layout     *Layout

	opts        Options
	fillStyle   tcell.Style
	defaultFg   tcell.Color
	defaultBg   tcell.Color
	refreshChan chan bool
	quit        chan struct{}
	stopOnce    sync.Once

	mu      sync.Mutex
	started map[App]bool
	running bool
}

// New assembles a shell over the given driver and chrome apps. Page routes
// are registered afterwards with RegisterPage.
func New(driver ScreenDriver, navbar, footer App, opts Options) *Shell {
	s := &Shell{
		driver:      driver,
		dispatcher:  NewEventDispatcher(),
		selection:   NewSelectionCell(),
		router:      NewRouter(),
		opts:        opts,
		fillStyle:   opts.FillStyle,
		defaultFg:   tcell.ColorWhite,
		defaultBg:   tcell.ColorBlack,
		refreshChan: make(chan bool, 1),
		quit:        make(chan struct{}),
		started:     make(map[App]bool),
	}
	s.layout = NewLayout(navbar, footer)
	s.attach(navbar)
	s.attach(footer)
	return s
}

// RegisterPage adds a route. The factory receives the root-owned
// collaborators; it runs once, on first navigation to the path.
func (s *Shell) RegisterPage(path string, factory func(PageContext) (App, error)) error {
	if factory == nil {
		return fmt.Errorf("register %q: nil page factory", path)
	}
	ctx := PageContext{Selection: s.selection, Events: s.dispatcher}
	return s.router.Register(path, func() (App, error) {
		return factory(ctx)
	})
}

// Navigate switches the layout's middle region to the page for path.
// Callers are the main goroutine before Run, or the event goroutine after
// (the nav bar's home link); the layout is confined to those.
func (s *Shell) Navigate(path string) error {
	page, err := s.router.Navigate(path)
	if err != nil {
		return err
	}

	s.layout.SetPage(page)
	s.attach(page)

	s.mu.Lock()
	running := s.running
	s.mu.Unlock()
	if running {
		s.startApp(page)
	}
	s.requestRefresh()
	return nil
}

// Selection exposes the read face of the selection cell.
func (s *Shell) Selection() SelectionReader { return s.selection }

// Dispatcher exposes the event dispatcher for backend reporters.
func (s *Shell) Dispatcher() *EventDispatcher { return s.dispatcher }

// DefaultColors returns the terminal defaults discovered at startup.
func (s *Shell) DefaultColors() (fg, bg tcell.Color) {
	return s.defaultFg, s.defaultBg
}

// attach wires an app into the shell's plumbing: refresh notification,
// event listening and selection observation. Idempotent per app.
func (s *Shell) attach(app App) {
	if app == nil {
		return
	}
	app.SetRefreshNotifier(s.refreshChan)
	if l, ok := app.(Listener); ok {
		s.dispatcher.Subscribe(l)
	}
	if obs, ok := app.(SelectionObserver); ok {
		s.selection.Subscribe(obs)
	}
}

// startApp launches the app's Run loop once.
func (s *Shell) startApp(app App) {
	if app == nil {
		return
	}
	s.mu.Lock()
	if s.started[app] {
		s.mu.Unlock()
		return
	}
	s.started[app] = true
	s.mu.Unlock()

	go func() {
		if err := app.Run(); err != nil {
			log.Printf("Shell: app %q exited with error: %v", app.GetTitle(), err)
		}
	}()
}

// Run initializes the driver and processes events until Stop. It owns the
// calling goroutine; input polling runs on a second one.
func (s *Shell) Run() error {
	if s.opts.QueryColors {
		fg, bg, err := queryDefaultColors()
		if err != nil {
			debugLog.Printf("Shell: default color query failed: %v", err)
		}
		s.defaultFg, s.defaultBg = fg, bg
		if s.fillStyle == (tcell.Style{}) {
			s.fillStyle = tcell.StyleDefault.Foreground(fg).Background(bg)
		}
	}
	if s.fillStyle == (tcell.Style{}) {
		s.fillStyle = tcell.StyleDefault.Foreground(s.defaultFg).Background(s.defaultBg)
	}

	if err := s.driver.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer s.driver.Fini()

	s.driver.SetStyle(s.fillStyle)
	s.driver.EnableMouse()
	s.driver.HideCursor()

	s.mu.Lock()
	s.running = true
	s.mu.Unlock()

	s.startApp(s.layout.navbar)
	s.startApp(s.layout.footer)
	if page := s.layout.Page(); page != nil {
		s.startApp(page)
	}

	w, h := s.driver.Size()
	s.layout.Recalculate(w, h)
	s.draw()

	eventChan := make(chan tcell.Event, 10)
	go func() {
		for {
			ev := s.driver.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-s.quit:
				return
			}
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			s.handleEvent(ev)
		case <-s.refreshChan:
			s.draw()
		case <-s.quit:
			s.stopApps()
			return nil
		}
	}
}

// Stop shuts the event loop down. Safe to call more than once.
func (s *Shell) Stop() {
	s.stopOnce.Do(func() {
		close(s.quit)
	})
}

func (s *Shell) stopApps() {
	s.mu.Lock()
	apps := make([]App, 0, len(s.started))
	for app := range s.started {
		apps = append(apps, app)
	}
	s.mu.Unlock()
	for _, app := range apps {
		app.Stop()
	}
}

func (s *Shell) handleEvent(ev tcell.Event) {
	switch tev := ev.(type) {
	case *tcell.EventKey:
		if tev.Key() == tcell.KeyCtrlC || tev.Key() == tcell.KeyCtrlQ {
			s.Stop()
			return
		}
		s.layout.DispatchKey(tev)
		s.requestRefresh()
	case *tcell.EventMouse:
		s.layout.DispatchMouse(tev)
	case *tcell.EventResize:
		w, h := tev.Size()
		s.layout.Recalculate(w, h)
		s.draw()
	}
}

// requestRefresh schedules a redraw without blocking the caller.
func (s *Shell) requestRefresh() {
	select {
	case s.refreshChan <- true:
	default:
	}
}

// draw composes the frame and blits it to the driver. Wide runes occupy two
// columns; the cell behind them is skipped.
func (s *Shell) draw() {
	frame := s.layout.Compose(s.fillStyle)

	for y, row := range frame {
		for x := 0; x < len(row); x++ {
			c := row[x]
			s.driver.SetContent(x, y, c.Ch, nil, c.Style)
			if runewidth.RuneWidth(c.Ch) == 2 {
				x++
			}
		}
	}
	s.driver.Show()
}
