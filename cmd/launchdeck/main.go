// Copyright © 2025 Launchdeck contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/launchdeck/main.go
// Summary: Launchdeck entry point: loads config, opens the catalog and
// runs the shell with nav bar, launch page and footer.
// Usage: Run `launchdeck`, pick an instance, let the backend take over.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/launchdeck/apps/launchfooter"
	"github.com/framegrace/launchdeck/apps/launchpage"
	"github.com/framegrace/launchdeck/apps/navbar"
	"github.com/framegrace/launchdeck/catalog"
	"github.com/framegrace/launchdeck/config"
	"github.com/framegrace/launchdeck/shell"
	"github.com/framegrace/launchdeck/uikit/theme"
)

const version = "0.1.0"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	fs := flag.NewFlagSet("launchdeck", flag.ContinueOnError)

	configPath := fs.String("config", "", "System config file (default: $XDG_CONFIG_HOME/launchdeck/launchdeck.json)")
	catalogDir := fs.String("catalog", "", "Instance catalog directory (overrides config)")
	dbPath := fs.String("db", "", "Backend instance database (overrides config)")
	verbose := fs.Bool("verbose", false, "Enable verbose shell logging")
	showVersion := fs.Bool("version", false, "Print version and exit")

	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if *showVersion {
		fmt.Printf("launchdeck %s\n", version)
		return nil
	}

	shell.SetVerboseLogging(*verbose)

	if *configPath != "" {
		config.SetSystemPath(*configPath)
	}
	sys := config.System()
	if err := config.Err(); err != nil {
		log.Printf("Main: config load: %v", err)
	}
	theme.Configure(theme.ParseOverrides(sys["theme"]))

	paths, err := resolvePaths(sys, *catalogDir, *dbPath)
	if err != nil {
		return fmt.Errorf("resolve paths: %w", err)
	}
	if err := paths.EnsureCatalogDir(); err != nil {
		log.Printf("Main: create catalog dir: %v", err)
	}

	cat := catalog.New(catalog.Options{Dir: paths.CatalogDir, InstanceDB: paths.InstanceDB})
	defer cat.Close()
	catalog.RegisterSources(cat)
	if err := cat.Reload(); err != nil {
		log.Printf("Main: initial catalog load: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	driver := shell.NewTcellScreenDriver(screen)

	nav := navbar.New()
	footer := launchfooter.New()
	footer.ResolveName = func(id string) string {
		inst, err := cat.Get(id)
		if err != nil {
			return id
		}
		return inst.DisplayName
	}

	sh := shell.New(driver, nav, footer, shell.Options{QueryColors: true})
	nav.Home = func() {
		if err := sh.Navigate("/"); err != nil {
			log.Printf("Main: navigate home: %v", err)
		}
	}

	if err := sh.RegisterPage("/", func(ctx shell.PageContext) (shell.App, error) {
		return launchpage.New(cat, sh.Selection(), ctx.Selection), nil
	}); err != nil {
		return err
	}

	if paths.CatalogDir != "" && sys.GetBool("catalog", "watch", true) {
		debounce := time.Duration(sys.GetInt("catalog", "reload_debounce_ms", 250)) * time.Millisecond
		watcher, err := catalog.NewWatcher(paths.CatalogDir, debounce, func() {
			if err := cat.Reload(); err != nil {
				log.Printf("Main: catalog reload: %v", err)
				return
			}
			sh.Dispatcher().Broadcast(shell.Event{Type: shell.EventCatalogReloaded})
		})
		if err != nil {
			log.Printf("Main: catalog watcher unavailable: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	if err := sh.Navigate(sys.GetString("", "defaultPage", "/")); err != nil {
		return fmt.Errorf("open start page: %w", err)
	}

	return sh.Run()
}
