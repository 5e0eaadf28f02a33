// Copyright © 2025 Launchdeck contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: catalog/sqlite.go
// Summary: Read-only SQLite instance source.
// Usage: The backend launcher maintains instances.db; the shell only
// queries it. The provider registers itself and activates when
// Options.InstanceDB is set.

package catalog

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"

	_ "modernc.org/sqlite"
)

// instanceDBSchemaVersion is the database layout this source understands.
const instanceDBSchemaVersion = 1

const instanceQuery = `
	SELECT id, display_name, description, icon, kind, loader,
	       game_version, tags, manifest
	FROM instances
	ORDER BY display_name`

func init() {
	RegisterSourceProvider(func(c *Catalog) Source {
		path := c.Options().InstanceDB
		if path == "" {
			return nil
		}
		db, err := OpenInstanceDB(path)
		if err != nil {
			log.Printf("Catalog: instance db unavailable: %v", err)
			return nil
		}
		return db
	})
}

// InstanceDB reads instances from a SQLite database maintained by the
// backend. It never writes.
type InstanceDB struct {
	db   *sql.DB
	path string
}

// OpenInstanceDB opens the database at path in query-only mode and
// verifies its schema version.
func OpenInstanceDB(path string) (*InstanceDB, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("instance db: %w", err)
	}

	dsn := path + "?_pragma=query_only(1)&_pragma=busy_timeout(3000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open instance db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to instance db: %w", err)
	}

	var version int
	row := db.QueryRow("SELECT version FROM schema_version LIMIT 1")
	if err := row.Scan(&version); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to read instance db schema version: %w", err)
	}
	if version != instanceDBSchemaVersion {
		db.Close()
		return nil, fmt.Errorf("unsupported instance db schema version %d (want %d)",
			version, instanceDBSchemaVersion)
	}

	return &InstanceDB{db: db, path: path}, nil
}

// Name implements Source.
func (s *InstanceDB) Name() string { return "sqlite" }

// Instances implements Source.
func (s *InstanceDB) Instances() ([]*Instance, error) {
	rows, err := s.db.Query(instanceQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query instances: %w", err)
	}
	defer rows.Close()

	var instances []*Instance
	for rows.Next() {
		var (
			inst              Instance
			description, icon sql.NullString
			kind, loader      sql.NullString
			gameVersion, tags sql.NullString
			manifest          []byte
		)
		err := rows.Scan(&inst.ID, &inst.DisplayName, &description, &icon,
			&kind, &loader, &gameVersion, &tags, &manifest)
		if err != nil {
			return nil, fmt.Errorf("failed to scan instance row: %w", err)
		}
		inst.Description = description.String
		inst.Icon = icon.String
		inst.Kind = kind.String
		inst.Loader = loader.String
		inst.GameVersion = gameVersion.String
		if tags.String != "" {
			if err := json.Unmarshal([]byte(tags.String), &inst.Tags); err != nil {
				log.Printf("Catalog: bad tags for %s: %v", inst.ID, err)
			}
		}
		inst.Manifest = manifest
		inst.Path = s.path
		if err := inst.Validate(); err != nil {
			log.Printf("Catalog: skipping db row: %v", err)
			continue
		}
		instances = append(instances, &inst)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read instances: %w", err)
	}
	return instances, nil
}

// Close implements Source.
func (s *InstanceDB) Close() error {
	return s.db.Close()
}
