// Package sqlite implements the primary persistence path: a versioned
// SQLite database holding one record store per collection. Each store
// keeps entities as JSON documents keyed by id; every save is a
// full-replace inside one write transaction. On any database failure the
// gateway silently degrades to the fallback slot and reports the switch
// through the result's Fallback flag.
package sqlite

import (
	"database/sql"
	"fmt"
)

// SchemaVersion is the compiled-in database version. Persisted schema
// versions are never trusted; load and save always stamp this value.
const SchemaVersion = 2

// DBFileName is the database file created under the data directory.
const DBFileName = "followdesk.db"

// collectionStores lists the record stores in schema order. recycle_bin
// arrived in version 2.
var collectionStores = []string{"customers", "todos", "orders", "products", "recycle_bin"}

// Store DDL. Entities are stored as JSON documents; the id column mirrors
// the entity id for keyed replace.
const (
	createCustomers = `CREATE TABLE IF NOT EXISTS customers (
    id TEXT PRIMARY KEY,
    body TEXT NOT NULL
);`

	createTodos = `CREATE TABLE IF NOT EXISTS todos (
    id TEXT PRIMARY KEY,
    body TEXT NOT NULL
);`

	createOrders = `CREATE TABLE IF NOT EXISTS orders (
    id TEXT PRIMARY KEY,
    body TEXT NOT NULL
);`

	createProducts = `CREATE TABLE IF NOT EXISTS products (
    id TEXT PRIMARY KEY,
    body TEXT NOT NULL
);`

	createMeta = `CREATE TABLE IF NOT EXISTS meta (
    key TEXT PRIMARY KEY,
    body TEXT NOT NULL
);`

	createRecycleBin = `CREATE TABLE IF NOT EXISTS recycle_bin (
    id TEXT PRIMARY KEY,
    body TEXT NOT NULL
);`
)

// migrate brings the database to SchemaVersion. Each version gap runs
// once, and every step is check-before-create so repeated or partially
// applied upgrades never fail.
func migrate(db *sql.DB) error {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}

	if version < 1 {
		for _, ddl := range []string{createCustomers, createTodos, createOrders, createProducts, createMeta} {
			if _, err := db.Exec(ddl); err != nil {
				return fmt.Errorf("creating base stores: %w", err)
			}
		}
	}
	if version < 2 {
		if _, err := db.Exec(createRecycleBin); err != nil {
			return fmt.Errorf("creating recycle_bin store: %w", err)
		}
	}

	if version != SchemaVersion {
		if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", SchemaVersion)); err != nil {
			return fmt.Errorf("stamping schema version: %w", err)
		}
	}
	return nil
}
