package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"github.com/followdesk/followdesk/internal/fallback"
	"github.com/followdesk/followdesk/pkg/types"
)

// Human-readable status strings surfaced when the gateway degrades.
const (
	LoadFallbackStatus = "本地数据库不可用，当前使用本地兜底存储。"
	SaveFallbackStatus = "本地数据库不可用，已自动切换到本地兜底存储。"
)

// Gateway is the persistence gateway over SQLite with a JSON fallback
// slot. LoadState and SaveState never return errors: database failures
// degrade to the slot and surface only as Fallback flags.
type Gateway struct {
	mu     sync.Mutex
	dbPath string
	slot   *fallback.Slot
	log    *logrus.Entry
	db     *sql.DB
	now    func() time.Time
}

var _ types.Gateway = (*Gateway)(nil)

// Option adjusts gateway construction.
type Option func(*Gateway)

// WithDatabasePath overrides the database file location. The fallback
// slot stays under the data directory.
func WithDatabasePath(path string) Option {
	return func(g *Gateway) { g.dbPath = path }
}

// WithClock overrides the time source used for meta defaults.
func WithClock(now func() time.Time) Option {
	return func(g *Gateway) { g.now = now }
}

// NewGateway creates a gateway rooted at dataDir. Construction never
// fails; the database is opened lazily so an unusable environment only
// shows up as fallback results.
func NewGateway(dataDir string, logger *logrus.Logger, opts ...Option) *Gateway {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(os.Stderr)
	}
	g := &Gateway{
		dbPath: filepath.Join(dataDir, DBFileName),
		slot:   fallback.NewSlot(dataDir),
		log:    logger.WithField("component", "storage"),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ensureDB opens and migrates the database on first use. The caller must
// hold g.mu.
func (g *Gateway) ensureDB() (*sql.DB, error) {
	if g.db != nil {
		return g.db, nil
	}
	if err := os.MkdirAll(filepath.Dir(g.dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	db, err := sql.Open("sqlite", g.dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	g.db = db
	return db, nil
}

// LoadState reads all record stores in one read transaction. When the
// database is unusable the fallback slot serves the read instead.
func (g *Gateway) LoadState() types.LoadResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	state, err := g.loadPrimary()
	if err != nil {
		g.log.WithError(err).Warn("primary load failed, serving fallback slot")
		return types.LoadResult{
			State:    g.withDefaults(g.slot.Read()),
			Fallback: true,
			Status:   LoadFallbackStatus,
		}
	}
	return types.LoadResult{State: g.withDefaults(state)}
}

func (g *Gateway) loadPrimary() (types.PersistedState, error) {
	var state types.PersistedState

	db, err := g.ensureDB()
	if err != nil {
		return state, err
	}

	tx, err := db.Begin()
	if err != nil {
		return state, fmt.Errorf("beginning read transaction: %w", err)
	}
	defer tx.Rollback()

	if err := readStore(tx, "customers", &state.Customers); err != nil {
		return state, err
	}
	if err := readStore(tx, "todos", &state.Todos); err != nil {
		return state, err
	}
	if err := readStore(tx, "orders", &state.Orders); err != nil {
		return state, err
	}
	if err := readStore(tx, "products", &state.Products); err != nil {
		return state, err
	}
	if err := readStore(tx, "recycle_bin", &state.RecycleBin); err != nil {
		return state, err
	}

	var metaBody string
	err = tx.QueryRow(`SELECT body FROM meta WHERE key = 'app'`).Scan(&metaBody)
	switch {
	case err == sql.ErrNoRows:
		// First run: meta is stamped by withDefaults.
	case err != nil:
		return state, fmt.Errorf("reading meta: %w", err)
	default:
		if err := json.Unmarshal([]byte(metaBody), &state.Meta); err != nil {
			return state, fmt.Errorf("decoding meta: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return state, fmt.Errorf("committing read transaction: %w", err)
	}
	return state, nil
}

// readStore decodes every row body of one record store into out, which
// must be a pointer to a slice of the collection's entity type.
func readStore[T any](tx *sql.Tx, store string, out *[]T) error {
	rows, err := tx.Query(fmt.Sprintf("SELECT body FROM %s", store))
	if err != nil {
		return fmt.Errorf("reading %s: %w", store, err)
	}
	defer rows.Close()

	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return fmt.Errorf("scanning %s row: %w", store, err)
		}
		var entity T
		if err := json.Unmarshal([]byte(body), &entity); err != nil {
			return fmt.Errorf("decoding %s row: %w", store, err)
		}
		*out = append(*out, entity)
	}
	return rows.Err()
}

// SaveState replaces the whole database content with the snapshot in one
// write transaction, then mirrors the snapshot into the fallback slot so
// the slot stays warm even while the primary path is healthy.
func (g *Gateway) SaveState(state types.PersistedState) types.SaveResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.savePrimary(state); err != nil {
		g.log.WithError(err).Warn("primary save failed, writing fallback slot")
		if slotErr := g.slot.Write(state); slotErr != nil {
			g.log.WithError(slotErr).Error("fallback slot write failed")
		}
		return types.SaveResult{Fallback: true, Status: SaveFallbackStatus}
	}

	if err := g.slot.Write(state); err != nil {
		g.log.WithError(err).Warn("fallback mirror write failed")
	}
	return types.SaveResult{}
}

func (g *Gateway) savePrimary(state types.PersistedState) error {
	db, err := g.ensureDB()
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning write transaction: %w", err)
	}
	defer tx.Rollback()

	for _, store := range collectionStores {
		if _, err := tx.Exec(fmt.Sprintf("DELETE FROM %s", store)); err != nil {
			return fmt.Errorf("clearing %s: %w", store, err)
		}
	}

	if err := writeStore(tx, "customers", state.Customers, func(c types.Customer) string { return c.ID }); err != nil {
		return err
	}
	if err := writeStore(tx, "todos", state.Todos, func(t types.Todo) string { return t.ID }); err != nil {
		return err
	}
	if err := writeStore(tx, "orders", state.Orders, func(o types.Order) string { return o.ID }); err != nil {
		return err
	}
	if err := writeStore(tx, "products", state.Products, func(p types.Product) string { return p.ID }); err != nil {
		return err
	}
	if err := writeStore(tx, "recycle_bin", state.RecycleBin, func(r types.RecycleBinItem) string { return r.ID }); err != nil {
		return err
	}

	metaBody, err := json.Marshal(state.Meta)
	if err != nil {
		return fmt.Errorf("encoding meta: %w", err)
	}
	if _, err := tx.Exec(
		`INSERT INTO meta (key, body) VALUES ('app', ?) ON CONFLICT(key) DO UPDATE SET body = excluded.body`,
		string(metaBody),
	); err != nil {
		return fmt.Errorf("writing meta: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing write transaction: %w", err)
	}
	return nil
}

// writeStore inserts every entity of a collection into its record store.
func writeStore[T any](tx *sql.Tx, store string, entities []T, id func(T) string) error {
	if len(entities) == 0 {
		return nil
	}
	stmt, err := tx.Prepare(fmt.Sprintf("INSERT INTO %s (id, body) VALUES (?, ?)", store))
	if err != nil {
		return fmt.Errorf("preparing insert for %s: %w", store, err)
	}
	defer stmt.Close()

	for _, entity := range entities {
		body, err := json.Marshal(entity)
		if err != nil {
			return fmt.Errorf("encoding %s entity: %w", store, err)
		}
		if _, err := stmt.Exec(id(entity), string(body)); err != nil {
			return fmt.Errorf("inserting into %s: %w", store, err)
		}
	}
	return nil
}

// withDefaults normalizes nil collections to empty slices and stamps the
// compiled-in schema version. A missing lastSavedAt becomes now.
func (g *Gateway) withDefaults(state types.PersistedState) types.PersistedState {
	if state.Customers == nil {
		state.Customers = []types.Customer{}
	}
	if state.Todos == nil {
		state.Todos = []types.Todo{}
	}
	if state.Orders == nil {
		state.Orders = []types.Order{}
	}
	if state.Products == nil {
		state.Products = []types.Product{}
	}
	if state.RecycleBin == nil {
		state.RecycleBin = []types.RecycleBinItem{}
	}
	state.Meta.SchemaVersion = SchemaVersion
	if state.Meta.LastSavedAt == 0 {
		state.Meta.LastSavedAt = g.now().UnixMilli()
	}
	return state
}

// Close releases the database handle. Safe to call when the database was
// never opened.
func (g *Gateway) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.db == nil {
		return nil
	}
	err := g.db.Close()
	g.db = nil
	return err
}
