// Package store implements the application store: the single in-memory
// aggregate owning all live collections, every mutating operation and its
// invariant guards, and the debounced persistence of the full snapshot.
//
// All mutations compute the next state synchronously before returning, so
// reads always observe the latest call. Persistence is coalesced: each
// mutation schedules a save after a quiet interval, and a newer mutation
// cancels and reschedules the pending one.
package store

import (
	"sort"
	"sync"
	"time"

	"github.com/followdesk/followdesk/internal/sqlite"
	"github.com/followdesk/followdesk/pkg/search"
	"github.com/followdesk/followdesk/pkg/types"
)

// DefaultDebounce is the quiet interval between a mutation and its
// persist. Mutations inside the window coalesce into one write.
const DefaultDebounce = 300 * time.Millisecond

// Store is an instance-scoped state container. Construct one per
// application (or per test) with New; there is no shared package state.
type Store struct {
	mu       sync.Mutex
	gw       types.Gateway
	now      func() time.Time
	debounce time.Duration
	timer    *time.Timer
	dirty    bool
	closed   bool

	customers  []types.Customer
	todos      []types.Todo
	orders     []types.Order
	products   []types.Product
	recycleBin []types.RecycleBinItem

	selectedDate    string
	loading         bool
	storageFallback bool
	storageStatus   string
}

// Option adjusts store construction.
type Option func(*Store)

// WithDebounce overrides the persist quiet interval.
func WithDebounce(d time.Duration) Option {
	return func(s *Store) { s.debounce = d }
}

// WithClock overrides the time source. Timestamps, day buckets, and
// order-number day sequences all flow from it.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates a store persisting through gw. The store owns gw and closes
// it on Close.
func New(gw types.Gateway, opts ...Option) *Store {
	s := &Store{
		gw:         gw,
		now:        time.Now,
		debounce:   DefaultDebounce,
		loading:    true,
		customers:  []types.Customer{},
		todos:      []types.Todo{},
		orders:     []types.Order{},
		products:   []types.Product{},
		recycleBin: []types.RecycleBinItem{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.selectedDate = s.today()
	return s
}

func (s *Store) today() string {
	return s.now().Format("2006-01-02")
}

// Hydrate loads the persisted snapshot into memory. It replaces any
// in-memory state, so call it before the first mutation.
func (s *Store) Hydrate() {
	loaded := s.gw.LoadState()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers = loaded.State.Customers
	s.todos = loaded.State.Todos
	s.orders = loaded.State.Orders
	s.products = loaded.State.Products
	s.recycleBin = loaded.State.RecycleBin
	s.loading = false
	s.storageFallback = loaded.Fallback
	s.storageStatus = loaded.Status
}

// snapshotLocked copies the live collections into a PersistedState. Top
// level slices are copied so a concurrent flush never observes a later
// mutation; entity values themselves are replaced, not edited, by every
// mutating operation.
func (s *Store) snapshotLocked() types.PersistedState {
	state := types.PersistedState{
		Customers:  make([]types.Customer, len(s.customers)),
		Todos:      make([]types.Todo, len(s.todos)),
		Orders:     make([]types.Order, len(s.orders)),
		Products:   make([]types.Product, len(s.products)),
		RecycleBin: make([]types.RecycleBinItem, len(s.recycleBin)),
		Meta: types.Meta{
			SchemaVersion: sqlite.SchemaVersion,
			LastSavedAt:   s.now().UnixMilli(),
		},
	}
	copy(state.Customers, s.customers)
	copy(state.Todos, s.todos)
	copy(state.Orders, s.orders)
	copy(state.Products, s.products)
	copy(state.RecycleBin, s.recycleBin)
	return state
}

// schedulePersistLocked (re)arms the debounce timer. The caller must hold
// s.mu. A pending persist is cancelled so bursts collapse into a single
// write of the latest snapshot.
func (s *Store) schedulePersistLocked() {
	if s.closed {
		return
	}
	s.dirty = true
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, s.persistNow)
}

// persistNow writes the latest snapshot through the gateway and records
// the fallback outcome for UI display.
func (s *Store) persistNow() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if !s.dirty {
		s.mu.Unlock()
		return
	}
	s.dirty = false
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	result := s.gw.SaveState(snapshot)

	s.mu.Lock()
	s.storageFallback = result.Fallback
	if result.Fallback {
		s.storageStatus = result.Status
	}
	s.mu.Unlock()
}

// Flush persists any pending mutations immediately instead of waiting out
// the debounce window. No-op when nothing changed.
func (s *Store) Flush() {
	s.persistNow()
}

// Close flushes pending state and releases the gateway. The store must
// not be used afterwards.
func (s *Store) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	s.persistNow()
	return s.gw.Close()
}

// SetDate selects the working day bucket.
func (s *Store) SetDate(date string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedDate = date
}

// SelectedDate returns the working day bucket.
func (s *Store) SelectedDate() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedDate
}

// Loading reports whether Hydrate has completed.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// StorageStatus reports whether persistence is degraded to the fallback
// slot, with the user-facing explanation when it is.
func (s *Store) StorageStatus() (fallback bool, status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.storageFallback, s.storageStatus
}

// Customers returns a copy of the live customer collection.
func (s *Store) Customers() []types.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.Customer, len(s.customers))
	copy(out, s.customers)
	return out
}

// Todos returns a copy of the live todo collection.
func (s *Store) Todos() []types.Todo {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.Todo, len(s.todos))
	copy(out, s.todos)
	return out
}

// TodosForDate returns the todos of one day bucket in manual sort order.
func (s *Store) TodosForDate(date string) []types.Todo {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []types.Todo
	for _, todo := range s.todos {
		if todo.Date == date {
			out = append(out, todo)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out
}

// Orders returns a copy of the live order collection.
func (s *Store) Orders() []types.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// Products returns a copy of the live product collection.
func (s *Store) Products() []types.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.Product, len(s.products))
	copy(out, s.products)
	return out
}

// RecycleBin returns a copy of the recycle bin.
func (s *Store) RecycleBin() []types.RecycleBinItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.RecycleBinItem, len(s.recycleBin))
	copy(out, s.recycleBin)
	return out
}

// SearchProducts queries the product catalog (see the search package for
// scoring). The index is rebuilt from the current snapshot per call.
func (s *Store) SearchProducts(query string, filters search.Filters) []types.Product {
	idx := search.BuildIndex(s.Products())
	return idx.Search(query, filters)
}
