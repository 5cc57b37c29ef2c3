package types

// Meta describes the persisted snapshot itself.
type Meta struct {
	SchemaVersion int   `json:"schemaVersion"`
	LastSavedAt   int64 `json:"lastSavedAt"`
}

// PersistedState is the root aggregate: the five live collections plus
// snapshot metadata. It is the unit of load and save; every save writes
// the whole state.
type PersistedState struct {
	Customers  []Customer       `json:"customers"`
	Todos      []Todo           `json:"todos"`
	Orders     []Order          `json:"orders"`
	Products   []Product        `json:"products"`
	RecycleBin []RecycleBinItem `json:"recycleBin"`
	Meta       Meta             `json:"meta"`
}

// LoadResult is the outcome of Gateway.LoadState. Fallback reports that
// the simple key-value path served the read; Status carries a short
// human-readable explanation when it did.
type LoadResult struct {
	State    PersistedState
	Fallback bool
	Status   string
}

// SaveResult is the outcome of Gateway.SaveState.
type SaveResult struct {
	Fallback bool
	Status   string
}

// Gateway abstracts the persistence layer: a transactional local database
// with a simple key-value fallback slot. LoadState and SaveState never
// fail; storage errors degrade to the fallback path and are reported only
// through the result's Fallback flag.
type Gateway interface {
	LoadState() LoadResult
	SaveState(state PersistedState) SaveResult
	Close() error
}
