// Package fallback implements the simple key-value persistence path used
// when the transactional database is unusable. The whole snapshot lives
// in one JSON file under the data directory; the file is also kept warm
// as a mirror while the primary path is healthy.
package fallback

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/followdesk/followdesk/pkg/types"
)

// SlotFileName is the single named slot holding the JSON snapshot.
const SlotFileName = "followdesk-fallback.json"

// Slot reads and writes the fallback snapshot file.
type Slot struct {
	path string
}

// NewSlot returns a Slot rooted at dataDir.
func NewSlot(dataDir string) *Slot {
	return &Slot{path: filepath.Join(dataDir, SlotFileName)}
}

// Path returns the slot file location.
func (s *Slot) Path() string { return s.path }

// Read deserializes the slot. An absent or corrupt file yields an empty
// state; the caller stamps meta afterwards, so no error is reported.
func (s *Slot) Read() types.PersistedState {
	var state types.PersistedState
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return state
	}
	if err := json.Unmarshal(raw, &state); err != nil {
		return types.PersistedState{}
	}
	return state
}

// Write serializes the full snapshot into the slot. The write goes through
// a temp file and rename so a crash cannot leave a torn snapshot.
func (s *Slot) Write(state types.PersistedState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
