package nav

// history.go keeps the back/forward stack and persists it across runs as a
// JSON state file under ~/.bookadmin/, so `bookadmin nav back` works between
// invocations the way a browser's history survives a reload.

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Entry is one history record. The structured fields are the primary payload;
// Fragment is always written too and is the decode fallback for entries
// produced by older versions or edited by hand.
type Entry struct {
	Kind     string `json:"kind,omitempty"`
	BookID   int64  `json:"book_id,omitempty"`
	Fragment string `json:"fragment"`
}

func entryFor(v View) Entry {
	return Entry{
		Kind:     v.Kind.String(),
		BookID:   v.BookID,
		Fragment: v.Fragment(),
	}
}

// Decode resolves the entry back into a View: structured payload first, then
// the fragment string. Exactly one fallback path, nothing duck-typed.
func (e Entry) Decode() (View, error) {
	if e.Kind != "" {
		fragment := e.Kind
		if e.BookID != 0 {
			fragment = fmt.Sprintf("%s:%d", e.Kind, e.BookID)
		}
		if v, err := ParseFragment(fragment); err == nil {
			return v, nil
		}
		// structured payload was unusable; fall through to the fragment
	}
	return ParseFragment(e.Fragment)
}

// History is a browser-style stack with a cursor. Pushing while the cursor is
// not at the tail drops the forward entries, like a browser does.
type History struct {
	Entries []Entry `json:"entries"`
	Pos     int     `json:"pos"` // index of the current entry, -1 when empty
}

func NewHistory() *History {
	return &History{Pos: -1}
}

func (h *History) Push(v View) {
	h.Entries = append(h.Entries[:h.Pos+1], entryFor(v))
	h.Pos = len(h.Entries) - 1
}

// Current returns the entry under the cursor.
func (h *History) Current() (Entry, bool) {
	if h.Pos < 0 || h.Pos >= len(h.Entries) {
		return Entry{}, false
	}
	return h.Entries[h.Pos], true
}

// Back moves the cursor one entry backwards.
func (h *History) Back() (Entry, bool) {
	if h.Pos <= 0 {
		return Entry{}, false
	}
	h.Pos--
	return h.Entries[h.Pos], true
}

// Forward moves the cursor one entry forwards.
func (h *History) Forward() (Entry, bool) {
	if h.Pos+1 >= len(h.Entries) {
		return Entry{}, false
	}
	h.Pos++
	return h.Entries[h.Pos], true
}

// DefaultStatePath returns the nav state file under the home directory.
func DefaultStatePath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".bookadmin", "nav_state.json")
}

// Save writes the history to path.
func (h *History) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// LoadHistory reads the history from path. A missing file yields an empty
// history, not an error.
func LoadHistory(path string) (*History, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return NewHistory(), nil
	}
	if err != nil {
		return nil, err
	}

	var h History
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, err
	}
	if h.Pos >= len(h.Entries) {
		h.Pos = len(h.Entries) - 1
	}
	if len(h.Entries) == 0 {
		h.Pos = -1
	}
	return &h, nil
}
