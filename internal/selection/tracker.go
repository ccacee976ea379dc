// Package selection tracks which records of a filtered list are marked for a
// bulk action. The set is ephemeral: it lives on the admin session and is
// never persisted.
package selection

import (
	"sort"
	"sync"
)

// Tracker is a concurrent set of selected record identifiers. Selections
// survive re-filtering; records hidden by the current filter stay selected.
type Tracker struct {
	mu  sync.Mutex
	ids map[string]struct{}
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{ids: make(map[string]struct{})}
}

// Toggle adds id if absent and removes it if present, returning the new
// selected state. Toggling twice restores the prior state.
func (t *Tracker) Toggle(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.ids[id]; ok {
		delete(t.ids, id)
		return false
	}
	t.ids[id] = struct{}{}
	return true
}

// Selected reports whether id is currently selected.
func (t *Tracker) Selected(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.ids[id]
	return ok
}

// Count returns the number of selected identifiers.
func (t *Tracker) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.ids)
}

// IDs returns the selected identifiers sorted for deterministic iteration.
func (t *Tracker) IDs() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]string, 0, len(t.ids))
	for id := range t.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Clear empties the selection, e.g. after a bulk delete completes.
func (t *Tracker) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ids = make(map[string]struct{})
}
