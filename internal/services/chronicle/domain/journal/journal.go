// Package journal stores the append-only entry sequence of one character
// chronicle.
//
// The store is deliberately single-actor: a chronicle belongs to exactly one
// character and is driven by a single game loop, so the store carries no
// locking. Callers composing it into a shared surface serialize access
// themselves.
package journal

import "github.com/ironfell/chronicle/internal/services/chronicle/domain/event"

// Growth policy. The store starts unallocated, allocates BirthCapacity slots
// on first use, then grows by GrowthStep at a time up to MaxEntries. Once
// full at MaxEntries the chronicle simply stops recording.
const (
	// BirthCapacity is the number of slots allocated on first append.
	BirthCapacity = 10
	// GrowthStep is the number of slots added per growth.
	GrowthStep = 10
	// MaxEntries is the hard cap on stored entries.
	MaxEntries = 5000
)

// Store is a growable, capped, ordered sequence of entries. Insertion order
// is chronological and is never reordered. The zero value is an empty,
// unallocated store ready for use.
type Store struct {
	entries []event.Entry
}

// Clear releases storage and resets the store to the unallocated state. It
// is a no-op on an already-empty store.
func (s *Store) Clear() {
	s.entries = nil
}

// EnsureCapacity makes room for one more entry, allocating at birth size or
// growing by one step as needed. It reports false only when the store is
// full at MaxEntries, the sole way an append can be rejected.
func (s *Store) EnsureCapacity() bool {
	switch {
	case s.entries == nil:
		s.entries = make([]event.Entry, 0, BirthCapacity)
	case len(s.entries) < cap(s.entries):
	case cap(s.entries) >= MaxEntries:
		return false
	default:
		grown := cap(s.entries) + GrowthStep
		if grown > MaxEntries {
			grown = MaxEntries
		}
		next := make([]event.Entry, len(s.entries), grown)
		copy(next, s.entries)
		s.entries = next
	}
	return true
}

// Append copies the entry into the next free slot, growing first when
// needed. Entry text is truncated to the storage bound. It reports false,
// leaving the store unchanged, when growth fails.
func (s *Store) Append(entry event.Entry) bool {
	if !s.EnsureCapacity() {
		return false
	}
	entry.Text = event.TruncateText(entry.Text)
	s.entries = append(s.entries, entry)
	return true
}

// Count returns the number of entries in use.
func (s *Store) Count() int {
	return len(s.entries)
}

// Capacity returns the number of allocated slots.
func (s *Store) Capacity() int {
	return cap(s.entries)
}

// At returns a copy of the entry at index i. It panics when i is out of
// range, matching slice semantics.
func (s *Store) At(i int) event.Entry {
	return s.entries[i]
}

// SetFlags replaces the flag set of the entry at index i. This is the only
// in-place mutation the store permits; it exists for artifact state
// transitions, which rewrite the newest entry of an artifact rather than
// appending a correction.
func (s *Store) SetFlags(i int, flags event.Flags) {
	s.entries[i].Flags = flags
}

// LatestMatch returns the index of the newest entry satisfying match, or -1
// when none does. The reverse scan is the tie-break rule: for entries
// referencing the same artifact, the most recently appended one is
// authoritative.
func (s *Store) LatestMatch(match func(event.Entry) bool) int {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if match(s.entries[i]) {
			return i
		}
	}
	return -1
}

// Snapshot returns a read-only view of the in-use entries for display and
// export. The view is transiently valid: any later append may relocate the
// underlying storage, so callers must not retain it across mutating calls,
// and must not mutate or reorder it.
func (s *Store) Snapshot() []event.Entry {
	return s.entries[:len(s.entries):len(s.entries)]
}
