// Package recorder builds fully-specified journal entries from an explicit
// actor context.
//
// The actor context is a plain value owned by the character session and
// passed into every recording call; there is no ambient global actor.
package recorder

import (
	"github.com/ironfell/chronicle/internal/services/chronicle/domain/event"
	"github.com/ironfell/chronicle/internal/services/chronicle/domain/journal"
)

// Actor is a snapshot of the recording character's state at event time.
type Actor struct {
	// DungeonLevel is the current dungeon depth.
	DungeonLevel int
	// CharacterLevel is the current character level.
	CharacterLevel int
	// Turn is the current game-time counter.
	Turn int64
}

// RecordSimple appends an entry tagged with a single flag, stamping it with
// the actor's current state. It reports false when the journal is full.
func RecordSimple(store *journal.Store, tag event.Flag, artifactID int, actor Actor, text string) bool {
	var flags event.Flags
	flags.Wipe()
	flags.On(tag)
	return RecordFull(store, flags, artifactID, actor.DungeonLevel, actor.CharacterLevel, actor.Turn, text)
}

// RecordFull appends an entry with caller-supplied flags and metadata,
// bypassing the live actor context. It exists for backdating and replay. It
// reports false when the journal is full.
func RecordFull(store *journal.Store, flags event.Flags, artifactID int, dungeonLevel, characterLevel int, turn int64, text string) bool {
	return store.Append(event.Entry{
		Flags:          flags,
		ArtifactID:     artifactID,
		DungeonLevel:   dungeonLevel,
		CharacterLevel: characterLevel,
		Turn:           turn,
		Text:           text,
	})
}
