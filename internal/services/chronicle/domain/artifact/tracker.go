// Package artifact implements the per-artifact state machine layered over
// the journal.
//
// An artifact's state lives across entries rather than in a single one: the
// newest entry referencing the artifact is authoritative, and entries
// flagged lost are skipped when deciding whether the artifact is currently
// in play. This supports re-finding a previously lost artifact: the lost
// entry stays in the history and a fresh entry starts the new chapter.
package artifact

import (
	"github.com/ironfell/chronicle/internal/services/chronicle/domain/event"
	"github.com/ironfell/chronicle/internal/services/chronicle/domain/journal"
	"github.com/ironfell/chronicle/internal/services/chronicle/domain/recorder"
)

// mustValidID rejects the reserved "not artifact-related" id. Passing it to
// an artifact-scoped operation is a caller bug, not a runtime condition.
func mustValidID(artifactID int) {
	if artifactID <= 0 {
		panic("artifact: id must be positive")
	}
}

// Latest returns the index of the newest entry for the artifact, in any
// state, or -1 when the artifact was never logged.
func Latest(store *journal.Store, artifactID int) int {
	mustValidID(artifactID)
	return store.LatestMatch(func(e event.Entry) bool {
		return e.ArtifactID == artifactID
	})
}

// LatestActive returns the index of the newest non-lost entry for the
// artifact, or -1 when none exists.
func LatestActive(store *journal.Store, artifactID int) int {
	mustValidID(artifactID)
	return store.LatestMatch(func(e event.Entry) bool {
		return e.ArtifactID == artifactID && !e.Flags.Has(event.FlagArtifactLost)
	})
}

// MarkKnown resets the newest entry for the artifact to exactly the known
// state, discarding unknown and lost flags. It reports false when the
// artifact was never logged; the caller records a fresh entry instead.
func MarkKnown(store *journal.Store, artifactID int) bool {
	i := Latest(store, artifactID)
	if i < 0 {
		return false
	}
	var flags event.Flags
	flags.Wipe()
	flags.On(event.FlagArtifactKnown)
	store.SetFlags(i, flags)
	return true
}

// MarkLost adds the lost flag to the newest active entry for the artifact,
// keeping its other flags, and reports true. When no active entry exists
// (never logged, or already lost) it records a fresh unknown+lost entry via
// Record and reports false: the artifact was missed, not surrendered.
func MarkLost(store *journal.Store, artifactID int, actor recorder.Actor, text string) bool {
	i := LatestActive(store, artifactID)
	if i < 0 {
		Record(store, artifactID, false, false, actor, text)
		return false
	}
	flags := store.At(i).Flags
	flags.On(event.FlagArtifactLost)
	store.SetFlags(i, flags)
	return true
}

// IsKnown reports whether the newest entry for the artifact, in any state,
// carries the known flag.
func IsKnown(store *journal.Store, artifactID int) bool {
	i := Latest(store, artifactID)
	return i >= 0 && store.At(i).Flags.Has(event.FlagArtifactKnown)
}

// IsActivelyLogged reports whether the artifact has an entry that is not
// flagged lost, i.e. the artifact is currently in play.
func IsActivelyLogged(store *journal.Store, artifactID int) bool {
	return LatestActive(store, artifactID) >= 0
}

// Record logs an artifact changing hands. For known artifacts it reveals the
// existing entry when one exists, in any state, and otherwise appends a new
// known entry. For unknown artifacts it appends a new unknown entry, flagged
// lost as well when the artifact was missed rather than found; an already
// active artifact must not be re-logged as newly unknown, so that case
// reports false without mutating the journal.
//
// The caller supplies pre-formatted text; this package does not generate
// names.
func Record(store *journal.Store, artifactID int, known, found bool, actor recorder.Actor, text string) bool {
	mustValidID(artifactID)

	if known {
		if MarkKnown(store, artifactID) {
			return true
		}
		return recorder.RecordSimple(store, event.FlagArtifactKnown, artifactID, actor, text)
	}

	if IsActivelyLogged(store, artifactID) {
		return false
	}
	var flags event.Flags
	flags.Wipe()
	flags.On(event.FlagArtifactUnknown)
	if !found {
		flags.On(event.FlagArtifactLost)
	}
	return recorder.RecordFull(store, flags, artifactID, actor.DungeonLevel, actor.CharacterLevel, actor.Turn, text)
}

// UnmaskAll converts every unknown-flagged entry to known. One-way and
// idempotent, for the posthumous reveal in the final character dump.
func UnmaskAll(store *journal.Store) {
	for i := 0; i < store.Count(); i++ {
		flags := store.At(i).Flags
		if !flags.Has(event.FlagArtifactUnknown) {
			continue
		}
		flags.Off(event.FlagArtifactUnknown)
		flags.On(event.FlagArtifactKnown)
		store.SetFlags(i, flags)
	}
}
