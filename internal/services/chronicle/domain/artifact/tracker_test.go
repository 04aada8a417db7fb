package artifact

import (
	"testing"

	"github.com/ironfell/chronicle/internal/services/chronicle/domain/event"
	"github.com/ironfell/chronicle/internal/services/chronicle/domain/journal"
	"github.com/ironfell/chronicle/internal/services/chronicle/domain/recorder"
)

var testActor = recorder.Actor{DungeonLevel: 12, CharacterLevel: 20, Turn: 4200}

func TestMarkKnownWithoutEntryFails(t *testing.T) {
	var store journal.Store

	if MarkKnown(&store, 3) {
		t.Fatal("MarkKnown on empty journal succeeded, want failure")
	}
	if store.Count() != 0 {
		t.Fatalf("count = %d, want 0", store.Count())
	}
}

func TestMarkKnownResetsFlags(t *testing.T) {
	var store journal.Store
	if !Record(&store, 3, false, true, testActor, "Found the Ring of Barahir") {
		t.Fatal("record unknown artifact failed")
	}

	if !MarkKnown(&store, 3) {
		t.Fatal("MarkKnown failed")
	}
	if store.Count() != 1 {
		t.Fatalf("count = %d, want 1", store.Count())
	}
	flags := store.At(0).Flags
	if !flags.Has(event.FlagArtifactKnown) {
		t.Fatal("entry should be known")
	}
	if flags.Has(event.FlagArtifactUnknown) {
		t.Fatal("unknown flag should be discarded")
	}
	if !IsKnown(&store, 3) {
		t.Fatal("IsKnown = false, want true")
	}
}

func TestMarkLostAddsFlagToActiveEntry(t *testing.T) {
	var store journal.Store
	Record(&store, 5, false, true, testActor, "Found the Phial")

	if !MarkLost(&store, 5, testActor, "Missed the Phial") {
		t.Fatal("MarkLost on active entry = false, want true")
	}
	if store.Count() != 1 {
		t.Fatalf("count = %d, want 1", store.Count())
	}
	flags := store.At(0).Flags
	if !flags.Has(event.FlagArtifactLost) {
		t.Fatal("entry should be lost")
	}
	if !flags.Has(event.FlagArtifactUnknown) {
		t.Fatal("marking lost should keep existing flags")
	}
	if IsActivelyLogged(&store, 5) {
		t.Fatal("artifact should no longer be active")
	}
}

func TestMarkLostNeverLoggedRecordsMissedEntry(t *testing.T) {
	var store journal.Store

	if MarkLost(&store, 8, testActor, "Missed the Arkenstone") {
		t.Fatal("MarkLost on unlogged artifact = true, want false")
	}
	if store.Count() != 1 {
		t.Fatalf("count = %d, want 1", store.Count())
	}
	flags := store.At(0).Flags
	if !flags.Has(event.FlagArtifactUnknown) || !flags.Has(event.FlagArtifactLost) {
		t.Fatalf("entry flags = %v, want unknown+lost", flags.Names())
	}

	// A second loss still finds no active entry and records again: the
	// reverse scan skips lost entries, so each miss is its own chapter.
	if MarkLost(&store, 8, testActor, "Missed the Arkenstone") {
		t.Fatal("second MarkLost = true, want false")
	}
	if store.Count() != 2 {
		t.Fatalf("count after second loss = %d, want 2", store.Count())
	}
}

func TestRecordUnknownConflictsWithActiveEntry(t *testing.T) {
	var store journal.Store
	Record(&store, 2, false, true, testActor, "Found the Star")

	if Record(&store, 2, false, true, testActor, "Found the Star") {
		t.Fatal("re-logging active artifact as unknown succeeded, want conflict")
	}
	if store.Count() != 1 {
		t.Fatalf("count = %d, want 1", store.Count())
	}
}

func TestRecordKnownRevealsExistingEntry(t *testing.T) {
	var store journal.Store
	Record(&store, 4, false, true, testActor, "Found the Helm")

	if !IsActivelyLogged(&store, 4) {
		t.Fatal("artifact should be active after first record")
	}
	if IsKnown(&store, 4) {
		t.Fatal("artifact should not be known yet")
	}

	if !Record(&store, 4, true, true, testActor, "Found the Helm of Hammerhand") {
		t.Fatal("identify record failed")
	}
	if store.Count() != 1 {
		t.Fatalf("count = %d, want 1: identify mutates, not appends", store.Count())
	}
	if !IsKnown(&store, 4) {
		t.Fatal("IsKnown = false after identify")
	}
	if store.At(0).Flags.Has(event.FlagArtifactUnknown) {
		t.Fatal("unknown flag should be gone after identify")
	}
}

func TestRecordKnownWithoutEntryAppends(t *testing.T) {
	var store journal.Store

	if !Record(&store, 6, true, true, testActor, "Found the Sting") {
		t.Fatal("record known artifact failed")
	}
	if store.Count() != 1 {
		t.Fatalf("count = %d, want 1", store.Count())
	}
	entry := store.At(0)
	if !entry.Flags.Has(event.FlagArtifactKnown) {
		t.Fatal("entry should be known")
	}
	if entry.DungeonLevel != testActor.DungeonLevel || entry.CharacterLevel != testActor.CharacterLevel || entry.Turn != testActor.Turn {
		t.Fatalf("entry metadata = %d/%d/%d, want actor snapshot", entry.DungeonLevel, entry.CharacterLevel, entry.Turn)
	}
}

func TestRefindPreviouslyLostArtifact(t *testing.T) {
	var store journal.Store
	Record(&store, 9, false, true, testActor, "Found the Crown")
	MarkLost(&store, 9, testActor, "Missed the Crown")

	// Re-finding after a loss starts a fresh entry: the lost entry stays.
	if !Record(&store, 9, false, true, testActor, "Found the Crown") {
		t.Fatal("re-find after loss failed")
	}
	if store.Count() != 2 {
		t.Fatalf("count = %d, want 2", store.Count())
	}
	if !IsActivelyLogged(&store, 9) {
		t.Fatal("re-found artifact should be active")
	}
}

func TestLatestPrefersNewestEntry(t *testing.T) {
	var store journal.Store
	Record(&store, 9, false, true, testActor, "Found the Crown")
	MarkLost(&store, 9, testActor, "Missed the Crown")
	Record(&store, 9, false, true, testActor, "Found the Crown")

	if got := Latest(&store, 9); got != 1 {
		t.Fatalf("Latest = %d, want 1", got)
	}
	if got := LatestActive(&store, 9); got != 1 {
		t.Fatalf("LatestActive = %d, want 1", got)
	}
}

func TestUnmaskAllIsIdempotent(t *testing.T) {
	var store journal.Store
	Record(&store, 1, false, true, testActor, "Found the Amulet")
	Record(&store, 2, false, false, testActor, "Missed the Palantir")
	Record(&store, 3, true, true, testActor, "Found the Glaive")
	recorder.RecordSimple(&store, event.FlagGainLevel, 0, testActor, "Reached level 21")

	for pass := 0; pass < 2; pass++ {
		UnmaskAll(&store)
		for i := 0; i < store.Count(); i++ {
			flags := store.At(i).Flags
			if flags.Has(event.FlagArtifactUnknown) {
				t.Fatalf("pass %d: entry %d still unknown", pass, i)
			}
			if store.At(i).ArtifactID != 0 && !flags.Has(event.FlagArtifactKnown) {
				t.Fatalf("pass %d: artifact entry %d not known", pass, i)
			}
		}
	}

	// The lost flag and non-artifact entries are untouched.
	if !store.At(1).Flags.Has(event.FlagArtifactLost) {
		t.Fatal("unmask should keep the lost flag")
	}
	if !store.At(3).Flags.Has(event.FlagGainLevel) {
		t.Fatal("unmask should not touch non-artifact entries")
	}
}

func TestArtifactOpsPanicOnZeroID(t *testing.T) {
	var store journal.Store

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for artifact id 0")
		}
	}()
	Record(&store, 0, true, true, testActor, "bogus")
}
