// Package chronicle composes the journal, recorder, and artifact tracker
// into the history surface the rest of the game consumes.
//
// A Chronicle belongs to exactly one character. It owns the character's
// journal and current actor context, and delegates artifact naming to
// external collaborators: the artifact registry supplies names, and a
// formatter supplies the found/missed phrasing.
package chronicle

import (
	"fmt"

	"github.com/ironfell/chronicle/internal/services/chronicle/domain/artifact"
	"github.com/ironfell/chronicle/internal/services/chronicle/domain/event"
	"github.com/ironfell/chronicle/internal/services/chronicle/domain/journal"
	"github.com/ironfell/chronicle/internal/services/chronicle/domain/recorder"
)

// ArtifactNamer resolves artifact ids to human-readable names. It stands in
// for the artifact definition registry, which owns artifact identity.
type ArtifactNamer interface {
	// ArtifactName returns the display name for the artifact id.
	ArtifactName(artifactID int) string
}

// EntryFormatter phrases the description of an artifact entry.
type EntryFormatter interface {
	// FormatArtifactEvent phrases the found or missed description for the
	// named artifact.
	FormatArtifactEvent(name string, found bool) string
}

// sprintFormatter is the fallback phrasing when no formatter is wired.
type sprintFormatter struct{}

func (sprintFormatter) FormatArtifactEvent(name string, found bool) string {
	if found {
		return fmt.Sprintf("Found %s", name)
	}
	return fmt.Sprintf("Missed %s", name)
}

// Chronicle is the life-event history of one character.
type Chronicle struct {
	store  journal.Store
	actor  recorder.Actor
	names  ArtifactNamer
	format EntryFormatter
}

// New creates an empty chronicle. names is required for artifact operations;
// format defaults to plain English phrasing when nil.
func New(names ArtifactNamer, format EntryFormatter) *Chronicle {
	if format == nil {
		format = sprintFormatter{}
	}
	return &Chronicle{names: names, format: format}
}

// SetActor updates the actor context stamped onto subsequent entries.
func (c *Chronicle) SetActor(actor recorder.Actor) {
	c.actor = actor
}

// Actor returns the current actor context.
func (c *Chronicle) Actor() recorder.Actor {
	return c.actor
}

// Clear wipes the history, e.g. on character death and restart.
func (c *Chronicle) Clear() {
	c.store.Clear()
}

// RecordEvent logs a generic event with the given tag and text. artifactID
// is 0 for events that are not artifact-related. It reports false when the
// journal is full.
func (c *Chronicle) RecordEvent(tag event.Flag, artifactID int, text string) bool {
	return recorder.RecordSimple(&c.store, tag, artifactID, c.actor, text)
}

// RecordFull logs an entry with explicit flags and metadata, for backdating
// or replaying events outside the live actor context.
func (c *Chronicle) RecordFull(flags event.Flags, artifactID int, dungeonLevel, characterLevel int, turn int64, text string) bool {
	return recorder.RecordFull(&c.store, flags, artifactID, dungeonLevel, characterLevel, turn, text)
}

// RecordArtifactEvent logs an artifact changing hands, formatting the entry
// text from the artifact's name and the found/missed phrasing. It reports
// false when an active artifact is re-logged as newly unknown, or when the
// journal is full.
func (c *Chronicle) RecordArtifactEvent(artifactID int, known, found bool) bool {
	text := c.format.FormatArtifactEvent(c.artifactName(artifactID), found)
	return artifact.Record(&c.store, artifactID, known, found, c.actor, text)
}

// OnArtifactLost marks the artifact's newest active entry as lost. When the
// artifact was never actively logged it records a fresh missed entry instead
// and reports false.
func (c *Chronicle) OnArtifactLost(artifactID int) bool {
	text := c.format.FormatArtifactEvent(c.artifactName(artifactID), false)
	return artifact.MarkLost(&c.store, artifactID, c.actor, text)
}

// IsArtifactKnown reports whether the artifact's newest entry is identified.
func (c *Chronicle) IsArtifactKnown(artifactID int) bool {
	return artifact.IsKnown(&c.store, artifactID)
}

// IsArtifactActivelyLogged reports whether the artifact is currently in play
// according to the history.
func (c *Chronicle) IsArtifactActivelyLogged(artifactID int) bool {
	return artifact.IsActivelyLogged(&c.store, artifactID)
}

// UnmaskAllUnknown reveals every unidentified artifact entry. One-way, for
// end-of-game finalization.
func (c *Chronicle) UnmaskAllUnknown() {
	artifact.UnmaskAll(&c.store)
}

// EntryCount returns the number of recorded entries.
func (c *Chronicle) EntryCount() int {
	return c.store.Count()
}

// Entries returns the read-only entry view for display and export. The view
// is invalidated by any later recording call.
func (c *Chronicle) Entries() []event.Entry {
	return c.store.Snapshot()
}

func (c *Chronicle) artifactName(artifactID int) string {
	if c.names == nil {
		return fmt.Sprintf("artifact #%d", artifactID)
	}
	return c.names.ArtifactName(artifactID)
}
