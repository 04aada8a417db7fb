package event

import "unicode/utf8"

// MaxTextBytes bounds the stored description of an entry. Longer text is
// silently truncated on a rune boundary; the limit is a storage bound, not a
// display contract.
const MaxTextBytes = 80

// Entry is one record of a single game event.
type Entry struct {
	// Flags tags the event kind and, for artifact entries, the artifact
	// sub-state.
	Flags Flags
	// ArtifactID references the external artifact registry; 0 means the
	// entry is not artifact-related.
	ArtifactID int
	// DungeonLevel is the dungeon depth when the event occurred.
	DungeonLevel int
	// CharacterLevel is the character level when the event occurred.
	CharacterLevel int
	// Turn is the game-time counter when the event occurred.
	Turn int64
	// Text is the human-readable description, at most MaxTextBytes long.
	Text string
}

// TruncateText bounds text to MaxTextBytes, cutting on a rune boundary so a
// truncated description is still valid UTF-8.
func TruncateText(text string) string {
	if len(text) <= MaxTextBytes {
		return text
	}
	cut := MaxTextBytes
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}
