package mcp

import "github.com/ironfell/chronicle/internal/services/chronicle/domain/event"

// EntryPayload is the wire form of one chronicle entry.
type EntryPayload struct {
	Flags          []string `json:"flags" jsonschema:"event-kind tags set on the entry"`
	ArtifactID     int      `json:"artifact_id,omitempty" jsonschema:"artifact registry id, omitted for non-artifact entries"`
	DungeonLevel   int      `json:"dungeon_level" jsonschema:"dungeon depth when the event occurred"`
	CharacterLevel int      `json:"character_level" jsonschema:"character level when the event occurred"`
	Turn           int64    `json:"turn" jsonschema:"game-time counter when the event occurred"`
	Text           string   `json:"text" jsonschema:"human-readable description"`
}

func entryPayload(e event.Entry) EntryPayload {
	return EntryPayload{
		Flags:          e.Flags.Names(),
		ArtifactID:     e.ArtifactID,
		DungeonLevel:   e.DungeonLevel,
		CharacterLevel: e.CharacterLevel,
		Turn:           e.Turn,
		Text:           e.Text,
	}
}
