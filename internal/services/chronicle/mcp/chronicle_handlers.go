package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ironfell/chronicle/internal/services/chronicle/domain/chronicle"
	"github.com/ironfell/chronicle/internal/services/chronicle/domain/event"
	"github.com/ironfell/chronicle/internal/services/chronicle/domain/recorder"
)

// ChronicleStartInput represents the MCP tool input for starting a chronicle.
type ChronicleStartInput struct {
	CharacterID    string `json:"character_id" jsonschema:"character identifier"`
	DungeonLevel   int    `json:"dungeon_level,omitempty" jsonschema:"current dungeon depth"`
	CharacterLevel int    `json:"character_level,omitempty" jsonschema:"current character level"`
	Turn           int64  `json:"turn,omitempty" jsonschema:"current game-time counter"`
}

// ChronicleStartResult represents the MCP tool output for starting a chronicle.
type ChronicleStartResult struct {
	CharacterID string `json:"character_id" jsonschema:"character identifier"`
	Created     bool   `json:"created" jsonschema:"true when a new chronicle was created, false when one already existed"`
}

// ChronicleStartTool defines the MCP tool schema for starting a chronicle.
func ChronicleStartTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "chronicle_start",
		Description: "Creates the life-event chronicle for a character and sets its actor context. Idempotent: an existing chronicle only has its actor context updated.",
	}
}

// ChronicleStartHandler executes a chronicle start request.
func ChronicleStartHandler(registry *Registry) mcp.ToolHandlerFor[ChronicleStartInput, ChronicleStartResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ChronicleStartInput) (*mcp.CallToolResult, ChronicleStartResult, error) {
		created, err := registry.Start(input.CharacterID, recorder.Actor{
			DungeonLevel:   input.DungeonLevel,
			CharacterLevel: input.CharacterLevel,
			Turn:           input.Turn,
		})
		if err != nil {
			return nil, ChronicleStartResult{}, err
		}
		return nil, ChronicleStartResult{CharacterID: input.CharacterID, Created: created}, nil
	}
}

// ActorUpdateInput represents the MCP tool input for updating actor context.
type ActorUpdateInput struct {
	CharacterID    string `json:"character_id" jsonschema:"character identifier"`
	DungeonLevel   int    `json:"dungeon_level" jsonschema:"current dungeon depth"`
	CharacterLevel int    `json:"character_level" jsonschema:"current character level"`
	Turn           int64  `json:"turn" jsonschema:"current game-time counter"`
}

// ActorUpdateResult represents the MCP tool output for updating actor context.
type ActorUpdateResult struct {
	CharacterID string `json:"character_id" jsonschema:"character identifier"`
}

// ActorUpdateTool defines the MCP tool schema for updating actor context.
func ActorUpdateTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "actor_update",
		Description: "Updates the dungeon level, character level, and turn stamped onto subsequent chronicle entries.",
	}
}

// ActorUpdateHandler executes an actor context update.
func ActorUpdateHandler(registry *Registry) mcp.ToolHandlerFor[ActorUpdateInput, ActorUpdateResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ActorUpdateInput) (*mcp.CallToolResult, ActorUpdateResult, error) {
		err := registry.With(input.CharacterID, func(chron *chronicle.Chronicle, _ NameTable) error {
			chron.SetActor(recorder.Actor{
				DungeonLevel:   input.DungeonLevel,
				CharacterLevel: input.CharacterLevel,
				Turn:           input.Turn,
			})
			return nil
		})
		if err != nil {
			return nil, ActorUpdateResult{}, err
		}
		return nil, ActorUpdateResult{CharacterID: input.CharacterID}, nil
	}
}

// EventRecordInput represents the MCP tool input for recording an event.
type EventRecordInput struct {
	CharacterID string `json:"character_id" jsonschema:"character identifier"`
	Kind        string `json:"kind" jsonschema:"event kind tag (player_birth, game_start, player_death, player_revive, gain_level, slay_unique, user_input, generic)"`
	ArtifactID  int    `json:"artifact_id,omitempty" jsonschema:"artifact registry id for artifact-related events, 0 otherwise"`
	Text        string `json:"text" jsonschema:"human-readable description of the event"`
}

// EventRecordResult represents the MCP tool output for recording an event.
type EventRecordResult struct {
	Recorded   bool `json:"recorded" jsonschema:"false when the chronicle is full and the event was dropped"`
	EntryCount int  `json:"entry_count" jsonschema:"number of entries after the call"`
}

// EventRecordTool defines the MCP tool schema for recording an event.
func EventRecordTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "event_record",
		Description: "Appends a life event to a character's chronicle, stamped with the current actor context. A full chronicle drops the event and reports recorded=false.",
	}
}

// EventRecordHandler executes an event record request.
func EventRecordHandler(registry *Registry) mcp.ToolHandlerFor[EventRecordInput, EventRecordResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input EventRecordInput) (*mcp.CallToolResult, EventRecordResult, error) {
		tag, ok := event.ParseFlag(input.Kind)
		if !ok {
			return nil, EventRecordResult{}, fmt.Errorf("unknown event kind %q", input.Kind)
		}
		if input.ArtifactID < 0 {
			return nil, EventRecordResult{}, fmt.Errorf("artifact id must not be negative")
		}

		var result EventRecordResult
		err := registry.With(input.CharacterID, func(chron *chronicle.Chronicle, _ NameTable) error {
			result.Recorded = chron.RecordEvent(tag, input.ArtifactID, input.Text)
			result.EntryCount = chron.EntryCount()
			return nil
		})
		if err != nil {
			return nil, EventRecordResult{}, err
		}
		return nil, result, nil
	}
}

// ChronicleClearInput represents the MCP tool input for clearing a chronicle.
type ChronicleClearInput struct {
	CharacterID string `json:"character_id" jsonschema:"character identifier"`
}

// ChronicleClearResult represents the MCP tool output for clearing a chronicle.
type ChronicleClearResult struct {
	EntriesDropped int `json:"entries_dropped" jsonschema:"number of entries discarded"`
}

// ChronicleClearTool defines the MCP tool schema for clearing a chronicle.
func ChronicleClearTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "chronicle_clear",
		Description: "Wipes a character's chronicle, e.g. on death and restart. The chronicle stays registered and records again from empty.",
	}
}

// ChronicleClearHandler executes a chronicle clear request.
func ChronicleClearHandler(registry *Registry) mcp.ToolHandlerFor[ChronicleClearInput, ChronicleClearResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ChronicleClearInput) (*mcp.CallToolResult, ChronicleClearResult, error) {
		var result ChronicleClearResult
		err := registry.With(input.CharacterID, func(chron *chronicle.Chronicle, _ NameTable) error {
			result.EntriesDropped = chron.EntryCount()
			chron.Clear()
			return nil
		})
		if err != nil {
			return nil, ChronicleClearResult{}, err
		}
		return nil, result, nil
	}
}

// ChronicleExportInput represents the MCP tool input for exporting a chronicle.
type ChronicleExportInput struct {
	CharacterID string `json:"character_id" jsonschema:"character identifier"`
}

// ChronicleExportResult represents the MCP tool output for exporting a chronicle.
type ChronicleExportResult struct {
	CharacterID string         `json:"character_id" jsonschema:"character identifier"`
	Count       int            `json:"count" jsonschema:"number of entries"`
	Entries     []EntryPayload `json:"entries" jsonschema:"entries in chronological order"`
}

// ChronicleExportTool defines the MCP tool schema for exporting a chronicle.
func ChronicleExportTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "chronicle_export",
		Description: "Returns every chronicle entry in chronological order, for history display and character dumps.",
	}
}

// ChronicleExportHandler executes a chronicle export request.
func ChronicleExportHandler(registry *Registry) mcp.ToolHandlerFor[ChronicleExportInput, ChronicleExportResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ChronicleExportInput) (*mcp.CallToolResult, ChronicleExportResult, error) {
		result := ChronicleExportResult{CharacterID: input.CharacterID}
		err := registry.With(input.CharacterID, func(chron *chronicle.Chronicle, _ NameTable) error {
			entries := chron.Entries()
			result.Count = len(entries)
			result.Entries = make([]EntryPayload, 0, len(entries))
			for _, entry := range entries {
				result.Entries = append(result.Entries, entryPayload(entry))
			}
			return nil
		})
		if err != nil {
			return nil, ChronicleExportResult{}, err
		}
		return nil, result, nil
	}
}

// ChronicleUnmaskInput represents the MCP tool input for unmasking artifacts.
type ChronicleUnmaskInput struct {
	CharacterID string `json:"character_id" jsonschema:"character identifier"`
}

// ChronicleUnmaskResult represents the MCP tool output for unmasking artifacts.
type ChronicleUnmaskResult struct {
	EntryCount int `json:"entry_count" jsonschema:"number of entries in the chronicle"`
}

// ChronicleUnmaskTool defines the MCP tool schema for unmasking artifacts.
func ChronicleUnmaskTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "chronicle_unmask",
		Description: "Reveals every unidentified artifact entry for the final character dump. One-way and idempotent.",
	}
}

// ChronicleUnmaskHandler executes a chronicle unmask request.
func ChronicleUnmaskHandler(registry *Registry) mcp.ToolHandlerFor[ChronicleUnmaskInput, ChronicleUnmaskResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ChronicleUnmaskInput) (*mcp.CallToolResult, ChronicleUnmaskResult, error) {
		var result ChronicleUnmaskResult
		err := registry.With(input.CharacterID, func(chron *chronicle.Chronicle, _ NameTable) error {
			chron.UnmaskAllUnknown()
			result.EntryCount = chron.EntryCount()
			return nil
		})
		if err != nil {
			return nil, ChronicleUnmaskResult{}, err
		}
		return nil, result, nil
	}
}
