package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ironfell/chronicle/internal/services/chronicle/domain/chronicle"
)

// ArtifactRecordInput represents the MCP tool input for recording an
// artifact state transition.
type ArtifactRecordInput struct {
	CharacterID  string `json:"character_id" jsonschema:"character identifier"`
	ArtifactID   int    `json:"artifact_id" jsonschema:"artifact registry id, must be positive"`
	ArtifactName string `json:"artifact_name,omitempty" jsonschema:"display name for the artifact, cached for entry phrasing"`
	Known        bool   `json:"known" jsonschema:"true when the character has identified the artifact"`
	Found        bool   `json:"found" jsonschema:"true when the artifact was obtained, false when it was missed"`
}

// ArtifactRecordResult represents the MCP tool output for recording an
// artifact state transition.
type ArtifactRecordResult struct {
	Recorded       bool `json:"recorded" jsonschema:"false when an active artifact was re-logged as newly unknown, or the chronicle is full"`
	EntryCount     int  `json:"entry_count" jsonschema:"number of entries after the call"`
	Known          bool `json:"known" jsonschema:"whether the artifact is now identified in the chronicle"`
	ActivelyLogged bool `json:"actively_logged" jsonschema:"whether the artifact is currently in play"`
}

// ArtifactRecordTool defines the MCP tool schema for recording an artifact
// state transition.
func ArtifactRecordTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "artifact_record",
		Description: "Logs an artifact changing hands. Identifying an already-logged artifact rewrites its newest entry in place; re-logging an active artifact as newly unknown is rejected.",
	}
}

// ArtifactRecordHandler executes an artifact record request.
func ArtifactRecordHandler(registry *Registry) mcp.ToolHandlerFor[ArtifactRecordInput, ArtifactRecordResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ArtifactRecordInput) (*mcp.CallToolResult, ArtifactRecordResult, error) {
		if err := validArtifactID(input.ArtifactID); err != nil {
			return nil, ArtifactRecordResult{}, err
		}

		var result ArtifactRecordResult
		err := registry.With(input.CharacterID, func(chron *chronicle.Chronicle, names NameTable) error {
			if name := strings.TrimSpace(input.ArtifactName); name != "" {
				names[input.ArtifactID] = name
			}
			result.Recorded = chron.RecordArtifactEvent(input.ArtifactID, input.Known, input.Found)
			result.EntryCount = chron.EntryCount()
			result.Known = chron.IsArtifactKnown(input.ArtifactID)
			result.ActivelyLogged = chron.IsArtifactActivelyLogged(input.ArtifactID)
			return nil
		})
		if err != nil {
			return nil, ArtifactRecordResult{}, err
		}
		return nil, result, nil
	}
}

// ArtifactLoseInput represents the MCP tool input for losing an artifact.
type ArtifactLoseInput struct {
	CharacterID  string `json:"character_id" jsonschema:"character identifier"`
	ArtifactID   int    `json:"artifact_id" jsonschema:"artifact registry id, must be positive"`
	ArtifactName string `json:"artifact_name,omitempty" jsonschema:"display name for the artifact, cached for entry phrasing"`
}

// ArtifactLoseResult represents the MCP tool output for losing an artifact.
type ArtifactLoseResult struct {
	MarkedActive bool `json:"marked_active" jsonschema:"true when an active entry was flagged lost, false when a fresh missed entry was recorded"`
	EntryCount   int  `json:"entry_count" jsonschema:"number of entries after the call"`
}

// ArtifactLoseTool defines the MCP tool schema for losing an artifact.
func ArtifactLoseTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "artifact_lose",
		Description: "Marks an artifact as lost. An artifact never actively logged gets a fresh missed entry instead.",
	}
}

// ArtifactLoseHandler executes an artifact lose request.
func ArtifactLoseHandler(registry *Registry) mcp.ToolHandlerFor[ArtifactLoseInput, ArtifactLoseResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ArtifactLoseInput) (*mcp.CallToolResult, ArtifactLoseResult, error) {
		if err := validArtifactID(input.ArtifactID); err != nil {
			return nil, ArtifactLoseResult{}, err
		}

		var result ArtifactLoseResult
		err := registry.With(input.CharacterID, func(chron *chronicle.Chronicle, names NameTable) error {
			if name := strings.TrimSpace(input.ArtifactName); name != "" {
				names[input.ArtifactID] = name
			}
			result.MarkedActive = chron.OnArtifactLost(input.ArtifactID)
			result.EntryCount = chron.EntryCount()
			return nil
		})
		if err != nil {
			return nil, ArtifactLoseResult{}, err
		}
		return nil, result, nil
	}
}

// ArtifactStatusInput represents the MCP tool input for querying an artifact.
type ArtifactStatusInput struct {
	CharacterID string `json:"character_id" jsonschema:"character identifier"`
	ArtifactID  int    `json:"artifact_id" jsonschema:"artifact registry id, must be positive"`
}

// ArtifactStatusResult represents the MCP tool output for querying an artifact.
type ArtifactStatusResult struct {
	Known          bool `json:"known" jsonschema:"whether the artifact's newest entry is identified"`
	ActivelyLogged bool `json:"actively_logged" jsonschema:"whether the artifact has a non-lost entry"`
}

// ArtifactStatusTool defines the MCP tool schema for querying an artifact.
func ArtifactStatusTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "artifact_status",
		Description: "Reports whether an artifact is identified and whether it is currently in play according to the chronicle.",
	}
}

// ArtifactStatusHandler executes an artifact status query.
func ArtifactStatusHandler(registry *Registry) mcp.ToolHandlerFor[ArtifactStatusInput, ArtifactStatusResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ArtifactStatusInput) (*mcp.CallToolResult, ArtifactStatusResult, error) {
		if err := validArtifactID(input.ArtifactID); err != nil {
			return nil, ArtifactStatusResult{}, err
		}

		var result ArtifactStatusResult
		err := registry.With(input.CharacterID, func(chron *chronicle.Chronicle, _ NameTable) error {
			result.Known = chron.IsArtifactKnown(input.ArtifactID)
			result.ActivelyLogged = chron.IsArtifactActivelyLogged(input.ArtifactID)
			return nil
		})
		if err != nil {
			return nil, ArtifactStatusResult{}, err
		}
		return nil, result, nil
	}
}

// validArtifactID guards the tool boundary: the domain treats a non-positive
// artifact id as a caller bug and panics, so reject it here as a request
// error instead.
func validArtifactID(artifactID int) error {
	if artifactID <= 0 {
		return fmt.Errorf("artifact id must be positive, got %d", artifactID)
	}
	return nil
}
