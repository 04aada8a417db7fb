// Package app hosts the chronicle MCP server and its health listener.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/text/language"

	chronmcp "github.com/ironfell/chronicle/internal/services/chronicle/mcp"
)

const (
	// serverName identifies the MCP server implementation.
	serverName = "ironfell-chronicle"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

// Server hosts the chronicle MCP server.
type Server struct {
	mcpServer *mcp.Server
	registry  *chronmcp.Registry
}

// New creates a configured chronicle server phrasing entries in the given
// locale.
func New(locale language.Tag) *Server {
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	registry := chronmcp.NewRegistry(locale)

	mcp.AddTool(mcpServer, chronmcp.ChronicleStartTool(), chronmcp.ChronicleStartHandler(registry))
	mcp.AddTool(mcpServer, chronmcp.ChronicleClearTool(), chronmcp.ChronicleClearHandler(registry))
	mcp.AddTool(mcpServer, chronmcp.ChronicleExportTool(), chronmcp.ChronicleExportHandler(registry))
	mcp.AddTool(mcpServer, chronmcp.ChronicleUnmaskTool(), chronmcp.ChronicleUnmaskHandler(registry))
	mcp.AddTool(mcpServer, chronmcp.ActorUpdateTool(), chronmcp.ActorUpdateHandler(registry))
	mcp.AddTool(mcpServer, chronmcp.EventRecordTool(), chronmcp.EventRecordHandler(registry))
	mcp.AddTool(mcpServer, chronmcp.ArtifactRecordTool(), chronmcp.ArtifactRecordHandler(registry))
	mcp.AddTool(mcpServer, chronmcp.ArtifactLoseTool(), chronmcp.ArtifactLoseHandler(registry))
	mcp.AddTool(mcpServer, chronmcp.ArtifactStatusTool(), chronmcp.ArtifactStatusHandler(registry))

	return &Server{mcpServer: mcpServer, registry: registry}
}

// Serve starts the MCP server on stdio and blocks until it stops or the
// context ends.
func (s *Server) Serve(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

// serveWithTransport starts the MCP server using the provided transport. A
// context cancellation is a clean shutdown, not an error.
func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}
