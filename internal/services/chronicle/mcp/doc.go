// Package mcp exposes chronicle operations as MCP tools.
//
// Each character owns one chronicle. The registry maps character ids to live
// chronicles and serializes access; the domain core itself is single-actor
// and unsynchronized.
package mcp
