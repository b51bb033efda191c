// Package mcp exposes the study tracker to AI agents over the Model Context
// Protocol.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/study-tracker/internal/tracker"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes study tracker tools.
type Server struct {
	tracker *tracker.Tracker
	mcp     *server.MCPServer
}

// NewServer creates a new MCP server driving tr.
func NewServer(tr *tracker.Tracker) *Server {
	s := &Server{tracker: tr}

	s.mcp = server.NewMCPServer(
		"studytracker",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(searchCardsTool, s.handleSearchCards)
	s.mcp.AddTool(getCardTool, s.handleGetCard)
	s.mcp.AddTool(getProgressTool, s.handleGetProgress)
	s.mcp.AddTool(listBookmarksTool, s.handleListBookmarks)
	s.mcp.AddTool(toggleBookmarkTool, s.handleToggleBookmark)
	s.mcp.AddTool(toggleCompletedTool, s.handleToggleCompleted)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
