// Package tools declares the MCP tool surface: four tools, each a stateless
// translation of one remote call into one NotesService operation. Service
// failures come back as tool error results, never as protocol errors.
package tools

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/inotes/inotes/internal/notes"
)

// Register adds the full tool surface to the MCP server.
func Register(s *server.MCPServer, svc *notes.Service) {
	tool, handler := CreateNoteTool(svc)
	s.AddTool(tool, handler)

	tool, handler = GetNoteTool(svc)
	s.AddTool(tool, handler)

	tool, handler = AppendToNoteTool(svc)
	s.AddTool(tool, handler)

	tool, handler = GetNotesListTool(svc)
	s.AddTool(tool, handler)
}
