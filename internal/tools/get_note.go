package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/inotes/inotes/internal/notes"
)

// GetNoteTool fetches the full content of one note by id
func GetNoteTool(svc *notes.Service) (mcp.Tool, server.ToolHandlerFunc) {
	tool := mcp.NewTool("get_note",
		mcp.WithDescription(fmt.Sprintf(
			"Get the full content and metadata of a note by ID. Only notes in the %s folder can be read.",
			svc.Folder())),
		mcp.WithString("note_id",
			mcp.Required(),
			mcp.Description("The note ID (x-coredata:// URL)"),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := req.RequireString("note_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		note, err := svc.GetNote(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return mcp.NewToolResultText(formatNote(note)), nil
	}

	return tool, handler
}

func formatNote(n notes.Note) string {
	lines := []string{
		fmt.Sprintf("Note: %q", n.Title),
		"ID: " + n.ID,
		"Created: " + n.Created,
		"Modified: " + n.Modified,
		"",
		"Content:",
		"---",
		n.Body,
	}
	return strings.Join(lines, "\n")
}
