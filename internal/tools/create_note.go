package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/inotes/inotes/internal/notes"
)

// CreateNoteTool creates a new note in the fixed folder
func CreateNoteTool(svc *notes.Service) (mcp.Tool, server.ToolHandlerFunc) {
	tool := mcp.NewTool("create_note",
		mcp.WithDescription(fmt.Sprintf(
			"Create a new note in the %s folder. Duplicate titles are allowed. Returns the note ID assigned by the Notes application.",
			svc.Folder())),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("The title of the note"),
		),
		mcp.WithString("body",
			mcp.Required(),
			mcp.Description("The content/body of the note"),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		title, err := req.RequireString("title")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		body, err := req.RequireString("body")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		id, err := svc.CreateNote(ctx, title, body)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf(
			"Created note: %q\nID: %s\nFolder: %s (hardcoded)",
			title, id, svc.Folder())), nil
	}

	return tool, handler
}
