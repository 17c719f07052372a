package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/inotes/inotes/internal/notes"
)

// AppendToNoteTool appends content to an existing note. Append is the only
// mutation the gateway offers besides creation; there is no overwrite tool.
func AppendToNoteTool(svc *notes.Service) (mcp.Tool, server.ToolHandlerFunc) {
	tool := mcp.NewTool("append_to_note",
		mcp.WithDescription(
			"Append content to an existing note (APPEND ONLY - existing content is never overwritten or deleted). "+
				"The new content is separated from the existing body by a blank line."),
		mcp.WithString("note_id",
			mcp.Required(),
			mcp.Description("The ID of the note to append to (x-coredata:// URL)"),
		),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("The content to append"),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := req.RequireString("note_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		content, err := req.RequireString("content")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		note, err := svc.AppendToNote(ctx, id, content)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf(
			"Successfully appended content to note\nID: %s\nModified: %s",
			note.ID, note.Modified)), nil
	}

	return tool, handler
}
