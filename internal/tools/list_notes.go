package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/inotes/inotes/internal/notes"
)

// GetNotesListTool lists every note in the fixed folder. The date-range
// parameters are accepted but not applied; whether they should filter is
// unresolved upstream, so the documented accepted-but-ignored behavior is
// preserved here rather than guessing a filtering semantics.
func GetNotesListTool(svc *notes.Service) (mcp.Tool, server.ToolHandlerFunc) {
	tool := mcp.NewTool("get_notes_list",
		mcp.WithDescription(fmt.Sprintf(
			"Get the list of notes in the %s folder. Date filtering is not yet implemented; all notes are returned regardless of the date arguments.",
			svc.Folder())),
		mcp.WithString("start_date",
			mcp.Description("Start date in ISO format (YYYY-MM-DD) - accepted but not applied"),
		),
		mcp.WithString("end_date",
			mcp.Description("End date in ISO format (YYYY-MM-DD) - accepted but not applied"),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		startDate := req.GetString("start_date", "")
		endDate := req.GetString("end_date", "")

		summaries, err := svc.ListNotes(ctx, startDate, endDate)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		if len(summaries) == 0 {
			return mcp.NewToolResultText(fmt.Sprintf("No notes found in %s folder", svc.Folder())), nil
		}

		return mcp.NewToolResultText(formatList(svc.Folder(), summaries)), nil
	}

	return tool, handler
}

func formatList(folder string, summaries []notes.NoteSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d note(s) in %s:\n\n", len(summaries), folder)

	for i, n := range summaries {
		title := n.Title
		if title == "" {
			title = "Untitled"
		}
		fmt.Fprintf(&b, "%d. %q\n", i+1, title)
		fmt.Fprintf(&b, "   ID: %s\n", n.ID)
		fmt.Fprintf(&b, "   Created: %s\n", n.Created)
		fmt.Fprintf(&b, "   Modified: %s\n\n", n.Modified)
	}

	return strings.TrimRight(b.String(), "\n")
}
