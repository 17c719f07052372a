// Package notes translates note operations into AppleScript invocations
// against the Notes application and parses the textual results back into
// records. Every script it builds is scoped to one fixed folder; nothing
// here reads or writes notes outside it.
package notes

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/inotes/inotes/internal/applescript"
)

// maxListedNotes caps ListNotes output.
const maxListedNotes = 50

// Service is the gateway's single backend. It holds no state beyond the
// folder name and the runner; all persistence lives in the Notes app.
type Service struct {
	folder string
	runner applescript.Runner
}

// New returns a Service scoped to folder. The folder is injected here so
// tests can substitute it; the tool layer exposes no way to change it.
func New(folder string, runner applescript.Runner) *Service {
	return &Service{folder: folder, runner: runner}
}

// Folder returns the fixed folder name the service is scoped to.
func (s *Service) Folder() string { return s.folder }

// CreateNote creates a note in the fixed folder and returns the id the
// application assigned. Duplicate titles are permitted.
func (s *Service) CreateNote(ctx context.Context, title, body string) (string, error) {
	if strings.TrimSpace(title) == "" {
		return "", &InvalidArgumentError{Field: "title", Reason: "must not be empty"}
	}

	out, err := s.runner.Run(ctx, createScript(s.folder, title, body))
	if err != nil {
		return "", s.classify("create note", err)
	}

	id := strings.TrimSpace(out)
	if id == "" {
		return "", &AutomationError{Op: "create note", Detail: "no note id returned"}
	}

	log.Debug().Str("note_id", id).Str("folder", s.folder).Msg("note created")
	return id, nil
}

// GetNote fetches the full record for id. Ids that do not resolve inside
// the fixed folder fail with ErrNotFound.
func (s *Service) GetNote(ctx context.Context, id string) (Note, error) {
	if strings.TrimSpace(id) == "" {
		return Note{}, &InvalidArgumentError{Field: "note_id", Reason: "must not be empty"}
	}

	out, err := s.runner.Run(ctx, getScript(s.folder, id))
	if err != nil {
		return Note{}, s.classify("get note", err)
	}

	return parseNote("get note", out)
}

// AppendToNote concatenates content after the existing body, separated by a
// blank line, and returns the updated record. Append is the only mutation
// besides creation; the existing body is never replaced.
func (s *Service) AppendToNote(ctx context.Context, id, content string) (Note, error) {
	if strings.TrimSpace(id) == "" {
		return Note{}, &InvalidArgumentError{Field: "note_id", Reason: "must not be empty"}
	}

	out, err := s.runner.Run(ctx, appendScript(s.folder, id, content))
	if err != nil {
		return Note{}, s.classify("append to note", err)
	}

	note, err := parseNote("append to note", out)
	if err != nil {
		return Note{}, err
	}

	log.Debug().Str("note_id", note.ID).Msg("content appended")
	return note, nil
}

// ListNotes returns summaries of every note in the fixed folder, capped at
// maxListedNotes. startDate and endDate are accepted for forward
// compatibility but are not applied as filters; the full set comes back
// regardless. Callers must not rely on date filtering.
func (s *Service) ListNotes(ctx context.Context, startDate, endDate string) ([]NoteSummary, error) {
	if startDate != "" || endDate != "" {
		log.Debug().
			Str("start_date", startDate).
			Str("end_date", endDate).
			Msg("date range ignored: filtering not applied")
	}

	out, err := s.runner.Run(ctx, listScript(s.folder))
	if err != nil {
		return nil, s.classify("list notes", err)
	}

	out = strings.TrimSpace(out)
	if out == "" {
		return []NoteSummary{}, nil
	}

	var summaries []NoteSummary
	for _, record := range strings.Split(out, recordSep) {
		if record == "" {
			continue
		}
		parts := strings.Split(record, fieldSep)
		if len(parts) < 4 {
			continue
		}
		summaries = append(summaries, NoteSummary{
			ID:       parts[0],
			Title:    parts[1],
			Created:  parts[2],
			Modified: parts[3],
		})
		if len(summaries) == maxListedNotes {
			break
		}
	}

	return summaries, nil
}

// parseNote is the single translation point for full-record output. Anything
// that does not split into five fields is an automation error, never a panic.
func parseNote(op, out string) (Note, error) {
	parts := strings.Split(out, fieldSep)
	if len(parts) < 5 {
		return Note{}, &AutomationError{Op: op, Detail: "unexpected automation output: " + out}
	}
	return Note{
		ID:       parts[0],
		Title:    parts[1],
		Body:     parts[2],
		Created:  parts[3],
		Modified: parts[4],
	}, nil
}

// osascript writes its diagnostics with a typographic apostrophe (U+2019),
// e.g. `Can’t get note id`. Normalize to ASCII so matching covers both forms.
var apostrophes = strings.NewReplacer("’", "'")

// classify maps an osascript failure onto the error taxonomy by inspecting
// the AppleScript diagnostic text. Unrecognized failures pass through as
// AutomationError with the diagnostic verbatim.
func (s *Service) classify(op string, err error) error {
	detail := err.Error()
	lower := apostrophes.Replace(strings.ToLower(detail))

	switch {
	case strings.Contains(lower, "can't get folder"):
		return fmt.Errorf("%s: folder %q: %w", op, s.folder, ErrFolderNotFound)
	case strings.Contains(lower, "can't get note id"):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	default:
		return &AutomationError{Op: op, Detail: detail}
	}
}
