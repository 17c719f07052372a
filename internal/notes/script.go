package notes

import (
	"fmt"

	"github.com/inotes/inotes/internal/applescript"
)

// Delimiters the scripts use to flatten AppleScript lists into parseable
// text. fieldSep joins the fields of one record, recordSep joins records.
const (
	fieldSep  = "|~|"
	recordSep = "||"
)

// appendBoundary separates existing body text from appended content. Notes
// bodies are HTML, so two <br> tags render as a blank line.
const appendBoundary = "<br><br>"

// noteFields flattens the five attributes of theNote into a fieldSep-joined
// string and returns it. Shared tail of the get and append scripts.
const noteFields = `		set noteData to {}
		set end of noteData to id of theNote
		set end of noteData to name of theNote
		set end of noteData to body of theNote
		set end of noteData to creation date of theNote as string
		set end of noteData to modification date of theNote as string
		set AppleScript's text item delimiters to "` + fieldSep + `"
		return noteData as text`

func createScript(folder, title, body string) string {
	return fmt.Sprintf(`tell application "Notes"
	tell folder "%s"
		set newNote to make new note with properties {name:"%s", body:"%s"}
		return id of newNote
	end tell
end tell`, applescript.Quote(folder), applescript.Quote(title), applescript.QuoteBody(body))
}

func getScript(folder, id string) string {
	return fmt.Sprintf(`tell application "Notes"
	tell folder "%s"
		set theNote to note id "%s"
%s
	end tell
end tell`, applescript.Quote(folder), applescript.Quote(id), noteFields)
}

// appendScript mutates and reads back in one invocation. The new body is
// always derived from the existing one; there is no overwrite path.
func appendScript(folder, id, content string) string {
	return fmt.Sprintf(`tell application "Notes"
	tell folder "%s"
		set theNote to note id "%s"
		set body of theNote to (body of theNote) & "%s%s"
%s
	end tell
end tell`, applescript.Quote(folder), applescript.Quote(id), appendBoundary, applescript.QuoteBody(content), noteFields)
}

func listScript(folder string) string {
	return fmt.Sprintf(`tell application "Notes"
	set allNotes to notes of folder "%s"
	set notesList to {}
	repeat with theNote in allNotes
		set noteInfo to {}
		set end of noteInfo to id of theNote
		set end of noteInfo to name of theNote
		set end of noteInfo to creation date of theNote as string
		set end of noteInfo to modification date of theNote as string
		set end of notesList to noteInfo
	end repeat
	set AppleScript's text item delimiters to "%s"
	set flat to {}
	repeat with noteInfo in notesList
		set end of flat to noteInfo as text
	end repeat
	set AppleScript's text item delimiters to "%s"
	return flat as text
end tell`, applescript.Quote(folder), fieldSep, recordSep)
}
