package notes

import (
	"errors"
	"fmt"
)

// ErrNotFound means the note id did not resolve inside the fixed folder.
var ErrNotFound = errors.New("note not found in folder")

// ErrFolderNotFound means the fixed folder does not exist in the Notes
// application. The folder is never auto-created; it is a manual prerequisite.
var ErrFolderNotFound = errors.New("notes folder not found")

// AutomationError is an osascript invocation that was rejected or produced
// output the gateway could not interpret. Detail carries the diagnostic text
// verbatim (AppleScript stderr, or a description of the malformed output).
type AutomationError struct {
	Op     string
	Detail string
}

func (e *AutomationError) Error() string {
	return fmt.Sprintf("%s: automation failed: %s", e.Op, e.Detail)
}

// InvalidArgumentError is a missing or empty required argument, rejected
// before any automation call is made.
type InvalidArgumentError struct {
	Field  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Field, e.Reason)
}
