// Package applescript runs AppleScript source against the local osascript
// binary and provides the string-literal escaping the script templates need.
package applescript

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes an AppleScript body and returns its textual output.
// Implementations are synchronous; cancellation comes from ctx only.
type Runner interface {
	Run(ctx context.Context, script string) (string, error)
}

// Osascript runs scripts through the osascript CLI.
type Osascript struct {
	path string
}

func NewOsascript(path string) *Osascript {
	if path == "" {
		path = "osascript"
	}
	return &Osascript{path: path}
}

// Check reports whether the osascript binary is resolvable. Used by the
// health endpoint; it does not talk to the Notes application.
func (o *Osascript) Check() error {
	if _, err := exec.LookPath(o.path); err != nil {
		return fmt.Errorf("osascript unavailable: %w", err)
	}
	return nil
}

// Run executes the script and returns trimmed stdout. A non-zero exit
// surfaces as an *ExecError carrying whatever osascript wrote to stderr.
// No timeout is imposed here; a slow Notes launch blocks the call.
func (o *Osascript) Run(ctx context.Context, script string) (string, error) {
	cmd := exec.CommandContext(ctx, o.path, "-e", script)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", &ExecError{
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}

	return strings.TrimRight(stdout.String(), "\n"), nil
}

// ExecError is a failed osascript invocation. Stderr holds the diagnostic
// text AppleScript produced, which callers classify into domain errors.
type ExecError struct {
	Stderr string
	Err    error
}

func (e *ExecError) Error() string {
	if e.Stderr != "" {
		return e.Stderr
	}
	return e.Err.Error()
}

func (e *ExecError) Unwrap() error { return e.Err }
