package applescript

import "strings"

var literalEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// Quote escapes s for interpolation inside a double-quoted AppleScript
// string literal. Backslashes must be doubled before quotes are escaped,
// which NewReplacer's single-pass semantics guarantee.
func Quote(s string) string {
	return literalEscaper.Replace(s)
}

// QuoteBody escapes a note body. Notes stores bodies as HTML, so newlines
// become <br> tags on the way in.
func QuoteBody(s string) string {
	return strings.ReplaceAll(Quote(s), "\n", "<br>")
}
