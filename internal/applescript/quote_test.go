package applescript_test

import (
	"testing"

	"github.com/inotes/inotes/internal/applescript"
)

func TestQuote(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{`plain`, `plain`},
		{`has "quotes"`, `has \"quotes\"`},
		{`back\slash`, `back\\slash`},
		{`both \"`, `both \\\"`},
		{``, ``},
	}
	for _, c := range cases {
		if got := applescript.Quote(c.in); got != c.want {
			t.Errorf("Quote(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestQuoteBody(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"one line", "one line"},
		{"a\nb", "a<br>b"},
		{"a\n\nb", "a<br><br>b"},
		{"say \"hi\"\nbye", `say \"hi\"<br>bye`},
	}
	for _, c := range cases {
		if got := applescript.QuoteBody(c.in); got != c.want {
			t.Errorf("QuoteBody(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestExecError(t *testing.T) {
	err := &applescript.ExecError{Stderr: "execution error: boom (-1)", Err: errExit}
	if err.Error() != "execution error: boom (-1)" {
		t.Errorf("Error() = %q, want stderr text", err.Error())
	}

	empty := &applescript.ExecError{Err: errExit}
	if empty.Error() != errExit.Error() {
		t.Errorf("Error() = %q, want underlying error when stderr is empty", empty.Error())
	}
}

var errExit = &exitErr{}

type exitErr struct{}

func (*exitErr) Error() string { return "exit status 1" }
