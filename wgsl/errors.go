package wgsl

import (
	"errors"
	"fmt"
	"strings"
)

// GrammarError reports that a grammar rule failed to match at a byte offset.
//
// Rules holds the stack of named rule contexts active at the failure,
// outermost first. Committed is set once the failing grammar has passed its
// commit point; uncommitted errors only signal that an alternative did not
// match and the caller may backtrack.
type GrammarError struct {
	Message   string
	Offset    int
	Source    string // Source text the offset points into (for context display)
	Rules     []string
	Committed bool
}

// Error implements the error interface.
func (e *GrammarError) Error() string {
	var sb strings.Builder
	pos := e.Position()
	if pos.Line > 0 {
		fmt.Fprintf(&sb, "%d:%d: ", pos.Line, pos.Column)
	}
	for _, rule := range e.Rules {
		sb.WriteString(rule)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Message)
	return sb.String()
}

// Position resolves the error offset to a line and column.
// Positions are computed on demand because the scanner discards most errors.
func (e *GrammarError) Position() Position {
	if e.Source == "" {
		return Position{Offset: e.Offset}
	}
	return PositionOf(e.Source, e.Offset)
}

// FormatWithContext returns the error message with source context.
// Shows the problematic line with a caret pointing to the error location.
func (e *GrammarError) FormatWithContext() string {
	pos := e.Position()
	if e.Source == "" || pos.Line == 0 {
		return e.Error()
	}

	lines := strings.Split(e.Source, "\n")
	if pos.Line > len(lines) {
		return e.Error()
	}

	line := lines[pos.Line-1]
	col := pos.Column
	if col < 1 {
		col = 1
	}
	if col > len(line)+1 {
		col = len(line) + 1
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "error: %s\n", e.Message)
	fmt.Fprintf(&sb, "  --> line %d:%d\n", pos.Line, col)
	if len(e.Rules) > 0 {
		fmt.Fprintf(&sb, "   = in %s\n", strings.Join(e.Rules, " > "))
	}
	sb.WriteString("   |\n")
	fmt.Fprintf(&sb, "%3d| %s\n", pos.Line, line)
	fmt.Fprintf(&sb, "   | %s^\n", strings.Repeat(" ", col-1))

	return sb.String()
}

// NewGrammarError creates a new uncommitted GrammarError.
func NewGrammarError(message string, offset int, source string) *GrammarError {
	return &GrammarError{
		Message: message,
		Offset:  offset,
		Source:  source,
	}
}

// NewGrammarErrorf creates a new uncommitted GrammarError with formatted message.
func NewGrammarErrorf(offset int, source string, format string, args ...interface{}) *GrammarError {
	return NewGrammarError(fmt.Sprintf(format, args...), offset, source)
}

// InRule pushes rule onto the context stack of a GrammarError.
// Other errors are returned unchanged.
func InRule(rule string, err error) error {
	var ge *GrammarError
	if errors.As(err, &ge) {
		ge.Rules = append([]string{rule}, ge.Rules...)
	}
	return err
}

// Commit marks a GrammarError as committed, turning a backtracking signal
// into a hard failure.
func Commit(err error) error {
	var ge *GrammarError
	if errors.As(err, &ge) {
		ge.Committed = true
	}
	return err
}

// IsCommitted reports whether err is a committed GrammarError.
func IsCommitted(err error) bool {
	var ge *GrammarError
	return errors.As(err, &ge) && ge.Committed
}

// GrammarErrors represents a list of grammar errors.
type GrammarErrors []*GrammarError

// Error implements the error interface.
func (el GrammarErrors) Error() string {
	if len(el) == 0 {
		return "no errors"
	}
	if len(el) == 1 {
		return el[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", el[0].Error(), len(el)-1)
}

// FormatAll returns all errors formatted with context.
func (el GrammarErrors) FormatAll() string {
	var sb strings.Builder
	for i, e := range el {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(e.FormatWithContext())
	}
	return sb.String()
}

// Add adds an error to the list.
func (el *GrammarErrors) Add(err *GrammarError) {
	*el = append(*el, err)
}

// Len returns the number of errors.
func (el GrammarErrors) Len() int {
	return len(el)
}

// HasErrors returns true if there are any errors.
func (el GrammarErrors) HasErrors() bool {
	return len(el) > 0
}
