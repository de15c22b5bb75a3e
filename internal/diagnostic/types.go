package diagnostic

import (
	"errors"
	"slices"
	"strconv"
	"strings"

	"locstring-generator/internal/common"
)

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Descriptor describes the kind of diagnostic.
	Descriptor Descriptor
	// Args are the positional message arguments.
	Args []string
	// Location is the trimmed source location, nil when there is none.
	Location *Location
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// New creates a diagnostic for a catalogue code. Unknown codes yield a
// diagnostic with an empty descriptor carrying only the code.
func New(code Code, loc *Location, args ...string) Diagnostic {
	desc, ok := Lookup(code)
	if !ok {
		desc = Descriptor{Code: code, Severity: DiagnosticError, Category: Category}
	}

	return Diagnostic{
		Descriptor: desc,
		Args:       slices.Clone(args),
		Location:   loc,
	}
}

// Code returns the descriptor code.
func (d Diagnostic) Code() Code {
	return d.Descriptor.Code
}

// Message formats the descriptor template with the diagnostic arguments.
func (d Diagnostic) Message() string {
	return formatMessage(d.Descriptor.Message, d.Args)
}

// Equal reports whether two diagnostics are structurally equal.
func (d Diagnostic) Equal(other Diagnostic) bool {
	return d.Descriptor == other.Descriptor &&
		slices.Equal(d.Args, other.Args) &&
		d.Location.Equal(other.Location)
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	msg := d.Descriptor.Severity.String() + " " + d.Descriptor.ID() + ": " + d.Message()
	if d.Location != nil {
		return d.Location.String() + ": " + msg
	}

	return msg
}

// formatMessage replaces {N} placeholders with args[N]. Placeholders
// without a matching argument are kept verbatim.
func formatMessage(tmpl string, args []string) string {
	if len(args) == 0 || !strings.Contains(tmpl, "{") {
		return tmpl
	}

	var b strings.Builder
	for i := 0; i < len(tmpl); i++ {
		if tmpl[i] != '{' {
			b.WriteByte(tmpl[i])
			continue
		}

		end := strings.IndexByte(tmpl[i:], '}')
		if end < 0 {
			b.WriteString(tmpl[i:])
			break
		}

		n, err := strconv.Atoi(tmpl[i+1 : i+end])
		if err != nil || n < 0 || n >= len(args) {
			b.WriteString(tmpl[i : i+end+1])
		} else {
			b.WriteString(args[n])
		}

		i += end
	}

	return b.String()
}

// List holds diagnostics in emission order, dropping exact duplicates.
// The zero value is ready to use.
type List struct {
	items []Diagnostic
	seen  map[string]struct{}
}

// NewList creates an empty List.
func NewList() *List {
	return &List{}
}

// Add appends d unless an equal diagnostic was already added. It returns
// true when d was appended.
func (l *List) Add(d Diagnostic) bool {
	key := dedupKey(d)
	if _, ok := l.seen[key]; ok {
		return false
	}

	if l.seen == nil {
		l.seen = make(map[string]struct{})
	}

	l.seen[key] = struct{}{}
	l.items = append(l.items, d)

	return true
}

// Len returns the number of diagnostics.
func (l *List) Len() int {
	return len(l.items)
}

// Items returns a copy of the diagnostics in emission order, nil if empty.
func (l *List) Items() []Diagnostic {
	if len(l.items) == 0 {
		return nil
	}

	return slices.Clone(l.items)
}

// HasErrors returns true if there are any error diagnostics.
func (l *List) HasErrors() bool {
	for i := range l.items {
		if l.items[i].Descriptor.Severity == DiagnosticError {
			return true
		}
	}

	return false
}

// Error returns a combined error from all error diagnostics, or nil.
func (l *List) Error() error {
	var parts []string
	for _, d := range l.items {
		if d.Descriptor.Severity == DiagnosticError {
			parts = append(parts, d.String())
		}
	}

	if len(parts) == 0 {
		return nil
	}

	return errors.New(strings.Join(parts, "; "))
}

// Equal reports whether two diagnostic sequences are equal element-wise.
func Equal(a, b []Diagnostic) bool {
	return slices.EqualFunc(a, b, Diagnostic.Equal)
}

func dedupKey(d Diagnostic) string {
	var b strings.Builder
	b.WriteString(d.Descriptor.ID())
	b.WriteByte('|')
	if d.Location != nil {
		loc := d.Location
		b.WriteString(loc.File)
		for _, v := range []uint32{loc.Start, loc.End, loc.StartLine, loc.StartCol, loc.EndLine, loc.EndCol} {
			b.WriteByte(':')
			b.WriteString(strconv.FormatUint(uint64(v), 10))
		}
	}

	for _, a := range d.Args {
		b.WriteByte(0)
		b.WriteString(a)
	}

	return b.String()
}
