package diagnostic

import (
	"fmt"

	"fortio.org/safecast"

	"locstring-generator/internal/analyze"
)

// Location is a self-contained source span: a file path plus character and
// line/column ranges. It holds no reference into the front-end.
type Location struct {
	File      string
	Start     uint32
	End       uint32
	StartLine uint32
	StartCol  uint32
	EndLine   uint32
	EndCol    uint32
}

// Trim copies the span of a front-end location, dropping its handle.
// It returns nil for an empty location.
func Trim(loc analyze.Location) *Location {
	if loc.IsZero() {
		return nil
	}

	return &Location{
		File:      loc.File,
		Start:     toOffset(loc.Start),
		End:       toOffset(loc.End),
		StartLine: toOffset(loc.StartLine),
		StartCol:  toOffset(loc.StartCol),
		EndLine:   toOffset(loc.EndLine),
		EndCol:    toOffset(loc.EndCol),
	}
}

// toOffset clamps values a front-end should never produce (negative) to zero.
func toOffset(v int) uint32 {
	n, err := safecast.Conv[uint32](v)
	if err != nil {
		return 0
	}

	return n
}

// Equal reports whether two locations are equal; nil only equals nil.
func (l *Location) Equal(other *Location) bool {
	if l == nil || other == nil {
		return l == other
	}

	return *l == *other
}

// String renders "file(line,col)" with one-based line and column.
func (l *Location) String() string {
	if l == nil {
		return ""
	}

	return fmt.Sprintf("%s(%d,%d)", l.File, l.StartLine+1, l.StartCol+1)
}
