package gfa

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// EdgeKey is an unordered pair of segment names. The smaller name (in
// lexicographic order) is always first.
type EdgeKey [2]string

// NewEdgeKey returns the canonical key for a link between a and b.
func NewEdgeKey(a, b string) EdgeKey {
	if b < a {
		a, b = b, a
	}
	return EdgeKey{a, b}
}

func (k EdgeKey) String() string {
	return fmt.Sprintf("(%s, %s)", k[0], k[1])
}

// Link is the part of an `L` record that the filter cares about.
type Link struct {
	From, To string

	// Raw is the record with trailing whitespace stripped.
	Raw string
}

// Key returns the canonical key of the link.
func (l Link) Key() EdgeKey {
	return NewEdgeKey(l.From, l.To)
}

// IsSelfLoop reports whether both ends of the link are the same segment.
func (l Link) IsSelfLoop() bool {
	return l.From == l.To
}

// MalformedLineError is returned when an `L` record has too few fields to
// name both of its segments.
type MalformedLineError struct {
	Line   string
	Fields int
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("malformed link record (%d fields, need at least 4): %q",
		e.Fields, e.Line)
}

// IsLink reports whether line is an `L` record.
func IsLink(line string) bool {
	return strings.HasPrefix(line, "L")
}

// Strip removes trailing whitespace, including any line terminator.
func Strip(line string) string {
	return strings.TrimRightFunc(line, unicode.IsSpace)
}

// ParseLink extracts the segment names at fields 1 and 3 of an `L` record.
// Orientation and overlap fields are not inspected.
//
// The error returned for a short record wraps a *MalformedLineError with the
// stack at the point of failure; print it with "%+v" to see the trace.
func ParseLink(line string) (Link, error) {
	raw := Strip(line)
	fields := strings.Fields(raw)
	if len(fields) < 4 {
		return Link{}, errors.WithStack(&MalformedLineError{
			Line:   raw,
			Fields: len(fields),
		})
	}
	return Link{From: fields[1], To: fields[3], Raw: raw}, nil
}

// AsMalformed returns the *MalformedLineError in err's chain, if any.
func AsMalformed(err error) (*MalformedLineError, bool) {
	var merr *MalformedLineError
	if errors.As(err, &merr) {
		return merr, true
	}
	return nil, false
}
