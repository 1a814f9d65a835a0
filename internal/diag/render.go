package diag

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/strandlabs/strand/internal/parser"
)

// DefaultContextLines is the excerpt radius used by Diagnostic.String:
// two lines of context on each side of the offending line.
const DefaultContextLines = 2

// Diagnostic is the user-facing form of a parse failure.
type Diagnostic struct {
	Kind       parser.ErrorKind
	Message    string
	SourceFile string
	Loc        Location
	Suggestion string

	src string
}

// FromError maps a parse error to a Diagnostic against the source it came
// from. The second result is false when err is not a *parser.ParseError
// (validation errors carry their own field paths and need no excerpt).
func FromError(err error, src, sourceFile string) (*Diagnostic, bool) {
	var pe *parser.ParseError
	if !errors.As(err, &pe) {
		return nil, false
	}
	return &Diagnostic{
		Kind:       pe.Kind,
		Message:    pe.Error(),
		SourceFile: sourceFile,
		Loc:        Locate(src, pe.Offset),
		Suggestion: suggestionFor(pe),
		src:        src,
	}, true
}

// Excerpt renders the source lines around the failure with line numbers and
// an arrow marking the offending line. contextLines is the radius on each
// side.
func (d *Diagnostic) Excerpt(contextLines int) string {
	lines := strings.Split(d.src, "\n")
	first := d.Loc.Line - contextLines
	if first < 1 {
		first = 1
	}
	last := d.Loc.Line + contextLines
	if last > len(lines) {
		last = len(lines)
	}
	width := len(strconv.Itoa(last))

	var b strings.Builder
	for n := first; n <= last; n++ {
		marker := "  "
		if n == d.Loc.Line {
			marker = "> "
		}
		fmt.Fprintf(&b, "%s%*d | %s", marker, width, n, lines[n-1])
		if n == d.Loc.Line {
			b.WriteString("   ← ERROR HERE")
		}
		if n < last {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// String renders the full diagnostic: a file:line:column header, the
// excerpt, and the suggestion when one exists.
func (d *Diagnostic) String() string {
	var b strings.Builder
	if d.SourceFile != "" {
		b.WriteString(d.SourceFile)
		b.WriteByte(':')
	}
	fmt.Fprintf(&b, "%s: %s\n\n", d.Loc, d.Message)
	b.WriteString(d.Excerpt(DefaultContextLines))
	if d.Suggestion != "" {
		b.WriteString("\n\n")
		b.WriteString(d.Suggestion)
	}
	return b.String()
}

// suggestionFor maps an error kind to a short hint about the expected shape.
func suggestionFor(pe *parser.ParseError) string {
	switch pe.Kind {
	case parser.ErrNoSchemaFound:
		return "a schema file declares its shape with a schema() call, e.g. i.schema({ entities: { ... } })"
	case parser.ErrUnknownFieldType:
		return "valid field types are: string, number, boolean, date, json (aliases: bool, any)"
	case parser.ErrExpectedFieldType:
		return "expected a builder type call such as i.string() or i.json()"
	case parser.ErrInvalidCardinality:
		return `cardinality must be "one" or "many"`
	case parser.ErrMissingEntityName, parser.ErrMissingCardinality, parser.ErrMissingLabel:
		return `a link side requires all of: { on: "<entity>", has: "one" | "many", label: "<field>" }`
	case parser.ErrMissingForward, parser.ErrMissingReverse:
		return "a link requires both sides: { forward: { on, has, label }, reverse: { on, has, label } }"
	default:
		return ""
	}
}
