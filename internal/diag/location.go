package diag

import "fmt"

// Location is a position in a source buffer: 1-based line and column plus
// the raw byte offset. Columns count characters, not bytes.
type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
	Offset int `json:"offset"`
}

// Locate computes the Location of a byte offset in src. Offsets beyond the
// buffer clamp to its end.
func Locate(src string, offset int) Location {
	if offset > len(src) {
		offset = len(src)
	}
	if offset < 0 {
		offset = 0
	}
	line, column := 1, 1
	for _, r := range src[:offset] {
		if r == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return Location{Line: line, Column: column, Offset: offset}
}

// String renders the location as "line:column".
func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}
