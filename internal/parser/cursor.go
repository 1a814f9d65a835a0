package parser

import "strings"

// cursor is the shrinking view over one parse call's source: the full buffer
// plus a byte position. Primitives advance pos on success and leave it
// untouched on failure, so callers doing hasPrefix-style lookahead always
// operate on a consistent position. A cursor never escapes the parse call
// that created it.
type cursor struct {
	src string
	pos int
}

func (c *cursor) eof() bool {
	return c.pos >= len(c.src)
}

// peek returns the next byte, or 0 at end of input.
func (c *cursor) peek() byte {
	if c.eof() {
		return 0
	}
	return c.src[c.pos]
}

func (c *cursor) hasPrefix(s string) bool {
	return strings.HasPrefix(c.src[c.pos:], s)
}

// expect consumes the exact token or fails without consuming anything.
func (c *cursor) expect(token, context string) *ParseError {
	if !c.hasPrefix(token) {
		return errExpectedToken(c, token, context)
	}
	c.pos += len(token)
	return nil
}

func isIdentStart(b byte) bool {
	return b == '_' || b == '$' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentPart(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

// identifier consumes one identifier: a letter, underscore, or `$` followed
// by letters, digits, or underscores.
func (c *cursor) identifier(context string) (string, *ParseError) {
	if c.eof() || !isIdentStart(c.peek()) {
		return "", errExpectedIdentifier(c, context)
	}
	start := c.pos
	c.pos++
	for !c.eof() && isIdentPart(c.peek()) {
		c.pos++
	}
	return c.src[start:c.pos], nil
}

// stringLiteral consumes a single- or double-quoted literal and returns its
// unescaped contents. Fails without consuming on a missing opening quote or
// an unterminated literal.
func (c *cursor) stringLiteral(context string) (string, *ParseError) {
	if c.eof() {
		return "", errUnexpectedEnd(c, context)
	}
	quote := c.peek()
	if quote != '"' && quote != '\'' {
		return "", errExpectedToken(c, `"`, context)
	}
	var b strings.Builder
	i := c.pos + 1
	for i < len(c.src) {
		ch := c.src[i]
		switch ch {
		case quote:
			c.pos = i + 1
			return b.String(), nil
		case '\\':
			if i+1 >= len(c.src) {
				return "", errUnexpectedEnd(c, "string literal")
			}
			switch esc := c.src[i+1]; esc {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			default:
				b.WriteByte(esc)
			}
			i += 2
		default:
			b.WriteByte(ch)
			i++
		}
	}
	return "", errUnexpectedEnd(c, "string literal")
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

// whitespace consumes an optional run of whitespace and returns the number
// of newlines it contained.
func (c *cursor) whitespace() int {
	newlines := 0
	for !c.eof() && isSpace(c.peek()) {
		if c.peek() == '\n' {
			newlines++
		}
		c.pos++
	}
	return newlines
}

// requiredWhitespace is the mandatory variant: at least one whitespace
// character must be present.
func (c *cursor) requiredWhitespace(context string) *ParseError {
	if c.eof() {
		return errUnexpectedEnd(c, context)
	}
	if !isSpace(c.peek()) {
		return &ParseError{Kind: ErrInvalidSyntax,
			Message: "expected whitespace in " + context, Offset: c.pos}
	}
	c.whitespace()
	return nil
}

// lineComment consumes `//` through end of line (exclusive of the newline).
func (c *cursor) lineComment() {
	for !c.eof() && c.peek() != '\n' {
		c.pos++
	}
}

// blockComment consumes from `/*` through the matching `*/`. An unterminated
// comment swallows the rest of the input; the surrounding construct then
// fails with its own unexpected-end error.
func (c *cursor) blockComment() {
	c.pos += 2
	if end := strings.Index(c.src[c.pos:], "*/"); end >= 0 {
		c.pos += end + 2
	} else {
		c.pos = len(c.src)
	}
}

// skipTrivia consumes whitespace and comments (line, block, and doc) until
// none remain. It is used between all tokens so that formatting and comment
// style never affect parse success.
func (c *cursor) skipTrivia() {
	for {
		c.whitespace()
		switch {
		case c.hasPrefix("//"):
			c.lineComment()
		case c.hasPrefix("/*"):
			c.blockComment()
		default:
			return
		}
	}
}

// jsDoc consumes a `/** ... */` comment and returns its inner text with the
// leading `*` gutter stripped from each line and the whole trimmed. The
// second result is false (and nothing is consumed) when the cursor is not at
// a doc comment; `/**/` counts as a plain block comment, not documentation.
func (c *cursor) jsDoc() (string, bool) {
	if !c.hasPrefix("/**") || c.hasPrefix("/**/") {
		return "", false
	}
	end := strings.Index(c.src[c.pos+3:], "*/")
	if end < 0 {
		return "", false
	}
	inner := c.src[c.pos+3 : c.pos+3+end]
	c.pos += 3 + end + 2

	lines := strings.Split(inner, "\n")
	for i, line := range lines {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "*")
		lines[i] = strings.TrimSpace(line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), true
}

// startsOwnLine reports whether only whitespace precedes the current
// position on its line. A doc comment that trails another construct on the
// same line does not document the next item.
func (c *cursor) startsOwnLine() bool {
	for i := c.pos - 1; i >= 0; i-- {
		switch c.src[i] {
		case '\n':
			return true
		case ' ', '\t', '\r':
			continue
		default:
			return false
		}
	}
	return true
}

// docComment consumes leading trivia and returns the text of a doc comment
// attached to the next token. A doc comment is attached only when it starts
// on its own line and no blank line or further comment separates it from the
// token it precedes.
func (c *cursor) docComment() string {
	doc := ""
	for {
		newlines := c.whitespace()
		if doc != "" && newlines >= 2 {
			doc = ""
		}
		switch {
		case c.hasPrefix("//"):
			c.lineComment()
			doc = ""
		case c.hasPrefix("/**") && !c.hasPrefix("/**/"):
			ownLine := c.startsOwnLine()
			d, ok := c.jsDoc()
			if !ok {
				// Unterminated; treat as a plain block comment.
				c.blockComment()
				doc = ""
				continue
			}
			if ownLine {
				doc = d
			} else {
				doc = ""
			}
		case c.hasPrefix("/*"):
			c.blockComment()
			doc = ""
		default:
			return doc
		}
	}
}
