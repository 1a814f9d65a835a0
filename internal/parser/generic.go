package parser

import (
	"strings"

	"github.com/strandlabs/strand/internal/ir"
)

// parseGenericArg parses the optional `<...>` generic parameter after a
// builder type name. It returns (nil, nil) when no `<` follows. A parameter
// list beginning with a string literal is parsed as a string-union type
// (`<"a" | "b">`); anything else is captured verbatim as an opaque
// structural type, balancing nested `<>` and `{}` and consuming quoted
// strings atomically so a bracket inside a literal never terminates the
// capture early.
func parseGenericArg(c *cursor) (*ir.GenericArg, *ParseError) {
	mark := c.pos
	c.skipTrivia()
	if c.peek() != '<' {
		c.pos = mark
		return nil, nil
	}
	c.pos++
	c.skipTrivia()

	if c.peek() == '"' || c.peek() == '\'' {
		union, err := parseStringUnion(c)
		if err != nil {
			c.pos = mark
			return nil, err
		}
		return &ir.GenericArg{Union: union}, nil
	}

	opaque, err := captureOpaque(c)
	if err != nil {
		c.pos = mark
		return nil, err
	}
	return &ir.GenericArg{Opaque: opaque}, nil
}

// parseStringUnion parses `"a" | "b" | ...` up to and including the closing
// `>`. The option list is ordered and non-empty.
func parseStringUnion(c *cursor) ([]string, *ParseError) {
	var options []string
	for {
		s, err := c.stringLiteral("string union type")
		if err != nil {
			return nil, err
		}
		options = append(options, s)
		c.skipTrivia()
		if c.peek() != '|' {
			break
		}
		c.pos++
		c.skipTrivia()
	}
	if err := c.expect(">", "string union type"); err != nil {
		return nil, err
	}
	return options, nil
}

// captureOpaque consumes everything up to the `>` matching the already
// consumed opening `<` and returns the text verbatim (trimmed). Nested `<>`
// and `{}` are balanced; string literals are skipped atomically.
func captureOpaque(c *cursor) (string, *ParseError) {
	start := c.pos
	angle, brace := 1, 0
	for !c.eof() {
		switch ch := c.peek(); ch {
		case '"', '\'':
			if _, err := c.stringLiteral("generic type parameter"); err != nil {
				return "", err
			}
		case '<':
			angle++
			c.pos++
		case '>':
			if angle > 1 {
				angle--
			} else if brace == 0 {
				text := c.src[start:c.pos]
				c.pos++
				return strings.TrimSpace(text), nil
			}
			c.pos++
		case '{':
			brace++
			c.pos++
		case '}':
			brace--
			c.pos++
		default:
			c.pos++
		}
	}
	return "", errUnexpectedEnd(c, "generic type parameter")
}
