package parser

import "github.com/strandlabs/strand/internal/ir"

// parseEntityCall parses `builder.entity({ ... })` and returns the ordered
// field list. An empty field list is legal. Trailing commas after fields are
// accepted.
func parseEntityCall(c *cursor) ([]ir.Field, *ParseError) {
	mark := c.pos
	fail := func(err *ParseError) ([]ir.Field, *ParseError) {
		c.pos = mark
		return nil, err
	}

	if _, err := c.identifier("builder reference"); err != nil {
		return fail(err)
	}
	if err := c.expect(".", "builder reference"); err != nil {
		return fail(err)
	}
	callOffset := c.pos
	call, err := c.identifier("builder call")
	if err != nil {
		return fail(err)
	}
	if call != "entity" {
		return fail(&ParseError{Kind: ErrExpectedToken, Token: "entity",
			Context: "builder reference", Offset: callOffset})
	}
	c.skipTrivia()
	if err := c.expect("(", "entity builder"); err != nil {
		return fail(err)
	}
	c.skipTrivia()
	if err := c.expect("{", "entity call"); err != nil {
		return fail(err)
	}

	fields := make([]ir.Field, 0)
	for {
		c.skipTrivia()
		if c.eof() {
			return fail(errUnexpectedEnd(c, "entity field list"))
		}
		if c.peek() == '}' {
			c.pos++
			break
		}
		field, err := parseField(c)
		if err != nil {
			return fail(err)
		}
		fields = append(fields, field)
		c.skipTrivia()
		if c.peek() == ',' {
			c.pos++
		} else if c.peek() != '}' {
			return fail(errExpectedToken(c, ",", "field declaration"))
		}
	}

	c.skipTrivia()
	if err := c.expect(")", "entity field list"); err != nil {
		return fail(err)
	}
	return fields, nil
}

// parseEntityDecl parses one entity declaration inside the entities block:
// `name: builder.entity({ ... })`.
func parseEntityDecl(c *cursor) (ir.Entity, *ParseError) {
	mark := c.pos
	fail := func(err *ParseError) (ir.Entity, *ParseError) {
		c.pos = mark
		return ir.Entity{}, err
	}

	name, err := c.identifier("entity name")
	if err != nil {
		return fail(err)
	}
	c.skipTrivia()
	if err := c.expect(":", "entity name"); err != nil {
		return fail(err)
	}
	c.skipTrivia()
	fields, err := parseEntityCall(c)
	if err != nil {
		return fail(err)
	}
	return ir.Entity{Name: name, Fields: fields}, nil
}
