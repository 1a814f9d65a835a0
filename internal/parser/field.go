package parser

import "github.com/strandlabs/strand/internal/ir"

// parseFieldType parses a builder type call such as `i.string()` or
// `i.string<"a" | "b">()`. The builder receiver name is whatever the schema
// file imported; the type name must resolve within the closed field type
// vocabulary (case-insensitively, with bool/any as aliases). The trailing
// call parentheses are mandatory and must be empty.
func parseFieldType(c *cursor) (ir.FieldType, *ir.GenericArg, *ParseError) {
	mark := c.pos
	fail := func(err *ParseError) (ir.FieldType, *ir.GenericArg, *ParseError) {
		c.pos = mark
		return "", nil, err
	}

	if _, err := c.identifier("builder reference"); err != nil {
		return fail(err)
	}
	if err := c.expect(".", "builder reference"); err != nil {
		return fail(err)
	}
	nameOffset := c.pos
	name, err := c.identifier("")
	if err != nil {
		return fail(&ParseError{Kind: ErrExpectedFieldType,
			Context: "builder call", Offset: nameOffset})
	}
	fieldType, ok := ir.FieldTypeFromName(name)
	if !ok {
		return fail(&ParseError{Kind: ErrUnknownFieldType,
			Name: name, Offset: nameOffset})
	}

	generic, genericErr := parseGenericArg(c)
	if genericErr != nil {
		return fail(genericErr)
	}

	c.skipTrivia()
	if err := c.expect("(", "field type name"); err != nil {
		return fail(err)
	}
	c.skipTrivia()
	if err := c.expect(")", "field type call"); err != nil {
		return fail(err)
	}
	return fieldType, generic, nil
}

// parseField parses one field declaration: an identifier, a colon, a builder
// type call, and zero or more chained modifier calls (`.optional()`,
// `.indexed()`, ...). Any modifier name parses, for forward compatibility;
// only `optional` reaches the IR.
func parseField(c *cursor) (ir.Field, *ParseError) {
	mark := c.pos
	fail := func(err *ParseError) (ir.Field, *ParseError) {
		c.pos = mark
		return ir.Field{}, err
	}

	name, err := c.identifier("field name")
	if err != nil {
		return fail(err)
	}
	c.skipTrivia()
	if err := c.expect(":", "field name"); err != nil {
		return fail(err)
	}
	c.skipTrivia()

	fieldType, generic, err := parseFieldType(c)
	if err != nil {
		return fail(err)
	}

	field := ir.Field{Name: name, Type: fieldType, Generic: generic}
	for {
		before := c.pos
		c.skipTrivia()
		if c.peek() != '.' {
			c.pos = before
			return field, nil
		}
		c.pos++
		c.skipTrivia()
		modifier, err := c.identifier("modifier call")
		if err != nil {
			return fail(err)
		}
		c.skipTrivia()
		if err := c.expect("(", "modifier name"); err != nil {
			return fail(err)
		}
		c.skipTrivia()
		if err := c.expect(")", "modifier call"); err != nil {
			return fail(err)
		}
		if modifier == "optional" {
			field.Optional = true
		}
	}
}
