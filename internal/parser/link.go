package parser

import "github.com/strandlabs/strand/internal/ir"

// parseLinkSide parses one side of a link: a brace-delimited object with the
// mandatory keys `on`, `has`, and `label`. Any other key is skipped without
// interpreting its value. Missing keys are reported as distinct errors,
// never defaulted.
func parseLinkSide(c *cursor, context string) (ir.LinkSide, *ParseError) {
	mark := c.pos
	fail := func(err *ParseError) (ir.LinkSide, *ParseError) {
		c.pos = mark
		return ir.LinkSide{}, err
	}

	openOffset := c.pos
	if err := c.expect("{", context); err != nil {
		return fail(err)
	}

	var side ir.LinkSide
	var seenOn, seenHas, seenLabel bool
	for {
		c.skipTrivia()
		if c.eof() {
			return fail(errUnexpectedEnd(c, context))
		}
		if c.peek() == '}' {
			c.pos++
			break
		}
		key, err := c.identifier(context + " key")
		if err != nil {
			return fail(err)
		}
		c.skipTrivia()
		if err := c.expect(":", context+" key"); err != nil {
			return fail(err)
		}
		c.skipTrivia()
		switch key {
		case "on":
			on, err := c.stringLiteral("link target entity")
			if err != nil {
				return fail(err)
			}
			side.On = on
			seenOn = true
		case "has":
			hasOffset := c.pos
			has, err := c.stringLiteral("link cardinality")
			if err != nil {
				return fail(err)
			}
			cardinality, ok := ir.CardinalityFromString(has)
			if !ok {
				return fail(&ParseError{Kind: ErrInvalidCardinality,
					Name: has, Offset: hasOffset})
			}
			side.Has = cardinality
			seenHas = true
		case "label":
			label, err := c.stringLiteral("link label")
			if err != nil {
				return fail(err)
			}
			side.Label = label
			seenLabel = true
		default:
			// Unrecognized key (e.g. `required: true`): skip to the next
			// comma or the closing brace without interpreting the value.
			if err := skipBalancedValue(c, context+" value"); err != nil {
				return fail(err)
			}
		}
		c.skipTrivia()
		if c.peek() == ',' {
			c.pos++
		} else if c.peek() != '}' {
			return fail(errExpectedToken(c, ",", context+" key"))
		}
	}

	if !seenOn {
		return fail(&ParseError{Kind: ErrMissingEntityName,
			Context: context, Offset: openOffset})
	}
	if !seenHas {
		return fail(&ParseError{Kind: ErrMissingCardinality,
			Context: context, Offset: openOffset})
	}
	if !seenLabel {
		return fail(&ParseError{Kind: ErrMissingLabel,
			Context: context, Offset: openOffset})
	}
	return side, nil
}

// parseLinkDecl parses one link declaration inside the links block:
// `name: { forward: {...}, reverse: {...} }`. The forward and reverse keys
// may appear in either order; both are mandatory. Unrecognized keys are
// skipped.
func parseLinkDecl(c *cursor) (ir.Link, *ParseError) {
	mark := c.pos
	fail := func(err *ParseError) (ir.Link, *ParseError) {
		c.pos = mark
		return ir.Link{}, err
	}

	name, err := c.identifier("link name")
	if err != nil {
		return fail(err)
	}
	c.skipTrivia()
	if err := c.expect(":", "link name"); err != nil {
		return fail(err)
	}
	c.skipTrivia()
	openOffset := c.pos
	if err := c.expect("{", "link declaration"); err != nil {
		return fail(err)
	}

	link := ir.Link{Name: name}
	var seenForward, seenReverse bool
	for {
		c.skipTrivia()
		if c.eof() {
			return fail(errUnexpectedEnd(c, "link declaration"))
		}
		if c.peek() == '}' {
			c.pos++
			break
		}
		key, err := c.identifier("link declaration key")
		if err != nil {
			return fail(err)
		}
		c.skipTrivia()
		if err := c.expect(":", "link declaration key"); err != nil {
			return fail(err)
		}
		c.skipTrivia()
		switch key {
		case "forward":
			side, err := parseLinkSide(c, "forward link side")
			if err != nil {
				return fail(err)
			}
			link.Forward = side
			seenForward = true
		case "reverse":
			side, err := parseLinkSide(c, "reverse link side")
			if err != nil {
				return fail(err)
			}
			link.Reverse = side
			seenReverse = true
		default:
			if err := skipBalancedValue(c, "link declaration value"); err != nil {
				return fail(err)
			}
		}
		c.skipTrivia()
		if c.peek() == ',' {
			c.pos++
		} else if c.peek() != '}' {
			return fail(errExpectedToken(c, ",", "link declaration key"))
		}
	}

	if !seenForward {
		return fail(&ParseError{Kind: ErrMissingForward,
			Context: "link " + name, Offset: openOffset})
	}
	if !seenReverse {
		return fail(&ParseError{Kind: ErrMissingReverse,
			Context: "link " + name, Offset: openOffset})
	}
	return link, nil
}
