package parser

import (
	"strings"

	"github.com/strandlabs/strand/internal/ir"
)

// schemaMarker locates the schema-construction call in a source file.
const schemaMarker = "schema("

// blockKind is the closed set of top-level schema blocks. Unknown block
// names are an explicit variant so the skip behavior is dispatched, not a
// fallthrough.
type blockKind int

const (
	blockEntities blockKind = iota
	blockLinks
	blockRooms
	blockUnknown
)

func blockKindOf(name string) blockKind {
	switch name {
	case "entities":
		return blockEntities
	case "links":
		return blockLinks
	case "rooms":
		return blockRooms
	default:
		return blockUnknown
	}
}

// Parse locates the schema() call in src, parses its entities, links, and
// rooms blocks (in any order, skipping unrecognized blocks), validates the
// result under DefaultPolicy, and returns the schema IR. sourceFile is a
// label used purely for diagnostics and may be empty.
//
// On failure the error is a *ParseError or ValidationErrors; no partially
// constructed schema is ever returned.
func Parse(src, sourceFile string) (*ir.Schema, error) {
	return ParseWithPolicy(src, sourceFile, DefaultPolicy())
}

// ParseWithPolicy is Parse with an explicit validation policy.
func ParseWithPolicy(src, sourceFile string, policy Policy) (*ir.Schema, error) {
	markerIndex := strings.Index(src, schemaMarker)
	if markerIndex < 0 {
		return nil, &ParseError{Kind: ErrNoSchemaFound}
	}
	c := &cursor{src: src, pos: markerIndex + len(schemaMarker) - 1}

	if err := c.expect("(", "schema call"); err != nil {
		return nil, err
	}
	c.skipTrivia()
	if err := c.expect("{", "schema call"); err != nil {
		return nil, err
	}

	schema := &ir.Schema{
		Entities:   make([]ir.Entity, 0),
		Links:      make([]ir.Link, 0),
		Rooms:      make([]ir.Room, 0),
		SourceFile: sourceFile,
	}
	for {
		c.skipTrivia()
		if c.eof() {
			return nil, errUnexpectedEnd(c, "schema block map")
		}
		if c.peek() == '}' {
			c.pos++
			break
		}
		name, err := c.identifier("block name")
		if err != nil {
			return nil, err
		}
		c.skipTrivia()
		if err := c.expect(":", "block name"); err != nil {
			return nil, err
		}
		c.skipTrivia()
		switch blockKindOf(name) {
		case blockEntities:
			entities, err := parseEntitiesBlock(c)
			if err != nil {
				return nil, err
			}
			schema.Entities = append(schema.Entities, entities...)
		case blockLinks:
			links, err := parseLinksBlock(c)
			if err != nil {
				return nil, err
			}
			schema.Links = append(schema.Links, links...)
		case blockRooms:
			rooms, err := parseRoomsBlock(c)
			if err != nil {
				return nil, err
			}
			schema.Rooms = append(schema.Rooms, rooms...)
		case blockUnknown:
			if err := skipBalancedValue(c, "block "+name); err != nil {
				return nil, err
			}
		}
		c.skipTrivia()
		if c.peek() == ',' {
			c.pos++
		} else if c.peek() != '}' {
			return nil, errExpectedToken(c, ",", "block "+name)
		}
	}

	if errs := ValidateSchema(schema, policy); len(errs) > 0 {
		return nil, errs
	}
	return schema, nil
}

// parseEntitiesBlock parses `{ <entity declarations> }`, attaching doc
// comments to the entities they precede.
func parseEntitiesBlock(c *cursor) ([]ir.Entity, *ParseError) {
	if err := c.expect("{", "entities block"); err != nil {
		return nil, err
	}
	entities := make([]ir.Entity, 0)
	for {
		doc := c.docComment()
		if c.eof() {
			return nil, errUnexpectedEnd(c, "entities block")
		}
		if c.peek() == '}' {
			c.pos++
			return entities, nil
		}
		entity, err := parseEntityDecl(c)
		if err != nil {
			return nil, err
		}
		entity.Documentation = doc
		entities = append(entities, entity)
		c.skipTrivia()
		if c.peek() == ',' {
			c.pos++
		} else if c.peek() != '}' {
			return nil, errExpectedToken(c, ",", "entity declaration")
		}
	}
}

// parseLinksBlock parses `{ <link declarations> }`.
func parseLinksBlock(c *cursor) ([]ir.Link, *ParseError) {
	if err := c.expect("{", "links block"); err != nil {
		return nil, err
	}
	links := make([]ir.Link, 0)
	for {
		doc := c.docComment()
		if c.eof() {
			return nil, errUnexpectedEnd(c, "links block")
		}
		if c.peek() == '}' {
			c.pos++
			return links, nil
		}
		link, err := parseLinkDecl(c)
		if err != nil {
			return nil, err
		}
		link.Documentation = doc
		links = append(links, link)
		c.skipTrivia()
		if c.peek() == ',' {
			c.pos++
		} else if c.peek() != '}' {
			return nil, errExpectedToken(c, ",", "link declaration")
		}
	}
}

// parseRoomsBlock parses `{ <room declarations> }`.
func parseRoomsBlock(c *cursor) ([]ir.Room, *ParseError) {
	if err := c.expect("{", "rooms block"); err != nil {
		return nil, err
	}
	rooms := make([]ir.Room, 0)
	for {
		doc := c.docComment()
		if c.eof() {
			return nil, errUnexpectedEnd(c, "rooms block")
		}
		if c.peek() == '}' {
			c.pos++
			return rooms, nil
		}
		room, err := parseRoomDecl(c)
		if err != nil {
			return nil, err
		}
		room.Documentation = doc
		rooms = append(rooms, room)
		c.skipTrivia()
		if c.peek() == ',' {
			c.pos++
		} else if c.peek() != '}' {
			return nil, errExpectedToken(c, ",", "room declaration")
		}
	}
}

// skipBalancedValue consumes one value without interpreting it, stopping
// (without consuming) at a comma or closing brace at nesting depth zero. It
// tracks `{}`, `[]`, and `()` nesting, consumes quoted strings atomically so
// a brace inside a literal never perturbs depth counting, skips comments,
// and otherwise consumes raw identifier/number/punctuation runs. This is the
// forward-compatibility escape hatch for unrecognized blocks and keys.
func skipBalancedValue(c *cursor, context string) *ParseError {
	depth := 0
	for {
		c.skipTrivia()
		if c.eof() {
			if depth == 0 {
				return nil
			}
			return errUnexpectedEnd(c, context)
		}
		switch ch := c.peek(); ch {
		case '"', '\'':
			if _, err := c.stringLiteral(context); err != nil {
				return err
			}
		case '{', '[', '(':
			depth++
			c.pos++
		case '}':
			if depth == 0 {
				return nil
			}
			depth--
			c.pos++
		case ']', ')':
			if depth == 0 {
				return nil
			}
			depth--
			c.pos++
		case ',':
			if depth == 0 {
				return nil
			}
			c.pos++
		default:
			c.pos++
		}
	}
}
