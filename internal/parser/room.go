package parser

import "github.com/strandlabs/strand/internal/ir"

// parseTopicDecl parses one topic declaration inside a room's topics map:
// `name: builder.entity({ ... })`. The payload entity takes the topic's
// name; RoomName is filled in by the room parser.
func parseTopicDecl(c *cursor) (ir.Topic, *ParseError) {
	mark := c.pos
	fail := func(err *ParseError) (ir.Topic, *ParseError) {
		c.pos = mark
		return ir.Topic{}, err
	}

	name, err := c.identifier("topic name")
	if err != nil {
		return fail(err)
	}
	c.skipTrivia()
	if err := c.expect(":", "topic name"); err != nil {
		return fail(err)
	}
	c.skipTrivia()
	fields, err := parseEntityCall(c)
	if err != nil {
		return fail(err)
	}
	return ir.Topic{Name: name, Payload: ir.Entity{Name: name, Fields: fields}}, nil
}

// parseRoomDecl parses one room declaration inside the rooms block:
// `name: { presence?: builder.entity({...}), topics?: { ... } }`. Presence
// and topics are both optional and may appear in either order; unrecognized
// keys are skipped structurally.
func parseRoomDecl(c *cursor) (ir.Room, *ParseError) {
	mark := c.pos
	fail := func(err *ParseError) (ir.Room, *ParseError) {
		c.pos = mark
		return ir.Room{}, err
	}

	name, err := c.identifier("room name")
	if err != nil {
		return fail(err)
	}
	c.skipTrivia()
	if err := c.expect(":", "room name"); err != nil {
		return fail(err)
	}
	c.skipTrivia()
	if err := c.expect("{", "room declaration"); err != nil {
		return fail(err)
	}

	room := ir.Room{Name: name}
	for {
		c.skipTrivia()
		if c.eof() {
			return fail(errUnexpectedEnd(c, "room declaration"))
		}
		if c.peek() == '}' {
			c.pos++
			break
		}
		key, err := c.identifier("room declaration key")
		if err != nil {
			return fail(err)
		}
		c.skipTrivia()
		if err := c.expect(":", "room declaration key"); err != nil {
			return fail(err)
		}
		c.skipTrivia()
		switch key {
		case "presence":
			fields, err := parseEntityCall(c)
			if err != nil {
				return fail(err)
			}
			room.Presence = &ir.Entity{Name: "presence", Fields: fields}
		case "topics":
			topics, err := parseTopicsMap(c, name)
			if err != nil {
				return fail(err)
			}
			room.Topics = topics
		default:
			if err := skipBalancedValue(c, "room declaration value"); err != nil {
				return fail(err)
			}
		}
		c.skipTrivia()
		if c.peek() == ',' {
			c.pos++
		} else if c.peek() != '}' {
			return fail(errExpectedToken(c, ",", "room declaration key"))
		}
	}
	return room, nil
}

// parseTopicsMap parses the brace-delimited topic map of one room. Each
// topic may carry a doc comment, which lands on its payload entity.
func parseTopicsMap(c *cursor, roomName string) ([]ir.Topic, *ParseError) {
	if err := c.expect("{", "topics map"); err != nil {
		return nil, err
	}
	topics := make([]ir.Topic, 0)
	for {
		doc := c.docComment()
		if c.eof() {
			return nil, errUnexpectedEnd(c, "topics map")
		}
		if c.peek() == '}' {
			c.pos++
			return topics, nil
		}
		topic, err := parseTopicDecl(c)
		if err != nil {
			return nil, err
		}
		topic.RoomName = roomName
		topic.Payload.Documentation = doc
		topics = append(topics, topic)
		c.skipTrivia()
		if c.peek() == ',' {
			c.pos++
		} else if c.peek() != '}' {
			return nil, errExpectedToken(c, ",", "topic declaration")
		}
	}
}
