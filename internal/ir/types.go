package ir

import "strings"

// FieldType is the closed set of scalar type tags a field may carry.
type FieldType string

const (
	FieldTypeString  FieldType = "string"
	FieldTypeNumber  FieldType = "number"
	FieldTypeBoolean FieldType = "boolean"
	FieldTypeDate    FieldType = "date"
	FieldTypeJSON    FieldType = "json"
)

// ValidFieldTypes lists the canonical type tags in display order.
var ValidFieldTypes = []FieldType{
	FieldTypeString,
	FieldTypeNumber,
	FieldTypeBoolean,
	FieldTypeDate,
	FieldTypeJSON,
}

// FieldTypeFromName resolves a builder call name to a FieldType. Matching is
// case-insensitive; "bool" and "any" are accepted as aliases for "boolean"
// and "json". The second result is false for any other name.
func FieldTypeFromName(name string) (FieldType, bool) {
	switch strings.ToLower(name) {
	case "string":
		return FieldTypeString, true
	case "number":
		return FieldTypeNumber, true
	case "boolean", "bool":
		return FieldTypeBoolean, true
	case "date":
		return FieldTypeDate, true
	case "json", "any":
		return FieldTypeJSON, true
	default:
		return "", false
	}
}

// Cardinality is how many records a link side resolves to.
type Cardinality string

const (
	CardinalityOne  Cardinality = "one"
	CardinalityMany Cardinality = "many"
)

// CardinalityFromString resolves a "has" value to a Cardinality.
// The second result is false for anything other than "one" or "many".
func CardinalityFromString(s string) (Cardinality, bool) {
	switch s {
	case "one":
		return CardinalityOne, true
	case "many":
		return CardinalityMany, true
	default:
		return "", false
	}
}

// GenericArg is the parsed generic type argument of a field type call.
// Exactly one of Union or Opaque is set: Union holds the ordered options of
// a string-union type (`i.string<"a" | "b">()`), Opaque holds the verbatim
// text of a structural type expression that is not parsed further
// (`i.json<{x: number}>()`).
type GenericArg struct {
	Union  []string `json:"union,omitempty"`
	Opaque string   `json:"opaque,omitempty"`
}

// Field is one typed field of an entity.
type Field struct {
	Name string    `json:"name"`
	Type FieldType `json:"type"`

	// Optional is true iff an `.optional()` modifier was chained onto the
	// field's type call. Other modifiers are consumed by the parser but do
	// not reach the IR.
	Optional bool `json:"optional,omitempty"`

	Generic *GenericArg `json:"generic,omitempty"`
}

// Entity is a named record type with an ordered field list. A `$`-prefixed
// name denotes a system entity.
type Entity struct {
	Name          string  `json:"name"`
	Fields        []Field `json:"fields"`
	Documentation string  `json:"documentation,omitempty"`
}

// FieldNamed returns the entity's field with the given name, or nil.
func (e *Entity) FieldNamed(name string) *Field {
	for i := range e.Fields {
		if e.Fields[i].Name == name {
			return &e.Fields[i]
		}
	}
	return nil
}

// LinkSide is one half of a link. On names the target entity, Has is the
// cardinality of the relationship as seen from the opposite entity, and
// Label is the traversal field name generated on the opposite entity.
// All three are mandatory; the parser never defaults a missing one.
type LinkSide struct {
	On    string      `json:"on"`
	Has   Cardinality `json:"has"`
	Label string      `json:"label"`
}

// Link is a bidirectional named relationship between two entities. A valid
// link always has exactly two fully specified sides.
type Link struct {
	Name          string   `json:"name"`
	Forward       LinkSide `json:"forward"`
	Reverse       LinkSide `json:"reverse"`
	Documentation string   `json:"documentation,omitempty"`
}

// Topic is a named, typed broadcast event within a room. The payload entity
// describes the event's field shape and carries the topic's name; a topic is
// exclusively owned by the room named in RoomName.
type Topic struct {
	Name     string `json:"name"`
	Payload  Entity `json:"payload"`
	RoomName string `json:"room_name"`
}

// Room is a named real-time collaboration channel. Presence, when present,
// describes the per-peer ephemeral state shape.
type Room struct {
	Name          string  `json:"name"`
	Presence      *Entity `json:"presence,omitempty"`
	Topics        []Topic `json:"topics,omitempty"`
	Documentation string  `json:"documentation,omitempty"`
}

// Schema is the root IR node for one parsed schema file. It is constructed
// once per parse, validated, and then owned outright by the caller; the
// parser retains no references into it.
type Schema struct {
	Entities   []Entity `json:"entities"`
	Links      []Link   `json:"links"`
	Rooms      []Room   `json:"rooms"`
	SourceFile string   `json:"source_file,omitempty"`
}

// EntityNamed returns the declared entity with the given name, or nil.
func (s *Schema) EntityNamed(name string) *Entity {
	for i := range s.Entities {
		if s.Entities[i].Name == name {
			return &s.Entities[i]
		}
	}
	return nil
}

// RoomNamed returns the declared room with the given name, or nil.
func (s *Schema) RoomNamed(name string) *Room {
	for i := range s.Rooms {
		if s.Rooms[i].Name == name {
			return &s.Rooms[i]
		}
	}
	return nil
}
