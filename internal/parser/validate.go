package parser

import (
	"fmt"
	"strings"

	"github.com/strandlabs/strand/internal/ir"
)

// Validation error codes (E200-E299)
const (
	ErrDuplicateEntity    = "E201" // duplicate entity name
	ErrDuplicateField     = "E202" // duplicate field name within an entity
	ErrDuplicateLink      = "E203" // duplicate link name
	ErrUnknownLinkTarget  = "E204" // link side references undeclared entity
	ErrLabelCollision     = "E205" // link label collides with a declared field
	ErrDuplicateRoom      = "E206" // duplicate room name
	ErrDuplicateTopic     = "E207" // duplicate topic name within a room
	ErrEmptyLinkSideValue = "E208" // empty on/label value on a link side
)

// ValidationError represents one semantic violation in a parsed schema.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}

// ValidationErrors is the full set of violations found in one schema. It is
// what Parse returns when a structurally well-formed schema fails semantic
// validation.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, v := range e {
		msgs[i] = v.Error()
	}
	return strings.Join(msgs, "; ")
}

// Policy controls which semantic checks reject a parsed schema. Duplicate
// handling is a policy of validation, not of the grammar: the parser itself
// accepts duplicates and leaves rejection to this step.
type Policy struct {
	// RejectDuplicateNames rejects duplicate entity, link, and room names,
	// duplicate topic names within a room, and duplicate field names within
	// an entity.
	RejectDuplicateNames bool

	// RequireDeclaredLinkTargets rejects link sides whose `on` entity is not
	// declared in the schema. System entities (`$`-prefixed) are exempt:
	// they exist without being declared.
	RequireDeclaredLinkTargets bool
}

// DefaultPolicy enables every check.
func DefaultPolicy() Policy {
	return Policy{
		RejectDuplicateNames:       true,
		RequireDeclaredLinkTargets: true,
	}
}

// ValidateSchema checks cross-referential consistency of a parsed schema.
// Returns all violations found (does not fail-fast); an empty result means
// the schema is valid under the given policy.
func ValidateSchema(s *ir.Schema, policy Policy) ValidationErrors {
	var errs ValidationErrors

	entityNames := make(map[string]bool)
	for i, entity := range s.Entities {
		if policy.RejectDuplicateNames && entityNames[entity.Name] {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("entities[%d].name", i),
				Message: fmt.Sprintf("duplicate entity name: %q", entity.Name),
				Code:    ErrDuplicateEntity,
			})
		}
		entityNames[entity.Name] = true
		errs = append(errs, validateFields(&s.Entities[i],
			fmt.Sprintf("entities[%d]", i), policy)...)
	}

	linkNames := make(map[string]bool)
	for i, link := range s.Links {
		if policy.RejectDuplicateNames && linkNames[link.Name] {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("links[%d].name", i),
				Message: fmt.Sprintf("duplicate link name: %q", link.Name),
				Code:    ErrDuplicateLink,
			})
		}
		linkNames[link.Name] = true
		errs = append(errs, validateLinkSide(s, link.Forward,
			fmt.Sprintf("links[%d].forward", i), policy)...)
		errs = append(errs, validateLinkSide(s, link.Reverse,
			fmt.Sprintf("links[%d].reverse", i), policy)...)
	}

	roomNames := make(map[string]bool)
	for i, room := range s.Rooms {
		if policy.RejectDuplicateNames && roomNames[room.Name] {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("rooms[%d].name", i),
				Message: fmt.Sprintf("duplicate room name: %q", room.Name),
				Code:    ErrDuplicateRoom,
			})
		}
		roomNames[room.Name] = true

		if room.Presence != nil {
			errs = append(errs, validateFields(room.Presence,
				fmt.Sprintf("rooms[%d].presence", i), policy)...)
		}
		topicNames := make(map[string]bool)
		for j, topic := range room.Topics {
			if policy.RejectDuplicateNames && topicNames[topic.Name] {
				errs = append(errs, ValidationError{
					Field:   fmt.Sprintf("rooms[%d].topics[%d].name", i, j),
					Message: fmt.Sprintf("duplicate topic name: %q", topic.Name),
					Code:    ErrDuplicateTopic,
				})
			}
			topicNames[topic.Name] = true
			errs = append(errs, validateFields(&room.Topics[j].Payload,
				fmt.Sprintf("rooms[%d].topics[%d].payload", i, j), policy)...)
		}
	}

	return errs
}

func validateFields(e *ir.Entity, field string, policy Policy) ValidationErrors {
	if !policy.RejectDuplicateNames {
		return nil
	}
	var errs ValidationErrors
	names := make(map[string]bool)
	for i, f := range e.Fields {
		if names[f.Name] {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("%s.fields[%d].name", field, i),
				Message: fmt.Sprintf("duplicate field name: %q", f.Name),
				Code:    ErrDuplicateField,
			})
		}
		names[f.Name] = true
	}
	return errs
}

// validateLinkSide checks that the side's target entity is declared (system
// entities exempt) and that the traversal label does not collide with a
// declared field on the target entity.
func validateLinkSide(s *ir.Schema, side ir.LinkSide, field string, policy Policy) ValidationErrors {
	var errs ValidationErrors

	if side.On == "" || side.Label == "" {
		errs = append(errs, ValidationError{
			Field:   field,
			Message: "link side has an empty on/label value",
			Code:    ErrEmptyLinkSideValue,
		})
		return errs
	}

	target := s.EntityNamed(side.On)
	if target == nil {
		if policy.RequireDeclaredLinkTargets && !strings.HasPrefix(side.On, "$") {
			errs = append(errs, ValidationError{
				Field:   field + ".on",
				Message: fmt.Sprintf("link references undeclared entity %q", side.On),
				Code:    ErrUnknownLinkTarget,
			})
		}
		return errs
	}

	if target.FieldNamed(side.Label) != nil {
		errs = append(errs, ValidationError{
			Field:   field + ".label",
			Message: fmt.Sprintf("label %q collides with a declared field on entity %q",
				side.Label, side.On),
			Code: ErrLabelCollision,
		})
	}
	return errs
}
