package parser

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes parse failures. The set is closed: every failure the
// grammar can produce is one of these, so callers can match exhaustively
// over a single type instead of many ad hoc ones.
type ErrorKind string

const (
	// ErrNoSchemaFound indicates the source contains no schema(...) call.
	ErrNoSchemaFound ErrorKind = "NO_SCHEMA_FOUND"

	// ErrExpectedToken indicates a specific token was required and absent.
	ErrExpectedToken ErrorKind = "EXPECTED_TOKEN"

	// ErrUnexpectedEnd indicates the source ended inside a construct.
	ErrUnexpectedEnd ErrorKind = "UNEXPECTED_END"

	// ErrInvalidSyntax indicates a structural failure not covered by a more
	// specific kind.
	ErrInvalidSyntax ErrorKind = "INVALID_SYNTAX"

	// ErrExpectedIdentifier indicates an identifier was required and absent.
	ErrExpectedIdentifier ErrorKind = "EXPECTED_IDENTIFIER"

	// ErrExpectedFieldType indicates a builder call was missing its type name.
	ErrExpectedFieldType ErrorKind = "EXPECTED_FIELD_TYPE"

	// ErrUnknownFieldType indicates a builder type name outside the closed
	// field type vocabulary.
	ErrUnknownFieldType ErrorKind = "UNKNOWN_FIELD_TYPE"

	// ErrMissingEntityName indicates a link side without an `on` key.
	ErrMissingEntityName ErrorKind = "MISSING_ENTITY_NAME"

	// ErrMissingCardinality indicates a link side without a `has` key.
	ErrMissingCardinality ErrorKind = "MISSING_CARDINALITY"

	// ErrMissingLabel indicates a link side without a `label` key.
	ErrMissingLabel ErrorKind = "MISSING_LABEL"

	// ErrMissingForward indicates a link without a forward side.
	ErrMissingForward ErrorKind = "MISSING_FORWARD"

	// ErrMissingReverse indicates a link without a reverse side.
	ErrMissingReverse ErrorKind = "MISSING_REVERSE"

	// ErrInvalidCardinality indicates a `has` value other than "one"/"many".
	ErrInvalidCardinality ErrorKind = "INVALID_CARDINALITY"
)

// ParseError is the single structured error type produced by every parser
// layer. Which payload fields are set depends on Kind:
//
//   - ErrExpectedToken: Token (the expected token) and Context
//   - ErrUnexpectedEnd: Context (what was being parsed)
//   - ErrUnknownFieldType, ErrInvalidCardinality: Name (the offending value)
//   - ErrInvalidSyntax: Message
//   - the Missing* kinds: Context (the enclosing declaration)
//
// Offset is the byte offset into the source at the failure point; the diag
// package turns it into a located, excerpt-bearing diagnostic.
type ParseError struct {
	Kind    ErrorKind
	Token   string
	Context string
	Name    string
	Message string
	Offset  int
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrNoSchemaFound:
		return fmt.Sprintf("%s: no schema() call found in source", e.Kind)
	case ErrExpectedToken:
		return fmt.Sprintf("%s: expected %q after %s", e.Kind, e.Token, e.Context)
	case ErrUnexpectedEnd:
		return fmt.Sprintf("%s: unexpected end of input while parsing %s", e.Kind, e.Context)
	case ErrUnknownFieldType:
		return fmt.Sprintf("%s: unknown field type %q", e.Kind, e.Name)
	case ErrInvalidCardinality:
		return fmt.Sprintf("%s: invalid cardinality %q", e.Kind, e.Name)
	case ErrMissingEntityName, ErrMissingCardinality, ErrMissingLabel,
		ErrMissingForward, ErrMissingReverse:
		return fmt.Sprintf("%s: in %s", e.Kind, e.Context)
	case ErrExpectedIdentifier, ErrExpectedFieldType:
		if e.Context != "" {
			return fmt.Sprintf("%s: in %s", e.Kind, e.Context)
		}
		return string(e.Kind)
	default:
		if e.Message != "" {
			return fmt.Sprintf("%s: %s", e.Kind, e.Message)
		}
		return string(e.Kind)
	}
}

// KindOf returns the ErrorKind of err, or "" if err is not a *ParseError.
// Uses errors.As to handle wrapped errors.
func KindOf(err error) ErrorKind {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}

// IsKind reports whether err is a *ParseError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}

func errExpectedToken(c *cursor, token, context string) *ParseError {
	if c.eof() {
		return errUnexpectedEnd(c, context)
	}
	return &ParseError{Kind: ErrExpectedToken, Token: token, Context: context, Offset: c.pos}
}

func errUnexpectedEnd(c *cursor, context string) *ParseError {
	return &ParseError{Kind: ErrUnexpectedEnd, Context: context, Offset: c.pos}
}

func errExpectedIdentifier(c *cursor, context string) *ParseError {
	return &ParseError{Kind: ErrExpectedIdentifier, Context: context, Offset: c.pos}
}
