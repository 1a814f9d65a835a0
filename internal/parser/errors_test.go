package parser

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseErrorMessages(t *testing.T) {
	cases := []struct {
		err  *ParseError
		want string
	}{
		{&ParseError{Kind: ErrNoSchemaFound},
			"NO_SCHEMA_FOUND: no schema() call found in source"},
		{&ParseError{Kind: ErrExpectedToken, Token: ",", Context: "field declaration"},
			`EXPECTED_TOKEN: expected "," after field declaration`},
		{&ParseError{Kind: ErrUnexpectedEnd, Context: "entity field list"},
			"UNEXPECTED_END: unexpected end of input while parsing entity field list"},
		{&ParseError{Kind: ErrUnknownFieldType, Name: "strng"},
			`UNKNOWN_FIELD_TYPE: unknown field type "strng"`},
		{&ParseError{Kind: ErrInvalidCardinality, Name: "several"},
			`INVALID_CARDINALITY: invalid cardinality "several"`},
		{&ParseError{Kind: ErrMissingLabel, Context: "forward link side"},
			"MISSING_LABEL: in forward link side"},
		{&ParseError{Kind: ErrInvalidSyntax, Message: "expected whitespace in x"},
			"INVALID_SYNTAX: expected whitespace in x"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.err.Error())
	}
}

func TestKindOf(t *testing.T) {
	err := &ParseError{Kind: ErrMissingForward, Context: "link x"}
	assert.Equal(t, ErrMissingForward, KindOf(err))
	assert.Equal(t, ErrorKind(""), KindOf(fmt.Errorf("plain")))
	assert.Equal(t, ErrorKind(""), KindOf(nil))
}

func TestKindOf_WrappedError(t *testing.T) {
	err := fmt.Errorf("while building: %w", &ParseError{Kind: ErrNoSchemaFound})
	assert.Equal(t, ErrNoSchemaFound, KindOf(err))
	assert.True(t, IsKind(err, ErrNoSchemaFound))
	assert.False(t, IsKind(err, ErrExpectedToken))
}
