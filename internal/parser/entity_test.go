package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strandlabs/strand/internal/ir"
)

func TestParseEntityDecl_RoundTripShape(t *testing.T) {
	c := &cursor{src: "name: builder.entity({ a: builder.string(), b: builder.boolean().optional() })"}
	entity, err := parseEntityDecl(c)
	require.Nil(t, err)

	assert.Equal(t, "name", entity.Name)
	require.Len(t, entity.Fields, 2)
	assert.Equal(t, "a", entity.Fields[0].Name)
	assert.Equal(t, ir.FieldTypeString, entity.Fields[0].Type)
	assert.False(t, entity.Fields[0].Optional)
	assert.Equal(t, "b", entity.Fields[1].Name)
	assert.Equal(t, ir.FieldTypeBoolean, entity.Fields[1].Type)
	assert.True(t, entity.Fields[1].Optional)
}

func TestParseEntityDecl_EmptyFieldList(t *testing.T) {
	c := &cursor{src: "empty: i.entity({})"}
	entity, err := parseEntityDecl(c)
	require.Nil(t, err)
	assert.Equal(t, "empty", entity.Name)
	assert.NotNil(t, entity.Fields)
	assert.Len(t, entity.Fields, 0)
}

func TestParseEntityDecl_TrailingComma(t *testing.T) {
	c := &cursor{src: "todos: i.entity({\n  title: i.string(),\n})"}
	entity, err := parseEntityDecl(c)
	require.Nil(t, err)
	require.Len(t, entity.Fields, 1)
	assert.Equal(t, "title", entity.Fields[0].Name)
}

func TestParseEntityDecl_SystemEntityName(t *testing.T) {
	c := &cursor{src: "$users: i.entity({ email: i.string() })"}
	entity, err := parseEntityDecl(c)
	require.Nil(t, err)
	assert.Equal(t, "$users", entity.Name)
}

func TestParseEntityDecl_CommentNoiseBetweenFields(t *testing.T) {
	src := `todos: i.entity({
  // the display title
  title: i.string(),
  /* legacy */ done: i.boolean(),
})`
	c := &cursor{src: src}
	entity, err := parseEntityDecl(c)
	require.Nil(t, err)
	require.Len(t, entity.Fields, 2)
	assert.Equal(t, "done", entity.Fields[1].Name)
}

func TestParseEntityCall_WrongBuilderCall(t *testing.T) {
	c := &cursor{src: "i.string()"}
	_, err := parseEntityCall(c)
	require.NotNil(t, err)
	assert.Equal(t, ErrExpectedToken, err.Kind)
	assert.Equal(t, "entity", err.Token)
	assert.Equal(t, 0, c.pos)
}

func TestParseEntityCall_MissingCommaBetweenFields(t *testing.T) {
	c := &cursor{src: "i.entity({ a: i.string() b: i.number() })"}
	_, err := parseEntityCall(c)
	require.NotNil(t, err)
	assert.Equal(t, ErrExpectedToken, err.Kind)
	assert.Equal(t, ",", err.Token)
}

func TestParseEntityCall_UnterminatedFieldList(t *testing.T) {
	c := &cursor{src: "i.entity({ a: i.string(),"}
	_, err := parseEntityCall(c)
	require.NotNil(t, err)
	assert.Equal(t, ErrUnexpectedEnd, err.Kind)
	assert.Equal(t, 0, c.pos)
}
