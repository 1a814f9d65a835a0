package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalCanonicalSortsKeys(t *testing.T) {
	out, err := MarshalCanonical(map[string]any{
		"b": "2",
		"a": "1",
		"c": "3",
	})
	require.NoError(t, err)
	assert.Equal(t, `{"a":"1","b":"2","c":"3"}`, string(out))
}

func TestMarshalCanonicalNoHTMLEscaping(t *testing.T) {
	out, err := MarshalCanonical(map[string]any{"op": "<&>"})
	require.NoError(t, err)
	assert.Equal(t, `{"op":"<&>"}`, string(out))
}

func TestMarshalCanonicalNFCNormalization(t *testing.T) {
	// "é" as e + combining acute must normalize to the single NFC code point.
	decomposed := "é"
	out, err := MarshalCanonical(map[string]any{"k": decomposed})
	require.NoError(t, err)
	assert.Equal(t, `{"k":"é"}`, string(out))
}

func TestMarshalCanonicalRejectsFloats(t *testing.T) {
	_, err := MarshalCanonical(map[string]any{"x": 1.5})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "float")
}

func TestMarshalCanonicalRejectsNull(t *testing.T) {
	_, err := MarshalCanonical(map[string]any{"x": nil})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "null")
}

func TestMarshalCanonicalControlCharacterEscapes(t *testing.T) {
	out, err := MarshalCanonical("a\tb\nc")
	require.NoError(t, err)
	assert.Equal(t, `"a\tb\nc"`, string(out))
}

func TestMarshalCanonicalSchemaDeterministic(t *testing.T) {
	s := &Schema{
		Entities: []Entity{
			{
				Name: "todos",
				Fields: []Field{
					{Name: "title", Type: FieldTypeString},
					{Name: "done", Type: FieldTypeBoolean, Optional: true},
				},
				Documentation: "A todo item.",
			},
		},
		Links: []Link{
			{
				Name:    "todoOwner",
				Forward: LinkSide{On: "todos", Has: CardinalityOne, Label: "owner"},
				Reverse: LinkSide{On: "users", Has: CardinalityMany, Label: "todos"},
			},
		},
		Rooms: []Room{},
	}

	first, err := MarshalCanonical(s)
	require.NoError(t, err)
	second, err := MarshalCanonical(s)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))

	// Canonical form must carry every populated field.
	assert.Contains(t, string(first), `"name":"todoOwner"`)
	assert.Contains(t, string(first), `"has":"one"`)
	assert.Contains(t, string(first), `"documentation":"A todo item."`)
}
