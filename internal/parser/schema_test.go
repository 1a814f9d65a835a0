package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strandlabs/strand/internal/ir"
)

const todoSchema = `import { i } from "@strand/core";

const graph = i.schema({
  entities: {
    /** A registered user. */
    $users: i.entity({
      email: i.string().unique(),
    }),
    todos: i.entity({
      title: i.string(),
      done: i.boolean().optional(),
      status: i.string<"pending" | "done">(),
    }),
  },
  links: {
    /** Who owns each todo. */
    todoOwner: {
      forward: { on: "todos", has: "one", label: "owner" },
      reverse: { on: "$users", has: "many", label: "todos" },
    },
  },
  rooms: {
    /** Live cursors and reactions. */
    chat: {
      presence: i.entity({ name: i.string() }),
      topics: {
        emoji: i.entity({ name: i.string() }),
      },
    },
  },
});

export default graph;
`

func TestParse_FullSchema(t *testing.T) {
	schema, err := Parse(todoSchema, "todo.schema.ts")
	require.NoError(t, err)

	assert.Equal(t, "todo.schema.ts", schema.SourceFile)
	require.Len(t, schema.Entities, 2)
	assert.Equal(t, "$users", schema.Entities[0].Name)
	assert.Equal(t, "A registered user.", schema.Entities[0].Documentation)
	assert.Equal(t, "todos", schema.Entities[1].Name)

	todos := schema.EntityNamed("todos")
	require.NotNil(t, todos)
	require.Len(t, todos.Fields, 3)
	assert.True(t, todos.Fields[1].Optional)
	require.NotNil(t, todos.Fields[2].Generic)
	assert.Equal(t, []string{"pending", "done"}, todos.Fields[2].Generic.Union)

	require.Len(t, schema.Links, 1)
	link := schema.Links[0]
	assert.Equal(t, "todoOwner", link.Name)
	assert.Equal(t, "Who owns each todo.", link.Documentation)
	assert.Equal(t, ir.CardinalityOne, link.Forward.Has)
	assert.Equal(t, ir.CardinalityMany, link.Reverse.Has)

	require.Len(t, schema.Rooms, 1)
	room := schema.Rooms[0]
	assert.Equal(t, "chat", room.Name)
	assert.Equal(t, "Live cursors and reactions.", room.Documentation)
	require.NotNil(t, room.Presence)
	require.Len(t, room.Topics, 1)
	assert.Equal(t, "chat", room.Topics[0].RoomName)
}

func TestParse_BlocksInAnyOrder(t *testing.T) {
	src := `i.schema({
  rooms: {},
  links: {},
  entities: {
    todos: i.entity({ title: i.string() }),
  },
})`
	schema, err := Parse(src, "")
	require.NoError(t, err)
	assert.Len(t, schema.Entities, 1)
	assert.Empty(t, schema.Links)
	assert.Empty(t, schema.Rooms)
}

func TestParse_UnrecognizedBlockSkipped(t *testing.T) {
	src := `i.schema({
  extras: { anything: [1, 2, {x: "}"}], fn: f(1, "a,b") },
  entities: {
    todos: i.entity({ title: i.string() }),
  },
  futureBlock: "literal with } brace",
})`
	schema, err := Parse(src, "")
	require.NoError(t, err)
	assert.Len(t, schema.Entities, 1)
	assert.Empty(t, schema.Links)
	assert.Empty(t, schema.Rooms)
}

func TestParse_NoSchemaFound(t *testing.T) {
	src := `const x = i.entity({ title: i.string() });`
	schema, err := Parse(src, "")
	require.Error(t, err)
	assert.Nil(t, schema)
	assert.True(t, IsKind(err, ErrNoSchemaFound))
}

func TestParse_SchemaCallNotABlockMap(t *testing.T) {
	_, err := Parse("i.schema(42)", "")
	require.Error(t, err)
	assert.True(t, IsKind(err, ErrExpectedToken))
}

func TestParse_Idempotent(t *testing.T) {
	first, err := Parse(todoSchema, "todo.schema.ts")
	require.NoError(t, err)
	second, err := Parse(todoSchema, "todo.schema.ts")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestParse_MissingBlocksYieldEmptyCollections(t *testing.T) {
	schema, err := Parse("i.schema({})", "")
	require.NoError(t, err)
	assert.NotNil(t, schema.Entities)
	assert.NotNil(t, schema.Links)
	assert.NotNil(t, schema.Rooms)
	assert.Empty(t, schema.Entities)
}

func TestParse_DocSeparatedByBlankLineNotAttached(t *testing.T) {
	src := `i.schema({
  entities: {
    /** Orphaned. */

    todos: i.entity({ title: i.string() }),
  },
})`
	schema, err := Parse(src, "")
	require.NoError(t, err)
	require.Len(t, schema.Entities, 1)
	assert.Empty(t, schema.Entities[0].Documentation)
}

func TestParse_FailureInsideBlockAbortsWholeParse(t *testing.T) {
	src := `i.schema({
  entities: {
    todos: i.entity({ title: i.strng() }),
  },
})`
	schema, err := Parse(src, "")
	require.Error(t, err)
	assert.Nil(t, schema)
	assert.True(t, IsKind(err, ErrUnknownFieldType))
}

func TestParse_ValidationRejectsDuplicateEntities(t *testing.T) {
	src := `i.schema({
  entities: {
    todos: i.entity({}),
    todos: i.entity({}),
  },
})`
	_, err := Parse(src, "")
	require.Error(t, err)

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 1)
	assert.Equal(t, ErrDuplicateEntity, verrs[0].Code)
}

func TestParse_ValidationRejectsUndeclaredLinkTarget(t *testing.T) {
	src := `i.schema({
  entities: {
    todos: i.entity({}),
  },
  links: {
    x: {
      forward: { on: "todos", has: "one", label: "owner" },
      reverse: { on: "people", has: "many", label: "todos" },
    },
  },
})`
	_, err := Parse(src, "")
	require.Error(t, err)

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 1)
	assert.Equal(t, ErrUnknownLinkTarget, verrs[0].Code)
}

func TestParse_SystemEntityTargetsNeedNoDeclaration(t *testing.T) {
	src := `i.schema({
  entities: {
    todos: i.entity({}),
  },
  links: {
    x: {
      forward: { on: "todos", has: "one", label: "owner" },
      reverse: { on: "$users", has: "many", label: "todos" },
    },
  },
})`
	_, err := Parse(src, "")
	require.NoError(t, err)
}

func TestParseWithPolicy_AllowsDuplicates(t *testing.T) {
	src := `i.schema({
  entities: {
    todos: i.entity({}),
    todos: i.entity({}),
  },
})`
	schema, err := ParseWithPolicy(src, "", Policy{})
	require.NoError(t, err)
	assert.Len(t, schema.Entities, 2)
}

func TestSkipBalancedValue_StopsAtTopLevelComma(t *testing.T) {
	c := &cursor{src: `{ a: [1, "x,y"], b: (f) } , next`}
	require.Nil(t, skipBalancedValue(c, "test"))
	assert.Equal(t, byte(','), c.peek())
}

func TestSkipBalancedValue_StopsAtClosingBrace(t *testing.T) {
	c := &cursor{src: `value } rest`}
	require.Nil(t, skipBalancedValue(c, "test"))
	assert.Equal(t, byte('}'), c.peek())
}

func TestSkipBalancedValue_UnterminatedNesting(t *testing.T) {
	c := &cursor{src: `{ a: [1, 2`}
	err := skipBalancedValue(c, "test")
	require.NotNil(t, err)
	assert.Equal(t, ErrUnexpectedEnd, err.Kind)
}

func TestBlockKindOf(t *testing.T) {
	assert.Equal(t, blockEntities, blockKindOf("entities"))
	assert.Equal(t, blockLinks, blockKindOf("links"))
	assert.Equal(t, blockRooms, blockKindOf("rooms"))
	assert.Equal(t, blockUnknown, blockKindOf("extras"))
	assert.Equal(t, blockUnknown, blockKindOf("Entities"))
}
