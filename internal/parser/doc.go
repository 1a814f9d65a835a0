// Package parser turns the text of a Strand schema file into validated ir
// values. Schemas are written in a TypeScript-flavored builder syntax:
//
//	const graph = i.schema({
//	  entities: {
//	    todos: i.entity({
//	      title: i.string(),
//	      done: i.boolean().optional(),
//	    }),
//	  },
//	  links: { ... },
//	  rooms: { ... },
//	})
//
// The parser is a single-pass recursive descent over a cursor into the
// source text. It recognizes only the fixed structural subset used to
// declare schemas: it does not evaluate the host language, resolve imports,
// or accept computed schema construction. Blocks other than entities, links,
// and rooms are skipped structurally so that newer schema files still parse.
//
// Parsing is layered, leaves first: lexical primitives (cursor.go),
// structural literals (generic.go), construct parsers (field.go, entity.go,
// link.go, room.go), and the full schema parser (schema.go). Every layer
// fails fast with a *ParseError carrying a closed Kind and the byte offset
// of the failure; no partial IR ever escapes. A parsed schema is validated
// (validate.go) before it is returned.
//
// A parse call owns its cursor exclusively and retains no state across
// calls, so independent goroutines may parse independent sources without
// locking.
package parser
