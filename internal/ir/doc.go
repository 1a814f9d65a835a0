// Package ir provides the canonical intermediate representation for Strand
// schemas: the entities, links, and rooms declared in a schema file.
//
// This package contains type definitions and canonical serialization only.
// All other internal packages import ir; ir imports nothing internal. This
// ensures IR remains the foundational layer with no circular dependencies.
//
// Key design constraints:
//   - IR nodes are value records; nothing mutates them after parsing except
//     the documentation attachment performed by the parser itself
//   - FieldType and Cardinality are closed enumerations; an unknown tag is a
//     parse error, never a new variant
//   - All JSON tags use snake_case
//   - Slice order is declaration order and is significant
package ir
