// Package harness runs declarative conformance cases against the schema
// parser. A case is a YAML file carrying a schema source and the expected
// outcome: acceptance (with the canonical IR JSON golden-compared) or
// rejection with a specific parse error kind or validation code.
//
// The case corpus under testdata/cases is the executable record of what the
// parser accepts and rejects; golden files under testdata/golden are the
// source of truth for the IR each accepted schema produces.
package harness
