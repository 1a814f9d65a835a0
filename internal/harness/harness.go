package harness

import (
	"errors"
	"fmt"

	"github.com/strandlabs/strand/internal/ir"
	"github.com/strandlabs/strand/internal/parser"
)

// Result captures the outcome of running one case.
type Result struct {
	Case   *Case
	Schema *ir.Schema
	Err    error
}

// Run parses the case's schema and checks the outcome against its Expect
// clause. The returned error describes an expectation mismatch; the parse
// error itself (when expected) is in Result.Err.
func Run(c *Case) (*Result, error) {
	schema, err := parser.Parse(c.Schema, "")
	result := &Result{Case: c, Schema: schema, Err: err}

	if c.Expect.OK {
		if err != nil {
			return result, fmt.Errorf("case %s: expected schema to parse, got: %w", c.Name, err)
		}
		return result, nil
	}

	if err == nil {
		return result, fmt.Errorf("case %s: expected a parse failure, schema parsed", c.Name)
	}
	if c.Expect.ErrorKind != "" {
		kind := parser.KindOf(err)
		if string(kind) != c.Expect.ErrorKind {
			return result, fmt.Errorf("case %s: expected error kind %s, got %s (%v)",
				c.Name, c.Expect.ErrorKind, kind, err)
		}
	}
	if c.Expect.ErrorCode != "" {
		var verrs parser.ValidationErrors
		if !errors.As(err, &verrs) {
			return result, fmt.Errorf("case %s: expected validation code %s, got: %w",
				c.Name, c.Expect.ErrorCode, err)
		}
		if !hasCode(verrs, c.Expect.ErrorCode) {
			return result, fmt.Errorf("case %s: expected validation code %s among: %v",
				c.Name, c.Expect.ErrorCode, verrs)
		}
	}
	return result, nil
}

func hasCode(errs parser.ValidationErrors, code string) bool {
	for _, e := range errs {
		if e.Code == code {
			return true
		}
	}
	return false
}
