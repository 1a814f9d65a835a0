package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/strandlabs/strand/internal/ir"
)

// RunWithGolden runs a case and, for accepted schemas, compares the
// canonical IR JSON against testdata/golden/{case.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Golden files are the source of truth for the IR each accepted schema
// produces; rejected schemas are checked by Run's expectation matching
// alone.
func RunWithGolden(t *testing.T, c *Case) error {
	t.Helper()

	result, err := Run(c)
	if err != nil {
		return err
	}
	if !c.Expect.OK {
		return nil
	}

	canonical, err := ir.MarshalCanonical(result.Schema)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, c.Name, canonical)
	return nil
}
