package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Case defines one conformance case for the schema parser.
type Case struct {
	// Name uniquely identifies this case and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this case exercises.
	Description string `yaml:"description,omitempty"`

	// Schema is the inline schema source to parse.
	Schema string `yaml:"schema"`

	// Expect specifies the expected parse outcome.
	Expect Expect `yaml:"expect"`
}

// Expect specifies whether the schema must parse and, when it must not,
// which error rejects it.
type Expect struct {
	// OK is true when the schema must parse and validate.
	OK bool `yaml:"ok"`

	// ErrorKind is the expected parse error kind (e.g. "UNKNOWN_FIELD_TYPE")
	// for rejected schemas. Empty means any parse error is acceptable.
	ErrorKind string `yaml:"error_kind,omitempty"`

	// ErrorCode is the expected validation code (e.g. "E201") for schemas
	// that parse but fail validation.
	ErrorCode string `yaml:"error_code,omitempty"`
}

// LoadCase reads and decodes one case file.
func LoadCase(path string) (*Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading case %s: %w", path, err)
	}
	var c Case
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decoding case %s: %w", path, err)
	}
	if c.Name == "" {
		return nil, fmt.Errorf("case %s: name is required", path)
	}
	if c.Schema == "" {
		return nil, fmt.Errorf("case %s: schema is required", path)
	}
	return &c, nil
}

// LoadDir loads every *.yaml case in dir, sorted by file name.
func LoadDir(dir string) ([]*Case, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	cases := make([]*Case, 0, len(paths))
	for _, path := range paths {
		c, err := LoadCase(path)
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}
	return cases, nil
}
