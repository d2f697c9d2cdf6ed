// Package testutil loads golden Collatz fixtures shared by the test suites.
package testutil

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Case is one golden input. Absent marks inputs with no step count.
type Case struct {
	N      uint64 `yaml:"n"`
	Steps  uint64 `yaml:"steps,omitempty"`
	Absent bool   `yaml:"absent,omitempty"`
}

type caseFile struct {
	Cases []Case `yaml:"cases"`
}

// LoadCases reads a YAML fixture file of the form `cases: [{n, steps, absent}]`.
func LoadCases(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return ParseCases(data)
}

// ParseCases decodes fixture bytes. A case may not set both steps and absent.
func ParseCases(data []byte) ([]Case, error) {
	var f caseFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if len(f.Cases) == 0 {
		return nil, errors.New("no cases")
	}
	for i, c := range f.Cases {
		if c.Absent && c.Steps != 0 {
			return nil, fmt.Errorf("case %d (n=%d): absent with steps %d", i, c.N, c.Steps)
		}
	}
	return f.Cases, nil
}
