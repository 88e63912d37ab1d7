package plan

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// InvalidError reports a plan that failed schema validation.
type InvalidError struct {
	Source string
	Issues []ValidationIssue
}

func (e *InvalidError) Error() string {
	msgs := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		msgs = append(msgs, issue.String())
	}
	return fmt.Sprintf("invalid plan %s: %s", e.Source, strings.Join(msgs, "; "))
}

// Load reads, validates and parses the plan at path.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse validates and parses plan YAML. source names the plan in errors.
func Parse(data []byte, source string) (*Plan, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating plan %s: %w", source, err)
	}
	if !result.Valid {
		return nil, &InvalidError{Source: source, Issues: result.Issues}
	}

	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing plan %s: %w", source, err)
	}
	return &p, nil
}
