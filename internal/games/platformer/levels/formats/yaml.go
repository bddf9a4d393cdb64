// Package formats parses level files.
package formats

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Plan is the rows of a level plan.
// In YAML it is either a list of strings or a literal block scalar.
// YAML takes a block's indentation from its first line, so a block whose
// first row starts with spaces needs an explicit indentation indicator
// ("plan: |2") or the list form.
type Plan []string

// UnmarshalYAML accepts both plan spellings.
func (p *Plan) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		text := strings.TrimSuffix(node.Value, "\n")
		if text == "" {
			*p = nil
			return nil
		}
		*p = strings.Split(text, "\n")
		return nil
	case yaml.SequenceNode:
		var rows []string
		if err := node.Decode(&rows); err != nil {
			return err
		}
		*p = rows
		return nil
	default:
		return fmt.Errorf("line %d: plan must be a list of rows or a block string", node.Line)
	}
}

// YAMLLevel is the on-disk shape of one level.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Plan     Plan              `yaml:"plan"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLFile is a level file: a single level, or a pack under "levels".
type YAMLFile struct {
	YAMLLevel `yaml:",inline"`
	Levels    []YAMLLevel `yaml:"levels,omitempty"`
}

// Level is a parsed level definition.
type Level struct {
	ID       string
	Name     string
	Plan     []string
	Metadata map[string]string
}

var (
	ErrMissingID   = errors.New("missing id")
	ErrMissingPlan = errors.New("missing plan")
	ErrMixedFile   = errors.New("file has both a top-level plan and a levels list")
)

// ParseYAML parses a level file and returns its levels in file order.
// Levels without a name are named after their id.
func ParseYAML(data []byte) ([]Level, error) {
	var f YAMLFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	docs := f.Levels
	switch {
	case len(docs) > 0 && (f.ID != "" || len(f.Plan) > 0):
		return nil, ErrMixedFile
	case len(docs) == 0:
		docs = []YAMLLevel{f.YAMLLevel}
	}

	out := make([]Level, 0, len(docs))
	for i, d := range docs {
		if d.ID == "" {
			return nil, fmt.Errorf("level %d: %w", i, ErrMissingID)
		}
		if len(d.Plan) == 0 {
			return nil, fmt.Errorf("level %q: %w", d.ID, ErrMissingPlan)
		}
		name := d.Name
		if name == "" {
			name = d.ID
		}
		out = append(out, Level{
			ID:       d.ID,
			Name:     name,
			Plan:     []string(d.Plan),
			Metadata: d.Metadata,
		})
	}
	return out, nil
}

// FormatExtensions returns the supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
