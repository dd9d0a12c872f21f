package plan

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// ErrInvalidPlan is returned when a plan file is structurally valid but inconsistent.
var ErrInvalidPlan = errors.New("invalid plan")

// Callback declares a recording label callback.
type Callback struct {
	Name   string `mapstructure:"name"`
	Labels string `mapstructure:"labels"`
	Shared bool   `mapstructure:"shared"`
}

// Case declares a test case and its raw label expressions.
type Case struct {
	Name   string   `mapstructure:"name"`
	Labels []string `mapstructure:"labels"`
}

// Plan describes a simulated test run: which callbacks exist and which
// cases run, in order.
type Plan struct {
	RunCallback bool       `mapstructure:"run_callback"`
	Callbacks   []Callback `mapstructure:"callbacks"`
	Cases       []Case     `mapstructure:"cases"`
}

// Load reads a plan from a YAML or JSON file (chosen by extension, YAML by default).
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan: %w", err)
	}

	format := "yaml"
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		format = "json"
	}
	return Parse(data, format)
}

// Parse decodes a plan document. format is "yaml" or "json".
func Parse(data []byte, format string) (*Plan, error) {
	raw := map[string]any{}
	switch format {
	case "json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse plan json: %w", err)
		}
	case "yaml", "yml", "":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse plan yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported plan format %q", format)
	}

	var p Plan
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &p,
		ErrorUnused:      true,
		WeaklyTypedInput: true, // lets "labels: tag1" stand for a one-element list
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode plan: %w", err)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks that every callback and case is named and callback names are unique.
func (p *Plan) Validate() error {
	seen := make(map[string]bool, len(p.Callbacks))
	for i, cb := range p.Callbacks {
		if cb.Name == "" {
			return fmt.Errorf("%w: callback #%d has no name", ErrInvalidPlan, i)
		}
		if seen[cb.Name] {
			return fmt.Errorf("%w: duplicate callback name %q", ErrInvalidPlan, cb.Name)
		}
		seen[cb.Name] = true
	}
	for i, c := range p.Cases {
		if c.Name == "" {
			return fmt.Errorf("%w: case #%d has no name", ErrInvalidPlan, i)
		}
	}
	return nil
}
