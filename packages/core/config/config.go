package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every option validation failure.
var ErrInvalid = errors.New("invalid options")

// Options control the log pipeline. The zero value of a field means
// "unset"; defaults are applied by DefaultOptions and by Load.
type Options struct {
	DefaultTrimLength  int               `json:"defaultTrimLength,omitempty" yaml:"defaultTrimLength,omitempty"`
	CommandTrimLength  int               `json:"commandTrimLength,omitempty" yaml:"commandTrimLength,omitempty"`
	RouteTrimLength    int               `json:"routeTrimLength,omitempty" yaml:"routeTrimLength,omitempty"`
	CompactLogs        *int              `json:"compactLogs,omitempty" yaml:"compactLogs,omitempty"`
	OutputRoot         string            `json:"outputRoot,omitempty" yaml:"outputRoot,omitempty"`
	OutputTarget       map[string]string `json:"outputTarget,omitempty" yaml:"outputTarget,omitempty"`
	PrintLogsToConsole string            `json:"printLogsToConsole,omitempty" yaml:"printLogsToConsole,omitempty"`
	PrintLogsToFile    string            `json:"printLogsToFile,omitempty" yaml:"printLogsToFile,omitempty"`
}

// Load reads options from a JSON or YAML file, validates them against the
// option schema, and applies defaults for anything unset.
func Load(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		data, err = yamlToJSON(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
		}
	}

	if err := ValidateRaw(data); err != nil {
		return nil, err
	}

	opts := DefaultOptions()
	if err := json.Unmarshal(data, opts); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

// Validate checks the cross-field constraints the schema cannot express.
// It also covers options constructed in code rather than loaded from a
// file.
func (o *Options) Validate() error {
	if len(o.OutputTarget) > 0 && o.OutputRoot == "" {
		return fmt.Errorf("%w: outputRoot is required when outputTarget is set", ErrInvalid)
	}
	for _, n := range []int{o.DefaultTrimLength, o.CommandTrimLength, o.RouteTrimLength} {
		if n < 0 {
			return fmt.Errorf("%w: trim lengths must be non-negative", ErrInvalid)
		}
	}
	if o.CompactLogs != nil && *o.CompactLogs < 0 {
		return fmt.Errorf("%w: compactLogs must be non-negative", ErrInvalid)
	}
	for _, policy := range []string{o.PrintLogsToConsole, o.PrintLogsToFile} {
		switch policy {
		case "", "always", "onFail":
		default:
			return fmt.Errorf("%w: unknown policy %q", ErrInvalid, policy)
		}
	}
	return nil
}

func yamlToJSON(data []byte) ([]byte, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}
