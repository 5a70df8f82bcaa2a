package config

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// optionSchema is the fixed schema every options document is validated
// against before any test runs. Unrecognized keys and mistyped values are
// rejected here.
const optionSchema = `{
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "defaultTrimLength": {"type": "integer", "minimum": 0},
    "commandTrimLength": {"type": "integer", "minimum": 0},
    "routeTrimLength": {"type": "integer", "minimum": 0},
    "compactLogs": {"type": "integer", "minimum": 0},
    "outputRoot": {"type": "string"},
    "outputTarget": {
      "type": "object",
      "additionalProperties": {"type": "string", "enum": ["json", "txt"]}
    },
    "printLogsToConsole": {"type": "string", "enum": ["always", "onFail"]},
    "printLogsToFile": {"type": "string", "enum": ["always", "onFail"]}
  }
}`

// ValidateRaw validates a JSON options document against the option schema.
func ValidateRaw(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(optionSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if result.Valid() {
		return nil
	}

	var problems []string
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
}
