package sink

import (
	"encoding/json"

	"github.com/abdul-hamid-achik/speclog/packages/core/logs"
)

// NewJSON returns a sink that persists the buffer as indented JSON, keyed
// by spec and test identifier.
func NewJSON(file string) Sink {
	return &fileSink{
		file:   file,
		format: FormatJSON,
		encode: encodeJSON,
	}
}

func encodeJSON(all logs.Buffer) ([]byte, error) {
	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
