package sink

import (
	"fmt"
	"strings"

	"github.com/abdul-hamid-achik/speclog/packages/core/logs"
)

// NewText returns a sink that persists the buffer as indented plain text:
// one block per spec, one indented block per test, one line per entry.
func NewText(file string) Sink {
	return &fileSink{
		file:   file,
		format: FormatText,
		encode: encodeText,
	}
}

func encodeText(all logs.Buffer) ([]byte, error) {
	var b strings.Builder
	for _, spec := range all.Specs() {
		fmt.Fprintf(&b, "%s:\n", spec)
		for _, test := range all.Tests(spec) {
			fmt.Fprintf(&b, "    %s\n", test)
			seq, _ := all.Get(spec, test)
			for _, entry := range seq {
				message := strings.ReplaceAll(entry.Message, "\n", "\n                ")
				fmt.Fprintf(&b, "        %s (%s): %s\n", entry.Category, entry.Severity, message)
			}
			b.WriteString("\n")
		}
	}
	return []byte(b.String()), nil
}
