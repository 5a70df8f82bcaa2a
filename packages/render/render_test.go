package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/abdul-hamid-achik/speclog/packages/core/logs"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plainRenderer(buf *bytes.Buffer, opts ...Option) *Renderer {
	opts = append([]Option{WithWriter(buf), WithGlyphs(ASCII)}, opts...)
	return NewRenderer(opts...)
}

func TestRenderSequenceOneLinePerEntry(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	r := plainRenderer(&buf)

	seq := logs.Sequence{
		{Category: logs.CategoryCyLog, Message: "first", Severity: logs.SeveritySuccess},
		{Category: logs.CategoryConsoleWarn, Message: "second", Severity: logs.SeveritySuccess},
		{Category: logs.CategoryCyRoute, Message: "third", Severity: logs.SeveritySuccess},
	}
	r.RenderSequence(seq)

	lines := strings.Split(buf.String(), "\n")
	// one line per entry, one blank separator, one trailing empty split
	require.Len(t, lines, len(seq)+2)
	assert.Equal(t, "", lines[len(lines)-2])
}

func TestRenderCategoryDefaults(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	r := plainRenderer(&buf)

	r.RenderSequence(logs.Sequence{
		{Category: logs.CategoryConsoleWarn, Message: "careful", Severity: logs.SeveritySuccess},
	})

	line := strings.SplitN(buf.String(), "\n", 2)[0]
	assert.Contains(t, line, "cons:warn")
	assert.Contains(t, line, ASCII.Warning)
	assert.Contains(t, line, "careful")
}

func TestRenderUnknownCategory(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	r := plainRenderer(&buf)

	r.RenderSequence(logs.Sequence{
		{Category: "custom:thing", Message: "hello", Severity: logs.SeveritySuccess},
	})

	line := strings.SplitN(buf.String(), "\n", 2)[0]
	assert.Contains(t, line, "[unknown]")
	assert.NotContains(t, line, "custom:thing")
}

func TestRenderSeverityOverridesCategory(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	r := plainRenderer(&buf)

	// cy:command defaults to the check glyph; error severity forces the
	// error glyph instead.
	r.RenderSequence(logs.Sequence{
		{Category: logs.CategoryCyCommand, Message: "get .sel", Severity: logs.SeverityError},
	})

	line := strings.SplitN(buf.String(), "\n", 2)[0]
	assert.Contains(t, line, ASCII.Error)
	assert.NotContains(t, line, ASCII.Check)
}

func TestRenderErrorLineIsBoldRed(t *testing.T) {
	color.NoColor = false
	defer func() { color.NoColor = true }()

	var buf bytes.Buffer
	r := plainRenderer(&buf)

	r.RenderSequence(logs.Sequence{
		{Category: logs.CategoryCyCommand, Message: "get .sel", Severity: logs.SeverityError},
	})

	out := buf.String()
	assert.Contains(t, out, "\x1b[1;31m", "prefix should be bold red")
	assert.Contains(t, out, "\x1b[31m", "message should be red")
	assert.Contains(t, out, "get .sel")
}

func TestRenderTrimsLongMessages(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	r := plainRenderer(&buf, WithTrimLengths(TrimLengths{Default: 10, Command: 5, Route: 20}))

	long := strings.Repeat("a", 30)
	r.RenderSequence(logs.Sequence{
		{Category: logs.CategoryCyLog, Message: long, Severity: logs.SeveritySuccess},
		{Category: logs.CategoryCyCommand, Message: long, Severity: logs.SeveritySuccess},
		{Category: logs.CategoryCyXHR, Message: long, Severity: logs.SeveritySuccess},
	})

	lines := strings.Split(buf.String(), "\n")
	assert.Contains(t, lines[0], strings.Repeat("a", 10)+ASCII.Ellipsis)
	assert.NotContains(t, lines[0], strings.Repeat("a", 11))
	assert.Contains(t, lines[1], strings.Repeat("a", 5)+ASCII.Ellipsis)
	assert.Contains(t, lines[2], strings.Repeat("a", 20)+ASCII.Ellipsis)
}

func TestRenderShortMessageUntouched(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	r := plainRenderer(&buf, WithTrimLengths(TrimLengths{Default: 10, Command: 10, Route: 10}))

	r.RenderSequence(logs.Sequence{
		{Category: logs.CategoryCyLog, Message: "short", Severity: logs.SeveritySuccess},
	})

	assert.Contains(t, buf.String(), "short")
	assert.NotContains(t, buf.String(), ASCII.Ellipsis)
}

func TestRenderReindentsMultilineMessages(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	r := plainRenderer(&buf)

	r.RenderSequence(logs.Sequence{
		{Category: logs.CategoryCyLog, Message: "line one\nline two", Severity: logs.SeveritySuccess},
	})

	lines := strings.Split(buf.String(), "\n")
	require.True(t, len(lines) >= 2)
	assert.Equal(t, strings.Repeat(" ", labelColumn+3)+"line two", lines[1])
}

func TestRenderLabelPadding(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	r := plainRenderer(&buf)

	r.RenderSequence(logs.Sequence{
		{Category: logs.CategoryCyLog, Message: "m", Severity: logs.SeveritySuccess},
	})

	line := strings.SplitN(buf.String(), "\n", 2)[0]
	assert.True(t, strings.HasPrefix(line, strings.Repeat(" ", labelColumn-len("cy:log"))+"cy:log"),
		"label should be right-aligned in the label column: %q", line)
}

func TestGlyphsFor(t *testing.T) {
	cases := []struct {
		name string
		env  Environment
		want Glyphs
	}{
		{"linux interactive", Environment{Platform: "linux", Interactive: true}, Unicode},
		{"darwin interactive", Environment{Platform: "darwin", Interactive: true}, Unicode},
		{"windows ci", Environment{Platform: "windows", CI: true, Interactive: true}, Unicode},
		{"windows piped", Environment{Platform: "windows", Interactive: false}, Unicode},
		{"windows xterm", Environment{Platform: "windows", Interactive: true, Term: "xterm-256color"}, Unicode},
		{"windows console", Environment{Platform: "windows", Interactive: true}, ASCII},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GlyphsFor(tc.env))
		})
	}
}
