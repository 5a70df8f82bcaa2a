package render

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/abdul-hamid-achik/speclog/packages/core/logs"
	"github.com/fatih/color"
)

// labelColumn is the fixed width the category label is padded into. The
// widest known category, cy:intercept, is 12 characters.
const labelColumn = 13

// TrimLengths holds the maximum message lengths per entry class before
// truncation kicks in.
type TrimLengths struct {
	Default int
	Command int
	Route   int
}

// DefaultTrimLengths mirror the option defaults.
var DefaultTrimLengths = TrimLengths{
	Default: 800,
	Command: 800,
	Route:   5000,
}

// Renderer formats log sequences as colored terminal lines.
type Renderer struct {
	writer io.Writer
	glyphs Glyphs
	trims  TrimLengths
}

type Option func(*Renderer)

func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		writer: os.Stdout,
		glyphs: GlyphsFor(DetectEnvironment()),
		trims:  DefaultTrimLengths,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func WithWriter(w io.Writer) Option {
	return func(r *Renderer) {
		r.writer = w
	}
}

func WithGlyphs(g Glyphs) Option {
	return func(r *Renderer) {
		r.glyphs = g
	}
}

func WithTrimLengths(t TrimLengths) Option {
	return func(r *Renderer) {
		r.trims = t
	}
}

// lineStyle is the resolved presentation for one entry: category defaults
// with any severity override already applied.
type lineStyle struct {
	label string
	glyph string
	attrs []color.Attribute // empty means the terminal default color
	trim  int
}

func (r *Renderer) styleFor(entry logs.Entry) lineStyle {
	g := r.glyphs
	s := lineStyle{
		label: string(entry.Category),
		glyph: g.Info,
		trim:  r.trims.Default,
	}

	switch entry.Category {
	case logs.CategoryCyLog, logs.CategoryConsoleLog, logs.CategoryConsoleInfo, logs.CategoryReport:
	case logs.CategoryConsoleDbg:
		s.glyph = g.Debug
	case logs.CategoryConsoleWarn:
		s.attrs = []color.Attribute{color.FgYellow}
		s.glyph = g.Warning
	case logs.CategoryConsoleErr:
		s.attrs = []color.Attribute{color.FgRed}
		s.glyph = g.Error
	case logs.CategoryCyCommand:
		s.attrs = []color.Attribute{color.FgGreen}
		s.glyph = g.Check
		s.trim = r.trims.Command
	case logs.CategoryCyRoute, logs.CategoryCyXHR, logs.CategoryCyFetch,
		logs.CategoryCyIntercept, logs.CategoryCyRequest:
		s.attrs = []color.Attribute{color.FgGreen}
		s.glyph = g.Route
		s.trim = r.trims.Route
	default:
		s.label = "[unknown]"
	}

	// Severity wins over the category default, whatever the category.
	switch entry.Severity {
	case logs.SeverityError:
		s.attrs = []color.Attribute{color.FgRed}
		s.glyph = g.Error
	case logs.SeverityWarning:
		s.attrs = []color.Attribute{color.FgYellow}
		s.glyph = g.Warning
	}

	return s
}

// RenderSequence writes one line per entry followed by a blank separator
// line. Every entry produces exactly one (possibly multi-line) output line.
func (r *Renderer) RenderSequence(seq logs.Sequence) {
	for _, entry := range seq {
		r.renderEntry(entry)
	}
	fmt.Fprintln(r.writer)
}

func (r *Renderer) renderEntry(entry logs.Entry) {
	s := r.styleFor(entry)

	text := trim(entry.Message, s.trim, r.glyphs.Ellipsis)
	// Continuation lines align under the message column.
	text = reindent(text, labelColumn+3)

	prefix := fmt.Sprintf("%*s %s", labelColumn, s.label, s.glyph)
	if len(s.attrs) == 0 {
		fmt.Fprintf(r.writer, "%s  %s\n", prefix, text)
		return
	}

	paint := color.New(s.attrs...).SprintFunc()
	prefixPaint := paint
	if s.attrs[0] == color.FgRed || s.attrs[0] == color.FgYellow {
		prefixPaint = color.New(append([]color.Attribute{color.Bold}, s.attrs...)...).SprintFunc()
	}
	fmt.Fprintf(r.writer, "%s  %s\n", prefixPaint(prefix), paint(text))
}

// ReportWrite prints the one-line completion message for a sink write.
func (r *Renderer) ReportWrite(file, format string, custom bool, elapsed time.Duration) {
	green := color.New(color.FgGreen).SprintFunc()
	kind := format + " logs"
	if custom {
		kind = "custom logs"
	}
	fmt.Fprintf(r.writer, "%s Wrote %s to %s (%dms)\n",
		green(r.glyphs.Check), kind, file, elapsed.Milliseconds())
}

func trim(text string, limit int, ellipsis string) string {
	runes := []rune(text)
	if limit <= 0 || len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + ellipsis
}

func reindent(text string, indent int) string {
	if !strings.Contains(text, "\n") {
		return text
	}
	return strings.ReplaceAll(text, "\n", "\n"+strings.Repeat(" ", indent))
}
