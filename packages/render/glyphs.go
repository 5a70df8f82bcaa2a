package render

import (
	"os"
	"runtime"

	"github.com/mattn/go-isatty"
)

// Glyphs is the icon set used for terminal output. One set is selected per
// process and passed into the renderer as configuration.
type Glyphs struct {
	Info     string
	Debug    string
	Warning  string
	Error    string
	Check    string
	Route    string
	Ellipsis string
}

// Unicode is the default glyph set.
var Unicode = Glyphs{
	Info:     "ℹ",
	Debug:    "⚙",
	Warning:  "⚠",
	Error:    "✘",
	Check:    "✔",
	Route:    "➟",
	Ellipsis: "…",
}

// ASCII is the fallback glyph set for terminals without reliable Unicode
// rendering. All glyphs are a single cell wide so column math matches the
// Unicode set.
var ASCII = Glyphs{
	Info:     "i",
	Debug:    "%",
	Warning:  "!",
	Error:    "x",
	Check:    "+",
	Route:    "~",
	Ellipsis: "...",
}

// Environment describes the process environment characteristics that drive
// glyph selection.
type Environment struct {
	Platform    string // runtime.GOOS value
	CI          bool
	Term        string // value of TERM
	Interactive bool   // stdout is attached to a terminal
}

// DetectEnvironment probes the current process environment once, at
// startup. The result feeds GlyphsFor.
func DetectEnvironment() Environment {
	return Environment{
		Platform:    runtime.GOOS,
		CI:          os.Getenv("CI") != "",
		Term:        os.Getenv("TERM"),
		Interactive: isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()),
	}
}

// GlyphsFor maps an environment to a glyph set. Unicode is the default;
// ASCII is chosen only for an interactive Windows terminal outside CI whose
// TERM does not promise Unicode rendering.
func GlyphsFor(env Environment) Glyphs {
	if env.CI || env.Platform != "windows" || !env.Interactive {
		return Unicode
	}
	switch env.Term {
	case "xterm", "xterm-256color", "cygwin":
		return Unicode
	}
	return ASCII
}
