// Package render formats log sequences for the terminal.
//
// Each entry becomes one line: the category label padded into a fixed
// column, an icon, and the message. Category defaults decide color, icon
// and trim length; a warning or error severity overrides color and icon.
// Messages longer than the trim length are truncated with an ellipsis, and
// embedded line breaks are re-indented under the message column.
//
// Icons come from one of two glyph sets, Unicode or ASCII, chosen once per
// process from the environment (platform, CI flag, terminal type).
package render
