package sink

import (
	"fmt"
	"path/filepath"
	"sort"
)

// Target declares how one destination file is produced: either a built-in
// format by name, or a custom writer function. Exactly one of the two is
// set.
type Target struct {
	Format string
	Writer CustomWriter
}

// Named declares a target using a built-in format name.
func Named(format string) Target {
	return Target{Format: format}
}

// Custom declares a target backed by a caller-supplied writer.
func Custom(fn CustomWriter) Target {
	return Target{Writer: fn}
}

// Build resolves target declarations into sinks, one per relative path,
// rooted at root. Configuration problems surface here, before any test
// runs. Paths are resolved in sorted order so flushing is deterministic.
func Build(root string, targets map[string]Target) ([]Sink, error) {
	if len(targets) == 0 {
		return nil, nil
	}
	if root == "" {
		return nil, ErrMissingRoot
	}

	paths := make([]string, 0, len(targets))
	for path := range targets {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	sinks := make([]Sink, 0, len(paths))
	for _, path := range paths {
		target := targets[path]
		file := filepath.Join(root, path)

		if target.Writer != nil {
			sinks = append(sinks, NewCustom(file, target.Writer))
			continue
		}

		switch Format(target.Format) {
		case FormatJSON:
			sinks = append(sinks, NewJSON(file))
		case FormatText:
			sinks = append(sinks, NewText(file))
		default:
			return nil, fmt.Errorf("target %s: %w: %q", path, ErrUnknownFormat, target.Format)
		}
	}

	return sinks, nil
}
