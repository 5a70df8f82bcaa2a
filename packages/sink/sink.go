package sink

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/abdul-hamid-achik/speclog/packages/core/logs"
)

// Format tags a sink with its serialization kind. The tag is set at
// construction and used for reporting; no type inspection happens at
// flush time.
type Format string

const (
	FormatJSON   Format = "json"
	FormatText   Format = "txt"
	FormatCustom Format = "custom"
)

var (
	// ErrMissingRoot is returned when output targets are declared without
	// an output root directory.
	ErrMissingRoot = errors.New("output root is required when output targets are declared")

	// ErrUnknownFormat is returned for a target naming a format that is
	// not built in.
	ErrUnknownFormat = errors.New("unknown output format")

	// ErrNotInitialized is returned when Write is called on a sink that
	// was never initialized.
	ErrNotInitialized = errors.New("sink written before initialization")
)

// CustomWriter serializes the accumulated buffer for a custom output
// target. It receives every stored sequence and returns the bytes to
// persist.
type CustomWriter func(all logs.Buffer) ([]byte, error)

// Sink persists the accumulated logs of one run to a single destination
// file. A sink is initialized exactly once before the run and written at
// most once per run, on flush.
type Sink interface {
	// Initialize prepares the destination, creating parent directories.
	// It is idempotent.
	Initialize() error

	// Write serializes all buffered messages to the destination file and
	// records the time spent.
	Write(all logs.Buffer) error

	// File returns the destination path.
	File() string

	// Format returns the sink's format tag.
	Format() Format

	// WriteSpendTime returns the duration of the last Write.
	WriteSpendTime() time.Duration
}

// fileSink is the shared implementation behind every built-in and custom
// sink: encode the buffer, write the file, track elapsed time.
type fileSink struct {
	file        string
	format      Format
	encode      func(all logs.Buffer) ([]byte, error)
	spendTime   time.Duration
	initialized bool
}

func (s *fileSink) Initialize() error {
	if s.initialized {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.file), 0o755); err != nil {
		return fmt.Errorf("initialize sink %s: %w", s.file, err)
	}
	s.initialized = true
	return nil
}

func (s *fileSink) Write(all logs.Buffer) error {
	if !s.initialized {
		return fmt.Errorf("sink %s: %w", s.file, ErrNotInitialized)
	}
	start := time.Now()
	data, err := s.encode(all)
	if err != nil {
		return fmt.Errorf("encode logs for %s: %w", s.file, err)
	}
	if err := os.WriteFile(s.file, data, 0o644); err != nil {
		return fmt.Errorf("write logs to %s: %w", s.file, err)
	}
	s.spendTime = time.Since(start)
	return nil
}

func (s *fileSink) File() string {
	return s.file
}

func (s *fileSink) Format() Format {
	return s.format
}

func (s *fileSink) WriteSpendTime() time.Duration {
	return s.spendTime
}
