package session

import (
	"fmt"

	"github.com/abdul-hamid-achik/speclog/packages/compact"
	"github.com/abdul-hamid-achik/speclog/packages/core/config"
	"github.com/abdul-hamid-achik/speclog/packages/core/logs"
	"github.com/abdul-hamid-achik/speclog/packages/metrics"
	"github.com/abdul-hamid-achik/speclog/packages/render"
	"github.com/abdul-hamid-achik/speclog/packages/sink"
	"github.com/google/uuid"
)

// Policy gates output on the last observed test outcome.
type Policy string

const (
	PolicyAlways Policy = "always"
	PolicyOnFail Policy = "onFail"
)

// Permits reports whether output should occur given the last test result.
// An unset policy behaves as onFail: anything other than a pass permits
// output.
func (p Policy) Permits(result logs.TestResult) bool {
	if p == PolicyAlways {
		return true
	}
	return result != logs.ResultPassed
}

// IngestEvent is the payload delivered once per completed test case.
type IngestEvent struct {
	Spec     string          `json:"spec" yaml:"spec"`
	Test     string          `json:"test" yaml:"test"`
	Messages logs.Sequence   `json:"messages" yaml:"messages"`
	State    logs.TestResult `json:"state" yaml:"state"`
}

// Session owns all run-scoped state: the batch buffer, the last observed
// test result, and the resolved sinks. It is created once at install time
// and driven by the host's ingestion and flush events, which arrive
// serially.
type Session struct {
	id       uuid.UUID
	opts     *config.Options
	renderer *render.Renderer
	sinks    []sink.Sink
	stats    *metrics.WriteStats

	buffer     logs.Buffer
	lastResult logs.TestResult

	// collected by options before sinks are built
	customTargets map[string]sink.CustomWriter
}

type Option func(*Session) error

// WithRenderer replaces the renderer built from the options.
func WithRenderer(r *render.Renderer) Option {
	return func(s *Session) error {
		s.renderer = r
		return nil
	}
}

// WithCustomTarget registers a custom output target at path (relative to
// the output root), serialized by fn.
func WithCustomTarget(path string, fn sink.CustomWriter) Option {
	return func(s *Session) error {
		if fn == nil {
			return fmt.Errorf("%w: custom target %s has no writer", config.ErrInvalid, path)
		}
		s.customTargets[path] = fn
		return nil
	}
}

// New validates opts, resolves and initializes every declared sink, and
// returns a ready session. All configuration errors surface here, before
// any test runs.
func New(opts *config.Options, sessionOpts ...Option) (*Session, error) {
	if opts == nil {
		opts = config.DefaultOptions()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		id:     uuid.New(),
		opts:   opts,
		stats:  metrics.NewWriteStats(),
		buffer: logs.NewBuffer(),
	}
	s.customTargets = make(map[string]sink.CustomWriter)

	for _, opt := range sessionOpts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	if s.renderer == nil {
		s.renderer = render.NewRenderer(render.WithTrimLengths(render.TrimLengths{
			Default: opts.DefaultTrimLength,
			Command: opts.CommandTrimLength,
			Route:   opts.RouteTrimLength,
		}))
	}

	targets := make(map[string]sink.Target, len(opts.OutputTarget)+len(s.customTargets))
	for path, format := range opts.OutputTarget {
		targets[path] = sink.Named(format)
	}
	for path, fn := range s.customTargets {
		targets[path] = sink.Custom(fn)
	}

	sinks, err := sink.Build(opts.OutputRoot, targets)
	if err != nil {
		return nil, err
	}
	for _, sk := range sinks {
		if err := sk.Initialize(); err != nil {
			return nil, err
		}
	}
	s.sinks = sinks

	return s, nil
}

// ID identifies this session for reporting.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Sinks returns the resolved sinks in flush order.
func (s *Session) Sinks() []sink.Sink {
	return s.sinks
}

// Stats returns the accumulated write-latency statistics.
func (s *Session) Stats() *metrics.WriteStats {
	return s.stats
}

// Ingest handles one completed test case: compacts the sequence when
// compaction is configured, renders it to the terminal under the console
// policy, and stores it for file output when sinks are declared. The
// event's state becomes the last known test result.
func (s *Session) Ingest(ev IngestEvent) {
	seq := ev.Messages
	if s.opts.CompactLogs != nil {
		seq = compact.Compact(seq, *s.opts.CompactLogs)
	}

	s.lastResult = ev.State

	if Policy(s.opts.PrintLogsToConsole).Permits(ev.State) {
		s.renderer.RenderSequence(seq)
	}

	if len(s.sinks) > 0 {
		s.buffer.Put(ev.Spec, ev.Test, seq)
	}
}

// Flush writes the accumulated buffer to every sink, gated once by the
// file policy against the result recorded by the last ingestion. The
// buffer and last result are reset whether or not anything was written,
// and whether or not a write failed, so no state leaks into the next run.
func (s *Session) Flush() error {
	defer func() {
		s.buffer = logs.NewBuffer()
		s.lastResult = ""
	}()

	if !Policy(s.opts.PrintLogsToFile).Permits(s.lastResult) {
		return nil
	}

	for _, sk := range s.sinks {
		if err := sk.Write(s.buffer); err != nil {
			return fmt.Errorf("flush: %w", err)
		}
		elapsed := sk.WriteSpendTime()
		s.stats.Record(sk.File(), elapsed)
		s.renderer.ReportWrite(sk.File(), string(sk.Format()), sk.Format() == sink.FormatCustom, elapsed)
	}

	return nil
}
