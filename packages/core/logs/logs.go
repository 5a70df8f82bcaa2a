package logs

import "sort"

// Severity classifies a log entry. It is carried alongside the category and
// can override how an entry renders.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Category identifies the source of a log entry. Categories outside the
// known set are rendered generically but are otherwise carried through
// the pipeline untouched.
type Category string

const (
	CategoryCyLog       Category = "cy:log"
	CategoryCyCommand   Category = "cy:command"
	CategoryCyRoute     Category = "cy:route"
	CategoryCyXHR       Category = "cy:xhr"
	CategoryCyFetch     Category = "cy:fetch"
	CategoryCyIntercept Category = "cy:intercept"
	CategoryCyRequest   Category = "cy:request"
	CategoryConsoleLog  Category = "cons:log"
	CategoryConsoleInfo Category = "cons:info"
	CategoryConsoleDbg  Category = "cons:debug"
	CategoryConsoleWarn Category = "cons:warn"
	CategoryConsoleErr  Category = "cons:error"

	// CategoryReport marks entries generated by the pipeline itself,
	// such as omission markers emitted during compaction.
	CategoryReport Category = "rep:info"
)

// Entry is one recorded event from a test run. Entries are immutable once
// produced; transformations build new entries instead of mutating.
type Entry struct {
	Category Category `json:"category"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// Sequence is the ordered list of entries recorded for a single test case.
// Order is chronological and must survive every transformation.
type Sequence []Entry

// TestResult is the outcome reported for a test case.
type TestResult string

const (
	ResultPassed  TestResult = "passed"
	ResultFailed  TestResult = "failed"
	ResultPending TestResult = "pending"
	ResultOther   TestResult = "other"
)

// Buffer accumulates one sequence per (spec, test) pair for the lifetime of
// a run. A later Put for the same pair replaces the earlier sequence.
type Buffer map[string]map[string]Sequence

func NewBuffer() Buffer {
	return make(Buffer)
}

// Put stores seq under (spec, test), replacing any previous sequence for
// that pair.
func (b Buffer) Put(spec, test string, seq Sequence) {
	tests, ok := b[spec]
	if !ok {
		tests = make(map[string]Sequence)
		b[spec] = tests
	}
	tests[test] = seq
}

// Get returns the sequence stored for (spec, test), if any.
func (b Buffer) Get(spec, test string) (Sequence, bool) {
	tests, ok := b[spec]
	if !ok {
		return nil, false
	}
	seq, ok := tests[test]
	return seq, ok
}

// Len returns the number of stored sequences across all specs.
func (b Buffer) Len() int {
	n := 0
	for _, tests := range b {
		n += len(tests)
	}
	return n
}

// Specs returns the spec identifiers in sorted order.
func (b Buffer) Specs() []string {
	specs := make([]string, 0, len(b))
	for spec := range b {
		specs = append(specs, spec)
	}
	sort.Strings(specs)
	return specs
}

// Tests returns the test identifiers stored under spec, in sorted order.
func (b Buffer) Tests(spec string) []string {
	tests := make([]string, 0, len(b[spec]))
	for test := range b[spec] {
		tests = append(tests, test)
	}
	sort.Strings(tests)
	return tests
}
