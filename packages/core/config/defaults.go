package config

// DefaultOptions returns the options applied when nothing is configured:
// generous trim lengths, compaction off (nil), both print policies unset
// (meaning onFail), and no file output.
func DefaultOptions() *Options {
	return &Options{
		DefaultTrimLength: 800,
		CommandTrimLength: 800,
		RouteTrimLength:   5000,
	}
}

// IntPtr is a convenience for setting optional integer options such as
// CompactLogs in code.
func IntPtr(n int) *int {
	return &n
}
