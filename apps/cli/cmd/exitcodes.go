package cmd

// Exit codes for the speclog CLI
const (
	// ExitSuccess indicates the replay completed
	ExitSuccess = 0

	// ExitWriteError indicates a sink write failed during flush
	ExitWriteError = 1

	// ExitEventError indicates an event file could not be parsed
	ExitEventError = 2

	// ExitConfigError indicates invalid options
	ExitConfigError = 3

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)
