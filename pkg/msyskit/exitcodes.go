// Package msyskit provides public constants for tools that invoke the
// msyskit CLI.
package msyskit

// Exit codes returned by the msyskit CLI.
// These constants allow external tools to check exit codes symbolically
// rather than using magic numbers.
const (
	// ExitSuccess indicates the command completed successfully. Without
	// --strict this includes lookups that resolved to nothing.
	ExitSuccess = 0

	// ExitFailure indicates a runtime failure.
	ExitFailure = 1

	// ExitConfigError indicates invalid settings, flags or arguments.
	ExitConfigError = 2

	// ExitUnresolved indicates (with --strict) that the build kit was not
	// recognized or a required root is not configured.
	ExitUnresolved = 3

	// ExitGeneratorUnspecified indicates (with --strict) that
	// cmake.generator selects neither make nor ninja.
	ExitGeneratorUnspecified = 4
)
