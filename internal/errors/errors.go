// Package errors provides structured error types and exit codes for msyskit.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Exit codes returned by the CLI.
const (
	ExitSuccess          = 0 // Success
	ExitRuntimeError     = 1 // Runtime error
	ExitConfigError      = 2 // Configuration error (invalid settings, bad arguments)
	ExitUnresolvedError  = 3 // Nothing could be resolved (unknown kit, missing root)
	ExitUnspecifiedError = 4 // Build generator is not configured or not recognized
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindConfig
	KindValidation
	KindUnrecognized
	KindConfigMissing
	KindGeneratorUnspecified
)

// Sentinels matched with errors.Is. Errors built by the constructors below
// compare equal to the sentinel of the same kind.
var (
	ErrUnrecognized         = &MsyskitError{Kind: KindUnrecognized, Message: "build kit not recognized"}
	ErrConfigurationMissing = &MsyskitError{Kind: KindConfigMissing, Message: "configuration missing"}
	ErrGeneratorUnspecified = &MsyskitError{Kind: KindGeneratorUnspecified, Message: "generator unspecified"}
)

// MsyskitError is the base error type for msyskit.
type MsyskitError struct {
	Kind     ErrorKind
	Message  string
	Provider string // Provider name if applicable
	Key      string // Settings key if applicable
	Cause    error  // Underlying error
}

func (e *MsyskitError) Error() string {
	if e.Provider != "" && e.Key != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Provider, e.Key, e.Message)
	}
	if e.Provider != "" {
		return fmt.Sprintf("[%s] %s", e.Provider, e.Message)
	}
	if e.Key != "" {
		return fmt.Sprintf("%s: %s", e.Key, e.Message)
	}
	return e.Message
}

func (e *MsyskitError) Unwrap() error {
	return e.Cause
}

// Is matches sentinel errors by kind.
func (e *MsyskitError) Is(target error) bool {
	t, ok := target.(*MsyskitError)
	if !ok {
		return false
	}
	switch t {
	case ErrUnrecognized, ErrConfigurationMissing, ErrGeneratorUnspecified:
		return e.Kind == t.Kind
	}
	return e == t
}

// ExitCode returns the appropriate exit code for this error.
func (e *MsyskitError) ExitCode() int {
	switch e.Kind {
	case KindConfig, KindValidation:
		return ExitConfigError
	case KindUnrecognized, KindConfigMissing:
		return ExitUnresolvedError
	case KindGeneratorUnspecified:
		return ExitUnspecifiedError
	default:
		return ExitRuntimeError
	}
}

// Newf creates a new runtime error with formatting.
func Newf(format string, args ...interface{}) *MsyskitError {
	return &MsyskitError{
		Kind:    KindRuntime,
		Message: fmt.Sprintf(format, args...),
	}
}

// Config creates a new configuration error.
func Config(message string) *MsyskitError {
	return &MsyskitError{
		Kind:    KindConfig,
		Message: message,
	}
}

// Configf creates a new configuration error with formatting.
func Configf(format string, args ...interface{}) *MsyskitError {
	return Config(fmt.Sprintf(format, args...))
}

// Validation creates a validation error for a settings key.
func Validation(key, message string) *MsyskitError {
	return &MsyskitError{
		Kind:    KindValidation,
		Key:     key,
		Message: message,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *MsyskitError {
	return &MsyskitError{
		Kind:    KindRuntime,
		Message: message,
		Cause:   err,
	}
}

// Unrecognized reports a build-kit label that matches no provider.
func Unrecognized(label string) *MsyskitError {
	msg := "no build kit selected"
	if label != "" {
		msg = fmt.Sprintf("build kit %q not recognized", label)
	}
	return &MsyskitError{
		Kind:    KindUnrecognized,
		Message: msg,
	}
}

// ConfigMissing reports a settings key that is required but unset.
func ConfigMissing(provider, key string) *MsyskitError {
	return &MsyskitError{
		Kind:     KindConfigMissing,
		Provider: provider,
		Key:      key,
		Message:  "is not set",
	}
}

// GeneratorUnspecified reports a generator name that selects no build tool.
func GeneratorUnspecified(name string) *MsyskitError {
	msg := "no generator configured"
	if name != "" {
		msg = fmt.Sprintf("generator %q does not select make or ninja", name)
	}
	return &MsyskitError{
		Kind:    KindGeneratorUnspecified,
		Key:     "cmake.generator",
		Message: msg,
	}
}

// Degraded reports whether err should surface as an empty result rather than
// a failure: unrecognized kits, missing configuration and unspecified generators.
func Degraded(err error) bool {
	return stderrors.Is(err, ErrUnrecognized) ||
		stderrors.Is(err, ErrConfigurationMissing) ||
		stderrors.Is(err, ErrGeneratorUnspecified)
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var me *MsyskitError
	if stderrors.As(err, &me) {
		return me.ExitCode()
	}
	return ExitRuntimeError
}
