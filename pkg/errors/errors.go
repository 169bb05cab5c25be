// Package errors defines the sentinel errors shared across sbopak and small
// helpers for wrapping them with context. Every fatal condition in the tool
// wraps one of these sentinels so callers can classify failures with errors.Is.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Common error types.
var (
	// Config errors.
	ErrEmptyConfigPath = fmt.Errorf("config file path cannot be empty")
	ErrConfigParse     = fmt.Errorf("failed to parse config")

	// Lookup errors.
	ErrPackageNotFound = fmt.Errorf("package not found")
	ErrNotManaged      = fmt.Errorf("package is not managed by sbopak")

	// Resolver errors.
	ErrCircularDependency = fmt.Errorf("circular dependency")

	// Descriptor errors.
	ErrDescriptorParse = fmt.Errorf("failed to parse descriptor")
	ErrUnsupportedArch = fmt.Errorf("package cannot be built on this architecture")

	// Pipeline errors.
	ErrDownloadFailed   = fmt.Errorf("download failed")
	ErrChecksumMismatch = fmt.Errorf("checksum mismatch")
	ErrCommandFailed    = fmt.Errorf("command failed")
	ErrArtifactMissing  = fmt.Errorf("built artifact not found")

	// Privilege errors.
	ErrPrivilege = fmt.Errorf("root privileges required")

	// Hook errors.
	ErrHookExecution = fmt.Errorf("error executing hook")

	// Path errors.
	ErrInvalidPath = fmt.Errorf("invalid path")
)

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// IsNotFound reports whether err wraps ErrPackageNotFound.
func IsNotFound(err error) bool {
	return stderrors.Is(err, ErrPackageNotFound)
}

// IsNotManaged reports whether err wraps ErrNotManaged.
func IsNotManaged(err error) bool {
	return stderrors.Is(err, ErrNotManaged)
}

// Wrap wraps an error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
