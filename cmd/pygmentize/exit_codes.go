package main

import (
	"errors"
	"os"

	pygments "github.com/alexanderstephan/pygments"
	"github.com/alexanderstephan/pygments/internal/config"
	"github.com/alexanderstephan/pygments/internal/fileutil"
)

// Exit codes for the pygmentize CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, 3=I/O.
const (
	ExitSuccess = 0 // Successful render
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or style definitions
	ExitIO      = 3 // File not found, permission denied, oversized input
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, fileutil.ErrSourceTooLarge) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrUnknownTokenType) ||
		errors.Is(err, pygments.ErrInvalidColorFormat) {
		return ExitUsage
	}

	return ExitGeneral
}
