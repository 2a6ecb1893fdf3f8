package main

// Notes:
// - exitCodeFor: mapping of sentinel errors to exit codes

import (
	"errors"
	"fmt"
	"os"
	"testing"

	pygments "github.com/alexanderstephan/pygments"
	"github.com/alexanderstephan/pygments/internal/config"
	"github.com/alexanderstephan/pygments/internal/fileutil"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: ExitSuccess,
		},
		{
			name:     "missing file",
			err:      fmt.Errorf("reading source: %w", os.ErrNotExist),
			expected: ExitIO,
		},
		{
			name:     "oversized source",
			err:      fmt.Errorf("input: %w", fileutil.ErrSourceTooLarge),
			expected: ExitIO,
		},
		{
			name:     "config not found",
			err:      fmt.Errorf("loading: %w", config.ErrConfigNotFound),
			expected: ExitUsage,
		},
		{
			name:     "config parse failure",
			err:      config.ErrConfigParse,
			expected: ExitUsage,
		},
		{
			name:     "bad style colour",
			err:      fmt.Errorf("style %q: %w", "broken", pygments.ErrInvalidColorFormat),
			expected: ExitUsage,
		},
		{
			name:     "unknown token type",
			err:      config.ErrUnknownTokenType,
			expected: ExitUsage,
		},
		{
			name:     "anything else",
			err:      errors.New("boom"),
			expected: ExitGeneral,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCodeFor(tc.err); got != tc.expected {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tc.err, got, tc.expected)
			}
		})
	}
}
