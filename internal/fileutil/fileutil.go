// Package fileutil provides source reading and output writing helpers.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Sentinel errors for file utility operations.
var (
	ErrSourceTooLarge = errors.New("source exceeds maximum size")
)

// MaxSourceSize limits source input to prevent memory exhaustion (default 8MB).
var MaxSourceSize = 8 << 20

// ReadSource reads a source file, or stdin when path is "-" or empty.
// Input larger than MaxSourceSize is rejected.
func ReadSource(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return readCapped(os.Stdin, "stdin")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading source: %w", err)
	}
	defer f.Close()

	return readCapped(f, path)
}

func readCapped(r io.Reader, name string) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, int64(MaxSourceSize)+1))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	if len(data) > MaxSourceSize {
		return nil, fmt.Errorf("%w: %s (max %d bytes)", ErrSourceTooLarge, name, MaxSourceSize)
	}
	return data, nil
}

// WriteOutput runs write against a created file, or stdout when path is
// "-" or empty. The file is removed again when write fails, so a bad
// render does not leave a truncated document behind.
func WriteOutput(path string, write func(io.Writer) error) error {
	if path == "" || path == "-" {
		return write(os.Stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}

	if err := write(f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing output: %w", err)
	}
	return nil
}
