package fileutil

// Notes:
// - ReadSource: file reading, missing file, size cap
// - WriteOutput: file creation, cleanup on render failure

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestReadSource - File Reading and Size Cap
// ---------------------------------------------------------------------------

func TestReadSource(t *testing.T) {
	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "main.go")
		if err := os.WriteFile(path, []byte("package main\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		data, err := ReadSource(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "package main\n" {
			t.Errorf("got %q", data)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadSource(filepath.Join(t.TempDir(), "nope.go"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("error = %v, want os.ErrNotExist", err)
		}
	})

	t.Run("size cap", func(t *testing.T) {
		orig := MaxSourceSize
		MaxSourceSize = 8
		defer func() { MaxSourceSize = orig }()

		path := filepath.Join(t.TempDir(), "big.go")
		if err := os.WriteFile(path, []byte(strings.Repeat("x", 16)), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := ReadSource(path); !errors.Is(err, ErrSourceTooLarge) {
			t.Errorf("error = %v, want ErrSourceTooLarge", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestWriteOutput - Creation and Failure Cleanup
// ---------------------------------------------------------------------------

func TestWriteOutput(t *testing.T) {
	t.Run("writes file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.rtf")
		err := WriteOutput(path, func(w io.Writer) error {
			_, err := io.WriteString(w, "{\\rtf1}")
			return err
		})
		if err != nil {
			t.Fatal(err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "{\\rtf1}" {
			t.Errorf("got %q", data)
		}
	})

	t.Run("removes file when render fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.rtf")
		renderErr := errors.New("render failed")
		err := WriteOutput(path, func(io.Writer) error { return renderErr })
		if !errors.Is(err, renderErr) {
			t.Fatalf("error = %v, want render error", err)
		}
		if _, statErr := os.Stat(path); !errors.Is(statErr, os.ErrNotExist) {
			t.Error("failed render left a partial file behind")
		}
	})
}
