package pygments

// Notes:
// - splitAfterLines: content-preserving line splitting
// - materialize: doc-string splitting, line-boundary counting
// - lineNumberState: slot numbering on the step grid, width padding

import (
	"reflect"
	"strings"
	"testing"

	"github.com/alecthomas/chroma/v2"
)

// ---------------------------------------------------------------------------
// TestSplitAfterLines - Content-Preserving Splitting
// ---------------------------------------------------------------------------

func TestSplitAfterLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "no newline",
			input:    "single",
			expected: []string{"single"},
		},
		{
			name:     "trailing newline",
			input:    "a\nb\n",
			expected: []string{"a\n", "b\n"},
		},
		{
			name:     "no trailing newline",
			input:    "a\nb",
			expected: []string{"a\n", "b"},
		},
		{
			name:     "blank lines kept",
			input:    "a\n\nb\n",
			expected: []string{"a\n", "\n", "b\n"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := splitAfterLines(tc.input)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("splitAfterLines(%q) = %q, want %q", tc.input, got, tc.expected)
			}
			if strings.Join(got, "") != tc.input {
				t.Errorf("splitAfterLines(%q) lost characters: %q", tc.input, strings.Join(got, ""))
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestMaterialize - Pre-Pass Splitting and Line Counting
// ---------------------------------------------------------------------------

func TestMaterialize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		tokens        []chroma.Token
		expectedCount int
		expected      []chroma.Token
	}{
		{
			name:          "empty stream",
			tokens:        nil,
			expectedCount: 0,
			expected:      nil,
		},
		{
			name: "newline tokens counted",
			tokens: []chroma.Token{
				{Type: chroma.Keyword, Value: "if"},
				{Type: chroma.Text, Value: "\n"},
				{Type: chroma.Name, Value: "x"},
				{Type: chroma.Text, Value: "\n"},
			},
			expectedCount: 2,
			expected: []chroma.Token{
				{Type: chroma.Keyword, Value: "if"},
				{Type: chroma.Text, Value: "\n"},
				{Type: chroma.Name, Value: "x"},
				{Type: chroma.Text, Value: "\n"},
			},
		},
		{
			name: "multi-line doc string split per line",
			tokens: []chroma.Token{
				{Type: chroma.LiteralStringDoc, Value: "\"\"\"one\ntwo\nthree\"\"\"\n"},
			},
			expectedCount: 3,
			expected: []chroma.Token{
				{Type: chroma.LiteralStringDoc, Value: "\"\"\"one\n"},
				{Type: chroma.LiteralStringDoc, Value: "two\n"},
				{Type: chroma.LiteralStringDoc, Value: "three\"\"\"\n"},
			},
		},
		{
			name: "single-line doc string untouched",
			tokens: []chroma.Token{
				{Type: chroma.LiteralStringDoc, Value: "\"\"\"one\"\"\""},
			},
			expectedCount: 0,
			expected: []chroma.Token{
				{Type: chroma.LiteralStringDoc, Value: "\"\"\"one\"\"\""},
			},
		},
		{
			name: "embedded newline in plain token not counted",
			tokens: []chroma.Token{
				{Type: chroma.CommentMultiline, Value: "/* a\nb */"},
			},
			expectedCount: 0,
			expected: []chroma.Token{
				{Type: chroma.CommentMultiline, Value: "/* a\nb */"},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			tokens, count := materialize(chroma.Literator(tc.tokens...))
			if count != tc.expectedCount {
				t.Errorf("line count = %d, want %d", count, tc.expectedCount)
			}
			if !reflect.DeepEqual(tokens, tc.expected) {
				t.Errorf("tokens = %v, want %v", tokens, tc.expected)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestMaterializePreservesContent - Split Never Loses Characters
// ---------------------------------------------------------------------------

func TestMaterializePreservesContent(t *testing.T) {
	t.Parallel()

	input := []chroma.Token{
		{Type: chroma.LiteralStringDoc, Value: "a\nb\nc"},
		{Type: chroma.Text, Value: "\n"},
		{Type: chroma.Keyword, Value: "return"},
	}

	tokens, _ := materialize(chroma.Literator(input...))

	var got, want strings.Builder
	for _, tok := range tokens {
		got.WriteString(tok.Value)
	}
	for _, tok := range input {
		want.WriteString(tok.Value)
	}
	if got.String() != want.String() {
		t.Errorf("materialize changed content: %q, want %q", got.String(), want.String())
	}
}

// ---------------------------------------------------------------------------
// TestLineNumberSlot - Step Grid and Padding
// ---------------------------------------------------------------------------

func TestLineNumberSlot(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		start    int
		step     int
		total    int
		expected []string
	}{
		{
			name:     "step one numbers every line",
			start:    1,
			step:     1,
			total:    3,
			expected: []string{"1", "2", "3"},
		},
		{
			name:     "step five from start one",
			start:    1,
			step:     5,
			total:    12,
			expected: []string{" 1", "  ", "  ", "  ", "  ", " 6", "  ", "  ", "  ", "  ", "11", "  "},
		},
		{
			name:     "step two from custom start",
			start:    10,
			step:     2,
			total:    99,
			expected: []string{"10", "  ", "12", "  ", "14"},
		},
		{
			name:     "width from total line count",
			start:    98,
			step:     1,
			total:    137,
			expected: []string{" 98", " 99", "100"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			state := newLineNumberState(tc.start, tc.step, tc.total)
			for i, want := range tc.expected {
				if got := state.slot(); got != want {
					t.Errorf("line %d: slot = %q, want %q", i, got, want)
				}
				state.observe("x\n")
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestLineNumberObserve - Pending Flag Transitions
// ---------------------------------------------------------------------------

func TestLineNumberObserve(t *testing.T) {
	t.Parallel()

	state := newLineNumberState(1, 1, 9)
	if !state.pending {
		t.Fatal("initial state must owe a number slot")
	}

	state.pending = false
	state.observe("mid-line token")
	if state.pending || state.lineno != 1 {
		t.Errorf("after mid-line token: pending=%v lineno=%d, want false/1", state.pending, state.lineno)
	}

	state.observe("ends the line\n")
	if !state.pending || state.lineno != 2 {
		t.Errorf("after newline token: pending=%v lineno=%d, want true/2", state.pending, state.lineno)
	}
}
