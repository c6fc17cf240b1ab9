package strings

import (
	"testing"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{
			name:     "short link unchanged",
			input:    "https://go.dev",
			maxLen:   20,
			expected: "https://go.dev",
		},
		{
			name:     "exact length unchanged",
			input:    "https://go.dev",
			maxLen:   14,
			expected: "https://go.dev",
		},
		{
			name:     "long link truncated",
			input:    "https://github.com/golang/go/issues",
			maxLen:   21,
			expected: "https://github.com...",
		},
		{
			name:     "zero disables truncation",
			input:    "https://github.com/golang/go/issues",
			maxLen:   0,
			expected: "https://github.com/golang/go/issues",
		},
		{
			name:     "newlines replaced with spaces",
			input:    "hello\nworld",
			maxLen:   20,
			expected: "hello world",
		},
		{
			name:     "tabs and repeated spaces collapsed",
			input:    "  a\t\tb   c  ",
			maxLen:   20,
			expected: "a b c",
		},
		{
			name:     "zero keeps whitespace untouched",
			input:    "a  b\tc\nd",
			maxLen:   0,
			expected: "a  b\tc\nd",
		},
		{
			name:     "maxLen below MinTruncateLen clamped",
			input:    "abcdefgh",
			maxLen:   2,
			expected: "a...",
		},
		{
			name:     "empty string",
			input:    "",
			maxLen:   10,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Truncate(tt.input, tt.maxLen)
			if result != tt.expected {
				t.Errorf("Truncate(%q, %d) = %q, expected %q", tt.input, tt.maxLen, result, tt.expected)
			}
		})
	}
}
