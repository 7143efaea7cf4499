package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDisplayWidth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{name: "empty", input: "", expected: 0},
		{name: "ascii", input: "Now", expected: 3},
		{name: "apostrophe", input: "Earth's formation", expected: 17},
		{name: "wide runes", input: "地球", expected: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetDisplayWidth(tt.input))
		})
	}
}

func TestPadString(t *testing.T) {
	assert.Equal(t, "ab   ", PadString("ab", 5, true))
	assert.Equal(t, "   ab", PadString("ab", 5, false))
	assert.Equal(t, "地球 ", PadString("地球", 5, true))
	assert.Equal(t, "abcdef", PadString("abcdef", 3, true))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "ab…", Truncate("abcdef", 3))
	assert.Equal(t, "", Truncate("abc", 0))
}

func TestShouldColor(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)
	defer f.Close()

	assert.True(t, ShouldColor("always", f))
	assert.False(t, ShouldColor("never", f))
	// A regular file is never a terminal
	assert.False(t, ShouldColor("auto", f))
	assert.False(t, ShouldColor("auto", nil))
}

func TestTerminalWidthFallback(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, 80, TerminalWidth(f))
}
