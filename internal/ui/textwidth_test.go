package ui

import (
	"testing"
)

func TestRuneWidth(t *testing.T) {
	tests := []struct {
		name     string
		r        rune
		expected int
	}{
		// ASCII
		{"ASCII letter", 'A', 1},
		{"ASCII space", ' ', 1},
		{"ASCII digit", '5', 1},

		// Wide characters
		{"Emoji", '😀', 2},
		{"Chinese character", '中', 2},
		{"Japanese hiragana", 'あ', 2},

		// Combining marks
		{"Combining acute", '\u0301', 0},
		{"Zero width joiner", '\u200d', 0},

		// Control characters
		{"Tab", '\t', 0},
		{"Newline", '\n', 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RuneWidth(tt.r)
			if got != tt.expected {
				t.Errorf("RuneWidth(%q) = %d, want %d", tt.r, got, tt.expected)
			}
		})
	}
}

func TestStringWidth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"ASCII only", "Hello", 5},
		{"ASCII with spaces", "Hello World", 11},
		{"Emoji with text", "😀 Hello", 8}, // 2 + 1 + 5
		{"Chinese", "中国", 4},
		{"Mixed CJK and ASCII", "Hello中国", 9}, // 5 + 4
		{"Empty string", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StringWidth(tt.input)
			if got != tt.expected {
				t.Errorf("StringWidth(%q) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTruncateToWidth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		expected string
	}{
		// ASCII
		{"ASCII fits", "Hello", 10, "Hello"},
		{"ASCII truncated", "Hello", 3, "Hel"},
		{"ASCII exact", "Hello", 5, "Hello"},

		// Emoji - ensure we don't split them
		{"Emoji fits", "😀Hi", 10, "😀Hi"},
		{"Emoji truncated before", "😀Hello", 2, "😀"},
		{"Emoji truncated after", "Hi😀", 3, "Hi"},

		// CJK
		{"Chinese truncated", "中国", 2, "中"},
		{"Mixed truncated before CJK", "Hello中国", 5, "Hello"},

		// Edge cases
		{"Empty string", "", 5, ""},
		{"MaxWidth 0", "Hello", 0, ""},
		{"MaxWidth negative", "Hello", -1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateToWidth(tt.input, tt.maxWidth)
			if got != tt.expected {
				t.Errorf("TruncateToWidth(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.expected)
			}
		})
	}
}

func TestTruncateToWidthWithEllipsis(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		maxWidth      int
		checkEllipsis bool
	}{
		{"Fits no ellipsis", "Hello", 10, false},
		{"Long ASCII", "HelloWorld", 5, true},
		{"Long with emoji", "😀HelloWorld", 7, true},
		{"MaxWidth 2", "HelloWorld", 2, false},
		{"Empty string", "", 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateToWidthWithEllipsis(tt.input, tt.maxWidth)

			if tt.checkEllipsis {
				if len(got) < 3 || got[len(got)-3:] != "..." {
					t.Errorf("Result should end with '...': %q", got)
				}
			}

			width := StringWidth(got)
			if width > tt.maxWidth {
				t.Errorf("Result width %d exceeds maxWidth %d", width, tt.maxWidth)
			}
		})
	}
}

func TestPadStringToWidth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{"ASCII shorter", "Hi", 5, "Hi   "},
		{"ASCII exact", "Hello", 5, "Hello"},
		{"ASCII longer", "Hello", 3, "Hello"},
		{"Emoji shorter", "😀", 5, "😀   "},
		{"Empty string", "", 5, "     "},
		{"Width 0", "Hi", 0, "Hi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PadStringToWidth(tt.input, tt.width)
			if got != tt.expected {
				t.Errorf("PadStringToWidth(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.expected)
			}
		})
	}
}
