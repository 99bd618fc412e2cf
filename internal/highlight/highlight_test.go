package highlight

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func joinSpans(spans []Span) string {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

func spanByText(spans []Span, text string) (Span, bool) {
	for _, s := range spans {
		if s.Text == text {
			return s, true
		}
	}
	return Span{}, false
}

// Concatenated span text must reproduce the input exactly, for supported
// and unsupported files alike.
func TestLineReconstruction(t *testing.T) {
	inputs := []string{
		`const s = "return";`,
		`func Add(a, b int) int {`,
		`	if x >= 10 { // boundary`,
		`    `,
		`result := compute(x) + 0x1f`,
		`{name: "x", count: 2}`,
		"",
	}
	for _, line := range inputs {
		assert.Equal(t, line, joinSpans(Line(line, "main.go")), "supported: %q", line)
		assert.Equal(t, line, joinSpans(Line(line, "notes.txt")), "unsupported: %q", line)
	}
}

func TestLineSpansAreContiguousAndNonOverlapping(t *testing.T) {
	line := `total := price * quantity // in cents`
	spans := Line(line, "calc.go")

	pos := 0
	for i, s := range spans {
		require.NotEmpty(t, s.Text, "span %d must not be empty", i)
		assert.Equal(t, line[pos:pos+len(s.Text)], s.Text, "span %d position", i)
		pos += len(s.Text)
	}
	assert.Equal(t, len(line), pos)
}

func TestLineUnsupportedExtension(t *testing.T) {
	spans := Line("anything at all", "README.txt")
	require.Len(t, spans, 1)
	assert.Equal(t, CategoryPlain, spans[0].Category)
	assert.Equal(t, "anything at all", spans[0].Text)

	spans = Line("no filename", "")
	require.Len(t, spans, 1)
	assert.Equal(t, CategoryPlain, spans[0].Category)
}

func TestLineEmpty(t *testing.T) {
	spans := Line("", "main.go")
	require.Len(t, spans, 1)
	assert.Equal(t, Span{Text: "", Category: CategoryPlain}, spans[0])
}

// A keyword inside a string literal must stay part of the string span:
// the string match starts earlier, so position order wins.
func TestLineKeywordInsideStringStaysString(t *testing.T) {
	spans := Line(`const s = "return";`, "app.js")

	constSpan, ok := spanByText(spans, "const")
	require.True(t, ok)
	assert.Equal(t, CategoryKeyword, constSpan.Category)

	strSpan, ok := spanByText(spans, `"return"`)
	require.True(t, ok)
	assert.Equal(t, CategoryString, strSpan.Category)

	_, ok = spanByText(spans, "return")
	assert.False(t, ok, "bare keyword span must not escape the string literal")
}

func TestLineCategories(t *testing.T) {
	spans := Line(`x = compute(31) // answer`, "calc.py")

	fn, ok := spanByText(spans, "compute")
	require.True(t, ok)
	assert.Equal(t, CategoryFunction, fn.Category)

	num, ok := spanByText(spans, "31")
	require.True(t, ok)
	assert.Equal(t, CategoryNumber, num.Category)

	op, ok := spanByText(spans, "=")
	require.True(t, ok)
	assert.Equal(t, CategoryOperator, op.Category)

	comment, ok := spanByText(spans, "// answer")
	require.True(t, ok)
	assert.Equal(t, CategoryComment, comment.Category)
}

func TestLineProperty(t *testing.T) {
	spans := Line(`{name: "x"}`, "data.json")

	prop, ok := spanByText(spans, "name")
	require.True(t, ok)
	assert.Equal(t, CategoryProperty, prop.Category)
}

func TestLineWhitespaceOnly(t *testing.T) {
	spans := Line("    ", "main.go")
	require.Len(t, spans, 1)
	assert.Equal(t, CategoryPlain, spans[0].Category)
}

func TestSupportedFile(t *testing.T) {
	assert.True(t, SupportedFile("main.go"))
	assert.True(t, SupportedFile("b/src/App.tsx"))
	assert.True(t, SupportedFile("STYLE.CSS"))
	assert.False(t, SupportedFile("notes.txt"))
	assert.False(t, SupportedFile("Makefile"))
	assert.False(t, SupportedFile(""))
}
