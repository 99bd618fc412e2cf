// Package highlight tokenizes single source lines into categorized spans
// for colorized rendering. It is a per-line lexical scanner: it has no
// knowledge of nesting or multi-line constructs, so a block comment
// spanning several lines is only recognized where its delimiters appear
// on one line. That is a deliberate simplification.
package highlight

import (
	"path/filepath"
	"sort"
	"strings"
)

// Category classifies a span for rendering. The names are part of the
// public contract; each maps 1:1 to a theme color.
type Category string

const (
	CategoryString   Category = "string"
	CategoryNumber   Category = "number"
	CategoryKeyword  Category = "keyword"
	CategoryComment  Category = "comment"
	CategoryProperty Category = "property"
	CategoryFunction Category = "function"
	CategoryOperator Category = "operator"
	CategoryPlain    Category = "plain"
)

// Span is one tokenized fragment of a single line. Spans for a line are
// contiguous and non-overlapping; concatenating their Text reconstructs
// the line exactly.
type Span struct {
	Text     string   `json:"text"`
	Category Category `json:"category"`
}

// supportedExts covers the source and markup extensions the tokenizer
// knows how to scan. Anything else renders as plain text.
var supportedExts = map[string]bool{
	".go":    true,
	".rb":    true,
	".py":    true,
	".rs":    true,
	".js":    true,
	".mjs":   true,
	".cjs":   true,
	".jsx":   true,
	".ts":    true,
	".tsx":   true,
	".java":  true,
	".c":     true,
	".h":     true,
	".cpp":   true,
	".cc":    true,
	".cxx":   true,
	".hpp":   true,
	".hh":    true,
	".hxx":   true,
	".cs":    true,
	".php":   true,
	".swift": true,
	".kt":    true,
	".kts":   true,
	".scala": true,
	".m":     true,
	".mm":    true,
	".sh":    true,
	".html":  true,
	".css":   true,
	".json":  true,
	".yaml":  true,
	".yml":   true,
	".toml":  true,
}

// SupportedFile reports whether filename has an extension the tokenizer
// can scan. Diff paths may carry a/ or b/ prefixes; only the extension
// matters.
func SupportedFile(filename string) bool {
	return supportedExts[strings.ToLower(filepath.Ext(filename))]
}

// Line tokenizes one source line into an ordered span sequence. If
// filename is empty or unsupported the whole line becomes a single plain
// span. An empty line yields a single empty plain span.
func Line(line, filename string) []Span {
	if filename == "" || !SupportedFile(filename) || line == "" {
		return []Span{{Text: line, Category: CategoryPlain}}
	}

	var all []match
	for _, p := range defaultPatterns {
		all = append(all, p.matches(line)...)
	}
	// Stable keeps declaration order as the tie-break for matches that
	// share a start position.
	sort.SliceStable(all, func(i, j int) bool { return all[i].start < all[j].start })

	// First-match-wins by position: keep a match only if it starts at or
	// after the end of the last kept match.
	kept := all[:0]
	end := 0
	for _, m := range all {
		if m.start >= end {
			kept = append(kept, m)
			end = m.end
		}
	}

	var spans []Span
	pos := 0
	for _, m := range kept {
		if m.start > pos {
			spans = append(spans, Span{Text: line[pos:m.start], Category: CategoryPlain})
		}
		spans = append(spans, Span{Text: line[m.start:m.end], Category: m.category})
		pos = m.end
	}
	if pos < len(line) {
		spans = append(spans, Span{Text: line[pos:], Category: CategoryPlain})
	}
	return spans
}
