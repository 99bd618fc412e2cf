package diff

import (
	"log"
	"strings"
)

// ParseSummary splits a multi-file unified diff into per-file records.
// Empty input yields an empty summary, not an error. Segments without a
// recognizable filename are skipped; malformed diff text never aborts
// the parse.
func ParseSummary(raw string) Summary {
	var summary Summary
	if raw == "" {
		return summary
	}

	lines := strings.Split(raw, "\n")
	segStart := -1

	flush := func(end int) {
		if segStart < 0 {
			return
		}
		content := strings.Join(lines[segStart:end], "\n")
		filename := parseFilename(lines[segStart])
		if filename == "" {
			log.Printf("diff: skipping segment at line %d: no filename in %q", segStart+1, lines[segStart])
			return
		}
		additions, deletions := countChanges(lines[segStart:end])
		summary.Files = append(summary.Files, FileDiff{
			Filename:  filename,
			Additions: additions,
			Deletions: deletions,
			Content:   content,
		})
	}

	for i, line := range lines {
		if strings.HasPrefix(line, "diff --git ") {
			flush(i)
			segStart = i
		}
	}
	flush(len(lines))

	return summary
}

// parseFilename extracts the target path from a "diff --git a/<old> b/<new>"
// header. Renames use the target side. Returns "" if the header does not
// have the expected shape.
func parseFilename(header string) string {
	parts := strings.Fields(header)
	if len(parts) < 4 {
		return ""
	}
	target := parts[len(parts)-1]
	if strings.HasPrefix(target, "b/") {
		return strings.TrimPrefix(target, "b/")
	}
	// Some generators omit the b/ prefix; accept the path as-is
	return target
}

// countChanges counts addition and deletion lines in a file segment,
// excluding the +++/--- file markers.
func countChanges(lines []string) (additions, deletions int) {
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		case strings.HasPrefix(line, "+"):
			additions++
		case strings.HasPrefix(line, "-"):
			deletions++
		}
	}
	return additions, deletions
}
