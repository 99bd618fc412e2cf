package diff

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// contextWindow is the number of unchanged lines kept around a change
// run, matching conventional diff display.
const contextWindow = 3

// collapseMin is the smallest number of hidden lines worth a collapsed
// region. Shorter gaps are shown as-is; collapsing them would be noisier
// than just displaying them.
const collapseMin = 6

var hunkHeaderRe = regexp.MustCompile(`^@@ -(\d+)(?:,\d+)? \+(\d+)(?:,\d+)? @@`)

// blockParser is the state carried across one pass over a file's diff
// body. It is folded over the input lines one at a time; all output
// accumulates in blocks.
type blockParser struct {
	blocks []Block

	inHunk     bool
	oldLine    int
	newLine    int
	contextBuf []Line // unchanged lines not yet assigned to a hunk
	hunk       []Line // lines of the change hunk being built
	hunkIndex  int
}

// ParseBlocks converts one file's raw diff body into an ordered sequence
// of display blocks: headers, change hunks bounded by up to 3 lines of
// context, and collapsed regions for long unchanged runs. The parse is
// pure and idempotent; malformed content degrades to best-effort output
// and never panics.
func ParseBlocks(content string) []Block {
	p := &blockParser{}

	// A trailing newline is a line terminator, not an extra empty line.
	for _, raw := range strings.Split(strings.TrimSuffix(content, "\n"), "\n") {
		p.step(raw)
	}
	p.finish()

	return p.blocks
}

// step processes a single physical line.
func (p *blockParser) step(raw string) {
	switch {
	case strings.HasPrefix(raw, "diff --git"):
		p.flushHunk(false)
		p.collapseBuffered()
		p.contextBuf = nil
		p.blocks = append(p.blocks, Block{Kind: BlockHeader, Text: raw})
		p.inHunk = false

	case strings.HasPrefix(raw, "@@"):
		p.flushHunk(false)
		p.collapseBuffered()
		p.contextBuf = nil
		if m := hunkHeaderRe.FindStringSubmatch(raw); m != nil {
			p.oldLine, _ = strconv.Atoi(m[1])
			p.newLine, _ = strconv.Atoi(m[2])
		}
		// A header that fails to match keeps the previous counters;
		// non-standard hunk headers degrade to possibly-wrong line
		// numbers instead of aborting the parse.
		p.blocks = append(p.blocks, Block{Kind: BlockHeader, Text: raw})
		p.inHunk = true

	case strings.HasPrefix(raw, "+") && !strings.HasPrefix(raw, "+++"):
		line := Line{Kind: LineAddition, Text: raw[1:], NewLine: p.newLine}
		p.newLine++
		p.takeLeadingContext()
		p.hunk = append(p.hunk, line)
		p.inHunk = true

	case strings.HasPrefix(raw, "-") && !strings.HasPrefix(raw, "---"):
		line := Line{Kind: LineDeletion, Text: raw[1:], OldLine: p.oldLine}
		p.oldLine++
		p.takeLeadingContext()
		p.hunk = append(p.hunk, line)
		p.inHunk = true

	case strings.HasPrefix(raw, `\`):
		// "\ No newline at end of file": no line, no counter movement.

	default:
		text := raw
		if strings.HasPrefix(text, " ") {
			text = text[1:]
		}
		line := Line{Kind: LineContext, Text: text, OldLine: p.oldLine, NewLine: p.newLine}
		p.oldLine++
		p.newLine++
		if p.inHunk && hunkHasChange(p.hunk) {
			// Trailing or intermediate context of an active change run.
			p.hunk = append(p.hunk, line)
		} else {
			// Not inside a change run yet: hold the line so it can
			// serve as leading context for the next run, or be
			// collapsed when the run of unchanged lines ends.
			p.contextBuf = append(p.contextBuf, line)
		}
	}
}

// takeLeadingContext moves the last contextWindow buffered lines into the
// current hunk as leading context, collapsing the rest of the buffer if
// the unchanged run was long enough.
func (p *blockParser) takeLeadingContext() {
	if len(p.contextBuf) == 0 {
		return
	}
	p.collapseBuffered()
	keep := len(p.contextBuf)
	if keep > contextWindow {
		keep = contextWindow
	}
	p.hunk = append(p.hunk, p.contextBuf[len(p.contextBuf)-keep:]...)
	p.contextBuf = nil
}

// collapseBuffered emits a collapsed region covering all but the trailing
// contextWindow buffered lines, provided the hidden span is longer than
// collapseMin-1 lines. The trailing window stays in the buffer.
func (p *blockParser) collapseBuffered() {
	hidden := len(p.contextBuf) - contextWindow
	if hidden <= collapseMin-1 {
		return
	}
	span := p.contextBuf[:hidden]
	p.blocks = append(p.blocks, Block{
		Kind:      BlockCollapsed,
		Lines:     span,
		StartLine: span[0].OldLine,
		EndLine:   span[len(span)-1].OldLine,
		Label:     fmt.Sprintf("%d unchanged lines", hidden),
	})
	p.contextBuf = p.contextBuf[hidden:]
}

// flushHunk emits the pending change hunk, if any. At end of input the
// hunk is trimmed by up to contextWindow trailing context lines so it
// does not end with excess unchanged lines.
func (p *blockParser) flushHunk(trimTrailing bool) {
	if len(p.hunk) == 0 {
		return
	}
	lines := p.hunk
	if trimTrailing {
		trim := trailingContext(lines)
		if trim > contextWindow {
			trim = contextWindow
		}
		lines = lines[:len(lines)-trim]
	}
	if len(lines) > 0 {
		p.blocks = append(p.blocks, Block{Kind: BlockHunk, Lines: lines, Index: p.hunkIndex})
		p.hunkIndex++
	}
	p.hunk = nil
}

// finish flushes state at end of input.
func (p *blockParser) finish() {
	p.flushHunk(true)
}

func hunkHasChange(lines []Line) bool {
	for _, l := range lines {
		if l.Kind != LineContext {
			return true
		}
	}
	return false
}

func trailingContext(lines []Line) int {
	n := 0
	for i := len(lines) - 1; i >= 0; i-- {
		if lines[i].Kind != LineContext {
			break
		}
		n++
	}
	return n
}
