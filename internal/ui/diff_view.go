package ui

import (
	"fmt"
	"strings"

	"github.com/pstuifzand/tui-diffview/internal/diff"
	"github.com/pstuifzand/tui-diffview/internal/highlight"
)

// rowKind classifies one display row of the diff pane
type rowKind int

const (
	rowFileHeader rowKind = iota
	rowHunkHeader
	rowLine
	rowCollapsed
)

// row is one flattened display row. Blocks are flattened to rows so that
// scrolling and cursor movement work on a plain slice; toggling a
// collapsed region rebuilds the slice.
type row struct {
	kind     rowKind
	text     string    // header text or collapse label
	line     diff.Line // rowLine only
	blockIdx int       // index into blocks, for collapse toggling
}

// DiffViewWidget displays one file's parsed diff with syntax highlighting
// and collapsible unchanged regions
type DiffViewWidget struct {
	file     *diff.FileDiff
	blocks   []diff.Block
	expanded map[int]bool // block index -> collapsed region expanded
	rows     []row

	cursor       int
	scrollOffset int
	tabWidth     int
}

// NewDiffViewWidget creates a new diff view widget
func NewDiffViewWidget(tabWidth int) *DiffViewWidget {
	return &DiffViewWidget{
		expanded: make(map[int]bool),
		tabWidth: tabWidth,
	}
}

// SetFile switches the widget to a different file and re-parses its diff
// body. Collapse and scroll state reset; parsing is pure, so switching
// back and forth is safe.
func (dv *DiffViewWidget) SetFile(file *diff.FileDiff) {
	dv.file = file
	dv.blocks = nil
	if file != nil {
		dv.blocks = diff.ParseBlocks(file.Content)
	}
	dv.expanded = make(map[int]bool)
	dv.cursor = 0
	dv.scrollOffset = 0
	dv.rebuildRows()
}

// File returns the currently displayed file, or nil
func (dv *DiffViewWidget) File() *diff.FileDiff {
	return dv.file
}

// rebuildRows flattens blocks into display rows, honoring the expand
// state of collapsed regions.
func (dv *DiffViewWidget) rebuildRows() {
	dv.rows = dv.rows[:0]
	for i, b := range dv.blocks {
		switch b.Kind {
		case diff.BlockHeader:
			kind := rowHunkHeader
			if strings.HasPrefix(b.Text, "diff --git") {
				kind = rowFileHeader
			}
			dv.rows = append(dv.rows, row{kind: kind, text: b.Text, blockIdx: i})
		case diff.BlockHunk:
			for _, l := range b.Lines {
				dv.rows = append(dv.rows, row{kind: rowLine, line: l, blockIdx: i})
			}
		case diff.BlockCollapsed:
			marker := "▸"
			if dv.expanded[i] {
				marker = "▾"
			}
			label := fmt.Sprintf("%s %s (%d-%d)", marker, b.Label, b.StartLine, b.EndLine)
			dv.rows = append(dv.rows, row{kind: rowCollapsed, text: label, blockIdx: i})
			if dv.expanded[i] {
				for _, l := range b.Lines {
					dv.rows = append(dv.rows, row{kind: rowLine, line: l, blockIdx: i})
				}
			}
		}
	}
	if dv.cursor >= len(dv.rows) {
		dv.cursor = len(dv.rows) - 1
	}
	if dv.cursor < 0 {
		dv.cursor = 0
	}
}

// RowCount returns the number of display rows
func (dv *DiffViewWidget) RowCount() int {
	return len(dv.rows)
}

// CursorUp moves the cursor up one row
func (dv *DiffViewWidget) CursorUp() {
	if dv.cursor > 0 {
		dv.cursor--
	}
}

// CursorDown moves the cursor down one row
func (dv *DiffViewWidget) CursorDown() {
	if dv.cursor < len(dv.rows)-1 {
		dv.cursor++
	}
}

// Page moves the cursor by delta rows, clamping to the row range
func (dv *DiffViewWidget) Page(delta int) {
	dv.cursor += delta
	if dv.cursor < 0 {
		dv.cursor = 0
	}
	if dv.cursor > len(dv.rows)-1 {
		dv.cursor = len(dv.rows) - 1
	}
}

// CursorHome moves to the first row
func (dv *DiffViewWidget) CursorHome() {
	dv.cursor = 0
}

// CursorEnd moves to the last row
func (dv *DiffViewWidget) CursorEnd() {
	if len(dv.rows) > 0 {
		dv.cursor = len(dv.rows) - 1
	}
}

// ToggleAtCursor expands or collapses the region under the cursor.
// Returns false if the cursor is not on a collapsed-region label.
func (dv *DiffViewWidget) ToggleAtCursor() bool {
	if dv.cursor < 0 || dv.cursor >= len(dv.rows) {
		return false
	}
	r := dv.rows[dv.cursor]
	if r.kind != rowCollapsed {
		return false
	}
	dv.expanded[r.blockIdx] = !dv.expanded[r.blockIdx]
	dv.rebuildRows()
	return true
}

// ensureVisible scrolls so the cursor stays inside the viewport
func (dv *DiffViewWidget) ensureVisible(height int) {
	if dv.cursor < dv.scrollOffset {
		dv.scrollOffset = dv.cursor
	}
	if dv.cursor >= dv.scrollOffset+height {
		dv.scrollOffset = dv.cursor - height + 1
	}
	if dv.scrollOffset < 0 {
		dv.scrollOffset = 0
	}
}

// Render draws the diff pane into the given rectangle
func (dv *DiffViewWidget) Render(screen *Screen, x, y, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	dv.ensureVisible(height)

	end := dv.scrollOffset + height
	if end > len(dv.rows) {
		end = len(dv.rows)
	}

	for i := dv.scrollOffset; i < end; i++ {
		rowY := y + (i - dv.scrollOffset)
		dv.renderRow(screen, x, rowY, width, dv.rows[i], i == dv.cursor)
	}

	// Scrollbar indicator
	if len(dv.rows) > height {
		barY := y + dv.scrollOffset*height/len(dv.rows)
		screen.SetCell(x+width-1, barY, '█', screen.LineNumberStyle())
	}
}

// gutterWidth is the width of the "old new marker" prefix on line rows:
// two 4-digit columns, separators, and the change marker.
const gutterWidth = 12

func (dv *DiffViewWidget) renderRow(screen *Screen, x, y, width int, r row, selected bool) {
	switch r.kind {
	case rowFileHeader:
		screen.DrawStringLimited(x, y, r.text, width, screen.FileHeaderStyle())
	case rowHunkHeader:
		screen.DrawStringLimited(x, y, r.text, width, screen.HunkHeaderStyle())
	case rowCollapsed:
		style := screen.CollapsedLabelStyle()
		if selected {
			style = style.Reverse(true)
		}
		screen.DrawStringLimited(x, y, r.text, width, style)
	case rowLine:
		dv.renderLine(screen, x, y, width, r.line, selected)
	}
}

func (dv *DiffViewWidget) renderLine(screen *Screen, x, y, width int, line diff.Line, selected bool) {
	marker := ' '
	base := screen.ContextStyle()
	switch line.Kind {
	case diff.LineAddition:
		marker = '+'
		base = screen.AdditionStyle()
	case diff.LineDeletion:
		marker = '-'
		base = screen.DeletionStyle()
	}

	gutter := fmt.Sprintf("%4s %4s %c ", lineNumber(line.OldLine), lineNumber(line.NewLine), marker)
	gutterStyle := screen.LineNumberStyle()
	if selected {
		gutterStyle = gutterStyle.Reverse(true)
	}
	screen.DrawString(x, y, gutter, gutterStyle)

	filename := ""
	if dv.file != nil {
		filename = dv.file.Filename
	}

	col := x + gutterWidth
	maxCol := x + width
	for _, span := range highlight.Line(line.Text, filename) {
		style := base
		if span.Category != highlight.CategoryPlain {
			style = screen.SyntaxStyle(span.Category)
		}
		text := strings.ReplaceAll(span.Text, "\t", strings.Repeat(" ", dv.tabWidth))
		for _, ch := range text {
			w := RuneWidth(ch)
			if col+w > maxCol {
				return
			}
			screen.SetCell(col, y, ch, style)
			col += w
		}
	}
}

func lineNumber(n int) string {
	if n == 0 {
		return ""
	}
	return fmt.Sprintf("%d", n)
}
