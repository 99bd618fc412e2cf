package ui

import (
	"fmt"
	"sort"

	"github.com/gdamore/tcell/v2"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/pstuifzand/tui-diffview/internal/diff"
)

// FilePickerWidget shows the changed files of a diff with their +/- line
// counts and a fuzzy filter, and lets the user jump to one of them.
type FilePickerWidget struct {
	visible     bool
	files       []diff.FileDiff
	query       string
	matches     []int // indices into files
	selectedIdx int
	onSelect    func(fileIdx int)
}

// NewFilePickerWidget creates a new file picker widget
func NewFilePickerWidget() *FilePickerWidget {
	return &FilePickerWidget{}
}

// SetFiles sets the file list to pick from
func (w *FilePickerWidget) SetFiles(files []diff.FileDiff) {
	w.files = files
	w.updateMatches()
}

// SetOnSelect sets the selection callback
func (w *FilePickerWidget) SetOnSelect(onSelect func(fileIdx int)) {
	w.onSelect = onSelect
}

// Show opens the picker with an empty filter
func (w *FilePickerWidget) Show() {
	w.visible = true
	w.query = ""
	w.selectedIdx = 0
	w.updateMatches()
}

// Hide closes the picker
func (w *FilePickerWidget) Hide() {
	w.visible = false
}

// IsVisible returns whether the picker is currently visible
func (w *FilePickerWidget) IsVisible() bool {
	return w.visible
}

// updateMatches recomputes the filtered file list. An empty query shows
// every file in diff order; otherwise filenames are fuzzy-matched and
// ordered by match quality.
func (w *FilePickerWidget) updateMatches() {
	w.matches = w.matches[:0]
	w.selectedIdx = 0

	if w.query == "" {
		for i := range w.files {
			w.matches = append(w.matches, i)
		}
		return
	}

	names := make([]string, len(w.files))
	for i, f := range w.files {
		names[i] = f.Filename
	}

	ranks := fuzzy.RankFindNormalizedFold(w.query, names)
	sort.Sort(ranks)
	for _, r := range ranks {
		w.matches = append(w.matches, r.OriginalIndex)
	}
}

// HandleKeyEvent processes keyboard input while the picker is open
func (w *FilePickerWidget) HandleKeyEvent(ev *tcell.EventKey) {
	if !w.visible {
		return
	}

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		w.Hide()
	case tcell.KeyEnter:
		if w.selectedIdx < len(w.matches) {
			idx := w.matches[w.selectedIdx]
			w.Hide()
			if w.onSelect != nil {
				w.onSelect(idx)
			}
		}
	case tcell.KeyUp, tcell.KeyCtrlK:
		if w.selectedIdx > 0 {
			w.selectedIdx--
		}
	case tcell.KeyDown, tcell.KeyCtrlJ:
		if w.selectedIdx < len(w.matches)-1 {
			w.selectedIdx++
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(w.query) > 0 {
			w.query = w.query[:len(w.query)-1]
			w.updateMatches()
		}
	case tcell.KeyRune:
		w.query += string(ev.Rune())
		w.updateMatches()
	}
}

// Render draws the picker overlay
func (w *FilePickerWidget) Render(screen *Screen) {
	if !w.visible {
		return
	}

	width := screen.GetWidth()
	height := screen.GetHeight()

	boxWidth := width * 2 / 3
	if boxWidth < 30 {
		boxWidth = width - 4
	}
	boxHeight := height - 6
	if boxWidth < 20 || boxHeight < 5 {
		return // Too small to render
	}
	startX := (width - boxWidth) / 2
	startY := 3

	drawBox(screen, startX, startY, boxWidth, boxHeight, screen.HelpBorderStyle())

	// Filter line
	prompt := "> " + w.query
	screen.DrawStringLimited(startX+2, startY+1, prompt, boxWidth-4, screen.PickerFilterStyle())
	cursorX := startX + 2 + StringWidth(prompt)
	if cursorX < startX+boxWidth-2 {
		screen.SetCell(cursorX, startY+1, ' ', screen.PickerCursorStyle())
	}

	count := fmt.Sprintf("%d/%d", len(w.matches), len(w.files))
	screen.DrawString(startX+boxWidth-2-StringWidth(count), startY+1, count, screen.LineNumberStyle())

	// File list
	listY := startY + 3
	listHeight := boxHeight - 4
	for i := 0; i < listHeight && i < len(w.matches); i++ {
		f := w.files[w.matches[i]]
		y := listY + i

		nameStyle := screen.PickerFilenameStyle()
		if i == w.selectedIdx {
			nameStyle = screen.PickerSelectedStyle()
		}

		counts := fmt.Sprintf("+%d -%d", f.Additions, f.Deletions)
		nameWidth := boxWidth - 4 - StringWidth(counts) - 1
		name := PadStringToWidth(TruncateToWidthWithEllipsis(f.Filename, nameWidth), nameWidth)
		screen.DrawString(startX+2, y, name, nameStyle)

		plus := fmt.Sprintf("+%d", f.Additions)
		screen.DrawString(startX+2+nameWidth+1, y, plus, screen.PickerAdditionsStyle())
		screen.DrawString(startX+2+nameWidth+1+StringWidth(plus)+1, y,
			fmt.Sprintf("-%d", f.Deletions), screen.PickerDeletionsStyle())
	}
}

// drawBox draws a simple box border
func drawBox(screen *Screen, x, y, width, height int, style tcell.Style) {
	screen.SetCell(x, y, '┌', style)
	for i := 1; i < width-1; i++ {
		screen.SetCell(x+i, y, '─', style)
	}
	screen.SetCell(x+width-1, y, '┐', style)

	screen.SetCell(x, y+height-1, '└', style)
	for i := 1; i < width-1; i++ {
		screen.SetCell(x+i, y+height-1, '─', style)
	}
	screen.SetCell(x+width-1, y+height-1, '┘', style)

	for i := 1; i < height-1; i++ {
		screen.SetCell(x, y+i, '│', style)
		screen.SetCell(x+width-1, y+i, '│', style)
	}
}
