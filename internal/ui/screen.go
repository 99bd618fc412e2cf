package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/pstuifzand/tui-diffview/internal/config"
	"github.com/pstuifzand/tui-diffview/internal/highlight"
	"github.com/pstuifzand/tui-diffview/internal/theme"
)

// Screen manages the tcell screen and rendering
type Screen struct {
	tcellScreen tcell.Screen
	width       int
	height      int
	Theme       *theme.Theme
}

// NewScreen creates a new Screen instance with the configured theme
func NewScreen() (*Screen, error) {
	cfg, err := config.Load()
	if err != nil {
		// If config fails to load, use Default as fallback
		return NewScreenWithTheme(theme.Default())
	}

	t := theme.LoadThemeOrDefault(cfg.Theme)
	return NewScreenWithTheme(t)
}

// NewScreenWithTheme creates a new Screen instance with a specific theme
func NewScreenWithTheme(t *theme.Theme) (*Screen, error) {
	tcellScreen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}

	if err := tcellScreen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}

	width, height := tcellScreen.Size()
	return &Screen{
		tcellScreen: tcellScreen,
		width:       width,
		height:      height,
		Theme:       t,
	}, nil
}

// Close closes the screen
func (s *Screen) Close() error {
	s.tcellScreen.Fini()
	return nil
}

// Clear clears the entire screen
func (s *Screen) Clear() {
	s.tcellScreen.Clear()
}

// SetCell sets a cell at the given position
func (s *Screen) SetCell(x, y int, r rune, style tcell.Style) {
	if x >= 0 && x < s.width && y >= 0 && y < s.height {
		s.tcellScreen.SetContent(x, y, r, nil, style)
	}
}

// DrawString draws a string at the given position with the given style
func (s *Screen) DrawString(x, y int, text string, style tcell.Style) {
	col := x
	for _, r := range text {
		s.SetCell(col, y, r, style)
		col += RuneWidth(r)
	}
}

// DrawStringLimited draws a string, truncating it if it exceeds maxWidth
// display columns
func (s *Screen) DrawStringLimited(x, y int, text string, maxWidth int, style tcell.Style) {
	if maxWidth <= 0 {
		return
	}
	s.DrawString(x, y, TruncateToWidth(text, maxWidth), style)
}

// PollEvent polls for the next event (key press, resize, etc.)
func (s *Screen) PollEvent() tcell.Event {
	return s.tcellScreen.PollEvent()
}

// Show shows the screen
func (s *Screen) Show() {
	s.tcellScreen.Show()
}

// Size returns the width and height of the screen
func (s *Screen) Size() (int, int) {
	w, h := s.tcellScreen.Size()
	s.width = w
	s.height = h
	return w, h
}

// GetWidth returns the width of the screen
func (s *Screen) GetWidth() int {
	s.width, _ = s.tcellScreen.Size()
	return s.width
}

// GetHeight returns the height of the screen
func (s *Screen) GetHeight() int {
	_, s.height = s.tcellScreen.Size()
	return s.height
}

// DefaultStyle returns the default terminal style
func DefaultStyle() tcell.Style {
	return tcell.StyleDefault
}

// StyleBold returns a bold style
func StyleBold() tcell.Style {
	return tcell.StyleDefault.Bold(true)
}

// Theme-aware style methods

// FileHeaderStyle returns the style for "diff --git" header lines
func (s *Screen) FileHeaderStyle() tcell.Style {
	return theme.ColorToStyle(s.Theme.Colors.FileHeader).Bold(true)
}

// HunkHeaderStyle returns the style for "@@ ... @@" header lines
func (s *Screen) HunkHeaderStyle() tcell.Style {
	return theme.ColorToStyle(s.Theme.Colors.HunkHeader)
}

// AdditionStyle returns the style for added lines
func (s *Screen) AdditionStyle() tcell.Style {
	return theme.ColorToStyle(s.Theme.Colors.Addition)
}

// DeletionStyle returns the style for deleted lines
func (s *Screen) DeletionStyle() tcell.Style {
	return theme.ColorToStyle(s.Theme.Colors.Deletion)
}

// ContextStyle returns the style for unchanged lines
func (s *Screen) ContextStyle() tcell.Style {
	return theme.ColorToStyle(s.Theme.Colors.ContextText)
}

// LineNumberStyle returns the style for the line-number gutter
func (s *Screen) LineNumberStyle() tcell.Style {
	return theme.ColorToStyle(s.Theme.Colors.LineNumber)
}

// CollapsedLabelStyle returns the style for collapsed-region labels
func (s *Screen) CollapsedLabelStyle() tcell.Style {
	return theme.ColorToStyle(s.Theme.Colors.CollapsedLabel).Italic(true)
}

// SyntaxStyle returns the style for a tokenizer category. The plain
// category falls back to the normal context text color.
func (s *Screen) SyntaxStyle(cat highlight.Category) tcell.Style {
	c := s.Theme.Colors
	switch cat {
	case highlight.CategoryString:
		return theme.ColorToStyle(c.SynString)
	case highlight.CategoryNumber:
		return theme.ColorToStyle(c.SynNumber)
	case highlight.CategoryKeyword:
		return theme.ColorToStyle(c.SynKeyword)
	case highlight.CategoryComment:
		return theme.ColorToStyle(c.SynComment)
	case highlight.CategoryProperty:
		return theme.ColorToStyle(c.SynProperty)
	case highlight.CategoryFunction:
		return theme.ColorToStyle(c.SynFunction)
	case highlight.CategoryOperator:
		return theme.ColorToStyle(c.SynOperator)
	default:
		return theme.ColorToStyle(c.ContextText)
	}
}

// PickerFilenameStyle returns the style for file picker entries
func (s *Screen) PickerFilenameStyle() tcell.Style {
	return theme.ColorToStyle(s.Theme.Colors.PickerFilename)
}

// PickerSelectedStyle returns the style for the selected picker entry
func (s *Screen) PickerSelectedStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.PickerSelected, s.Theme.Colors.PickerSelectedBg).Bold(true)
}

// PickerAdditionsStyle returns the style for the +N counter
func (s *Screen) PickerAdditionsStyle() tcell.Style {
	return theme.ColorToStyle(s.Theme.Colors.PickerAdditions)
}

// PickerDeletionsStyle returns the style for the -N counter
func (s *Screen) PickerDeletionsStyle() tcell.Style {
	return theme.ColorToStyle(s.Theme.Colors.PickerDeletions)
}

// PickerFilterStyle returns the style for the filter query line
func (s *Screen) PickerFilterStyle() tcell.Style {
	return theme.ColorToStyle(s.Theme.Colors.PickerFilter)
}

// PickerCursorStyle returns the style for the filter cursor
func (s *Screen) PickerCursorStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.Background, s.Theme.Colors.PickerCursor)
}

// HelpStyle returns the style for help content
func (s *Screen) HelpStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.HelpContent, s.Theme.Colors.HelpBackground)
}

// HelpBorderStyle returns the style for help borders
func (s *Screen) HelpBorderStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.HelpBorder, s.Theme.Colors.HelpBackground)
}

// HelpTitleStyle returns the style for the help title
func (s *Screen) HelpTitleStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.HelpTitle, s.Theme.Colors.HelpBackground).Bold(true)
}

// HeaderStyle returns the style for the application header
func (s *Screen) HeaderStyle() tcell.Style {
	return theme.ColorToStyle(s.Theme.Colors.HeaderTitle).Bold(true)
}

// StatusModeStyle returns the style for the status mode indicator
func (s *Screen) StatusModeStyle() tcell.Style {
	return theme.ColorToStyle(s.Theme.Colors.StatusMode).Bold(true)
}

// StatusMessageStyle returns the style for status messages
func (s *Screen) StatusMessageStyle() tcell.Style {
	return theme.ColorToStyle(s.Theme.Colors.StatusMessage)
}
