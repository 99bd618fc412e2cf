package theme

import (
	"github.com/gdamore/tcell/v2"
)

// Colors holds all the color definitions for the theme
type Colors struct {
	Background tcell.Color

	// Diff pane colors
	FileHeader     tcell.Color
	HunkHeader     tcell.Color
	Addition       tcell.Color
	Deletion       tcell.Color
	ContextText    tcell.Color
	LineNumber     tcell.Color
	CollapsedLabel tcell.Color

	// Syntax highlight colors, one per tokenizer category
	SynString   tcell.Color
	SynNumber   tcell.Color
	SynKeyword  tcell.Color
	SynComment  tcell.Color
	SynProperty tcell.Color
	SynFunction tcell.Color
	SynOperator tcell.Color

	// File picker colors
	PickerFilename   tcell.Color
	PickerAdditions  tcell.Color
	PickerDeletions  tcell.Color
	PickerSelected   tcell.Color
	PickerSelectedBg tcell.Color
	PickerFilter     tcell.Color
	PickerCursor     tcell.Color

	// Help overlay colors
	HelpBackground tcell.Color
	HelpBorder     tcell.Color
	HelpTitle      tcell.Color
	HelpContent    tcell.Color

	// Header and status line colors
	HeaderTitle   tcell.Color
	StatusMode    tcell.Color
	StatusMessage tcell.Color
}

// Theme represents a complete color theme
type Theme struct {
	Name   string
	Colors Colors
}

// Default returns a theme built on the terminal's base ANSI palette,
// usable on any terminal without truecolor support
func Default() *Theme {
	return &Theme{
		Name: "default",
		Colors: Colors{
			Background:     tcell.ColorDefault,
			FileHeader:     tcell.ColorYellow,
			HunkHeader:     tcell.ColorAqua,
			Addition:       tcell.ColorGreen,
			Deletion:       tcell.ColorRed,
			ContextText:    tcell.ColorDefault,
			LineNumber:     tcell.ColorGray,
			CollapsedLabel: tcell.ColorGray,

			SynString:   tcell.ColorGreen,
			SynNumber:   tcell.ColorFuchsia,
			SynKeyword:  tcell.ColorPurple,
			SynComment:  tcell.ColorGray,
			SynProperty: tcell.ColorAqua,
			SynFunction: tcell.ColorBlue,
			SynOperator: tcell.ColorTeal,

			PickerFilename:   tcell.ColorDefault,
			PickerAdditions:  tcell.ColorGreen,
			PickerDeletions:  tcell.ColorRed,
			PickerSelected:   tcell.ColorBlack,
			PickerSelectedBg: tcell.ColorBlue,
			PickerFilter:     tcell.ColorFuchsia,
			PickerCursor:     tcell.ColorBlue,

			HelpBackground: tcell.ColorDefault,
			HelpBorder:     tcell.ColorAqua,
			HelpTitle:      tcell.ColorFuchsia,
			HelpContent:    tcell.ColorDefault,

			HeaderTitle:   tcell.ColorFuchsia,
			StatusMode:    tcell.ColorFuchsia,
			StatusMessage: tcell.ColorGreen,
		},
	}
}

// TokyoNight returns the Tokyo Night theme
func TokyoNight() *Theme {
	return &Theme{
		Name: "tokyo-night",
		Colors: Colors{
			// Tokyo Night palette
			Background:     HexToColor("#1a1b26"), // Dark background
			FileHeader:     HexToColor("#e0af68"), // Yellow
			HunkHeader:     HexToColor("#7dcfff"), // Cyan
			Addition:       HexToColor("#9ece6a"), // Green
			Deletion:       HexToColor("#f7768e"), // Red
			ContextText:    HexToColor("#c0caf5"), // Light gray-blue
			LineNumber:     HexToColor("#565f89"), // Comment gray
			CollapsedLabel: HexToColor("#565f89"), // Comment gray

			SynString:   HexToColor("#9ece6a"), // Green
			SynNumber:   HexToColor("#ff9e64"), // Orange
			SynKeyword:  HexToColor("#bb9af7"), // Magenta
			SynComment:  HexToColor("#565f89"), // Comment gray
			SynProperty: HexToColor("#7dcfff"), // Cyan
			SynFunction: HexToColor("#7aa2f7"), // Blue
			SynOperator: HexToColor("#89ddff"), // Light cyan

			PickerFilename:   HexToColor("#c0caf5"), // Light gray-blue
			PickerAdditions:  HexToColor("#9ece6a"), // Green
			PickerDeletions:  HexToColor("#f7768e"), // Red
			PickerSelected:   HexToColor("#c0caf5"), // Light gray-blue
			PickerSelectedBg: HexToColor("#283457"), // Selection blue
			PickerFilter:     HexToColor("#bb9af7"), // Magenta
			PickerCursor:     HexToColor("#7aa2f7"), // Blue

			HelpBackground: HexToColor("#1a1b26"), // Dark background
			HelpBorder:     HexToColor("#7dcfff"), // Cyan
			HelpTitle:      HexToColor("#bb9af7"), // Magenta
			HelpContent:    HexToColor("#c0caf5"), // Light gray-blue

			HeaderTitle:   HexToColor("#bb9af7"), // Magenta
			StatusMode:    HexToColor("#bb9af7"), // Magenta
			StatusMessage: HexToColor("#9ece6a"), // Green
		},
	}
}
