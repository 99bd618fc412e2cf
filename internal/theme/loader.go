package theme

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/pelletier/go-toml/v2"
)

// ThemeConfig represents the raw TOML theme configuration
type ThemeConfig struct {
	Name   string `toml:"name"`
	Colors struct {
		Background     string `toml:"background"`
		FileHeader     string `toml:"file_header"`
		HunkHeader     string `toml:"hunk_header"`
		Addition       string `toml:"addition"`
		Deletion       string `toml:"deletion"`
		ContextText    string `toml:"context_text"`
		LineNumber     string `toml:"line_number"`
		CollapsedLabel string `toml:"collapsed_label"`

		SynString   string `toml:"syn_string"`
		SynNumber   string `toml:"syn_number"`
		SynKeyword  string `toml:"syn_keyword"`
		SynComment  string `toml:"syn_comment"`
		SynProperty string `toml:"syn_property"`
		SynFunction string `toml:"syn_function"`
		SynOperator string `toml:"syn_operator"`

		PickerFilename   string `toml:"picker_filename"`
		PickerAdditions  string `toml:"picker_additions"`
		PickerDeletions  string `toml:"picker_deletions"`
		PickerSelected   string `toml:"picker_selected"`
		PickerSelectedBg string `toml:"picker_selected_bg"`
		PickerFilter     string `toml:"picker_filter"`
		PickerCursor     string `toml:"picker_cursor"`

		HelpBackground string `toml:"help_background"`
		HelpBorder     string `toml:"help_border"`
		HelpTitle      string `toml:"help_title"`
		HelpContent    string `toml:"help_content"`

		HeaderTitle   string `toml:"header_title"`
		StatusMode    string `toml:"status_mode"`
		StatusMessage string `toml:"status_message"`
	} `toml:"colors"`
}

// getThemePaths returns the search paths for theme files
func getThemePaths() []string {
	paths := []string{}

	// User config directory
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "tui-diffview", "themes"))
	}

	// User local share directory
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".local", "share", "tui-diffview", "themes"))
	}

	return paths
}

// findThemeFile searches for a theme file in standard locations
func findThemeFile(themeName string) (string, error) {
	filename := themeName + ".toml"

	for _, dir := range getThemePaths() {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("theme file not found: %s", filename)
}

// LoadThemeFromFile loads a theme from a TOML file
func LoadThemeFromFile(filePath string) (*Theme, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	var config ThemeConfig
	err = toml.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse theme file: %w", err)
	}

	return configToTheme(config), nil
}

// LoadTheme loads a theme by name, searching standard theme directories
func LoadTheme(themeName string) (*Theme, error) {
	filePath, err := findThemeFile(themeName)
	if err != nil {
		return nil, err
	}

	return LoadThemeFromFile(filePath)
}

// configToTheme converts a ThemeConfig to a Theme, with fallback to Tokyo Night
// for missing colors
func configToTheme(config ThemeConfig) *Theme {
	t := TokyoNight()
	c := config.Colors

	override := func(dst *tcell.Color, value string) {
		if value != "" {
			*dst = ParseColorString(value)
		}
	}

	override(&t.Colors.Background, c.Background)
	override(&t.Colors.FileHeader, c.FileHeader)
	override(&t.Colors.HunkHeader, c.HunkHeader)
	override(&t.Colors.Addition, c.Addition)
	override(&t.Colors.Deletion, c.Deletion)
	override(&t.Colors.ContextText, c.ContextText)
	override(&t.Colors.LineNumber, c.LineNumber)
	override(&t.Colors.CollapsedLabel, c.CollapsedLabel)
	override(&t.Colors.SynString, c.SynString)
	override(&t.Colors.SynNumber, c.SynNumber)
	override(&t.Colors.SynKeyword, c.SynKeyword)
	override(&t.Colors.SynComment, c.SynComment)
	override(&t.Colors.SynProperty, c.SynProperty)
	override(&t.Colors.SynFunction, c.SynFunction)
	override(&t.Colors.SynOperator, c.SynOperator)
	override(&t.Colors.PickerFilename, c.PickerFilename)
	override(&t.Colors.PickerAdditions, c.PickerAdditions)
	override(&t.Colors.PickerDeletions, c.PickerDeletions)
	override(&t.Colors.PickerSelected, c.PickerSelected)
	override(&t.Colors.PickerSelectedBg, c.PickerSelectedBg)
	override(&t.Colors.PickerFilter, c.PickerFilter)
	override(&t.Colors.PickerCursor, c.PickerCursor)
	override(&t.Colors.HelpBackground, c.HelpBackground)
	override(&t.Colors.HelpBorder, c.HelpBorder)
	override(&t.Colors.HelpTitle, c.HelpTitle)
	override(&t.Colors.HelpContent, c.HelpContent)
	override(&t.Colors.HeaderTitle, c.HeaderTitle)
	override(&t.Colors.StatusMode, c.StatusMode)
	override(&t.Colors.StatusMessage, c.StatusMessage)

	if config.Name != "" {
		t.Name = config.Name
	}

	return t
}

// LoadThemeOrDefault loads a theme by name, or returns Tokyo Night if not found
func LoadThemeOrDefault(themeName string) *Theme {
	if themeName == "default" {
		return Default()
	}

	theme, err := LoadTheme(themeName)
	if err != nil {
		// Fall back to Tokyo Night
		return TokyoNight()
	}

	return theme
}
