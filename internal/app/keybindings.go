package app

import (
	"github.com/pstuifzand/tui-diffview/internal/ui"
)

// KeyBinding represents a key binding with its description and handler
type KeyBinding struct {
	Key         rune
	Description string
	Handler     func(*App)
}

// GetKey returns the key of this keybinding
func (kb *KeyBinding) GetKey() rune {
	return kb.Key
}

// GetDescription returns the description of this keybinding
func (kb *KeyBinding) GetDescription() string {
	return kb.Description
}

// keyBindingOrder fixes the order bindings appear in the help overlay
var keyBindingOrder = []rune{'j', 'k', 'J', 'K', 'g', 'G', '/', '?', 'q'}

var keyBindings = map[rune]*KeyBinding{
	'j': {Key: 'j', Description: "Move cursor down", Handler: func(a *App) { a.diffView.CursorDown() }},
	'k': {Key: 'k', Description: "Move cursor up", Handler: func(a *App) { a.diffView.CursorUp() }},
	'J': {Key: 'J', Description: "Next file", Handler: func(a *App) { a.nextFile() }},
	'K': {Key: 'K', Description: "Previous file", Handler: func(a *App) { a.prevFile() }},
	'g': {Key: 'g', Description: "Go to first line", Handler: func(a *App) { a.diffView.CursorHome() }},
	'G': {Key: 'G', Description: "Go to last line", Handler: func(a *App) { a.diffView.CursorEnd() }},
	'/': {Key: '/', Description: "Open file picker", Handler: func(a *App) { a.picker.Show() }},
	'?': {Key: '?', Description: "Toggle help", Handler: func(a *App) { a.help.Toggle() }},
	'q': {Key: 'q', Description: "Quit", Handler: func(a *App) { a.quit = true }},
}

// keyBindingInfos returns the bindings in display order for the help screen
func keyBindingInfos() []ui.KeyBindingInfo {
	infos := make([]ui.KeyBindingInfo, 0, len(keyBindingOrder))
	for _, key := range keyBindingOrder {
		if kb, ok := keyBindings[key]; ok {
			infos = append(infos, kb)
		}
	}
	return infos
}
