package app

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pstuifzand/tui-diffview/internal/config"
	"github.com/pstuifzand/tui-diffview/internal/diff"
	"github.com/pstuifzand/tui-diffview/internal/ui"
)

// App is the main application controller
type App struct {
	screen   *ui.Screen
	cfg      *config.Config
	summary  diff.Summary
	source   string // display label for where the diff came from
	diffView *ui.DiffViewWidget
	picker   *ui.FilePickerWidget
	help     *ui.HelpScreen

	fileIdx    int
	statusMsg  string
	statusTime time.Time
	quit       bool
	debugMode  bool
}

// NewApp creates a new App instance for the given diff text. source is a
// label for the header line (a filename, or "stdin").
func NewApp(diffText, source string) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}

	summary := diff.ParseSummary(diffText)

	diffView := ui.NewDiffViewWidget(cfg.TabWidth())
	picker := ui.NewFilePickerWidget()
	picker.SetFiles(summary.Files)
	help := ui.NewHelpScreen()

	a := &App{
		screen:     screen,
		cfg:        cfg,
		summary:    summary,
		source:     source,
		diffView:   diffView,
		picker:     picker,
		help:       help,
		statusMsg:  "Ready",
		statusTime: time.Now(),
	}

	picker.SetOnSelect(a.selectFile)
	help.SetKeybindings(keyBindingInfos())

	if len(summary.Files) > 0 {
		a.selectFile(0)
	}

	return a, nil
}

// SetDebugMode enables debug mode (shows key events in the status line)
func (a *App) SetDebugMode(debug bool) {
	a.debugMode = debug
}

// FileCount returns the number of files in the loaded diff
func (a *App) FileCount() int {
	return len(a.summary.Files)
}

// Run starts the main event loop
func (a *App) Run() error {
	defer a.Close()

	eventChan := make(chan tcell.Event)

	// Event polling goroutine
	go func() {
		for {
			event := a.screen.PollEvent()
			eventChan <- event
			if event == nil {
				break
			}
		}
	}()

	// Render ticker, ~20 FPS
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for !a.quit {
		select {
		case ev := <-eventChan:
			if ev != nil {
				a.handleRawEvent(ev)
			}
		case <-ticker.C:
			a.render()
		}
	}

	return nil
}

// Close closes the application
func (a *App) Close() error {
	if a.screen != nil {
		return a.screen.Close()
	}
	return nil
}

// SetStatus sets the status line message
func (a *App) SetStatus(msg string) {
	a.statusMsg = msg
	a.statusTime = time.Now()
}

// selectFile switches the diff pane to the file at idx
func (a *App) selectFile(idx int) {
	if idx < 0 || idx >= len(a.summary.Files) {
		return
	}
	a.fileIdx = idx
	f := &a.summary.Files[idx]
	a.diffView.SetFile(f)
	a.SetStatus(fmt.Sprintf("%s +%d -%d", f.Filename, f.Additions, f.Deletions))
}

func (a *App) nextFile() {
	if a.fileIdx < len(a.summary.Files)-1 {
		a.selectFile(a.fileIdx + 1)
	}
}

func (a *App) prevFile() {
	if a.fileIdx > 0 {
		a.selectFile(a.fileIdx - 1)
	}
}

// handleRawEvent dispatches a tcell event
func (a *App) handleRawEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Size()
	case *tcell.EventKey:
		a.handleKeyEvent(ev)
	}
}

// handleKeyEvent routes a key press to the active widget
func (a *App) handleKeyEvent(ev *tcell.EventKey) {
	if a.debugMode {
		a.SetStatus(fmt.Sprintf("key: %s", ev.Name()))
	}

	if a.picker.IsVisible() {
		a.picker.HandleKeyEvent(ev)
		return
	}

	if a.help.IsVisible() {
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Rune() == '?', ev.Rune() == 'q':
			a.help.Toggle()
		}
		return
	}

	height := a.screen.GetHeight()

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		a.quit = true
		return
	case tcell.KeyUp:
		a.diffView.CursorUp()
		return
	case tcell.KeyDown:
		a.diffView.CursorDown()
		return
	case tcell.KeyPgUp, tcell.KeyCtrlU:
		a.diffView.Page(-(height / 2))
		return
	case tcell.KeyPgDn, tcell.KeyCtrlD:
		a.diffView.Page(height / 2)
		return
	case tcell.KeyHome:
		a.diffView.CursorHome()
		return
	case tcell.KeyEnd:
		a.diffView.CursorEnd()
		return
	case tcell.KeyTab:
		a.nextFile()
		return
	case tcell.KeyBacktab:
		a.prevFile()
		return
	case tcell.KeyEnter:
		if !a.diffView.ToggleAtCursor() {
			a.SetStatus("Nothing to expand here")
		}
		return
	}

	if ev.Key() == tcell.KeyRune {
		if kb, ok := keyBindings[ev.Rune()]; ok {
			kb.Handler(a)
		}
	}
}

// render renders the current state to the screen
func (a *App) render() {
	a.screen.Clear()

	width, height := a.screen.Size()

	// Header line
	header := fmt.Sprintf(" %s ", a.source)
	if len(a.summary.Files) > 0 {
		f := a.summary.Files[a.fileIdx]
		header = fmt.Sprintf(" %s — %s (%d/%d) ", a.source, f.Filename, a.fileIdx+1, len(a.summary.Files))
	}
	a.screen.DrawStringLimited(0, 0, header, width, a.screen.HeaderStyle())

	if len(a.summary.Files) == 0 {
		a.screen.DrawString(2, 2, "No changes in input.", a.screen.ContextStyle())
	} else {
		a.diffView.Render(a.screen, 0, 1, width, height-2)
	}

	// Status line
	status := a.statusMsg
	if time.Since(a.statusTime) > 5*time.Second {
		status = ""
	}
	a.screen.DrawStringLimited(0, height-1, " "+status, width-20, a.screen.StatusMessageStyle())
	position := fmt.Sprintf("%d rows ", a.diffView.RowCount())
	a.screen.DrawString(width-len(position)-1, height-1, position, a.screen.StatusModeStyle())

	a.picker.Render(a.screen)
	a.help.Render(a.screen)

	a.screen.Show()
}
