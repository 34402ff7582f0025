// Package tray provides a system tray interface for the SignSpeak
// sign-language recognition service.
package tray

import (
	"sync"

	"github.com/getlantern/systray"
)

// Tray represents the system tray application.
type Tray struct {
	onToggleTTS func(enabled bool)
	onOpenUI    func()
	onQuit      func()
	ttsEnabled  bool
	mu          sync.RWMutex

	// Menu items stored for later updates
	menuTTS      *systray.MenuItem
	menuLastWord *systray.MenuItem
}

// New creates a Tray with the given initial speech state.
func New(ttsEnabled bool) *Tray {
	return &Tray{
		ttsEnabled: ttsEnabled,
	}
}

// OnToggleTTS sets the callback called when speech output is toggled.
func (t *Tray) OnToggleTTS(fn func(enabled bool)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onToggleTTS = fn
}

// OnOpenUI sets the callback called when the web UI menu item is clicked.
func (t *Tray) OnOpenUI(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onOpenUI = fn
}

// OnQuit sets the callback called when the quit menu item is clicked.
func (t *Tray) OnQuit(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onQuit = fn
}

// Run starts the system tray application.
// This function blocks until systray.Quit() is called.
func (t *Tray) Run() {
	systray.Run(t.onReady, t.onExit)
}

// onReady is called when the system tray is ready.
// It sets up the menu structure.
func (t *Tray) onReady() {
	systray.SetTitle("SignSpeak")
	systray.SetTooltip("SignSpeak Sign Language Recognition")

	t.menuTTS = systray.AddMenuItem(t.ttsTitle(), "Toggle speech output")
	systray.AddSeparator()

	t.menuLastWord = systray.AddMenuItem("Last: none", "Last recognized word")
	t.menuLastWord.Disable()
	systray.AddSeparator()

	menuOpenUI := systray.AddMenuItem("Open Web UI...", "Open the web interface in a browser")
	systray.AddSeparator()

	menuQuit := systray.AddMenuItem("Quit", "Quit SignSpeak")

	// Handle menu item clicks in a separate goroutine
	go func() {
		for {
			select {
			case <-t.menuTTS.ClickedCh:
				t.handleToggleTTS()
			case <-menuOpenUI.ClickedCh:
				t.handleOpenUI()
			case <-menuQuit.ClickedCh:
				t.handleQuit()
				return
			}
		}
	}()
}

// onExit is called when the system tray is about to exit.
func (t *Tray) onExit() {
	// Cleanup resources if needed
}

func (t *Tray) ttsTitle() string {
	if t.ttsEnabled {
		return "● Speech On"
	}
	return "○ Speech Off"
}

// handleToggleTTS handles the speech toggle menu item click.
func (t *Tray) handleToggleTTS() {
	t.mu.Lock()
	t.ttsEnabled = !t.ttsEnabled
	enabled := t.ttsEnabled
	t.menuTTS.SetTitle(t.ttsTitle())
	callback := t.onToggleTTS
	t.mu.Unlock()

	// Call the callback outside the lock to prevent deadlocks
	if callback != nil {
		callback(enabled)
	}
}

// handleOpenUI handles the web UI menu item click.
func (t *Tray) handleOpenUI() {
	t.mu.RLock()
	callback := t.onOpenUI
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}
}

// handleQuit handles the quit menu item click.
func (t *Tray) handleQuit() {
	t.mu.RLock()
	callback := t.onQuit
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}

	systray.Quit()
}

// SetTTSEnabled updates the menu to reflect a toggle made elsewhere,
// for example through the HTTP API.
func (t *Tray) SetTTSEnabled(enabled bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.ttsEnabled = enabled
	if t.menuTTS != nil {
		t.menuTTS.SetTitle(t.ttsTitle())
	}
}

// SetLastWord updates the last recognized word shown in the menu.
func (t *Tray) SetLastWord(word string) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.menuLastWord == nil {
		return
	}
	if word == "" {
		t.menuLastWord.SetTitle("Last: none")
	} else {
		t.menuLastWord.SetTitle("Last: " + word)
	}
}

// TTSEnabled returns the current speech output state.
func (t *Tray) TTSEnabled() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.ttsEnabled
}
