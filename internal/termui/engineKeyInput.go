package termui

import (
	"strings"
	"time"

	"github.com/chiselstrike/termtris/internal/settings"
	"github.com/chiselstrike/termtris/internal/tetris"
	"github.com/gdamore/tcell"
)

// KeyState tracks which keys count as held. Terminals only report presses and
// auto repeats, so a key is held while its last event is recent enough.
type KeyState struct {
	window      time.Duration
	lastPress   map[string]time.Time
	justPressed map[string]bool
}

func NewKeyState(window time.Duration) *KeyState {
	return &KeyState{
		window:      window,
		lastPress:   make(map[string]time.Time),
		justPressed: make(map[string]bool),
	}
}

// Update starts a new frame with the key events received since the last one
func (keys *KeyState) Update(events []string, now time.Time) {
	for name := range keys.justPressed {
		delete(keys.justPressed, name)
	}
	for _, name := range events {
		if _, held := keys.lastPress[name]; !held {
			keys.justPressed[name] = true
		}
		keys.lastPress[name] = now
	}
	for name, last := range keys.lastPress {
		if now.Sub(last) >= keys.window {
			delete(keys.lastPress, name)
		}
	}
}

// Held reports whether the key is down
func (keys *KeyState) Held(name string) bool {
	_, ok := keys.lastPress[name]
	return ok
}

// JustPressed reports whether the key went down this frame
func (keys *KeyState) JustPressed(name string) bool {
	return keys.justPressed[name]
}

func (keys *KeyState) anyHeld(names []string) bool {
	for _, name := range names {
		if keys.Held(name) {
			return true
		}
	}
	return false
}

func (keys *KeyState) anyJustPressed(names []string) bool {
	for _, name := range names {
		if keys.JustPressed(name) {
			return true
		}
	}
	return false
}

// Controls are the inputs that steer the game loop rather than the piece
type Controls struct {
	Pause bool
	Quit  bool
}

// ReadInput turns the key state into the engine input for one tick.
// Left adds one to DX and right subtracts one, so holding both cancels out.
func ReadInput(keys *KeyState, bindings settings.KeyBindings) (tetris.Input, Controls) {
	var input tetris.Input
	if keys.anyHeld(bindings.Left) {
		input.DX++
	}
	if keys.anyHeld(bindings.Right) {
		input.DX--
	}
	if keys.anyJustPressed(bindings.RotateLeft) {
		input.Rotate++
	}
	if keys.anyJustPressed(bindings.RotateRight) {
		input.Rotate--
	}
	input.SoftDrop = keys.anyHeld(bindings.SoftDrop)
	input.HardDrop = keys.anyJustPressed(bindings.HardDrop)

	controls := Controls{
		Pause: keys.anyJustPressed(bindings.Pause),
		Quit:  keys.anyJustPressed(bindings.Quit),
	}
	return input, controls
}

// keyName returns the binding name of a key event
func keyName(eventKey *tcell.EventKey) string {
	if eventKey.Key() == tcell.KeyRune {
		return strings.ToLower(string(eventKey.Rune()))
	}
	if name, ok := tcell.KeyNames[eventKey.Key()]; ok {
		return name
	}
	return eventKey.Name()
}

// processControls handles the keys that work outside of a running game
func (game *Game) processControls(keys *KeyState, controls Controls) {
	switch game.mode {

	// game over
	case engineModeGameOver:
		if controls.Quit || keys.JustPressed("Ctrl-C") {
			game.Stop()
			return
		}
		if keys.JustPressed(" ") || keys.JustPressed("Enter") {
			if err := game.NewGame(); err != nil {
				game.logger.Println("new game error:", err)
				game.Stop()
			}
		}

	// paused
	case engineModePaused:
		if controls.Quit || keys.JustPressed("Ctrl-C") {
			game.Stop()
			return
		}
		if controls.Pause {
			game.UnPause()
		}

	// run
	case engineModeRun:
		if controls.Quit || keys.JustPressed("Ctrl-C") {
			game.Stop()
			return
		}
		if controls.Pause {
			game.Pause()
		}
	}
}
