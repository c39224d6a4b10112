package termui

import (
	"log"
	"math/rand"
	"time"

	"github.com/chiselstrike/termtris/internal/ranking"
	"github.com/chiselstrike/termtris/internal/settings"
	"github.com/chiselstrike/termtris/internal/tetris"
	"github.com/gdamore/tcell"
)

const (
	boardXOffset = 4
	boardYOffset = 2

	// a key stays held this long after its last press or repeat event
	keyHoldWindow = 150 * time.Millisecond

	colorBlank = tcell.ColorBlack
)

// the zero value is a running game
const (
	engineModeRun engineMode = iota
	engineModeStopped
	engineModeGameOver
	engineModePaused
)

// pieceColors is indexed by board cell value
var pieceColors = [tetris.NumPieceTypes + 1]tcell.Color{
	colorBlank,
	tcell.ColorWhite,   // L
	tcell.ColorBlue,    // J
	tcell.ColorAqua,    // I
	tcell.ColorYellow,  // O
	tcell.ColorRed,     // Z
	tcell.ColorLime,    // S
	tcell.ColorFuchsia, // T
}

type (
	engineMode int

	// Config is what a game needs from the settings
	Config struct {
		FPS      float64
		Seed     int64
		Player   string
		Bindings settings.KeyBindings
		Logger   *log.Logger
		Ranking  *ranking.Ranking
		// Debug logs the input and result of every tick
		Debug bool
	}

	// View is the display engine
	View struct {
		screen tcell.Screen
		game   *Game
	}

	// Game runs the engine against a terminal: it turns key events into
	// per-tick input, ticks once per frame and redraws
	Game struct {
		config     Config
		logger     *log.Logger
		view       *View
		keys       *KeyState
		rng        *rand.Rand
		board      *tetris.Board
		engine     *tetris.Engine
		session    tetris.Session
		finished   tetris.Session
		finishedAt time.Time
		ended      bool
		mode       engineMode
		frameTime  time.Duration
		scores     []ranking.Score
		place      int
		events     chan string
		chanStop   chan struct{}
		stopped    bool
	}

	// EventGame is an game event
	EventGame struct {
		when time.Time
	}
)

// When returns event when
func (EventGame *EventGame) When() time.Time {
	return EventGame.when
}
