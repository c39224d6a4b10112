// Package termui plays the game in a terminal. It owns the frame loop,
// keyboard polling and drawing; the rules live in package tetris.
package termui

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/chiselstrike/termtris/internal/ranking"
	"github.com/chiselstrike/termtris/internal/tetris"
	"github.com/gdamore/tcell"
	"golang.org/x/sync/errgroup"
)

// EventEngineStopRun stops the event pump
type EventEngineStopRun struct {
	EventGame
}

// Result is what a terminal session leaves behind
type Result struct {
	// Session is the score state of the game shown when the player quit
	Session tetris.Session
	// Finished is the last game that reached game over, valid when Ended is set
	Finished   tetris.Session
	FinishedAt time.Time
	Ended      bool
}

// Start opens the terminal and plays until the player quits
func Start(ctx context.Context, config Config) (Result, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return Result{}, fmt.Errorf("could not open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return Result{}, fmt.Errorf("could not init terminal: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	game, err := NewGame(screen, config)
	if err != nil {
		screen.Fini()
		return Result{}, err
	}
	err = game.Run(ctx)
	game.view.Stop()
	return game.Result(), err
}

// NewGame creates a game drawing to screen. The screen must be initialized.
func NewGame(screen tcell.Screen, config Config) (*Game, error) {
	if config.FPS <= 0 {
		return nil, fmt.Errorf("invalid frame rate %v", config.FPS)
	}
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := config.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	game := &Game{
		config:    config,
		logger:    logger,
		keys:      NewKeyState(keyHoldWindow),
		rng:       rand.New(rand.NewSource(seed)),
		board:     tetris.NewBoard(),
		frameTime: time.Duration(float64(time.Second) / config.FPS),
		events:    make(chan string, 32),
		chanStop:  make(chan struct{}),
	}
	game.view = &View{screen: screen, game: game}
	game.logger.Printf("Game seed %d, frame time %v", seed, game.frameTime)

	if err := game.NewGame(); err != nil {
		return nil, err
	}
	return game, nil
}

// Run pumps terminal events and ticks the engine once per frame until the
// game is stopped or ctx is done
func (game *Game) Run(ctx context.Context) error {
	game.logger.Println("Game Run start")

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		game.pollEvents()
		return nil
	})
	g.Go(func() error {
		defer game.view.screen.PostEventWait(&EventEngineStopRun{EventGame{when: time.Now()}})
		return game.loop(ctx)
	})
	err := g.Wait()

	game.logger.Println("Game Run end")
	return err
}

// pollEvents forwards key presses to the frame loop
func (game *Game) pollEvents() {
	for {
		event := game.view.screen.PollEvent()
		switch eventType := event.(type) {
		case nil:
			return
		case *tcell.EventKey:
			select {
			case game.events <- keyName(eventType):
			default:
			}
		case *EventEngineStopRun:
			return
		case *tcell.EventResize:
			game.view.screen.Sync()
		default:
			game.logger.Printf("event type %T", eventType)
		}
	}
}

func (game *Game) loop(ctx context.Context) error {
	ticker := time.NewTicker(game.frameTime)
	defer ticker.Stop()

	game.view.RefreshScreen()
	for {
		select {
		case <-ctx.Done():
			game.Stop()
			return nil
		case <-game.chanStop:
			return nil
		case now := <-ticker.C:
			if err := game.frame(ctx, now); err != nil {
				game.Stop()
				return err
			}
		}
	}
}

// frame runs one tick: read input, advance the engine, redraw
func (game *Game) frame(ctx context.Context, now time.Time) error {
	game.keys.Update(game.drainEvents(), now)
	input, controls := ReadInput(game.keys, game.config.Bindings)
	game.processControls(game.keys, controls)

	if game.mode != engineModeRun {
		game.view.RefreshScreen()
		return nil
	}

	result, err := game.engine.Tick(game.board, &game.session, input)
	if err != nil {
		return fmt.Errorf("engine tick: %w", err)
	}
	if game.config.Debug {
		game.logger.Printf("tick input %+v result %+v", input, result)
	}
	if result.Cleared > 0 {
		game.logger.Printf("cleared %d lines, score %d level %d", result.Cleared, game.session.Score, game.session.Level)
	}
	if result.Dead {
		game.GameOver(ctx)
	}
	game.view.RefreshScreen()
	return nil
}

func (game *Game) drainEvents() []string {
	var names []string
	for {
		select {
		case name := <-game.events:
			names = append(names, name)
		default:
			return names
		}
	}
}

// NewGame resets board and starts a new game
func (game *Game) NewGame() error {
	game.logger.Println("Game NewGame start")

	engine, err := tetris.NewEngine(game.rng)
	if err != nil {
		return err
	}
	game.board.Clear()
	game.engine = engine
	game.session = tetris.Session{}
	game.place = 0
	game.drainEvents()
	game.mode = engineModeRun

	game.logger.Println("Game NewGame end")
	return nil
}

// Stop the game
func (game *Game) Stop() {
	if !game.stopped {
		game.stopped = true
		game.mode = engineModeStopped
		close(game.chanStop)
	}
}

// Pause the game
func (game *Game) Pause() {
	game.logger.Println("Game Pause")
	game.mode = engineModePaused
}

// UnPause the game
func (game *Game) UnPause() {
	game.logger.Println("Game UnPause")
	game.mode = engineModeRun
}

// GameOver stops ticking, records the score and shows the ranking
func (game *Game) GameOver(ctx context.Context) {
	game.logger.Println("Game GameOver start")

	game.mode = engineModeGameOver
	game.finished = game.session
	game.finishedAt = time.Now()
	game.ended = true
	game.view.ShowGameOverAnimation()

	if game.config.Ranking != nil {
		place, err := game.config.Ranking.InsertScore(ctx, ranking.Score{
			Player: game.config.Player,
			Score:  game.session.Score,
			Level:  game.session.Level,
			Lines:  game.session.Lines,
		})
		if err != nil {
			game.logger.Println("saving score error:", err)
		}
		game.place = place
		scores, err := game.config.Ranking.Scores(ctx)
		if err != nil {
			game.logger.Println("reading scores error:", err)
		}
		game.scores = scores
	}
	game.drainEvents()

	game.logger.Println("Game GameOver end")
}

// Session returns the score state of the current game
func (game *Game) Session() tetris.Session {
	return game.session
}

// Result returns the current game and the last one that ended
func (game *Game) Result() Result {
	return Result{
		Session:    game.session,
		Finished:   game.finished,
		FinishedAt: game.finishedAt,
		Ended:      game.ended,
	}
}
