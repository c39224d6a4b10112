// Package sim plays games without a terminal, feeding the engine random
// input. It is used to exercise the rules over many ticks and to compare seeds.
package sim

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/chiselstrike/termtris/internal/tetris"
	"github.com/kamstrup/intmap"
)

// Options configure a single simulated game
type Options struct {
	// Seed drives both the piece sequence and the input
	Seed int64
	// MaxTicks stops games that do not end on their own
	MaxTicks int
}

// Result is the outcome of one simulated game
type Result struct {
	Seed     int64
	Session  tetris.Session
	Ticks    int
	Dead     bool
	Pieces   int
	Locks    int
	Tetrises int
	spawns   *intmap.Map[int, int]
}

// Spawns returns how often piece t was spawned
func (result Result) Spawns(t tetris.PieceType) int {
	if result.spawns == nil {
		return 0
	}
	count, _ := result.spawns.Get(int(t))
	return count
}

// Run plays one game until the engine reports a dead board or MaxTicks
// ticks have passed. The context is checked between ticks.
func Run(ctx context.Context, options Options) (Result, error) {
	if options.MaxTicks <= 0 {
		return Result{}, fmt.Errorf("max ticks must be positive, got %d", options.MaxTicks)
	}

	pieces := rand.New(rand.NewSource(options.Seed))
	engine, err := tetris.NewEngine(pieces)
	if err != nil {
		return Result{}, err
	}
	player := newPlayer(options.Seed)
	board := tetris.NewBoard()

	result := Result{
		Seed:   options.Seed,
		spawns: intmap.New[int, int](tetris.NumPieceTypes),
	}
	for result.Ticks < options.MaxTicks {
		if result.Ticks%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return result, err
			}
		}

		tick, err := engine.Tick(board, &result.Session, player.input())
		if err != nil {
			return result, fmt.Errorf("tick %d: %w", result.Ticks, err)
		}
		result.Ticks++

		if tick.Spawned {
			mino, _ := engine.Piece()
			count, _ := result.spawns.Get(int(mino.Type))
			result.spawns.Put(int(mino.Type), count+1)
			result.Pieces++
		}
		if tick.Locked {
			result.Locks++
		}
		if tick.Cleared == 4 {
			result.Tetrises++
		}
		if tick.Dead {
			result.Dead = true
			break
		}
	}
	return result, nil
}

// player produces random but plausible input: it holds a direction for a
// while, taps rotation now and then and mostly lets gravity work
type player struct {
	rng     *rand.Rand
	dx      int
	holdFor int
}

func newPlayer(seed int64) *player {
	return &player{rng: rand.New(rand.NewSource(seed ^ 0x5eed))}
}

func (p *player) input() tetris.Input {
	if p.holdFor <= 0 {
		p.dx = p.rng.Intn(3) - 1
		p.holdFor = 5 + p.rng.Intn(40)
	}
	p.holdFor--

	var input tetris.Input
	input.DX = p.dx
	switch n := p.rng.Intn(100); {
	case n < 3:
		input.Rotate = 1
	case n < 6:
		input.Rotate = -1
	}
	input.SoftDrop = p.rng.Intn(4) == 0
	input.HardDrop = p.rng.Intn(200) == 0
	return input
}
