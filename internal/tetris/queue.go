package tetris

import "fmt"

// Randomizer is the source of new piece types. *math/rand.Rand satisfies it.
type Randomizer interface {
	Intn(n int) int
}

// Queue is the two slot piece lookahead: Queue[0] is the piece that spawns,
// Queue[1] is the one after it
type Queue [2]PieceType

// NewQueue fills both slots from rng
func NewQueue(rng Randomizer) (Queue, error) {
	var queue Queue
	for i := range queue {
		t, err := drawPiece(rng)
		if err != nil {
			return Queue{}, err
		}
		queue[i] = t
	}
	return queue, nil
}

// Advance appends a new random type and drops the front one
func (queue *Queue) Advance(rng Randomizer) error {
	t, err := drawPiece(rng)
	if err != nil {
		return err
	}
	queue[0] = queue[1]
	queue[1] = t
	return nil
}

// Current is the type about to spawn
func (queue Queue) Current() PieceType {
	return queue[0]
}

// Next is the preview type
func (queue Queue) Next() PieceType {
	return queue[1]
}

func drawPiece(rng Randomizer) (PieceType, error) {
	n := rng.Intn(NumPieceTypes)
	if n < 0 || n >= NumPieceTypes {
		return 0, fmt.Errorf("randomizer returned %d: %w", n, ErrInvalidPieceType)
	}
	return PieceType(n), nil
}
