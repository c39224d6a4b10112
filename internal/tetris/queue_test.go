package tetris

import (
	"math/rand"
	"testing"

	qt "github.com/frankban/quicktest"
)

// scriptedRandomizer returns the scripted values in order, then repeats the last one
type scriptedRandomizer struct {
	values []int
	calls  int
}

func (rng *scriptedRandomizer) Intn(n int) int {
	index := rng.calls
	if index >= len(rng.values) {
		index = len(rng.values) - 1
	}
	rng.calls++
	return rng.values[index]
}

func TestQueue(t *testing.T) {
	c := qt.New(t)
	rng := &scriptedRandomizer{values: []int{2, 5, 6}}

	queue, err := NewQueue(rng)
	c.Assert(err, qt.IsNil)
	c.Assert(queue.Current(), qt.Equals, PieceI)
	c.Assert(queue.Next(), qt.Equals, PieceS)

	c.Assert(queue.Advance(rng), qt.IsNil)
	c.Assert(queue.Current(), qt.Equals, PieceS)
	c.Assert(queue.Next(), qt.Equals, PieceT)
}

func TestQueueInvalidDraw(t *testing.T) {
	c := qt.New(t)
	_, err := NewQueue(&scriptedRandomizer{values: []int{7}})
	c.Assert(err, qt.ErrorIs, ErrInvalidPieceType)

	queue := Queue{PieceL, PieceJ}
	err = queue.Advance(&scriptedRandomizer{values: []int{-1}})
	c.Assert(err, qt.ErrorIs, ErrInvalidPieceType)
	c.Assert(queue, qt.Equals, Queue{PieceL, PieceJ})
}

func TestQueueMathRand(t *testing.T) {
	c := qt.New(t)
	rng := rand.New(rand.NewSource(1))
	queue, err := NewQueue(rng)
	c.Assert(err, qt.IsNil)
	for i := 0; i < 100; i++ {
		c.Assert(queue.Advance(rng), qt.IsNil)
		c.Assert(queue.Current().Valid(), qt.IsTrue)
	}
}
