package tetris

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestLinePoints(t *testing.T) {
	tests := []struct {
		lines int
		level int
		want  int
	}{
		{0, 0, 0},
		{1, 0, 40},
		{2, 0, 100},
		{3, 0, 300},
		{4, 0, 1200},
		{1, 1, 80},
		{1, 2, 120},
		{2, 2, 300},
		{3, 2, 900},
		{4, 2, 3600},
		{4, 9, 12000},
		{5, 0, 0},
	}
	for _, tt := range tests {
		qt.Assert(t, LinePoints(tt.lines, tt.level), qt.Equals, tt.want, qt.Commentf("lines %d level %d", tt.lines, tt.level))
	}
}

func TestGravityDelay(t *testing.T) {
	c := qt.New(t)
	c.Assert(GravityDelay(0), qt.Equals, 53)
	c.Assert(GravityDelay(9), qt.Equals, 11)
	c.Assert(GravityDelay(19), qt.Equals, 4)
	c.Assert(GravityDelay(20), qt.Equals, 3)
	c.Assert(GravityDelay(99), qt.Equals, 3)
}

func TestAddDeleteLinesLevelTransition(t *testing.T) {
	c := qt.New(t)
	session := Session{Lines: 9}

	session.AddDeleteLines(1)
	c.Assert(session, qt.Equals, Session{Level: 1, Score: 40, Lines: 10})

	// points use the level from before the lines are added
	session = Session{Level: 0, Lines: 8}
	session.AddDeleteLines(4)
	c.Assert(session, qt.Equals, Session{Level: 1, Score: 1200, Lines: 12})

	session.AddDeleteLines(0)
	c.Assert(session, qt.Equals, Session{Level: 1, Score: 1200, Lines: 12})
}
