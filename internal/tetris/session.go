package tetris

// Session holds the score state of one game. The caller owns it and hands it
// to every tick; the engine never keeps a reference.
type Session struct {
	Level int
	Score int
	Lines int
}

// gravityDelays is the number of ticks between automatic drops, by level
var gravityDelays = [...]int{53, 49, 45, 41, 37, 33, 28, 22, 17, 11, 10, 9, 8, 7, 6, 6, 5, 5, 4, 4}

// GravityDelay returns the ticks between automatic drops at level.
// Levels past the table use 3.
func GravityDelay(level int) int {
	if level < 0 || level >= len(gravityDelays) {
		return 3
	}
	return gravityDelays[level]
}

// LinePoints returns the points for clearing lines rows in one lock at level
func LinePoints(lines int, level int) int {
	switch lines {
	case 1:
		return 40 * (level + 1)
	case 2:
		return 100 * (level + 1)
	case 3:
		return 300 * (level + 1)
	case 4:
		return 1200 * (level + 1)
	}
	return 0
}

// AddDeleteLines scores lines cleared by one lock and recomputes the level.
// Points use the level before the new lines are counted.
func (session *Session) AddDeleteLines(lines int) {
	session.Score += LinePoints(lines, session.Level)
	session.Lines += lines
	session.Level = session.Lines / 10
}
