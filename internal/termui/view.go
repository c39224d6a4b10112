package termui

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/chiselstrike/termtris/internal/tetris"
	"github.com/gdamore/tcell"
)

// Stop stops the view
func (view *View) Stop() {
	view.game.logger.Println("View Stop start")

	view.screen.Fini()

	view.game.logger.Println("View Stop end")
}

// RefreshScreen refreshes the updated view to the screen
func (view *View) RefreshScreen() {
	snapshot := view.game.engine.Snapshot(view.game.board, view.game.session)

	switch view.game.mode {

	case engineModeRun:
		view.drawBoardBoarder()
		view.drawTexts(snapshot.Session)
		view.drawBoard(snapshot)
		view.screen.Show()

	case engineModePaused:
		view.screen.Fill(' ', tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlack))
		view.drawBoardBoarder()
		view.drawTexts(snapshot.Session)
		view.drawPaused()
		view.screen.Show()

	case engineModeGameOver:
		view.drawBoardBoarder()
		view.drawTexts(snapshot.Session)
		view.drawGameOver()
		view.drawRankingScores()
		view.screen.Show()
	}
}

// drawBoardBoarder draws the board boarder
func (view *View) drawBoardBoarder() {
	xOffset := boardXOffset
	yOffset := boardYOffset
	xEnd := boardXOffset + tetris.BoardWidth*2 + 4
	yEnd := boardYOffset + tetris.BoardHeight + 2
	styleBoarder := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorLightGray)
	styleBoard := tcell.StyleDefault.Foreground(tcell.ColorLightGray).Background(tcell.ColorBlack)
	for x := xOffset; x < xEnd; x++ {
		for y := yOffset; y < yEnd; y++ {
			if x == xOffset || x == xOffset+1 || x == xEnd-1 || x == xEnd-2 || y == yOffset || y == yEnd-1 {
				view.screen.SetContent(x, y, ' ', nil, styleBoarder)
			} else {
				view.screen.SetContent(x, y, ' ', nil, styleBoard)
			}
		}
	}
}

// drawBoard draws the locked blocks and the falling piece
func (view *View) drawBoard(snapshot tetris.Snapshot) {
	for y := 0; y < tetris.BoardHeight; y++ {
		for x := 0; x < tetris.BoardWidth; x++ {
			if cell := snapshot.CellAt(x, y); cell != tetris.CellEmpty {
				view.DrawBlock(x, y, cell)
			}
		}
	}
}

// drawTexts draws the text
func (view *View) drawTexts(session tetris.Session) {
	xOffset := boardXOffset + tetris.BoardWidth*2 + 8
	yOffset := boardYOffset

	view.drawText(xOffset, yOffset, "SCORE:", tcell.ColorLightGray, tcell.ColorDarkBlue)
	view.drawText(xOffset+7, yOffset, fmt.Sprintf("%7d", session.Score), tcell.ColorBlack, tcell.ColorLightGray)

	yOffset += 2

	view.drawText(xOffset, yOffset, "LINES:", tcell.ColorLightGray, tcell.ColorDarkBlue)
	view.drawText(xOffset+7, yOffset, fmt.Sprintf("%7d", session.Lines), tcell.ColorBlack, tcell.ColorLightGray)

	yOffset += 2

	view.drawText(xOffset, yOffset, "LEVEL:", tcell.ColorLightGray, tcell.ColorDarkBlue)
	view.drawText(xOffset+7, yOffset, fmt.Sprintf("%7d", session.Level), tcell.ColorBlack, tcell.ColorLightGray)

	yOffset += 2

	bindings := view.game.config.Bindings
	help := []struct {
		keys   []string
		action string
	}{
		{bindings.Left, "left"},
		{bindings.Right, "right"},
		{bindings.SoftDrop, "soft drop"},
		{bindings.HardDrop, "hard drop"},
		{bindings.RotateLeft, "rotate left"},
		{bindings.RotateRight, "rotate right"},
		{bindings.Pause, "pause"},
		{bindings.Quit, "quit"},
	}
	for _, line := range help {
		if len(line.keys) == 0 {
			continue
		}
		view.drawText(xOffset, yOffset, fmt.Sprintf("%-6s - %s", line.keys[0], line.action), tcell.ColorLightGray, tcell.ColorBlack)
		yOffset++
	}
}

// DrawBlock draws a block
func (view *View) DrawBlock(x int, y int, cell tetris.Cell) {
	color := colorBlank
	if int(cell) < len(pieceColors) {
		color = pieceColors[cell]
	}
	style := tcell.StyleDefault.Foreground(color).Background(color).Dim(true)
	view.screen.SetContent(2*x+boardXOffset+2, y+boardYOffset+1, '▄', nil, style)
	view.screen.SetContent(2*x+boardXOffset+3, y+boardYOffset+1, '▄', nil, style)
}

// drawPaused draws Paused
func (view *View) drawPaused() {
	yOffset := (tetris.BoardHeight+1)/2 + boardYOffset
	view.drawTextCenter(yOffset, "Paused", tcell.ColorWhite, tcell.ColorBlack)
}

// drawGameOver draws GAME OVER
func (view *View) drawGameOver() {
	yOffset := boardYOffset + 2
	view.drawTextCenter(yOffset, " GAME OVER", tcell.ColorWhite, tcell.ColorBlack)
	yOffset += 2
	view.drawTextCenter(yOffset, "sbar for new game", tcell.ColorWhite, tcell.ColorBlack)
	if view.game.place > 0 {
		yOffset += 2
		view.drawTextCenter(yOffset, fmt.Sprintf("new rank #%d", view.game.place), tcell.ColorYellow, tcell.ColorBlack)
	}
}

// drawRankingScores draws the ranking scores
func (view *View) drawRankingScores() {
	yOffset := boardYOffset + 10
	for index, score := range view.game.scores {
		view.drawTextCenter(yOffset+index, fmt.Sprintf("%1d: %7d", index+1, score.Score), tcell.ColorWhite, tcell.ColorBlack)
	}
}

// drawText draws the provided text
func (view *View) drawText(x int, y int, text string, fg tcell.Color, bg tcell.Color) {
	style := tcell.StyleDefault.Foreground(fg).Background(bg)
	for index, char := range []rune(text) {
		view.screen.SetContent(x+index, y, char, nil, style)
	}
}

// drawTextCenter draws text in the center of the board
func (view *View) drawTextCenter(y int, text string, fg tcell.Color, bg tcell.Color) {
	xOffset := tetris.BoardWidth - (len(text)+1)/2 + boardXOffset + 2
	style := tcell.StyleDefault.Foreground(fg).Background(bg)
	for index, char := range []rune(text) {
		view.screen.SetContent(index+xOffset, y, char, nil, style)
	}
}

// ShowGameOverAnimation draws one randomily picked gave over animation
func (view *View) ShowGameOverAnimation() {
	view.game.logger.Println("View ShowGameOverAnimation start")

	switch rand.Intn(2) {
	case 0:
		for y := tetris.BoardHeight - 1; y >= 0; y-- {
			view.colorizeLine(y, tcell.ColorLightGray)
			view.screen.Show()
			time.Sleep(60 * time.Millisecond)
		}

	case 1:
		for y := 0; y < tetris.BoardHeight; y++ {
			view.colorizeLine(y, tcell.ColorLightGray)
			view.screen.Show()
			time.Sleep(60 * time.Millisecond)
		}
	}

	view.game.logger.Println("View ShowGameOverAnimation end")
}

// colorizeLine changes the color of a line
func (view *View) colorizeLine(y int, color tcell.Color) {
	style := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(color)
	for x := 0; x < tetris.BoardWidth; x++ {
		view.screen.SetContent(x*2+boardXOffset+2, y+boardYOffset+1, ' ', nil, style)
		view.screen.SetContent(x*2+boardXOffset+3, y+boardYOffset+1, ' ', nil, style)
	}
}
