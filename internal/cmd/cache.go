package cmd

import (
	"time"

	"github.com/chiselstrike/termtris/internal/settings"
	"github.com/chiselstrike/termtris/internal/termui"
	"github.com/chiselstrike/termtris/internal/tetris"
)

// lastGame is the summary of the most recently finished game
type lastGame struct {
	Player   string `mapstructure:"player"`
	Score    int    `mapstructure:"score"`
	Level    int    `mapstructure:"level"`
	Lines    int    `mapstructure:"lines"`
	Finished int64  `mapstructure:"finished"`
}

const LAST_GAME_CACHE_KEY = "last_game"

func setLastGameCache(player string, session tetris.Session, finished time.Time) {
	settings.SetCache(LAST_GAME_CACHE_KEY, 0, lastGame{
		Player:   player,
		Score:    session.Score,
		Level:    session.Level,
		Lines:    session.Lines,
		Finished: finished.Unix(),
	})
}

// recordLastGame caches the last game that reached game over. Games the
// player quit early are not recorded.
func recordLastGame(player string, result termui.Result) {
	if !result.Ended {
		return
	}
	setLastGameCache(player, result.Finished, result.FinishedAt)
}

func lastGameCache() (lastGame, bool) {
	game, err := settings.GetCache[lastGame](LAST_GAME_CACHE_KEY)
	if err != nil {
		return lastGame{}, false
	}
	return game, true
}

func invalidateLastGameCache() {
	settings.InvalidateCache(LAST_GAME_CACHE_KEY)
}
