// Package ranking keeps the high score table in a local sqlite database.
package ranking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/athoscouto/codename"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
	_ "modernc.org/sqlite"
)

// Size is the number of scores kept in the ranking
const Size = 9

var ErrNoScores = errors.New("no scores recorded yet")

// Score is one finished game
type Score struct {
	ID       string
	Player   string
	Score    int
	Level    int
	Lines    int
	Finished time.Time
}

// Ranking holds the ranking scores
type Ranking struct {
	db *sql.DB
}

const schema = `CREATE TABLE IF NOT EXISTS scores (
	id TEXT PRIMARY KEY,
	player TEXT NOT NULL,
	score INTEGER NOT NULL,
	level INTEGER NOT NULL,
	lines INTEGER NOT NULL,
	finished INTEGER NOT NULL
)`

// Open opens or creates the ranking database at path
func Open(ctx context.Context, path string) (*Ranking, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("could not open scores database %s: %w", path, err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not create scores table: %w", err)
	}
	return &Ranking{db: db}, nil
}

func (ranking *Ranking) Close() error {
	return ranking.db.Close()
}

// Scores returns the ranking, best score first
func (ranking *Ranking) Scores(ctx context.Context) ([]Score, error) {
	rows, err := ranking.db.QueryContext(ctx,
		`SELECT id, player, score, level, lines, finished FROM scores ORDER BY score DESC, finished ASC LIMIT ?`, Size)
	if err != nil {
		return nil, fmt.Errorf("could not read scores: %w", err)
	}
	defer rows.Close()

	scores := make([]Score, 0, Size)
	for rows.Next() {
		var score Score
		var finished int64
		if err := rows.Scan(&score.ID, &score.Player, &score.Score, &score.Level, &score.Lines, &finished); err != nil {
			return nil, err
		}
		score.Finished = time.Unix(finished, 0)
		scores = append(scores, score)
	}
	return scores, rows.Err()
}

// Best returns the top score
func (ranking *Ranking) Best(ctx context.Context) (Score, error) {
	scores, err := ranking.Scores(ctx)
	if err != nil {
		return Score{}, err
	}
	if len(scores) == 0 {
		return Score{}, ErrNoScores
	}
	return scores[0], nil
}

// InsertScore records a finished game and returns its place in the ranking,
// starting at 1. A place of 0 means the score did not make the table and
// nothing was stored.
func (ranking *Ranking) InsertScore(ctx context.Context, score Score) (int, error) {
	scores, err := ranking.Scores(ctx)
	if err != nil {
		return 0, err
	}
	place := Place(scores, score.Score)
	if place == 0 {
		return 0, nil
	}

	if score.ID == "" {
		score.ID = uuid.NewString()
	}
	if score.Finished.IsZero() {
		score.Finished = time.Now()
	}

	tx, err := ranking.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO scores (id, player, score, level, lines, finished) VALUES (?, ?, ?, ?, ?, ?)`,
		score.ID, score.Player, score.Score, score.Level, score.Lines, score.Finished.Unix())
	if err != nil {
		return 0, fmt.Errorf("could not save score: %w", err)
	}

	// Only the best Size scores are kept
	kept := slices.Insert(scores, place-1, score)
	if len(kept) > Size {
		for _, dropped := range kept[Size:] {
			if _, err := tx.ExecContext(ctx, `DELETE FROM scores WHERE id = ?`, dropped.ID); err != nil {
				return 0, fmt.Errorf("could not trim ranking: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return place, nil
}

// Reset removes every recorded score and returns how many there were
func (ranking *Ranking) Reset(ctx context.Context) (int64, error) {
	result, err := ranking.db.ExecContext(ctx, `DELETE FROM scores`)
	if err != nil {
		return 0, fmt.Errorf("could not reset ranking: %w", err)
	}
	return result.RowsAffected()
}

// Place returns where newScore would land in scores, which must be sorted
// best first. Ties go below existing scores. 0 means it would not be kept.
func Place(scores []Score, newScore int) int {
	index := slices.IndexFunc(scores, func(score Score) bool {
		return newScore > score.Score
	})
	if index == -1 {
		index = len(scores)
	}
	if index >= Size || newScore <= 0 {
		return 0
	}
	return index + 1
}

// PlayerName returns a random two word name for players that did not pick one
func PlayerName() (string, error) {
	rng, err := codename.DefaultRNG()
	if err != nil {
		return "", err
	}
	return codename.Generate(rng, 0), nil
}
