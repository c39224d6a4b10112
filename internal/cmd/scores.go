package cmd

import (
	"fmt"
	"io"
	"strconv"
	"time"

	tbl "github.com/charmbracelet/bubbles/table"
	"github.com/chiselstrike/termtris/internal"
	"github.com/chiselstrike/termtris/internal/flags"
	"github.com/chiselstrike/termtris/internal/prompt"
	"github.com/chiselstrike/termtris/internal/ranking"
	"github.com/chiselstrike/termtris/internal/settings"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"
)

var interactiveFlag bool

func init() {
	rootCmd.AddCommand(scoresCmd)
	scoresCmd.Flags().BoolVarP(&interactiveFlag, "interactive", "i", false, "Browse the scores in an interactive table")

	scoresCmd.AddCommand(scoresResetCmd)
	flags.AddYes(scoresResetCmd, "Confirms removing every recorded score")
}

var scoresCmd = &cobra.Command{
	Use:               "scores",
	Short:             "Show the high score table",
	Args:              cobra.NoArgs,
	ValidArgsFunction: noFilesArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		config, err := settings.ReadSettings()
		if err != nil {
			return fmt.Errorf("failed to read settings: %w", err)
		}
		rank, err := ranking.Open(cmd.Context(), config.ScoresDB())
		if err != nil {
			return err
		}
		defer rank.Close()

		scores, err := rank.Scores(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(scores) == 0 {
			fmt.Fprintf(out, "No scores recorded yet. Run %s to get on the board.\n", internal.Emph("termtris play"))
		} else if interactiveFlag && prompt.IsInteractive() {
			if err := browseScores(out, scores); err != nil {
				return err
			}
		} else {
			printScores(out, scores)
		}

		if last, ok := lastGameCache(); ok {
			fmt.Fprintln(out)
			fmt.Fprintf(out, "Last game: %s scored %s on level %d, %s.\n",
				internal.Emph(last.Player), humanize.Comma(int64(last.Score)), last.Level,
				humanize.Time(time.Unix(last.Finished, 0)))
		}
		return nil
	},
}

var scoresResetCmd = &cobra.Command{
	Use:               "reset",
	Short:             "Remove every recorded score",
	Args:              cobra.NoArgs,
	ValidArgsFunction: noFilesArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		if !flags.Yes() {
			return fmt.Errorf("this removes every recorded score, run it again with %s to confirm", internal.Warn("--yes"))
		}
		config, err := settings.ReadSettings()
		if err != nil {
			return fmt.Errorf("failed to read settings: %w", err)
		}
		rank, err := ranking.Open(cmd.Context(), config.ScoresDB())
		if err != nil {
			return err
		}
		defer rank.Close()

		removed, err := rank.Reset(cmd.Context())
		if err != nil {
			return err
		}
		invalidateLastGameCache()
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s.\n", internal.Emph(pluralize(removed, "score")))
		return nil
	},
}

func printScores(w io.Writer, scores []ranking.Score) {
	scoreTable := table.New("#", "PLAYER", "SCORE", "LEVEL", "LINES", "PLAYED").WithWriter(w)

	columnFmt := color.New(color.FgBlue, color.Bold).SprintfFunc()
	scoreTable.WithFirstColumnFormatter(columnFmt)

	for i, score := range scores {
		scoreTable.AddRow(i+1, score.Player, humanize.Comma(int64(score.Score)), score.Level, score.Lines, humanize.Time(score.Finished))
	}
	scoreTable.Print()
}

// browseScores shows the ranking in an interactive table and prints the
// details of the picked score
func browseScores(w io.Writer, scores []ranking.Score) error {
	columns := []tbl.Column{
		{Title: "#", Width: 2},
		{Title: "PLAYER", Width: maxPlayerName},
		{Title: "SCORE", Width: 10},
		{Title: "LEVEL", Width: 5},
		{Title: "LINES", Width: 5},
	}
	rows := make([]tbl.Row, 0, len(scores))
	for i, score := range scores {
		rows = append(rows, tbl.Row{
			strconv.Itoa(i + 1),
			score.Player,
			humanize.Comma(int64(score.Score)),
			strconv.Itoa(score.Level),
			strconv.Itoa(score.Lines),
		})
	}

	choice, err := prompt.Table(columns, rows, 0, 1)
	if err != nil {
		return err
	}
	if choice == "" {
		return nil
	}
	place, err := strconv.Atoi(choice)
	if err != nil || place < 1 || place > len(scores) {
		return fmt.Errorf("invalid selection %q", choice)
	}
	printScoreDetails(w, place, scores[place-1])
	return nil
}

func printScoreDetails(w io.Writer, place int, score ranking.Score) {
	fmt.Fprintf(w, "#%d %s\n", place, internal.Emph(score.Player))
	fmt.Fprintf(w, "Score:  %s\n", humanize.Comma(int64(score.Score)))
	fmt.Fprintf(w, "Level:  %d\n", score.Level)
	fmt.Fprintf(w, "Lines:  %d\n", score.Lines)
	fmt.Fprintf(w, "Played: %s (%s)\n", score.Finished.Format(time.RFC1123), humanize.Time(score.Finished))
	fmt.Fprintf(w, "ID:     %s\n", score.ID)
}

func pluralize(n int64, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
