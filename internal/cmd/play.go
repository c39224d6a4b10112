package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/chiselstrike/termtris/internal"
	"github.com/chiselstrike/termtris/internal/flags"
	"github.com/chiselstrike/termtris/internal/prompt"
	"github.com/chiselstrike/termtris/internal/ranking"
	"github.com/chiselstrike/termtris/internal/settings"
	"github.com/chiselstrike/termtris/internal/termui"
	"github.com/chiselstrike/termtris/internal/tetris"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

const maxPlayerName = 24

func init() {
	rootCmd.AddCommand(playCmd)
	flags.AddSeed(playCmd, "Seed for the piece sequence. 0 uses the seed setting, or the clock when that is 0 too.")
	flags.AddPlayer(playCmd)
	flags.AddDebugFlag(playCmd)
}

var playCmd = &cobra.Command{
	Use:               "play",
	Aliases:           []string{"relax"},
	Short:             "Sometimes you feel like you're working too hard... relax!",
	Args:              cobra.NoArgs,
	ValidArgsFunction: noFilesArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		config, err := settings.ReadSettings()
		if err != nil {
			return fmt.Errorf("failed to read settings: %w", err)
		}
		bindings, err := config.KeyBindings()
		if err != nil {
			return err
		}
		player, err := playerName(config)
		if err != nil {
			return err
		}

		logFile, err := os.OpenFile(config.LogFile(), os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer logFile.Close()
		logger := log.New(logFile, "", log.Ldate|log.Ltime|log.LUTC|log.Lshortfile)

		rank, err := ranking.Open(cmd.Context(), config.ScoresDB())
		if err != nil {
			return err
		}
		defer rank.Close()

		seed := flags.Seed()
		if seed == 0 {
			seed = config.Seed()
		}

		result, err := termui.Start(cmd.Context(), termui.Config{
			FPS:      config.FPS(),
			Seed:     seed,
			Player:   player,
			Bindings: bindings,
			Logger:   logger,
			Ranking:  rank,
			Debug:    flags.Debug(),
		})
		if err != nil {
			return err
		}

		recordLastGame(player, result)
		printEndScreen(cmd.OutOrStdout(), player, result.Session)
		return nil
	},
}

// playerName picks the name scores are recorded under: the flag, then the
// settings, then whatever the player types. Names picked here are saved.
func playerName(config *settings.Settings) (string, error) {
	if name := flags.Player(); name != "" {
		return name, nil
	}
	if name := config.Player(); name != "" {
		return name, nil
	}

	name, err := ranking.PlayerName()
	if err != nil {
		return "", err
	}
	if prompt.IsInteractive() {
		name, err = prompt.TextInput("What name should your scores go under?", name, "", maxPlayerName)
		if err != nil {
			return "", err
		}
	}
	if err := config.SetPlayer(name); err != nil {
		return "", fmt.Errorf("could not save player name: %w", err)
	}
	return name, nil
}

func printEndScreen(w io.Writer, player string, session tetris.Session) {
	fmt.Fprintf(w, "Thanks for playing, %s!\n\n", internal.Emph(player))
	fmt.Fprintf(w, "Score: %s\n", internal.Good(humanize.Comma(int64(session.Score))))
	fmt.Fprintf(w, "Level: %s\n", internal.Emph(session.Level))
	fmt.Fprintf(w, "Lines: %s\n", internal.Emph(session.Lines))
}
