package cmd

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"strconv"
	"sync"
	"time"

	"github.com/chiselstrike/termtris/internal"
	"github.com/chiselstrike/termtris/internal/flags"
	"github.com/chiselstrike/termtris/internal/prompt"
	"github.com/chiselstrike/termtris/internal/sim"
	"github.com/chiselstrike/termtris/internal/tetris"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	gamesFlag int
	ticksFlag int
)

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().IntVarP(&gamesFlag, "games", "g", 8, "Number of games to play")
	simulateCmd.Flags().IntVarP(&ticksFlag, "ticks", "t", 100_000, "Stop a game after this many ticks")
	flags.AddSeed(simulateCmd, "Seed of the first game, the others use the following seeds. 0 picks one from the clock.")
}

var simulateCmd = &cobra.Command{
	Use:               "simulate",
	Short:             "Play games with random input, without a terminal",
	Args:              cobra.NoArgs,
	ValidArgsFunction: noFilesArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		if gamesFlag <= 0 {
			return fmt.Errorf("--games must be positive, got %d", gamesFlag)
		}
		seed := flags.Seed()
		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		var progress func(int)
		if prompt.IsInteractive() {
			spinner := prompt.Spinner(fmt.Sprintf("Simulating %d games...", gamesFlag))
			defer spinner.Stop()
			progress = func(done int) {
				spinner.Text(fmt.Sprintf("Simulating %d games... %d done", gamesFlag, done))
			}
		}

		start := time.Now()
		results, err := runSimulations(cmd.Context(), gamesFlag, ticksFlag, seed, progress)
		if err != nil {
			return err
		}
		printSimulation(cmd.OutOrStdout(), results, time.Since(start))
		return nil
	},
}

// runSimulations plays games concurrently, game i using seed+i. Results are
// in game order. progress is called with the number of finished games, one
// call at a time.
func runSimulations(ctx context.Context, games int, maxTicks int, seed int64, progress func(done int)) ([]sim.Result, error) {
	results := make([]sim.Result, games)
	var (
		mu   sync.Mutex
		done int
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < games; i++ {
		i := i
		g.Go(func() error {
			result, err := sim.Run(ctx, sim.Options{Seed: seed + int64(i), MaxTicks: maxTicks})
			if err != nil {
				return fmt.Errorf("game %d: %w", i+1, err)
			}
			results[i] = result

			mu.Lock()
			defer mu.Unlock()
			done++
			if progress != nil {
				progress(done)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func printSimulation(w io.Writer, results []sim.Result, elapsed time.Duration) {
	data := make([][]string, 0, len(results))
	best := 0
	ticks := 0
	spawns := make([]int, tetris.NumPieceTypes)
	pieces := 0
	for _, result := range results {
		ended := "no"
		if result.Dead {
			ended = "yes"
		}
		data = append(data, []string{
			strconv.FormatInt(result.Seed, 10),
			humanize.Comma(int64(result.Session.Score)),
			strconv.Itoa(result.Session.Level),
			strconv.Itoa(result.Session.Lines),
			strconv.Itoa(result.Tetrises),
			humanize.Comma(int64(result.Pieces)),
			humanize.Comma(int64(result.Ticks)),
			ended,
		})
		if result.Session.Score > best {
			best = result.Session.Score
		}
		ticks += result.Ticks
		pieces += result.Pieces
		for t := range spawns {
			spawns[t] += result.Spawns(tetris.PieceType(t))
		}
	}
	printTable(w, []string{"seed", "score", "level", "lines", "tetrises", "pieces", "ticks", "topped out"}, data)

	fmt.Fprintln(w)
	pieceData := make([][]string, 0, tetris.NumPieceTypes)
	for t, count := range spawns {
		share := 0.0
		if pieces > 0 {
			share = float64(count) * 100 / float64(pieces)
		}
		pieceData = append(pieceData, []string{
			tetris.PieceType(t).String(),
			humanize.Comma(int64(count)),
			fmt.Sprintf("%.1f%%", share),
		})
	}
	printTable(w, []string{"piece", "spawned", "share"}, pieceData)

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Played %s in %s, %s ticks. Best score %s.\n",
		internal.Emph(pluralize(int64(len(results)), "game")),
		elapsed.Round(time.Millisecond),
		humanize.Comma(int64(ticks)),
		internal.Emph(humanize.Comma(int64(best))))
}
