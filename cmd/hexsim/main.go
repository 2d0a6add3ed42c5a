// Command hexsim plays frontier scenarios unattended and records each
// match to a SQLite journal.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/talgya/hex-frontier/internal/autoplay"
	"github.com/talgya/hex-frontier/internal/config"
	"github.com/talgya/hex-frontier/internal/engine"
	"github.com/talgya/hex-frontier/internal/levels"
	"github.com/talgya/hex-frontier/internal/persistence"
)

func main() {
	scenarioPath := flag.String("scenario", "", "scenario YAML path (empty = built-in default)")
	dbPath := flag.String("db", "data/frontier.db", "journal database path")
	seed := flag.Int64("seed", 0, "scatter seed override (0 = scenario value)")
	maxTurns := flag.Int("max-turns", 100, "turn cap per level")
	maxLevels := flag.Int("levels", 1, "number of levels to play through")
	pace := flag.Duration("pace", 0, "delay between execution rounds")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	scenario, err := config.Load(*scenarioPath)
	if err != nil {
		slog.Error("failed to load scenario", "path", *scenarioPath, "error", err)
		os.Exit(1)
	}
	if *seed != 0 {
		scenario.Scatter.Seed = *seed
	}
	slog.Info("scenario loaded", "name", scenario.Name,
		"grid", fmt.Sprintf("%dx%d", scenario.Grid.Width, scenario.Grid.Height))

	os.MkdirAll(filepath.Dir(*dbPath), 0755)
	journal, err := persistence.Open(*dbPath)
	if err != nil {
		slog.Error("failed to open journal", "path", *dbPath, "error", err)
		os.Exit(1)
	}
	defer journal.Close()
	journal.SetMeta("scenario", scenario.Name)
	journal.SetMeta("started_at", time.Now().UTC().Format(time.RFC3339))

	game, err := levels.Build(scenario)
	if err != nil {
		slog.Error("failed to build level", "error", err)
		os.Exit(1)
	}
	game.Turns.StartGame()
	if *pace > 0 {
		game.Turns.Pacing = func(int) { time.Sleep(*pace) }
	}

	outcome, game := playThrough(game, scenario, journal, *maxTurns, *maxLevels, *pace)

	fmt.Printf("\n%s after %d turn(s) on level %d — food %d, wood %d, gold %d\n",
		outcome, game.Turns.Turn(), game.Ledger.Level(),
		game.Ledger.Food(), game.Ledger.Wood(), game.Ledger.Gold())
}

// playThrough runs the autoplay loop across levels, flushing events to the
// journal after every turn. Returns the final outcome label and the game
// that was being played when it was decided.
func playThrough(game *engine.Game, scenario config.Scenario, journal *persistence.Journal, maxTurns, maxLevels int, pace time.Duration) (string, *engine.Game) {
	planner := autoplay.New(game)
	outcome := "turn cap reached"

	for lvl := 1; lvl <= maxLevels; lvl++ {
		for turn := 0; turn < maxTurns; turn++ {
			more := planner.Step()
			if err := journal.Append(game.Bus.Drain()); err != nil {
				slog.Error("journal append failed", "error", err)
			}
			if !more {
				break
			}
		}

		switch game.Turns.Phase() {
		case engine.PhaseVictory:
			outcome = "victory"
			if err := journal.RecordOutcome(outcome, game.Status()); err != nil {
				slog.Error("journal outcome failed", "error", err)
			}
			if lvl == maxLevels {
				return outcome, game
			}
			next, err := levels.NextLevel(game, scenario)
			if err != nil {
				slog.Error("level advance failed", "error", err)
				return outcome, game
			}
			game = next
			if pace > 0 {
				game.Turns.Pacing = func(int) { time.Sleep(pace) }
			}
			planner = autoplay.New(game)

		case engine.PhaseGameOver:
			outcome = "defeat"
			if err := journal.RecordOutcome(outcome, game.Status()); err != nil {
				slog.Error("journal outcome failed", "error", err)
			}
			return outcome, game

		default:
			if err := journal.RecordOutcome(outcome, game.Status()); err != nil {
				slog.Error("journal outcome failed", "error", err)
			}
			return outcome, game
		}
	}
	return outcome, game
}
