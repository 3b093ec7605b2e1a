package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/hoopmetrics/internal/aggregator"
	"github.com/pable/hoopmetrics/internal/ingest"
	"github.com/pable/hoopmetrics/internal/report"
)

var (
	importFocus   string
	importReplace bool
)

var importCmd = &cobra.Command{
	Use:   "import <game.json>",
	Short: "Import a game's possession log and print its box score",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	importCmd.Flags().StringVar(&importFocus, "player", "", "highlight player by id or full name")
	importCmd.Flags().BoolVar(&importReplace, "replace", false, "overwrite the game if it is already stored")
}

func runImport(cmd *cobra.Command, args []string) error {
	path := args[0]

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	slog.Info("Importing game", slog.String("path", path))
	game, err := ingest.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read game: %w", err)
	}

	exists, err := db.GameExists(game.Game.ID)
	if err != nil {
		return fmt.Errorf("check game: %w", err)
	}
	if exists && !importReplace {
		fmt.Fprintf(os.Stdout, "Game %s already stored, showing stored results.\n", short(game.Game.ID))
		return printBox(db, game.Game.ID, importFocus)
	}

	if err := db.InsertGame(game.Game, game.Possessions); err != nil {
		return fmt.Errorf("insert game: %w", err)
	}
	slog.Info("Game stored",
		slog.String("game", game.Game.ID),
		slog.Int("possessions", len(game.Possessions)),
		slog.Bool("replaced", exists))

	teams := aggregator.ComputeGameAggregates(game.Game, game.Possessions)
	report.PrintGameHeader(os.Stdout, game.Game, teams)
	report.PrintTeamTable(os.Stdout, teams)
	fmt.Fprintln(os.Stdout)
	report.PrintPlayerTable(os.Stdout, aggregator.ComputePlayerAggregates(game.Possessions), report.TeamNames(game.Game), importFocus)
	return nil
}

func short(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}
