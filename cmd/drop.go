package cmd

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	dropForce bool
	dropAll   bool
)

// dropCmd deletes one stored game, or the whole database with --all.
var dropCmd = &cobra.Command{
	Use:   "drop [game-prefix]",
	Short: "Delete a stored game or the whole database",
	Long:  "Permanently delete one stored game and its possessions, or with --all the whole SQLite database. Re-import your game logs afterwards to rebuild.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDrop,
}

func init() {
	dropCmd.Flags().BoolVarP(&dropForce, "force", "f", false, "skip confirmation prompt")
	dropCmd.Flags().BoolVar(&dropAll, "all", false, "delete the whole database file")
}

func runDrop(cmd *cobra.Command, args []string) error {
	if dropAll == (len(args) == 1) {
		return errors.New("pass either a game id prefix or --all")
	}
	if dropAll {
		return dropDatabase()
	}

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	g, err := db.GetGameByPrefix(args[0])
	if err != nil {
		return fmt.Errorf("query game: %w", err)
	}
	if g == nil {
		fmt.Fprintf(os.Stderr, "No game found with id prefix %q\n", args[0])
		return nil
	}
	if !dropForce {
		fmt.Fprintf(os.Stderr, "This will permanently delete game %s (%s vs %s, %s).\n",
			short(g.ID), g.HomeTeamName, g.AwayTeamName, g.PlayedAt)
		fmt.Fprintf(os.Stderr, "Re-run with --force to confirm.\n")
		return nil
	}
	if err := db.DeleteGame(g.ID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			fmt.Fprintln(os.Stdout, "Game already gone, nothing to drop.")
			return nil
		}
		return fmt.Errorf("delete game: %w", err)
	}
	slog.Info("Game deleted", slog.String("game", g.ID))
	fmt.Fprintf(os.Stdout, "Deleted game: %s\n", short(g.ID))
	return nil
}

func dropDatabase() error {
	if !dropForce {
		fmt.Fprintf(os.Stderr, "This will permanently delete: %s\n", cfg.DBPath)
		fmt.Fprintf(os.Stderr, "Re-run with --force to confirm.\n")
		return nil
	}
	if err := os.Remove(cfg.DBPath); err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintln(os.Stdout, "Database does not exist, nothing to drop.")
			return nil
		}
		return fmt.Errorf("remove database: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Deleted: %s\n", cfg.DBPath)
	return nil
}
