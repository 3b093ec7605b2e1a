package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored games",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	games, err := db.ListGames()
	if err != nil {
		return fmt.Errorf("list games: %w", err)
	}
	if len(games) == 0 {
		fmt.Fprintln(os.Stdout, "No games stored yet. Run 'hoopmetrics import <game.json>' to add one.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-14s  %-10s  %-20s  %-20s  %7s  %s\n",
		"ID", "DATE", "HOME", "AWAY", "SCORE", "POSS")
	fmt.Fprintf(os.Stdout, "%-14s  %-10s  %-20s  %-20s  %7s  %s\n",
		"──────────────", "──────────", "────────────────────", "────────────────────", "───────", "────")
	for _, g := range games {
		score := fmt.Sprintf("%d-%d", g.HomePoints, g.AwayPoints)
		fmt.Fprintf(os.Stdout, "%-14s  %-10s  %-20s  %-20s  %7s  %d\n",
			short(g.ID), g.PlayedAt, g.HomeTeamName, g.AwayTeamName, score, g.Possessions)
	}
	return nil
}
