package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/hoopmetrics/internal/aggregator"
	"github.com/pable/hoopmetrics/internal/model"
	"github.com/pable/hoopmetrics/internal/ranking"
	"github.com/pable/hoopmetrics/internal/report"
)

var (
	seasonSort  string
	seasonOrder string
	seasonTop   int
	seasonTeam  string
)

var seasonCmd = &cobra.Command{
	Use:   "season",
	Short: "Show per-game player averages across all stored games",
	Long: `Roll every stored game's player box score up into per-game averages.

Sortable columns: games, points, ppg, apg, spg, bpg, fgm, fga, fg_pct, 3pm, 3pa,
3p_pct, ftm, fta, ft_pct, assists, steals, blocks, fouls.`,
	Args: cobra.NoArgs,
	RunE: runSeason,
}

func init() {
	seasonCmd.Flags().StringVar(&seasonSort, "sort", "ppg", "column to sort by")
	seasonCmd.Flags().StringVar(&seasonOrder, "order", "desc", "sort direction: asc or desc")
	seasonCmd.Flags().IntVar(&seasonTop, "top", -1, "print only the first N rows (default from config, 0 = all)")
	seasonCmd.Flags().StringVar(&seasonTeam, "team", "", "only players of this team id")
}

func runSeason(cmd *cobra.Command, args []string) error {
	sort, err := parseSort(seasonSort, seasonOrder, model.SeasonRow{})
	if err != nil {
		return err
	}

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

	perGame := make([][]model.PlayerAggregate, 0, len(games))
	for _, g := range games {
		possessions, err := db.GetPossessions(g.ID)
		if err != nil {
			return fmt.Errorf("get possessions for %s: %w", short(g.ID), err)
		}
		perGame = append(perGame, aggregator.ComputePlayerAggregates(possessions))
	}
	slog.Debug("Season rolled up", slog.Int("games", len(games)))

	rows := aggregator.ComputeSeasonRows(perGame)
	if seasonTeam != "" {
		kept := rows[:0]
		for _, r := range rows {
			if r.TeamID == seasonTeam {
				kept = append(kept, r)
			}
		}
		rows = kept
	}
	rows = top(ranking.Rows(rows, sort), seasonTop)

	fmt.Fprintf(os.Stdout, "\n%d games  |  sorted by %s\n\n", len(games), sort)
	report.PrintSeasonTable(os.Stdout, rows)
	return nil
}
