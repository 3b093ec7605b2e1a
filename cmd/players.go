package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/hoopmetrics/internal/aggregator"
	"github.com/pable/hoopmetrics/internal/model"
	"github.com/pable/hoopmetrics/internal/ranking"
	"github.com/pable/hoopmetrics/internal/report"
)

var (
	playersSort  string
	playersOrder string
	playersTop   int
	playersFocus string
)

var playersCmd = &cobra.Command{
	Use:   "players <game-prefix>",
	Short: "Show a stored game's player box score sorted by any column",
	Long: `Show the player box score of a stored game.

Sortable columns: points, fgm, fga, fg_pct, 3pm, 3pa, 3p_pct, ftm, fta, ft_pct,
assists, steals, blocks, fouls. Rows with equal values keep first-appearance order.`,
	Args: cobra.ExactArgs(1),
	RunE: runPlayers,
}

func init() {
	playersCmd.Flags().StringVar(&playersSort, "sort", "", "column to sort by (default from config)")
	playersCmd.Flags().StringVar(&playersOrder, "order", "desc", "sort direction: asc or desc")
	playersCmd.Flags().IntVar(&playersTop, "top", -1, "print only the first N rows (default from config, 0 = all)")
	playersCmd.Flags().StringVar(&playersFocus, "player", "", "highlight player by id or full name")
}

func runPlayers(cmd *cobra.Command, args []string) error {
	sort, err := parseSort(playersSort, playersOrder, model.PlayerAggregate{})
	if err != nil {
		return err
	}

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	g, possessions, err := loadGame(db, args[0])
	if err != nil {
		return err
	}

	rows := ranking.Rows(aggregator.ComputePlayerAggregates(possessions), sort)
	rows = top(rows, playersTop)

	fmt.Fprintf(os.Stdout, "\n%s vs %s  |  sorted by %s\n\n", g.HomeTeamName, g.AwayTeamName, sort)
	report.PrintPlayerTable(os.Stdout, rows, report.TeamNames(*g), playersFocus)
	return nil
}

// parseSort builds a ranking.Sort, rejecting columns the given row type lacks.
func parseSort(field, order string, row ranking.Row) (ranking.Sort, error) {
	if field == "" {
		field = cfg.DefaultSort
	}
	f := model.StatField(field)
	if _, ok := row.SortValue(f); !ok {
		return ranking.Sort{}, fmt.Errorf("unknown sort column: %s", field)
	}
	dir, err := ranking.ParseDirection(order)
	if err != nil {
		return ranking.Sort{}, err
	}
	return ranking.Sort{Field: f, Direction: dir}, nil
}

// top trims rows to n; a negative n falls back to the configured cap.
func top[T any](rows []T, n int) []T {
	if n < 0 {
		n = cfg.TopPlayers
	}
	if n > 0 && n < len(rows) {
		return rows[:n]
	}
	return rows
}
