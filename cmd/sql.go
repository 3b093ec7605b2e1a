package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pable/hoopmetrics/internal/report"
)

var sqlCmd = &cobra.Command{
	Use:   "sql <query>",
	Short: "Run a raw SQL query against the games database",
	Long: `Run an arbitrary SQL query against the games database and print results as a table.

Schema overview:
  games(id, home_team_id, home_team_name, away_team_id, away_team_name, played_at)
  possessions(game_id, id, seq, quarter, start_time_in_game, duration_seconds,
    outcome, points_scored, team, opponent, is_offensive_rebound,
    offensive_set, defensive_set, has_paint_touch, created_at)
  attributions(game_id, possession_id, role, player_id, first_name, last_name, number, team_id)

Possession ids are unique per game only; join on both columns:
  ... FROM possessions p JOIN attributions a ON a.game_id = p.game_id AND a.possession_id = p.id

role is one of scorer, assisted_by, blocked_by, stolen_by, fouled_by.
Example: SELECT last_name, COUNT(*) FROM attributions WHERE role = 'assisted_by' GROUP BY player_id`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSQL,
}

func runSQL(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	query := strings.Join(args, " ")
	slog.Debug("Running query", slog.String("query", query))
	cols, rows, err := db.QueryRaw(query)
	if err != nil {
		return fmt.Errorf("sql: %w", err)
	}
	report.PrintQueryResult(os.Stdout, cols, rows)
	return nil
}
