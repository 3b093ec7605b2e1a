package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/hoopmetrics/internal/filter"
	"github.com/pable/hoopmetrics/internal/report"
)

var possFilter filter.State

var possessionsCmd = &cobra.Command{
	Use:   "possessions <game-prefix>",
	Short: "List a stored game's possessions, optionally filtered",
	Long: `List the possessions of a stored game in recorded order.

All filters are AND-combined; an empty filter imposes no constraint.
Run 'hoopmetrics facets <game-prefix>' to see the values each filter accepts.`,
	Args: cobra.ExactArgs(1),
	RunE: runPossessions,
}

func init() {
	f := possessionsCmd.Flags()
	f.StringVar(&possFilter.Search, "search", "", "case-insensitive text search over outcome, scorer, assister and sets")
	f.StringVar(&possFilter.Quarter, "quarter", "", "quarter number")
	f.StringVar(&possFilter.Outcome, "outcome", "", "outcome, e.g. MADE_3PTS")
	f.StringVar(&possFilter.Team, "team", "", "side in possession: home or away")
	f.StringVar(&possFilter.Player, "player", "", "full name of a player involved in any role")
	f.StringVar(&possFilter.OffensiveSet, "offensive-set", "", "offensive set")
	f.StringVar(&possFilter.DefensiveSet, "defensive-set", "", "defensive set")
	f.StringVar(&possFilter.TimeRange, "time-range", "", "game clock bucket: early, mid or late")
}

func runPossessions(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	g, possessions, err := loadGame(db, args[0])
	if err != nil {
		return err
	}

	matched := filter.Apply(possessions, possFilter, g.HomeTeamID, g.AwayTeamID)
	report.PrintFilterSummary(os.Stdout, possFilter, len(matched), len(possessions))
	report.PrintPossessions(os.Stdout, matched, report.TeamNames(*g))
	return nil
}
