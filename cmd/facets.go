package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/hoopmetrics/internal/filter"
	"github.com/pable/hoopmetrics/internal/report"
)

var facetsCmd = &cobra.Command{
	Use:   "facets <game-prefix>",
	Short: "Show the distinct filter values present in a stored game",
	Args:  cobra.ExactArgs(1),
	RunE:  runFacets,
}

func runFacets(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	g, possessions, err := loadGame(db, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "\n%s vs %s  |  %d possessions\n\n", g.HomeTeamName, g.AwayTeamName, len(possessions))
	report.PrintFacets(os.Stdout, filter.DeriveOptions(possessions))
	fmt.Fprintf(os.Stdout, "\nteam: %s (%s), %s (%s)\ntime-range: %s, %s, %s\n",
		filter.SideHome, g.HomeTeamName, filter.SideAway, g.AwayTeamName,
		filter.BucketEarly, filter.BucketMid, filter.BucketLate)
	return nil
}
