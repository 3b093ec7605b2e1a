package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/hoopmetrics/internal/aggregator"
	"github.com/pable/hoopmetrics/internal/report"
	"github.com/pable/hoopmetrics/internal/storage"
)

var boxFocus string

var boxCmd = &cobra.Command{
	Use:   "box <game-prefix>",
	Short: "Show a stored game's team and player box score",
	Args:  cobra.ExactArgs(1),
	RunE:  runBox,
}

func init() {
	boxCmd.Flags().StringVar(&boxFocus, "player", "", "highlight player by id or full name")
}

func runBox(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()
	return printBox(db, args[0], boxFocus)
}

func printBox(db *storage.DB, prefix, focus string) error {
	g, possessions, err := loadGame(db, prefix)
	if err != nil {
		return err
	}
	teams := aggregator.ComputeGameAggregates(*g, possessions)
	report.PrintGameHeader(os.Stdout, *g, teams)
	report.PrintTeamTable(os.Stdout, teams)
	fmt.Fprintln(os.Stdout)
	report.PrintPlayerTable(os.Stdout, aggregator.ComputePlayerAggregates(possessions), report.TeamNames(*g), focus)
	return nil
}
