package aggregator

import (
	"slices"

	"github.com/pable/hoopmetrics/internal/model"
)

// ComputeSeasonRows sums per-game player box scores into one row per player.
// Each inner slice is one game's output of ComputePlayerAggregates. Rows are
// ordered by points per game descending, ties in first-appearance order.
func ComputeSeasonRows(games [][]model.PlayerAggregate) []model.SeasonRow {
	index := make(map[string]int)
	var rows []model.SeasonRow

	for _, game := range games {
		for _, a := range game {
			key := a.PlayerID
			if key == "" {
				key = "name:" + a.Name()
			}
			i, ok := index[key]
			if !ok {
				i = len(rows)
				index[key] = i
				rows = append(rows, model.SeasonRow{
					PlayerID: a.PlayerID,
					Name:     a.Name(),
					TeamID:   a.TeamID,
				})
			}
			r := &rows[i]
			r.Games++
			r.Points += a.Points
			r.FGMade += a.FGMade
			r.FGAttempted += a.FGAttempted
			r.ThreeMade += a.ThreeMade
			r.ThreeAttempted += a.ThreeAttempted
			r.FTMade += a.FTMade
			r.FTAttempted += a.FTAttempted
			r.Assists += a.Assists
			r.Steals += a.Steals
			r.Blocks += a.Blocks
			r.Fouls += a.Fouls
		}
	}

	slices.SortStableFunc(rows, func(a, b model.SeasonRow) int {
		pa, pb := a.PPG(), b.PPG()
		switch {
		case pa > pb:
			return -1
		case pa < pb:
			return 1
		default:
			return 0
		}
	})
	return rows
}
