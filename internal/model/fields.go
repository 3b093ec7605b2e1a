package model

// StatField names a numeric column of a player row.
type StatField string

const (
	StatPoints         StatField = "points"
	StatFGMade         StatField = "fgm"
	StatFGAttempted    StatField = "fga"
	StatFGPct          StatField = "fg_pct"
	StatThreeMade      StatField = "3pm"
	StatThreeAttempted StatField = "3pa"
	StatThreePct       StatField = "3p_pct"
	StatFTMade         StatField = "ftm"
	StatFTAttempted    StatField = "fta"
	StatFTPct          StatField = "ft_pct"
	StatAssists        StatField = "assists"
	StatSteals         StatField = "steals"
	StatBlocks         StatField = "blocks"
	StatFouls          StatField = "fouls"
	StatGames          StatField = "games"
	StatPPG            StatField = "ppg"
	StatAPG            StatField = "apg"
	StatSPG            StatField = "spg"
	StatBPG            StatField = "bpg"
)

// SortValue returns the numeric value of field for a game box-score row.
func (a PlayerAggregate) SortValue(field StatField) (float64, bool) {
	switch field {
	case StatPoints:
		return float64(a.Points), true
	case StatFGMade:
		return float64(a.FGMade), true
	case StatFGAttempted:
		return float64(a.FGAttempted), true
	case StatFGPct:
		return float64(a.FGPct()), true
	case StatThreeMade:
		return float64(a.ThreeMade), true
	case StatThreeAttempted:
		return float64(a.ThreeAttempted), true
	case StatThreePct:
		return float64(a.ThreePct()), true
	case StatFTMade:
		return float64(a.FTMade), true
	case StatFTAttempted:
		return float64(a.FTAttempted), true
	case StatFTPct:
		return float64(a.FTPct()), true
	case StatAssists:
		return float64(a.Assists), true
	case StatSteals:
		return float64(a.Steals), true
	case StatBlocks:
		return float64(a.Blocks), true
	case StatFouls:
		return float64(a.Fouls), true
	default:
		return 0, false
	}
}

// SortValue returns the numeric value of field for a season row.
func (r SeasonRow) SortValue(field StatField) (float64, bool) {
	switch field {
	case StatGames:
		return float64(r.Games), true
	case StatPoints:
		return float64(r.Points), true
	case StatPPG:
		return r.PPG(), true
	case StatAPG:
		return r.APG(), true
	case StatSPG:
		return r.SPG(), true
	case StatBPG:
		return r.BPG(), true
	case StatFGMade:
		return float64(r.FGMade), true
	case StatFGAttempted:
		return float64(r.FGAttempted), true
	case StatFGPct:
		return float64(r.FGPct()), true
	case StatThreeMade:
		return float64(r.ThreeMade), true
	case StatThreeAttempted:
		return float64(r.ThreeAttempted), true
	case StatThreePct:
		return float64(r.ThreePct()), true
	case StatFTMade:
		return float64(r.FTMade), true
	case StatFTAttempted:
		return float64(r.FTAttempted), true
	case StatFTPct:
		return float64(r.FTPct()), true
	case StatAssists:
		return float64(r.Assists), true
	case StatSteals:
		return float64(r.Steals), true
	case StatBlocks:
		return float64(r.Blocks), true
	case StatFouls:
		return float64(r.Fouls), true
	default:
		return 0, false
	}
}
