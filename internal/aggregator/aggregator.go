// Package aggregator folds a game's possession list into team and player box scores.
package aggregator

import (
	"github.com/pable/hoopmetrics/internal/model"
)

// ComputeTeamAggregates computes the box score of both sides in one pass.
// The home side is returned first. Possessions whose team is neither side
// are skipped.
func ComputeTeamAggregates(possessions []model.Possession, homeTeamID, awayTeamID, homeTeamName, awayTeamName string) [2]model.TeamAggregate {
	out := [2]model.TeamAggregate{
		{TeamID: homeTeamID, TeamName: homeTeamName},
		{TeamID: awayTeamID, TeamName: awayTeamName},
	}

	for i := range possessions {
		p := &possessions[i]

		var t *model.TeamAggregate
		switch p.Team {
		case homeTeamID:
			t = &out[0]
		case awayTeamID:
			t = &out[1]
		default:
			continue
		}

		t.Possessions++
		t.Points += p.PointsScored

		switch p.Outcome {
		case model.OutcomeMade2, model.OutcomeMissed2,
			model.OutcomeMade3, model.OutcomeMissed3,
			model.OutcomeMadeFT, model.OutcomeMissedFT:
			applyShot(p.Outcome, &t.FGMade, &t.FGAttempted, &t.ThreeMade, &t.ThreeAttempted, &t.FTMade, &t.FTAttempted)
		case model.OutcomeRebound:
			if p.IsOffensiveRebound {
				t.ReboundsOffensive++
			} else {
				t.ReboundsDefensive++
			}
			t.Rebounds++
		case model.OutcomeSteal:
			t.Steals++
		case model.OutcomeBlock:
			t.Blocks++
		case model.OutcomeTurnover:
			t.Turnovers++
		case model.OutcomeFoul, model.OutcomeTechnicalFoul:
			t.Fouls++
		case model.OutcomeCoachChallenge:
			// no box-score counter
		default:
			// unrecognized outcomes contribute points only
		}

		// Assists are counted off the attribution, not the outcome.
		if p.AssistedBy != nil {
			t.Assists++
		}

		if p.PointsScored > 0 {
			if p.OffensiveSet == model.SetTransition || p.OffensiveSet == model.SetFastBreak {
				t.FastBreakPoints += p.PointsScored
			}
			if p.HasPaintTouch {
				t.PointsInPaint += p.PointsScored
			}
			// Flat rule: the flag is on the scoring possession itself.
			if p.IsOffensiveRebound {
				t.SecondChancePoints += p.PointsScored
			}
		}
	}

	return out
}

// ComputeGameAggregates is ComputeTeamAggregates with the team identities taken from g.
func ComputeGameAggregates(g model.Game, possessions []model.Possession) [2]model.TeamAggregate {
	return ComputeTeamAggregates(possessions, g.HomeTeamID, g.AwayTeamID, g.HomeTeamName, g.AwayTeamName)
}

// applyShot applies the made/attempted branching shared by team and player
// folds. A three is also a field goal; free throws never are.
func applyShot(o model.Outcome, fgm, fga, tpm, tpa, ftm, fta *int) {
	switch o {
	case model.OutcomeMade2:
		*fgm++
		*fga++
	case model.OutcomeMissed2:
		*fga++
	case model.OutcomeMade3:
		*tpm++
		*tpa++
		*fgm++
		*fga++
	case model.OutcomeMissed3:
		*tpa++
		*fga++
	case model.OutcomeMadeFT:
		*ftm++
		*fta++
	case model.OutcomeMissedFT:
		*fta++
	default:
	}
}
