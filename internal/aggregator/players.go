package aggregator

import (
	"slices"

	"github.com/pable/hoopmetrics/internal/model"
)

// playerArena maps a player identity to its accumulator. Accumulators are
// kept in first-appearance order so ties can be broken by it.
type playerArena struct {
	index map[string]int
	accs  []model.PlayerAggregate
}

func newPlayerArena() *playerArena {
	return &playerArena{index: make(map[string]int)}
}

// get returns the accumulator for ref, creating it on first appearance.
func (a *playerArena) get(ref *model.PlayerRef, teamID string) *model.PlayerAggregate {
	key := playerKey(ref)
	if i, ok := a.index[key]; ok {
		return &a.accs[i]
	}
	if ref.TeamID != "" {
		teamID = ref.TeamID
	}
	a.index[key] = len(a.accs)
	a.accs = append(a.accs, model.PlayerAggregate{
		PlayerID:  ref.ID,
		FirstName: ref.FirstName,
		LastName:  ref.LastName,
		Number:    ref.Number,
		TeamID:    teamID,
	})
	return &a.accs[len(a.accs)-1]
}

// playerKey falls back to the display name for refs recorded without an id.
func playerKey(ref *model.PlayerRef) string {
	if ref.ID != "" {
		return ref.ID
	}
	return "name:" + ref.FullName()
}

// ComputePlayerAggregates computes one box score per player appearing in any
// attribution role, ordered by points descending. Ties keep first-appearance order.
func ComputePlayerAggregates(possessions []model.Possession) []model.PlayerAggregate {
	arena := newPlayerArena()

	for i := range possessions {
		p := &possessions[i]

		if p.Scorer != nil {
			acc := arena.get(p.Scorer, p.Team)
			acc.Points += p.PointsScored
			applyShot(p.Outcome, &acc.FGMade, &acc.FGAttempted, &acc.ThreeMade, &acc.ThreeAttempted, &acc.FTMade, &acc.FTAttempted)
		}
		if p.AssistedBy != nil {
			arena.get(p.AssistedBy, p.Team).Assists++
		}
		// Defensive roles belong to the opponent.
		if p.BlockedBy != nil {
			arena.get(p.BlockedBy, p.Opponent).Blocks++
		}
		if p.StolenBy != nil {
			arena.get(p.StolenBy, p.Opponent).Steals++
		}
		if p.FouledBy != nil {
			arena.get(p.FouledBy, p.Opponent).Fouls++
		}
	}

	out := arena.accs
	slices.SortStableFunc(out, func(a, b model.PlayerAggregate) int {
		return b.Points - a.Points
	})
	return out
}
