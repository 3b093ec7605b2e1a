package filter

import (
	"slices"
	"strconv"

	"github.com/maruel/natural"

	"github.com/pable/hoopmetrics/internal/model"
)

// Options holds the distinct facet values present in a possession list.
type Options struct {
	Quarters      []int
	Outcomes      []model.Outcome
	OffensiveSets []string
	DefensiveSets []string
	Players       []string
}

// DeriveOptions collects the distinct, sorted values of every facet.
// Players are deduplicated by display name across the scorer, assister,
// blocker and stealer roles.
func DeriveOptions(possessions []model.Possession) Options {
	quarters := make(map[int]struct{})
	outcomes := make(map[model.Outcome]struct{})
	offSets := make(map[string]struct{})
	defSets := make(map[string]struct{})
	players := make(map[string]struct{})

	for i := range possessions {
		p := &possessions[i]
		quarters[p.Quarter] = struct{}{}
		if p.Outcome != "" {
			outcomes[p.Outcome] = struct{}{}
		}
		if p.OffensiveSet != "" {
			offSets[p.OffensiveSet] = struct{}{}
		}
		if p.DefensiveSet != "" {
			defSets[p.DefensiveSet] = struct{}{}
		}
		for _, ref := range []*model.PlayerRef{p.Scorer, p.AssistedBy, p.BlockedBy, p.StolenBy} {
			if name := ref.FullName(); name != "" {
				players[name] = struct{}{}
			}
		}
	}

	opts := Options{
		Quarters:      keys(quarters),
		Outcomes:      keys(outcomes),
		OffensiveSets: keys(offSets),
		DefensiveSets: keys(defSets),
		Players:       keys(players),
	}
	slices.Sort(opts.Quarters)
	slices.Sort(opts.Outcomes)
	slices.SortFunc(opts.OffensiveSets, naturalCmp)
	slices.SortFunc(opts.DefensiveSets, naturalCmp)
	slices.SortFunc(opts.Players, naturalCmp)
	return opts
}

// QuarterValues returns the quarters as the strings State.Quarter expects.
func (o Options) QuarterValues() []string {
	out := make([]string, len(o.Quarters))
	for i, q := range o.Quarters {
		out[i] = strconv.Itoa(q)
	}
	return out
}

func keys[K comparable](m map[K]struct{}) []K {
	out := make([]K, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func naturalCmp(a, b string) int {
	switch {
	case natural.Less(a, b):
		return -1
	case natural.Less(b, a):
		return 1
	default:
		return 0
	}
}
