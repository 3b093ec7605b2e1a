package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pable/hoopmetrics/internal/filter"
	"github.com/pable/hoopmetrics/internal/model"
)

const (
	home = "home-id"
	away = "away-id"
)

var (
	ana = &model.PlayerRef{ID: "1", FirstName: "Ana", LastName: "Reyes"}
	bea = &model.PlayerRef{ID: "2", FirstName: "Bea", LastName: "Stone"}
	cam = &model.PlayerRef{ID: "3", FirstName: "Cam", LastName: "Ortiz"}
	dee = &model.PlayerRef{ID: "4", FirstName: "Dee", LastName: "Park"}
)

func fixture() []model.Possession {
	return []model.Possession{
		{ID: "a", Quarter: 1, StartTimeInGame: "11:40", Team: home, Opponent: away, Outcome: model.OutcomeMade3, PointsScored: 3,
			Scorer: ana, AssistedBy: bea, OffensiveSet: "PICK_AND_ROLL", DefensiveSet: "MAN"},
		{ID: "b", Quarter: 2, StartTimeInGame: "04:59", Team: away, Opponent: home, Outcome: model.OutcomeMissed2,
			Scorer: cam, BlockedBy: ana, OffensiveSet: "ISO", DefensiveSet: "ZONE_2_3"},
		{ID: "c", Quarter: 3, StartTimeInGame: "10:00", Team: home, Opponent: away, Outcome: model.OutcomeTurnover,
			StolenBy: dee, OffensiveSet: "TRANSITION"},
		{ID: "d", Quarter: 2, StartTimeInGame: "05:30", Team: home, Opponent: away, Outcome: model.OutcomeMade2, PointsScored: 2,
			Scorer: bea, DefensiveSet: "MAN"},
		{ID: "e", Quarter: 4, StartTimeInGame: "garbage", Team: away, Opponent: home, Outcome: model.OutcomeRebound,
			IsOffensiveRebound: true},
		{ID: "f", Quarter: 2, StartTimeInGame: "20:01", Team: away, Opponent: home, Outcome: model.OutcomeMadeFT, PointsScored: 1,
			Scorer: dee, DefensiveSet: "ZONE_10"},
	}
}

func ids(ps []model.Possession) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func TestApply_EmptyStateMatchesAll(t *testing.T) {
	ps := fixture()
	got := filter.Apply(ps, filter.State{}, home, away)
	assert.Equal(t, ids(ps), ids(got))
}

func TestApply_QuarterKeepsOrder(t *testing.T) {
	got := filter.Apply(fixture(), filter.State{Quarter: "2"}, home, away)
	assert.Equal(t, []string{"b", "d", "f"}, ids(got))
}

func TestApply_Search(t *testing.T) {
	cases := map[string][]string{
		"ana":         {"a"}, // scorer name only; blocker is not searchable
		"STONE":       {"a", "d"},
		"bea stone":   {"a", "d"},
		"made":        {"a", "d", "f"},
		"zone":        {"b", "f"},
		"transition":  {"c"},
		"nobody here": {},
	}
	for term, want := range cases {
		got := filter.Apply(fixture(), filter.State{Search: term}, home, away)
		assert.Equal(t, want, ids(got), "search %q", term)
	}
}

func TestApply_Team(t *testing.T) {
	assert.Equal(t, []string{"a", "c", "d"}, ids(filter.Apply(fixture(), filter.State{Team: filter.SideHome}, home, away)))
	assert.Equal(t, []string{"b", "e", "f"}, ids(filter.Apply(fixture(), filter.State{Team: filter.SideAway}, home, away)))
	assert.Empty(t, filter.Apply(fixture(), filter.State{Team: "neutral"}, home, away))
}

func TestApply_PlayerAnyRole(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, ids(filter.Apply(fixture(), filter.State{Player: "Ana Reyes"}, home, away)))
	assert.Equal(t, []string{"c", "f"}, ids(filter.Apply(fixture(), filter.State{Player: "Dee Park"}, home, away)))
	assert.Empty(t, filter.Apply(fixture(), filter.State{Player: "Ana"}, home, away))
}

func TestApply_OutcomeAndSets(t *testing.T) {
	assert.Equal(t, []string{"c"}, ids(filter.Apply(fixture(), filter.State{Outcome: string(model.OutcomeTurnover)}, home, away)))
	assert.Equal(t, []string{"b"}, ids(filter.Apply(fixture(), filter.State{OffensiveSet: "ISO"}, home, away)))
	assert.Equal(t, []string{"a", "d"}, ids(filter.Apply(fixture(), filter.State{DefensiveSet: "MAN"}, home, away)))
}

func TestApply_TimeRange(t *testing.T) {
	// "garbage" parses as 0s and lands in early.
	assert.Equal(t, []string{"b", "e"}, ids(filter.Apply(fixture(), filter.State{TimeRange: "early"}, home, away)))
	assert.Equal(t, []string{"a", "c"}, ids(filter.Apply(fixture(), filter.State{TimeRange: "mid"}, home, away)))
	assert.Equal(t, []string{"f"}, ids(filter.Apply(fixture(), filter.State{TimeRange: "late"}, home, away)))
	assert.Empty(t, filter.Apply(fixture(), filter.State{TimeRange: "overtime"}, home, away))
}

func TestApply_Monotonic(t *testing.T) {
	ps := fixture()
	states := []filter.State{
		{Quarter: "2"},
		{Quarter: "2", Team: filter.SideAway},
		{Quarter: "2", Team: filter.SideAway, Search: "dee"},
		{Quarter: "2", Team: filter.SideAway, Search: "dee", TimeRange: "mid"},
	}
	prev := ids(ps)
	for _, s := range states {
		got := ids(filter.Apply(ps, s, home, away))
		assert.Subset(t, prev, got, "state %+v", s)
		assert.LessOrEqual(t, len(got), len(prev))
		prev = got
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	ps := fixture()
	before := ids(ps)
	_ = filter.Apply(ps, filter.State{Quarter: "3"}, home, away)
	assert.Equal(t, before, ids(ps))
}

func TestApply_SearchSkipsClockAndDefenders(t *testing.T) {
	assert.Empty(t, filter.Apply(fixture(), filter.State{Search: "11:40"}, home, away))
	// Dee only appears as a stealer or as the scorer of "f".
	assert.Equal(t, []string{"f"}, ids(filter.Apply(fixture(), filter.State{Search: "dee"}, home, away)))
}

func TestApply_SinglePossession(t *testing.T) {
	ps := fixture()[:1]
	assert.Len(t, filter.Apply(ps, filter.State{Quarter: "1", Player: "Bea Stone"}, home, away), 1)
	assert.Empty(t, filter.Apply(ps, filter.State{Quarter: "1", Team: filter.SideAway}, home, away))
}

func TestActiveCount(t *testing.T) {
	s := filter.State{}
	assert.Equal(t, 0, s.ActiveCount())

	s.Quarter = "2"
	s.Search = "ana"
	s.TimeRange = "late"
	assert.Equal(t, 3, s.ActiveCount())
	assert.Equal(t, 0, filter.State{}.ActiveCount())
}

func TestClockBucket(t *testing.T) {
	cases := []struct {
		clock string
		want  filter.Bucket
	}{
		{"04:59", filter.BucketEarly},
		{"00:00", filter.BucketEarly},
		{"05:00", filter.BucketNone},
		{"05:30", filter.BucketNone},
		{"09:59", filter.BucketNone},
		{"10:00", filter.BucketMid},
		{"20:00", filter.BucketMid},
		{"20:01", filter.BucketLate},
		{"", filter.BucketEarly},
		{"12", filter.BucketEarly},
		{"ab:cd", filter.BucketEarly},
		{"-3:10", filter.BucketEarly},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, filter.ClockBucket(c.clock), "clock %q", c.clock)
	}
}

func TestParseClock(t *testing.T) {
	assert.Equal(t, 299, filter.ParseClock("04:59"))
	assert.Equal(t, 600, filter.ParseClock("10:00"))
	assert.Equal(t, 330, filter.ParseClock(" 05:30 "))
	assert.Equal(t, 0, filter.ParseClock("5:xx"))

	// Oversized components would overflow; they count as malformed.
	assert.Equal(t, 0, filter.ParseClock("153722867280912931:00"))
	assert.Equal(t, 0, filter.ParseClock("00:9223372036854775807"))
	assert.Equal(t, 0, filter.ParseClock("10000:00"))
	assert.Equal(t, 9999*60, filter.ParseClock("9999:00"))
	assert.Equal(t, filter.BucketLate, filter.ClockBucket("9999:00"))
}

func TestDeriveOptions(t *testing.T) {
	opts := filter.DeriveOptions(fixture())

	assert.Equal(t, []int{1, 2, 3, 4}, opts.Quarters)
	assert.Equal(t, []string{"1", "2", "3", "4"}, opts.QuarterValues())
	assert.Equal(t, []model.Outcome{
		model.OutcomeMade2, model.OutcomeMade3, model.OutcomeMadeFT,
		model.OutcomeMissed2, model.OutcomeRebound, model.OutcomeTurnover,
	}, opts.Outcomes)
	assert.Equal(t, []string{"ISO", "PICK_AND_ROLL", "TRANSITION"}, opts.OffensiveSets)
	// Natural order puts ZONE_2_3 before ZONE_10.
	assert.Equal(t, []string{"MAN", "ZONE_2_3", "ZONE_10"}, opts.DefensiveSets)
	assert.Equal(t, []string{"Ana Reyes", "Bea Stone", "Cam Ortiz", "Dee Park"}, opts.Players)
}

func TestDeriveOptions_DedupesByName(t *testing.T) {
	twin := &model.PlayerRef{ID: "99", FirstName: "Ana", LastName: "Reyes"}
	ps := []model.Possession{
		{Quarter: 1, Scorer: ana},
		{Quarter: 1, StolenBy: twin, FouledBy: &model.PlayerRef{FirstName: "Only", LastName: "Fouler"}},
	}
	opts := filter.DeriveOptions(ps)
	require.Len(t, opts.Players, 1)
	assert.Equal(t, "Ana Reyes", opts.Players[0])
	assert.Empty(t, opts.OffensiveSets)
}
