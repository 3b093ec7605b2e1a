// Package filter derives facet options from a possession list and evaluates
// the composite possession filter.
package filter

import (
	"strconv"
	"strings"

	"github.com/pable/hoopmetrics/internal/model"
)

// Team selectors.
const (
	SideHome = "home"
	SideAway = "away"
)

// Bucket is a symbolic game-clock range.
type Bucket string

const (
	BucketNone  Bucket = ""
	BucketEarly Bucket = "early"
	BucketMid   Bucket = "mid"
	BucketLate  Bucket = "late"
)

// Bucket thresholds in seconds. Clocks in [earlyBelow, midFrom) fall in no bucket.
const (
	earlyBelow = 300
	midFrom    = 600
	midTo      = 1200

	// Larger components are treated as malformed.
	maxClockMinutes = 9999
)

// State is the active filter. Empty fields impose no constraint; the rest are AND-combined.
type State struct {
	Search       string
	Quarter      string
	Outcome      string
	Team         string // SideHome or SideAway
	Player       string // full display name
	OffensiveSet string
	DefensiveSet string
	TimeRange    string // early, mid or late
}

// ActiveCount returns the number of non-empty fields.
func (s State) ActiveCount() int {
	n := 0
	for _, v := range []string{s.Search, s.Quarter, s.Outcome, s.Team, s.Player, s.OffensiveSet, s.DefensiveSet, s.TimeRange} {
		if v != "" {
			n++
		}
	}
	return n
}

// Apply returns the possessions matching state, in their original order.
func Apply(possessions []model.Possession, state State, homeTeamID, awayTeamID string) []model.Possession {
	m := newMatcher(state, homeTeamID, awayTeamID)
	out := make([]model.Possession, 0, len(possessions))
	for i := range possessions {
		if m.match(&possessions[i]) {
			out = append(out, possessions[i])
		}
	}
	return out
}

type matcher struct {
	State
	search string
	teamID string
}

func newMatcher(s State, homeTeamID, awayTeamID string) matcher {
	m := matcher{State: s, search: strings.ToLower(s.Search)}
	switch s.Team {
	case SideHome:
		m.teamID = homeTeamID
	case SideAway:
		m.teamID = awayTeamID
	}
	return m
}

func (m matcher) match(p *model.Possession) bool {
	if m.search != "" && !strings.Contains(strings.ToLower(searchText(p)), m.search) {
		return false
	}
	if m.Quarter != "" && strconv.Itoa(p.Quarter) != m.Quarter {
		return false
	}
	if m.Outcome != "" && string(p.Outcome) != m.Outcome {
		return false
	}
	if m.Team != "" && (m.teamID == "" || p.Team != m.teamID) {
		return false
	}
	if m.Player != "" && !involves(p, m.Player) {
		return false
	}
	if m.OffensiveSet != "" && p.OffensiveSet != m.OffensiveSet {
		return false
	}
	if m.DefensiveSet != "" && p.DefensiveSet != m.DefensiveSet {
		return false
	}
	if m.TimeRange != "" && string(ClockBucket(p.StartTimeInGame)) != m.TimeRange {
		return false
	}
	return true
}

// searchText is the string free-text search runs against.
func searchText(p *model.Possession) string {
	return strings.Join([]string{
		nameParts(p.Scorer),
		nameParts(p.AssistedBy),
		string(p.Outcome),
		p.OffensiveSet,
		p.DefensiveSet,
	}, " ")
}

func nameParts(ref *model.PlayerRef) string {
	if ref == nil {
		return ""
	}
	return ref.FirstName + " " + ref.LastName
}

// involves reports whether name is the scorer, assister, blocker or stealer.
func involves(p *model.Possession, name string) bool {
	for _, ref := range []*model.PlayerRef{p.Scorer, p.AssistedBy, p.BlockedBy, p.StolenBy} {
		if ref != nil && ref.FullName() == name {
			return true
		}
	}
	return false
}

// ParseClock converts an MM:SS clock to seconds. Malformed input yields 0.
func ParseClock(clock string) int {
	mm, ss, ok := strings.Cut(strings.TrimSpace(clock), ":")
	if !ok {
		return 0
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > maxClockMinutes {
		return 0
	}
	s, err := strconv.Atoi(ss)
	if err != nil || s < 0 || s > maxClockMinutes*60 {
		return 0
	}
	return m*60 + s
}

// ClockBucket classifies a clock string. 300s through 599s belongs to no
// bucket; this matches the dashboard's long-standing behavior and is kept
// until product decides where that range goes.
func ClockBucket(clock string) Bucket {
	secs := ParseClock(clock)
	switch {
	case secs < earlyBelow:
		return BucketEarly
	case secs >= midFrom && secs <= midTo:
		return BucketMid
	case secs > midTo:
		return BucketLate
	default:
		return BucketNone
	}
}
