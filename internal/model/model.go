package model

import (
	"strings"
	"time"
)

// Outcome is the result recorded for a possession.
type Outcome string

const (
	OutcomeMade2          Outcome = "MADE_2PTS"
	OutcomeMissed2        Outcome = "MISSED_2PTS"
	OutcomeMade3          Outcome = "MADE_3PTS"
	OutcomeMissed3        Outcome = "MISSED_3PTS"
	OutcomeMadeFT         Outcome = "MADE_FTS"
	OutcomeMissedFT       Outcome = "MISSED_FTS"
	OutcomeTurnover       Outcome = "TURNOVER"
	OutcomeFoul           Outcome = "FOUL"
	OutcomeRebound        Outcome = "REBOUND"
	OutcomeSteal          Outcome = "STEAL"
	OutcomeBlock          Outcome = "BLOCK"
	OutcomeTechnicalFoul  Outcome = "TECHNICAL_FOUL"
	OutcomeCoachChallenge Outcome = "COACH_CHALLENGE"
)

// Outcomes lists every known outcome in declaration order.
var Outcomes = []Outcome{
	OutcomeMade2, OutcomeMissed2,
	OutcomeMade3, OutcomeMissed3,
	OutcomeMadeFT, OutcomeMissedFT,
	OutcomeTurnover, OutcomeFoul, OutcomeRebound,
	OutcomeSteal, OutcomeBlock,
	OutcomeTechnicalFoul, OutcomeCoachChallenge,
}

// Valid reports whether o is one of the known outcomes.
func (o Outcome) Valid() bool {
	for _, known := range Outcomes {
		if o == known {
			return true
		}
	}
	return false
}

// IsMade reports whether the outcome is one of the scoring outcomes.
func (o Outcome) IsMade() bool {
	return o == OutcomeMade2 || o == OutcomeMade3 || o == OutcomeMadeFT
}

// Points returns the points a possession with this outcome is expected to carry.
// Free-throw trips may score 1 to 3, so MADE_FTS reports the minimum.
func (o Outcome) Points() int {
	switch o {
	case OutcomeMade2:
		return 2
	case OutcomeMade3:
		return 3
	case OutcomeMadeFT:
		return 1
	default:
		return 0
	}
}

// Offensive sets that count toward fast-break points.
const (
	SetTransition = "TRANSITION"
	SetFastBreak  = "FASTBREAK"
)

// MaxPointsPerPossession caps PointsScored.
const MaxPointsPerPossession = 3

// PlayerRef identifies a player on court.
type PlayerRef struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Number    int    `json:"number,omitempty"`
	TeamID    string `json:"teamId,omitempty"`
}

// FullName is the display name used by the player facet and filter.
func (p *PlayerRef) FullName() string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Possession is one offensive/defensive episode. Possessions are never
// modified once recorded.
type Possession struct {
	ID              string  `json:"id"`
	GameID          string  `json:"gameId"`
	Quarter         int     `json:"quarter"`
	StartTimeInGame string  `json:"startTimeInGame"` // MM:SS, counting down within the period
	DurationSeconds int     `json:"durationSeconds"`
	Outcome         Outcome `json:"outcome"`
	PointsScored    int     `json:"pointsScored"`

	Team     string `json:"team"`
	Opponent string `json:"opponent"`

	IsOffensiveRebound bool   `json:"isOffensiveRebound"`
	OffensiveSet       string `json:"offensiveSet,omitempty"`
	DefensiveSet       string `json:"defensiveSet,omitempty"`

	Scorer     *PlayerRef `json:"scorer,omitempty"`
	AssistedBy *PlayerRef `json:"assistedBy,omitempty"`
	BlockedBy  *PlayerRef `json:"blockedBy,omitempty"`
	StolenBy   *PlayerRef `json:"stolenBy,omitempty"`
	FouledBy   *PlayerRef `json:"fouledBy,omitempty"`

	HasPaintTouch bool      `json:"hasPaintTouch"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Game carries the two team identities that accompany a possession list.
type Game struct {
	ID           string
	HomeTeamID   string
	HomeTeamName string
	AwayTeamID   string
	AwayTeamName string
	PlayedAt     string
}

// GameSummary is a lightweight record for list commands.
type GameSummary struct {
	Game
	Possessions int
	HomePoints  int
	AwayPoints  int
}

// ---- Derived aggregates ----

// TeamAggregate is the box score of one side.
type TeamAggregate struct {
	TeamID   string
	TeamName string

	Points      int
	Possessions int

	FGMade, FGAttempted       int
	ThreeMade, ThreeAttempted int
	FTMade, FTAttempted       int

	Rebounds, ReboundsOffensive, ReboundsDefensive int

	Assists, Steals, Blocks int
	Turnovers, Fouls        int

	FastBreakPoints    int
	PointsInPaint      int
	SecondChancePoints int
}

func (t *TeamAggregate) FGPct() int    { return Percentage(t.FGMade, t.FGAttempted) }
func (t *TeamAggregate) ThreePct() int { return Percentage(t.ThreeMade, t.ThreeAttempted) }
func (t *TeamAggregate) FTPct() int    { return Percentage(t.FTMade, t.FTAttempted) }

// PPP is points per possession.
func (t *TeamAggregate) PPP() float64 { return PerPossession(t.Points, t.Possessions) }

// PlayerAggregate holds one player's box score for a single game. It exists
// only for players who appear in at least one attribution role.
type PlayerAggregate struct {
	PlayerID  string
	FirstName string
	LastName  string
	Number    int
	TeamID    string

	Points int

	FGMade, FGAttempted       int
	ThreeMade, ThreeAttempted int
	FTMade, FTAttempted       int

	Assists, Steals, Blocks, Fouls int
}

// Name returns the player's display name.
func (a *PlayerAggregate) Name() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

func (a *PlayerAggregate) FGPct() int    { return Percentage(a.FGMade, a.FGAttempted) }
func (a *PlayerAggregate) ThreePct() int { return Percentage(a.ThreeMade, a.ThreeAttempted) }
func (a *PlayerAggregate) FTPct() int    { return Percentage(a.FTMade, a.FTAttempted) }

// SeasonRow is a player's totals summed across stored games.
type SeasonRow struct {
	PlayerID string
	Name     string
	TeamID   string
	Games    int

	Points                    int
	FGMade, FGAttempted       int
	ThreeMade, ThreeAttempted int
	FTMade, FTAttempted       int
	Assists, Steals, Blocks   int
	Fouls                     int
}

func (r *SeasonRow) PPG() float64 { return PerGame(r.Points, r.Games) }
func (r *SeasonRow) APG() float64 { return PerGame(r.Assists, r.Games) }
func (r *SeasonRow) SPG() float64 { return PerGame(r.Steals, r.Games) }
func (r *SeasonRow) BPG() float64 { return PerGame(r.Blocks, r.Games) }

func (r *SeasonRow) FGPct() int    { return Percentage(r.FGMade, r.FGAttempted) }
func (r *SeasonRow) ThreePct() int { return Percentage(r.ThreeMade, r.ThreeAttempted) }
func (r *SeasonRow) FTPct() int    { return Percentage(r.FTMade, r.FTAttempted) }
