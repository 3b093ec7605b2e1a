// Package ingest reads game-tracking exports and checks them against the
// possession invariants before they reach storage.
package ingest

import (
	"bytes"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/pable/hoopmetrics/internal/model"
)

var (
	ErrDecode              = errors.New("failed to decode game file")
	ErrMissingTeams        = errors.New("game must name a home and an away team")
	ErrSameTeam            = errors.New("possession team equals opponent")
	ErrForeignTeam         = errors.New("possession team is not playing in this game")
	ErrUnknownOutcome      = errors.New("unknown outcome")
	ErrPointsMismatch      = errors.New("points inconsistent with outcome")
	ErrForeignPlayer       = errors.New("attributed player belongs to the wrong side")
	ErrBadDuration         = errors.New("negative possession duration")
	ErrBadQuarter          = errors.New("quarter must be 1 or greater")
	ErrDuplicatePossession = errors.New("possession id used more than once")
)

type teamRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// File is the on-disk shape of a game export.
type File struct {
	ID          string             `json:"id"`
	PlayedAt    string             `json:"playedAt"`
	Home        teamRef            `json:"homeTeam"`
	Away        teamRef            `json:"awayTeam"`
	Possessions []model.Possession `json:"possessions"`
}

// Game is a decoded, validated export.
type Game struct {
	Game        model.Game
	Possessions []model.Possession
}

// Decode is a generic JSON decode that tags failures with ErrDecode.
func Decode[T any](r io.Reader) (T, error) {
	var value T
	if err := json.NewDecoder(r).Decode(&value); err != nil {
		return value, errors.Join(err, ErrDecode)
	}
	return value, nil
}

// ReadFile loads and validates the export at path. When the export has no
// id, the SHA-256 of the file becomes the game id so re-imports are idempotent.
func ReadFile(path string) (*Game, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read game file: %w", err)
	}
	g, err := Read(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if g.Game.ID == "" {
		hash := fmt.Sprintf("%x", sha256.Sum256(data))
		g.Game.ID = hash
		for i := range g.Possessions {
			g.Possessions[i].GameID = hash
		}
	}
	return g, nil
}

// Read decodes and validates an export from r.
func Read(r io.Reader) (*Game, error) {
	file, err := Decode[File](r)
	if err != nil {
		return nil, err
	}
	return Build(file)
}

// Build validates file and fills in defaults: possession ids, game ids and
// recording times. All invariant violations are reported together.
func Build(file File) (*Game, error) {
	g := &Game{
		Game: model.Game{
			ID:           file.ID,
			HomeTeamID:   file.Home.ID,
			HomeTeamName: file.Home.Name,
			AwayTeamID:   file.Away.ID,
			AwayTeamName: file.Away.Name,
			PlayedAt:     file.PlayedAt,
		},
	}
	if g.Game.HomeTeamID == "" || g.Game.AwayTeamID == "" || g.Game.HomeTeamID == g.Game.AwayTeamID {
		return nil, ErrMissingTeams
	}

	now := time.Now().UTC()
	var errs []error
	seen := make(map[string]int, len(file.Possessions))
	g.Possessions = make([]model.Possession, 0, len(file.Possessions))
	for i, p := range file.Possessions {
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		if first, ok := seen[p.ID]; ok {
			errs = append(errs, fmt.Errorf("possession %d (%s): %w, first at %d", i, p.ID, ErrDuplicatePossession, first))
		} else {
			seen[p.ID] = i
		}
		p.GameID = file.ID
		if p.CreatedAt.IsZero() {
			// Keep export order when the tracker did not stamp possessions.
			p.CreatedAt = now.Add(time.Duration(i) * time.Millisecond)
		}
		if err := Validate(p, g.Game); err != nil {
			errs = append(errs, fmt.Errorf("possession %d (%s): %w", i, p.ID, err))
		}
		g.Possessions = append(g.Possessions, p)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return g, nil
}

// Validate checks one possession against the model invariants.
func Validate(p model.Possession, g model.Game) error {
	var errs []error

	if p.Team == p.Opponent {
		errs = append(errs, ErrSameTeam)
	}
	if !playing(g, p.Team) || !playing(g, p.Opponent) {
		errs = append(errs, ErrForeignTeam)
	}
	if p.Quarter < 1 {
		errs = append(errs, ErrBadQuarter)
	}
	if p.DurationSeconds < 0 {
		errs = append(errs, ErrBadDuration)
	}
	if !p.Outcome.Valid() {
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownOutcome, p.Outcome))
	}
	if err := checkPoints(p); err != nil {
		errs = append(errs, err)
	}

	for _, c := range []struct {
		role string
		ref  *model.PlayerRef
		side string
	}{
		{"scorer", p.Scorer, p.Team},
		{"assistedBy", p.AssistedBy, p.Team},
		{"blockedBy", p.BlockedBy, p.Opponent},
		{"stolenBy", p.StolenBy, p.Opponent},
		{"fouledBy", p.FouledBy, p.Opponent},
	} {
		if c.ref != nil && c.ref.TeamID != "" && c.ref.TeamID != c.side {
			errs = append(errs, fmt.Errorf("%w: %s %s plays for %s", ErrForeignPlayer, c.role, c.ref.FullName(), c.ref.TeamID))
		}
	}

	return errors.Join(errs...)
}

func checkPoints(p model.Possession) error {
	if p.PointsScored < 0 || p.PointsScored > model.MaxPointsPerPossession {
		return fmt.Errorf("%w: %d points", ErrPointsMismatch, p.PointsScored)
	}
	switch {
	case !p.Outcome.IsMade() && p.PointsScored != 0:
		return fmt.Errorf("%w: %s with %d points", ErrPointsMismatch, p.Outcome, p.PointsScored)
	case p.Outcome == model.OutcomeMadeFT && p.PointsScored < 1:
		return fmt.Errorf("%w: %s with %d points", ErrPointsMismatch, p.Outcome, p.PointsScored)
	case p.Outcome != model.OutcomeMadeFT && p.Outcome.IsMade() && p.PointsScored != p.Outcome.Points():
		return fmt.Errorf("%w: %s with %d points", ErrPointsMismatch, p.Outcome, p.PointsScored)
	}
	return nil
}

func playing(g model.Game, teamID string) bool {
	return teamID == g.HomeTeamID || teamID == g.AwayTeamID
}
