package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/pable/hoopmetrics/internal/model"
)

// Attribution roles as stored in the attributions table.
const (
	roleScorer     = "scorer"
	roleAssistedBy = "assisted_by"
	roleBlockedBy  = "blocked_by"
	roleStolenBy   = "stolen_by"
	roleFouledBy   = "fouled_by"
)

// GameExists returns true if a game with the given id is already stored.
func (db *DB) GameExists(id string) (bool, error) {
	var count int
	err := db.conn.QueryRow("SELECT COUNT(1) FROM games WHERE id = ?", id).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// InsertGame stores a game and its possessions in one transaction. The
// game's previous possessions are dropped first, so re-importing the same
// export is idempotent.
func (db *DB) InsertGame(g model.Game, possessions []model.Possession) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Replacing a game drops its old possessions first.
	if _, err := tx.Exec("DELETE FROM possessions WHERE game_id = ?", g.ID); err != nil {
		return fmt.Errorf("clear possessions: %w", err)
	}
	if _, err := tx.Exec(`
		INSERT INTO games(id, home_team_id, home_team_name, away_team_id, away_team_name, played_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			home_team_id = excluded.home_team_id, home_team_name = excluded.home_team_name,
			away_team_id = excluded.away_team_id, away_team_name = excluded.away_team_name,
			played_at = excluded.played_at`,
		g.ID, g.HomeTeamID, g.HomeTeamName, g.AwayTeamID, g.AwayTeamName, g.PlayedAt,
	); err != nil {
		return fmt.Errorf("insert game: %w", err)
	}

	pstmt, err := tx.Prepare(`
		INSERT INTO possessions(
			id, game_id, seq, quarter, start_time_in_game, duration_seconds,
			outcome, points_scored, team, opponent,
			is_offensive_rebound, offensive_set, defensive_set, has_paint_touch, created_at
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer pstmt.Close()

	astmt, err := tx.Prepare(`
		INSERT INTO attributions(game_id, possession_id, role, player_id, first_name, last_name, number, team_id)
		VALUES (?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer astmt.Close()

	for i, p := range possessions {
		_, err = pstmt.Exec(
			p.ID, g.ID, i, p.Quarter, p.StartTimeInGame, p.DurationSeconds,
			string(p.Outcome), p.PointsScored, p.Team, p.Opponent,
			boolInt(p.IsOffensiveRebound), p.OffensiveSet, p.DefensiveSet, boolInt(p.HasPaintTouch),
			p.CreatedAt.UTC().Format(time.RFC3339Nano),
		)
		if err != nil {
			return fmt.Errorf("insert possession %s: %w", p.ID, err)
		}
		for role, ref := range attributionsOf(&p) {
			if _, err := astmt.Exec(g.ID, p.ID, role, ref.ID, ref.FirstName, ref.LastName, ref.Number, ref.TeamID); err != nil {
				return fmt.Errorf("insert %s for possession %s: %w", role, p.ID, err)
			}
		}
	}
	return tx.Commit()
}

func attributionsOf(p *model.Possession) map[string]*model.PlayerRef {
	out := make(map[string]*model.PlayerRef, 5)
	for role, ref := range map[string]*model.PlayerRef{
		roleScorer:     p.Scorer,
		roleAssistedBy: p.AssistedBy,
		roleBlockedBy:  p.BlockedBy,
		roleStolenBy:   p.StolenBy,
		roleFouledBy:   p.FouledBy,
	} {
		if ref != nil {
			out[role] = ref
		}
	}
	return out
}

// DeleteGame removes a game and, through cascades, its possessions.
func (db *DB) DeleteGame(id string) error {
	res, err := db.conn.Exec("DELETE FROM games WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("game %s: %w", id, sql.ErrNoRows)
	}
	return nil
}

// ListGames returns all stored games ordered by played_at desc, with the
// possession count and each side's points.
func (db *DB) ListGames() ([]model.GameSummary, error) {
	rows, err := db.conn.Query(`
		SELECT g.id, g.home_team_id, g.home_team_name, g.away_team_id, g.away_team_name, g.played_at,
		       COUNT(p.id),
		       COALESCE(SUM(CASE WHEN p.team = g.home_team_id THEN p.points_scored END), 0),
		       COALESCE(SUM(CASE WHEN p.team = g.away_team_id THEN p.points_scored END), 0)
		FROM games g LEFT JOIN possessions p ON p.game_id = g.id
		GROUP BY g.id
		ORDER BY g.played_at DESC, g.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.GameSummary
	for rows.Next() {
		var s model.GameSummary
		if err := rows.Scan(&s.ID, &s.HomeTeamID, &s.HomeTeamName, &s.AwayTeamID, &s.AwayTeamName, &s.PlayedAt,
			&s.Possessions, &s.HomePoints, &s.AwayPoints); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// GetGameByPrefix finds the first game whose id starts with the given prefix.
func (db *DB) GetGameByPrefix(prefix string) (*model.Game, error) {
	var g model.Game
	err := db.conn.QueryRow(`
		SELECT id, home_team_id, home_team_name, away_team_id, away_team_name, played_at
		FROM games WHERE id LIKE ? ORDER BY id LIMIT 1`, prefix+"%").
		Scan(&g.ID, &g.HomeTeamID, &g.HomeTeamName, &g.AwayTeamID, &g.AwayTeamName, &g.PlayedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// GetPossessions returns a game's possessions in recorded order.
func (db *DB) GetPossessions(gameID string) ([]model.Possession, error) {
	rows, err := db.conn.Query(`
		SELECT id, quarter, start_time_in_game, duration_seconds, outcome, points_scored,
		       team, opponent, is_offensive_rebound, offensive_set, defensive_set, has_paint_touch, created_at
		FROM possessions WHERE game_id = ?
		ORDER BY seq`, gameID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Possession
	index := make(map[string]int)
	for rows.Next() {
		var p model.Possession
		var outcome, createdAt string
		var offReb, paint int
		if err := rows.Scan(&p.ID, &p.Quarter, &p.StartTimeInGame, &p.DurationSeconds, &outcome, &p.PointsScored,
			&p.Team, &p.Opponent, &offReb, &p.OffensiveSet, &p.DefensiveSet, &paint, &createdAt); err != nil {
			return nil, err
		}
		p.GameID = gameID
		p.Outcome = model.Outcome(outcome)
		p.IsOffensiveRebound = offReb != 0
		p.HasPaintTouch = paint != 0
		p.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		index[p.ID] = len(out)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := db.attachAttributions(gameID, out, index); err != nil {
		return nil, err
	}
	return out, nil
}

func (db *DB) attachAttributions(gameID string, possessions []model.Possession, index map[string]int) error {
	rows, err := db.conn.Query(`
		SELECT possession_id, role, player_id, first_name, last_name, number, team_id
		FROM attributions WHERE game_id = ?`, gameID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var possID, role string
		ref := &model.PlayerRef{}
		if err := rows.Scan(&possID, &role, &ref.ID, &ref.FirstName, &ref.LastName, &ref.Number, &ref.TeamID); err != nil {
			return err
		}
		i, ok := index[possID]
		if !ok {
			continue
		}
		p := &possessions[i]
		switch role {
		case roleScorer:
			p.Scorer = ref
		case roleAssistedBy:
			p.AssistedBy = ref
		case roleBlockedBy:
			p.BlockedBy = ref
		case roleStolenBy:
			p.StolenBy = ref
		case roleFouledBy:
			p.FouledBy = ref
		}
	}
	return rows.Err()
}

// QueryRaw runs an arbitrary query and returns column names and stringified rows.
func (db *DB) QueryRaw(query string) ([]string, [][]string, error) {
	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	var out [][]string
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, err
		}
		row := make([]string, len(cols))
		for i, v := range vals {
			switch x := v.(type) {
			case nil:
				row[i] = "NULL"
			case []byte:
				row[i] = string(x)
			default:
				row[i] = fmt.Sprint(x)
			}
		}
		out = append(out, row)
	}
	return cols, out, rows.Err()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
