package storage

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pable/hoopmetrics/internal/model"
)

func openMemDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testGame(id, playedAt string) model.Game {
	return model.Game{
		ID: id, PlayedAt: playedAt,
		HomeTeamID: "hawks", HomeTeamName: "Hawks",
		AwayTeamID: "owls", AwayTeamName: "Owls",
	}
}

func testPossessions() []model.Possession {
	created := time.Date(2026, 3, 14, 19, 0, 0, 0, time.UTC)
	return []model.Possession{
		{
			ID: "p-2", Quarter: 1, StartTimeInGame: "11:40", DurationSeconds: 12,
			Outcome: model.OutcomeMade3, PointsScored: 3, Team: "hawks", Opponent: "owls",
			OffensiveSet: "PICK_AND_ROLL", DefensiveSet: "MAN", HasPaintTouch: true,
			Scorer:     &model.PlayerRef{ID: "h1", FirstName: "Ana", LastName: "Reyes", Number: 7, TeamID: "hawks"},
			AssistedBy: &model.PlayerRef{ID: "h2", FirstName: "Bea", LastName: "Stone", Number: 11},
			CreatedAt:  created,
		},
		{
			ID: "p-1", Quarter: 1, StartTimeInGame: "11:20", DurationSeconds: 9,
			Outcome: model.OutcomeRebound, Team: "owls", Opponent: "hawks", IsOffensiveRebound: true,
			CreatedAt: created.Add(time.Second),
		},
		{
			ID: "p-3", Quarter: 2, StartTimeInGame: "08:00",
			Outcome: model.OutcomeMissed2, Team: "owls", Opponent: "hawks",
			Scorer:    &model.PlayerRef{ID: "o1", FirstName: "Oz", LastName: "Lee"},
			BlockedBy: &model.PlayerRef{ID: "h1", FirstName: "Ana", LastName: "Reyes"},
			FouledBy:  &model.PlayerRef{ID: "h3", FirstName: "Cy", LastName: "Young"},
			CreatedAt: created.Add(2 * time.Second),
		},
	}
}

func TestGameInsertAndExists(t *testing.T) {
	db := openMemDB(t)

	require.NoError(t, db.InsertGame(testGame("abc123", "2026-03-14"), testPossessions()))

	exists, err := db.GameExists("abc123")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = db.GameExists("nonexistent")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestPossessionsRoundTrip(t *testing.T) {
	db := openMemDB(t)
	want := testPossessions()
	require.NoError(t, db.InsertGame(testGame("g1", "2026-03-14"), want))

	got, err := db.GetPossessions("g1")
	require.NoError(t, err)
	require.Len(t, got, 3)

	// Recorded order, not id order.
	assert.Equal(t, "p-2", got[0].ID)
	assert.Equal(t, "p-1", got[1].ID)

	first := got[0]
	assert.Equal(t, model.OutcomeMade3, first.Outcome)
	assert.Equal(t, 3, first.PointsScored)
	assert.True(t, first.HasPaintTouch)
	assert.Equal(t, "g1", first.GameID)
	require.NotNil(t, first.Scorer)
	assert.Equal(t, *want[0].Scorer, *first.Scorer)
	require.NotNil(t, first.AssistedBy)
	assert.Equal(t, 11, first.AssistedBy.Number)
	assert.Nil(t, first.StolenBy)
	assert.True(t, first.CreatedAt.Equal(want[0].CreatedAt))

	assert.True(t, got[1].IsOffensiveRebound)
	assert.Nil(t, got[1].Scorer)

	require.NotNil(t, got[2].BlockedBy)
	require.NotNil(t, got[2].FouledBy)
	assert.Equal(t, "Cy Young", got[2].FouledBy.FullName())
}

func TestInsertIdempotency(t *testing.T) {
	db := openMemDB(t)
	g := testGame("idem1", "2026-03-14")

	require.NoError(t, db.InsertGame(g, testPossessions()))
	// Re-import with fewer possessions replaces the old set.
	require.NoError(t, db.InsertGame(g, testPossessions()[:1]))

	got, err := db.GetPossessions("idem1")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestPossessionIDsScopedToGame(t *testing.T) {
	db := openMemDB(t)
	require.NoError(t, db.InsertGame(testGame("game-a", "2026-01-01"), testPossessions()))
	require.NoError(t, db.InsertGame(testGame("game-b", "2026-01-08"), testPossessions()))

	for _, id := range []string{"game-a", "game-b"} {
		got, err := db.GetPossessions(id)
		require.NoError(t, err)
		require.Len(t, got, 3, id)
		require.NotNil(t, got[0].Scorer, id)
		require.NotNil(t, got[2].FouledBy, id)
	}

	// Dropping one game leaves the other's rows and attributions alone.
	require.NoError(t, db.DeleteGame("game-a"))
	got, err := db.GetPossessions("game-b")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Ana Reyes", got[0].Scorer.FullName())

	_, rows, err := db.QueryRaw("SELECT COUNT(*) FROM attributions")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"5"}}, rows)
}

func TestListGames(t *testing.T) {
	db := openMemDB(t)
	require.NoError(t, db.InsertGame(testGame("g-old", "2026-01-01"), testPossessions()))
	require.NoError(t, db.InsertGame(testGame("g-new", "2026-02-01"), nil))

	list, err := db.ListGames()
	require.NoError(t, err)
	require.Len(t, list, 2)

	// Ordered by played_at DESC.
	assert.Equal(t, "g-new", list[0].ID)
	assert.Equal(t, 0, list[0].Possessions)
	assert.Equal(t, 3, list[1].Possessions)
	assert.Equal(t, 3, list[1].HomePoints)
	assert.Equal(t, 0, list[1].AwayPoints)
}

func TestGetGameByPrefix(t *testing.T) {
	db := openMemDB(t)
	require.NoError(t, db.InsertGame(testGame("deadbeef1234", "2026-01-01"), nil))

	g, err := db.GetGameByPrefix("deadb")
	require.NoError(t, err)
	require.NotNil(t, g)
	assert.Equal(t, "Owls", g.AwayTeamName)

	g, err = db.GetGameByPrefix("ffffffff")
	require.NoError(t, err)
	assert.Nil(t, g)
}

func TestDeleteGame(t *testing.T) {
	db := openMemDB(t)
	require.NoError(t, db.InsertGame(testGame("gone", "2026-01-01"), testPossessions()))
	require.NoError(t, db.DeleteGame("gone"))

	got, err := db.GetPossessions("gone")
	require.NoError(t, err)
	assert.Empty(t, got)

	err = db.DeleteGame("gone")
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}

func TestQueryRaw(t *testing.T) {
	db := openMemDB(t)
	require.NoError(t, db.InsertGame(testGame("g1", "2026-01-01"), testPossessions()))

	cols, rows, err := db.QueryRaw("SELECT role, COUNT(*) AS n FROM attributions GROUP BY role ORDER BY role")
	require.NoError(t, err)
	assert.Equal(t, []string{"role", "n"}, cols)
	assert.Equal(t, [][]string{
		{"assisted_by", "1"},
		{"blocked_by", "1"},
		{"fouled_by", "1"},
		{"scorer", "2"},
	}, rows)

	_, _, err = db.QueryRaw("SELECT * FROM no_such_table")
	assert.Error(t, err)
}
