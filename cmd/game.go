package cmd

import (
	"fmt"
	"log/slog"

	"github.com/pable/hoopmetrics/internal/model"
	"github.com/pable/hoopmetrics/internal/storage"
)

// loadGame resolves an id prefix to a stored game and its possessions.
func loadGame(db *storage.DB, prefix string) (*model.Game, []model.Possession, error) {
	g, err := db.GetGameByPrefix(prefix)
	if err != nil {
		return nil, nil, fmt.Errorf("query game: %w", err)
	}
	if g == nil {
		return nil, nil, fmt.Errorf("no game found with id prefix %q", prefix)
	}
	possessions, err := db.GetPossessions(g.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("get possessions: %w", err)
	}
	slog.Debug("Game loaded", slog.String("game", g.ID), slog.Int("possessions", len(possessions)))
	return g, possessions, nil
}
