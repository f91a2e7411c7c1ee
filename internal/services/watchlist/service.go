// Package watchlist provides watchlist management services
package watchlist

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/skundu/trademind/internal/common"
	"github.com/skundu/trademind/internal/interfaces"
	"github.com/skundu/trademind/internal/models"
)

// DefaultName is the storage key of the single watchlist.
const DefaultName = "default"

// Compile-time interface check
var _ interfaces.WatchlistService = (*Service)(nil)

// Service implements WatchlistService
type Service struct {
	storage interfaces.StorageManager
	logger  *common.Logger
}

// NewService creates a new watchlist service
func NewService(storage interfaces.StorageManager, logger *common.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// GetWatchlist retrieves the watchlist, returning an empty one when nothing
// has been saved yet.
func (s *Service) GetWatchlist(ctx context.Context) (*models.Watchlist, error) {
	wl, err := s.storage.WatchlistStorage().GetWatchlist(ctx, DefaultName)
	if err != nil {
		return &models.Watchlist{Name: DefaultName, Items: []models.WatchlistItem{}}, nil
	}
	return wl, nil
}

// AddSymbol adds a symbol to the watchlist (idempotent upsert)
func (s *Service) AddSymbol(ctx context.Context, symbol string) (*models.Watchlist, error) {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return nil, fmt.Errorf("symbol is required")
	}

	wl, err := s.GetWatchlist(ctx)
	if err != nil {
		return nil, err
	}

	if _, idx := wl.FindBySymbol(symbol); idx < 0 {
		wl.Items = append(wl.Items, models.WatchlistItem{
			Symbol:  symbol,
			AddedAt: time.Now(),
		})
	}

	if err := s.storage.WatchlistStorage().SaveWatchlist(ctx, wl); err != nil {
		return nil, fmt.Errorf("failed to save watchlist: %w", err)
	}
	s.logger.Info().Str("symbol", symbol).Int("items", len(wl.Items)).Msg("Watchlist symbol added")
	return wl, nil
}

// RemoveSymbol removes a symbol from the watchlist
func (s *Service) RemoveSymbol(ctx context.Context, symbol string) (*models.Watchlist, error) {
	wl, err := s.GetWatchlist(ctx)
	if err != nil {
		return nil, err
	}

	if _, idx := wl.FindBySymbol(symbol); idx >= 0 {
		wl.Items = append(wl.Items[:idx], wl.Items[idx+1:]...)
		if err := s.storage.WatchlistStorage().SaveWatchlist(ctx, wl); err != nil {
			return nil, fmt.Errorf("failed to save watchlist: %w", err)
		}
		s.logger.Info().Str("symbol", symbol).Int("items", len(wl.Items)).Msg("Watchlist symbol removed")
	}

	return wl, nil
}
