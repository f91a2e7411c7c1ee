package interfaces

import (
	"context"

	"github.com/skundu/trademind/internal/models"
)

// WatchlistStorage persists watchlists
type WatchlistStorage interface {
	GetWatchlist(ctx context.Context, name string) (*models.Watchlist, error)
	SaveWatchlist(ctx context.Context, watchlist *models.Watchlist) error
	DeleteWatchlist(ctx context.Context, name string) error
}

// PreferenceStorage is simple string key/value persistence for client-side
// preferences (theme, stored API key).
type PreferenceStorage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	GetAll(ctx context.Context) (map[string]string, error)
}

// StorageManager provides access to all storage implementations
type StorageManager interface {
	WatchlistStorage() WatchlistStorage
	PreferenceStorage() PreferenceStorage
	Close() error
}
