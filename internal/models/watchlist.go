package models

import "time"

// WatchlistItem is a single saved symbol.
type WatchlistItem struct {
	Symbol  string    `json:"symbol"`
	AddedAt time.Time `json:"added_at"`
}

// Watchlist is the persisted list of saved symbols. A single named list is
// enough here; Name is the storage key.
type Watchlist struct {
	Name      string          `json:"name"`
	Items     []WatchlistItem `json:"items"`
	Version   int             `json:"version"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// FindBySymbol returns the item with the given symbol and its index, or a
// zero item and -1 when not present.
func (w *Watchlist) FindBySymbol(symbol string) (WatchlistItem, int) {
	for i, item := range w.Items {
		if item.Symbol == symbol {
			return item, i
		}
	}
	return WatchlistItem{}, -1
}
