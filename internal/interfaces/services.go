package interfaces

import (
	"context"

	"github.com/skundu/trademind/internal/models"
)

// AnalysisService produces typed stock analyses from the generative model.
// Analyze is the only consumer-facing operation that may fail outward; its
// errors carry a user-facing classified message.
type AnalysisService interface {
	// Analyze runs a full analysis for a stock name, an image, or both.
	// subjectName may be empty when imageBase64 identifies the stock.
	Analyze(ctx context.Context, subjectName, imageBase64 string) (*models.AnalysisResult, error)
}

// MarketService provides the best-effort market read paths. Neither read
// fails outward: transport or decode failures resolve to empty defaults.
type MarketService interface {
	// GetUpcomingEarnings returns today's earnings calendar, or an empty list
	GetUpcomingEarnings(ctx context.Context) []models.EarningsItem

	// GetMarketOverview returns the day's gainers/losers/breakouts, or empty lists
	GetMarketOverview(ctx context.Context) *models.MarketOverview

	// GetDashboard fetches earnings and overview concurrently and joins them
	GetDashboard(ctx context.Context) *models.Dashboard
}

// WatchlistService manages the persisted list of saved symbols
type WatchlistService interface {
	GetWatchlist(ctx context.Context) (*models.Watchlist, error)
	AddSymbol(ctx context.Context, symbol string) (*models.Watchlist, error)
	RemoveSymbol(ctx context.Context, symbol string) (*models.Watchlist, error)
}
