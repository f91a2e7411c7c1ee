// Package market provides the best-effort earnings-calendar and
// market-overview read paths. Neither fails outward: transport or decode
// failures resolve to empty defaults, logged but not surfaced.
package market

import (
	"context"
	"sync"

	"github.com/skundu/trademind/internal/common"
	"github.com/skundu/trademind/internal/interfaces"
	"github.com/skundu/trademind/internal/models"
	"github.com/skundu/trademind/internal/parser"
)

// Compile-time interface check
var _ interfaces.MarketService = (*Service)(nil)

// Service implements MarketService
type Service struct {
	client interfaces.GenAIClient
	retry  common.RetryConfig
	logger *common.Logger
}

// NewService creates a new market service
func NewService(client interfaces.GenAIClient, retry common.RetryConfig, logger *common.Logger) *Service {
	return &Service{
		client: client,
		retry:  retry,
		logger: logger,
	}
}

// GetUpcomingEarnings returns today's earnings calendar for NSE/BSE. An
// empty list is a valid result; failures also resolve to an empty list.
func (s *Service) GetUpcomingEarnings(ctx context.Context) []models.EarningsItem {
	resp, err := common.Invoke(ctx, s.logger, s.retry, func(ctx context.Context) (*models.GenerationResponse, error) {
		return s.client.GenerateGrounded(ctx, &models.GenerationRequest{Prompt: buildEarningsPrompt()})
	})
	if err != nil {
		s.logger.Warn().Err(err).Msg("Earnings calendar fetch failed, returning empty list")
		return []models.EarningsItem{}
	}

	items := parser.DecodeEarnings(s.logger, resp.Text)
	s.logger.Info().Int("items", len(items)).Msg("Earnings calendar fetched")
	return items
}

// GetMarketOverview returns the day's gainers, losers, and 52-week
// breakouts. Failures resolve to empty lists per key.
func (s *Service) GetMarketOverview(ctx context.Context) *models.MarketOverview {
	resp, err := common.Invoke(ctx, s.logger, s.retry, func(ctx context.Context) (*models.GenerationResponse, error) {
		return s.client.GenerateGrounded(ctx, &models.GenerationRequest{Prompt: buildOverviewPrompt()})
	})
	if err != nil {
		s.logger.Warn().Err(err).Msg("Market overview fetch failed, returning empty overview")
		return models.NewMarketOverview()
	}

	overview := parser.DecodeMarketOverview(s.logger, resp.Text)
	s.logger.Info().
		Int("gainers", len(overview.Gainers)).
		Int("losers", len(overview.Losers)).
		Int("breakouts", len(overview.Breakouts)).
		Msg("Market overview fetched")
	return overview
}

// GetDashboard issues the earnings and overview reads concurrently and
// joins them. Each side follows its own fallback-to-default path, so a
// stall or failure in one never blocks or fails the other.
func (s *Service) GetDashboard(ctx context.Context) *models.Dashboard {
	dashboard := &models.Dashboard{}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		dashboard.Overview = s.GetMarketOverview(ctx)
	}()
	go func() {
		defer wg.Done()
		dashboard.Earnings = s.GetUpcomingEarnings(ctx)
	}()

	wg.Wait()
	return dashboard
}
