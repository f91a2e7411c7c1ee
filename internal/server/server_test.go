package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skundu/trademind/internal/app"
	"github.com/skundu/trademind/internal/common"
	"github.com/skundu/trademind/internal/interfaces"
	"github.com/skundu/trademind/internal/models"
	"github.com/skundu/trademind/internal/services/analysis"
)

type stubAnalysisService struct {
	result *models.AnalysisResult
	err    error
}

func (s *stubAnalysisService) Analyze(_ context.Context, _, _ string) (*models.AnalysisResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

type stubMarketService struct{}

func (s *stubMarketService) GetUpcomingEarnings(_ context.Context) []models.EarningsItem {
	return []models.EarningsItem{{Symbol: "TCS", Name: "Tata Consultancy Services", Expectation: "Q3 Results"}}
}

func (s *stubMarketService) GetMarketOverview(_ context.Context) *models.MarketOverview {
	return models.NewMarketOverview()
}

func (s *stubMarketService) GetDashboard(ctx context.Context) *models.Dashboard {
	return &models.Dashboard{Overview: s.GetMarketOverview(ctx), Earnings: s.GetUpcomingEarnings(ctx)}
}

type stubWatchlistService struct {
	watchlist *models.Watchlist
}

func (s *stubWatchlistService) GetWatchlist(_ context.Context) (*models.Watchlist, error) {
	return s.watchlist, nil
}

func (s *stubWatchlistService) AddSymbol(_ context.Context, symbol string) (*models.Watchlist, error) {
	if symbol == "" {
		return nil, errors.New("symbol is required")
	}
	s.watchlist.Items = append(s.watchlist.Items, models.WatchlistItem{Symbol: symbol, AddedAt: time.Now()})
	return s.watchlist, nil
}

func (s *stubWatchlistService) RemoveSymbol(_ context.Context, symbol string) (*models.Watchlist, error) {
	items := s.watchlist.Items[:0]
	for _, item := range s.watchlist.Items {
		if item.Symbol != symbol {
			items = append(items, item)
		}
	}
	s.watchlist.Items = items
	return s.watchlist, nil
}

type stubPreferences struct {
	values map[string]string
}

func (s *stubPreferences) Get(_ context.Context, key string) (string, error) {
	if v, ok := s.values[key]; ok {
		return v, nil
	}
	return "", errors.New("not found")
}

func (s *stubPreferences) Set(_ context.Context, key, value string) error {
	s.values[key] = value
	return nil
}

func (s *stubPreferences) Delete(_ context.Context, key string) error {
	delete(s.values, key)
	return nil
}

func (s *stubPreferences) GetAll(_ context.Context) (map[string]string, error) {
	return s.values, nil
}

type stubStorage struct {
	prefs *stubPreferences
}

func (s *stubStorage) WatchlistStorage() interfaces.WatchlistStorage   { return nil }
func (s *stubStorage) PreferenceStorage() interfaces.PreferenceStorage { return s.prefs }
func (s *stubStorage) Close() error                                    { return nil }

func newTestServer(analysisSvc interfaces.AnalysisService) *Server {
	a := &app.App{
		Config:           common.NewDefaultConfig(),
		Logger:           common.NewSilentLogger(),
		Storage:          &stubStorage{prefs: &stubPreferences{values: map[string]string{}}},
		AnalysisService:  analysisSvc,
		MarketService:    &stubMarketService{},
		WatchlistService: &stubWatchlistService{watchlist: &models.Watchlist{Name: "default", Items: []models.WatchlistItem{}}},
		StartupTime:      time.Now(),
	}
	return NewServer(a)
}

func doRequest(t *testing.T, handler http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(&stubAnalysisService{})

	rec := doRequest(t, srv.Handler(), http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestHealthMethodNotAllowed(t *testing.T) {
	srv := newTestServer(&stubAnalysisService{})

	rec := doRequest(t, srv.Handler(), http.MethodPost, "/api/health", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestAnalyzeEndpoint(t *testing.T) {
	result := models.NewAnalysisResult("RELIANCE")
	result.CurrentPrice = "₹2450"
	srv := newTestServer(&stubAnalysisService{result: result})

	rec := doRequest(t, srv.Handler(), http.MethodPost, "/api/analyze", AnalyzeRequest{Name: "RELIANCE"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.AnalysisResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "RELIANCE", resp.SubjectName)
	assert.Equal(t, "₹2450", resp.CurrentPrice)
}

func TestAnalyzeRequiresNameOrImage(t *testing.T) {
	srv := newTestServer(&stubAnalysisService{})

	rec := doRequest(t, srv.Handler(), http.MethodPost, "/api/analyze", AnalyzeRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeInvalidJSON(t *testing.T) {
	srv := newTestServer(&stubAnalysisService{})

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeErrorStatusCodes(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected int
	}{
		{"invalid request", analysis.MsgInvalidRequest, http.StatusBadRequest},
		{"access denied", analysis.MsgAccessDenied, http.StatusForbidden},
		{"rate limited", analysis.MsgRateLimited, http.StatusTooManyRequests},
		{"service unavailable", analysis.MsgServiceUnavailable, http.StatusServiceUnavailable},
		{"blocked", analysis.MsgBlocked, http.StatusUnprocessableEntity},
		{"unclassified", analysis.MsgUnclassified, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(&stubAnalysisService{err: &analysis.UserError{Message: tt.message}})

			rec := doRequest(t, srv.Handler(), http.MethodPost, "/api/analyze", AnalyzeRequest{Name: "TCS"})
			assert.Equal(t, tt.expected, rec.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.message, resp.Error)
		})
	}
}

func TestMarketEndpoints(t *testing.T) {
	srv := newTestServer(&stubAnalysisService{})

	rec := doRequest(t, srv.Handler(), http.MethodGet, "/api/market/overview", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var overview models.MarketOverview
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &overview))
	assert.NotNil(t, overview.Gainers)

	rec = doRequest(t, srv.Handler(), http.MethodGet, "/api/market/earnings", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var earnings []models.EarningsItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &earnings))
	require.Len(t, earnings, 1)
	assert.Equal(t, "TCS", earnings[0].Symbol)

	rec = doRequest(t, srv.Handler(), http.MethodGet, "/api/market/dashboard", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var dashboard models.Dashboard
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dashboard))
	require.NotNil(t, dashboard.Overview)
	require.Len(t, dashboard.Earnings, 1)
}

func TestWatchlistEndpoints(t *testing.T) {
	srv := newTestServer(&stubAnalysisService{})

	rec := doRequest(t, srv.Handler(), http.MethodPost, "/api/watchlist", WatchlistAddRequest{Symbol: "TCS"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, srv.Handler(), http.MethodGet, "/api/watchlist", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var wl models.Watchlist
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &wl))
	require.Len(t, wl.Items, 1)

	rec = doRequest(t, srv.Handler(), http.MethodDelete, "/api/watchlist/TCS", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &wl))
	assert.Empty(t, wl.Items)
}

func TestWatchlistAddEmptySymbol(t *testing.T) {
	srv := newTestServer(&stubAnalysisService{})

	rec := doRequest(t, srv.Handler(), http.MethodPost, "/api/watchlist", WatchlistAddRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPreferenceEndpoints(t *testing.T) {
	srv := newTestServer(&stubAnalysisService{})

	rec := doRequest(t, srv.Handler(), http.MethodGet, "/api/preferences/theme", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, srv.Handler(), http.MethodPut, "/api/preferences/theme", PreferenceValue{Value: "dark"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, srv.Handler(), http.MethodGet, "/api/preferences/theme", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var pref PreferenceValue
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pref))
	assert.Equal(t, "theme", pref.Key)
	assert.Equal(t, "dark", pref.Value)
}

func TestCORSHeaders(t *testing.T) {
	srv := newTestServer(&stubAnalysisService{})

	req := httptest.NewRequest(http.MethodOptions, "/api/health", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCorrelationIDHeader(t *testing.T) {
	srv := newTestServer(&stubAnalysisService{})

	rec := doRequest(t, srv.Handler(), http.MethodGet, "/api/health", nil)
	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
}
