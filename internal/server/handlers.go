package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/skundu/trademind/internal/common"
	"github.com/skundu/trademind/internal/services/analysis"
)

// handleHealth handles GET /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"uptime":  time.Since(s.app.StartupTime).Round(time.Second).String(),
		"version": common.GetVersion(),
	})
}

// handleVersion handles GET /api/version.
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"commit":  common.GetGitCommit(),
	})
}

// AnalyzeRequest is the POST /api/analyze payload. Name may be empty when
// the image identifies the stock.
type AnalyzeRequest struct {
	Name        string `json:"name"`
	ImageBase64 string `json:"image_base64,omitempty"`
}

// handleAnalyze handles POST /api/analyze.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req AnalyzeRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	if req.Name == "" && req.ImageBase64 == "" {
		WriteError(w, http.StatusBadRequest, "Either name or image_base64 is required")
		return
	}

	result, err := s.app.AnalysisService.Analyze(r.Context(), req.Name, req.ImageBase64)
	if err != nil {
		WriteError(w, analysisStatusCode(err), err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, result)
}

// analysisStatusCode maps a classified analysis error to an HTTP status.
func analysisStatusCode(err error) int {
	var userErr *analysis.UserError
	if !errors.As(err, &userErr) {
		return http.StatusInternalServerError
	}

	switch userErr.Message {
	case analysis.MsgInvalidRequest:
		return http.StatusBadRequest
	case analysis.MsgAccessDenied:
		return http.StatusForbidden
	case analysis.MsgRateLimited:
		return http.StatusTooManyRequests
	case analysis.MsgServiceUnavailable:
		return http.StatusServiceUnavailable
	case analysis.MsgBlocked:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}

// handleMarketOverview handles GET /api/market/overview.
func (s *Server) handleMarketOverview(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	WriteJSON(w, http.StatusOK, s.app.MarketService.GetMarketOverview(r.Context()))
}

// handleEarnings handles GET /api/market/earnings.
func (s *Server) handleEarnings(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	WriteJSON(w, http.StatusOK, s.app.MarketService.GetUpcomingEarnings(r.Context()))
}

// handleDashboard handles GET /api/market/dashboard.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	WriteJSON(w, http.StatusOK, s.app.MarketService.GetDashboard(r.Context()))
}
