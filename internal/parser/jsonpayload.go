package parser

import (
	"encoding/json"
	"strings"

	"github.com/skundu/trademind/internal/common"
	"github.com/skundu/trademind/internal/models"
)

// StripCodeFences removes triple-backtick code-fence markers (with or
// without a "json" language tag) and surrounding whitespace. The model is
// asked for bare JSON but wraps it in fences often enough that stripping
// them unconditionally is cheaper than asking again.
func StripCodeFences(raw string) string {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	return strings.TrimSpace(cleaned)
}

// DecodeJSONPayload strips incidental code-fence markup and attempts a
// strict JSON parse into T. On any failure it logs a structured warning and
// returns defaultValue — it never fails outward.
func DecodeJSONPayload[T any](logger *common.Logger, raw string, defaultValue T) T {
	cleaned := StripCodeFences(raw)

	var v T
	if err := json.Unmarshal([]byte(cleaned), &v); err != nil {
		logger.Warn().
			Err(err).
			Int("payload_bytes", len(raw)).
			Msg("Failed to decode JSON payload, substituting default")
		return defaultValue
	}
	return v
}

// DecodeMarketOverview decodes a market-overview payload, defaulting each of
// the gainers/losers/breakouts lists independently. A partially well-formed
// object keeps whichever lists decoded; only a failed parse discards all.
func DecodeMarketOverview(logger *common.Logger, raw string) *models.MarketOverview {
	overview := DecodeJSONPayload(logger, raw, models.NewMarketOverview())
	if overview == nil {
		// Payload was the JSON literal null.
		return models.NewMarketOverview()
	}
	overview.Normalize()
	return overview
}

// DecodeEarnings decodes an earnings-calendar payload. An empty list is a
// valid, expected result: no companies reporting.
func DecodeEarnings(logger *common.Logger, raw string) []models.EarningsItem {
	items := DecodeJSONPayload(logger, raw, []models.EarningsItem{})
	if items == nil {
		items = []models.EarningsItem{}
	}
	return items
}
