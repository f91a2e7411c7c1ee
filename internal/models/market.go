package models

// MarketMover is one entry in a gainers/losers/breakouts list. Price and
// change are display strings as returned by the model (e.g. "+5.4%").
type MarketMover struct {
	Symbol string `json:"symbol"`
	Price  string `json:"price"`
	Change string `json:"change"`
}

// MarketOverview holds the day's market snapshot. Slices are never nil:
// absent or malformed top-level keys decode to empty lists.
type MarketOverview struct {
	Gainers   []MarketMover `json:"gainers"`
	Losers    []MarketMover `json:"losers"`
	Breakouts []MarketMover `json:"breakouts"`
}

// NewMarketOverview returns an overview with empty (non-nil) lists.
func NewMarketOverview() *MarketOverview {
	return &MarketOverview{
		Gainers:   []MarketMover{},
		Losers:    []MarketMover{},
		Breakouts: []MarketMover{},
	}
}

// Normalize replaces nil lists with empty ones after a partial decode.
func (m *MarketOverview) Normalize() {
	if m.Gainers == nil {
		m.Gainers = []MarketMover{}
	}
	if m.Losers == nil {
		m.Losers = []MarketMover{}
	}
	if m.Breakouts == nil {
		m.Breakouts = []MarketMover{}
	}
}

// EarningsItem is one company scheduled to report results.
type EarningsItem struct {
	Symbol      string `json:"symbol"`
	Name        string `json:"name"`
	Expectation string `json:"expectation"` // e.g. "Q3 Earnings", "Dividend"
}

// Dashboard is the combined market view: both reads are issued concurrently
// and each falls back to its empty default independently.
type Dashboard struct {
	Overview *MarketOverview `json:"overview"`
	Earnings []EarningsItem  `json:"earnings"`
}
