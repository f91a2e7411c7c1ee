// Package models defines data structures for TradeMind
package models

// Sentinel values substituted when a section cannot be extracted from the
// model's response, so consumers never observe an absent field.
const (
	SentinelPrice        = "N/A"
	SentinelUnavailable  = "Data not available."
	SentinelNoRecentNews = "No recent news found."
)

// TradeKind is one of the three fixed time-horizon trading strategies.
type TradeKind string

const (
	TradeIntraday TradeKind = "Intraday"
	TradeSwing    TradeKind = "Swing"
	TradeDelivery TradeKind = "Delivery"
)

// TradeKinds lists the strategies in their fixed presentation order.
var TradeKinds = []TradeKind{TradeIntraday, TradeSwing, TradeDelivery}

// TradeLevel is a single trading recommendation extracted from the model's
// response. Price fields are kept as display strings, never parsed numerics.
type TradeLevel struct {
	Kind           TradeKind `json:"kind"`
	Action         string    `json:"action"` // BUY/SELL/HOLD/WAIT, upper-cased but not validated here
	Entry          string    `json:"entry"`
	Target         string    `json:"target"`
	StopLoss       string    `json:"stop_loss"`
	WinProbability string    `json:"win_probability"`
	Reasoning      string    `json:"reasoning"`
}

// Source is a grounding citation the model attached as evidence.
type Source struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// AnalysisResult is the strongly-typed record extracted from one model
// response. Textual fields always hold either extracted content or their
// sentinel default. RawText keeps the untouched model output as an audit
// trail and rendering fallback.
type AnalysisResult struct {
	SubjectName  string       `json:"subject_name"`
	CurrentPrice string       `json:"current_price"`
	Fundamentals string       `json:"fundamentals"`
	Technicals   string       `json:"technicals"`
	News         string       `json:"news"`
	TradeLevels  []TradeLevel `json:"trade_levels"` // 0-3 entries, Intraday/Swing/Delivery order
	Sources      []Source     `json:"sources"`      // unique by URI
	RawText      string       `json:"raw_text"`
}

// NewAnalysisResult returns a result with all sentinel defaults in place.
func NewAnalysisResult(subjectName string) *AnalysisResult {
	return &AnalysisResult{
		SubjectName:  subjectName,
		CurrentPrice: SentinelPrice,
		Fundamentals: SentinelUnavailable,
		Technicals:   SentinelUnavailable,
		News:         SentinelNoRecentNews,
		TradeLevels:  []TradeLevel{},
		Sources:      []Source{},
	}
}
