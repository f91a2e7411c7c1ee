package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skundu/trademind/internal/models"
)

const wellFormedResponse = `## Trade Levels
**Intraday**
Action: BUY
Entry: 2450
Target: 2480
Stop Loss: 2430
Win Probability: 70%
Reasoning: Momentum strong hai aaj ke liye.

**Swing**
Action: sell
Entry: 2455
Target: 2400
Stop Loss: 2475
Win Probability: 60%
Reasoning: Resistance ke paas hai.

**Delivery**
Action: WAIT
Entry: 2300
Target: 2600
Stop Loss: 2200
Win Probability: 55%
Reasoning: Valuation thoda high hai
abhi ke liye.
`

func TestExtractTradeLevels(t *testing.T) {
	levels := ExtractTradeLevels(wellFormedResponse)
	require.Len(t, levels, 3)

	assert.Equal(t, models.TradeIntraday, levels[0].Kind)
	assert.Equal(t, models.TradeSwing, levels[1].Kind)
	assert.Equal(t, models.TradeDelivery, levels[2].Kind)

	assert.Equal(t, "BUY", levels[0].Action)
	assert.Equal(t, "2450", levels[0].Entry)
	assert.Equal(t, "2480", levels[0].Target)
	assert.Equal(t, "2430", levels[0].StopLoss)
	assert.Equal(t, "70%", levels[0].WinProbability)
	assert.Equal(t, "Momentum strong hai aaj ke liye.", levels[0].Reasoning)

	// Action is upper-cased before storage
	assert.Equal(t, "SELL", levels[1].Action)

	// Reasoning runs to the end of the block across lines
	assert.Equal(t, "Valuation thoda high hai\nabhi ke liye.", levels[2].Reasoning)
}

func TestExtractTradeLevelsEmptyInput(t *testing.T) {
	levels := ExtractTradeLevels("")
	assert.Empty(t, levels)
}

func TestExtractTradeLevelMissingLabelYieldsAbsent(t *testing.T) {
	// Swing block lacks Stop Loss; Intraday and Delivery stay intact.
	input := `**Intraday**
Action: BUY
Entry: 100
Target: 110
Stop Loss: 95
Win Probability: 70%
Reasoning: ok

**Swing**
Action: BUY
Entry: 100
Target: 120
Win Probability: 65%
Reasoning: ok

**Delivery**
Action: HOLD
Entry: 100
Target: 150
Stop Loss: 80
Win Probability: 50%
Reasoning: ok
`

	_, ok := ExtractTradeLevel(input, models.TradeSwing)
	assert.False(t, ok)

	levels := ExtractTradeLevels(input)
	require.Len(t, levels, 2)
	assert.Equal(t, models.TradeIntraday, levels[0].Kind)
	assert.Equal(t, models.TradeDelivery, levels[1].Kind)
}

func TestExtractTradeLevel(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		kind   models.TradeKind
		absent bool
	}{
		{
			name:   "marker absent",
			input:  "## Trade Levels\nnothing here",
			kind:   models.TradeIntraday,
			absent: true,
		},
		{
			name:   "labels out of order",
			input:  "**Intraday**\nEntry: 100\nAction: BUY\nTarget: 110\nStop Loss: 95\nWin Probability: 70%\nReasoning: ok",
			kind:   models.TradeIntraday,
			absent: true,
		},
		{
			name:   "junk lines between labels are tolerated",
			input:  "**Intraday**\nAction: BUY\nnote: thin volume\nEntry: 100\nTarget: 110\nStop Loss: 95\nWin Probability: 70%\nReasoning: ok",
			kind:   models.TradeIntraday,
			absent: false,
		},
		{
			name:   "marker case-insensitive",
			input:  "**INTRADAY**\nAction: BUY\nEntry: 100\nTarget: 110\nStop Loss: 95\nWin Probability: 70%\nReasoning: ok",
			kind:   models.TradeIntraday,
			absent: false,
		},
		{
			name:   "blank line after marker is tolerated",
			input:  "**Swing**\n\nAction: BUY\nEntry: 100\nTarget: 110\nStop Loss: 95\nWin Probability: 70%\nReasoning: ok",
			kind:   models.TradeSwing,
			absent: false,
		},
		{
			name:   "unknown action value is stored as-is",
			input:  "**Delivery**\nAction: accumulate\nEntry: 100\nTarget: 110\nStop Loss: 95\nWin Probability: 70%\nReasoning: ok",
			kind:   models.TradeDelivery,
			absent: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, ok := ExtractTradeLevel(tt.input, tt.kind)
			assert.Equal(t, !tt.absent, ok)
			if ok {
				assert.Equal(t, tt.kind, level.Kind)
				assert.NotEmpty(t, level.Action)
			}
		})
	}
}

func TestExtractTradeLevelUnvalidatedAction(t *testing.T) {
	input := "**Delivery**\nAction: accumulate\nEntry: 100\nTarget: 110\nStop Loss: 95\nWin Probability: 70%\nReasoning: ok"

	level, ok := ExtractTradeLevel(input, models.TradeDelivery)
	require.True(t, ok)
	// Upper-cased but not validated against the known action set.
	assert.Equal(t, "ACCUMULATE", level.Action)
}

// The canonical end-to-end fixture: section fields and one trade level from
// a single response.
func TestParseWellFormedAnalysis(t *testing.T) {
	input := "## Current Price\n**₹100**\n\n## Fundamentals\n- Strong\n\n## Trade Levels\n**Intraday**\nAction: BUY\nEntry: 99\nTarget: 105\nStop Loss: 95\nWin Probability: 70%\nReasoning: test\n"

	sections := ParseSections(input)
	assert.Equal(t, Field{Value: "₹100", Found: true}, sections.CurrentPrice)
	assert.True(t, sections.Fundamentals.Found)
	assert.Contains(t, sections.Fundamentals.Value, "Strong")

	levels := ExtractTradeLevels(input)
	require.Len(t, levels, 1)
	assert.Equal(t, models.TradeIntraday, levels[0].Kind)
	assert.Equal(t, "BUY", levels[0].Action)
	assert.Equal(t, "99", levels[0].Entry)
}
