package parser

import (
	"strings"

	"github.com/skundu/trademind/internal/models"
)

// tradeLabels are the six labeled fields of a strategy block, in the fixed
// order they must appear.
var tradeLabels = []string{
	"action:",
	"entry:",
	"target:",
	"stop loss:",
	"win probability:",
	"reasoning:",
}

// ExtractTradeLevels extracts the present strategy blocks in the fixed
// Intraday, Swing, Delivery order. A kind absent from the text yields no
// entry, never a placeholder.
func ExtractTradeLevels(rawText string) []models.TradeLevel {
	levels := make([]models.TradeLevel, 0, len(models.TradeKinds))
	for _, kind := range models.TradeKinds {
		if level, ok := ExtractTradeLevel(rawText, kind); ok {
			levels = append(levels, level)
		}
	}
	return levels
}

// ExtractTradeLevel locates the bold-emphasized marker for the given kind
// and scans its blank-line-terminated block for the six labeled fields in
// fixed order. Lines between labels that match nothing are skipped; a block
// missing any label, or with labels out of order, yields (zero, false) — a
// normal absent outcome, not an error. The block boundary keeps one
// strategy's garbled block from borrowing lines out of the next one.
func ExtractTradeLevel(rawText string, kind models.TradeKind) (models.TradeLevel, bool) {
	lines := strings.Split(rawText, "\n")

	block := strategyBlock(lines, kind)
	if block == nil {
		return models.TradeLevel{}, false
	}

	values := make([]string, 0, len(tradeLabels))
	next := 0

	for i := 0; i < len(block) && next < len(tradeLabels); i++ {
		label := tradeLabels[next]
		idx := strings.Index(strings.ToLower(block[i]), label)
		if idx < 0 {
			continue
		}
		value := strings.TrimSpace(block[i][idx+len(label):])

		// Reasoning runs to the end of the block, not just its own line.
		if next == len(tradeLabels)-1 && i+1 < len(block) {
			rest := append([]string{value}, block[i+1:]...)
			value = strings.TrimSpace(strings.Join(rest, "\n"))
		}

		values = append(values, value)
		next++
	}

	if next < len(tradeLabels) {
		return models.TradeLevel{}, false
	}

	return models.TradeLevel{
		Kind:           kind,
		Action:         strings.ToUpper(values[0]),
		Entry:          values[1],
		Target:         values[2],
		StopLoss:       values[3],
		WinProbability: values[4],
		Reasoning:      values[5],
	}, true
}

// strategyBlock returns the lines of the blank-line-terminated block that
// follows the "**<kind>**" marker, or nil when the marker is absent. Blank
// lines between the marker and the first content line are tolerated.
func strategyBlock(lines []string, kind models.TradeKind) []string {
	marker := "**" + strings.ToLower(string(kind)) + "**"

	start := -1
	for i, line := range lines {
		if strings.Contains(strings.ToLower(line), marker) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return nil
	}

	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}

	end := start
	for end < len(lines) && strings.TrimSpace(lines[end]) != "" {
		end++
	}

	if start == end {
		return nil
	}
	return lines[start:end]
}
