package analysis

import (
	"fmt"
	"strings"
)

// buildAnalysisPrompt creates the analysis prompt. The model is instructed
// to use search grounding, answer in the Hinglish register Indian traders
// use, and emit the exact markdown schema the parser consumes. Headings and
// field labels stay in English so extraction survives the language mix.
func buildAnalysisPrompt(subjectName string, hasImage bool) string {
	var sb strings.Builder

	if hasImage {
		name := subjectName
		if name == "" {
			name = "the stock identified in the image"
		}
		sb.WriteString(fmt.Sprintf(`Analyze the provided image.
If it is a stock chart, identify technical patterns (Support, Resistance, Trend, Candle patterns).
If it is a financial statement, analyze the numbers.
If it is a news clipping, analyze the sentiment.

Then, perform a comprehensive stock analysis for "%s".
If the stock name was not explicitly provided by me, try to identify it from the image and start your response with "Stock Identified: [Name]".

You MUST use Google Search to get the LATEST REAL-TIME data to supplement what is in the image.

IMPORTANT LANGUAGE INSTRUCTION:
The content of the analysis (Reasoning, News descriptions, Fundamentals descriptions, Technicals descriptions) MUST be in HINGLISH (a mix of Hindi and English).
Use language that Indian traders commonly use.
Example: "Market ka trend bullish lag raha hai kyunki RSI strong hai aur volume bhi increase ho raha hai."
`, name))
	} else {
		sb.WriteString(fmt.Sprintf(`Analyze the stock "%s" for the Indian Market (NSE/BSE) or US Market depending on the name.
You MUST use Google Search to get the LATEST REAL-TIME data.

IMPORTANT LANGUAGE INSTRUCTION:
The content of the analysis (Reasoning, News descriptions, Fundamentals descriptions, Technicals descriptions) MUST be in HINGLISH (a mix of Hindi and English).
Use language that Indian traders commonly use.
Example: "Stock fundamentals strong hai par technicals thoda weak lag raha hai short term ke liye."
`, subjectName))
	}

	sb.WriteString(`
Format your response EXACTLY with these Markdown headers (Keep the Headers and Keywords in ENGLISH for parsing):

## Current Price
[Just the price and currency, e.g., ₹2,450 INR]

## Fundamentals
[Bullet points in HINGLISH: Market Cap, PE Ratio, Sector, Revenue Growth, Key Strengths/Weaknesses]

## Technicals
[Bullet points in HINGLISH: RSI, MACD, Moving Averages (50/200 DMA), Chart Patterns, Volume analysis. Incorporate insights from the image if provided.]

## News
[Summary of top 3 recent news headlines affecting the stock in HINGLISH]

## Trade Levels
For each style, provide Action (BUY/SELL/WAIT), Entry, Target, Stop Loss, Win Probability, and brief Reasoning.

**Intraday**
Action: [BUY/SELL/WAIT] (Keep this keyword in ENGLISH)
Entry: [Price] (Keep this keyword in ENGLISH)
Target: [Price] (Keep this keyword in ENGLISH)
Stop Loss: [Price] (Keep this keyword in ENGLISH)
Win Probability: [Percentage, e.g. 75%] (Keep this keyword in ENGLISH)
Reasoning: [Short explanation in HINGLISH]

**Swing**
Action: [BUY/SELL/WAIT]
Entry: [Price]
Target: [Price]
Stop Loss: [Price]
Win Probability: [Percentage, e.g. 75%]
Reasoning: [Short explanation in HINGLISH]

**Delivery**
Action: [BUY/SELL/WAIT]
Entry: [Price]
Target: [Price]
Stop Loss: [Price]
Win Probability: [Percentage, e.g. 75%]
Reasoning: [Short explanation in HINGLISH]
`)

	return sb.String()
}
