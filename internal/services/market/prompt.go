package market

import (
	"fmt"
	"time"
)

// istLocation resolves the Indian market timezone, falling back to a fixed
// +05:30 offset when the tz database is unavailable.
func istLocation() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return time.FixedZone("IST", 5*3600+1800)
	}
	return loc
}

// buildEarningsPrompt asks for today's NSE/BSE results calendar as a strict
// JSON array matching models.EarningsItem.
func buildEarningsPrompt() string {
	today := time.Now().In(istLocation()).Format("Monday, 2 January 2006")

	return fmt.Sprintf(`Find the major companies listed on NSE/BSE (Indian Stock Market) that are scheduled to declare their quarterly results (Earnings) or board meeting outcomes TODAY, %s.

Use Google Search to find the latest calendar or news for "India stock market results today".

Return the output as a STRICT JSON array of objects.
Each object must have:
- "symbol": Stock symbol or short name.
- "name": Full company name.
- "expectation": A very short summary (e.g. "Q3 Earnings", "Dividend", "Stock Split").

If no major companies are declaring today, find upcoming ones for tomorrow and note that in the "expectation".

Return ONLY valid JSON. No markdown formatting.
Example:
[
  {"symbol": "TCS", "name": "Tata Consultancy Services", "expectation": "Q3 Results"},
  {"symbol": "INFY", "name": "Infosys", "expectation": "Dividend"}
]
`, today)
}

// buildOverviewPrompt asks for the live NSE snapshot as a strict JSON object
// matching models.MarketOverview.
func buildOverviewPrompt() string {
	return `Use Google Search to find the real-time LIVE market data for the Indian Stock Market (NSE) for TODAY.
Identify:
1. Top 5 Gainers (Nifty 50 or broad market)
2. Top 5 Losers (Nifty 50 or broad market)
3. 5 Stocks showing 52-Week High Breakout today.

Return the output as a STRICT JSON object with these keys: "gainers", "losers", "breakouts".
Each value should be an array of objects with: "symbol", "price", "change".

Example:
{
  "gainers": [{"symbol": "RELIANCE", "price": "2450", "change": "+2.5%"}],
  "losers": [{"symbol": "TCS", "price": "3200", "change": "-1.2%"}],
  "breakouts": [{"symbol": "ZOMATO", "price": "140", "change": "+5%"}]
}

Ensure the data is for TODAY.
Return ONLY valid JSON.
`
}
