package internal

type MarketsResponse struct {
	Markets []Market `json:"markets"`
}

// Market is the subset of a Kalshi market we care about. Prices are in
// cents of implied probability.
type Market struct {
	Ticker    string `json:"ticker"`
	Status    string `json:"status"`
	YesBid    int    `json:"yes_bid"`
	YesAsk    int    `json:"yes_ask"`
	LastPrice int    `json:"last_price"`
}

// Probability normalizes the market price to [0, 1]. Uses the bid/ask
// midpoint when there is a two-sided book, otherwise the last trade.
func (m *Market) Probability() float64 {
	cents := m.LastPrice
	if m.YesBid > 0 && m.YesAsk > 0 {
		cents = (m.YesBid + m.YesAsk) / 2
	}

	p := float64(cents) / 100.0
	// Markets never settle a live game at literal certainty.
	if p < 0.01 {
		p = 0.01
	}
	if p > 0.99 {
		p = 0.99
	}
	return p
}
