package kalshi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/RicTBest/paydaysite-sub000/model"
	"github.com/RicTBest/paydaysite-sub000/platforms/kalshi/internal"
)

const KalshiURL = "https://api.elections.kalshi.com/trade-api/v2"

// Series carrying NFL single-game winner markets.
const gameSeries = "KXNFLGAME"

type Client interface {
	// HomeWinProbability returns the market-implied probability that the
	// home team wins the given game. The away probability is the
	// complement; callers derive it.
	HomeWinProbability(ctx context.Context, g *model.Game) (float64, error)
}

type client struct {
	url        string
	httpClient *http.Client
}

func New() (Client, error) {
	return NewWithURL(KalshiURL)
}

func NewWithURL(baseURL string) (Client, error) {
	if baseURL == "" {
		baseURL = KalshiURL
	}
	c := &client{
		url: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	return c, nil
}

func NewForTest(url string) Client {
	c, _ := NewWithURL(url)
	return c
}

func (c *client) HomeWinProbability(ctx context.Context, g *model.Game) (float64, error) {
	event := eventTicker(g)

	u := fmt.Sprintf("%s/markets?%s", c.url, url.Values{"event_ticker": []string{event}}.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, fmt.Errorf("error creating http request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("error sending http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status code from kalshi: %d", resp.StatusCode)
	}

	var parsed internal.MarketsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return 0, fmt.Errorf("error parsing response from kalshi: %w", err)
	}

	// Each game event has one market per team; the ticker ends with the
	// team's wire code.
	want := fmt.Sprintf("-%s", g.Home.ShortCode())
	for _, m := range parsed.Markets {
		if strings.HasSuffix(m.Ticker, want) {
			return m.Probability(), nil
		}
	}

	return 0, fmt.Errorf("no market for %s in event %s", g.Home, event)
}

// eventTicker builds the Kalshi event ticker for a game, e.g.
// KXNFLGAME-25SEP07DETGB for Detroit at Green Bay on 2025-09-07.
func eventTicker(g *model.Game) string {
	date := strings.ToUpper(g.Kickoff.UTC().Format("06Jan02"))
	return fmt.Sprintf("%s-%s%s%s", gameSeries, date, g.Away.ShortCode(), g.Home.ShortCode())
}
