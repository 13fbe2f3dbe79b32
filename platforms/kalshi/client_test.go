package kalshi

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/RicTBest/paydaysite-sub000/model"
	"github.com/RicTBest/paydaysite-sub000/testutils"
)

func testGame(home, away *model.NFLTeam) *model.Game {
	return &model.Game{
		ID:      "k-1",
		Season:  2025,
		Week:    1,
		Home:    home,
		Away:    away,
		Status:  model.GameScheduled,
		Kickoff: time.Date(2025, time.September, 7, 17, 0, 0, 0, time.UTC),
	}
}

func TestEventTicker(t *testing.T) {
	tests := []struct {
		home *model.NFLTeam
		away *model.NFLTeam
		want string
	}{
		{home: model.TEAM_GBP, away: model.TEAM_DET, want: "KXNFLGAME-25SEP07DETGB"},
		{home: model.TEAM_KCC, away: model.TEAM_BAL, want: "KXNFLGAME-25SEP07BALKC"},
		{home: model.TEAM_NYJ, away: model.TEAM_NEP, want: "KXNFLGAME-25SEP07NENYJ"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			got := eventTicker(testGame(tc.home, tc.away))
			if got != tc.want {
				t.Errorf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestHomeWinProbability(t *testing.T) {
	fake := testutils.NewFakeKalshiServer()
	defer fake.Close()

	// A two-sided book: the midpoint of 58/62 implies 60%.
	fake.SetHomeMarket(model.TEAM_GBP.ShortCode(), 58, 62, 95)

	c := NewForTest(fake.URL())
	p, err := c.HomeWinProbability(context.Background(), testGame(model.TEAM_GBP, model.TEAM_DET))
	if err != nil {
		t.Fatalf("error getting probability: %v", err)
	}
	if math.Abs(p-0.60) > 1e-9 {
		t.Errorf("expected 0.60, got %f", p)
	}
}

func TestHomeWinProbability_lastPriceFallback(t *testing.T) {
	fake := testutils.NewFakeKalshiServer()
	defer fake.Close()

	// No book, only a last trade at 73 cents.
	fake.SetHomeMarket(model.TEAM_KCC.ShortCode(), 0, 0, 73)

	c := NewForTest(fake.URL())
	p, err := c.HomeWinProbability(context.Background(), testGame(model.TEAM_KCC, model.TEAM_BAL))
	if err != nil {
		t.Fatalf("error getting probability: %v", err)
	}
	if math.Abs(p-0.73) > 1e-9 {
		t.Errorf("expected 0.73, got %f", p)
	}
}

func TestHomeWinProbability_noMarket(t *testing.T) {
	fake := testutils.NewFakeKalshiServer()
	defer fake.Close()

	c := NewForTest(fake.URL())
	_, err := c.HomeWinProbability(context.Background(), testGame(model.TEAM_GBP, model.TEAM_DET))
	if err == nil {
		t.Fatal("expected an error when no market exists")
	}
}

func TestHomeWinProbability_serverError(t *testing.T) {
	fake := testutils.NewFakeKalshiServer()
	defer fake.Close()

	fake.SetHomeMarket(model.TEAM_GBP.ShortCode(), 58, 62, 0)
	fake.FailNext(1)

	c := NewForTest(fake.URL())
	_, err := c.HomeWinProbability(context.Background(), testGame(model.TEAM_GBP, model.TEAM_DET))
	if err == nil {
		t.Fatal("expected an error on a 500 response")
	}
}
