package espn

import (
	"context"
	"testing"
	"time"

	"github.com/RicTBest/paydaysite-sub000/model"
	"github.com/RicTBest/paydaysite-sub000/testutils"
)

func TestWeekParams(t *testing.T) {
	tests := []struct {
		week       int
		seasonType int
		espnWeek   int
	}{
		{week: 1, seasonType: 2, espnWeek: 1},
		{week: 18, seasonType: 2, espnWeek: 18},
		{week: model.WeekWildCard, seasonType: 3, espnWeek: 1},
		{week: model.WeekDivisional, seasonType: 3, espnWeek: 2},
		{week: model.WeekConference, seasonType: 3, espnWeek: 3},
		// ESPN's postseason week 4 is the Pro Bowl.
		{week: model.WeekSuperBowl, seasonType: 3, espnWeek: 5},
	}

	for _, tc := range tests {
		seasonType, espnWeek := weekParams(tc.week)
		if seasonType != tc.seasonType || espnWeek != tc.espnWeek {
			t.Errorf("week %d: expected (%d, %d), got (%d, %d)", tc.week, tc.seasonType, tc.espnWeek, seasonType, espnWeek)
		}
	}
}

func TestScoreboard(t *testing.T) {
	fake := testutils.NewFakeESPNServer()
	defer fake.Close()

	kickoff := time.Date(2025, time.September, 7, 17, 0, 0, 0, time.UTC)
	fake.SetScoreboard(2025, 1, []model.Game{
		{ID: "e-1", Season: 2025, Week: 1, Home: model.TEAM_GBP, Away: model.TEAM_CHI, HomePoints: 24, AwayPoints: 17, Status: model.GameFinal, Kickoff: kickoff},
		{ID: "e-2", Season: 2025, Week: 1, Home: model.TEAM_SEA, Away: model.TEAM_ARI, Status: model.GameScheduled, Kickoff: kickoff},
	})

	c := NewForTest(fake.URL())
	games, err := c.Scoreboard(context.Background(), 2025, 1)
	if err != nil {
		t.Fatalf("error fetching scoreboard: %v", err)
	}

	if len(games) != 2 {
		t.Fatalf("expected 2 games, got %d", len(games))
	}

	g := games[0]
	if g.ID != "e-1" {
		t.Errorf("unexpected game id: %s", g.ID)
	}
	if !g.Home.Equals(model.TEAM_GBP) || !g.Away.Equals(model.TEAM_CHI) {
		t.Errorf("unexpected teams: %s at %s", g.Away, g.Home)
	}
	if g.HomePoints != 24 || g.AwayPoints != 17 {
		t.Errorf("unexpected score: %d-%d", g.HomePoints, g.AwayPoints)
	}
	if !g.Final() {
		t.Errorf("expected a final game, got %s", g.Status)
	}
	if !g.Kickoff.Equal(kickoff) {
		t.Errorf("kickoff did not round trip: %v", g.Kickoff)
	}

	if games[1].Status != model.GameScheduled {
		t.Errorf("expected a scheduled game, got %s", games[1].Status)
	}
}

func TestScoreboard_playoffWeekMapping(t *testing.T) {
	fake := testutils.NewFakeESPNServer()
	defer fake.Close()

	kickoff := time.Date(2026, time.January, 11, 18, 0, 0, 0, time.UTC)
	fake.SetScoreboard(2025, model.WeekWildCard, []model.Game{
		{ID: "e-3", Season: 2025, Week: model.WeekWildCard, Home: model.TEAM_BUF, Away: model.TEAM_MIA, HomePoints: 31, AwayPoints: 20, Status: model.GameFinal, Kickoff: kickoff},
	})

	c := NewForTest(fake.URL())
	games, err := c.Scoreboard(context.Background(), 2025, model.WeekWildCard)
	if err != nil {
		t.Fatalf("error fetching playoff scoreboard: %v", err)
	}

	if len(games) != 1 {
		t.Fatalf("expected 1 game, got %d", len(games))
	}
	if games[0].Week != model.WeekWildCard {
		t.Errorf("expected the league week slot %d, got %d", model.WeekWildCard, games[0].Week)
	}
}

func TestScoreboard_emptyWeek(t *testing.T) {
	fake := testutils.NewFakeESPNServer()
	defer fake.Close()

	c := NewForTest(fake.URL())
	games, err := c.Scoreboard(context.Background(), 2025, 8)
	if err != nil {
		t.Fatalf("error fetching empty scoreboard: %v", err)
	}
	if len(games) != 0 {
		t.Errorf("expected no games, got %d", len(games))
	}
}
