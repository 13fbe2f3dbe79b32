package controller

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/RicTBest/paydaysite-sub000/db/mockdb"
	"github.com/RicTBest/paydaysite-sub000/model"
)

func TestOffensiveBonus(t *testing.T) {
	tests := map[string]struct {
		finals []model.Game
		want   *model.NFLTeam
	}{
		"single highest score": {
			finals: []model.Game{
				finalGame("g1", 2030, 1, model.TEAM_KCC, 35, model.TEAM_DEN, 10),
				finalGame("g2", 2030, 1, model.TEAM_SEA, 24, model.TEAM_ARI, 17),
			},
			want: model.TEAM_KCC,
		},
		"score tie broken by margin": {
			// Both score 30; DET won by 16, SEA by 6.
			finals: []model.Game{
				finalGame("g1", 2030, 1, model.TEAM_DET, 30, model.TEAM_CHI, 14),
				finalGame("g2", 2030, 1, model.TEAM_SEA, 30, model.TEAM_ARI, 24),
			},
			want: model.TEAM_DET,
		},
		"margin tie broken by team code": {
			// Identical 28-14 lines; BUF sorts before MIA.
			finals: []model.Game{
				finalGame("g1", 2030, 1, model.TEAM_MIA, 28, model.TEAM_NEP, 14),
				finalGame("g2", 2030, 1, model.TEAM_BUF, 28, model.TEAM_NYJ, 14),
			},
			want: model.TEAM_BUF,
		},
		"full tie falls back to team code": {
			// A 33-33 tie puts both teams at the top with a zero margin;
			// ATL sorts before DET.
			finals: []model.Game{
				finalGame("g1", 2030, 1, model.TEAM_DET, 33, model.TEAM_ATL, 33),
				finalGame("g2", 2030, 1, model.TEAM_GBP, 30, model.TEAM_MIN, 27),
			},
			want: model.TEAM_ATL,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, _ := offensiveBonus(tc.finals)
			if !got.Equals(tc.want) {
				t.Errorf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestDefensiveBonus(t *testing.T) {
	tests := map[string]struct {
		finals []model.Game
		want   *model.NFLTeam
	}{
		"held opponent to the week low": {
			finals: []model.Game{
				finalGame("g1", 2030, 1, model.TEAM_SFO, 23, model.TEAM_LAR, 3),
				finalGame("g2", 2030, 1, model.TEAM_GBP, 27, model.TEAM_MIN, 24),
			},
			want: model.TEAM_SFO,
		},
		"low score tie broken by margin": {
			// Both CHI and DET allowed 7; DET's margin is bigger.
			finals: []model.Game{
				finalGame("g1", 2030, 1, model.TEAM_CHI, 17, model.TEAM_CAR, 7),
				finalGame("g2", 2030, 1, model.TEAM_DET, 31, model.TEAM_ATL, 7),
			},
			want: model.TEAM_DET,
		},
		"shutout loser beats its own opponent": {
			// TEN was held to 0 by IND; IND gets the bonus even though
			// HOU won bigger elsewhere.
			finals: []model.Game{
				finalGame("g1", 2030, 1, model.TEAM_IND, 13, model.TEAM_TEN, 0),
				finalGame("g2", 2030, 1, model.TEAM_HOU, 42, model.TEAM_JAC, 7),
			},
			want: model.TEAM_IND,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, _ := defensiveBonus(tc.finals)
			if !got.Equals(tc.want) {
				t.Errorf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestRecomputeWeekAwards_unit(t *testing.T) {
	ctx := context.Background()
	const season, week = 2030, 3

	owner := &model.Owner{ID: 7, Name: "Dana"}

	games := []model.Game{
		finalGame("u-1", season, week, model.TEAM_KCC, 27, model.TEAM_LVR, 13),
		// In-progress games contribute nothing.
		{ID: "u-2", Season: season, Week: week, Home: model.TEAM_SEA, Away: model.TEAM_ARI, HomePoints: 14, AwayPoints: 10, Status: model.GameInProgress},
	}

	mdb := &mockdb.DB{}
	mdb.On("GetGamesForWeek", mock.Anything, season, week).Return(games, nil)
	mdb.On("GetTeamOwner", mock.Anything, model.TEAM_KCC).Return(owner, nil)
	mdb.On("ReplaceWeekAwards", mock.Anything, season, week, mock.Anything).Return(nil)

	ctrl := newTestController(mdb, nil, nil)
	awards, err := ctrl.RecomputeWeekAwards(ctx, season, week)
	if err != nil {
		t.Fatalf("error recomputing awards: %v", err)
	}

	// One final game: the winner takes WIN, OBO, and DBO.
	if len(awards) != 3 {
		t.Fatalf("expected 3 awards, got %d: %v", len(awards), awards)
	}
	types := make(map[model.AwardType]bool)
	for _, a := range awards {
		if !a.Team.Equals(model.TEAM_KCC) {
			t.Errorf("expected all awards for KCC, got %s", a.Team)
		}
		if a.OwnerID != owner.ID {
			t.Errorf("expected owner %d, got %d", owner.ID, a.OwnerID)
		}
		types[a.Type] = true
	}
	for _, want := range []model.AwardType{model.AwardWin, model.AwardOBO, model.AwardDBO} {
		if !types[want] {
			t.Errorf("missing award type %s", want)
		}
	}

	mdb.AssertExpectations(t)
}

func TestRecomputeWeekAwards_emptyWeekStillReplaces(t *testing.T) {
	ctx := context.Background()
	const season, week = 2030, 4

	mdb := &mockdb.DB{}
	mdb.On("GetGamesForWeek", mock.Anything, season, week).Return([]model.Game{}, nil)
	mdb.On("ReplaceWeekAwards", mock.Anything, season, week, []model.Award{}).Return(nil)

	ctrl := newTestController(mdb, nil, nil)
	awards, err := ctrl.RecomputeWeekAwards(ctx, season, week)
	if err != nil {
		t.Fatalf("error recomputing awards: %v", err)
	}
	if len(awards) != 0 {
		t.Fatalf("expected no awards, got %d", len(awards))
	}

	// The replace must still run so stale awards are cleared.
	mdb.AssertExpectations(t)
}

func TestBuildWeeklyAwards_tieGoesToAwayTeam(t *testing.T) {
	ctx := context.Background()
	const season, week = 2030, 5

	owner := &model.Owner{ID: 3, Name: "Evan"}
	finals := []model.Game{
		finalGame("t-1", season, week, model.TEAM_DEN, 21, model.TEAM_LAC, 21),
	}

	mdb := &mockdb.DB{}
	mdb.On("GetTeamOwner", mock.Anything, mock.Anything).Return(owner, nil)

	ctrl := newTestController(mdb, nil, nil)
	awards, err := ctrl.buildWeeklyAwards(ctx, season, week, finals)
	if err != nil {
		t.Fatalf("error building awards: %v", err)
	}

	var tieAward *model.Award
	for i := range awards {
		if awards[i].Type == model.AwardTieAway {
			tieAward = &awards[i]
		}
		if awards[i].Type == model.AwardWin {
			t.Errorf("a tie must not produce a WIN award: %v", awards[i])
		}
	}
	if tieAward == nil {
		t.Fatal("expected a TIE_AWAY award")
	}
	if !tieAward.Team.Equals(model.TEAM_LAC) {
		t.Errorf("tie award must go to the away team, got %s", tieAward.Team)
	}
}
