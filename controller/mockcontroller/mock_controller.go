package mockcontroller

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/RicTBest/paydaysite-sub000/controller"
	"github.com/RicTBest/paydaysite-sub000/model"
)

type C struct {
	mock.Mock
}

func (c *C) RecomputeWeekAwards(ctx context.Context, season, week int) ([]model.Award, error) {
	args := c.Called(ctx, season, week)

	var r []model.Award
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Award)
	}
	return r, args.Error(1)
}

func (c *C) GetWeekAwards(ctx context.Context, season, week int) ([]model.Award, error) {
	args := c.Called(ctx, season, week)

	var r []model.Award
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Award)
	}
	return r, args.Error(1)
}

func (c *C) GetLeaderboard(ctx context.Context, season int) ([]model.LeaderboardRow, error) {
	args := c.Called(ctx, season)

	var r []model.LeaderboardRow
	if args.Get(0) != nil {
		r = args.Get(0).([]model.LeaderboardRow)
	}
	return r, args.Error(1)
}

func (c *C) AddManualAward(ctx context.Context, season, week int, awardType model.AwardType, team *model.NFLTeam, points int, notes string) (*model.Award, error) {
	args := c.Called(ctx, season, week, awardType, team, points, notes)

	var a *model.Award
	if args.Get(0) != nil {
		a = args.Get(0).(*model.Award)
	}
	return a, args.Error(1)
}

func (c *C) TeamWinProbability(ctx context.Context, season, week int, team *model.NFLTeam) (*model.WinProbability, error) {
	args := c.Called(ctx, season, week, team)

	var p *model.WinProbability
	if args.Get(0) != nil {
		p = args.Get(0).(*model.WinProbability)
	}
	return p, args.Error(1)
}

func (c *C) WeekWinProbabilities(ctx context.Context, season, week int) (map[string]model.WinProbability, error) {
	args := c.Called(ctx, season, week)

	var r map[string]model.WinProbability
	if args.Get(0) != nil {
		r = args.Get(0).(map[string]model.WinProbability)
	}
	return r, args.Error(1)
}

func (c *C) GooseProbability(ctx context.Context, ownerID int32, season, week int, probs map[string]model.WinProbability) *model.GooseResult {
	args := c.Called(ctx, ownerID, season, week, probs)

	var r *model.GooseResult
	if args.Get(0) != nil {
		r = args.Get(0).(*model.GooseResult)
	}
	return r
}

func (c *C) GooseReport(ctx context.Context, season, week int) ([]model.GooseResult, error) {
	args := c.Called(ctx, season, week)

	var r []model.GooseResult
	if args.Get(0) != nil {
		r = args.Get(0).([]model.GooseResult)
	}
	return r, args.Error(1)
}

func (c *C) UpdatePlayoffAwards(ctx context.Context, season int) (*controller.PlayoffSummary, error) {
	args := c.Called(ctx, season)

	var s *controller.PlayoffSummary
	if args.Get(0) != nil {
		s = args.Get(0).(*controller.PlayoffSummary)
	}
	return s, args.Error(1)
}

func (c *C) SyncWeekScores(ctx context.Context, season, week int) ([]model.Game, error) {
	args := c.Called(ctx, season, week)

	var r []model.Game
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Game)
	}
	return r, args.Error(1)
}

func (c *C) CloseWeek(ctx context.Context, season, week int) error {
	args := c.Called(ctx, season, week)
	return args.Error(0)
}

func (c *C) RunPeriodicScoreUpdates(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	c.Called(frequency, shutdown, wg)
}
