package mockdb

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/RicTBest/paydaysite-sub000/model"
)

type DB struct {
	mock.Mock
}

func (db *DB) GetOwner(ctx context.Context, id int32) (*model.Owner, error) {
	args := db.Called(ctx, id)

	var o *model.Owner
	if args.Get(0) != nil {
		o = args.Get(0).(*model.Owner)
	}
	return o, args.Error(1)
}

func (db *DB) ListOwners(ctx context.Context) ([]model.Owner, error) {
	args := db.Called(ctx)

	var r []model.Owner
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Owner)
	}
	return r, args.Error(1)
}

func (db *DB) SaveOwner(ctx context.Context, name string) (*model.Owner, error) {
	args := db.Called(ctx, name)

	var o *model.Owner
	if args.Get(0) != nil {
		o = args.Get(0).(*model.Owner)
	}
	return o, args.Error(1)
}

func (db *DB) IncrementGooseCount(ctx context.Context, ownerID int32) error {
	args := db.Called(ctx, ownerID)
	return args.Error(0)
}

func (db *DB) GetTeamOwner(ctx context.Context, team *model.NFLTeam) (*model.Owner, error) {
	args := db.Called(ctx, team)

	var o *model.Owner
	if args.Get(0) != nil {
		o = args.Get(0).(*model.Owner)
	}
	return o, args.Error(1)
}

func (db *DB) ListOwnerTeams(ctx context.Context, ownerID int32) ([]*model.NFLTeam, error) {
	args := db.Called(ctx, ownerID)

	var r []*model.NFLTeam
	if args.Get(0) != nil {
		r = args.Get(0).([]*model.NFLTeam)
	}
	return r, args.Error(1)
}

func (db *DB) SaveTeam(ctx context.Context, t *model.Team) error {
	args := db.Called(ctx, t)
	return args.Error(0)
}

func (db *DB) SaveGames(ctx context.Context, games []model.Game) error {
	args := db.Called(ctx, games)
	return args.Error(0)
}

func (db *DB) GetGamesForWeek(ctx context.Context, season, week int) ([]model.Game, error) {
	args := db.Called(ctx, season, week)

	var r []model.Game
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Game)
	}
	return r, args.Error(1)
}

func (db *DB) GetGameForTeam(ctx context.Context, season, week int, team *model.NFLTeam) (*model.Game, error) {
	args := db.Called(ctx, season, week, team)

	var g *model.Game
	if args.Get(0) != nil {
		g = args.Get(0).(*model.Game)
	}
	return g, args.Error(1)
}

func (db *DB) GetFinalRegularSeasonGames(ctx context.Context, season int) ([]model.Game, error) {
	args := db.Called(ctx, season)

	var r []model.Game
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Game)
	}
	return r, args.Error(1)
}

func (db *DB) ReplaceWeekAwards(ctx context.Context, season, week int, awards []model.Award) error {
	args := db.Called(ctx, season, week, awards)
	return args.Error(0)
}

func (db *DB) GetAwardsForWeek(ctx context.Context, season, week int) ([]model.Award, error) {
	args := db.Called(ctx, season, week)

	var r []model.Award
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Award)
	}
	return r, args.Error(1)
}

func (db *DB) GetOwnerWeekAwards(ctx context.Context, ownerID int32, season, week int) ([]model.Award, error) {
	args := db.Called(ctx, ownerID, season, week)

	var r []model.Award
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Award)
	}
	return r, args.Error(1)
}

func (db *DB) HasAward(ctx context.Context, season int, awardType model.AwardType, team *model.NFLTeam) (bool, error) {
	args := db.Called(ctx, season, awardType, team)
	return args.Bool(0), args.Error(1)
}

func (db *DB) InsertAward(ctx context.Context, a *model.Award) error {
	args := db.Called(ctx, a)
	return args.Error(0)
}

func (db *DB) GetSeasonPoints(ctx context.Context, season int) ([]model.LeaderboardRow, error) {
	args := db.Called(ctx, season)

	var r []model.LeaderboardRow
	if args.Get(0) != nil {
		r = args.Get(0).([]model.LeaderboardRow)
	}
	return r, args.Error(1)
}

func (db *DB) CloseWeek(ctx context.Context, season, week int) (bool, error) {
	args := db.Called(ctx, season, week)
	return args.Bool(0), args.Error(1)
}
