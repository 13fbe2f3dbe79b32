package db

import (
	"context"

	"github.com/RicTBest/paydaysite-sub000/model"
)

type DB interface {
	GetOwner(ctx context.Context, id int32) (*model.Owner, error)
	ListOwners(ctx context.Context) ([]model.Owner, error)
	SaveOwner(ctx context.Context, name string) (*model.Owner, error)
	// Bumps the owner's season-to-date goose counter. Called by the
	// week-close operation, never by award recomputation.
	IncrementGooseCount(ctx context.Context, ownerID int32) error

	// GetTeamOwner resolves a team to its active owner. Returns
	// ErrTeamNotFound when the team has no active registry row.
	GetTeamOwner(ctx context.Context, team *model.NFLTeam) (*model.Owner, error)
	ListOwnerTeams(ctx context.Context, ownerID int32) ([]*model.NFLTeam, error)
	SaveTeam(ctx context.Context, t *model.Team) error

	SaveGames(ctx context.Context, games []model.Game) error
	GetGamesForWeek(ctx context.Context, season, week int) ([]model.Game, error)
	// GetGameForTeam returns ErrGameNotFound on a bye week.
	GetGameForTeam(ctx context.Context, season, week int, team *model.NFLTeam) (*model.Game, error)
	GetFinalRegularSeasonGames(ctx context.Context, season int) ([]model.Game, error)

	// ReplaceWeekAwards deletes every weekly-type award for the
	// (season, week) and inserts the new set in a single transaction,
	// so a failed recompute never leaves a partial award set behind.
	ReplaceWeekAwards(ctx context.Context, season, week int, awards []model.Award) error
	GetAwardsForWeek(ctx context.Context, season, week int) ([]model.Award, error)
	GetOwnerWeekAwards(ctx context.Context, ownerID int32, season, week int) ([]model.Award, error)
	HasAward(ctx context.Context, season int, awardType model.AwardType, team *model.NFLTeam) (bool, error)
	InsertAward(ctx context.Context, a *model.Award) error
	GetSeasonPoints(ctx context.Context, season int) ([]model.LeaderboardRow, error)

	// CloseWeek records the week as closed. Returns false if it was
	// closed before, making goose-count bookkeeping idempotent.
	CloseWeek(ctx context.Context, season, week int) (bool, error)
}
