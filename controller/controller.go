package controller

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/sirupsen/logrus"

	"github.com/RicTBest/paydaysite-sub000/config"
	"github.com/RicTBest/paydaysite-sub000/db"
	"github.com/RicTBest/paydaysite-sub000/model"
	"github.com/RicTBest/paydaysite-sub000/platforms/espn"
	"github.com/RicTBest/paydaysite-sub000/platforms/kalshi"
)

// C encapsulates business logic without worrying about any web layers
type C interface {
	// RecomputeWeekAwards rebuilds the weekly award set for the week
	// from the final games on record. Safe to call repeatedly; the
	// result always reflects only the latest game data.
	RecomputeWeekAwards(ctx context.Context, season, week int) ([]model.Award, error)
	GetWeekAwards(ctx context.Context, season, week int) ([]model.Award, error)
	GetLeaderboard(ctx context.Context, season int) ([]model.LeaderboardRow, error)
	// AddManualAward records a commissioner-entered award such as
	// COACH_FIRED. The owner is resolved from the team registry.
	AddManualAward(ctx context.Context, season, week int, awardType model.AwardType, team *model.NFLTeam, points int, notes string) (*model.Award, error)

	TeamWinProbability(ctx context.Context, season, week int, team *model.NFLTeam) (*model.WinProbability, error)
	// WeekWinProbabilities fetches probabilities for every team playing
	// in the week with one provider call per game. Batch callers must
	// use this and inject the result into GooseProbability rather than
	// triggering per-team lookups.
	WeekWinProbabilities(ctx context.Context, season, week int) (map[string]model.WinProbability, error)

	// GooseProbability never fails: lookup problems degrade to a zero
	// probability with the reason recorded in the result.
	GooseProbability(ctx context.Context, ownerID int32, season, week int, probs map[string]model.WinProbability) *model.GooseResult
	GooseReport(ctx context.Context, season, week int) ([]model.GooseResult, error)

	UpdatePlayoffAwards(ctx context.Context, season int) (*PlayoffSummary, error)

	SyncWeekScores(ctx context.Context, season, week int) ([]model.Game, error)
	// CloseWeek marks a fully-final week closed and bumps goose counts
	// for owners who went winless. Idempotent.
	CloseWeek(ctx context.Context, season, week int) error
	RunPeriodicScoreUpdates(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup)
}

type controller struct {
	clock  clock.Clock
	db     db.DB
	odds   kalshi.Client
	scores espn.Client
	cfg    *config.Config
	log    *logrus.Logger

	// Serializes recomputation per (season, week); the delete+insert is
	// transactional in the db layer but two interleaved recomputes would
	// still race on which game snapshot wins.
	mu        sync.Mutex
	weekLocks map[string]*sync.Mutex
}

func New(clock clock.Clock, db db.DB, odds kalshi.Client, scores espn.Client, cfg *config.Config, log *logrus.Logger) (C, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	c := &controller{
		clock:     clock,
		db:        db,
		odds:      odds,
		scores:    scores,
		cfg:       cfg,
		log:       log,
		weekLocks: make(map[string]*sync.Mutex),
	}
	return c, nil
}

func (c *controller) weekLock(season, week int) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := fmt.Sprintf("%d-%d", season, week)
	l, found := c.weekLocks[key]
	if !found {
		l = &sync.Mutex{}
		c.weekLocks[key] = l
	}
	return l
}

func (c *controller) GetLeaderboard(ctx context.Context, season int) ([]model.LeaderboardRow, error) {
	rows, err := c.db.GetSeasonPoints(ctx, season)
	if err != nil {
		return nil, fmt.Errorf("error getting leaderboard for season %d: %w", season, err)
	}

	// Points convert to dollars only here, at aggregation time.
	for i := range rows {
		rows[i].Dollars = rows[i].Points * c.cfg.Payouts.DollarsPerPoint
	}
	return rows, nil
}
