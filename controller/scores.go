package controller

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/RicTBest/paydaysite-sub000/db"
	"github.com/RicTBest/paydaysite-sub000/model"
)

func (c *controller) SyncWeekScores(ctx context.Context, season, week int) ([]model.Game, error) {
	if c.scores == nil {
		return nil, errors.New("no scoreboard client configured")
	}

	callCtx, cancel := context.WithTimeout(ctx, c.cfg.Scores.Timeout)
	defer cancel()

	games, err := c.scores.Scoreboard(callCtx, season, week)
	if err != nil {
		return nil, fmt.Errorf("error fetching scoreboard for week %d of %d: %w", week, season, err)
	}

	if err := c.db.SaveGames(ctx, games); err != nil {
		return nil, err
	}

	c.log.WithFields(logrus.Fields{
		"season": season,
		"week":   week,
		"games":  len(games),
	}).Info("synced scoreboard")

	return games, nil
}

// CloseWeek marks a fully-final week as closed and charges a goose to
// every owner who finished it without a win-type award. The weeks_closed
// ledger makes the goose increments happen at most once per week no
// matter how often this is called.
func (c *controller) CloseWeek(ctx context.Context, season, week int) error {
	games, err := c.db.GetGamesForWeek(ctx, season, week)
	if err != nil {
		return fmt.Errorf("error loading games for week %d of %d: %w", week, season, err)
	}
	if len(games) == 0 {
		return fmt.Errorf("cannot close week %d of %d: no games on record", week, season)
	}
	for _, g := range games {
		if !g.Final() {
			return fmt.Errorf("cannot close week %d of %d: game %s is not final", week, season, g.ID)
		}
	}

	closed, err := c.db.CloseWeek(ctx, season, week)
	if err != nil {
		return err
	}
	if !closed {
		c.log.WithFields(logrus.Fields{"season": season, "week": week}).Info("week already closed")
		return nil
	}

	owners, err := c.db.ListOwners(ctx)
	if err != nil {
		return fmt.Errorf("error listing owners: %w", err)
	}

	for _, o := range owners {
		teams, err := c.db.ListOwnerTeams(ctx, o.ID)
		if err != nil {
			return fmt.Errorf("error listing teams for owner %d: %w", o.ID, err)
		}
		if len(teams) == 0 {
			continue
		}

		awards, err := c.db.GetOwnerWeekAwards(ctx, o.ID, season, week)
		if err != nil {
			return fmt.Errorf("error loading awards for owner %d: %w", o.ID, err)
		}

		won := false
		for _, a := range awards {
			if a.Type.WinType() {
				won = true
				break
			}
		}
		if won {
			continue
		}

		if err := c.db.IncrementGooseCount(ctx, o.ID); err != nil {
			return err
		}
		c.log.WithFields(logrus.Fields{
			"season": season,
			"week":   week,
			"owner":  o.Name,
		}).Info("goose recorded")
	}

	return nil
}

func (c *controller) AddManualAward(ctx context.Context, season, week int, awardType model.AwardType, team *model.NFLTeam, points int, notes string) (*model.Award, error) {
	if awardType.Weekly() {
		return nil, fmt.Errorf("%s awards are computed, not entered manually", awardType)
	}

	owner, err := c.db.GetTeamOwner(ctx, team)
	if err != nil {
		if errors.Is(err, db.ErrTeamNotFound) {
			return nil, fmt.Errorf("team %s has no active owner", team)
		}
		return nil, err
	}

	award := &model.Award{
		Season:  season,
		Week:    week,
		Type:    awardType,
		Team:    team,
		OwnerID: owner.ID,
		Points:  points,
		Notes:   notes,
	}
	if err := c.db.InsertAward(ctx, award); err != nil {
		return nil, err
	}
	return award, nil
}

func (c *controller) RunPeriodicScoreUpdates(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	ticker := time.NewTicker(frequency)
	defer ticker.Stop()
	defer wg.Done()

	for {
		select {
		case <-shutdown:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			season, week := currentSeasonWeek(c.clock.Now())
			if _, err := c.SyncWeekScores(ctx, season, week); err != nil {
				c.log.WithError(err).Error("periodic score sync failed")
			}
			cancel()
		}
	}
}

// currentSeasonWeek approximates where the calendar sits in the league
// year. The season is labeled by its September; weeks tick over every
// Thursday from the first Thursday after Labor Day weekend.
func currentSeasonWeek(now time.Time) (season, week int) {
	now = now.UTC()
	season = now.Year()
	if now.Month() < time.August {
		season--
	}

	kickoff := seasonKickoff(season)
	if now.Before(kickoff) {
		return season, 1
	}

	week = int(now.Sub(kickoff)/(7*24*time.Hour)) + 1
	if week > model.WeekSuperBowl {
		week = model.WeekSuperBowl
	}
	return season, week
}

// seasonKickoff is the Thursday of the season's opening week: the first
// Thursday of September falling on the 4th or later.
func seasonKickoff(season int) time.Time {
	d := time.Date(season, time.September, 4, 0, 0, 0, 0, time.UTC)
	for d.Weekday() != time.Thursday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}
