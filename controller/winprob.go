package controller

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/RicTBest/paydaysite-sub000/db"
	"github.com/RicTBest/paydaysite-sub000/model"
)

func (c *controller) TeamWinProbability(ctx context.Context, season, week int, team *model.NFLTeam) (*model.WinProbability, error) {
	game, err := c.db.GetGameForTeam(ctx, season, week, team)
	if err != nil {
		if errors.Is(err, db.ErrGameNotFound) {
			return &model.WinProbability{
				Team:           team,
				Season:         season,
				Week:           week,
				WinProbability: 0,
				Confidence:     model.ConfidenceByeWeek,
			}, nil
		}
		return nil, fmt.Errorf("error finding game for %s in week %d of %d: %w", team, week, season, err)
	}

	wp := c.gameWinProbability(ctx, game, team)
	return &wp, nil
}

func (c *controller) WeekWinProbabilities(ctx context.Context, season, week int) (map[string]model.WinProbability, error) {
	games, err := c.db.GetGamesForWeek(ctx, season, week)
	if err != nil {
		return nil, fmt.Errorf("error loading games for week %d of %d: %w", week, season, err)
	}

	// One provider lookup per game covers both sides; batch consumers
	// (the goose report in particular) depend on that.
	probs := make(map[string]model.WinProbability, len(games)*2)
	for i := range games {
		g := &games[i]
		home := c.gameWinProbability(ctx, g, g.Home)
		away := home.Complement(g.Away)
		probs[g.Home.String()] = home
		probs[g.Away.String()] = away
	}
	return probs, nil
}

// gameWinProbability produces a team's win probability for a specific
// game: authoritative for final games, live market odds when available,
// and a strength-rating estimate otherwise.
func (c *controller) gameWinProbability(ctx context.Context, game *model.Game, team *model.NFLTeam) model.WinProbability {
	wp := model.WinProbability{
		Team:     team,
		Season:   game.Season,
		Week:     game.Week,
		Opponent: game.Opponent(team),
	}

	if game.Final() {
		wp.Confidence = model.ConfidenceFinal
		// A tie pays the away team, so it counts as the away team's win.
		if game.Winner().Equals(team) {
			wp.WinProbability = 1.0
		}
		return wp
	}

	if c.odds == nil {
		wp.WinProbability = c.fallbackProbability(game, team)
		wp.Confidence = model.ConfidenceCalculated
		return wp
	}

	homeProb, err := c.marketProbabilityWithRetry(ctx, game)
	if err != nil {
		c.log.WithError(err).WithFields(logrus.Fields{
			"game": game.ID,
			"team": team.String(),
		}).Warn("odds provider unavailable, using strength fallback")
		wp.WinProbability = c.fallbackProbability(game, team)
		wp.Confidence = model.ConfidenceFallback
		return wp
	}

	if game.Home.Equals(team) {
		wp.WinProbability = homeProb
	} else {
		wp.WinProbability = 1 - homeProb
	}
	wp.Confidence = model.ConfidenceHigh
	return wp
}

// marketProbabilityWithRetry asks the odds provider up to the configured
// number of attempts, backing off linearly (1x, 2x, ... the base delay)
// between failures.
func (c *controller) marketProbabilityWithRetry(ctx context.Context, game *model.Game) (float64, error) {
	attempts := c.cfg.Odds.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, c.cfg.Odds.Timeout)
		p, err := c.odds.HomeWinProbability(callCtx, game)
		cancel()
		if err == nil {
			return p, nil
		}
		lastErr = err

		if attempt < attempts {
			c.clock.Sleep(time.Duration(attempt) * c.cfg.Odds.RetryBaseDelay)
		}
	}
	return 0, lastErr
}

// fallbackProbability is the deterministic estimate used when no market
// is available: a logistic over the static strength ratings plus home
// field advantage.
func (c *controller) fallbackProbability(game *model.Game, team *model.NFLTeam) float64 {
	s := &c.cfg.Strength
	diff := s.Rating(game.Home.String()) + s.HomeAdvantage - s.Rating(game.Away.String())
	homeProb := 1.0 / (1.0 + math.Exp(-diff/s.Scale))

	if game.Home.Equals(team) {
		return homeProb
	}
	return 1 - homeProb
}
