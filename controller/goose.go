package controller

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/RicTBest/paydaysite-sub000/db"
	"github.com/RicTBest/paydaysite-sub000/model"
)

// GooseProbability computes the chance that every one of an owner's
// active teams fails to win the week, as the product of per-team lose
// probabilities (independent-events assumption). The result always
// carries a per-team breakdown and a factor-by-factor calculation
// string; lookup failures degrade to probability 0 with a reason rather
// than an error, since this feeds a best-effort display.
func (c *controller) GooseProbability(ctx context.Context, ownerID int32, season, week int, probs map[string]model.WinProbability) *model.GooseResult {
	result := &model.GooseResult{
		OwnerID: ownerID,
		Season:  season,
		Week:    week,
	}

	owner, err := c.db.GetOwner(ctx, ownerID)
	if err != nil {
		return degraded(result, fmt.Sprintf("owner lookup failed: %v", err))
	}
	result.OwnerName = owner.Name

	teams, err := c.db.ListOwnerTeams(ctx, ownerID)
	if err != nil {
		return degraded(result, fmt.Sprintf("team lookup failed: %v", err))
	}
	if len(teams) == 0 {
		return degraded(result, "no active teams")
	}

	// A win already on the books settles it regardless of games still
	// in flight.
	awards, err := c.db.GetOwnerWeekAwards(ctx, ownerID, season, week)
	if err != nil {
		return degraded(result, fmt.Sprintf("award lookup failed: %v", err))
	}
	for _, a := range awards {
		if a.Type.WinType() {
			return degraded(result, fmt.Sprintf("already has a %s award for %s this week", a.Type, a.Team))
		}
	}

	games := make(map[string]*model.Game, len(teams))
	gamesByID := make(map[string]*model.NFLTeam, len(teams))
	for _, team := range teams {
		game, err := c.db.GetGameForTeam(ctx, season, week, team)
		if err != nil {
			if errors.Is(err, db.ErrGameNotFound) {
				continue // bye week
			}
			return degraded(result, fmt.Sprintf("game lookup failed for %s: %v", team, err))
		}
		games[team.String()] = game

		// Two of the owner's teams in the same game guarantee a win:
		// one of them must win or tie away.
		if other, found := gamesByID[game.ID]; found {
			return degraded(result, fmt.Sprintf("%s and %s play each other this week", other, team))
		}
		gamesByID[game.ID] = team
	}

	product := 1.0
	factors := make([]string, 0, len(teams))
	for _, team := range teams {
		detail := model.GooseTeamDetail{Team: team.String()}

		game, playing := games[team.String()]
		if !playing {
			// A bye cannot produce a win, so it counts as a guaranteed
			// non-win factor rather than being skipped.
			detail.WinProbability = 0
			detail.LoseProbability = 1
			detail.Source = model.ConfidenceByeWeek
			result.Teams = append(result.Teams, detail)
			factors = append(factors, fmt.Sprintf("%s lose=1.000 (bye)", team))
			continue
		}

		detail.Opponent = game.Opponent(team).String()

		if game.Final() {
			own, opp := game.PointsFor(team)
			if game.Winner().Equals(team) {
				detail.WinProbability = 1
				detail.Source = model.ConfidenceFinal
				detail.ActualResult = fmt.Sprintf("W %d-%d", own, opp)
				result.Teams = append(result.Teams, detail)
				result.Reason = fmt.Sprintf("%s already won %d-%d", team, own, opp)
				result.Probability = 0
				result.Percentage = formatPercent(0)
				result.Calculation = fmt.Sprintf("%s win is final, goose impossible", team)
				return result
			}

			detail.WinProbability = 0
			detail.LoseProbability = 1
			detail.Source = model.ConfidenceFinal
			detail.ActualResult = fmt.Sprintf("L %d-%d", own, opp)
			result.Teams = append(result.Teams, detail)
			factors = append(factors, fmt.Sprintf("%s lose=1.000 (final)", team))
			continue
		}

		wp, found := probs[team.String()]
		if !found {
			p, err := c.TeamWinProbability(ctx, season, week, team)
			if err != nil {
				return degraded(result, fmt.Sprintf("probability lookup failed for %s: %v", team, err))
			}
			wp = *p
		}

		lose := 1 - wp.WinProbability
		detail.WinProbability = wp.WinProbability
		detail.LoseProbability = lose
		detail.Source = wp.Confidence
		result.Teams = append(result.Teams, detail)

		product *= lose
		factors = append(factors, fmt.Sprintf("%s lose=%.3f", team, lose))
	}

	result.Probability = product
	result.Percentage = formatPercent(product)
	result.Reason = "all teams must fail to win"
	result.Calculation = fmt.Sprintf("%s = %.3f", strings.Join(factors, " x "), product)
	return result
}

// GooseReport computes goose risk for every owner, fetching each game's
// probability exactly once and injecting the shared map.
func (c *controller) GooseReport(ctx context.Context, season, week int) ([]model.GooseResult, error) {
	probs, err := c.WeekWinProbabilities(ctx, season, week)
	if err != nil {
		return nil, err
	}

	owners, err := c.db.ListOwners(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing owners: %w", err)
	}

	results := make([]model.GooseResult, 0, len(owners))
	for _, o := range owners {
		results = append(results, *c.GooseProbability(ctx, o.ID, season, week, probs))
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Probability > results[j].Probability
	})
	return results, nil
}

func degraded(result *model.GooseResult, reason string) *model.GooseResult {
	result.Probability = 0
	result.Percentage = formatPercent(0)
	result.Reason = reason
	return result
}

func formatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p*100)
}
