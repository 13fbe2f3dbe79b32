package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/RicTBest/paydaysite-sub000/db"
	"github.com/RicTBest/paydaysite-sub000/model"
)

const weeklyAwardPoints = 1

func (c *controller) RecomputeWeekAwards(ctx context.Context, season, week int) ([]model.Award, error) {
	lock := c.weekLock(season, week)
	lock.Lock()
	defer lock.Unlock()

	games, err := c.db.GetGamesForWeek(ctx, season, week)
	if err != nil {
		return nil, fmt.Errorf("error loading games for week %d of %d: %w", week, season, err)
	}

	finals := make([]model.Game, 0, len(games))
	for _, g := range games {
		if g.Final() {
			finals = append(finals, g)
		}
	}

	awards, err := c.buildWeeklyAwards(ctx, season, week, finals)
	if err != nil {
		return nil, err
	}

	// Replace even when the new set is empty so a correction that
	// un-finals a game also clears its stale awards.
	if err := c.db.ReplaceWeekAwards(ctx, season, week, awards); err != nil {
		return nil, fmt.Errorf("error replacing awards for week %d of %d: %w", week, season, err)
	}

	c.log.WithFields(logrus.Fields{
		"season": season,
		"week":   week,
		"games":  len(finals),
		"awards": len(awards),
	}).Info("recomputed weekly awards")

	return awards, nil
}

func (c *controller) GetWeekAwards(ctx context.Context, season, week int) ([]model.Award, error) {
	return c.db.GetAwardsForWeek(ctx, season, week)
}

// buildWeeklyAwards turns a week's final games into the canonical award
// set. A team without an active owner loses only its own award; store
// errors abort the whole batch.
func (c *controller) buildWeeklyAwards(ctx context.Context, season, week int, finals []model.Game) ([]model.Award, error) {
	if len(finals) == 0 {
		return []model.Award{}, nil
	}

	type candidate struct {
		awardType model.AwardType
		team      *model.NFLTeam
		notes     string
	}
	candidates := make([]candidate, 0, len(finals)+2)

	for _, g := range finals {
		if g.Tie() {
			candidates = append(candidates, candidate{
				awardType: model.AwardTieAway,
				team:      g.Away,
				notes:     fmt.Sprintf("%d-%d tie at %s", g.AwayPoints, g.HomePoints, g.Home),
			})
			continue
		}
		winner := g.Winner()
		own, opp := g.PointsFor(winner)
		candidates = append(candidates, candidate{
			awardType: model.AwardWin,
			team:      winner,
			notes:     fmt.Sprintf("%d-%d over %s", own, opp, g.Opponent(winner)),
		})
	}

	if obo, notes := offensiveBonus(finals); obo != nil {
		candidates = append(candidates, candidate{awardType: model.AwardOBO, team: obo, notes: notes})
	}
	if dbo, notes := defensiveBonus(finals); dbo != nil {
		candidates = append(candidates, candidate{awardType: model.AwardDBO, team: dbo, notes: notes})
	}

	awards := make([]model.Award, 0, len(candidates))
	for _, cand := range candidates {
		owner, err := c.db.GetTeamOwner(ctx, cand.team)
		if err != nil {
			if errors.Is(err, db.ErrTeamNotFound) {
				c.log.WithFields(logrus.Fields{
					"season": season,
					"week":   week,
					"team":   cand.team.String(),
					"type":   string(cand.awardType),
				}).Error("team has no active owner, dropping award")
				continue
			}
			return nil, fmt.Errorf("error resolving owner for %s: %w", cand.team, err)
		}

		awards = append(awards, model.Award{
			Season:  season,
			Week:    week,
			Type:    cand.awardType,
			Team:    cand.team,
			OwnerID: owner.ID,
			Points:  weeklyAwardPoints,
			Notes:   cand.notes,
		})
	}

	return awards, nil
}

// teamLine is one team's view of its game, the shared scan for both
// bonus awards.
type teamLine struct {
	team     *model.NFLTeam
	opponent *model.NFLTeam
	own      int
	opp      int
}

func teamLines(finals []model.Game) []teamLine {
	lines := make([]teamLine, 0, len(finals)*2)
	for _, g := range finals {
		lines = append(lines, teamLine{team: g.Home, opponent: g.Away, own: g.HomePoints, opp: g.AwayPoints})
		lines = append(lines, teamLine{team: g.Away, opponent: g.Home, own: g.AwayPoints, opp: g.HomePoints})
	}
	return lines
}

// offensiveBonus finds the single highest-scoring team of the week.
// Score ties break by largest margin of victory, then team code.
func offensiveBonus(finals []model.Game) (*model.NFLTeam, string) {
	lines := teamLines(finals)
	if len(lines) == 0 {
		return nil, ""
	}

	highest := lines[0].own
	for _, l := range lines {
		if l.own > highest {
			highest = l.own
		}
	}

	tied := make([]teamLine, 0, 2)
	for _, l := range lines {
		if l.own == highest {
			tied = append(tied, l)
		}
	}

	winner := pickByMargin(tied)
	if len(tied) == 1 {
		return winner.team, fmt.Sprintf("%d points", highest)
	}
	return winner.team, fmt.Sprintf("%d points, won margin tiebreak (+%d)", highest, winner.own-winner.opp)
}

// defensiveBonus finds the team that held its opponent to the week's
// lowest score. The lowest score anywhere in the week is the same value
// scanned for OBO, just viewed from the other sideline.
func defensiveBonus(finals []model.Game) (*model.NFLTeam, string) {
	lines := teamLines(finals)
	if len(lines) == 0 {
		return nil, ""
	}

	lowest := lines[0].own
	for _, l := range lines {
		if l.own < lowest {
			lowest = l.own
		}
	}

	tied := make([]teamLine, 0, 2)
	for _, l := range lines {
		if l.opp == lowest {
			tied = append(tied, l)
		}
	}

	winner := pickByMargin(tied)
	if len(tied) == 1 {
		return winner.team, fmt.Sprintf("held %s to %d", winner.opponent, lowest)
	}
	return winner.team, fmt.Sprintf("held %s to %d, won margin tiebreak (+%d)", winner.opponent, lowest, winner.own-winner.opp)
}

// pickByMargin resolves a bonus tie: largest scoring margin wins, and a
// margin tie falls back to team-code order so the result is always
// deterministic.
func pickByMargin(tied []teamLine) teamLine {
	best := tied[0]
	for _, l := range tied[1:] {
		switch {
		case l.own-l.opp > best.own-best.opp:
			best = l
		case l.own-l.opp == best.own-best.opp && l.team.String() < best.team.String():
			best = l
		}
	}
	return best
}
