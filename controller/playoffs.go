package controller

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/RicTBest/paydaysite-sub000/db"
	"github.com/RicTBest/paydaysite-sub000/model"
)

// Teams per conference that make the postseason; the top seed also gets
// the first-round bye.
const playoffSeedsPerConference = 7

// PlayoffSummary reports one UpdatePlayoffAwards pass: what was newly
// awarded, what already existed, and the per-team problems that did not
// stop the batch.
type PlayoffSummary struct {
	Season  int           `json:"season"`
	Awarded []model.Award `json:"awarded"`
	Skipped int           `json:"skipped"`
	Errors  []string      `json:"errors"`
}

type playoffRound struct {
	awardType model.AwardType
	week      int
}

// Rounds in bracket order. Amounts live in config, not here.
var playoffRounds = []playoffRound{
	{awardType: model.AwardPlayoffWCWin, week: model.WeekWildCard},
	{awardType: model.AwardPlayoffDivWin, week: model.WeekDivisional},
	{awardType: model.AwardPlayoffConfWin, week: model.WeekConference},
	{awardType: model.AwardPlayoffSBWin, week: model.WeekSuperBowl},
}

// UpdatePlayoffAwards runs the whole postseason ledger: berths and byes
// first, then each round in order. Every step is append-only and
// deduplicated by (season, type, team), so the operation is safe to call
// on any cadence: rounds whose games don't exist yet simply award
// nothing.
func (c *controller) UpdatePlayoffAwards(ctx context.Context, season int) (*PlayoffSummary, error) {
	summary := &PlayoffSummary{Season: season, Awarded: []model.Award{}, Errors: []string{}}

	closed, err := c.regularSeasonComplete(ctx, season)
	if err != nil {
		return nil, err
	}
	if closed {
		if err := c.awardBerths(ctx, season, summary); err != nil {
			return nil, err
		}
	} else {
		c.log.WithField("season", season).Info("regular season not complete, skipping berth awards")
	}

	for _, round := range playoffRounds {
		if err := c.awardRoundWins(ctx, season, round, summary); err != nil {
			return nil, err
		}
	}

	return summary, nil
}

func (c *controller) regularSeasonComplete(ctx context.Context, season int) (bool, error) {
	games, err := c.db.GetGamesForWeek(ctx, season, model.LastRegularSeasonWeek)
	if err != nil {
		return false, fmt.Errorf("error checking final regular season week of %d: %w", season, err)
	}
	if len(games) == 0 {
		return false, nil
	}
	for _, g := range games {
		if !g.Final() {
			return false, nil
		}
	}
	return true, nil
}

func (c *controller) awardBerths(ctx context.Context, season int, summary *PlayoffSummary) error {
	seeds, err := c.playoffSeeds(ctx, season)
	if err != nil {
		return err
	}

	for _, conferenceSeeds := range seeds {
		for i, team := range conferenceSeeds {
			notes := fmt.Sprintf("#%d seed, %s", i+1, team.Conference())
			if err := c.awardOnce(ctx, season, model.AwardPlayoffBerth, team, c.cfg.Payouts.PlayoffBerth, notes, summary); err != nil {
				return err
			}
			if i == 0 {
				notes := fmt.Sprintf("first-round bye, %s", team.Conference())
				if err := c.awardOnce(ctx, season, model.AwardPlayoffBye, team, c.cfg.Payouts.PlayoffBye, notes, summary); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (c *controller) awardRoundWins(ctx context.Context, season int, round playoffRound, summary *PlayoffSummary) error {
	games, err := c.db.GetGamesForWeek(ctx, season, round.week)
	if err != nil {
		return fmt.Errorf("error loading games for playoff week %d of %d: %w", round.week, season, err)
	}

	amount := c.roundAmount(round.awardType)
	for _, g := range games {
		if !g.Final() {
			continue
		}
		if g.Tie() {
			// Playoff games cannot end level; treat it as bad data.
			summary.Errors = append(summary.Errors, fmt.Sprintf("playoff game %s ended in a tie, no award", g.ID))
			continue
		}

		winner := g.Winner()
		own, opp := g.PointsFor(winner)
		notes := fmt.Sprintf("%d-%d over %s", own, opp, g.Opponent(winner))
		if err := c.awardOnce(ctx, season, round.awardType, winner, amount, notes, summary); err != nil {
			return err
		}
	}
	return nil
}

// awardOnce inserts a playoff award unless the (season, type, team) fact
// is already on the ledger. A missing owner mapping is recorded and
// skipped; store errors abort.
func (c *controller) awardOnce(ctx context.Context, season int, awardType model.AwardType, team *model.NFLTeam, dollars int, notes string, summary *PlayoffSummary) error {
	exists, err := c.db.HasAward(ctx, season, awardType, team)
	if err != nil {
		return err
	}
	if exists {
		summary.Skipped++
		return nil
	}

	owner, err := c.db.GetTeamOwner(ctx, team)
	if err != nil {
		if errors.Is(err, db.ErrTeamNotFound) {
			msg := fmt.Sprintf("%s for %s: team has no active owner", awardType, team)
			summary.Errors = append(summary.Errors, msg)
			c.log.WithFields(logrus.Fields{
				"season": season,
				"team":   team.String(),
				"type":   string(awardType),
			}).Error("team has no active owner, dropping playoff award")
			return nil
		}
		return fmt.Errorf("error resolving owner for %s: %w", team, err)
	}

	award := model.Award{
		Season:  season,
		Week:    c.roundWeek(awardType),
		Type:    awardType,
		Team:    team,
		OwnerID: owner.ID,
		Points:  dollars / c.cfg.Payouts.DollarsPerPoint,
		Notes:   fmt.Sprintf("$%d %s", dollars, notes),
	}
	if err := c.db.InsertAward(ctx, &award); err != nil {
		return err
	}
	summary.Awarded = append(summary.Awarded, award)
	return nil
}

func (c *controller) roundAmount(awardType model.AwardType) int {
	switch awardType {
	case model.AwardPlayoffWCWin:
		return c.cfg.Payouts.WildCardWin
	case model.AwardPlayoffDivWin:
		return c.cfg.Payouts.DivisionalWin
	case model.AwardPlayoffConfWin:
		return c.cfg.Payouts.ConferenceWin
	case model.AwardPlayoffSBWin:
		return c.cfg.Payouts.SuperBowlWin
	default:
		return 0
	}
}

// roundWeek is the fixed week slot an award posts at, regardless of the
// calendar week the game was actually played.
func (c *controller) roundWeek(awardType model.AwardType) int {
	for _, r := range playoffRounds {
		if r.awardType == awardType {
			return r.week
		}
	}
	// Berths and byes post at the wild-card slot.
	return model.WeekWildCard
}

type seedRecord struct {
	team      *model.NFLTeam
	wins      float64
	pointDiff int
}

// playoffSeeds computes the top seeds per conference from the stored
// final regular-season games: wins (a tie is half a win), then point
// differential, then team code. A simplification of the NFL's full
// tiebreaker chain, but deterministic and replayable from the store.
func (c *controller) playoffSeeds(ctx context.Context, season int) (map[model.Conference][]*model.NFLTeam, error) {
	games, err := c.db.GetFinalRegularSeasonGames(ctx, season)
	if err != nil {
		return nil, fmt.Errorf("error loading regular season games for %d: %w", season, err)
	}

	records := make(map[string]*seedRecord)
	record := func(t *model.NFLTeam) *seedRecord {
		r, found := records[t.String()]
		if !found {
			r = &seedRecord{team: t}
			records[t.String()] = r
		}
		return r
	}

	for _, g := range games {
		home, away := record(g.Home), record(g.Away)
		home.pointDiff += g.HomePoints - g.AwayPoints
		away.pointDiff += g.AwayPoints - g.HomePoints

		switch {
		case g.Tie():
			home.wins += 0.5
			away.wins += 0.5
		case g.HomePoints > g.AwayPoints:
			home.wins++
		default:
			away.wins++
		}
	}

	byConference := make(map[model.Conference][]*seedRecord)
	for _, r := range records {
		conf := r.team.Conference()
		byConference[conf] = append(byConference[conf], r)
	}

	seeds := make(map[model.Conference][]*model.NFLTeam, len(byConference))
	for conf, rs := range byConference {
		sort.Slice(rs, func(i, j int) bool {
			if rs[i].wins != rs[j].wins {
				return rs[i].wins > rs[j].wins
			}
			if rs[i].pointDiff != rs[j].pointDiff {
				return rs[i].pointDiff > rs[j].pointDiff
			}
			return rs[i].team.String() < rs[j].team.String()
		})

		n := playoffSeedsPerConference
		if len(rs) < n {
			n = len(rs)
		}
		teams := make([]*model.NFLTeam, 0, n)
		for _, r := range rs[:n] {
			teams = append(teams, r.team)
		}
		seeds[conf] = teams
	}
	return seeds, nil
}
