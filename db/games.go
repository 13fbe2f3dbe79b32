package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/RicTBest/paydaysite-sub000/model"
)

func (db *postgresDB) SaveGames(ctx context.Context, games []model.Game) error {
	const query = `INSERT INTO games (id, season, week, home, away, home_pts, away_pts, status, kickoff)
					VALUES (@id, @season, @week, @home, @away, @homePts, @awayPts, @status, @kickoff)
					ON CONFLICT (id) DO UPDATE
						SET home_pts=EXCLUDED.home_pts,
							away_pts=EXCLUDED.away_pts,
							status=EXCLUDED.status,
							kickoff=EXCLUDED.kickoff`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, g := range games {
		args := pgx.NamedArgs{
			"id":      g.ID,
			"season":  g.Season,
			"week":    g.Week,
			"home":    &DBNFLTeam{team: g.Home},
			"away":    &DBNFLTeam{team: g.Away},
			"homePts": g.HomePoints,
			"awayPts": g.AwayPoints,
			"status":  string(g.Status),
			"kickoff": pgtype.Timestamptz{
				Time:  g.Kickoff,
				Valid: !g.Kickoff.IsZero(),
			},
		}
		if _, err := tx.Exec(ctx, query, args); err != nil {
			return fmt.Errorf("error saving game %s: %w", g.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing games transaction: %w", err)
	}
	return nil
}

func (db *postgresDB) GetGamesForWeek(ctx context.Context, season, week int) ([]model.Game, error) {
	const query = `SELECT id, season, week, home, away, home_pts, away_pts, status, kickoff
					FROM games WHERE season=@season AND week=@week ORDER BY kickoff, id`

	args := pgx.NamedArgs{
		"season": season,
		"week":   week,
	}
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error querying games for week %d of %d: %w", week, season, err)
	}

	return scanGames(rows)
}

func (db *postgresDB) GetGameForTeam(ctx context.Context, season, week int, team *model.NFLTeam) (*model.Game, error) {
	const query = `SELECT id, season, week, home, away, home_pts, away_pts, status, kickoff
					FROM games WHERE season=@season AND week=@week AND (home=@abbr OR away=@abbr)`

	args := pgx.NamedArgs{
		"season": season,
		"week":   week,
		"abbr":   team.String(),
	}
	row := db.pool.QueryRow(ctx, query, args)

	g, err := scanGame(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("error scanning game for %s in week %d of %d: %w", team, week, season, err)
	}
	return g, nil
}

func (db *postgresDB) GetFinalRegularSeasonGames(ctx context.Context, season int) ([]model.Game, error) {
	const query = `SELECT id, season, week, home, away, home_pts, away_pts, status, kickoff
					FROM games
					WHERE season=@season AND week BETWEEN 1 AND @lastWeek AND status=@status
					ORDER BY week, kickoff, id`

	args := pgx.NamedArgs{
		"season":   season,
		"lastWeek": model.LastRegularSeasonWeek,
		"status":   string(model.GameFinal),
	}
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error querying regular season games for %d: %w", season, err)
	}

	return scanGames(rows)
}

func scanGames(rows pgx.Rows) ([]model.Game, error) {
	results := make([]model.Game, 0, 16)
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading game rows: %w", err)
	}
	return results, nil
}

func scanGame(row pgx.Row) (*model.Game, error) {
	var g model.Game
	var home, away DBNFLTeam
	var status string
	var kickoff pgtype.Timestamptz
	err := row.Scan(
		&g.ID,
		&g.Season,
		&g.Week,
		&home,
		&away,
		&g.HomePoints,
		&g.AwayPoints,
		&status,
		&kickoff)

	if err != nil {
		return nil, err
	}

	g.Home = home.team
	g.Away = away.team
	g.Status = model.GameStatus(status)
	g.Kickoff = kickoff.Time

	return &g, nil
}
