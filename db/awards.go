package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/RicTBest/paydaysite-sub000/model"
)

func (db *postgresDB) ReplaceWeekAwards(ctx context.Context, season, week int, awards []model.Award) error {
	const del = `DELETE FROM awards
					WHERE season=@season AND week=@week AND type = ANY(@types)`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	types := make([]string, 0, len(model.WeeklyAwardTypes))
	for _, t := range model.WeeklyAwardTypes {
		types = append(types, string(t))
	}

	args := pgx.NamedArgs{
		"season": season,
		"week":   week,
		"types":  types,
	}
	if _, err := tx.Exec(ctx, del, args); err != nil {
		return fmt.Errorf("error deleting weekly awards for week %d of %d: %w", week, season, err)
	}

	for i := range awards {
		if err := insertAward(ctx, tx, db.clock.Now().UTC(), &awards[i]); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing awards transaction: %w", err)
	}
	return nil
}

func (db *postgresDB) InsertAward(ctx context.Context, a *model.Award) error {
	return insertAward(ctx, db.pool, db.clock.Now().UTC(), a)
}

// pgxExecutor lets insertAward work against either the pool or an open
// transaction.
type pgxExecutor interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

func insertAward(ctx context.Context, e pgxExecutor, created time.Time, a *model.Award) error {
	const query = `INSERT INTO awards (season, week, type, team, owner_id, points, notes, created)
					VALUES (@season, @week, @type, @team, @ownerID, @points, @notes, @created)`

	args := pgx.NamedArgs{
		"season":  a.Season,
		"week":    a.Week,
		"type":    string(a.Type),
		"team":    &DBNFLTeam{team: a.Team},
		"ownerID": a.OwnerID,
		"points":  a.Points,
		"notes":   a.Notes,
		"created": pgtype.Timestamptz{
			Time:  created,
			Valid: true,
		},
	}
	if _, err := e.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error inserting %s award for %s: %w", a.Type, a.Team, err)
	}
	return nil
}

func (db *postgresDB) GetAwardsForWeek(ctx context.Context, season, week int) ([]model.Award, error) {
	const query = `SELECT id, season, week, type, team, owner_id, points, notes, created
					FROM awards WHERE season=@season AND week=@week ORDER BY type, team`

	args := pgx.NamedArgs{
		"season": season,
		"week":   week,
	}
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error querying awards for week %d of %d: %w", week, season, err)
	}

	return scanAwards(rows)
}

func (db *postgresDB) GetOwnerWeekAwards(ctx context.Context, ownerID int32, season, week int) ([]model.Award, error) {
	const query = `SELECT id, season, week, type, team, owner_id, points, notes, created
					FROM awards
					WHERE owner_id=@ownerID AND season=@season AND week=@week
					ORDER BY type, team`

	args := pgx.NamedArgs{
		"ownerID": ownerID,
		"season":  season,
		"week":    week,
	}
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error querying awards for owner %d in week %d of %d: %w", ownerID, week, season, err)
	}

	return scanAwards(rows)
}

func (db *postgresDB) HasAward(ctx context.Context, season int, awardType model.AwardType, team *model.NFLTeam) (bool, error) {
	const query = `SELECT EXISTS(
					SELECT 1 FROM awards WHERE season=@season AND type=@type AND team=@team)`

	args := pgx.NamedArgs{
		"season": season,
		"type":   string(awardType),
		"team":   team.String(),
	}

	var exists bool
	if err := db.pool.QueryRow(ctx, query, args).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking for %s award for %s: %w", awardType, team, err)
	}
	return exists, nil
}

func (db *postgresDB) GetSeasonPoints(ctx context.Context, season int) ([]model.LeaderboardRow, error) {
	const query = `SELECT o.id, o.name, o.goose_count, COALESCE(SUM(a.points), 0)
					FROM owners o
					LEFT JOIN awards a ON a.owner_id = o.id AND a.season=@season
					GROUP BY o.id, o.name, o.goose_count
					ORDER BY COALESCE(SUM(a.points), 0) DESC, o.name`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"season": season})
	if err != nil {
		return nil, fmt.Errorf("error querying season points for %d: %w", season, err)
	}

	results := make([]model.LeaderboardRow, 0, 8)
	for rows.Next() {
		var r model.LeaderboardRow
		if err := rows.Scan(&r.OwnerID, &r.OwnerName, &r.GooseCount, &r.Points); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading season points for %d: %w", season, err)
	}
	return results, nil
}

func (db *postgresDB) CloseWeek(ctx context.Context, season, week int) (bool, error) {
	const query = `INSERT INTO weeks_closed (season, week, closed)
					VALUES (@season, @week, @closed)
					ON CONFLICT (season, week) DO NOTHING`

	args := pgx.NamedArgs{
		"season": season,
		"week":   week,
		"closed": pgtype.Timestamptz{
			Time:  db.clock.Now().UTC(),
			Valid: true,
		},
	}
	tag, err := db.pool.Exec(ctx, query, args)
	if err != nil {
		return false, fmt.Errorf("error closing week %d of %d: %w", week, season, err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanAwards(rows pgx.Rows) ([]model.Award, error) {
	results := make([]model.Award, 0, 8)
	for rows.Next() {
		var a model.Award
		var team DBNFLTeam
		var awardType string
		var created pgtype.Timestamptz
		err := rows.Scan(
			&a.ID,
			&a.Season,
			&a.Week,
			&awardType,
			&team,
			&a.OwnerID,
			&a.Points,
			&a.Notes,
			&created)
		if err != nil {
			return nil, err
		}

		a.Type = model.AwardType(awardType)
		a.Team = team.team
		a.Created = created.Time

		results = append(results, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading award rows: %w", err)
	}
	return results, nil
}
