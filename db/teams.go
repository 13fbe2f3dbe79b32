package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/RicTBest/paydaysite-sub000/model"
)

func (db *postgresDB) GetOwner(ctx context.Context, id int32) (*model.Owner, error) {
	const query = `SELECT id, name, goose_count FROM owners WHERE id=@id`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})

	var o model.Owner
	if err := row.Scan(&o.ID, &o.Name, &o.GooseCount); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOwnerNotFound
		}
		return nil, fmt.Errorf("error scanning owner %d: %w", id, err)
	}
	return &o, nil
}

func (db *postgresDB) ListOwners(ctx context.Context) ([]model.Owner, error) {
	const query = `SELECT id, name, goose_count FROM owners ORDER BY name`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing owners: %w", err)
	}

	results := make([]model.Owner, 0, 8)
	for rows.Next() {
		var o model.Owner
		if err := rows.Scan(&o.ID, &o.Name, &o.GooseCount); err != nil {
			return nil, err
		}
		results = append(results, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading owner rows: %w", err)
	}
	return results, nil
}

func (db *postgresDB) SaveOwner(ctx context.Context, name string) (*model.Owner, error) {
	const query = `INSERT INTO owners (name) VALUES (@name)
					ON CONFLICT (name) DO UPDATE SET name=EXCLUDED.name
					RETURNING id, name, goose_count`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"name": name})

	var o model.Owner
	if err := row.Scan(&o.ID, &o.Name, &o.GooseCount); err != nil {
		return nil, fmt.Errorf("error saving owner %s: %w", name, err)
	}
	return &o, nil
}

func (db *postgresDB) IncrementGooseCount(ctx context.Context, ownerID int32) error {
	const query = `UPDATE owners SET goose_count = goose_count + 1 WHERE id=@id`

	tag, err := db.pool.Exec(ctx, query, pgx.NamedArgs{"id": ownerID})
	if err != nil {
		return fmt.Errorf("error incrementing goose count for owner %d: %w", ownerID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrOwnerNotFound
	}
	return nil
}

func (db *postgresDB) GetTeamOwner(ctx context.Context, team *model.NFLTeam) (*model.Owner, error) {
	const query = `SELECT o.id, o.name, o.goose_count
					FROM teams t JOIN owners o ON o.id = t.owner_id
					WHERE t.abbr=@abbr AND t.active`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"abbr": team.String()})

	var o model.Owner
	if err := row.Scan(&o.ID, &o.Name, &o.GooseCount); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("error looking up owner of %s: %w", team, err)
	}
	return &o, nil
}

func (db *postgresDB) ListOwnerTeams(ctx context.Context, ownerID int32) ([]*model.NFLTeam, error) {
	const query = `SELECT abbr FROM teams WHERE owner_id=@ownerID AND active ORDER BY abbr`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"ownerID": ownerID})
	if err != nil {
		return nil, fmt.Errorf("error listing teams for owner %d: %w", ownerID, err)
	}

	results := make([]*model.NFLTeam, 0, 4)
	for rows.Next() {
		var t DBNFLTeam
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		results = append(results, t.team)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading team rows for owner %d: %w", ownerID, err)
	}
	return results, nil
}

func (db *postgresDB) SaveTeam(ctx context.Context, t *model.Team) error {
	const query = `INSERT INTO teams (abbr, owner_id, active)
					VALUES (@abbr, @ownerID, @active)
					ON CONFLICT (abbr) DO UPDATE SET owner_id=EXCLUDED.owner_id, active=EXCLUDED.active`

	args := pgx.NamedArgs{
		"abbr":    t.Team.String(),
		"ownerID": t.OwnerID,
		"active":  t.Active,
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error saving team %s: %w", t.Team, err)
	}
	return nil
}
