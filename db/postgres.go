package db

import (
	"context"
	"errors"

	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/RicTBest/paydaysite-sub000/model"
)

var (
	ErrOwnerNotFound error = errors.New("owner not found")
	ErrTeamNotFound  error = errors.New("team has no active owner")
	ErrGameNotFound  error = errors.New("game not found")
)

func New(ctx context.Context, connString string, clock clock.Clock) (DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return &postgresDB{pool: pool, clock: clock}, nil
}

type postgresDB struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

// DBNFLTeam adapts the static team table to pgx's text codec so teams
// are stored by canonical code.
type DBNFLTeam struct {
	team *model.NFLTeam
}

func (t *DBNFLTeam) ScanText(v pgtype.Text) error {
	t.team = model.ParseTeam(v.String)
	return nil
}

func (t *DBNFLTeam) TextValue() (pgtype.Text, error) {
	return pgtype.Text{
		String: t.team.String(),
		Valid:  true,
	}, nil
}
