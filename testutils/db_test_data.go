package testutils

import (
	"context"
	"log"
	"time"

	"github.com/itbasis/go-clock"

	"github.com/RicTBest/paydaysite-sub000/containers"
	"github.com/RicTBest/paydaysite-sub000/db"
	"github.com/RicTBest/paydaysite-sub000/model"
)

// The standard test league: three owners with uneven roster sizes, which
// is enough to exercise shared weeks, byes, and the goose math.
var TestRosters = map[string][]*model.NFLTeam{
	"Alice": {model.TEAM_KCC, model.TEAM_DET},
	"Bob":   {model.TEAM_SFO, model.TEAM_BUF},
	"Carol": {model.TEAM_NYJ},
}

type TestDB struct {
	container *containers.DBContainer
	DB        db.DB
	Clock     clock.Clock

	// Owners from TestRosters keyed by name, with their assigned IDs.
	Owners map[string]*model.Owner
}

func NewTestDB() *TestDB {
	container := containers.NewDBContainer()
	clock := clock.New()

	db, err := db.New(context.Background(), container.ConnectionString(), clock)
	if err != nil {
		log.Fatalf("error connecting to db in test container: %v", err)
	}

	owners, err := InsertTestLeague(db)
	if err != nil {
		log.Fatalf("error populating db in test container: %v", err)
	}

	return &TestDB{
		container: container,
		DB:        db,
		Clock:     clock,
		Owners:    owners,
	}
}

func (db *TestDB) Shutdown() {
	db.container.Shutdown()
}

func InsertTestLeague(d db.DB) (map[string]*model.Owner, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	owners := make(map[string]*model.Owner, len(TestRosters))
	for name, roster := range TestRosters {
		o, err := d.SaveOwner(ctx, name)
		if err != nil {
			return nil, err
		}
		owners[name] = o

		for _, t := range roster {
			err := d.SaveTeam(ctx, &model.Team{Team: t, OwnerID: o.ID, Active: true})
			if err != nil {
				return nil, err
			}
		}
	}

	return owners, nil
}
