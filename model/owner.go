package model

type Owner struct {
	ID         int32
	Name       string
	GooseCount int
}

// Team is one row of the team-to-owner registry. Inactive teams keep
// their history but are excluded from award and goose computation.
type Team struct {
	Team    *NFLTeam
	OwnerID int32
	Active  bool
}
