package model

import "time"

type AwardType string

const (
	AwardWin     AwardType = "WIN"
	AwardTieAway AwardType = "TIE_AWAY"
	AwardOBO     AwardType = "OBO"
	AwardDBO     AwardType = "DBO"

	AwardPlayoffBerth   AwardType = "PLAYOFF_BERTH"
	AwardPlayoffBye     AwardType = "PLAYOFF_BYE"
	AwardPlayoffWCWin   AwardType = "PLAYOFF_WC_WIN"
	AwardPlayoffDivWin  AwardType = "PLAYOFF_DIV_WIN"
	AwardPlayoffConfWin AwardType = "PLAYOFF_CONF_WIN"
	AwardPlayoffSBWin   AwardType = "PLAYOFF_SB_WIN"

	// Manual end-of-year types entered by the commissioner.
	AwardCoachFired AwardType = "COACH_FIRED"
)

// WeeklyAwardTypes are the types recomputed as a set for a (season, week).
// A recompute deletes and reinserts exactly these; everything else is an
// append-only ledger entry.
var WeeklyAwardTypes = []AwardType{AwardWin, AwardTieAway, AwardOBO, AwardDBO}

func (t AwardType) Weekly() bool {
	for _, w := range WeeklyAwardTypes {
		if t == w {
			return true
		}
	}
	return false
}

func (t AwardType) Playoff() bool {
	switch t {
	case AwardPlayoffBerth, AwardPlayoffBye, AwardPlayoffWCWin,
		AwardPlayoffDivWin, AwardPlayoffConfWin, AwardPlayoffSBWin:
		return true
	}
	return false
}

// WinType reports whether the award counts as a win for goose purposes.
func (t AwardType) WinType() bool {
	return t == AwardWin || t == AwardTieAway
}

type Award struct {
	ID      int32     `json:"id"`
	Season  int       `json:"season"`
	Week    int       `json:"week"`
	Type    AwardType `json:"type"`
	Team    *NFLTeam  `json:"team"`
	OwnerID int32     `json:"ownerId"`
	Points  int       `json:"points"`
	Notes   string    `json:"notes,omitempty"`
	Created time.Time `json:"created"`
}

// LeaderboardRow is one owner's season aggregate. Dollars is points times
// the configured conversion rate, applied at aggregation time only.
type LeaderboardRow struct {
	OwnerID    int32  `json:"ownerId"`
	OwnerName  string `json:"ownerName"`
	Points     int    `json:"points"`
	Dollars    int    `json:"dollars"`
	GooseCount int    `json:"gooseCount"`
}
