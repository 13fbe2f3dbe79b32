package model

// GooseResult is the full audit trail for one owner's goose probability
// in one week. The breakdown and calculation string are part of the
// contract: the number feeds a money leaderboard, so every factor must
// be explainable.
type GooseResult struct {
	OwnerID     int32             `json:"ownerId"`
	OwnerName   string            `json:"ownerName"`
	Season      int               `json:"season"`
	Week        int               `json:"week"`
	Probability float64           `json:"gooseProbability"`
	Percentage  string            `json:"goosePercentage"`
	Reason      string            `json:"reason"`
	Teams       []GooseTeamDetail `json:"teamDetails"`
	Calculation string            `json:"calculation"`
}

type GooseTeamDetail struct {
	Team            string     `json:"team"`
	WinProbability  float64    `json:"winProbability"`
	LoseProbability float64    `json:"loseProbability"`
	Opponent        string     `json:"opponent,omitempty"`
	Source          Confidence `json:"source"`
	ActualResult    string     `json:"actualResult,omitempty"`
}
