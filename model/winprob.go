package model

// Confidence labels where a win probability came from. Consumers treat
// ConfidenceFinal as authoritative; the estimated labels are
// interchangeable for math but kept distinct for display and audit.
type Confidence string

const (
	ConfidenceFinal      Confidence = "final"
	ConfidenceHigh       Confidence = "high"       // live market odds
	ConfidenceCalculated Confidence = "calculated" // strength estimate, no odds provider configured
	ConfidenceFallback   Confidence = "fallback"   // strength estimate after provider retries failed
	ConfidenceByeWeek    Confidence = "bye_week"
)

// WinProbability is ephemeral, never persisted. It is scoped to one
// (team, week, season).
type WinProbability struct {
	Team           *NFLTeam   `json:"team"`
	Season         int        `json:"season"`
	Week           int        `json:"week"`
	Opponent       *NFLTeam   `json:"opponent,omitempty"` // nil on a bye week
	WinProbability float64    `json:"winProbability"`
	Confidence     Confidence `json:"confidence"`
}

// Complement is the same probability seen from the other sideline.
func (p WinProbability) Complement(team *NFLTeam) WinProbability {
	return WinProbability{
		Team:           team,
		Season:         p.Season,
		Week:           p.Week,
		Opponent:       p.Team,
		WinProbability: 1 - p.WinProbability,
		Confidence:     p.Confidence,
	}
}
