package model

import "time"

type GameStatus string

const (
	GameScheduled  GameStatus = "SCHEDULED"
	GameInProgress GameStatus = "IN_PROGRESS"
	GameFinal      GameStatus = "FINAL"
)

// Regular season runs weeks 1-18. Playoff results are posted at fixed
// week slots regardless of the calendar: wild card 19, divisional 20,
// conference 21, super bowl 22.
const (
	WeekWildCard   = 19
	WeekDivisional = 20
	WeekConference = 21
	WeekSuperBowl  = 22

	LastRegularSeasonWeek = 18
)

type Game struct {
	ID         string     `json:"id"`
	Season     int        `json:"season"`
	Week       int        `json:"week"`
	Home       *NFLTeam   `json:"home"`
	Away       *NFLTeam   `json:"away"`
	HomePoints int        `json:"homePoints"`
	AwayPoints int        `json:"awayPoints"`
	Status     GameStatus `json:"status"`
	Kickoff    time.Time  `json:"kickoff"`
}

func (g *Game) Final() bool {
	return g.Status == GameFinal
}

// Winner returns the winning team of a final game. A tie counts as an
// away-team win, the league's tie rule. Returns nil for games that are
// not final.
func (g *Game) Winner() *NFLTeam {
	if !g.Final() {
		return nil
	}
	if g.HomePoints > g.AwayPoints {
		return g.Home
	}
	return g.Away
}

func (g *Game) Tie() bool {
	return g.Final() && g.HomePoints == g.AwayPoints
}

func (g *Game) Involves(t *NFLTeam) bool {
	return g.Home.Equals(t) || g.Away.Equals(t)
}

// Opponent returns the other team in the game, or nil if t isn't playing.
func (g *Game) Opponent(t *NFLTeam) *NFLTeam {
	switch {
	case g.Home.Equals(t):
		return g.Away
	case g.Away.Equals(t):
		return g.Home
	default:
		return nil
	}
}

// PointsFor returns the score for t and its opponent, in that order.
func (g *Game) PointsFor(t *NFLTeam) (own, opp int) {
	if g.Home.Equals(t) {
		return g.HomePoints, g.AwayPoints
	}
	return g.AwayPoints, g.HomePoints
}
