package internal

type ScoreboardResponse struct {
	Events []Event `json:"events"`
}

type Event struct {
	ID           string        `json:"id"`
	Date         string        `json:"date"`
	Competitions []Competition `json:"competitions"`
}

type Competition struct {
	Competitors []Competitor `json:"competitors"`
	Status      Status       `json:"status"`
}

type Competitor struct {
	HomeAway string `json:"homeAway"`
	Score    string `json:"score"`
	Team     struct {
		Abbreviation string `json:"abbreviation"`
	} `json:"team"`
}

type Status struct {
	Type struct {
		Name      string `json:"name"`
		State     string `json:"state"` // pre, in, post
		Completed bool   `json:"completed"`
	} `json:"type"`
}
