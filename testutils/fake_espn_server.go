package testutils

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/RicTBest/paydaysite-sub000/model"
)

// FakeESPNServer serves the scoreboard endpoint from registered games,
// rendered in the provider's wire shape.
type FakeESPNServer struct {
	s *httptest.Server

	mu     sync.Mutex
	boards map[string][]model.Game
}

func NewFakeESPNServer() *FakeESPNServer {
	f := &FakeESPNServer{boards: make(map[string][]model.Game)}

	r := chi.NewRouter()
	r.Get("/scoreboard", f.scoreboardHandler)

	f.s = httptest.NewServer(r)
	return f
}

func (f *FakeESPNServer) Close() {
	f.s.Close()
}

func (f *FakeESPNServer) URL() string {
	return f.s.URL
}

// SetScoreboard registers a week's games. Weeks 19-22 are served under
// the postseason season type, mirroring the real endpoint.
func (f *FakeESPNServer) SetScoreboard(season, week int, games []model.Game) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.boards[boardKey(season, week)] = games
}

func boardKey(season, week int) string {
	seasonType, espnWeek := 2, week
	switch week {
	case model.WeekWildCard:
		seasonType, espnWeek = 3, 1
	case model.WeekDivisional:
		seasonType, espnWeek = 3, 2
	case model.WeekConference:
		seasonType, espnWeek = 3, 3
	case model.WeekSuperBowl:
		seasonType, espnWeek = 3, 5
	}
	return fmt.Sprintf("%d-%d-%d", season, seasonType, espnWeek)
}

func (f *FakeESPNServer) scoreboardHandler(w http.ResponseWriter, r *http.Request) {
	season, _ := strconv.Atoi(r.URL.Query().Get("dates"))
	seasonType, _ := strconv.Atoi(r.URL.Query().Get("seasontype"))
	week, _ := strconv.Atoi(r.URL.Query().Get("week"))

	f.mu.Lock()
	games := f.boards[fmt.Sprintf("%d-%d-%d", season, seasonType, week)]
	f.mu.Unlock()

	type team struct {
		Abbreviation string `json:"abbreviation"`
	}
	type competitor struct {
		HomeAway string `json:"homeAway"`
		Score    string `json:"score"`
		Team     team   `json:"team"`
	}
	type statusType struct {
		Name      string `json:"name"`
		State     string `json:"state"`
		Completed bool   `json:"completed"`
	}
	type status struct {
		Type statusType `json:"type"`
	}
	type competition struct {
		Competitors []competitor `json:"competitors"`
		Status      status       `json:"status"`
	}
	type event struct {
		ID           string        `json:"id"`
		Date         string        `json:"date"`
		Competitions []competition `json:"competitions"`
	}

	resp := struct {
		Events []event `json:"events"`
	}{Events: []event{}}

	for _, g := range games {
		state, completed := "pre", false
		switch g.Status {
		case model.GameInProgress:
			state = "in"
		case model.GameFinal:
			state, completed = "post", true
		}

		resp.Events = append(resp.Events, event{
			ID:   g.ID,
			Date: g.Kickoff.UTC().Format("2006-01-02T15:04Z"),
			Competitions: []competition{{
				Competitors: []competitor{
					{HomeAway: "home", Score: strconv.Itoa(g.HomePoints), Team: team{Abbreviation: g.Home.String()}},
					{HomeAway: "away", Score: strconv.Itoa(g.AwayPoints), Team: team{Abbreviation: g.Away.String()}},
				},
				Status: status{Type: statusType{Name: "STATUS", State: state, Completed: completed}},
			}},
		})
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("error encoding fake scoreboard response: %v", err)
	}
}
