package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/RicTBest/paydaysite-sub000/model"
	"github.com/RicTBest/paydaysite-sub000/platforms/espn/internal"
)

const ESPNURL = "https://site.api.espn.com/apis/site/v2/sports/football/nfl"

type Client interface {
	// Scoreboard fetches a week of games, already normalized to the
	// canonical Game shape. Week follows the league's numbering, where
	// 19-22 are the playoff round slots.
	Scoreboard(ctx context.Context, season, week int) ([]model.Game, error)
}

type client struct {
	url        string
	httpClient *http.Client
}

func New() (Client, error) {
	return NewWithURL(ESPNURL)
}

func NewWithURL(baseURL string) (Client, error) {
	if baseURL == "" {
		baseURL = ESPNURL
	}
	c := &client{
		url: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	return c, nil
}

func NewForTest(url string) Client {
	c, _ := NewWithURL(url)
	return c
}

func (c *client) Scoreboard(ctx context.Context, season, week int) ([]model.Game, error) {
	seasonType, espnWeek := weekParams(week)

	u := fmt.Sprintf("%s/scoreboard?dates=%d&seasontype=%d&week=%d", c.url, season, seasonType, espnWeek)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating http request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code from espn: %d", resp.StatusCode)
	}

	var parsed internal.ScoreboardResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("error parsing response from espn: %w", err)
	}

	games := make([]model.Game, 0, len(parsed.Events))
	for _, e := range parsed.Events {
		g, err := toGame(e, season, week)
		if err != nil {
			return nil, err
		}
		games = append(games, *g)
	}
	return games, nil
}

// weekParams maps the league's week numbering onto ESPN's season type and
// week parameters. Regular season is type 2; the postseason is type 3
// with its own week counter (the Pro Bowl occupies slot 4).
func weekParams(week int) (seasonType, espnWeek int) {
	switch week {
	case model.WeekWildCard:
		return 3, 1
	case model.WeekDivisional:
		return 3, 2
	case model.WeekConference:
		return 3, 3
	case model.WeekSuperBowl:
		return 3, 5
	default:
		return 2, week
	}
}

// toGame is the normalization boundary: nothing downstream ever sees an
// ESPN shape.
func toGame(e internal.Event, season, week int) (*model.Game, error) {
	if len(e.Competitions) == 0 {
		return nil, fmt.Errorf("event %s has no competitions", e.ID)
	}
	comp := e.Competitions[0]

	g := &model.Game{
		ID:     e.ID,
		Season: season,
		Week:   week,
	}

	for _, c := range comp.Competitors {
		team := model.ParseTeam(c.Team.Abbreviation)
		if team.Equals(model.TEAM_FA) {
			return nil, fmt.Errorf("unknown team abbreviation %q in event %s", c.Team.Abbreviation, e.ID)
		}
		points := 0
		if c.Score != "" {
			p, err := strconv.Atoi(c.Score)
			if err != nil {
				return nil, fmt.Errorf("error parsing score %q in event %s: %w", c.Score, e.ID, err)
			}
			points = p
		}

		switch c.HomeAway {
		case "home":
			g.Home = team
			g.HomePoints = points
		case "away":
			g.Away = team
			g.AwayPoints = points
		default:
			return nil, fmt.Errorf("unexpected homeAway value %q in event %s", c.HomeAway, e.ID)
		}
	}
	if g.Home == nil || g.Away == nil {
		return nil, fmt.Errorf("event %s is missing a home or away competitor", e.ID)
	}

	switch comp.Status.Type.State {
	case "pre":
		g.Status = model.GameScheduled
	case "in":
		g.Status = model.GameInProgress
	case "post":
		g.Status = model.GameFinal
	default:
		return nil, fmt.Errorf("unexpected game state %q in event %s", comp.Status.Type.State, e.ID)
	}

	if e.Date != "" {
		kickoff, err := time.Parse("2006-01-02T15:04Z", e.Date)
		if err != nil {
			// ESPN has used both minute and second precision.
			kickoff, err = time.Parse(time.RFC3339, e.Date)
			if err != nil {
				return nil, fmt.Errorf("error parsing kickoff %q in event %s: %w", e.Date, e.ID, err)
			}
		}
		g.Kickoff = kickoff
	}

	return g, nil
}
