package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/RicTBest/paydaysite-sub000/controller/mockcontroller"
	"github.com/RicTBest/paydaysite-sub000/model"
)

var testCreds = AdminCreds{User: "admin", Password: "pa55word"}

func newTestServer(ctrl *mockcontroller.C) *httptest.Server {
	return httptest.NewServer(getRouter(ctrl, newRender(), testCreds))
}

func TestLeaderboardHandler(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("GetLeaderboard", mock.Anything, 2025).Return([]model.LeaderboardRow{
		{OwnerID: 1, OwnerName: "Alice", Points: 4, Dollars: 20, GooseCount: 1},
		{OwnerID: 2, OwnerName: "Bob", Points: 2, Dollars: 10, GooseCount: 0},
	}, nil)

	s := newTestServer(ctrl)
	defer s.Close()

	resp, err := http.Get(s.URL + "/api/leaderboard/2025")
	if err != nil {
		t.Fatalf("error making request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code: %d", resp.StatusCode)
	}

	var rows []model.LeaderboardRow
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(rows) != 2 || rows[0].OwnerName != "Alice" || rows[0].Dollars != 20 {
		t.Errorf("unexpected rows: %v", rows)
	}
}

func TestAwardsHandler(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("GetWeekAwards", mock.Anything, 2025, 3).Return([]model.Award{
		{Season: 2025, Week: 3, Type: model.AwardWin, Team: model.TEAM_KCC, OwnerID: 1, Points: 1},
	}, nil)

	s := newTestServer(ctrl)
	defer s.Close()

	resp, err := http.Get(s.URL + "/api/seasons/2025/weeks/3/awards")
	if err != nil {
		t.Fatalf("error making request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code: %d", resp.StatusCode)
	}

	var awards []model.Award
	if err := json.NewDecoder(resp.Body).Decode(&awards); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(awards) != 1 {
		t.Fatalf("expected 1 award, got %d", len(awards))
	}
	if !awards[0].Team.Equals(model.TEAM_KCC) {
		t.Errorf("team did not round trip: %v", awards[0].Team)
	}
}

func TestAwardsHandler_error(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("GetWeekAwards", mock.Anything, 2025, 3).Return(nil, errors.New("boom"))

	s := newTestServer(ctrl)
	defer s.Close()

	resp, err := http.Get(s.URL + "/api/seasons/2025/weeks/3/awards")
	if err != nil {
		t.Fatalf("error making request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("unexpected status code: %d", resp.StatusCode)
	}
}

func TestRecomputeHandler_requiresAuth(t *testing.T) {
	ctrl := &mockcontroller.C{}

	s := newTestServer(ctrl)
	defer s.Close()

	resp, err := http.Post(s.URL+"/admin/seasons/2025/weeks/3/awards/recompute", "", nil)
	if err != nil {
		t.Fatalf("error making request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without credentials, got %d", resp.StatusCode)
	}
	ctrl.AssertNotCalled(t, "RecomputeWeekAwards", mock.Anything, mock.Anything, mock.Anything)
}

func TestRecomputeHandler(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("RecomputeWeekAwards", mock.Anything, 2025, 3).Return([]model.Award{}, nil)

	s := newTestServer(ctrl)
	defer s.Close()

	req, _ := http.NewRequest(http.MethodPost, s.URL+"/admin/seasons/2025/weeks/3/awards/recompute", nil)
	req.SetBasicAuth(testCreds.User, testCreds.Password)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("error making request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code: %d", resp.StatusCode)
	}
	ctrl.AssertExpectations(t)
}

func TestManualAwardHandler_unknownTeam(t *testing.T) {
	ctrl := &mockcontroller.C{}

	s := newTestServer(ctrl)
	defer s.Close()

	form := url.Values{
		"team":   []string{"XYZ"},
		"type":   []string{"COACH_FIRED"},
		"points": []string{"2"},
	}
	req, _ := http.NewRequest(http.MethodPost, s.URL+"/admin/seasons/2025/weeks/18/awards", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(testCreds.User, testCreds.Password)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("error making request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for an unknown team, got %d", resp.StatusCode)
	}
	ctrl.AssertNotCalled(t, "AddManualAward", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestManualAwardHandler(t *testing.T) {
	award := &model.Award{Season: 2025, Week: 18, Type: model.AwardCoachFired, Team: model.TEAM_NYJ, OwnerID: 5, Points: 2, Notes: "fired"}

	ctrl := &mockcontroller.C{}
	ctrl.On("AddManualAward", mock.Anything, 2025, 18, model.AwardCoachFired, model.TEAM_NYJ, 2, "fired").Return(award, nil)

	s := newTestServer(ctrl)
	defer s.Close()

	form := url.Values{
		"team":   []string{"NYJ"},
		"type":   []string{"COACH_FIRED"},
		"points": []string{"2"},
		"notes":  []string{"fired"},
	}
	req, _ := http.NewRequest(http.MethodPost, s.URL+"/admin/seasons/2025/weeks/18/awards", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(testCreds.User, testCreds.Password)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("error making request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code: %d", resp.StatusCode)
	}
	ctrl.AssertExpectations(t)
}

func TestCloseWeekHandler_conflict(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("CloseWeek", mock.Anything, 2025, 3).Return(errors.New("cannot close week 3 of 2025: game x is not final"))

	s := newTestServer(ctrl)
	defer s.Close()

	req, _ := http.NewRequest(http.MethodPost, s.URL+"/admin/seasons/2025/weeks/3/close", nil)
	req.SetBasicAuth(testCreds.User, testCreds.Password)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("error making request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 for an unclosable week, got %d", resp.StatusCode)
	}
}

func TestGooseOwnerHandler(t *testing.T) {
	res := &model.GooseResult{OwnerID: 7, OwnerName: "Frank", Probability: 0.3, Percentage: "30.0%"}

	ctrl := &mockcontroller.C{}
	ctrl.On("GooseProbability", mock.Anything, int32(7), 2025, 3, mock.Anything).Return(res)

	s := newTestServer(ctrl)
	defer s.Close()

	resp, err := http.Get(s.URL + "/api/seasons/2025/weeks/3/goose/7")
	if err != nil {
		t.Fatalf("error making request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code: %d", resp.StatusCode)
	}

	var got model.GooseResult
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if got.OwnerName != "Frank" || got.Percentage != "30.0%" {
		t.Errorf("unexpected result: %+v", got)
	}
}
