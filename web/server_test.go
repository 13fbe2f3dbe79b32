package web

import (
	"io"
	"net/http"
	"testing"

	"github.com/RicTBest/paydaysite-sub000/controller/mockcontroller"
)

func TestRootHandler(t *testing.T) {
	s := newTestServer(&mockcontroller.C{})
	defer s.Close()

	resp, err := http.Get(s.URL + "/")
	if err != nil {
		t.Fatalf("error making request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code: %d", resp.StatusCode)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("error reading body: %v", err)
	}
	if string(b) != "payday football league" {
		t.Errorf("unexpected body: %s", b)
	}
}

func TestRouter_unknownSeasonIs404(t *testing.T) {
	s := newTestServer(&mockcontroller.C{})
	defer s.Close()

	// The route patterns only accept numeric season and week values.
	resp, err := http.Get(s.URL + "/api/leaderboard/latest")
	if err != nil {
		t.Fatalf("error making request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for a non-numeric season, got %d", resp.StatusCode)
	}
}
