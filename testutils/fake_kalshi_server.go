package testutils

import (
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/go-chi/chi/v5"
)

// FakeKalshiServer serves the markets endpoint with programmable
// responses. Markets are registered per home-team wire code; every
// event_ticker query returns all registered markets, which matches how
// the real API is consumed: the client picks its market by ticker suffix.
type FakeKalshiServer struct {
	s *httptest.Server

	mu       sync.Mutex
	markets  []fakeMarket
	failures int
	requests int
}

type fakeMarket struct {
	ticker    string
	yesBid    int
	yesAsk    int
	lastPrice int
}

func NewFakeKalshiServer() *FakeKalshiServer {
	f := &FakeKalshiServer{}

	r := chi.NewRouter()
	r.Get("/markets", f.marketsHandler)

	f.s = httptest.NewServer(r)
	return f
}

func (f *FakeKalshiServer) Close() {
	f.s.Close()
}

func (f *FakeKalshiServer) URL() string {
	return f.s.URL
}

// SetHomeMarket registers the market for a home team. Prices are in
// cents of implied probability, matching the wire format.
func (f *FakeKalshiServer) SetHomeMarket(homeCode string, yesBid, yesAsk, lastPrice int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.markets = append(f.markets, fakeMarket{
		ticker:    "FAKEEVENT-" + homeCode,
		yesBid:    yesBid,
		yesAsk:    yesAsk,
		lastPrice: lastPrice,
	})
}

// FailNext makes the next n requests respond with a 500.
func (f *FakeKalshiServer) FailNext(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures = n
}

// Requests reports how many markets calls the server has seen.
func (f *FakeKalshiServer) Requests() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests
}

func (f *FakeKalshiServer) marketsHandler(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.requests++
	if f.failures > 0 {
		f.failures--
		f.mu.Unlock()
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	type market struct {
		Ticker    string `json:"ticker"`
		Status    string `json:"status"`
		YesBid    int    `json:"yes_bid"`
		YesAsk    int    `json:"yes_ask"`
		LastPrice int    `json:"last_price"`
	}
	resp := struct {
		Markets []market `json:"markets"`
	}{Markets: []market{}}
	for _, m := range f.markets {
		resp.Markets = append(resp.Markets, market{
			Ticker:    m.ticker,
			Status:    "active",
			YesBid:    m.yesBid,
			YesAsk:    m.yesAsk,
			LastPrice: m.lastPrice,
		})
	}
	f.mu.Unlock()

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("error encoding fake markets response: %v", err)
	}
}
