package testutils

import (
	"io"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/sirupsen/logrus"
)

// TestController bundles the fake providers and a mock clock for
// controller tests.
type TestController struct {
	Clock     *clock.Mock
	fakeOdds  *FakeKalshiServer
	fakeScore *FakeESPNServer
}

func (c *TestController) Close() {
	c.fakeOdds.Close()
	c.fakeScore.Close()
}

func (c *TestController) OddsURL() string {
	return c.fakeOdds.URL()
}

func (c *TestController) ScoresURL() string {
	return c.fakeScore.URL()
}

func (c *TestController) Odds() *FakeKalshiServer {
	return c.fakeOdds
}

func (c *TestController) Scores() *FakeESPNServer {
	return c.fakeScore
}

func NewTestController() *TestController {
	mock := clock.NewMock()
	// A fixed instant mid-season so week math is stable.
	t, _ := time.Parse(time.RFC3339, "2025-10-15T12:00:00Z")
	mock.Set(t)

	return &TestController{
		Clock:     mock,
		fakeOdds:  NewFakeKalshiServer(),
		fakeScore: NewFakeESPNServer(),
	}
}

// DiscardLogger returns a logger whose output goes nowhere, for tests
// that don't assert on log lines.
func DiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
