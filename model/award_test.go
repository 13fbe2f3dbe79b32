package model

import "testing"

func TestAwardTypeClasses(t *testing.T) {
	tests := []struct {
		t       AwardType
		weekly  bool
		playoff bool
		winType bool
	}{
		{t: AwardWin, weekly: true, winType: true},
		{t: AwardTieAway, weekly: true, winType: true},
		{t: AwardOBO, weekly: true},
		{t: AwardDBO, weekly: true},
		{t: AwardPlayoffBerth, playoff: true},
		{t: AwardPlayoffSBWin, playoff: true},
		{t: AwardCoachFired},
	}

	for _, tc := range tests {
		if got := tc.t.Weekly(); got != tc.weekly {
			t.Errorf("%s.Weekly() = %v, expected %v", tc.t, got, tc.weekly)
		}
		if got := tc.t.Playoff(); got != tc.playoff {
			t.Errorf("%s.Playoff() = %v, expected %v", tc.t, got, tc.playoff)
		}
		if got := tc.t.WinType(); got != tc.winType {
			t.Errorf("%s.WinType() = %v, expected %v", tc.t, got, tc.winType)
		}
	}
}
