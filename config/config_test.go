package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
payouts:
  dollars_per_point: 5
  playoff_berth: 10
  playoff_bye: 10
  wild_card_win: 10
  divisional_win: 15
  conference_win: 30
  super_bowl_win: 90
odds:
  base_url: "http://localhost:1234"
  timeout: 2s
  retry_attempts: 2
  retry_base_delay: 10ms
strength:
  home_advantage: 0.4
  scale: 1.0
  ratings:
    KCC: 1.8
    CAR: -1.6
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("error loading config: %v", err)
	}

	if cfg.Payouts.SuperBowlWin != 90 {
		t.Errorf("super bowl amount not expected: %d", cfg.Payouts.SuperBowlWin)
	}
	if cfg.Odds.BaseURL != "http://localhost:1234" {
		t.Errorf("odds base url not expected: %s", cfg.Odds.BaseURL)
	}
	if cfg.Odds.RetryBaseDelay != 10*time.Millisecond {
		t.Errorf("retry base delay not expected: %v", cfg.Odds.RetryBaseDelay)
	}
	if cfg.Strength.Rating("KCC") != 1.8 {
		t.Errorf("KCC rating not expected: %f", cfg.Strength.Rating("KCC"))
	}
	// Missing teams are league average.
	if cfg.Strength.Rating("SEA") != 0 {
		t.Errorf("expected 0 rating for unlisted team, got %f", cfg.Strength.Rating("SEA"))
	}
	// Fields absent from the file keep their defaults.
	if cfg.Scores.BaseURL == "" {
		t.Error("expected scores base url default to survive partial config")
	}
}

func TestLoad_errors(t *testing.T) {
	tests := map[string]struct {
		yaml string
		want string
	}{
		"indivisible playoff amount": {
			yaml: "payouts:\n  dollars_per_point: 5\n  divisional_win: 12\n",
			want: "not divisible by dollars_per_point",
		},
		"zero conversion rate": {
			yaml: "payouts:\n  dollars_per_point: 0\n",
			want: "dollars_per_point must be positive",
		},
		"bad yaml": {
			yaml: "payouts: [\n",
			want: "failed to parse config file",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			path := writeConfig(t, tc.yaml)
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected an error, got nil")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error does not contain %q - actual: %v", tc.want, err)
			}
		})
	}
}

func TestLoad_missingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "payday.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("error writing config file: %v", err)
	}
	return path
}
