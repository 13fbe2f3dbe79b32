package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Payouts  PayoutConfig   `yaml:"payouts"`
	Odds     ProviderConfig `yaml:"odds"`
	Scores   ProviderConfig `yaml:"scores"`
	Strength StrengthConfig `yaml:"strength"`
}

// PayoutConfig is the money table for the league. Weekly awards are worth
// points and convert to dollars at DollarsPerPoint; playoff amounts are
// fixed dollar figures and must be divisible by DollarsPerPoint so that
// both ledgers aggregate in points.
type PayoutConfig struct {
	DollarsPerPoint int `yaml:"dollars_per_point"`
	PlayoffBerth    int `yaml:"playoff_berth"`
	PlayoffBye      int `yaml:"playoff_bye"`
	WildCardWin     int `yaml:"wild_card_win"`
	DivisionalWin   int `yaml:"divisional_win"`
	ConferenceWin   int `yaml:"conference_win"`
	SuperBowlWin    int `yaml:"super_bowl_win"`
}

type ProviderConfig struct {
	BaseURL        string        `yaml:"base_url"`
	Timeout        time.Duration `yaml:"timeout"`
	RetryAttempts  int           `yaml:"retry_attempts"`
	RetryBaseDelay time.Duration `yaml:"retry_base_delay"`
}

// UnmarshalYAML parses duration fields from their human form ("10s",
// "250ms"), which the yaml package does not do for time.Duration. Absent
// fields keep whatever value the receiver already holds, so partial
// files overlay the defaults.
func (p *ProviderConfig) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		BaseURL        string `yaml:"base_url"`
		Timeout        string `yaml:"timeout"`
		RetryAttempts  *int   `yaml:"retry_attempts"`
		RetryBaseDelay string `yaml:"retry_base_delay"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	if raw.BaseURL != "" {
		p.BaseURL = raw.BaseURL
	}
	if raw.RetryAttempts != nil {
		p.RetryAttempts = *raw.RetryAttempts
	}
	if raw.Timeout != "" {
		d, err := time.ParseDuration(raw.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout %q: %w", raw.Timeout, err)
		}
		p.Timeout = d
	}
	if raw.RetryBaseDelay != "" {
		d, err := time.ParseDuration(raw.RetryBaseDelay)
		if err != nil {
			return fmt.Errorf("invalid retry_base_delay %q: %w", raw.RetryBaseDelay, err)
		}
		p.RetryBaseDelay = d
	}
	return nil
}

// StrengthConfig drives the fallback win probability when no live market
// is available: P(home) = 1 / (1 + exp(-(home + home_advantage - away) / scale)).
type StrengthConfig struct {
	HomeAdvantage float64            `yaml:"home_advantage"`
	Scale         float64            `yaml:"scale"`
	Ratings       map[string]float64 `yaml:"ratings"`
}

// Rating returns a team's strength rating. Teams missing from the table
// are treated as league average.
func (s *StrengthConfig) Rating(abbr string) float64 {
	return s.Ratings[abbr]
}

func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func Default() *Config {
	return &Config{
		Payouts: PayoutConfig{
			DollarsPerPoint: 5,
			PlayoffBerth:    10,
			PlayoffBye:      10,
			WildCardWin:     10,
			DivisionalWin:   15,
			ConferenceWin:   30,
			SuperBowlWin:    90,
		},
		Odds: ProviderConfig{
			BaseURL:        "https://api.elections.kalshi.com/trade-api/v2",
			Timeout:        10 * time.Second,
			RetryAttempts:  3,
			RetryBaseDelay: 1 * time.Second,
		},
		Scores: ProviderConfig{
			BaseURL: "https://site.api.espn.com/apis/site/v2/sports/football/nfl",
			Timeout: 10 * time.Second,
		},
		Strength: StrengthConfig{
			HomeAdvantage: 0.4,
			Scale:         1.0,
		},
	}
}

func (c *Config) validate() error {
	if c.Payouts.DollarsPerPoint <= 0 {
		return fmt.Errorf("dollars_per_point must be positive, got %d", c.Payouts.DollarsPerPoint)
	}
	amounts := map[string]int{
		"playoff_berth":  c.Payouts.PlayoffBerth,
		"playoff_bye":    c.Payouts.PlayoffBye,
		"wild_card_win":  c.Payouts.WildCardWin,
		"divisional_win": c.Payouts.DivisionalWin,
		"conference_win": c.Payouts.ConferenceWin,
		"super_bowl_win": c.Payouts.SuperBowlWin,
	}
	for name, amount := range amounts {
		if amount%c.Payouts.DollarsPerPoint != 0 {
			return fmt.Errorf("%s ($%d) is not divisible by dollars_per_point ($%d)", name, amount, c.Payouts.DollarsPerPoint)
		}
	}
	if c.Strength.Scale == 0 {
		return fmt.Errorf("strength scale must not be zero")
	}
	return nil
}
