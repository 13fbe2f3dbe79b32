package internal

import (
	"math"
	"testing"
)

func TestMarketProbability(t *testing.T) {
	tests := map[string]struct {
		market Market
		want   float64
	}{
		"midpoint of the book":       {market: Market{YesBid: 58, YesAsk: 62, LastPrice: 95}, want: 0.60},
		"last price when one-sided":  {market: Market{YesBid: 0, YesAsk: 62, LastPrice: 40}, want: 0.40},
		"last price when no book":    {market: Market{LastPrice: 73}, want: 0.73},
		"clamped at the floor":       {market: Market{LastPrice: 0}, want: 0.01},
		"clamped at the ceiling":     {market: Market{YesBid: 99, YesAsk: 100}, want: 0.99},
		"odd spread rounds down":     {market: Market{YesBid: 50, YesAsk: 53}, want: 0.51},
		"midpoint ignores last sale": {market: Market{YesBid: 20, YesAsk: 30, LastPrice: 90}, want: 0.25},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := tc.market.Probability()
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("expected %f, got %f", tc.want, got)
			}
		})
	}
}
