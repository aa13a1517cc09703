//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"github.com/Antonio1491/parksys-sub007/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
)

func TestFinalAmount(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	deadline := now.Add(time.Hour)
	eligible := pricing.EligibleDiscounts(fullConfig(&deadline), now)

	cases := []struct {
		name      string
		cents     int64
		selection pricing.Selection
		expected  int64
	}{
		{
			name:      "no discount leaves amount unchanged",
			cents:     50000,
			selection: pricing.SelectionNone,
			expected:  50000,
		},
		{
			name:      "early bird 20 percent",
			cents:     100000,
			selection: pricing.Selection("early_bird"),
			expected:  80000,
		},
		{
			name:      "seniors 50 percent",
			cents:     50000,
			selection: pricing.Selection("seniors"),
			expected:  25000,
		},
		{
			name:      "unresolvable selection falls back to full amount",
			cents:     100000,
			selection: pricing.Selection("veterans"),
			expected:  100000,
		},
		{
			name:      "rounding truncates toward zero",
			cents:     999,
			selection: pricing.Selection("families"),
			expected:  849, // 999 * 85 / 100 = 849.15
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := pricing.FinalAmount(pricing.NewMoney(tc.cents), tc.selection, eligible)
			assert.Equal(t, tc.expected, got.Cents())
		})
	}

	t.Run("expired early bird selection charges full price", func(t *testing.T) {
		expired := pricing.EligibleDiscounts(fullConfig(&deadline), now.Add(2*time.Hour))
		got := pricing.FinalAmount(pricing.NewMoney(100000), pricing.Selection("early_bird"), expired)
		assert.Equal(t, int64(100000), got.Cents())
	})
}

func TestApplyPercentOff(t *testing.T) {
	assert.Equal(t, int64(0), pricing.NewMoney(5000).ApplyPercentOff(100).Cents())
	assert.Equal(t, int64(0), pricing.NewMoney(5000).ApplyPercentOff(150).Cents())
	assert.Equal(t, int64(5000), pricing.NewMoney(5000).ApplyPercentOff(0).Cents())
	assert.Equal(t, int64(5000), pricing.NewMoney(5000).ApplyPercentOff(-10).Cents())
	assert.Equal(t, int64(2500), pricing.NewMoney(5000).ApplyPercentOff(50).Cents())
}
