//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"github.com/Antonio1491/parksys-sub007/internal/domain/pricing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullConfig(deadline *time.Time) pricing.DiscountConfig {
	return pricing.DiscountConfig{
		SeniorsPercent:    50,
		StudentsPercent:   25,
		FamiliesPercent:   15,
		DisabilityPercent: 50,
		EarlyBirdPercent:  20,
		EarlyBirdDeadline: deadline,
	}
}

func TestEligibleDiscounts(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("fixed presentation order", func(t *testing.T) {
		deadline := now.Add(24 * time.Hour)
		opts := pricing.EligibleDiscounts(fullConfig(&deadline), now)

		ids := make([]pricing.DiscountID, len(opts))
		for i, opt := range opts {
			ids[i] = opt.ID
		}
		expected := []pricing.DiscountID{
			pricing.DiscountSeniors,
			pricing.DiscountStudents,
			pricing.DiscountFamilies,
			pricing.DiscountDisability,
			pricing.DiscountEarlyBird,
		}
		if diff := cmp.Diff(expected, ids); diff != "" {
			t.Errorf("discount order mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("zero percent excludes the discount", func(t *testing.T) {
		cfg := fullConfig(nil)
		cfg.StudentsPercent = 0
		cfg.FamiliesPercent = 0

		opts := pricing.EligibleDiscounts(cfg, now)

		require.Len(t, opts, 2)
		assert.Equal(t, pricing.DiscountSeniors, opts[0].ID)
		assert.Equal(t, pricing.DiscountDisability, opts[1].ID)
	})

	t.Run("out of range percent excludes the discount", func(t *testing.T) {
		cfg := pricing.DiscountConfig{
			SeniorsPercent:  101,
			StudentsPercent: -5,
		}
		opts := pricing.EligibleDiscounts(cfg, now)
		assert.Empty(t, opts)
	})

	t.Run("empty config yields empty set", func(t *testing.T) {
		opts := pricing.EligibleDiscounts(pricing.DiscountConfig{}, now)
		assert.Empty(t, opts)
	})

	t.Run("early bird", func(t *testing.T) {
		cases := []struct {
			name     string
			deadline *time.Time
			expected bool
		}{
			{
				name:     "present before deadline",
				deadline: timePtr(now.Add(time.Hour)),
				expected: true,
			},
			{
				name:     "present exactly at deadline",
				deadline: timePtr(now),
				expected: true,
			},
			{
				name:     "absent after deadline",
				deadline: timePtr(now.Add(-time.Second)),
				expected: false,
			},
			{
				name:     "absent without deadline",
				deadline: nil,
				expected: false,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				cfg := pricing.DiscountConfig{
					EarlyBirdPercent:  20,
					EarlyBirdDeadline: tc.deadline,
				}
				opts := pricing.EligibleDiscounts(cfg, now)

				if tc.expected {
					require.Len(t, opts, 1)
					assert.Equal(t, pricing.DiscountEarlyBird, opts[0].ID)
					assert.Equal(t, int32(20), opts[0].Percent)
				} else {
					assert.Empty(t, opts)
				}
			})
		}
	})

	t.Run("recomputation drops early bird once time passes", func(t *testing.T) {
		deadline := now.Add(time.Minute)
		cfg := fullConfig(&deadline)

		before := pricing.EligibleDiscounts(cfg, now)
		after := pricing.EligibleDiscounts(cfg, now.Add(2*time.Minute))

		assert.Len(t, before, 5)
		assert.Len(t, after, 4)
		for _, opt := range after {
			assert.NotEqual(t, pricing.DiscountEarlyBird, opt.ID)
		}
	})
}

func TestSelectionResolve(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	deadline := now.Add(time.Hour)
	eligible := pricing.EligibleDiscounts(fullConfig(&deadline), now)

	t.Run("resolves an eligible selection", func(t *testing.T) {
		sel := pricing.Selection("students")
		opt, ok := sel.Resolve(eligible)
		require.True(t, ok)
		assert.Equal(t, pricing.DiscountStudents, opt.ID)
		assert.Equal(t, int32(25), opt.Percent)
	})

	t.Run("none never resolves", func(t *testing.T) {
		_, ok := pricing.SelectionNone.Resolve(eligible)
		assert.False(t, ok)
	})

	t.Run("stale selection does not resolve", func(t *testing.T) {
		expired := pricing.EligibleDiscounts(fullConfig(&deadline), now.Add(2*time.Hour))
		_, ok := pricing.Selection("early_bird").Resolve(expired)
		assert.False(t, ok)
	})

	t.Run("unknown id does not resolve", func(t *testing.T) {
		_, ok := pricing.Selection("veterans").Resolve(eligible)
		assert.False(t, ok)
	})
}

func TestNewSelection(t *testing.T) {
	assert.True(t, pricing.NewSelection(nil).IsNone())
	assert.True(t, pricing.NewSelection(strPtr("")).IsNone())
	assert.True(t, pricing.NewSelection(strPtr("  ")).IsNone())
	assert.True(t, pricing.NewSelection(strPtr("none")).IsNone())
	assert.Equal(t, pricing.Selection("seniors"), pricing.NewSelection(strPtr(" seniors ")))
}

func timePtr(t time.Time) *time.Time { return &t }
func strPtr(s string) *string        { return &s }
