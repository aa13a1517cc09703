//go:build unit

package catalog_test

import (
	"testing"

	"github.com/Antonio1491/parksys-sub007/internal/domain/catalog"
	"github.com/Antonio1491/parksys-sub007/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindFromString(t *testing.T) {
	for _, valid := range []string{"activity", "event", "space_reservation"} {
		kind, err := catalog.KindFromString(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, kind.String())
	}

	_, err := catalog.KindFromString("concert")
	assert.ErrorIs(t, err, catalog.ErrUnknownKind)
}

func TestNewItem(t *testing.T) {
	id := uuid.New()

	t.Run("valid", func(t *testing.T) {
		item, err := catalog.NewItem(id, catalog.KindEvent, "Summer festival", pricing.NewMoney(120000), false, false, pricing.DiscountConfig{})
		require.NoError(t, err)
		assert.Equal(t, id, item.ID())
		assert.Equal(t, int64(120000), item.BasePrice().Cents())
	})

	t.Run("invalid kind", func(t *testing.T) {
		_, err := catalog.NewItem(id, catalog.Kind("concert"), "Summer festival", pricing.NewMoney(120000), false, false, pricing.DiscountConfig{})
		assert.ErrorIs(t, err, catalog.ErrUnknownKind)
	})

	t.Run("empty title", func(t *testing.T) {
		_, err := catalog.NewItem(id, catalog.KindEvent, "", pricing.NewMoney(120000), false, false, pricing.DiscountConfig{})
		assert.ErrorIs(t, err, catalog.ErrEmptyTitle)
	})

	t.Run("negative price", func(t *testing.T) {
		_, err := catalog.NewItem(id, catalog.KindEvent, "Summer festival", pricing.NewMoney(-1), false, false, pricing.DiscountConfig{})
		assert.ErrorIs(t, err, catalog.ErrNegativePrice)
	})
}

func TestChargeableAmount(t *testing.T) {
	id := uuid.New()

	t.Run("fixed price item charges the base price", func(t *testing.T) {
		item, err := catalog.NewItem(id, catalog.KindActivity, "Yoga", pricing.NewMoney(22000), false, false, pricing.DiscountConfig{})
		require.NoError(t, err)

		amount, err := item.ChargeableAmount(nil)
		require.NoError(t, err)
		assert.Equal(t, int64(22000), amount.Cents())
	})

	t.Run("fixed price item refuses a custom amount", func(t *testing.T) {
		item, err := catalog.NewItem(id, catalog.KindActivity, "Yoga", pricing.NewMoney(22000), false, false, pricing.DiscountConfig{})
		require.NoError(t, err)

		custom := pricing.NewMoney(30000)
		_, err = item.ChargeableAmount(&custom)
		assert.ErrorIs(t, err, catalog.ErrCustomAmountNotAllowed)
	})

	t.Run("pay what you wish floors at the base price", func(t *testing.T) {
		item, err := catalog.NewItem(id, catalog.KindActivity, "Yoga", pricing.NewMoney(22000), false, true, pricing.DiscountConfig{})
		require.NoError(t, err)

		low := pricing.NewMoney(15000)
		_, err = item.ChargeableAmount(&low)
		assert.ErrorIs(t, err, catalog.ErrAmountBelowBase)

		ok := pricing.NewMoney(30000)
		amount, err := item.ChargeableAmount(&ok)
		require.NoError(t, err)
		assert.Equal(t, int64(30000), amount.Cents())

		exact := pricing.NewMoney(22000)
		amount, err = item.ChargeableAmount(&exact)
		require.NoError(t, err)
		assert.Equal(t, int64(22000), amount.Cents())
	})
}
