//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/Antonio1491/parksys-sub007/internal/domain/catalog"
	"github.com/Antonio1491/parksys-sub007/internal/infra"
	"github.com/Antonio1491/parksys-sub007/internal/pkg/clock"
	"github.com/Antonio1491/parksys-sub007/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

type fakeItemReadStore struct {
	view *queries.ItemView
}

func (s *fakeItemReadStore) FindViewByKindID(_ context.Context, kind catalog.Kind, id uuid.UUID) (*queries.ItemView, error) {
	if s.view != nil && s.view.Kind == kind && s.view.ID == id {
		return s.view, nil
	}
	return nil, infra.WrapRepoErr("item not found", pgx.ErrNoRows, infra.KindNotFound)
}

func TestEligibleForItem(t *testing.T) {
	deadline := testNow.Add(time.Hour)
	view := &queries.ItemView{
		ID:                uuid.New(),
		Kind:              catalog.KindActivity,
		Title:             "Swimming lessons",
		BasePriceCents:    100000,
		SeniorsPercent:    50,
		StudentsPercent:   25,
		EarlyBirdPercent:  20,
		EarlyBirdDeadline: &deadline,
	}

	t.Run("lists options in presentation order", func(t *testing.T) {
		q := queries.NewDiscountQueries(&fakeItemReadStore{view: view}, clock.NewMockClock(testNow))

		options, err := q.EligibleForItem(context.Background(), view.Kind, view.ID)
		require.NoError(t, err)

		require.Len(t, options, 3)
		assert.Equal(t, "seniors", options[0].ID)
		assert.Equal(t, "students", options[1].ID)
		assert.Equal(t, "early_bird", options[2].ID)
	})

	t.Run("early bird drops out after the deadline", func(t *testing.T) {
		q := queries.NewDiscountQueries(&fakeItemReadStore{view: view}, clock.NewMockClock(testNow.Add(2*time.Hour)))

		options, err := q.EligibleForItem(context.Background(), view.Kind, view.ID)
		require.NoError(t, err)

		require.Len(t, options, 2)
		for _, opt := range options {
			assert.NotEqual(t, "early_bird", opt.ID)
		}
	})

	t.Run("unknown item", func(t *testing.T) {
		q := queries.NewDiscountQueries(&fakeItemReadStore{}, clock.NewMockClock(testNow))

		_, err := q.EligibleForItem(context.Background(), catalog.KindActivity, uuid.New())
		assert.ErrorIs(t, err, queries.ErrItemNotFound)
	})
}
