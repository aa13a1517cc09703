package queries

import (
	"context"
	"time"

	"github.com/Antonio1491/parksys-sub007/internal/domain/catalog"
	"github.com/Antonio1491/parksys-sub007/internal/domain/pricing"
	"github.com/Antonio1491/parksys-sub007/internal/infra"
	"github.com/Antonio1491/parksys-sub007/internal/pkg/clock"
	"github.com/Antonio1491/parksys-sub007/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrItemNotFound = errs.New("payable item not found")

// ItemView carries what the discount listing needs from the catalog.
type ItemView struct {
	ID                uuid.UUID
	Kind              catalog.Kind
	Title             string
	BasePriceCents    int64
	IsFree            bool
	IsPriceRandom     bool
	SeniorsPercent    int32
	StudentsPercent   int32
	FamiliesPercent   int32
	DisabilityPercent int32
	EarlyBirdPercent  int32
	EarlyBirdDeadline *time.Time
}

type DiscountOptionView struct {
	ID          string
	Label       string
	Percent     int32
	Description string
}

type ItemReadStore interface {
	FindViewByKindID(ctx context.Context, kind catalog.Kind, id uuid.UUID) (*ItemView, error)
}

// DiscountQueries lists the discounts eligible right now, in presentation
// order. Recomputed on every call; the early-bird option drops out on its
// own once the deadline passes.
type DiscountQueries interface {
	EligibleForItem(ctx context.Context, kind catalog.Kind, id uuid.UUID) ([]DiscountOptionView, error)
}

type discountQueriesImpl struct {
	store ItemReadStore
	clock clock.Clock
}

func NewDiscountQueries(store ItemReadStore, clock clock.Clock) DiscountQueries {
	return &discountQueriesImpl{store: store, clock: clock}
}

func (q *discountQueriesImpl) EligibleForItem(ctx context.Context, kind catalog.Kind, id uuid.UUID) ([]DiscountOptionView, error) {
	item, err := q.store.FindViewByKindID(ctx, kind, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	cfg := pricing.DiscountConfig{
		SeniorsPercent:    item.SeniorsPercent,
		StudentsPercent:   item.StudentsPercent,
		FamiliesPercent:   item.FamiliesPercent,
		DisabilityPercent: item.DisabilityPercent,
		EarlyBirdPercent:  item.EarlyBirdPercent,
		EarlyBirdDeadline: item.EarlyBirdDeadline,
	}

	eligible := pricing.EligibleDiscounts(cfg, q.clock.Now())
	views := make([]DiscountOptionView, len(eligible))
	for i, opt := range eligible {
		views[i] = DiscountOptionView{
			ID:          opt.ID.String(),
			Label:       opt.Label,
			Percent:     opt.Percent,
			Description: opt.Description,
		}
	}
	return views, nil
}
