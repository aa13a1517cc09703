package queries

import (
	"context"
	"time"

	"github.com/Antonio1491/parksys-sub007/internal/infra"
	"github.com/Antonio1491/parksys-sub007/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrTransactionNotFound = errs.New("transaction not found")

// TransactionView is the read model the surrounding system polls to tell a
// pending attempt from a completed or orphaned one.
type TransactionView struct {
	ID          uuid.UUID
	ItemID      uuid.UUID
	ItemKind    string
	ItemTitle   string
	Status      string
	AmountCents int64
	DiscountID  string
	ChargeRef   *string
	RecordID    *uuid.UUID
	Email       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type TransactionReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*TransactionView, error)
}

type PaymentQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*TransactionView, error)
}

type paymentQueriesImpl struct {
	store TransactionReadStore
}

func NewPaymentQueries(store TransactionReadStore) PaymentQueries {
	return &paymentQueriesImpl{store: store}
}

func (q *paymentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*TransactionView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return view, nil
}
