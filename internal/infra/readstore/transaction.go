package readstore

import (
	"context"
	"errors"

	"github.com/Antonio1491/parksys-sub007/internal/infra"
	"github.com/Antonio1491/parksys-sub007/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionByIDSQL = `
	SELECT t.id, t.item_id, t.item_kind, t.item_title, t.status,
	       t.amount_cents, t.discount_id, t.charge_ref, t.record_id,
	       t.email, t.created_at, t.updated_at
	FROM payment_transactions t
	WHERE t.id = $1`

type TransactionReadStore struct {
	db *pgxpool.Pool
}

func NewTransactionReadStore(db *pgxpool.Pool) *TransactionReadStore {
	return &TransactionReadStore{db: db}
}

func (r *TransactionReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.TransactionView, error) {
	var view queries.TransactionView

	row := r.db.QueryRow(ctx, transactionByIDSQL, id)
	err := row.Scan(
		&view.ID, &view.ItemID, &view.ItemKind, &view.ItemTitle, &view.Status,
		&view.AmountCents, &view.DiscountID, &view.ChargeRef, &view.RecordID,
		&view.Email, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("transaction not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find transaction by ID", err)
	}

	return &view, nil
}
