package writerepo

import (
	"context"
	"errors"

	"github.com/Antonio1491/parksys-sub007/internal/infra"
	"github.com/Antonio1491/parksys-sub007/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	insertIntentSQL = `
		INSERT INTO payment_transactions (
			id, item_id, item_kind, item_title, full_name, email, phone, note,
			base_amount_cents, custom_amount_cents, discount_id, amount_cents,
			gateway_intent_id, client_secret, status, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        'intent_ready', now(), now())`

	intentAmountSQL = `
		SELECT amount_cents
		FROM payment_transactions
		WHERE id = $1`

	markFinalizedSQL = `
		UPDATE payment_transactions
		SET status = 'completed',
		    charge_ref = $2,
		    amount_cents = $3,
		    record_id = $4,
		    updated_at = now()
		WHERE id = $1`
)

type TransactionRepository struct {
	db *pgxpool.Pool
}

func NewTransactionRepository(db *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) CreateIntent(ctx context.Context, rec *commands.IntentRecord) error {
	_, err := r.db.Exec(ctx, insertIntentSQL,
		rec.ID, rec.ItemID, rec.ItemKind.String(), rec.ItemTitle,
		rec.FullName, rec.Email, rec.Phone, rec.Note,
		rec.BaseAmountCents, rec.CustomAmountCents, rec.DiscountID, rec.AmountCents,
		rec.GatewayIntentID, rec.ClientSecret,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create payment transaction", err)
	}
	return nil
}

func (r *TransactionRepository) FindIntentAmount(ctx context.Context, id uuid.UUID) (int64, error) {
	var cents int64
	if err := r.db.QueryRow(ctx, intentAmountSQL, id).Scan(&cents); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, infra.WrapRepoErr("payment transaction not found", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to load intent amount", err)
	}
	return cents, nil
}

func (r *TransactionRepository) MarkFinalized(ctx context.Context, tx pgx.Tx, id uuid.UUID, chargeRef string, finalAmountCents int64, recordID uuid.UUID) error {
	tag, err := tx.Exec(ctx, markFinalizedSQL, id, chargeRef, finalAmountCents, recordID)
	if err != nil {
		return infra.WrapRepoErr("failed to mark transaction finalized", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("transaction not found", nil, infra.KindNotFound)
	}
	return nil
}
