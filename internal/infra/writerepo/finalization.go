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
	// The unique charge_ref constraint is what makes finalize idempotent:
	// the first claim wins, every replay sees zero rows inserted.
	claimFinalizationSQL = `
		INSERT INTO finalizations (charge_ref, transaction_id, record_id, amount_cents, created_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (charge_ref) DO NOTHING`

	finalizationByChargeRefSQL = `
		SELECT charge_ref, transaction_id, record_id, amount_cents, created_at
		FROM finalizations
		WHERE charge_ref = $1`
)

type FinalizationRepository struct {
	db *pgxpool.Pool
}

func NewFinalizationRepository(db *pgxpool.Pool) *FinalizationRepository {
	return &FinalizationRepository{db: db}
}

func (r *FinalizationRepository) TryInsert(ctx context.Context, tx pgx.Tx, chargeRef string, transactionID *uuid.UUID, recordID uuid.UUID, amountCents int64) (bool, error) {
	tag, err := tx.Exec(ctx, claimFinalizationSQL, chargeRef, transactionID, recordID, amountCents)
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim charge reference", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *FinalizationRepository) FindByChargeRef(ctx context.Context, chargeRef string) (*commands.FinalizationRecord, error) {
	var rec commands.FinalizationRecord

	row := r.db.QueryRow(ctx, finalizationByChargeRefSQL, chargeRef)
	err := row.Scan(&rec.ChargeRef, &rec.TransactionID, &rec.RecordID, &rec.AmountCents, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("finalization not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find finalization", err)
	}

	return &rec, nil
}
