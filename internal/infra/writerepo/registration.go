package writerepo

import (
	"context"

	"github.com/Antonio1491/parksys-sub007/internal/infra"
	"github.com/Antonio1491/parksys-sub007/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const insertRegistrationSQL = `
	INSERT INTO registrations (
		id, item_id, item_kind, full_name, email, phone, note,
		amount_cents, charge_ref, created_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())
	RETURNING id`

// RegistrationRepository creates the domain record a confirmed charge
// converts into: an activity/event registration or a space reservation.
// The attendance lists and reservation calendars read from this table.
type RegistrationRepository struct {
	db *pgxpool.Pool
}

func NewRegistrationRepository(db *pgxpool.Pool) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

func (r *RegistrationRepository) Create(ctx context.Context, tx pgx.Tx, rec *commands.RegistrationRecord) (uuid.UUID, error) {
	id := rec.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	row := tx.QueryRow(ctx, insertRegistrationSQL,
		id, rec.ItemID, rec.ItemKind.String(),
		rec.FullName, rec.Email, rec.Phone, rec.Note,
		rec.AmountCents, rec.ChargeRef,
	)
	if err := row.Scan(&id); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create registration", err)
	}

	return id, nil
}
