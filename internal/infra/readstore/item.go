package readstore

import (
	"context"
	"errors"

	"github.com/Antonio1491/parksys-sub007/internal/domain/catalog"
	"github.com/Antonio1491/parksys-sub007/internal/infra"
	"github.com/Antonio1491/parksys-sub007/internal/usecase/commands"
	"github.com/Antonio1491/parksys-sub007/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// The catalog subsystem keeps one table per offering type; the payment
// pipeline only reads the pricing columns they share.
const (
	activityItemSQL = `
		SELECT id, title, price_cents, is_free, is_price_random,
		       seniors_percent, students_percent, families_percent,
		       disability_percent, early_bird_percent, early_bird_deadline
		FROM activities
		WHERE id = $1`

	eventItemSQL = `
		SELECT id, title, price_cents, is_free, is_price_random,
		       seniors_percent, students_percent, families_percent,
		       disability_percent, early_bird_percent, early_bird_deadline
		FROM events
		WHERE id = $1`

	spaceItemSQL = `
		SELECT id, title, price_cents, is_free, is_price_random,
		       seniors_percent, students_percent, families_percent,
		       disability_percent, early_bird_percent, early_bird_deadline
		FROM spaces
		WHERE id = $1`
)

type ItemReadStore struct {
	db *pgxpool.Pool
}

func NewItemReadStore(db *pgxpool.Pool) *ItemReadStore {
	return &ItemReadStore{db: db}
}

func (r *ItemReadStore) FindByKindID(ctx context.Context, kind catalog.Kind, id uuid.UUID) (*commands.ItemSnapshot, error) {
	snap := commands.ItemSnapshot{Kind: kind}
	sql, err := itemSQLFor(kind)
	if err != nil {
		return nil, infra.WrapRepoErr("unknown item kind", err, infra.KindNotFound)
	}

	row := r.db.QueryRow(ctx, sql, id)
	err = row.Scan(
		&snap.ID, &snap.Title, &snap.BasePriceCents, &snap.IsFree, &snap.IsPriceRandom,
		&snap.SeniorsPercent, &snap.StudentsPercent, &snap.FamiliesPercent,
		&snap.DisabilityPercent, &snap.EarlyBirdPercent, &snap.EarlyBirdDeadline,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("payable item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payable item", err)
	}

	return &snap, nil
}

func (r *ItemReadStore) FindViewByKindID(ctx context.Context, kind catalog.Kind, id uuid.UUID) (*queries.ItemView, error) {
	snap, err := r.FindByKindID(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	return &queries.ItemView{
		ID:                snap.ID,
		Kind:              snap.Kind,
		Title:             snap.Title,
		BasePriceCents:    snap.BasePriceCents,
		IsFree:            snap.IsFree,
		IsPriceRandom:     snap.IsPriceRandom,
		SeniorsPercent:    snap.SeniorsPercent,
		StudentsPercent:   snap.StudentsPercent,
		FamiliesPercent:   snap.FamiliesPercent,
		DisabilityPercent: snap.DisabilityPercent,
		EarlyBirdPercent:  snap.EarlyBirdPercent,
		EarlyBirdDeadline: snap.EarlyBirdDeadline,
	}, nil
}

func itemSQLFor(kind catalog.Kind) (string, error) {
	switch kind {
	case catalog.KindActivity:
		return activityItemSQL, nil
	case catalog.KindEvent:
		return eventItemSQL, nil
	case catalog.KindSpaceReservation:
		return spaceItemSQL, nil
	default:
		return "", catalog.ErrUnknownKind
	}
}
