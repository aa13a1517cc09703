package commands

import (
	"context"
	"time"

	"github.com/Antonio1491/parksys-sub007/internal/domain/catalog"
	"github.com/Antonio1491/parksys-sub007/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)

// ItemSnapshot is the payable item as the catalog subsystem stores it.
// Read-only to the payment pipeline.
type ItemSnapshot struct {
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

func (s *ItemSnapshot) ToDomain() (*catalog.Item, error) {
	return catalog.NewItem(
		s.ID,
		s.Kind,
		s.Title,
		pricing.NewMoney(s.BasePriceCents),
		s.IsFree,
		s.IsPriceRandom,
		pricing.DiscountConfig{
			SeniorsPercent:    s.SeniorsPercent,
			StudentsPercent:   s.StudentsPercent,
			FamiliesPercent:   s.FamiliesPercent,
			DisabilityPercent: s.DisabilityPercent,
			EarlyBirdPercent:  s.EarlyBirdPercent,
			EarlyBirdDeadline: s.EarlyBirdDeadline,
		},
	)
}

// IntentRecord is the pending transaction row created when a payment
// intent is issued.
type IntentRecord struct {
	ID                uuid.UUID
	ItemID            uuid.UUID
	ItemKind          catalog.Kind
	ItemTitle         string
	FullName          string
	Email             string
	Phone             string
	Note              string
	BaseAmountCents   int64
	CustomAmountCents *int64
	DiscountID        string
	AmountCents       int64
	GatewayIntentID   string
	ClientSecret      string
}

// FinalizationRecord keys a completed finalize on its charge reference.
type FinalizationRecord struct {
	ChargeRef     string
	TransactionID *uuid.UUID
	RecordID      uuid.UUID
	AmountCents   int64
	CreatedAt     time.Time
}

// RegistrationRecord is the domain record a confirmed charge converts into.
// Its ID is chosen by the caller so the finalization row claimed under the
// charge reference points at the record that actually gets created.
type RegistrationRecord struct {
	ID          uuid.UUID
	ItemID      uuid.UUID
	ItemKind    catalog.Kind
	FullName    string
	Email       string
	Phone       string
	Note        string
	AmountCents int64
	ChargeRef   string
}

// GatewayIntent is the gateway-side authorized-but-unconfirmed charge.
type GatewayIntent struct {
	IntentID     string
	ClientSecret string
}

// TxBeginner is the slice of pgxpool.Pool the finalize path needs to open
// its database transaction.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type ItemRepository interface {
	FindByKindID(ctx context.Context, kind catalog.Kind, id uuid.UUID) (*ItemSnapshot, error)
}

type TransactionRepository interface {
	CreateIntent(ctx context.Context, rec *IntentRecord) error
	// FindIntentAmount returns the amount the intent was registered with,
	// which is what the gateway actually charged.
	FindIntentAmount(ctx context.Context, id uuid.UUID) (int64, error)
	MarkFinalized(ctx context.Context, tx pgx.Tx, id uuid.UUID, chargeRef string, finalAmountCents int64, recordID uuid.UUID) error
}

type FinalizationRepository interface {
	// TryInsert claims the charge reference; false means it was already
	// claimed and the finalize is a replay.
	TryInsert(ctx context.Context, tx pgx.Tx, chargeRef string, transactionID *uuid.UUID, recordID uuid.UUID, amountCents int64) (bool, error)
	FindByChargeRef(ctx context.Context, chargeRef string) (*FinalizationRecord, error)
}

type RegistrationRepository interface {
	Create(ctx context.Context, tx pgx.Tx, rec *RegistrationRecord) (uuid.UUID, error)
}

// IntentGateway is the server-side half of the card gateway: it registers
// the authoritative amount and returns the client secret the browser needs
// for confirmation.
type IntentGateway interface {
	CreateIntent(ctx context.Context, amountCents int64, metadata map[string]string) (*GatewayIntent, error)
}
