package commands

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Antonio1491/parksys-sub007/internal/domain/catalog"
	"github.com/Antonio1491/parksys-sub007/internal/domain/pricing"
	"github.com/Antonio1491/parksys-sub007/internal/domain/transaction"
	"github.com/Antonio1491/parksys-sub007/internal/infra"
	"github.com/Antonio1491/parksys-sub007/internal/pkg/clock"
	"github.com/Antonio1491/parksys-sub007/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrItemNotFound            = errs.New("payable item not found")
	ErrFreeItem                = errs.New("item is free of charge")
	ErrInvalidParticipant      = errs.New("invalid participant data")
	ErrAmountBelowBase         = errs.New("custom amount below base price")
	ErrCustomAmountNotAllowed  = errs.New("item does not accept a custom amount")
	ErrNothingToCharge         = errs.New("computed amount is zero")
	ErrChargeRefRequired       = errs.New("charge reference required")
	ErrGatewayUnavailable      = errs.New("payment gateway unavailable")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateIntentCommand struct {
	Kind              catalog.Kind
	ItemID            uuid.UUID
	FullName          string
	Email             string
	Phone             string
	Note              string
	CustomAmountCents *int64
	DiscountID        *string
	QuotedAmountCents *int64
}

type CreateIntentResult struct {
	TransactionID uuid.UUID
	ClientSecret  string
	AmountCents   int64
}

type FinalizeCommand struct {
	Kind              catalog.Kind
	ItemID            uuid.UUID
	TransactionID     *uuid.UUID
	ChargeRef         string
	FullName          string
	Email             string
	Phone             string
	Note              string
	CustomAmountCents *int64
	DiscountID        *string
	FinalAmountCents  *int64
}

type FinalizeResult struct {
	RecordID    uuid.UUID
	AmountCents int64
	Replayed    bool
}

type PaymentCommands interface {
	CreateIntent(ctx context.Context, cmd CreateIntentCommand) (*CreateIntentResult, error)
	Finalize(ctx context.Context, cmd FinalizeCommand) (*FinalizeResult, error)
}

type paymentCommandsImpl struct {
	itemRepo         ItemRepository
	transactionRepo  TransactionRepository
	finalizationRepo FinalizationRepository
	registrationRepo RegistrationRepository
	gateway          IntentGateway
	db               TxBeginner
	clock            clock.Clock
}

func NewPaymentCommands(
	itemRepo ItemRepository,
	transactionRepo TransactionRepository,
	finalizationRepo FinalizationRepository,
	registrationRepo RegistrationRepository,
	gateway IntentGateway,
	db TxBeginner,
	clock clock.Clock,
) PaymentCommands {
	return &paymentCommandsImpl{
		itemRepo:         itemRepo,
		transactionRepo:  transactionRepo,
		finalizationRepo: finalizationRepo,
		registrationRepo: registrationRepo,
		gateway:          gateway,
		db:               db,
		clock:            clock,
	}
}

// CreateIntent recomputes the final amount from the server's own item
// snapshot and discount selection. The client may send a quoted total but
// it is never the amount registered with the gateway.
func (p *paymentCommandsImpl) CreateIntent(ctx context.Context, cmd CreateIntentCommand) (*CreateIntentResult, error) {
	item, participant, amount, selection, err := p.recomputeAmount(
		ctx, cmd.Kind, cmd.ItemID,
		cmd.FullName, cmd.Email, cmd.Phone, cmd.Note,
		cmd.CustomAmountCents, cmd.DiscountID,
	)
	if err != nil {
		return nil, err
	}

	if cmd.QuotedAmountCents != nil && *cmd.QuotedAmountCents != amount.Cents() {
		slog.Warn("client-quoted amount disagrees with recomputation",
			"item_id", item.ID(),
			"quoted_cents", *cmd.QuotedAmountCents,
			"recomputed_cents", amount.Cents(),
		)
	}

	intent, err := p.gateway.CreateIntent(ctx, amount.Cents(), map[string]string{
		"item_kind": item.Kind().String(),
		"item_id":   item.ID().String(),
	})
	if err != nil {
		return nil, errs.Mark(err, ErrGatewayUnavailable)
	}

	rec := &IntentRecord{
		ID:                uuid.New(),
		ItemID:            item.ID(),
		ItemKind:          item.Kind(),
		ItemTitle:         item.Title(),
		FullName:          participant.FullName(),
		Email:             participant.Email(),
		Phone:             participant.Phone(),
		Note:              participant.Note(),
		BaseAmountCents:   item.BasePrice().Cents(),
		CustomAmountCents: cmd.CustomAmountCents,
		DiscountID:        selection.String(),
		AmountCents:       amount.Cents(),
		GatewayIntentID:   intent.IntentID,
		ClientSecret:      intent.ClientSecret,
	}
	if err := p.transactionRepo.CreateIntent(ctx, rec); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &CreateIntentResult{
		TransactionID: rec.ID,
		ClientSecret:  intent.ClientSecret,
		AmountCents:   amount.Cents(),
	}, nil
}

// Finalize converts a confirmed charge into a registration/reservation
// record. It is idempotent keyed on the charge reference: a replay returns
// the already-created record instead of booking twice.
func (p *paymentCommandsImpl) Finalize(ctx context.Context, cmd FinalizeCommand) (*FinalizeResult, error) {
	if cmd.ChargeRef == "" {
		return nil, ErrChargeRefRequired
	}

	item, participant, amount, _, err := p.recomputeAmount(
		ctx, cmd.Kind, cmd.ItemID,
		cmd.FullName, cmd.Email, cmd.Phone, cmd.Note,
		cmd.CustomAmountCents, cmd.DiscountID,
	)
	if err != nil {
		return nil, err
	}

	// When the transaction is known, the amount registered with the intent
	// wins over the recomputation: that is what the gateway charged, and a
	// deadline expiring between intent and finalize must not change what
	// gets recorded.
	amountCents := amount.Cents()
	if cmd.TransactionID != nil {
		persisted, err := p.transactionRepo.FindIntentAmount(ctx, *cmd.TransactionID)
		switch {
		case err == nil:
			if persisted != amountCents {
				slog.Warn("recomputed amount differs from the intent, keeping the charged amount",
					"transaction_id", *cmd.TransactionID,
					"intent_cents", persisted,
					"recomputed_cents", amountCents,
				)
				amountCents = persisted
			}
		case infra.IsKind(err, infra.KindNotFound):
			// Unknown transaction id; the recomputation stands.
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	// A client-supplied total that disagrees is logged and overridden,
	// never trusted.
	if cmd.FinalAmountCents != nil && *cmd.FinalAmountCents != amountCents {
		slog.Warn("client final amount disagrees with the authoritative amount",
			"item_id", item.ID(),
			"charge_ref", cmd.ChargeRef,
			"client_cents", *cmd.FinalAmountCents,
			"authoritative_cents", amountCents,
		)
	}

	tx, err := p.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	recordID := uuid.New()
	claimed, err := p.finalizationRepo.TryInsert(ctx, tx, cmd.ChargeRef, cmd.TransactionID, recordID, amountCents)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !claimed {
		existing, err := p.finalizationRepo.FindByChargeRef(ctx, cmd.ChargeRef)
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return &FinalizeResult{
			RecordID:    existing.RecordID,
			AmountCents: existing.AmountCents,
			Replayed:    true,
		}, nil
	}

	// The registration is created under the same id the finalization row
	// was claimed with; a replay must find the record this id points at.
	if _, err := p.registrationRepo.Create(ctx, tx, &RegistrationRecord{
		ID:          recordID,
		ItemID:      item.ID(),
		ItemKind:    item.Kind(),
		FullName:    participant.FullName(),
		Email:       participant.Email(),
		Phone:       participant.Phone(),
		Note:        participant.Note(),
		AmountCents: amountCents,
		ChargeRef:   cmd.ChargeRef,
	}); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if cmd.TransactionID != nil {
		if err := p.transactionRepo.MarkFinalized(ctx, tx, *cmd.TransactionID, cmd.ChargeRef, amountCents, recordID); err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &FinalizeResult{
		RecordID:    recordID,
		AmountCents: amountCents,
		Replayed:    false,
	}, nil
}

// recomputeAmount loads the item snapshot and derives the authoritative
// amount from base/custom price and the discount selection evaluated at
// server time. An expired early-bird selection silently falls back to none.
func (p *paymentCommandsImpl) recomputeAmount(
	ctx context.Context,
	kind catalog.Kind,
	itemID uuid.UUID,
	fullName, email, phone, note string,
	customAmountCents *int64,
	discountID *string,
) (*catalog.Item, transaction.Participant, pricing.Money, pricing.Selection, error) {
	var zero pricing.Money

	snap, err := p.itemRepo.FindByKindID(ctx, kind, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, transaction.Participant{}, zero, "", ErrItemNotFound
		}
		return nil, transaction.Participant{}, zero, "", errs.Mark(err, ErrDatabaseOperationFailed)
	}

	item, err := snap.ToDomain()
	if err != nil {
		return nil, transaction.Participant{}, zero, "", errs.Mark(err, ErrItemNotFound)
	}
	if item.IsFree() {
		return nil, transaction.Participant{}, zero, "", ErrFreeItem
	}

	participant, err := transaction.NewParticipant(fullName, email, phone, note)
	if err != nil {
		return nil, transaction.Participant{}, zero, "", errs.Mark(err, ErrInvalidParticipant)
	}

	var custom *pricing.Money
	if customAmountCents != nil {
		m := pricing.NewMoney(*customAmountCents)
		custom = &m
	}
	chargeable, err := item.ChargeableAmount(custom)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrAmountBelowBase):
			return nil, transaction.Participant{}, zero, "", ErrAmountBelowBase
		case errors.Is(err, catalog.ErrCustomAmountNotAllowed):
			return nil, transaction.Participant{}, zero, "", ErrCustomAmountNotAllowed
		default:
			return nil, transaction.Participant{}, zero, "", errs.Mark(err, ErrInvalidParticipant)
		}
	}

	selection := pricing.NewSelection(discountID)
	eligible := pricing.EligibleDiscounts(item.Discounts(), p.clock.Now())
	if _, ok := selection.Resolve(eligible); !ok {
		selection = pricing.SelectionNone
	}

	amount := pricing.FinalAmount(chargeable, selection, eligible)
	if !amount.IsPositive() {
		return nil, transaction.Participant{}, zero, "", ErrNothingToCharge
	}

	return item, participant, amount, selection, nil
}
