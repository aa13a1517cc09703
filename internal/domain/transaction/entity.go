package transaction

import (
	"errors"
	"fmt"

	"github.com/Antonio1491/parksys-sub007/internal/domain/catalog"
	"github.com/Antonio1491/parksys-sub007/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition   = errors.New("invalid transaction state transition")
	ErrCancelNotAllowed    = errors.New("cancellation is not allowed once the charge has started")
	ErrRetryNotAllowed     = errors.New("retry is not allowed from this state")
	ErrMissingClientSecret = errors.New("client secret is required")
	ErrMissingChargeRef    = errors.New("charge reference is required")
)

// Transaction is the record of one payment attempt, local to that attempt.
// It moves Init → IntentRequested → IntentReady → ChargeConfirming →
// ChargeConfirmed → Finalizing → Completed, with Failed reachable from any
// non-terminal state and Cancelled only before the charge starts.
type Transaction struct {
	id           uuid.UUID
	itemID       uuid.UUID
	itemKind     catalog.Kind
	participant  Participant
	baseAmount   pricing.Money
	customAmount *pricing.Money
	selection    pricing.Selection
	state        State

	backendID    *uuid.UUID // backend's transaction row, known after intent
	clientSecret string
	chargeRef    string
	finalAmount  pricing.Money // backend-authoritative, known after finalize
	recordID     *uuid.UUID    // registration/reservation, known after finalize
}

func New(
	itemID uuid.UUID,
	itemKind catalog.Kind,
	participant Participant,
	baseAmount pricing.Money,
	customAmount *pricing.Money,
	selection pricing.Selection,
) *Transaction {
	return &Transaction{
		id:           uuid.New(),
		itemID:       itemID,
		itemKind:     itemKind,
		participant:  participant,
		baseAmount:   baseAmount,
		customAmount: customAmount,
		selection:    selection,
		state:        initialState(),
	}
}

func (t *Transaction) ID() uuid.UUID                { return t.id }
func (t *Transaction) ItemID() uuid.UUID            { return t.itemID }
func (t *Transaction) ItemKind() catalog.Kind       { return t.itemKind }
func (t *Transaction) Participant() Participant     { return t.participant }
func (t *Transaction) BaseAmount() pricing.Money    { return t.baseAmount }
func (t *Transaction) CustomAmount() *pricing.Money { return t.customAmount }
func (t *Transaction) Selection() pricing.Selection { return t.selection }
func (t *Transaction) State() State                 { return t.state }
func (t *Transaction) BackendID() *uuid.UUID        { return t.backendID }
func (t *Transaction) ClientSecret() string         { return t.clientSecret }
func (t *Transaction) ChargeRef() string            { return t.chargeRef }
func (t *Transaction) FinalAmount() pricing.Money   { return t.finalAmount }
func (t *Transaction) RecordID() *uuid.UUID         { return t.recordID }

func (t *Transaction) RequestIntent() error {
	if t.state.kind != StateInit {
		return transitionErr(t.state.kind, StateIntentRequested)
	}
	t.state.kind = StateIntentRequested
	return nil
}

func (t *Transaction) IntentReady(backendID uuid.UUID, clientSecret string) error {
	if t.state.kind != StateIntentRequested {
		return transitionErr(t.state.kind, StateIntentReady)
	}
	if clientSecret == "" {
		return ErrMissingClientSecret
	}
	id := backendID
	t.backendID = &id
	t.clientSecret = clientSecret
	t.state.kind = StateIntentReady
	return nil
}

func (t *Transaction) BeginCharge() error {
	if t.state.kind != StateIntentReady {
		return transitionErr(t.state.kind, StateChargeConfirming)
	}
	t.state.kind = StateChargeConfirming
	return nil
}

func (t *Transaction) ConfirmCharge(chargeRef string) error {
	if t.state.kind != StateChargeConfirming {
		return transitionErr(t.state.kind, StateChargeConfirmed)
	}
	if chargeRef == "" {
		return ErrMissingChargeRef
	}
	t.chargeRef = chargeRef
	t.state.kind = StateChargeConfirmed
	return nil
}

func (t *Transaction) BeginFinalize() error {
	if t.state.kind != StateChargeConfirmed {
		return transitionErr(t.state.kind, StateFinalizing)
	}
	t.state.kind = StateFinalizing
	return nil
}

func (t *Transaction) Complete(finalAmount pricing.Money, recordID uuid.UUID) error {
	if t.state.kind != StateFinalizing {
		return transitionErr(t.state.kind, StateCompleted)
	}
	id := recordID
	t.finalAmount = finalAmount
	t.recordID = &id
	t.state.kind = StateCompleted
	return nil
}

// Fail absorbs any non-terminal state. It keeps the phase so the caller can
// tell "no money moved" failures apart from an orphaned confirmed charge.
func (t *Transaction) Fail(phase Phase, reason string) error {
	if t.state.IsTerminal() || t.state.kind == StateFailed {
		return transitionErr(t.state.kind, StateFailed)
	}
	t.state.kind = StateFailed
	t.state.failPhase = phase
	t.state.failReason = reason
	return nil
}

// Cancel is an explicit visitor action, honored only before the charge
// confirmation starts.
func (t *Transaction) Cancel() error {
	switch t.state.kind {
	case StateInit, StateIntentReady:
		t.state.kind = StateCancelled
		return nil
	default:
		return ErrCancelNotAllowed
	}
}

// RetryCharge re-arms a transaction whose charge was declined. No money
// moved, so returning to IntentReady with the same client secret is safe.
func (t *Transaction) RetryCharge() error {
	if t.state.kind != StateFailed || t.state.failPhase != PhaseCharge {
		return ErrRetryNotAllowed
	}
	if t.clientSecret == "" {
		return ErrMissingClientSecret
	}
	t.state = State{kind: StateIntentReady}
	return nil
}

// RetryFinalize re-arms a transaction that failed after the charge was
// confirmed. The charge reference is kept; the backend finalize is
// idempotent on it, so repeating the call cannot double-book.
func (t *Transaction) RetryFinalize() error {
	if t.state.kind != StateFailed || t.state.failPhase != PhaseFinalize {
		return ErrRetryNotAllowed
	}
	if t.chargeRef == "" {
		return ErrMissingChargeRef
	}
	t.state = State{kind: StateFinalizing}
	return nil
}

func transitionErr(from, to StateKind) error {
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}
