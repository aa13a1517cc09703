package checkout

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Antonio1491/parksys-sub007/internal/domain/catalog"
	"github.com/Antonio1491/parksys-sub007/internal/domain/pricing"
	"github.com/Antonio1491/parksys-sub007/internal/domain/transaction"
	"github.com/Antonio1491/parksys-sub007/internal/pkg/clock"
)

const defaultPhaseTimeout = 30 * time.Second

// Coordinator drives one payment attempt through the three-phase protocol:
// create a payment intent on the backend, confirm the charge with the card
// gateway, then finalize the registration/reservation passing through the
// gateway-confirmed charge reference. One coordinator per attempt; the
// transaction record it holds is discarded with it.
type Coordinator struct {
	adapter      ItemAdapter
	gateway      CardGateway
	clock        clock.Clock
	logger       *slog.Logger
	phaseTimeout time.Duration

	mu              sync.Mutex
	busy            bool
	cancelRequested bool

	item    *catalog.Item
	tx      *transaction.Transaction
	pending pricing.Money
}

type Option func(*Coordinator)

// WithPhaseTimeout bounds each of the three network round-trips.
func WithPhaseTimeout(d time.Duration) Option {
	return func(c *Coordinator) {
		if d > 0 {
			c.phaseTimeout = d
		}
	}
}

func NewCoordinator(adapter ItemAdapter, gateway CardGateway, clk clock.Clock, logger *slog.Logger, opts ...Option) *Coordinator {
	c := &Coordinator{
		adapter:      adapter,
		gateway:      gateway,
		clock:        clk,
		logger:       logger,
		phaseTimeout: defaultPhaseTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Begin validates the checkout preconditions and prepares the transaction
// record. Free items (including a 100% discount bringing the amount to
// zero) are rejected with ErrFreeItem so the caller uses the free
// registration path instead of the gateway.
func (c *Coordinator) Begin(
	item *catalog.Item,
	participant transaction.Participant,
	selection pricing.Selection,
	customAmount *pricing.Money,
) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.tx != nil {
		return ErrPaymentInProgress
	}
	if item.Kind() != c.adapter.Kind() {
		return catalog.ErrUnknownKind
	}
	if item.IsFree() {
		return ErrFreeItem
	}

	chargeable, err := item.ChargeableAmount(customAmount)
	if err != nil {
		return err
	}

	eligible := pricing.EligibleDiscounts(item.Discounts(), c.clock.Now())
	pending := pricing.FinalAmount(chargeable, selection, eligible)
	if !pending.IsPositive() {
		return ErrFreeItem
	}

	// A selection the deadline has since invalidated silently falls back
	// to none; the pending amount above already reflects that.
	if _, ok := selection.Resolve(eligible); !ok {
		selection = pricing.SelectionNone
	}

	c.item = item
	c.pending = pending
	c.tx = transaction.New(item.ID(), item.Kind(), participant, item.BasePrice(), customAmount, selection)
	return nil
}

// PendingAmount is the locally computed total, shown to the visitor as a
// hint. The backend's own recomputation is what actually gets charged.
func (c *Coordinator) PendingAmount() pricing.Money {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

// State snapshots the transaction state for display.
func (c *Coordinator) State() transaction.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.tx == nil {
		return transaction.State{}
	}
	return c.tx.State()
}

// Cancel requests a cooperative cancellation. It is honored only while the
// flow is still before the charge-confirming phase; once money is in
// flight the attempt runs to ChargeConfirmed or Failed(charge) first.
func (c *Coordinator) Cancel() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.tx == nil {
		return ErrNotStarted
	}
	if c.busy {
		c.cancelRequested = true
		return nil
	}
	return c.tx.Cancel()
}

// Pay runs the full protocol with the given card. The submission is
// single-flight: a second call while one is in progress fails immediately
// with ErrPaymentInProgress.
func (c *Coordinator) Pay(ctx context.Context, card CardDetails) (*Receipt, error) {
	if err := c.acquire(); err != nil {
		return nil, err
	}
	defer c.release()

	if err := c.runIntent(ctx); err != nil {
		return nil, err
	}
	if err := c.checkCancelled(); err != nil {
		return nil, err
	}
	if err := c.runCharge(ctx, card); err != nil {
		return nil, err
	}
	return c.runFinalize(ctx)
}

// RetryCharge re-attempts confirmation after a declined card. The existing
// payment intent is reused; no new intent and no second charge exist.
func (c *Coordinator) RetryCharge(ctx context.Context, card CardDetails) (*Receipt, error) {
	if err := c.acquire(); err != nil {
		return nil, err
	}
	defer c.release()

	c.mu.Lock()
	err := c.tx.RetryCharge()
	c.mu.Unlock()
	if err != nil {
		return nil, err
	}
	if err := c.runCharge(ctx, card); err != nil {
		return nil, err
	}
	return c.runFinalize(ctx)
}

// RetryFinalize repeats the finalize call after a post-charge failure. The
// backend is idempotent on the charge reference, so repeating cannot
// double-book or double-charge.
func (c *Coordinator) RetryFinalize(ctx context.Context) (*Receipt, error) {
	if err := c.acquire(); err != nil {
		return nil, err
	}
	defer c.release()

	c.mu.Lock()
	err := c.tx.RetryFinalize()
	c.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return c.finalizeCall(ctx)
}

func (c *Coordinator) acquire() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.tx == nil {
		return ErrNotStarted
	}
	if c.busy {
		return ErrPaymentInProgress
	}
	c.busy = true
	return nil
}

func (c *Coordinator) release() {
	c.mu.Lock()
	c.busy = false
	c.mu.Unlock()
}

func (c *Coordinator) checkCancelled() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.cancelRequested {
		return nil
	}
	c.cancelRequested = false
	if err := c.tx.Cancel(); err != nil {
		return err
	}
	return ErrCancelled
}

// The run* methods interleave transaction mutations with network calls.
// Every access to c.tx and c.pending happens under c.mu so that State,
// PendingAmount and Cancel may be called from other goroutines while a
// submission is in flight; the lock is never held across a network call.

func (c *Coordinator) runIntent(ctx context.Context) error {
	c.mu.Lock()
	if err := c.tx.RequestIntent(); err != nil {
		c.mu.Unlock()
		return err
	}
	req := IntentRequest{
		ItemID:       c.tx.ItemID(),
		Participant:  c.tx.Participant(),
		BaseAmount:   c.tx.BaseAmount(),
		CustomAmount: c.tx.CustomAmount(),
		Selection:    c.tx.Selection(),
		QuotedAmount: c.pending,
	}
	c.mu.Unlock()

	cctx, cancel := context.WithTimeout(ctx, c.phaseTimeout)
	defer cancel()

	res, err := c.adapter.CreateIntent(cctx, req)
	if err != nil {
		kind, msg := classifyBackendErr(err)
		return c.fail(transaction.PhaseIntent, kind, msg, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.tx.IntentReady(res.BackendID, res.ClientSecret); err != nil {
		return err
	}

	if !res.Amount.IsZero() && !res.Amount.Equals(c.pending) {
		c.logger.Warn("backend recomputed a different amount, using it for display",
			"transaction_id", c.tx.ID(),
			"quoted_cents", c.pending.Cents(),
			"backend_cents", res.Amount.Cents(),
		)
		c.pending = res.Amount
	}
	return nil
}

func (c *Coordinator) runCharge(ctx context.Context, card CardDetails) error {
	c.mu.Lock()
	if err := c.tx.BeginCharge(); err != nil {
		c.mu.Unlock()
		return err
	}
	clientSecret := c.tx.ClientSecret()
	c.mu.Unlock()

	cctx, cancel := context.WithTimeout(ctx, c.phaseTimeout)
	defer cancel()

	chargeRef, err := c.gateway.ConfirmCharge(cctx, clientSecret, card)
	if err != nil {
		// No money moved; the visitor may retry from IntentReady.
		return c.fail(transaction.PhaseCharge, FailureGateway, "the card could not be charged", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tx.ConfirmCharge(chargeRef)
}

func (c *Coordinator) runFinalize(ctx context.Context) (*Receipt, error) {
	c.mu.Lock()
	err := c.tx.BeginFinalize()
	c.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return c.finalizeCall(ctx)
}

func (c *Coordinator) finalizeCall(ctx context.Context) (*Receipt, error) {
	c.mu.Lock()
	req := FinalizeRequest{
		ItemID:       c.tx.ItemID(),
		BackendID:    c.tx.BackendID(),
		ChargeRef:    c.tx.ChargeRef(),
		Participant:  c.tx.Participant(),
		BaseAmount:   c.tx.BaseAmount(),
		CustomAmount: c.tx.CustomAmount(),
		Selection:    c.tx.Selection(),
		FinalAmount:  c.pending,
	}
	c.mu.Unlock()

	cctx, cancel := context.WithTimeout(ctx, c.phaseTimeout)
	defer cancel()

	res, err := c.adapter.Finalize(cctx, req)
	if err != nil {
		// Money has already moved. Never re-confirm; surface as
		// "payment succeeded, confirmation pending".
		kind, _ := classifyBackendErr(err)
		return nil, c.fail(transaction.PhaseFinalize, kind,
			"payment succeeded but the booking confirmation is pending", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.tx.Complete(res.Amount, res.RecordID); err != nil {
		return nil, err
	}

	c.logger.Info("checkout completed",
		"transaction_id", c.tx.ID(),
		"kind", c.tx.ItemKind().String(),
		"charge_ref", c.tx.ChargeRef(),
		"amount_cents", res.Amount.Cents(),
		"replayed", res.Replayed,
	)

	return &Receipt{
		TransactionID: c.tx.ID(),
		RecordID:      res.RecordID,
		ChargeRef:     c.tx.ChargeRef(),
		Amount:        res.Amount,
		Replayed:      res.Replayed,
	}, nil
}

func (c *Coordinator) fail(phase transaction.Phase, kind FailureKind, msg string, cause error) error {
	c.mu.Lock()
	err := c.tx.Fail(phase, msg)
	txID := c.tx.ID()
	c.mu.Unlock()
	if err != nil {
		return err
	}
	c.logger.Warn("checkout phase failed",
		"transaction_id", txID,
		"phase", phase.String(),
		"kind", string(kind),
		"error", cause,
	)
	return newFailure(phase, kind, msg, cause)
}
