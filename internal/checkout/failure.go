package checkout

import (
	"errors"
	"fmt"

	"github.com/Antonio1491/parksys-sub007/internal/domain/transaction"
)

var (
	// ErrFreeItem means the pipeline was handed a free (or fully
	// discounted) item. The surrounding flow registers those through the
	// free path without touching the gateway.
	ErrFreeItem = errors.New("item is free, use the free registration path")

	// ErrPaymentInProgress guards against duplicate submissions while a
	// transaction is in flight.
	ErrPaymentInProgress = errors.New("payment already in progress")

	ErrCancelled  = errors.New("checkout cancelled by visitor")
	ErrNotStarted = errors.New("checkout has not been started")
)

type FailureKind string

const (
	FailureValidation FailureKind = "validation"
	FailureGateway    FailureKind = "gateway"
	FailureUpstream   FailureKind = "upstream"
)

// Failure is a phase-tagged checkout error. The phase tells the caller
// which recovery affordance applies: before the charge everything is
// locally retryable; after ChargeConfirmed only the idempotent finalize
// may be repeated.
type Failure struct {
	Phase   transaction.Phase
	Kind    FailureKind
	Message string
	cause   error
}

func newFailure(phase transaction.Phase, kind FailureKind, msg string, cause error) *Failure {
	return &Failure{Phase: phase, Kind: kind, Message: msg, cause: cause}
}

func (f *Failure) Error() string {
	return fmt.Sprintf("checkout failed in %s phase: %s", f.Phase, f.Message)
}

func (f *Failure) Unwrap() error {
	return f.cause
}

// Recoverable reports whether the visitor may safely restart the flow. A
// finalize failure means money has already moved: the charge must never be
// re-confirmed, only the finalize call retried.
func (f *Failure) Recoverable() bool {
	return f.Phase != transaction.PhaseFinalize
}

// BackendError is a non-2xx backend response surfaced by the transport.
type BackendError struct {
	StatusCode int
	Message    string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
}

// IsValidation reports whether the visitor can fix the request themselves.
func (e *BackendError) IsValidation() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

func classifyBackendErr(err error) (FailureKind, string) {
	var be *BackendError
	if errors.As(err, &be) {
		if be.IsValidation() {
			return FailureValidation, be.Message
		}
		return FailureUpstream, "the booking service is temporarily unavailable"
	}
	return FailureUpstream, "the booking service could not be reached"
}
