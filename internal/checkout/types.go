package checkout

import (
	"context"

	"github.com/Antonio1491/parksys-sub007/internal/domain/catalog"
	"github.com/Antonio1491/parksys-sub007/internal/domain/pricing"
	"github.com/Antonio1491/parksys-sub007/internal/domain/transaction"

	"github.com/google/uuid"
)

// CardDetails is the visitor's card input. It is handed to the gateway
// confirmation call only and never sent to the backend.
type CardDetails struct {
	Number   string
	ExpMonth int
	ExpYear  int
	CVC      string
}

// IntentRequest carries the base/custom amount and the discount selection
// id. The discounted total is a display hint only; the backend recomputes
// the amount it will actually charge.
type IntentRequest struct {
	ItemID       uuid.UUID
	Participant  transaction.Participant
	BaseAmount   pricing.Money
	CustomAmount *pricing.Money
	Selection    pricing.Selection
	QuotedAmount pricing.Money
}

type IntentResult struct {
	BackendID    uuid.UUID
	ClientSecret string
	Amount       pricing.Money
}

type FinalizeRequest struct {
	ItemID       uuid.UUID
	BackendID    *uuid.UUID
	ChargeRef    string
	Participant  transaction.Participant
	BaseAmount   pricing.Money
	CustomAmount *pricing.Money
	Selection    pricing.Selection
	FinalAmount  pricing.Money
}

type FinalizeResult struct {
	RecordID uuid.UUID
	Amount   pricing.Money
	Replayed bool
}

// Receipt is what a completed checkout hands back to the surrounding flow.
type Receipt struct {
	TransactionID uuid.UUID
	RecordID      uuid.UUID
	ChargeRef     string
	Amount        pricing.Money
	Replayed      bool
}

// ItemAdapter routes the two backend calls to the endpoints and payload
// shapes of one offering type. No business logic beyond routing.
type ItemAdapter interface {
	Kind() catalog.Kind
	CreateIntent(ctx context.Context, req IntentRequest) (*IntentResult, error)
	Finalize(ctx context.Context, req FinalizeRequest) (*FinalizeResult, error)
}

// CardGateway is the external gateway's client-side confirmation call. This
// is the only operation that moves the visitor's money.
type CardGateway interface {
	ConfirmCharge(ctx context.Context, clientSecret string, card CardDetails) (string, error)
}

// BackendAPI is the transport the adapters share. Implemented over HTTP by
// internal/infra/backend.
type BackendAPI interface {
	PostJSON(ctx context.Context, path string, body any, out any) error
}
