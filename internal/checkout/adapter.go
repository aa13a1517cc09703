package checkout

import (
	"context"
	"fmt"

	"github.com/Antonio1491/parksys-sub007/internal/domain/catalog"
	"github.com/Antonio1491/parksys-sub007/internal/domain/pricing"

	"github.com/google/uuid"
)

// The three backends grew from separate per-offering payment forms, so
// their endpoints keep per-kind paths and response field names. Each
// adapter owns that wire surface; the coordinator stays generic.

type participantPayload struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Note     string `json:"note,omitempty"`
}

type intentPayload struct {
	Participant       participantPayload `json:"participant"`
	BaseAmountCents   int64              `json:"baseAmountCents"`
	CustomAmountCents *int64             `json:"customAmountCents,omitempty"`
	DiscountID        string             `json:"discountId"`
	QuotedAmountCents int64              `json:"quotedAmountCents"`
}

type finalizePayload struct {
	TransactionID     *uuid.UUID         `json:"transactionId,omitempty"`
	ChargeRef         string             `json:"chargeRef"`
	Participant       participantPayload `json:"participant"`
	BaseAmountCents   int64              `json:"baseAmountCents"`
	CustomAmountCents *int64             `json:"customAmountCents,omitempty"`
	DiscountID        string             `json:"discountId"`
	FinalAmountCents  int64              `json:"finalAmountCents"`
}

type intentResponse struct {
	TransactionID uuid.UUID `json:"transactionId"`
	ClientSecret  string    `json:"clientSecret"`
	AmountCents   int64     `json:"amountCents"`
}

func toParticipantPayload(req IntentRequest) participantPayload {
	return participantPayload{
		FullName: req.Participant.FullName(),
		Email:    req.Participant.Email(),
		Phone:    req.Participant.Phone(),
		Note:     req.Participant.Note(),
	}
}

func toIntentPayload(req IntentRequest) intentPayload {
	return intentPayload{
		Participant:       toParticipantPayload(req),
		BaseAmountCents:   req.BaseAmount.Cents(),
		CustomAmountCents: centsPtr(req.CustomAmount),
		DiscountID:        req.Selection.String(),
		QuotedAmountCents: req.QuotedAmount.Cents(),
	}
}

func toFinalizePayload(req FinalizeRequest) finalizePayload {
	return finalizePayload{
		TransactionID: req.BackendID,
		ChargeRef:     req.ChargeRef,
		Participant: participantPayload{
			FullName: req.Participant.FullName(),
			Email:    req.Participant.Email(),
			Phone:    req.Participant.Phone(),
			Note:     req.Participant.Note(),
		},
		BaseAmountCents:   req.BaseAmount.Cents(),
		CustomAmountCents: centsPtr(req.CustomAmount),
		DiscountID:        req.Selection.String(),
		FinalAmountCents:  req.FinalAmount.Cents(),
	}
}

func centsPtr(m *pricing.Money) *int64 {
	if m == nil {
		return nil
	}
	c := m.Cents()
	return &c
}

func toIntentResult(resp intentResponse) *IntentResult {
	return &IntentResult{
		BackendID:    resp.TransactionID,
		ClientSecret: resp.ClientSecret,
		Amount:       pricing.NewMoney(resp.AmountCents),
	}
}

// --- activity ---

type ActivityAdapter struct {
	api BackendAPI
}

func NewActivityAdapter(api BackendAPI) *ActivityAdapter {
	return &ActivityAdapter{api: api}
}

func (a *ActivityAdapter) Kind() catalog.Kind {
	return catalog.KindActivity
}

func (a *ActivityAdapter) CreateIntent(ctx context.Context, req IntentRequest) (*IntentResult, error) {
	var resp intentResponse
	path := fmt.Sprintf("/api/payments/activities/%s/intent", req.ItemID)
	if err := a.api.PostJSON(ctx, path, toIntentPayload(req), &resp); err != nil {
		return nil, err
	}
	return toIntentResult(resp), nil
}

func (a *ActivityAdapter) Finalize(ctx context.Context, req FinalizeRequest) (*FinalizeResult, error) {
	var resp struct {
		RegistrationID uuid.UUID `json:"registrationId"`
		AmountCents    int64     `json:"amountCents"`
		Replayed       bool      `json:"replayed"`
	}
	path := fmt.Sprintf("/api/payments/activities/%s/finalize", req.ItemID)
	if err := a.api.PostJSON(ctx, path, toFinalizePayload(req), &resp); err != nil {
		return nil, err
	}
	return &FinalizeResult{
		RecordID: resp.RegistrationID,
		Amount:   pricing.NewMoney(resp.AmountCents),
		Replayed: resp.Replayed,
	}, nil
}

// --- event ---

type EventAdapter struct {
	api BackendAPI
}

func NewEventAdapter(api BackendAPI) *EventAdapter {
	return &EventAdapter{api: api}
}

func (a *EventAdapter) Kind() catalog.Kind {
	return catalog.KindEvent
}

func (a *EventAdapter) CreateIntent(ctx context.Context, req IntentRequest) (*IntentResult, error) {
	var resp intentResponse
	path := fmt.Sprintf("/api/payments/events/%s/intent", req.ItemID)
	if err := a.api.PostJSON(ctx, path, toIntentPayload(req), &resp); err != nil {
		return nil, err
	}
	return toIntentResult(resp), nil
}

func (a *EventAdapter) Finalize(ctx context.Context, req FinalizeRequest) (*FinalizeResult, error) {
	var resp struct {
		RegistrationID uuid.UUID `json:"registrationId"`
		AmountCents    int64     `json:"amountCents"`
		Replayed       bool      `json:"replayed"`
	}
	path := fmt.Sprintf("/api/payments/events/%s/finalize", req.ItemID)
	if err := a.api.PostJSON(ctx, path, toFinalizePayload(req), &resp); err != nil {
		return nil, err
	}
	return &FinalizeResult{
		RecordID: resp.RegistrationID,
		Amount:   pricing.NewMoney(resp.AmountCents),
		Replayed: resp.Replayed,
	}, nil
}

// --- space reservation ---

type SpaceReservationAdapter struct {
	api BackendAPI
}

func NewSpaceReservationAdapter(api BackendAPI) *SpaceReservationAdapter {
	return &SpaceReservationAdapter{api: api}
}

func (a *SpaceReservationAdapter) Kind() catalog.Kind {
	return catalog.KindSpaceReservation
}

func (a *SpaceReservationAdapter) CreateIntent(ctx context.Context, req IntentRequest) (*IntentResult, error) {
	var resp intentResponse
	path := fmt.Sprintf("/api/payments/spaces/%s/intent", req.ItemID)
	if err := a.api.PostJSON(ctx, path, toIntentPayload(req), &resp); err != nil {
		return nil, err
	}
	return toIntentResult(resp), nil
}

func (a *SpaceReservationAdapter) Finalize(ctx context.Context, req FinalizeRequest) (*FinalizeResult, error) {
	var resp struct {
		ReservationID uuid.UUID `json:"reservationId"`
		AmountCents   int64     `json:"amountCents"`
		Replayed      bool      `json:"replayed"`
	}
	path := fmt.Sprintf("/api/payments/spaces/%s/finalize", req.ItemID)
	if err := a.api.PostJSON(ctx, path, toFinalizePayload(req), &resp); err != nil {
		return nil, err
	}
	return &FinalizeResult{
		RecordID: resp.ReservationID,
		Amount:   pricing.NewMoney(resp.AmountCents),
		Replayed: resp.Replayed,
	}, nil
}

// AdapterFor picks the adapter matching an item kind.
func AdapterFor(api BackendAPI, kind catalog.Kind) (ItemAdapter, error) {
	switch kind {
	case catalog.KindActivity:
		return NewActivityAdapter(api), nil
	case catalog.KindEvent:
		return NewEventAdapter(api), nil
	case catalog.KindSpaceReservation:
		return NewSpaceReservationAdapter(api), nil
	default:
		return nil, catalog.ErrUnknownKind
	}
}
