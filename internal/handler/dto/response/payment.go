package response

import (
	"time"

	"github.com/Antonio1491/parksys-sub007/internal/usecase/commands"
	"github.com/Antonio1491/parksys-sub007/internal/usecase/queries"

	"github.com/google/uuid"
)

type IntentResponse struct {
	TransactionID uuid.UUID `json:"transactionId"`
	ClientSecret  string    `json:"clientSecret"`
	AmountCents   int64     `json:"amountCents"`
}

type FinalizeResponse struct {
	RecordID    uuid.UUID `json:"recordId"`
	AmountCents int64     `json:"amountCents"`
	Replayed    bool      `json:"replayed"`
}

type TransactionResponse struct {
	ID          uuid.UUID  `json:"id"`
	ItemID      uuid.UUID  `json:"itemId"`
	ItemKind    string     `json:"itemKind"`
	ItemTitle   string     `json:"itemTitle"`
	Status      string     `json:"status"`
	AmountCents int64      `json:"amountCents"`
	DiscountID  string     `json:"discountId"`
	ChargeRef   *string    `json:"chargeRef,omitempty"`
	RecordID    *uuid.UUID `json:"recordId,omitempty"`
	Email       string     `json:"email"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type DiscountOptionResponse struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Percent     int32  `json:"percent"`
	Description string `json:"description,omitempty"`
}

func FromIntentResult(r *commands.CreateIntentResult) *IntentResponse {
	return &IntentResponse{
		TransactionID: r.TransactionID,
		ClientSecret:  r.ClientSecret,
		AmountCents:   r.AmountCents,
	}
}

func FromFinalizeResult(r *commands.FinalizeResult) *FinalizeResponse {
	return &FinalizeResponse{
		RecordID:    r.RecordID,
		AmountCents: r.AmountCents,
		Replayed:    r.Replayed,
	}
}

func FromTransactionView(v *queries.TransactionView) *TransactionResponse {
	return &TransactionResponse{
		ID:          v.ID,
		ItemID:      v.ItemID,
		ItemKind:    v.ItemKind,
		ItemTitle:   v.ItemTitle,
		Status:      v.Status,
		AmountCents: v.AmountCents,
		DiscountID:  v.DiscountID,
		ChargeRef:   v.ChargeRef,
		RecordID:    v.RecordID,
		Email:       v.Email,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func FromDiscountOptionView(v queries.DiscountOptionView) DiscountOptionResponse {
	return DiscountOptionResponse{
		ID:          v.ID,
		Label:       v.Label,
		Percent:     v.Percent,
		Description: v.Description,
	}
}
