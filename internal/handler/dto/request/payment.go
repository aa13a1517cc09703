package request

import (
	"strings"

	"github.com/Antonio1491/parksys-sub007/internal/domain/catalog"
	"github.com/Antonio1491/parksys-sub007/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateIntentRequest struct {
	FullName          string  `json:"fullName" binding:"required,max=200"`
	Email             string  `json:"email" binding:"required,email"`
	Phone             string  `json:"phone" binding:"required,max=30"`
	Note              *string `json:"note,omitempty" binding:"omitempty,max=1000"`
	CustomAmountCents *int64  `json:"customAmountCents,omitempty" binding:"omitempty,min=0"`
	DiscountID        *string `json:"discountId,omitempty"`
	QuotedAmountCents *int64  `json:"quotedAmountCents,omitempty" binding:"omitempty,min=0"`
}

func (r CreateIntentRequest) ToCommand(kind catalog.Kind, itemID uuid.UUID) commands.CreateIntentCommand {
	return commands.CreateIntentCommand{
		Kind:              kind,
		ItemID:            itemID,
		FullName:          strings.TrimSpace(r.FullName),
		Email:             strings.TrimSpace(r.Email),
		Phone:             strings.TrimSpace(r.Phone),
		Note:              trimmedNote(r.Note),
		CustomAmountCents: r.CustomAmountCents,
		DiscountID:        normalizedDiscount(r.DiscountID),
		QuotedAmountCents: r.QuotedAmountCents,
	}
}

type FinalizeRequest struct {
	TransactionID     *uuid.UUID `json:"transactionId,omitempty"`
	ChargeRef         string     `json:"chargeRef" binding:"required,max=255"`
	FullName          string     `json:"fullName" binding:"required,max=200"`
	Email             string     `json:"email" binding:"required,email"`
	Phone             string     `json:"phone" binding:"required,max=30"`
	Note              *string    `json:"note,omitempty" binding:"omitempty,max=1000"`
	CustomAmountCents *int64     `json:"customAmountCents,omitempty" binding:"omitempty,min=0"`
	DiscountID        *string    `json:"discountId,omitempty"`
	FinalAmountCents  *int64     `json:"finalAmountCents,omitempty" binding:"omitempty,min=0"`
}

func (r FinalizeRequest) ToCommand(kind catalog.Kind, itemID uuid.UUID) commands.FinalizeCommand {
	return commands.FinalizeCommand{
		Kind:              kind,
		ItemID:            itemID,
		TransactionID:     r.TransactionID,
		ChargeRef:         strings.TrimSpace(r.ChargeRef),
		FullName:          strings.TrimSpace(r.FullName),
		Email:             strings.TrimSpace(r.Email),
		Phone:             strings.TrimSpace(r.Phone),
		Note:              trimmedNote(r.Note),
		CustomAmountCents: r.CustomAmountCents,
		DiscountID:        normalizedDiscount(r.DiscountID),
		FinalAmountCents:  r.FinalAmountCents,
	}
}

func trimmedNote(note *string) string {
	if note == nil {
		return ""
	}
	return strings.TrimSpace(*note)
}

// normalizedDiscount treats empty and "none" as no selection.
func normalizedDiscount(id *string) *string {
	if id == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*id)
	if trimmed == "" || trimmed == "none" {
		return nil
	}
	return &trimmed
}
