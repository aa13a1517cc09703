package catalog

import (
	"errors"

	"github.com/Antonio1491/parksys-sub007/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrUnknownKind            = errors.New("unknown payable item kind")
	ErrNegativePrice          = errors.New("base price cannot be negative")
	ErrEmptyTitle             = errors.New("item title cannot be empty")
	ErrAmountBelowBase        = errors.New("custom amount is below the base price")
	ErrCustomAmountNotAllowed = errors.New("item does not accept a custom amount")
)

type Kind string

const (
	KindActivity         Kind = "activity"
	KindEvent            Kind = "event"
	KindSpaceReservation Kind = "space_reservation"
)

func KindFromString(s string) (Kind, error) {
	switch Kind(s) {
	case KindActivity, KindEvent, KindSpaceReservation:
		return Kind(s), nil
	default:
		return "", ErrUnknownKind
	}
}

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindActivity, KindEvent, KindSpaceReservation:
		return true
	default:
		return false
	}
}

// Item is a read-only snapshot of a payable offering, owned by the
// surrounding catalog subsystem.
type Item struct {
	id            uuid.UUID
	kind          Kind
	title         string
	basePrice     pricing.Money
	isFree        bool
	isPriceRandom bool
	discounts     pricing.DiscountConfig
}

func NewItem(
	id uuid.UUID,
	kind Kind,
	title string,
	basePrice pricing.Money,
	isFree bool,
	isPriceRandom bool,
	discounts pricing.DiscountConfig,
) (*Item, error) {
	if !kind.IsValid() {
		return nil, ErrUnknownKind
	}
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if basePrice.Cents() < 0 {
		return nil, ErrNegativePrice
	}

	return &Item{
		id:            id,
		kind:          kind,
		title:         title,
		basePrice:     basePrice,
		isFree:        isFree,
		isPriceRandom: isPriceRandom,
		discounts:     discounts,
	}, nil
}

func (i *Item) ID() uuid.UUID                     { return i.id }
func (i *Item) Kind() Kind                        { return i.kind }
func (i *Item) Title() string                     { return i.title }
func (i *Item) BasePrice() pricing.Money          { return i.basePrice }
func (i *Item) IsFree() bool                      { return i.isFree }
func (i *Item) IsPriceRandom() bool               { return i.isPriceRandom }
func (i *Item) Discounts() pricing.DiscountConfig { return i.discounts }

// ChargeableAmount picks the amount a discount applies to: the base price,
// or a visitor-chosen amount floored at the base price when the item allows
// pay-what-you-wish pricing.
func (i *Item) ChargeableAmount(custom *pricing.Money) (pricing.Money, error) {
	if custom == nil {
		return i.basePrice, nil
	}
	if !i.isPriceRandom {
		return pricing.Money{}, ErrCustomAmountNotAllowed
	}
	if custom.LessThan(i.basePrice) {
		return pricing.Money{}, ErrAmountBelowBase
	}
	return *custom, nil
}
