package pricing

import (
	"time"
)

type DiscountID string

const (
	DiscountSeniors    DiscountID = "seniors"
	DiscountStudents   DiscountID = "students"
	DiscountFamilies   DiscountID = "families"
	DiscountDisability DiscountID = "disability"
	DiscountEarlyBird  DiscountID = "early_bird"
)

func (id DiscountID) String() string {
	return string(id)
}

// DiscountConfig is the per-item discount setup owned by the catalog
// subsystem. A percent of 0 means the discount is not offered. Early-bird
// is additionally gated by its deadline.
type DiscountConfig struct {
	SeniorsPercent    int32
	StudentsPercent   int32
	FamiliesPercent   int32
	DisabilityPercent int32
	EarlyBirdPercent  int32
	EarlyBirdDeadline *time.Time
}

// DiscountOption is a currently-eligible discount, recomputed on every
// evaluation and never persisted.
type DiscountOption struct {
	ID          DiscountID
	Label       string
	Percent     int32
	Description string
}

// EligibleDiscounts materializes the discounts offered by cfg at the given
// instant. Order is fixed for presentation: seniors, students, families,
// disability, early-bird. Early-bird disappears once now passes the
// deadline; it is absent, not disabled.
func EligibleDiscounts(cfg DiscountConfig, now time.Time) []DiscountOption {
	var opts []DiscountOption

	if validPercent(cfg.SeniorsPercent) {
		opts = append(opts, DiscountOption{
			ID:          DiscountSeniors,
			Label:       "Seniors",
			Percent:     cfg.SeniorsPercent,
			Description: "For visitors aged 60 and over",
		})
	}
	if validPercent(cfg.StudentsPercent) {
		opts = append(opts, DiscountOption{
			ID:          DiscountStudents,
			Label:       "Students",
			Percent:     cfg.StudentsPercent,
			Description: "Requires a valid student credential",
		})
	}
	if validPercent(cfg.FamiliesPercent) {
		opts = append(opts, DiscountOption{
			ID:          DiscountFamilies,
			Label:       "Families",
			Percent:     cfg.FamiliesPercent,
			Description: "Group enrollment of three or more relatives",
		})
	}
	if validPercent(cfg.DisabilityPercent) {
		opts = append(opts, DiscountOption{
			ID:          DiscountDisability,
			Label:       "Disability",
			Percent:     cfg.DisabilityPercent,
			Description: "Requires a disability credential",
		})
	}
	if validPercent(cfg.EarlyBirdPercent) && cfg.EarlyBirdDeadline != nil && !now.After(*cfg.EarlyBirdDeadline) {
		opts = append(opts, DiscountOption{
			ID:          DiscountEarlyBird,
			Label:       "Early bird",
			Percent:     cfg.EarlyBirdPercent,
			Description: "Payment completed before " + cfg.EarlyBirdDeadline.Format("2006-01-02"),
		})
	}

	return opts
}

func validPercent(p int32) bool {
	return p > 0 && p <= 100
}
