package pricing

import "errors"

// Money is an amount in cents. Currency is carried by the surrounding
// catalog configuration, not by the value itself.
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func NewMoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errors.New("money cannot be negative")
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Units() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

func (m Money) IsPositive() bool {
	return m.cents > 0
}

func (m Money) LessThan(other Money) bool {
	return m.cents < other.cents
}

func (m Money) Equals(other Money) bool {
	return m.cents == other.cents
}

// ApplyPercentOff returns the amount after removing percent of it.
// Integer cent arithmetic, rounding toward zero.
func (m Money) ApplyPercentOff(percent int32) Money {
	if percent <= 0 {
		return m
	}
	if percent >= 100 {
		return Money{cents: 0}
	}
	return Money{cents: m.cents * int64(100-percent) / 100}
}
