package kernel

import (
	"fmt"

	"flowerorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a whole-unit currency amount. Prices in this domain carry no
// fractional digits; arithmetic keeps decimal precision and never rounds.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney is the additive identity.
var ZeroMoney = Money{amount: decimal.Zero}

func NewMoney(units int64) Money {
	return Money{amount: decimal.NewFromInt(units)}
}

// MoneyFromDecimal rejects amounts with a fractional part.
func MoneyFromDecimal(d decimal.Decimal) (Money, error) {
	if !d.Equal(d.Truncate(0)) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money", fmt.Errorf("%s has fractional digits", d.String()),
		)
	}
	return Money{amount: d}, nil
}

// MoneyFromString parses values such as "200000".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", err)
	}
	return MoneyFromDecimal(d)
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Decimal exposes the amount for persistence and JSON mapping.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) Int64() int64 {
	return m.amount.IntPart()
}

func (m Money) String() string {
	return m.amount.String()
}
