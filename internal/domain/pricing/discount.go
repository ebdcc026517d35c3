package pricing

import (
	"github.com/shopspring/decimal"
)

// Discount is a closed tagged variant: a percentage off (0-100) or an
// absolute amount off in currency units. The zero value applies nothing.
// All operations are total; malformed values are clamped, never rejected,
// so callers need no error handling around price math.
type Discount struct {
	kind    DiscountKind
	percent float64
	amount  int64
}

type DiscountKind string

const (
	DiscountNone       DiscountKind = "none"
	DiscountPercentage DiscountKind = "percentage"
	DiscountAbsolute   DiscountKind = "absolute"
)

var oneHundred = decimal.NewFromInt(100)

func NoDiscount() Discount {
	return Discount{kind: DiscountNone}
}

// NewPercentageDiscount clamps percent into [0,100].
func NewPercentageDiscount(percent float64) Discount {
	if percent <= 0 {
		return Discount{kind: DiscountNone}
	}
	if percent > 100 {
		percent = 100
	}
	return Discount{kind: DiscountPercentage, percent: percent}
}

// NewAbsoluteDiscount clamps negative amounts to zero; the amount is
// further capped at the price it applies to at application time.
func NewAbsoluteDiscount(amount int64) Discount {
	if amount <= 0 {
		return Discount{kind: DiscountNone}
	}
	return Discount{kind: DiscountAbsolute, amount: amount}
}

func (d Discount) Kind() DiscountKind { return d.kind }
func (d Discount) IsZero() bool       { return d.kind == DiscountNone || d.kind == "" }
func (d Discount) Percent() float64   { return d.percent }
func (d Discount) Amount() int64      { return d.amount }

// AmountOff returns the currency amount this discount removes from price.
// Percentages round half-up to the nearest currency unit so repeated
// computation of the same inputs is bit-exact.
func (d Discount) AmountOff(price int64) int64 {
	if price <= 0 {
		return 0
	}

	switch d.kind {
	case DiscountPercentage:
		off := decimal.NewFromInt(price).
			Mul(decimal.NewFromFloat(d.percent)).
			Div(oneHundred).
			Round(0) // round half-up for non-negative operands
		return off.IntPart()
	case DiscountAbsolute:
		if d.amount > price {
			return price
		}
		return d.amount
	default:
		return 0
	}
}

// Apply returns the discounted price, never below zero.
func (d Discount) Apply(price int64) int64 {
	if price < 0 {
		return 0
	}
	return price - d.AmountOff(price)
}

// StorageValue is the single numeric persisted next to the kind:
// the percentage for percentage discounts, the amount for absolute ones.
func (d Discount) StorageValue() float64 {
	switch d.kind {
	case DiscountPercentage:
		return d.percent
	case DiscountAbsolute:
		return float64(d.amount)
	default:
		return 0
	}
}

// DiscountFromStorage rebuilds a discount from its persisted kind/value
// pair. Unknown kinds and non-positive values collapse to no discount,
// mirroring the clamping constructors.
func DiscountFromStorage(kind string, value float64) Discount {
	switch DiscountKind(kind) {
	case DiscountPercentage:
		return NewPercentageDiscount(value)
	case DiscountAbsolute:
		return NewAbsoluteDiscount(int64(value))
	default:
		return NoDiscount()
	}
}
