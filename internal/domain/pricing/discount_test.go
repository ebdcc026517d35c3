//go:build unit

package pricing_test

import (
	"testing"

	"proposal-service/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
)

func TestDiscountClamping(t *testing.T) {
	t.Run("percentage discounts", func(t *testing.T) {
		cases := []struct {
			name       string
			percent    float64
			wantKind   pricing.DiscountKind
			wantStored float64
		}{
			{name: "zero percent collapses to none", percent: 0, wantKind: pricing.DiscountNone, wantStored: 0},
			{name: "negative percent collapses to none", percent: -10, wantKind: pricing.DiscountNone, wantStored: 0},
			{name: "valid percent kept as is", percent: 12.5, wantKind: pricing.DiscountPercentage, wantStored: 12.5},
			{name: "exactly one hundred kept", percent: 100, wantKind: pricing.DiscountPercentage, wantStored: 100},
			{name: "over one hundred clamped to one hundred", percent: 150, wantKind: pricing.DiscountPercentage, wantStored: 100},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				d := pricing.NewPercentageDiscount(c.percent)
				assert.Equal(t, c.wantKind, d.Kind())
				assert.Equal(t, c.wantStored, d.StorageValue())
			})
		}
	})

	t.Run("absolute discounts", func(t *testing.T) {
		cases := []struct {
			name     string
			amount   int64
			wantKind pricing.DiscountKind
		}{
			{name: "zero amount collapses to none", amount: 0, wantKind: pricing.DiscountNone},
			{name: "negative amount collapses to none", amount: -500, wantKind: pricing.DiscountNone},
			{name: "positive amount kept", amount: 500, wantKind: pricing.DiscountAbsolute},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				d := pricing.NewAbsoluteDiscount(c.amount)
				assert.Equal(t, c.wantKind, d.Kind())
			})
		}
	})
}

func TestDiscountApply(t *testing.T) {
	cases := []struct {
		name     string
		discount pricing.Discount
		price    int64
		want     int64
	}{
		{name: "no discount returns price", discount: pricing.NoDiscount(), price: 17500, want: 17500},
		{name: "ten percent off", discount: pricing.NewPercentageDiscount(10), price: 17500, want: 15750},
		{name: "full percent off", discount: pricing.NewPercentageDiscount(100), price: 17500, want: 0},
		{name: "percentage rounds half up", discount: pricing.NewPercentageDiscount(5), price: 17250, want: 16387},
		{name: "percentage rounds down below half", discount: pricing.NewPercentageDiscount(33), price: 101, want: 68},
		{name: "absolute off", discount: pricing.NewAbsoluteDiscount(500), price: 2000, want: 1500},
		{name: "absolute larger than price floors at zero", discount: pricing.NewAbsoluteDiscount(5000), price: 2000, want: 0},
		{name: "zero price stays zero", discount: pricing.NewPercentageDiscount(50), price: 0, want: 0},
		{name: "negative price floors at zero", discount: pricing.NewAbsoluteDiscount(500), price: -100, want: 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.discount.Apply(c.price))
			if c.price >= 0 {
				assert.Equal(t, c.price-c.want, c.discount.AmountOff(c.price))
			}
		})
	}
}

func TestDiscountApplyIsDeterministic(t *testing.T) {
	d := pricing.NewPercentageDiscount(7.35)
	first := d.Apply(123457)
	for range 100 {
		assert.Equal(t, first, d.Apply(123457))
	}
}

func TestDiscountStorageRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		in   pricing.Discount
	}{
		{name: "none", in: pricing.NoDiscount()},
		{name: "percentage", in: pricing.NewPercentageDiscount(12.5)},
		{name: "absolute", in: pricing.NewAbsoluteDiscount(300)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out := pricing.DiscountFromStorage(string(c.in.Kind()), c.in.StorageValue())
			assert.Equal(t, c.in, out)
		})
	}

	t.Run("unknown kind collapses to none", func(t *testing.T) {
		d := pricing.DiscountFromStorage("loyalty", 10)
		assert.True(t, d.IsZero())
	})
}
