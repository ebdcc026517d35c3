//go:build unit

package pricing_test

import (
	"testing"

	"proposal-service/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeBreakdown(t *testing.T) {
	packageID := uuid.New()
	serviceID := uuid.New()

	t.Run("package, service, and overall discounts combine", func(t *testing.T) {
		sel := pricing.Selection{
			Package:        &pricing.PackageLine{ID: packageID, Price: 17500},
			IncludePackage: true,
			Services: []pricing.ServiceLine{
				{ID: serviceID, Price: 2000},
			},
		}
		discounts := pricing.DiscountSet{
			Package:  pricing.NewPercentageDiscount(10),
			Services: map[uuid.UUID]pricing.Discount{serviceID: pricing.NewAbsoluteDiscount(500)},
			Overall:  pricing.NewPercentageDiscount(5),
		}

		b := pricing.ComputeBreakdown(sel, discounts)

		assert.Equal(t, int64(17500), b.PackageOriginal)
		assert.Equal(t, int64(15750), b.PackageDiscounted)
		assert.Equal(t, int64(1750), b.PackageDiscountAmount)

		require.Len(t, b.Services, 1)
		assert.Equal(t, serviceID, b.Services[0].ServiceID)
		assert.Equal(t, int64(2000), b.Services[0].Original)
		assert.Equal(t, int64(1500), b.Services[0].Discounted)
		assert.Equal(t, int64(500), b.Services[0].DiscountAmount)

		assert.Equal(t, int64(1500), b.ServicesTotal)
		assert.Equal(t, int64(500), b.ServicesDiscountTotal)
		assert.Equal(t, int64(17250), b.Subtotal)
		// 5% of 17250 is 862.5, rounded half up.
		assert.Equal(t, int64(863), b.OverallDiscountAmount)
		assert.Equal(t, int64(16387), b.FinalPrice)
		assert.Equal(t, "16,387", b.FinalPriceDisplay)
	})

	t.Run("services only", func(t *testing.T) {
		sel := pricing.Selection{
			Services: []pricing.ServiceLine{
				{ID: serviceID, Price: 3000},
				{ID: uuid.New(), Price: 1200},
			},
		}

		b := pricing.ComputeBreakdown(sel, pricing.DiscountSet{})

		assert.Equal(t, int64(0), b.PackageOriginal)
		assert.Equal(t, int64(4200), b.Subtotal)
		assert.Equal(t, int64(4200), b.FinalPrice)
	})

	t.Run("included package missing from catalog prices as zero", func(t *testing.T) {
		sel := pricing.Selection{
			IncludePackage: true,
			Package:        nil,
			Services:       []pricing.ServiceLine{{ID: serviceID, Price: 2000}},
		}

		b := pricing.ComputeBreakdown(sel, pricing.DiscountSet{})

		assert.Equal(t, int64(0), b.PackageOriginal)
		assert.Equal(t, int64(0), b.PackageDiscounted)
		assert.Equal(t, int64(2000), b.FinalPrice)
	})

	t.Run("service order is preserved", func(t *testing.T) {
		ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
		sel := pricing.Selection{
			Services: []pricing.ServiceLine{
				{ID: ids[0], Price: 100},
				{ID: ids[1], Price: 200},
				{ID: ids[2], Price: 300},
			},
		}

		b := pricing.ComputeBreakdown(sel, pricing.DiscountSet{})

		require.Len(t, b.Services, 3)
		for i, item := range b.Services {
			assert.Equal(t, ids[i], item.ServiceID)
		}
	})

	t.Run("overall discount never pushes final below zero", func(t *testing.T) {
		sel := pricing.Selection{
			Services: []pricing.ServiceLine{{ID: serviceID, Price: 1000}},
		}
		discounts := pricing.DiscountSet{
			Overall: pricing.NewAbsoluteDiscount(99999),
		}

		b := pricing.ComputeBreakdown(sel, discounts)

		assert.Equal(t, int64(0), b.FinalPrice)
		assert.Equal(t, int64(1000), b.OverallDiscountAmount)
	})

	t.Run("empty selection is all zeros", func(t *testing.T) {
		b := pricing.ComputeBreakdown(pricing.Selection{}, pricing.DiscountSet{})

		assert.Equal(t, int64(0), b.Subtotal)
		assert.Equal(t, int64(0), b.FinalPrice)
		assert.Empty(t, b.Services)
		assert.Equal(t, "0", b.FinalPriceDisplay)
	})
}

func TestComputeBreakdownInvariants(t *testing.T) {
	sel := pricing.Selection{
		Package:        &pricing.PackageLine{ID: uuid.New(), Price: 9999},
		IncludePackage: true,
		Services: []pricing.ServiceLine{
			{ID: uuid.New(), Price: 333},
			{ID: uuid.New(), Price: 7777},
		},
	}
	discounts := pricing.DiscountSet{
		Package: pricing.NewPercentageDiscount(7.5),
		Services: map[uuid.UUID]pricing.Discount{
			sel.Services[0].ID: pricing.NewPercentageDiscount(33),
		},
		Overall: pricing.NewPercentageDiscount(2.5),
	}

	b := pricing.ComputeBreakdown(sel, discounts)

	assert.Equal(t, b.PackageOriginal, b.PackageDiscounted+b.PackageDiscountAmount)
	for _, item := range b.Services {
		assert.Equal(t, item.Original, item.Discounted+item.DiscountAmount)
	}
	assert.Equal(t, b.PackageDiscounted+b.ServicesTotal, b.Subtotal)
	assert.Equal(t, b.Subtotal-b.OverallDiscountAmount, b.FinalPrice)
	assert.GreaterOrEqual(t, b.FinalPrice, int64(0))
}

func TestComputeBreakdownDeterministic(t *testing.T) {
	sel := pricing.Selection{
		Package:        &pricing.PackageLine{ID: uuid.New(), Price: 123457},
		IncludePackage: true,
		Services:       []pricing.ServiceLine{{ID: uuid.New(), Price: 98765}},
	}
	discounts := pricing.DiscountSet{
		Package: pricing.NewPercentageDiscount(13.7),
		Overall: pricing.NewPercentageDiscount(4.2),
	}

	first := pricing.ComputeBreakdown(sel, discounts)
	for range 50 {
		assert.Equal(t, first, pricing.ComputeBreakdown(sel, discounts))
	}
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{amount: 0, want: "0"},
		{amount: 999, want: "999"},
		{amount: 16387, want: "16,387"},
		{amount: 1234567, want: "1,234,567"},
		{amount: -16387, want: "-16,387"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, pricing.FormatAmount(c.amount))
	}
}
