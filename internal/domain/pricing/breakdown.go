package pricing

import (
	"github.com/google/uuid"
)

// PackageLine is a priced package reference at computation time.
type PackageLine struct {
	ID    uuid.UUID
	Price int64
}

// ServiceLine is a priced service reference; slice order is display order
// and is preserved in the breakdown.
type ServiceLine struct {
	ID    uuid.UUID
	Price int64
}

// Selection is everything priced for one proposal. A nil Package with
// IncludePackage set prices the package portion as zero rather than
// failing; proposals must stay computable even when catalog entries
// have since been removed.
type Selection struct {
	Package        *PackageLine
	IncludePackage bool
	Services       []ServiceLine
	IncludesTax    bool
}

// DiscountSet carries the three independent discount inputs. Missing
// per-service entries mean no discount for that service.
type DiscountSet struct {
	Package  Discount
	Services map[uuid.UUID]Discount
	Overall  Discount
}

// LineItem is one service priced with its discount applied.
// Invariant: Discounted + DiscountAmount == Original.
type LineItem struct {
	ServiceID      uuid.UUID `json:"service_id"`
	Original       int64     `json:"original"`
	Discounted     int64     `json:"discounted"`
	DiscountAmount int64     `json:"discount_amount"`
}

// Breakdown is the fully itemized result for one proposal. It is stored
// as a JSON snapshot next to the proposal row so past proposals remain
// reproducible when catalog prices change.
// Invariants: FinalPrice == Subtotal - OverallDiscountAmount,
// FinalPrice >= 0, Subtotal == PackageDiscounted + ServicesTotal.
type Breakdown struct {
	PackageOriginal       int64      `json:"package_original"`
	PackageDiscounted     int64      `json:"package_discounted"`
	PackageDiscountAmount int64      `json:"package_discount_amount"`
	Services              []LineItem `json:"services"`
	ServicesTotal         int64      `json:"services_total"`
	ServicesDiscountTotal int64      `json:"services_discount_total"`
	Subtotal              int64      `json:"subtotal"`
	OverallDiscountAmount int64      `json:"overall_discount_amount"`
	FinalPrice            int64      `json:"final_price"`
	FinalPriceDisplay     string     `json:"final_price_display"`
	IncludesTax           bool       `json:"includes_tax"`
}

// ComputeBreakdown is a pure function: no I/O, no side effects,
// deterministic for the same inputs.
func ComputeBreakdown(sel Selection, discounts DiscountSet) Breakdown {
	b := Breakdown{
		Services:    make([]LineItem, 0, len(sel.Services)),
		IncludesTax: sel.IncludesTax,
	}

	if sel.IncludePackage && sel.Package != nil {
		b.PackageOriginal = sel.Package.Price
		b.PackageDiscounted = discounts.Package.Apply(sel.Package.Price)
		b.PackageDiscountAmount = b.PackageOriginal - b.PackageDiscounted
	}

	for _, svc := range sel.Services {
		d := discounts.Services[svc.ID] // zero value applies nothing
		item := LineItem{
			ServiceID:      svc.ID,
			Original:       svc.Price,
			Discounted:     d.Apply(svc.Price),
		}
		item.DiscountAmount = item.Original - item.Discounted
		b.Services = append(b.Services, item)
		b.ServicesTotal += item.Discounted
		b.ServicesDiscountTotal += item.DiscountAmount
	}

	b.Subtotal = b.PackageDiscounted + b.ServicesTotal
	b.FinalPrice = discounts.Overall.Apply(b.Subtotal)
	b.OverallDiscountAmount = b.Subtotal - b.FinalPrice
	b.FinalPriceDisplay = FormatAmount(b.FinalPrice)

	return b
}
