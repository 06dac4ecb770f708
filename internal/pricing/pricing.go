package pricing

import "github.com/mfriesen/discovery/internal/domain"

// DiscountFunc maps a selection count to a quantity discount rate in
// [0,1). The catalog supplies it; the aggregator only requires that it is
// monotonically non-decreasing in count.
type DiscountFunc func(count int) float64

// Quote is the derived pricing state for a selection. It is recomputed on
// every selection or billing change and never persisted on its own. No
// rounding happens here; presentation rounding is the renderer's job.
type Quote struct {
	Count                        int
	DiscountRate                 float64
	TotalSetup                   float64
	TotalMonthlyRaw              float64
	MonthlyAfterQuantityDiscount float64
	MonthlyFinal                 float64
	AnnualTotal                  float64
}

// Compute reduces a selection plus a billing mode into a priced package.
// An empty selection yields an all-zero quote.
func Compute(selection []domain.Offering, discount DiscountFunc, annualDiscount float64, billing domain.BillingMode) Quote {
	q := Quote{Count: len(selection)}
	if q.Count == 0 {
		return q
	}

	for _, o := range selection {
		q.TotalSetup += o.SetupPrice
		q.TotalMonthlyRaw += o.MonthlyPrice
	}

	if discount != nil {
		q.DiscountRate = discount(q.Count)
	}
	if q.DiscountRate < 0 {
		q.DiscountRate = 0
	} else if q.DiscountRate >= 1 {
		q.DiscountRate = 0
	}

	q.MonthlyAfterQuantityDiscount = q.TotalMonthlyRaw * (1 - q.DiscountRate)

	q.MonthlyFinal = q.MonthlyAfterQuantityDiscount
	if billing == domain.BillingAnnual {
		q.MonthlyFinal = q.MonthlyAfterQuantityDiscount * (1 - annualDiscount)
	}

	q.AnnualTotal = q.MonthlyFinal * 12
	return q
}
