package catalog

import (
	"fmt"
	"sort"

	"github.com/mfriesen/discovery/internal/pricing"
)

// DiscountTier grants Rate once the selection reaches MinCount items.
type DiscountTier struct {
	MinCount int
	Rate     float64
}

// PricingConfig is the integrator-supplied discount table: quantity tiers
// plus the annual-billing discount constant. The tier breakpoints are
// deliberately configuration, not code.
type PricingConfig struct {
	Tiers          []DiscountTier
	AnnualDiscount float64
}

// DefaultPricingConfig returns the tiers the hosted catalog ships with.
func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		Tiers: []DiscountTier{
			{MinCount: 3, Rate: 0.05},
			{MinCount: 5, Rate: 0.10},
			{MinCount: 8, Rate: 0.15},
		},
		AnnualDiscount: 0.10,
	}
}

// Validate checks that rates lie in [0,1), the annual discount lies in
// [0,1), and the table is monotonically non-decreasing in count.
func (c PricingConfig) Validate() error {
	if c.AnnualDiscount < 0 || c.AnnualDiscount >= 1 {
		return fmt.Errorf("annual discount %v out of range [0,1)", c.AnnualDiscount)
	}
	tiers := append([]DiscountTier(nil), c.Tiers...)
	sort.Slice(tiers, func(i, j int) bool { return tiers[i].MinCount < tiers[j].MinCount })
	prev := 0.0
	for _, t := range tiers {
		if t.MinCount < 1 {
			return fmt.Errorf("tier min count %d must be positive", t.MinCount)
		}
		if t.Rate < 0 || t.Rate >= 1 {
			return fmt.Errorf("tier rate %v out of range [0,1)", t.Rate)
		}
		if t.Rate < prev {
			return fmt.Errorf("tier at count %d lowers the rate to %v", t.MinCount, t.Rate)
		}
		prev = t.Rate
	}
	return nil
}

// DiscountFunc derives the quantity discount function from the tier table.
func (c PricingConfig) DiscountFunc() pricing.DiscountFunc {
	tiers := append([]DiscountTier(nil), c.Tiers...)
	sort.Slice(tiers, func(i, j int) bool { return tiers[i].MinCount < tiers[j].MinCount })
	return func(count int) float64 {
		rate := 0.0
		for _, t := range tiers {
			if count >= t.MinCount {
				rate = t.Rate
			}
		}
		return rate
	}
}
