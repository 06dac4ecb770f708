package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin_UniqueNames(t *testing.T) {
	seen := map[string]bool{}
	for _, o := range Builtin().All() {
		assert.False(t, seen[o.Name], "duplicate offering name %q", o.Name)
		seen[o.Name] = true
		assert.NotEmpty(t, o.Industry)
		assert.Greater(t, o.MonthlyPrice, 0.0)
		assert.Greater(t, o.SetupPrice, 0.0)
	}
}

func TestForIndustry_CaseInsensitive(t *testing.T) {
	c := Builtin()
	lower := c.ForIndustry("restaurants")
	exact := c.ForIndustry("Restaurants")
	require.NotEmpty(t, exact)
	assert.Equal(t, exact, lower)
	for _, o := range exact {
		assert.Equal(t, "Restaurants", o.Industry)
	}
}

func TestMatchIndustry(t *testing.T) {
	c := Builtin()
	assert.Equal(t, "Medical Practices", c.MatchIndustry("medical practices"))
	assert.Equal(t, "", c.MatchIndustry("aerospace"))
	assert.Equal(t, "", c.MatchIndustry("  "))
}

func TestPricingConfig_Validate(t *testing.T) {
	assert.NoError(t, DefaultPricingConfig().Validate())

	bad := PricingConfig{Tiers: []DiscountTier{{MinCount: 3, Rate: 0.10}, {MinCount: 5, Rate: 0.05}}}
	assert.Error(t, bad.Validate(), "rate must not decrease with count")

	bad = PricingConfig{Tiers: []DiscountTier{{MinCount: 0, Rate: 0.10}}}
	assert.Error(t, bad.Validate())

	bad = PricingConfig{AnnualDiscount: 1.0}
	assert.Error(t, bad.Validate())
}

func TestDiscountFunc_MonotoneTiers(t *testing.T) {
	f := DefaultPricingConfig().DiscountFunc()
	assert.Equal(t, 0.0, f(1))
	assert.Equal(t, 0.0, f(2))
	assert.Equal(t, 0.05, f(3))
	assert.Equal(t, 0.10, f(5))
	assert.Equal(t, 0.15, f(8))
	prev := 0.0
	for n := 0; n <= 12; n++ {
		rate := f(n)
		assert.GreaterOrEqual(t, rate, prev)
		prev = rate
	}
}

func TestFormatEUR(t *testing.T) {
	assert.Equal(t, "149 €", FormatEUR(149))
	assert.Equal(t, "141.55 €", FormatEUR(141.55))
}
