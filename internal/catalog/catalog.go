package catalog

import (
	"fmt"
	"math"
	"strings"

	"github.com/mfriesen/discovery/internal/domain"
)

// Catalog is the read-only set of offerings the wizard recommends from.
// The core consumes it and never mutates it.
type Catalog struct {
	offerings []domain.Offering
}

// Builtin returns the catalog bundled with the binary.
func Builtin() *Catalog {
	return &Catalog{offerings: builtinOfferings}
}

// New wraps an externally supplied offering list.
func New(offerings []domain.Offering) *Catalog {
	return &Catalog{offerings: append([]domain.Offering(nil), offerings...)}
}

// All returns every offering in catalog order.
func (c *Catalog) All() []domain.Offering {
	return c.offerings
}

// Industries returns the distinct industry names in first-seen order.
func (c *Catalog) Industries() []string {
	seen := map[string]bool{}
	var out []string
	for _, o := range c.offerings {
		if !seen[o.Industry] {
			seen[o.Industry] = true
			out = append(out, o.Industry)
		}
	}
	return out
}

// ForIndustry returns the offerings of one industry, matched
// case-insensitively, preserving catalog order.
func (c *Catalog) ForIndustry(industry string) []domain.Offering {
	var out []domain.Offering
	for _, o := range c.offerings {
		if strings.EqualFold(o.Industry, industry) {
			out = append(out, o)
		}
	}
	return out
}

// ByName looks up a single offering by its unique name.
func (c *Catalog) ByName(name string) (domain.Offering, bool) {
	for _, o := range c.offerings {
		if o.Name == name {
			return o, true
		}
	}
	return domain.Offering{}, false
}

// MatchIndustry resolves an entry hint (e.g. from a query parameter or
// flag) to a known industry name. Unknown hints return "".
func (c *Catalog) MatchIndustry(hint string) string {
	hint = strings.TrimSpace(hint)
	if hint == "" {
		return ""
	}
	for _, ind := range c.Industries() {
		if strings.EqualFold(ind, hint) {
			return ind
		}
	}
	return ""
}

// FormatEUR renders an amount for display, dropping cents when the value
// is whole. All internal math stays unrounded; this is presentation only.
func FormatEUR(amount float64) string {
	if amount == math.Trunc(amount) {
		return fmt.Sprintf("%.0f €", amount)
	}
	return fmt.Sprintf("%.2f €", amount)
}
