package gateway

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mfriesen/discovery/internal/catalog"
	"github.com/mfriesen/discovery/internal/domain"
	"github.com/mfriesen/discovery/internal/pricing"
)

// RefPrefix is the fixed prefix shared by server-issued and locally
// generated reference numbers.
const RefPrefix = "AI-"

// fallbackTopOfferings caps how many selected offerings the local summary
// describes in detail.
const fallbackTopOfferings = 3

// FallbackReference generates a locally synthesized reference number with
// the same lexical shape as a server-issued one: the fixed prefix plus a
// random alphanumeric suffix.
func FallbackReference() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:8]
	return RefPrefix + suffix
}

// FallbackSummary deterministically synthesizes an analysis summary from
// the first three selected offerings and the computed pricing. Same shape
// as the remote result, just less personalized.
func FallbackSummary(lang string, contact domain.Contact, selection []domain.Offering, quote pricing.Quote) string {
	var b strings.Builder

	top := selection
	if len(top) > fallbackTopOfferings {
		top = top[:fallbackTopOfferings]
	}

	if lang == "de" {
		fmt.Fprintf(&b, "Empfohlenes Automatisierungspaket für %s (%d Bausteine):\n\n", contact.Company, quote.Count)
		for _, o := range top {
			fmt.Fprintf(&b, "• %s — %s\n", o.Name, o.Description)
		}
		if len(selection) > len(top) {
			fmt.Fprintf(&b, "• ... und %d weitere Bausteine\n", len(selection)-len(top))
		}
		fmt.Fprintf(&b, "\nEinrichtung: %s einmalig, danach %s pro Monat.",
			catalog.FormatEUR(quote.TotalSetup), catalog.FormatEUR(quote.MonthlyFinal))
		if quote.DiscountRate > 0 {
			fmt.Fprintf(&b, " Ihr Mengenrabatt: %.0f%%.", quote.DiscountRate*100)
		}
		return b.String()
	}

	fmt.Fprintf(&b, "Recommended automation package for %s (%d building blocks):\n\n", contact.Company, quote.Count)
	for _, o := range top {
		fmt.Fprintf(&b, "• %s — %s\n", o.Name, o.Description)
	}
	if len(selection) > len(top) {
		fmt.Fprintf(&b, "• ... and %d more building blocks\n", len(selection)-len(top))
	}
	fmt.Fprintf(&b, "\nSetup: %s once, then %s per month.",
		catalog.FormatEUR(quote.TotalSetup), catalog.FormatEUR(quote.MonthlyFinal))
	if quote.DiscountRate > 0 {
		fmt.Fprintf(&b, " Your volume discount: %.0f%%.", quote.DiscountRate*100)
	}
	return b.String()
}
