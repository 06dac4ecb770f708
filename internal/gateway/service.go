package gateway

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/mfriesen/discovery/internal/domain"
	"github.com/mfriesen/discovery/internal/pricing"
)

// Result sources. The UI never branches on these; they exist for logging
// and tests.
const (
	SourceRemote   = "remote"
	SourceFallback = "fallback"
)

// Lead bundles everything both gateway operations need about the session.
type Lead struct {
	Language  string
	Contact   domain.Contact
	Answers   domain.AnswerSet
	Selection []domain.Offering
	Quote     pricing.Quote
	Billing   domain.BillingMode
	Summary   string
}

// Service wraps the client with the deterministic local fallbacks so the
// flow can never stall on a remote failure. Neither method returns an
// error: a failure degrades to a locally computed result, single attempt,
// no retry.
type Service struct {
	client Client
}

func NewService(client Client) *Service {
	return &Service{client: client}
}

// Analyze requests a remote summary and synthesizes one locally on any
// transport or status failure.
func (s *Service) Analyze(ctx context.Context, lead Lead) (summary, source string) {
	remote, err := s.client.Analyze(ctx, buildPrompt(lead))
	if err != nil {
		return FallbackSummary(lead.Language, lead.Contact, lead.Selection, lead.Quote), SourceFallback
	}
	return remote, SourceRemote
}

// Submit sends the lead and substitutes a locally generated reference
// number on failure, so downstream rendering never handles an absent ref.
func (s *Service) Submit(ctx context.Context, lead Lead) (domain.SubmissionResult, string) {
	names := make([]string, 0, len(lead.Selection))
	for _, o := range lead.Selection {
		names = append(names, o.Name)
	}
	remote, err := s.client.Submit(ctx, SubmitRequest{
		Contact:             lead.Contact,
		Answers:             lead.Answers,
		SelectedAutomations: names,
		AISummary:           lead.Summary,
		Pricing: PricingPayload{
			TotalSetup:   lead.Quote.TotalSetup,
			MonthlyFinal: lead.Quote.MonthlyFinal,
			Billing:      string(lead.Billing),
			Count:        lead.Quote.Count,
			DiscountRate: lead.Quote.DiscountRate,
		},
		Language: lead.Language,
	})
	if err != nil {
		return domain.SubmissionResult{ReferenceNumber: FallbackReference()}, SourceFallback
	}
	return domain.SubmissionResult{ReferenceNumber: remote}, SourceRemote
}

// buildPrompt renders the lead as the analysis prompt for the remote
// summarizer.
func buildPrompt(lead Lead) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Company: %s\nContact: %s\nLanguage: %s\n", lead.Contact.Company, lead.Contact.Name, lead.Language)

	b.WriteString("Answers:\n")
	ids := make([]string, 0, len(lead.Answers))
	for id := range lead.Answers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		ans := lead.Answers[id]
		if len(ans.Values) > 0 {
			fmt.Fprintf(&b, "  %s: %s\n", id, strings.Join(ans.Values, ", "))
		} else if ans.Value != "" {
			fmt.Fprintf(&b, "  %s: %s\n", id, ans.Value)
		}
	}

	b.WriteString("Selected automations:\n")
	for _, o := range lead.Selection {
		fmt.Fprintf(&b, "  %s (%s): %s\n", o.Name, o.Category, o.Description)
	}

	fmt.Fprintf(&b, "Pricing: setup %.2f, monthly %.2f (%s billing, %d items, %.0f%% volume discount)\n",
		lead.Quote.TotalSetup, lead.Quote.MonthlyFinal, lead.Billing, lead.Quote.Count, lead.Quote.DiscountRate*100)
	b.WriteString("Write a short, friendly analysis of how this package addresses the stated pain points.")
	return b.String()
}
