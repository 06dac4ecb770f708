package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mfriesen/discovery/internal/catalog"
	"github.com/mfriesen/discovery/internal/domain"
	"github.com/mfriesen/discovery/internal/gateway"
	"github.com/mfriesen/discovery/internal/scoring"
	"github.com/mfriesen/discovery/internal/wizard"
)

// selectionRows flattens the recommended and other lists into one cursor
// space so a single index addresses every row.
func (m *model) selectionRows() []scoring.Recommendation {
	rows := make([]scoring.Recommendation, 0, len(m.st.Recommended)+len(m.st.Others))
	rows = append(rows, m.st.Recommended...)
	rows = append(rows, m.st.Others...)
	return rows
}

func (m *model) handleSelectionKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.selectionRows()
	switch {
	case msg.Type == tea.KeyEsc:
		m.selCursor = 0
		return m.dispatch(wizard.Back{})
	case msg.Type == tea.KeyUp || msg.String() == "k":
		if m.selCursor > 0 {
			m.selCursor--
		}
		return m, nil
	case msg.Type == tea.KeyDown || msg.String() == "j":
		if m.selCursor < len(rows)-1 {
			m.selCursor++
		}
		return m, nil
	case msg.Type == tea.KeySpace:
		if m.selCursor < len(rows) {
			return m.dispatch(wizard.ToggleOffering{Name: rows[m.selCursor].Offering.Name})
		}
		return m, nil
	case msg.String() == "a":
		mode := domain.BillingAnnual
		if m.st.Billing == domain.BillingAnnual {
			mode = domain.BillingMonthly
		}
		return m.dispatch(wizard.SetBilling{Mode: mode})
	case msg.Type == tea.KeyEnter:
		return m.dispatch(wizard.Next{})
	}
	return m, nil
}

func (m *model) renderSelection() string {
	t := textFor(m.app.Lang)
	var b strings.Builder

	b.WriteString("\n  " + styleBold.Render(t.selectionTitle) + "\n\n")

	idx := 0
	writeRow := func(r scoring.Recommendation) {
		cursor := "  "
		if idx == m.selCursor {
			cursor = styleYellow.Render("> ")
		}
		mark := dim("[ ]")
		if m.st.IsSelected(r.Offering.Name) {
			mark = styleGreen.Render("[x]")
		}
		name := r.Offering.Name
		if idx == m.selCursor {
			name = styleBold.Render(name)
		}
		price := dim(fmt.Sprintf("%s/mo + %s setup",
			catalog.FormatEUR(r.Offering.MonthlyPrice),
			catalog.FormatEUR(r.Offering.SetupPrice)))
		b.WriteString(fmt.Sprintf("  %s%s %s  %s\n", cursor, mark, name, price))
		if idx == m.selCursor {
			b.WriteString("       " + dim(r.Offering.Benefit) + "\n")
			if len(r.Reasons) > 0 {
				parts := make([]string, 0, len(r.Reasons))
				for _, reason := range r.Reasons {
					parts = append(parts, fmt.Sprintf("%s +%d", reason.Factor, reason.Points))
				}
				b.WriteString("       " + styleBlue.Render(strings.Join(parts, ", ")) + "\n")
			}
		}
		idx++
	}

	if len(m.st.Recommended) > 0 {
		b.WriteString("  " + styleGreen.Render(t.recommendedHdr) + "\n")
		for _, r := range m.st.Recommended {
			writeRow(r)
		}
	}
	if len(m.st.Others) > 0 {
		b.WriteString("\n  " + dim(t.othersHdr) + "\n")
		for _, r := range m.st.Others {
			writeRow(r)
		}
	}

	b.WriteString("\n" + m.renderPricing())
	return b.String()
}

// renderPricing is the live pricing panel under the selection list.
func (m *model) renderPricing() string {
	t := textFor(m.app.Lang)
	q := m.st.Pricing

	billing := t.billingMonthly
	if m.st.Billing == domain.BillingAnnual {
		billing = t.billingAnnual
	}

	var b strings.Builder
	b.WriteString("  " + stylePurple.Render(fmt.Sprintf("%d × %s", q.Count, billing)) + "\n")
	b.WriteString(fmt.Sprintf("  %s %s\n", dim(t.setupLabel+":"), catalog.FormatEUR(q.TotalSetup)))
	if q.DiscountRate > 0 {
		b.WriteString(fmt.Sprintf("  %s %s  %s\n",
			dim(t.monthlyLabel+":"),
			styleBold.Render(catalog.FormatEUR(q.MonthlyFinal)),
			styleGreen.Render(fmt.Sprintf("(%s %.0f%%)", t.discountLabel, q.DiscountRate*100))))
	} else {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			dim(t.monthlyLabel+":"),
			styleBold.Render(catalog.FormatEUR(q.MonthlyFinal))))
	}
	if m.st.Billing == domain.BillingAnnual {
		b.WriteString(fmt.Sprintf("  %s %s\n", dim(t.annualLabel+":"), catalog.FormatEUR(q.AnnualTotal)))
	}
	return b.String()
}

func (m *model) renderSummary() string {
	t := textFor(m.app.Lang)
	var b strings.Builder

	title := t.summaryTitle
	if m.st.SummarySource == gateway.SourceFallback {
		title += " " + dim("("+t.offlineEstimate+")")
	}
	b.WriteString("\n  " + styleBold.Render(title) + "\n\n")

	for _, line := range strings.Split(m.st.Summary, "\n") {
		b.WriteString("  " + line + "\n")
	}
	b.WriteString("\n" + m.renderPricing())

	if m.st.Submitting {
		b.WriteString("\n  " + m.spin.View() + " " + dim("..."))
	}
	return b.String()
}

func (m *model) renderConfirmation() string {
	t := textFor(m.app.Lang)
	var b strings.Builder
	b.WriteString("\n  " + styleGreen.Render(t.confirmTitle) + "\n\n")
	b.WriteString("  " + dim(t.referenceLabel+":") + " " + styleBold.Render(m.st.Reference) + "\n")
	return b.String()
}
