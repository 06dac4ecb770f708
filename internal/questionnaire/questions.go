package questionnaire

import "github.com/mfriesen/discovery/internal/domain"

// Question ids. Answer values are stable keys independent of the display
// language, so a draft saved in one language resumes cleanly in another.
const (
	QIndustry        = "industry"
	QPainPoints      = "pain_points"
	QContactMethods  = "contact_methods"
	QMissedInquiries = "missed_inquiries"
	QTeamSize        = "team_size"
	QInvestment      = "investment"
	QNotes           = "notes"
)

// MaxPainPoints caps the pain-point multi-select.
const MaxPainPoints = 3

type text struct{ en, de string }

func (t text) in(lang string) string {
	if lang == "de" && t.de != "" {
		return t.de
	}
	return t.en
}

type optionDef struct {
	value string
	label text
}

// Questions builds the fixed ordered question list for one display
// language, with the industry choices populated from the catalog.
// The returned definitions are immutable for the rest of the session.
func Questions(lang string, industries []string) []domain.QuestionDefinition {
	industryOpts := make([]domain.QuestionOption, 0, len(industries))
	for _, ind := range industries {
		industryOpts = append(industryOpts, domain.QuestionOption{Value: ind, Label: ind})
	}

	return []domain.QuestionDefinition{
		{
			ID:      QIndustry,
			Kind:    domain.QuestionSingle,
			Prompt:  text{en: "Which industry is your business in?", de: "In welcher Branche ist Ihr Unternehmen tätig?"}.in(lang),
			Options: industryOpts,
		},
		{
			ID:            QPainPoints,
			Kind:          domain.QuestionMulti,
			Prompt:        text{en: "Where do you lose the most time or customers today?", de: "Wo verlieren Sie heute am meisten Zeit oder Kunden?"}.in(lang),
			MaxSelections: MaxPainPoints,
			Options: options(lang,
				optionDef{"missed-calls", text{en: "Missed phone calls", de: "Verpasste Anrufe"}},
				optionDef{"appointment-chaos", text{en: "Appointment scheduling chaos", de: "Chaos bei der Terminplanung"}},
				optionDef{"slow-quotes", text{en: "Quotes go out too slowly", de: "Angebote gehen zu langsam raus"}},
				optionDef{"after-hours", text{en: "Inquiries outside opening hours", de: "Anfragen außerhalb der Öffnungszeiten"}},
				optionDef{"overloaded-staff", text{en: "Staff buried in routine work", de: "Team versinkt in Routinearbeit"}},
				optionDef{"manual-data-entry", text{en: "Manual data entry", de: "Manuelle Dateneingabe"}},
			),
		},
		{
			ID:     QContactMethods,
			Kind:   domain.QuestionMulti,
			Prompt: text{en: "How do customers reach you today?", de: "Wie erreichen Kunden Sie heute?"}.in(lang),
			Options: options(lang,
				optionDef{"phone", text{en: "Phone", de: "Telefon"}},
				optionDef{"email", text{en: "Email", de: "E-Mail"}},
				optionDef{"whatsapp", text{en: "WhatsApp", de: "WhatsApp"}},
				optionDef{"website", text{en: "Website form", de: "Website-Formular"}},
				optionDef{"social", text{en: "Social media", de: "Social Media"}},
			),
		},
		{
			ID:     QMissedInquiries,
			Kind:   domain.QuestionSingle,
			Prompt: text{en: "How often do inquiries go unanswered?", de: "Wie oft bleiben Anfragen unbeantwortet?"}.in(lang),
			Options: options(lang,
				optionDef{"daily", text{en: "Daily", de: "Täglich"}},
				optionDef{"weekly", text{en: "Weekly", de: "Wöchentlich"}},
				optionDef{"monthly", text{en: "A few times a month", de: "Einige Male im Monat"}},
				optionDef{"rarely", text{en: "Rarely", de: "Selten"}},
			),
		},
		{
			ID:     QTeamSize,
			Kind:   domain.QuestionSingle,
			Prompt: text{en: "How large is your team?", de: "Wie groß ist Ihr Team?"}.in(lang),
			Options: options(lang,
				optionDef{"solo", text{en: "Just me", de: "Nur ich"}},
				optionDef{"2-5", text{en: "2-5 people", de: "2-5 Personen"}},
				optionDef{"6-15", text{en: "6-15 people", de: "6-15 Personen"}},
				optionDef{"16-50", text{en: "16-50 people", de: "16-50 Personen"}},
				optionDef{"51-200", text{en: "51-200 people", de: "51-200 Personen"}},
				optionDef{"200+", text{en: "More than 200", de: "Mehr als 200"}},
			),
		},
		{
			ID:     QInvestment,
			Kind:   domain.QuestionSingle,
			Prompt: text{en: "How much do you want to invest monthly?", de: "Wie viel möchten Sie monatlich investieren?"}.in(lang),
			Options: options(lang,
				optionDef{"low", text{en: "Keep it lean (under 200 €)", de: "Schlank halten (unter 200 €)"}},
				optionDef{"medium", text{en: "A solid setup (200-500 €)", de: "Solide aufstellen (200-500 €)"}},
				optionDef{"high", text{en: "Whatever moves the needle", de: "Was wirklich etwas bewegt"}},
			),
		},
		{
			ID:       QNotes,
			Kind:     domain.QuestionText,
			Prompt:   text{en: "Anything else we should know? (optional)", de: "Gibt es sonst noch etwas, das wir wissen sollten? (optional)"}.in(lang),
			Optional: true,
		},
	}
}

func options(lang string, defs ...optionDef) []domain.QuestionOption {
	out := make([]domain.QuestionOption, 0, len(defs))
	for _, d := range defs {
		out = append(out, domain.QuestionOption{Value: d.value, Label: d.label.in(lang)})
	}
	return out
}

// Complete reports whether the recorded answer satisfies the question's
// completeness rule: non-empty text, a value for single-choice, at least
// one value for multi-choice. Optional questions are always complete.
func Complete(q domain.QuestionDefinition, answers domain.AnswerSet) bool {
	if q.Optional {
		return true
	}
	switch q.Kind {
	case domain.QuestionMulti:
		return len(answers.Values(q.ID)) > 0
	default:
		return answers.Value(q.ID) != ""
	}
}
