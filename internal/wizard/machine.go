package wizard

import (
	"github.com/mfriesen/discovery/internal/catalog"
	"github.com/mfriesen/discovery/internal/domain"
	"github.com/mfriesen/discovery/internal/pricing"
	"github.com/mfriesen/discovery/internal/questionnaire"
	"github.com/mfriesen/discovery/internal/scoring"
	"github.com/mfriesen/discovery/internal/validate"
)

// Machine holds the read-only collaborators the reducer needs: the
// offering catalog and the pricing configuration. Reduce itself is pure.
type Machine struct {
	catalog  *catalog.Catalog
	cfg      catalog.PricingConfig
	discount pricing.DiscountFunc
}

func NewMachine(cat *catalog.Catalog, cfg catalog.PricingConfig) *Machine {
	return &Machine{catalog: cat, cfg: cfg, discount: cfg.DiscountFunc()}
}

// NewState creates the initial state for one session. industryHint is the
// optional entry hint; it pre-selects the industry answer when it matches
// a known industry and is ignored otherwise.
func (m *Machine) NewState(lang, industryHint string) State {
	s := State{
		Lang:      lang,
		Phase:     domain.PhaseIntake,
		Questions: questionnaire.Questions(lang, m.catalog.Industries()),
		Answers:   domain.AnswerSet{},
		Billing:   domain.BillingMonthly,
	}
	if ind := m.catalog.MatchIndustry(industryHint); ind != "" {
		s.Answers.Set(questionnaire.QIndustry, ind)
	}
	return s
}

// Restore rebuilds a state from a persisted draft. Stale data is clamped
// or dropped rather than rejected: the selection is re-scoped to the
// draft's industry, the cursor is clamped into range, and an unknown
// phase or billing mode falls back to a safe default.
func (m *Machine) Restore(d domain.SessionDraft, lang string) State {
	s := m.NewState(lang, "")
	s.Contact = d.Contact
	if d.Answers != nil {
		s.Answers = d.Answers.Clone()
	}

	s.Phase = d.Phase
	switch {
	case !s.Phase.Valid():
		s.Phase = domain.PhaseIntake
	case s.Phase == domain.PhaseGenerating, s.Phase == domain.PhaseSummary:
		// The summary text is never persisted, so a draft saved during
		// generation or at the summary resumes at selection; the analysis
		// call is re-issued on the next advance.
		s.Phase = domain.PhaseSelection
	}

	s.Step = d.Step
	if s.Step < 0 {
		s.Step = 0
	}
	if s.Step >= len(s.Questions) {
		s.Step = len(s.Questions) - 1
	}

	if domain.ValidBillingModes[d.Billing] {
		s.Billing = d.Billing
	}

	if s.Phase.Rank() >= domain.PhaseSelection.Rank() {
		scoped := m.catalog.ForIndustry(s.Industry())
		res := scoring.Recommend(scoped, s.Answers)
		s.Recommended, s.Others = res.Recommended, res.Others
		for _, name := range d.Selected {
			if offeringIn(scoped, name) {
				s.Selected = append(s.Selected, name)
			}
		}
		s.Pricing = m.quote(s)
	}
	return s
}

// Reduce applies one event to the state and returns the successor state
// plus the effects the caller must run. Unknown or out-of-phase events
// are no-ops: the flow is user-facing and must degrade, not panic.
func (m *Machine) Reduce(s State, ev Event) (State, []Effect) {
	switch ev := ev.(type) {
	case SubmitContact:
		return m.reduceSubmitContact(s, ev)
	case SetAnswer:
		return m.reduceSetAnswer(s, ev)
	case ToggleAnswer:
		return m.reduceToggleAnswer(s, ev)
	case Next:
		return m.reduceNext(s)
	case Back:
		return m.reduceBack(s)
	case ToggleOffering:
		return m.reduceToggleOffering(s, ev)
	case SetBilling:
		return m.reduceSetBilling(s, ev)
	case AnalysisReady:
		return m.reduceAnalysisReady(s, ev)
	case Book:
		return m.reduceSubmitRequest(s)
	case SendWithoutBooking:
		return m.reduceSubmitRequest(s)
	case SubmissionReady:
		return m.reduceSubmissionReady(s, ev)
	}
	return s, nil
}

func (m *Machine) reduceSubmitContact(s State, ev SubmitContact) (State, []Effect) {
	if s.Phase != domain.PhaseIntake {
		return s, nil
	}
	s.Contact = ev.Contact
	s.FieldErrors = validate.CheckContact(ev.Contact)
	if !s.FieldErrors.Valid() {
		return s, nil
	}
	s.Phase = domain.PhaseQuestionnaire
	s.Step = 0
	return s, m.withSave(s, nil)
}

func (m *Machine) reduceSetAnswer(s State, ev SetAnswer) (State, []Effect) {
	if s.Phase != domain.PhaseQuestionnaire {
		return s, nil
	}
	s.Answers = s.Answers.Clone()
	prev := s.Answers.Value(ev.ID)
	s.Answers.Set(ev.ID, ev.Value)
	s.StepError = ""

	// Changing the industry re-scopes the catalog: a selection seeded for
	// the old industry no longer applies.
	if ev.ID == questionnaire.QIndustry && ev.Value != prev {
		s.Selected = nil
		s.Recommended, s.Others = nil, nil
		s.Pricing = pricing.Quote{}
	}
	return s, m.withSave(s, nil)
}

func (m *Machine) reduceToggleAnswer(s State, ev ToggleAnswer) (State, []Effect) {
	if s.Phase != domain.PhaseQuestionnaire {
		return s, nil
	}
	max := 0
	for _, q := range s.Questions {
		if q.ID == ev.ID {
			max = q.MaxSelections
			break
		}
	}
	s.Answers = s.Answers.Clone()
	s.Answers.Toggle(ev.ID, ev.Value, max)
	s.StepError = ""
	return s, m.withSave(s, nil)
}

func (m *Machine) reduceNext(s State) (State, []Effect) {
	switch s.Phase {
	case domain.PhaseQuestionnaire:
		q := s.Question()
		if !questionnaire.Complete(q, s.Answers) {
			s.StepError = requiredMessage(s.Lang, q.Kind)
			return s, nil
		}
		s.StepError = ""
		if s.Step < len(s.Questions)-1 {
			s.Step++
			return s, m.withSave(s, nil)
		}
		return m.enterSelection(s)

	case domain.PhaseSelection:
		if len(s.Selected) == 0 {
			return s, nil
		}
		if s.Summary != "" {
			// Already analyzed once; do not invoke the gateway again.
			s.Phase = domain.PhaseSummary
			return s, m.withSave(s, nil)
		}
		s.Phase = domain.PhaseGenerating
		return s, m.withSave(s, []Effect{EffectAnalyze})
	}
	return s, nil
}

func (m *Machine) reduceBack(s State) (State, []Effect) {
	switch s.Phase {
	case domain.PhaseQuestionnaire:
		if s.Step > 0 {
			s.Step--
			s.StepError = ""
			return s, m.withSave(s, nil)
		}
		s.Phase = domain.PhaseIntake
		s.StepError = ""
		return s, nil
	case domain.PhaseSelection:
		s.Phase = domain.PhaseQuestionnaire
		s.Step = len(s.Questions) - 1
		return s, m.withSave(s, nil)
	case domain.PhaseSummary:
		s.Phase = domain.PhaseSelection
		return s, m.withSave(s, nil)
	}
	return s, nil
}

func (m *Machine) reduceToggleOffering(s State, ev ToggleOffering) (State, []Effect) {
	if s.Phase != domain.PhaseSelection {
		return s, nil
	}
	// Only offerings of the chosen industry may enter the selection.
	if !offeringIn(m.catalog.ForIndustry(s.Industry()), ev.Name) {
		return s, nil
	}
	selected := append([]string(nil), s.Selected...)
	removed := false
	for i, n := range selected {
		if n == ev.Name {
			selected = append(selected[:i], selected[i+1:]...)
			removed = true
			break
		}
	}
	if !removed {
		selected = append(selected, ev.Name)
	}
	s.Selected = selected
	s.Pricing = m.quote(s)
	return s, m.withSave(s, nil)
}

func (m *Machine) reduceSetBilling(s State, ev SetBilling) (State, []Effect) {
	if s.Phase != domain.PhaseSelection && s.Phase != domain.PhaseSummary {
		return s, nil
	}
	if !domain.ValidBillingModes[ev.Mode] || ev.Mode == s.Billing {
		return s, nil
	}
	s.Billing = ev.Mode
	s.Pricing = m.quote(s)
	return s, m.withSave(s, nil)
}

func (m *Machine) reduceAnalysisReady(s State, ev AnalysisReady) (State, []Effect) {
	if s.Phase != domain.PhaseGenerating {
		// The user already navigated on; drop the late result.
		return s, nil
	}
	s.Summary = ev.Summary
	s.SummarySource = ev.Source
	s.Phase = domain.PhaseSummary
	return s, m.withSave(s, nil)
}

func (m *Machine) reduceSubmitRequest(s State) (State, []Effect) {
	if s.Phase != domain.PhaseSummary || s.Submitting {
		return s, nil
	}
	if s.Reference != "" {
		// Already submitted once; just complete.
		s.Phase = domain.PhaseConfirmation
		return s, []Effect{EffectDiscardDraft}
	}
	s.Submitting = true
	return s, []Effect{EffectSubmit}
}

func (m *Machine) reduceSubmissionReady(s State, ev SubmissionReady) (State, []Effect) {
	if !s.Submitting && s.Reference == "" {
		return s, nil
	}
	s.Submitting = false
	if s.Reference == "" {
		s.Reference = ev.Reference
	}
	s.Phase = domain.PhaseConfirmation
	return s, []Effect{EffectDiscardDraft}
}

// enterSelection is the questionnaire → selection transition: scope the
// catalog, score it, seed an empty selection with the recommendations,
// and price the package.
func (m *Machine) enterSelection(s State) (State, []Effect) {
	scoped := m.catalog.ForIndustry(s.Industry())
	res := scoring.Recommend(scoped, s.Answers)
	s.Recommended, s.Others = res.Recommended, res.Others

	if len(s.Selected) == 0 {
		for _, rec := range s.Recommended {
			s.Selected = append(s.Selected, rec.Offering.Name)
		}
	}

	s.Phase = domain.PhaseSelection
	s.Pricing = m.quote(s)
	return s, m.withSave(s, nil)
}

func (m *Machine) quote(s State) pricing.Quote {
	scoped := m.catalog.ForIndustry(s.Industry())
	var selection []domain.Offering
	for _, name := range s.Selected {
		for _, o := range scoped {
			if o.Name == name {
				selection = append(selection, o)
				break
			}
		}
	}
	return pricing.Compute(selection, m.discount, m.cfg.AnnualDiscount, s.Billing)
}

// withSave appends a draft save when the state is in the persisted span
// of the flow (questionnaire through summary).
func (m *Machine) withSave(s State, effects []Effect) []Effect {
	r := s.Phase.Rank()
	if r >= domain.PhaseQuestionnaire.Rank() && r <= domain.PhaseSummary.Rank() {
		return append([]Effect{EffectSaveDraft}, effects...)
	}
	return effects
}

func offeringIn(offerings []domain.Offering, name string) bool {
	for _, o := range offerings {
		if o.Name == name {
			return true
		}
	}
	return false
}

func requiredMessage(lang string, kind domain.QuestionKind) string {
	if lang == "de" {
		if kind == domain.QuestionMulti {
			return "Bitte wählen Sie mindestens eine Option."
		}
		return "Bitte beantworten Sie diese Frage."
	}
	if kind == domain.QuestionMulti {
		return "Please pick at least one option."
	}
	return "Please answer this question."
}
