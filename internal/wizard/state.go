package wizard

import (
	"github.com/mfriesen/discovery/internal/domain"
	"github.com/mfriesen/discovery/internal/pricing"
	"github.com/mfriesen/discovery/internal/questionnaire"
	"github.com/mfriesen/discovery/internal/scoring"
	"github.com/mfriesen/discovery/internal/validate"
)

// State is the complete wizard state. It is a value: Reduce returns a new
// State and never mutates its input, so every transition is testable in
// isolation.
type State struct {
	Lang    string
	Phase   domain.Phase
	Contact domain.Contact

	// FieldErrors holds inline intake validation messages; non-empty
	// only after a rejected SubmitContact.
	FieldErrors validate.FieldErrors

	Questions []domain.QuestionDefinition
	Answers   domain.AnswerSet
	Step      int
	// StepError is the inline "answer required" message for the current
	// question, cleared on any answer mutation.
	StepError string

	// Scored catalog for the chosen industry, computed on entering the
	// selection phase.
	Recommended []scoring.Recommendation
	Others      []scoring.Recommendation

	Selected []string
	Billing  domain.BillingMode
	Pricing  pricing.Quote

	Summary       string
	SummarySource string
	Submitting    bool
	Reference     string
}

// Question returns the definition at the current cursor, clamped so a
// stale step can never panic.
func (s State) Question() domain.QuestionDefinition {
	if len(s.Questions) == 0 {
		return domain.QuestionDefinition{}
	}
	i := s.Step
	if i < 0 {
		i = 0
	}
	if i >= len(s.Questions) {
		i = len(s.Questions) - 1
	}
	return s.Questions[i]
}

// Industry returns the chosen industry answer.
func (s State) Industry() string {
	return s.Answers.Value(questionnaire.QIndustry)
}

// IsSelected reports membership of an offering in the current selection.
func (s State) IsSelected(name string) bool {
	for _, n := range s.Selected {
		if n == name {
			return true
		}
	}
	return false
}

// Draft snapshots the persistable slice of the state.
func (s State) Draft() domain.SessionDraft {
	return domain.SessionDraft{
		Contact:  s.Contact,
		Answers:  s.Answers.Clone(),
		Step:     s.Step,
		Phase:    s.Phase,
		Selected: append([]string(nil), s.Selected...),
		Billing:  s.Billing,
	}
}
