package domain

// Phase is a step of the discovery flow. Values are ordered; Rank reflects
// the fixed linear progression of the wizard.
type Phase string

const (
	PhaseIntake        Phase = "intake"
	PhaseQuestionnaire Phase = "questionnaire"
	PhaseSelection     Phase = "selection"
	PhaseGenerating    Phase = "generating"
	PhaseSummary       Phase = "summary"
	PhaseConfirmation  Phase = "confirmation"
)

var phaseRank = map[Phase]int{
	PhaseIntake:        0,
	PhaseQuestionnaire: 1,
	PhaseSelection:     2,
	PhaseGenerating:    3,
	PhaseSummary:       4,
	PhaseConfirmation:  5,
}

// Rank returns the position of the phase in the flow, or -1 for an
// unknown phase (e.g. read back from a stale draft).
func (p Phase) Rank() int {
	if r, ok := phaseRank[p]; ok {
		return r
	}
	return -1
}

// Valid reports whether p is one of the known phases.
func (p Phase) Valid() bool {
	_, ok := phaseRank[p]
	return ok
}

type BillingMode string

const (
	BillingMonthly BillingMode = "monthly"
	BillingAnnual  BillingMode = "annual"
)

// ValidBillingModes is the canonical set of accepted billing mode strings.
var ValidBillingModes = map[BillingMode]bool{
	BillingMonthly: true,
	BillingAnnual:  true,
}

type QuestionKind string

const (
	QuestionSingle QuestionKind = "single"
	QuestionMulti  QuestionKind = "multi"
	QuestionText   QuestionKind = "text"
)

type Complexity string

const (
	ComplexityLow    Complexity = "Low"
	ComplexityMedium Complexity = "Medium"
	ComplexityHigh   Complexity = "High"
)
