package wizard

import "github.com/mfriesen/discovery/internal/domain"

// Event is one discrete user or gateway action fed to Reduce. The set is
// closed; every transition of the flow is expressed as one of these.
type Event interface{ isEvent() }

// SubmitContact carries the intake form. Advances to the questionnaire
// only when the contact validates.
type SubmitContact struct {
	Contact domain.Contact
}

// SetAnswer records a scalar answer for the current single-choice or text
// question.
type SetAnswer struct {
	ID    string
	Value string
}

// ToggleAnswer toggles one value of a multi-choice question.
type ToggleAnswer struct {
	ID    string
	Value string
}

// Next advances the questionnaire cursor or the phase, when the guard for
// the current position passes.
type Next struct{}

// Back moves one step backwards; from the first question it returns to
// the intake form.
type Back struct{}

// ToggleOffering adds or removes one offering from the selection.
type ToggleOffering struct {
	Name string
}

// SetBilling switches between monthly and annual billing.
type SetBilling struct {
	Mode domain.BillingMode
}

// AnalysisReady delivers the gateway's (or fallback's) summary text.
type AnalysisReady struct {
	Summary string
	Source  string
}

// Book requests submission with a booking intent.
type Book struct{}

// SendWithoutBooking requests submission without booking.
type SendWithoutBooking struct{}

// SubmissionReady delivers the reference number and completes the flow.
type SubmissionReady struct {
	Reference string
}

func (SubmitContact) isEvent()      {}
func (SetAnswer) isEvent()          {}
func (ToggleAnswer) isEvent()       {}
func (Next) isEvent()               {}
func (Back) isEvent()               {}
func (ToggleOffering) isEvent()     {}
func (SetBilling) isEvent()         {}
func (AnalysisReady) isEvent()      {}
func (Book) isEvent()               {}
func (SendWithoutBooking) isEvent() {}
func (SubmissionReady) isEvent()    {}
