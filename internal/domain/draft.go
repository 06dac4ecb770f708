package domain

// SessionDraft is the resumable snapshot of in-progress wizard state.
// It is overwritten on every mutation between the questionnaire and
// summary phases and deleted when the flow reaches confirmation.
type SessionDraft struct {
	Contact  Contact     `json:"contact"`
	Answers  AnswerSet   `json:"answers"`
	Step     int         `json:"step"`
	Phase    Phase       `json:"phase"`
	Selected []string    `json:"selectedOfferingNames"`
	Billing  BillingMode `json:"billingMode"`
}

// SubmissionResult is what the gateway hands back after a lead is
// submitted. ReferenceNumber is always non-empty: a locally generated
// code substitutes for the server-issued one on failure.
type SubmissionResult struct {
	ReferenceNumber string
}
