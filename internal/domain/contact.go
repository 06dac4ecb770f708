package domain

// Contact is the intake record collected before the questionnaire starts.
// All four fields must be non-empty (and email/phone well-formed) before
// the wizard may leave the intake phase.
type Contact struct {
	Company string `json:"company"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}
