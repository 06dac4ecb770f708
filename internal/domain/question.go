package domain

// QuestionOption is one selectable choice of a single or multi question.
// Value is the stable key stored in the answer set; Label is the localized
// display text.
type QuestionOption struct {
	Value string
	Label string
}

// QuestionDefinition describes one questionnaire step. Definitions are
// built once per display language and never change afterwards.
type QuestionDefinition struct {
	ID            string
	Kind          QuestionKind
	Prompt        string
	Options       []QuestionOption
	MaxSelections int // 0 = unlimited, multi questions only
	Optional      bool
}
