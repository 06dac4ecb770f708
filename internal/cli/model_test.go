package cli

import (
	"testing"

	"github.com/mfriesen/discovery/internal/domain"
	"github.com/mfriesen/discovery/internal/questionnaire"
	"github.com/mfriesen/discovery/internal/wizard"
	"github.com/stretchr/testify/assert"
)

func multiQuestion(max int) domain.QuestionDefinition {
	return domain.QuestionDefinition{
		ID:            questionnaire.QPainPoints,
		Kind:          domain.QuestionMulti,
		MaxSelections: max,
	}
}

func TestAnswerEvents_MultiDiff(t *testing.T) {
	q := multiQuestion(3)
	answers := domain.AnswerSet{}
	answers.Toggle(q.ID, "missed-calls", 3)
	answers.Toggle(q.ID, "after-hours", 3)

	// Form result: kept after-hours, dropped missed-calls, added slow-quotes.
	events := answerEvents(q, answers, questionValues{Multi: []string{"after-hours", "slow-quotes"}})

	assert.Equal(t, []wizard.Event{
		wizard.ToggleAnswer{ID: q.ID, Value: "missed-calls"},
		wizard.ToggleAnswer{ID: q.ID, Value: "slow-quotes"},
	}, events)
}

func TestAnswerEvents_MultiNoChange(t *testing.T) {
	q := multiQuestion(3)
	answers := domain.AnswerSet{}
	answers.Toggle(q.ID, "missed-calls", 3)

	events := answerEvents(q, answers, questionValues{Multi: []string{"missed-calls"}})
	assert.Empty(t, events)
}

func TestAnswerEvents_Single(t *testing.T) {
	q := domain.QuestionDefinition{ID: questionnaire.QTeamSize, Kind: domain.QuestionSingle}

	events := answerEvents(q, domain.AnswerSet{}, questionValues{Single: "2-5"})
	assert.Equal(t, []wizard.Event{wizard.SetAnswer{ID: q.ID, Value: "2-5"}}, events)
}

func TestAnswerEvents_TextTrimsWhitespace(t *testing.T) {
	q := domain.QuestionDefinition{ID: questionnaire.QNotes, Kind: domain.QuestionText}

	events := answerEvents(q, domain.AnswerSet{}, questionValues{Text: "  call me after 5pm  "})
	assert.Equal(t, []wizard.Event{wizard.SetAnswer{ID: q.ID, Value: "call me after 5pm"}}, events)
}

func TestTextFor_FallsBackToEnglish(t *testing.T) {
	assert.Equal(t, texts["en"], textFor("fr"))
	assert.Equal(t, texts["de"], textFor("de"))
}

func TestIntakeValuesContact(t *testing.T) {
	v := intakeValues{Company: "Acme", Name: "Jo", Email: "jo@acme.test", Phone: "+49 30 1234567"}
	c := v.contact()
	assert.Equal(t, "Acme", c.Company)
	assert.Equal(t, "jo@acme.test", c.Email)
}
