package questionnaire

import (
	"testing"

	"github.com/mfriesen/discovery/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestions_OrderAndIndustryOptions(t *testing.T) {
	qs := Questions("en", []string{"Restaurants", "Medical Practices"})
	require.Len(t, qs, 7)

	assert.Equal(t, QIndustry, qs[0].ID)
	require.Len(t, qs[0].Options, 2)
	assert.Equal(t, "Restaurants", qs[0].Options[0].Value)

	assert.Equal(t, QPainPoints, qs[1].ID)
	assert.Equal(t, domain.QuestionMulti, qs[1].Kind)
	assert.Equal(t, MaxPainPoints, qs[1].MaxSelections)

	last := qs[len(qs)-1]
	assert.Equal(t, QNotes, last.ID)
	assert.Equal(t, domain.QuestionText, last.Kind)
	assert.True(t, last.Optional)
}

func TestQuestions_SameValuesAcrossLanguages(t *testing.T) {
	en := Questions("en", []string{"Restaurants"})
	de := Questions("de", []string{"Restaurants"})
	require.Equal(t, len(en), len(de))
	for i := range en {
		assert.Equal(t, en[i].ID, de[i].ID)
		require.Equal(t, len(en[i].Options), len(de[i].Options))
		for j := range en[i].Options {
			assert.Equal(t, en[i].Options[j].Value, de[i].Options[j].Value)
		}
	}
	// German prompts actually differ.
	assert.NotEqual(t, en[1].Prompt, de[1].Prompt)
}

func TestComplete(t *testing.T) {
	qs := Questions("en", []string{"Restaurants"})
	answers := domain.AnswerSet{}

	single := qs[0]
	multi := qs[1]
	notes := qs[len(qs)-1]

	assert.False(t, Complete(single, answers))
	answers.Set(QIndustry, "Restaurants")
	assert.True(t, Complete(single, answers))

	assert.False(t, Complete(multi, answers))
	answers.Toggle(QPainPoints, "missed-calls", MaxPainPoints)
	assert.True(t, Complete(multi, answers))

	// Optional text question is complete even when unanswered.
	assert.True(t, Complete(notes, answers))
}

func TestAnswerSet_ToggleCapAndIdempotence(t *testing.T) {
	answers := domain.AnswerSet{}
	answers.Toggle(QPainPoints, "missed-calls", MaxPainPoints)
	answers.Toggle(QPainPoints, "slow-quotes", MaxPainPoints)
	answers.Toggle(QPainPoints, "after-hours", MaxPainPoints)

	// Cap reached: a fourth selection is a no-op.
	answers.Toggle(QPainPoints, "manual-data-entry", MaxPainPoints)
	assert.Equal(t, []string{"missed-calls", "slow-quotes", "after-hours"}, answers.Values(QPainPoints))

	// Toggling an existing value removes it, preserving order of the rest.
	answers.Toggle(QPainPoints, "slow-quotes", MaxPainPoints)
	assert.Equal(t, []string{"missed-calls", "after-hours"}, answers.Values(QPainPoints))

	// Toggling twice restores the original membership.
	answers.Toggle(QPainPoints, "slow-quotes", MaxPainPoints)
	answers.Toggle(QPainPoints, "slow-quotes", MaxPainPoints)
	assert.Equal(t, []string{"missed-calls", "after-hours"}, answers.Values(QPainPoints))
}
