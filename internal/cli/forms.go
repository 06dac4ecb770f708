package cli

import (
	"errors"

	"github.com/charmbracelet/huh"
	"github.com/mfriesen/discovery/internal/domain"
	"github.com/mfriesen/discovery/internal/validate"
)

// intakeValues backs the intake form inputs.
type intakeValues struct {
	Company string
	Name    string
	Email   string
	Phone   string
}

func (v intakeValues) contact() domain.Contact {
	return domain.Contact{Company: v.Company, Name: v.Name, Email: v.Email, Phone: v.Phone}
}

// newIntakeForm builds the contact form. Field validators mirror the
// reducer-side contact check so the user sees problems inline before
// submitting.
func newIntakeForm(v *intakeValues, lang string) *huh.Form {
	t := textFor(lang)
	required := func(s string) error {
		if s == "" {
			return errors.New(t.fieldRequired)
		}
		return nil
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title(t.companyLabel).Value(&v.Company).Validate(required),
			huh.NewInput().Title(t.nameLabel).Value(&v.Name).Validate(required),
			huh.NewInput().Title(t.emailLabel).Value(&v.Email).Validate(func(s string) error {
				if !validate.CheckEmail(s) {
					return errors.New(t.emailInvalid)
				}
				return nil
			}),
			huh.NewInput().Title(t.phoneLabel).Value(&v.Phone).Validate(func(s string) error {
				if !validate.CheckPhone(s) {
					return errors.New(t.phoneInvalid)
				}
				return nil
			}),
		).Title(t.intakeTitle),
	).WithShowHelp(false)
}

// questionValues backs the per-question form. Exactly one of the fields
// is used, depending on the question kind.
type questionValues struct {
	Single string
	Multi  []string
	Text   string
}

// newQuestionForm builds the form for one questionnaire step, pre-filled
// with any previously recorded answer.
func newQuestionForm(q domain.QuestionDefinition, answers domain.AnswerSet, v *questionValues) *huh.Form {
	switch q.Kind {
	case domain.QuestionMulti:
		v.Multi = append([]string(nil), answers.Values(q.ID)...)
		opts := make([]huh.Option[string], 0, len(q.Options))
		for _, o := range q.Options {
			opts = append(opts, huh.NewOption(o.Label, o.Value))
		}
		ms := huh.NewMultiSelect[string]().Title(q.Prompt).Options(opts...).Value(&v.Multi)
		if q.MaxSelections > 0 {
			ms = ms.Limit(q.MaxSelections)
		}
		return huh.NewForm(huh.NewGroup(ms)).WithShowHelp(false)

	case domain.QuestionText:
		v.Text = answers.Value(q.ID)
		return huh.NewForm(huh.NewGroup(
			huh.NewText().Title(q.Prompt).Value(&v.Text).Lines(3),
		)).WithShowHelp(false)

	default: // single choice
		v.Single = answers.Value(q.ID)
		opts := make([]huh.Option[string], 0, len(q.Options))
		for _, o := range q.Options {
			opts = append(opts, huh.NewOption(o.Label, o.Value))
		}
		return huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().Title(q.Prompt).Options(opts...).Value(&v.Single),
		)).WithShowHelp(false)
	}
}

// newResumeForm builds the resume-or-restart confirm shown when a
// resumable draft exists.
func newResumeForm(resume *bool, lang string) *huh.Form {
	t := textFor(lang)
	return huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(t.resumePrompt).
			Affirmative(t.resumeYes).
			Negative(t.resumeNo).
			Value(resume),
	)).WithShowHelp(false)
}
