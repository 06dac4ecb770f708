package cli

import (
	"context"
	"regexp"
	"testing"

	"github.com/mfriesen/discovery/internal/catalog"
	"github.com/mfriesen/discovery/internal/domain"
	"github.com/mfriesen/discovery/internal/draft"
	"github.com/mfriesen/discovery/internal/gateway"
	"github.com/mfriesen/discovery/internal/questionnaire"
	"github.com/mfriesen/discovery/internal/teatest"
	"github.com/mfriesen/discovery/internal/wizard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testDriver wraps teatest.Driver with wizard-specific helpers. Form
// phases are completed by setting the backing values directly rather
// than replaying huh's internal key handling.
type testDriver struct {
	*teatest.Driver
	keeper *draft.Keeper
}

func newTestDriver(t *testing.T, hint string) *testDriver {
	t.Helper()
	cat := catalog.Builtin()
	keeper := draft.NewKeeper(draft.NewMemoryStore())

	// Unreachable endpoint: every gateway call takes the fallback path,
	// which keeps the flow deterministic.
	client := gateway.NewClient(gateway.Config{Endpoint: "http://127.0.0.1:1/discovery", TimeoutMs: 100})

	app := &App{
		Machine:      wizard.NewMachine(cat, catalog.DefaultPricingConfig()),
		Catalog:      cat,
		Keeper:       keeper,
		Gateway:      gateway.NewService(client),
		Lang:         "en",
		IndustryHint: hint,
	}

	d := &testDriver{
		Driver: teatest.New(t, newModel(context.Background(), app)),
		keeper: keeper,
	}
	d.Start(100, 40)
	return d
}

func (d *testDriver) model() *model {
	return d.Model.(*model)
}

// completeIntake fills the contact form and submits it.
func (d *testDriver) completeIntake() {
	d.T.Helper()
	m := d.model()
	m.intake = intakeValues{
		Company: "Trattoria Da Luca",
		Name:    "Luca Moretti",
		Email:   "luca@daluca.example",
		Phone:   "+49 30 5550123",
	}
	_, cmd := m.finishForm(nil)
	d.RunCmd(cmd)
}

// answerCurrent records values for the current question and advances.
func (d *testDriver) answerCurrent(v questionValues) {
	d.T.Helper()
	m := d.model()
	m.question = v
	_, cmd := m.finishForm(nil)
	d.RunCmd(cmd)
}

// completeQuestionnaire walks all questions with restaurant-flavored
// answers that score several offerings above the threshold.
func (d *testDriver) completeQuestionnaire() {
	d.T.Helper()
	answers := map[string]questionValues{
		questionnaire.QIndustry:        {Single: "Restaurants"},
		questionnaire.QPainPoints:      {Multi: []string{"missed-calls", "after-hours"}},
		questionnaire.QContactMethods:  {Multi: []string{"phone", "website"}},
		questionnaire.QMissedInquiries: {Single: "daily"},
		questionnaire.QTeamSize:        {Single: "2-5"},
		questionnaire.QInvestment:      {Single: "high"},
		questionnaire.QNotes:           {Text: ""},
	}
	for d.model().st.Phase == domain.PhaseQuestionnaire {
		q := d.model().st.Question()
		v, ok := answers[q.ID]
		require.True(d.T, ok, "no scripted answer for question %s", q.ID)
		d.answerCurrent(v)
	}
}

var refShape = regexp.MustCompile(`^AI-[A-Z0-9]{8}$`)

func TestWizard_FullFlowOffline(t *testing.T) {
	d := newTestDriver(t, "")
	m := d.model()
	assert.Equal(t, domain.PhaseIntake, m.st.Phase)

	d.completeIntake()
	assert.Equal(t, domain.PhaseQuestionnaire, m.st.Phase)

	d.completeQuestionnaire()
	require.Equal(t, domain.PhaseSelection, m.st.Phase)
	require.NotEmpty(t, m.st.Recommended, "restaurant answers must recommend offerings")
	assert.NotEmpty(t, m.st.Selected, "selection is seeded from recommendations")
	assert.Greater(t, m.st.Pricing.TotalSetup, 0.0)

	// Draft persisted mid-flow and resumable.
	saved, ok := d.keeper.Load(context.Background())
	require.True(t, ok)
	assert.True(t, draft.Resumable(saved))

	// Enter runs the analysis; the unreachable gateway falls back locally
	// and the driver drains the whole generating phase synchronously.
	d.PressEnter()
	require.Equal(t, domain.PhaseSummary, m.st.Phase)
	assert.Equal(t, gateway.SourceFallback, m.st.SummarySource)
	assert.NotEmpty(t, m.st.Summary)
	assert.Contains(t, d.View(), "offline estimate")

	// Book: submit falls back too, producing a local reference.
	d.Press('b')
	require.Equal(t, domain.PhaseConfirmation, m.st.Phase)
	assert.Regexp(t, refShape, m.st.Reference)
	assert.Contains(t, d.View(), m.st.Reference)

	// The draft is gone once the flow completes.
	_, ok = d.keeper.Load(context.Background())
	assert.False(t, ok)
}

func TestWizard_SelectionKeys(t *testing.T) {
	d := newTestDriver(t, "")
	m := d.model()
	d.completeIntake()
	d.completeQuestionnaire()
	require.Equal(t, domain.PhaseSelection, m.st.Phase)

	first := m.selectionRows()[0].Offering.Name
	require.True(t, m.st.IsSelected(first))

	d.PressSpace()
	assert.False(t, m.st.IsSelected(first), "space toggles the cursor row off")
	d.PressSpace()
	assert.True(t, m.st.IsSelected(first))

	monthly := m.st.Pricing.MonthlyFinal
	d.Press('a')
	assert.Equal(t, domain.BillingAnnual, m.st.Billing)
	assert.Less(t, m.st.Pricing.MonthlyFinal, monthly, "annual billing discounts the monthly rate")
	d.Press('a')
	assert.Equal(t, domain.BillingMonthly, m.st.Billing)

	d.PressDown()
	assert.Equal(t, 1, m.selCursor)
	d.PressUp()
	d.PressUp()
	assert.Equal(t, 0, m.selCursor, "cursor clamps at the top")

	d.PressEsc()
	assert.Equal(t, domain.PhaseQuestionnaire, m.st.Phase)
	assert.Equal(t, len(m.st.Questions)-1, m.st.Step, "esc returns to the last question")
}

func TestWizard_RequiredQuestionBlocks(t *testing.T) {
	d := newTestDriver(t, "")
	m := d.model()
	d.completeIntake()

	// Submitting the industry question with no choice stays put and
	// surfaces the inline message.
	d.answerCurrent(questionValues{Single: ""})
	assert.Equal(t, domain.PhaseQuestionnaire, m.st.Phase)
	assert.Equal(t, 0, m.st.Step)
	assert.NotEmpty(t, m.st.StepError)
	assert.Contains(t, d.View(), m.st.StepError)

	// The rebuilt form accepts the next attempt.
	d.answerCurrent(questionValues{Single: "Restaurants"})
	assert.Equal(t, 1, m.st.Step)
	assert.Empty(t, m.st.StepError)
}

func TestWizard_ResumePrompt(t *testing.T) {
	cat := catalog.Builtin()
	keeper := draft.NewKeeper(draft.NewMemoryStore())
	machine := wizard.NewMachine(cat, catalog.DefaultPricingConfig())

	// A prior session stopped mid-questionnaire.
	st := machine.NewState("en", "")
	st, _ = machine.Reduce(st, wizard.SubmitContact{Contact: domain.Contact{
		Company: "Acme", Name: "Jo", Email: "jo@acme.test", Phone: "+49 30 1234567",
	}})
	st, _ = machine.Reduce(st, wizard.SetAnswer{ID: questionnaire.QIndustry, Value: "Restaurants"})
	st, _ = machine.Reduce(st, wizard.Next{})
	require.NoError(t, keeper.Save(context.Background(), st.Draft()))

	app := &App{
		Machine: machine,
		Catalog: cat,
		Keeper:  keeper,
		Gateway: gateway.NewService(gateway.NewClient(gateway.Config{Endpoint: "http://127.0.0.1:1/", TimeoutMs: 100})),
		Lang:    "en",
	}
	d := teatest.New(t, newModel(context.Background(), app))
	d.Start(100, 40)

	m := d.Model.(*model)
	require.NotNil(t, m.resumeForm, "a resumable draft shows the prompt")
	assert.Contains(t, d.View(), textFor("en").resumePrompt)

	m.resumeYes = true
	_, cmd := m.finishResumePrompt(nil)
	d.RunCmd(cmd)

	assert.Nil(t, m.resumeForm)
	assert.Equal(t, domain.PhaseQuestionnaire, m.st.Phase)
	assert.Equal(t, 1, m.st.Step)
	assert.Equal(t, "jo@acme.test", m.st.Contact.Email)
}

func TestWizard_StartOverDiscardsDraft(t *testing.T) {
	cat := catalog.Builtin()
	keeper := draft.NewKeeper(draft.NewMemoryStore())
	machine := wizard.NewMachine(cat, catalog.DefaultPricingConfig())

	st := machine.NewState("en", "")
	st, _ = machine.Reduce(st, wizard.SubmitContact{Contact: domain.Contact{
		Company: "Acme", Name: "Jo", Email: "jo@acme.test", Phone: "+49 30 1234567",
	}})
	require.NoError(t, keeper.Save(context.Background(), st.Draft()))

	app := &App{
		Machine: machine,
		Catalog: cat,
		Keeper:  keeper,
		Gateway: gateway.NewService(gateway.NewClient(gateway.Config{Endpoint: "http://127.0.0.1:1/", TimeoutMs: 100})),
		Lang:    "en",
	}
	d := teatest.New(t, newModel(context.Background(), app))
	d.Start(100, 40)

	m := d.Model.(*model)
	require.NotNil(t, m.resumeForm)

	m.resumeYes = false
	_, cmd := m.finishResumePrompt(nil)
	d.RunCmd(cmd)

	assert.Equal(t, domain.PhaseIntake, m.st.Phase)
	_, ok := keeper.Load(context.Background())
	assert.False(t, ok, "declining the resume discards the draft")
}
