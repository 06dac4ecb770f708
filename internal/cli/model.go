package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/mfriesen/discovery/internal/domain"
	"github.com/mfriesen/discovery/internal/draft"
	"github.com/mfriesen/discovery/internal/gateway"
	"github.com/mfriesen/discovery/internal/questionnaire"
	"github.com/mfriesen/discovery/internal/repository"
	"github.com/mfriesen/discovery/internal/wizard"
)

// analysisMsg delivers the gateway's (or fallback's) summary.
type analysisMsg struct {
	summary string
	source  string
}

// submittedMsg delivers the reference number after submission.
type submittedMsg struct {
	reference string
	source    string
}

// model is the root bubbletea Model driving the wizard. All domain
// transitions go through the reducer; the model only maps terminal input
// to events and executes the announced effects.
type model struct {
	ctx context.Context
	app *App

	st wizard.State

	// Pending resume decision; non-nil while the resume form is shown.
	resumeDraft *domain.SessionDraft
	resumeForm  *huh.Form
	resumeYes   bool

	form      *huh.Form
	intake    intakeValues
	question  questionValues
	selCursor int

	spin     spinner.Model
	width    int
	height   int
	quitting bool
}

func newModel(ctx context.Context, app *App) *model {
	m := &model{
		ctx:  ctx,
		app:  app,
		spin: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}

	if d, ok := app.Keeper.Load(ctx); ok && draft.Resumable(d) {
		m.resumeDraft = &d
		m.resumeForm = newResumeForm(&m.resumeYes, app.Lang)
	}

	m.st = app.Machine.NewState(app.Lang, app.IndustryHint)
	m.rebuildForm()
	return m
}

func (m *model) Init() tea.Cmd {
	if m.resumeForm != nil {
		return m.resumeForm.Init()
	}
	if m.form != nil {
		return m.form.Init()
	}
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		return m.handleKey(msg)

	case analysisMsg:
		return m.dispatch(wizard.AnalysisReady{Summary: msg.summary, Source: msg.source})

	case submittedMsg:
		return m.dispatch(wizard.SubmissionReady{Reference: msg.reference})

	case spinner.TickMsg:
		if m.st.Phase == domain.PhaseGenerating {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	return m.forwardToForm(msg)
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Resume prompt swallows all input until decided.
	if m.resumeForm != nil {
		return m.forwardToForm(msg)
	}

	switch m.st.Phase {
	case domain.PhaseIntake, domain.PhaseQuestionnaire:
		if msg.Type == tea.KeyEsc {
			if m.st.Phase == domain.PhaseIntake {
				m.quitting = true
				return m, tea.Quit
			}
			return m.dispatch(wizard.Back{})
		}
		return m.forwardToForm(msg)

	case domain.PhaseSelection:
		return m.handleSelectionKey(msg)

	case domain.PhaseGenerating:
		// Non-interactive: ignore everything while analysis runs.
		return m, nil

	case domain.PhaseSummary:
		switch {
		case msg.Type == tea.KeyEsc:
			return m.dispatch(wizard.Back{})
		case msg.String() == "b":
			return m.dispatch(wizard.Book{})
		case msg.String() == "s":
			return m.dispatch(wizard.SendWithoutBooking{})
		}
		return m, nil

	case domain.PhaseConfirmation:
		switch msg.String() {
		case "q", "enter", "esc":
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}
	return m, nil
}

// forwardToForm feeds a message to the active huh form and reacts to its
// completion.
func (m *model) forwardToForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.resumeForm != nil {
		f, cmd := m.resumeForm.Update(msg)
		if hf, ok := f.(*huh.Form); ok {
			m.resumeForm = hf
		}
		if m.resumeForm.State == huh.StateCompleted {
			return m.finishResumePrompt(cmd)
		}
		return m, cmd
	}

	if m.form == nil {
		return m, nil
	}
	f, cmd := m.form.Update(msg)
	if hf, ok := f.(*huh.Form); ok {
		m.form = hf
	}
	if m.form.State == huh.StateCompleted {
		return m.finishForm(cmd)
	}
	return m, cmd
}

// finishResumePrompt applies the resume-or-restart decision.
func (m *model) finishResumePrompt(pending tea.Cmd) (tea.Model, tea.Cmd) {
	d := m.resumeDraft
	m.resumeDraft = nil
	m.resumeForm = nil

	if m.resumeYes {
		m.st = m.app.Machine.Restore(*d, m.app.Lang)
	} else {
		_ = m.app.Keeper.Discard(m.ctx)
	}
	initCmd := m.rebuildForm()
	return m, tea.Batch(pending, initCmd)
}

// finishForm translates a completed phase form into reducer events.
func (m *model) finishForm(pending tea.Cmd) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if pending != nil {
		cmds = append(cmds, pending)
	}

	switch m.st.Phase {
	case domain.PhaseIntake:
		_, cmd := m.dispatch(wizard.SubmitContact{Contact: m.intake.contact()})
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

	case domain.PhaseQuestionnaire:
		q := m.st.Question()
		events := answerEvents(q, m.st.Answers, m.question)
		events = append(events, wizard.Next{})
		for _, ev := range events {
			_, cmd := m.dispatch(ev)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}

	// A rejected transition leaves the phase and step unchanged, so the
	// completed form must be rebuilt or it would swallow further input.
	if m.form != nil && m.form.State == huh.StateCompleted {
		if cmd := m.rebuildForm(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

// answerEvents diffs the form values against the recorded answer to
// produce the minimal event sequence.
func answerEvents(q domain.QuestionDefinition, answers domain.AnswerSet, v questionValues) []wizard.Event {
	var events []wizard.Event
	switch q.Kind {
	case domain.QuestionMulti:
		chosen := map[string]bool{}
		for _, val := range v.Multi {
			chosen[val] = true
		}
		for _, val := range answers.Values(q.ID) {
			if !chosen[val] {
				events = append(events, wizard.ToggleAnswer{ID: q.ID, Value: val})
			}
		}
		for _, val := range v.Multi {
			if !answers.HasValue(q.ID, val) {
				events = append(events, wizard.ToggleAnswer{ID: q.ID, Value: val})
			}
		}
	case domain.QuestionText:
		events = append(events, wizard.SetAnswer{ID: q.ID, Value: strings.TrimSpace(v.Text)})
	default:
		events = append(events, wizard.SetAnswer{ID: q.ID, Value: v.Single})
	}
	return events
}

// dispatch reduces one event and executes the resulting effects.
func (m *model) dispatch(ev wizard.Event) (tea.Model, tea.Cmd) {
	prevPhase, prevStep := m.st.Phase, m.st.Step

	next, effects := m.app.Machine.Reduce(m.st, ev)
	m.st = next

	var cmds []tea.Cmd
	for _, eff := range effects {
		switch eff {
		case wizard.EffectSaveDraft:
			// Persistence failures never block the flow.
			_ = m.app.Keeper.Save(m.ctx, m.st.Draft())
		case wizard.EffectDiscardDraft:
			_ = m.app.Keeper.Discard(m.ctx)
		case wizard.EffectAnalyze:
			cmds = append(cmds, m.analyzeCmd())
		case wizard.EffectSubmit:
			cmds = append(cmds, m.submitCmd())
		}
	}

	if m.st.Phase != prevPhase || m.st.Step != prevStep {
		if cmd := m.rebuildForm(); cmd != nil {
			cmds = append(cmds, cmd)
		}
		if m.st.Phase == domain.PhaseGenerating {
			cmds = append(cmds, m.spin.Tick)
		}
	}
	return m, tea.Batch(cmds...)
}

// rebuildForm creates the huh form for the current phase/step and returns
// its init command.
func (m *model) rebuildForm() tea.Cmd {
	switch m.st.Phase {
	case domain.PhaseIntake:
		m.intake = intakeValues{
			Company: m.st.Contact.Company,
			Name:    m.st.Contact.Name,
			Email:   m.st.Contact.Email,
			Phone:   m.st.Contact.Phone,
		}
		m.form = newIntakeForm(&m.intake, m.app.Lang)
		return m.form.Init()
	case domain.PhaseQuestionnaire:
		m.question = questionValues{}
		m.form = newQuestionForm(m.st.Question(), m.st.Answers, &m.question)
		return m.form.Init()
	}
	m.form = nil
	return nil
}

// analyzeCmd runs the gateway analysis off the UI loop. The service
// falls back locally, so the message always arrives.
func (m *model) analyzeCmd() tea.Cmd {
	lead := m.lead()
	return func() tea.Msg {
		summary, source := m.app.Gateway.Analyze(m.ctx, lead)
		return analysisMsg{summary: summary, source: source}
	}
}

func (m *model) submitCmd() tea.Cmd {
	lead := m.lead()
	return func() tea.Msg {
		res, source := m.app.Gateway.Submit(m.ctx, lead)
		if m.app.Submissions != nil {
			_ = m.app.Submissions.Create(m.ctx, &repository.SubmissionRecord{
				Reference:    res.ReferenceNumber,
				Source:       source,
				Company:      lead.Contact.Company,
				Email:        lead.Contact.Email,
				Industry:     lead.Answers.Value(questionnaire.QIndustry),
				PackageSize:  lead.Quote.Count,
				TotalSetup:   lead.Quote.TotalSetup,
				MonthlyFinal: lead.Quote.MonthlyFinal,
				Billing:      string(lead.Billing),
			})
		}
		return submittedMsg{reference: res.ReferenceNumber, source: source}
	}
}

// lead snapshots the state for a gateway call.
func (m *model) lead() gateway.Lead {
	var selection []domain.Offering
	for _, name := range m.st.Selected {
		if o, ok := m.app.Catalog.ByName(name); ok {
			selection = append(selection, o)
		}
	}
	return gateway.Lead{
		Language:  m.app.Lang,
		Contact:   m.st.Contact,
		Answers:   m.st.Answers,
		Selection: selection,
		Quote:     m.st.Pricing,
		Billing:   m.st.Billing,
		Summary:   m.st.Summary,
	}
}

func (m *model) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.renderHeader())

	switch {
	case m.resumeForm != nil:
		sections = append(sections, m.resumeForm.View())
	case m.st.Phase == domain.PhaseSelection:
		sections = append(sections, m.renderSelection())
	case m.st.Phase == domain.PhaseGenerating:
		t := textFor(m.app.Lang)
		sections = append(sections, "\n  "+m.spin.View()+" "+dim(t.generating))
	case m.st.Phase == domain.PhaseSummary:
		sections = append(sections, m.renderSummary())
	case m.st.Phase == domain.PhaseConfirmation:
		sections = append(sections, m.renderConfirmation())
	case m.form != nil:
		view := m.form.View()
		if m.st.StepError != "" {
			view += "\n  " + styleRed.Render(m.st.StepError)
		}
		for _, field := range []string{"company", "name", "email", "phone"} {
			if msg, ok := m.st.FieldErrors[field]; ok {
				view += "\n  " + styleRed.Render(field+": "+msg)
			}
		}
		sections = append(sections, view)
	}

	sections = append(sections, m.renderStatusBar())
	return strings.Join(sections, "\n")
}

func (m *model) renderHeader() string {
	t := textFor(m.app.Lang)
	title := styleHeader.Render(t.appTitle)
	crumb := dim(" › " + string(m.st.Phase))
	sep := dim(strings.Repeat("─", max(m.width, 20)))
	return title + crumb + "\n" + sep
}

func (m *model) renderStatusBar() string {
	t := textFor(m.app.Lang)
	var hints []string
	switch m.st.Phase {
	case domain.PhaseSelection:
		hints = []string{t.hintNavigate, t.hintToggle, t.hintBilling, t.hintContinue, t.hintBack}
	case domain.PhaseSummary:
		hints = []string{t.bookHint, t.sendHint, t.hintBack}
	case domain.PhaseQuestionnaire:
		hints = []string{t.hintContinue, t.hintBack}
	}
	for i, h := range hints {
		hints[i] = dim(h)
	}
	return dim(strings.Repeat("─", max(m.width, 20))) + "\n" + strings.Join(hints, "  ")
}
