// Package teatest drives bubbletea models synchronously in tests. It
// replaces tea.Program by calling Update directly and draining returned
// Cmds, so wizard flows can be exercised without goroutines or timers.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxDrainDepth caps command draining so a misbehaving model cannot loop
// the test forever.
const maxDrainDepth = 100

// cmdTimeout separates real Cmds (message factories, store writes, local
// HTTP calls) from cursor blink Cmds that park on a ~530ms timer.
const cmdTimeout = 250 * time.Millisecond

// Driver feeds messages to a tea.Model and drains every resulting Cmd
// before returning, so each Send leaves the model in a settled state.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once tea.QuitMsg is seen. The real runtime
	// intercepts that message, so the driver tracks it itself.
	Quitting bool
}

func New(t *testing.T, model tea.Model) *Driver {
	t.Helper()
	return &Driver{T: t, Model: model}
}

// Start applies an initial window size and drains the model's Init
// command.
func (d *Driver) Start(width, height int) {
	d.T.Helper()
	updated, _ := d.Model.Update(tea.WindowSizeMsg{Width: width, Height: height})
	d.Model = updated
	d.drain(d.Model.Init(), 0)
}

// Send dispatches one message and drains all follow-up Cmds.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	d.drain(cmd, 0)
}

// RunCmd drains a command obtained outside Update, feeding any produced
// messages back through the model.
func (d *Driver) RunCmd(cmd tea.Cmd) {
	d.T.Helper()
	d.drain(cmd, 0)
}

func (d *Driver) Press(r rune) { d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}) }
func (d *Driver) PressEnter()  { d.Send(tea.KeyMsg{Type: tea.KeyEnter}) }
func (d *Driver) PressTab()    { d.Send(tea.KeyMsg{Type: tea.KeyTab}) }
func (d *Driver) PressEsc()    { d.Send(tea.KeyMsg{Type: tea.KeyEsc}) }
func (d *Driver) PressSpace()  { d.Send(tea.KeyMsg{Type: tea.KeySpace}) }
func (d *Driver) PressUp()     { d.Send(tea.KeyMsg{Type: tea.KeyUp}) }
func (d *Driver) PressDown()   { d.Send(tea.KeyMsg{Type: tea.KeyDown}) }

// Type sends a string rune by rune.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.Press(r)
	}
}

// View returns the model's current rendering.
func (d *Driver) View() string { return d.Model.View() }

func (d *Driver) drain(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= maxDrainDepth {
		d.T.Logf("teatest: drain depth limit (%d) reached", maxDrainDepth)
		return
	}

	msg := runWithTimeout(cmd)
	if msg == nil || isCursorBlink(msg) {
		return
	}

	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, sub := range batch {
			if sub != nil {
				d.drain(sub, depth+1)
			}
		}
		return
	}

	if _, quit := msg.(tea.QuitMsg); quit {
		d.Quitting = true
		updated, _ := d.Model.Update(msg)
		d.Model = updated
		return
	}

	updated, next := d.Model.Update(msg)
	d.Model = updated
	d.drain(next, depth+1)
}

// runWithTimeout executes a Cmd in a goroutine and abandons it when it
// blocks longer than cmdTimeout.
func runWithTimeout(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}

// isCursorBlink matches the unexported blink message types from
// bubbles/cursor, which chain into blocking timer Cmds.
func isCursorBlink(msg tea.Msg) bool {
	t := fmt.Sprintf("%T", msg)
	return strings.Contains(t, "Blink") || strings.Contains(t, "blink")
}
