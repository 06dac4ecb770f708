package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mfriesen/discovery/internal/catalog"
	"github.com/mfriesen/discovery/internal/draft"
	"github.com/mfriesen/discovery/internal/gateway"
	"github.com/mfriesen/discovery/internal/repository"
	"github.com/mfriesen/discovery/internal/wizard"
)

// App bundles the wired collaborators the TUI needs.
type App struct {
	Machine *wizard.Machine
	Catalog *catalog.Catalog
	Keeper  *draft.Keeper
	Gateway *gateway.Service

	// Submissions is the optional local audit log; nil when the store
	// could not be opened.
	Submissions *repository.SQLiteSubmissionRepo

	Lang         string
	IndustryHint string
}

// Run starts the discovery wizard and blocks until the flow finishes or
// the user quits.
func (a *App) Run(ctx context.Context) error {
	m := newModel(ctx, a)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running wizard: %w", err)
	}
	return nil
}
