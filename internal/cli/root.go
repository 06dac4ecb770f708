package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/mfriesen/discovery/internal/catalog"
	"github.com/mfriesen/discovery/internal/db"
	"github.com/mfriesen/discovery/internal/draft"
	"github.com/mfriesen/discovery/internal/gateway"
	"github.com/mfriesen/discovery/internal/repository"
	"github.com/mfriesen/discovery/internal/wizard"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the top-level "discovery" command. Running it with
// no subcommand starts the wizard.
func NewRootCmd() *cobra.Command {
	var (
		lang     string
		industry string
		store    string
		endpoint string
		reset    bool
	)

	root := &cobra.Command{
		Use:   "discovery",
		Short: "Interactive discovery wizard for AI answering-service packages",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isInteractive() {
				return errors.New("the wizard needs an interactive terminal")
			}

			keeper, submissions, cleanup := openStore(storePath(store))
			defer cleanup()

			if reset {
				if err := keeper.Discard(cmd.Context()); err != nil {
					return fmt.Errorf("discarding draft: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "saved session discarded")
				return nil
			}

			cfg := gateway.LoadConfig()
			if endpoint != "" {
				cfg.Endpoint = endpoint
			}

			cat := catalog.Builtin()
			app := &App{
				Machine:      wizard.NewMachine(cat, catalog.DefaultPricingConfig()),
				Catalog:      cat,
				Keeper:       keeper,
				Gateway:      gateway.NewService(gateway.NewClient(cfg)),
				Submissions:  submissions,
				Lang:         pickLang(lang),
				IndustryHint: cat.MatchIndustry(industry),
			}
			return app.Run(cmd.Context())
		},
	}

	root.Flags().StringVar(&lang, "lang", "", "display language (en, de)")
	root.Flags().StringVar(&industry, "industry", "", "pre-select an industry")
	root.Flags().StringVar(&store, "store", "", "path to the local store database")
	root.Flags().StringVar(&endpoint, "endpoint", "", "submission gateway URL")
	root.Flags().BoolVar(&reset, "reset", false, "discard the saved session and exit")

	root.AddCommand(newSubmissionsCmd(&store))
	return root
}

// newSubmissionsCmd lists the most recent locally recorded submissions.
func newSubmissionsCmd(store *string) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "submissions",
		Short: "List recent local submission records",
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := db.OpenDB(storePath(*store))
			if err != nil {
				return fmt.Errorf("opening store: %w", err)
			}
			defer database.Close()

			records, err := repository.NewSQLiteSubmissionRepo(database).ListRecent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("listing submissions: %w", err)
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no submissions recorded yet")
				return nil
			}
			for _, r := range records {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %-12s %-8s %-30s %d pkg  %s/mo  %s\n",
					r.CreatedAt.Format("2006-01-02 15:04"),
					r.Reference,
					r.Source,
					r.Company,
					r.PackageSize,
					catalog.FormatEUR(r.MonthlyFinal),
					r.Billing,
				)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum records to show")
	return cmd
}

// openStore opens the SQLite-backed store, falling back to an in-memory
// store when the database cannot be opened. Persistence is a convenience,
// never a blocker.
func openStore(path string) (*draft.Keeper, *repository.SQLiteSubmissionRepo, func()) {
	database, err := db.OpenDB(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: store unavailable (%v), continuing without persistence\n", err)
		return draft.NewKeeper(draft.NewMemoryStore()), nil, func() {}
	}
	keeper := draft.NewKeeper(repository.NewSQLiteKVStore(database))
	return keeper, repository.NewSQLiteSubmissionRepo(database), func() { database.Close() }
}

func storePath(flag string) string {
	if flag != "" {
		return flag
	}
	if env := os.Getenv("DISCOVERY_STORE"); env != "" {
		return env
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "discovery.db"
	}
	return filepath.Join(home, ".discovery", "discovery.db")
}

func pickLang(flag string) string {
	lang := flag
	if lang == "" {
		lang = os.Getenv("DISCOVERY_LANG")
	}
	if _, ok := texts[lang]; !ok {
		return "en"
	}
	return lang
}

func isInteractive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}
