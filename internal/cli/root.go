package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"nous-cli/internal/format"
	"nous-cli/internal/gitrepo"
	"nous-cli/internal/store"
	"nous-cli/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	Dir        string
	Notebook   string
	PrettyJSON bool
	Format     string

	mutated bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "nous",
		Short:        "nous (local-first) notebook CLI + TUI",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  nous

  # Scriptable commands
  nous pages list
  nous pages move pg-abc --folder fld-xyz
  nous pages reorder pg-b pg-c pg-a
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		// Keep git-backed workspaces committed even when driven by scripts.
		// The TUI commits on its own after each applied mutation.
		if !app.mutated || !gitrepo.AutoCommitEnabled() {
			return nil
		}
		msg := fmt.Sprintf("nous: %s", strings.TrimSpace(strings.TrimPrefix(cmd.CommandPath(), "nous ")))
		if _, err := gitrepo.CommitState(context.Background(), app.Dir, msg); err != nil {
			// Best-effort: report, never fail the command that already ran.
			fmt.Fprintf(cmd.ErrOrStderr(), "git auto-commit failed: %v\n", err)
		}
		return nil
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("NOUS_DIR", ""), "Path to the .nous state dir (default: discovered upward from the CWD)")
	cmd.PersistentFlags().StringVar(&app.Notebook, "notebook", envOr("NOUS_NOTEBOOK", ""), "Notebook id (default: the current notebook)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("NOUS_FORMAT", "json"), "Output format (json|edn)")

	cmd.AddCommand(newInitCmd(app))
	cmd.AddCommand(newStatusCmd(app))
	cmd.AddCommand(newNotebooksCmd(app))
	cmd.AddCommand(newFoldersCmd(app))
	cmd.AddCommand(newPagesCmd(app))
	cmd.AddCommand(newSectionsCmd(app))

	return cmd
}

func runTUI(app *App) error {
	db, s, err := loadDB(app)
	if err != nil {
		return err
	}
	return tui.Run(s, db)
}

func loadDB(app *App) (*store.DB, store.Store, error) {
	dir := app.Dir
	if dir == "" {
		d, err := store.DefaultDir()
		if err != nil {
			return nil, store.Store{}, err
		}
		dir = d
		app.Dir = dir
	}
	s := store.Store{Dir: dir}
	db, err := s.Load()
	if err != nil {
		return nil, s, err
	}
	return db, s, nil
}

func saveDB(app *App, s store.Store, db *store.DB) error {
	if err := s.Save(db); err != nil {
		return err
	}
	app.mutated = true
	return nil
}

func currentNotebookID(app *App, db *store.DB) (string, error) {
	if app.Notebook != "" {
		if _, ok := db.FindNotebook(app.Notebook); !ok {
			return "", fmt.Errorf("notebook not found: %s", app.Notebook)
		}
		return app.Notebook, nil
	}
	if db.CurrentNotebookID != "" {
		return db.CurrentNotebookID, nil
	}
	return "", errors.New("no current notebook; run `nous notebooks create <name>` or `nous notebooks use <notebook-id>` (or pass --notebook)")
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
