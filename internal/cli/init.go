package cli

import (
	"os"
	"path/filepath"

	"nous-cli/internal/mutate"
	"nous-cli/internal/store"

	"github.com/spf13/cobra"
)

func newInitCmd(app *App) *cobra.Command {
	var notebookName string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a .nous state dir in the current directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := app.Dir
			if dir == "" {
				cwd, err := os.Getwd()
				if err != nil {
					return writeErr(cmd, err)
				}
				dir = filepath.Join(cwd, ".nous")
				app.Dir = dir
			}
			s := store.Store{Dir: dir}
			db, err := s.Load()
			if err != nil {
				return writeErr(cmd, err)
			}
			if notebookName != "" && len(db.Notebooks) == 0 {
				nb, err := mutate.CreateNotebook(s, db, notebookName)
				if err != nil {
					return writeErr(cmd, err)
				}
				if _, err := mutate.EnsureArchiveFolder(s, db, nb.ID); err != nil {
					return writeErr(cmd, err)
				}
			}
			if err := saveDB(app, s, db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"dir":       dir,
				"notebooks": len(db.Notebooks),
			})
		},
	}

	cmd.Flags().StringVar(&notebookName, "notebook-name", "My Notebook", "Name for the first notebook (empty to skip)")
	return cmd
}
