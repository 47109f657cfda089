package cli

import (
	"nous-cli/internal/mutate"

	"github.com/spf13/cobra"
)

func newNotebooksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notebooks",
		Short: "Manage notebooks",
	}
	cmd.AddCommand(newNotebooksListCmd(app))
	cmd.AddCommand(newNotebooksCreateCmd(app))
	cmd.AddCommand(newNotebooksUseCmd(app))
	cmd.AddCommand(newNotebooksRenameCmd(app))
	cmd.AddCommand(newNotebooksDeleteCmd(app))
	return cmd
}

func newNotebooksListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List notebooks",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"current":   db.CurrentNotebookID,
				"notebooks": db.Notebooks,
			})
		},
	}
}

func newNotebooksCreateCmd(app *App) *cobra.Command {
	var use bool

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a notebook (with its archive folder)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			nb, err := mutate.CreateNotebook(s, db, args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			if _, err := mutate.EnsureArchiveFolder(s, db, nb.ID); err != nil {
				return writeErr(cmd, err)
			}
			if use {
				if _, err := mutate.UseNotebook(db, nb.ID); err != nil {
					return writeErr(cmd, err)
				}
			}
			if err := saveDB(app, s, db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, nb)
		},
	}

	cmd.Flags().BoolVar(&use, "use", false, "Make it the current notebook")
	return cmd
}

func newNotebooksUseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "use <notebook-id>",
		Short: "Set the current notebook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			changed, err := mutate.UseNotebook(db, args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			if changed {
				if err := saveDB(app, s, db); err != nil {
					return writeErr(cmd, err)
				}
			}
			return writeOut(cmd, app, map[string]any{"current": db.CurrentNotebookID, "changed": changed})
		},
	}
}

func newNotebooksRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <notebook-id> <name>",
		Short: "Rename a notebook",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			changed, err := mutate.RenameNotebook(db, args[0], args[1])
			if err != nil {
				return writeErr(cmd, err)
			}
			if changed {
				if err := saveDB(app, s, db); err != nil {
					return writeErr(cmd, err)
				}
			}
			nb, _ := db.FindNotebook(args[0])
			return writeOut(cmd, app, nb)
		},
	}
}

func newNotebooksDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <notebook-id>",
		Short: "Delete a notebook and everything in it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if _, err := mutate.DeleteNotebook(db, args[0]); err != nil {
				return writeErr(cmd, err)
			}
			if err := saveDB(app, s, db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"deleted": args[0]})
		},
	}
}
