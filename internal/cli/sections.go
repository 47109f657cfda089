package cli

import (
	"nous-cli/internal/mutate"
	"nous-cli/internal/tree"

	"github.com/spf13/cobra"
)

func newSectionsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sections",
		Short: "Manage sections",
	}
	cmd.AddCommand(newSectionsListCmd(app))
	cmd.AddCommand(newSectionsCreateCmd(app))
	cmd.AddCommand(newSectionsRenameCmd(app))
	cmd.AddCommand(newSectionsDeleteCmd(app))
	return cmd
}

func newSectionsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List sections",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			nb, err := currentNotebookID(app, db)
			if err != nil {
				return writeErr(cmd, err)
			}
			ix := tree.NewIndex(db, nb, tree.Filter{})
			return writeOut(cmd, app, map[string]any{
				"notebookId": nb,
				"sections":   ix.Sections(),
			})
		},
	}
}

func newSectionsCreateCmd(app *App) *cobra.Command {
	var color string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			nb, err := currentNotebookID(app, db)
			if err != nil {
				return writeErr(cmd, err)
			}
			sec, err := mutate.CreateSection(s, db, nb, args[0], color)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := saveDB(app, s, db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, sec)
		},
	}

	cmd.Flags().StringVar(&color, "color", "", "Display color")
	return cmd
}

func newSectionsRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <section-id> <name>",
		Short: "Rename a section",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			changed, err := mutate.RenameSection(db, args[0], args[1])
			if err != nil {
				return writeErr(cmd, err)
			}
			if changed {
				if err := saveDB(app, s, db); err != nil {
					return writeErr(cmd, err)
				}
			}
			sec, _ := db.FindSection(args[0])
			return writeOut(cmd, app, sec)
		},
	}
}

func newSectionsDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <section-id>",
		Short: "Delete a section (items keep their place, section cleared)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if _, err := mutate.DeleteSection(db, args[0]); err != nil {
				return writeErr(cmd, err)
			}
			if err := saveDB(app, s, db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"deleted": args[0]})
		},
	}
}
