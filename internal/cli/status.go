package cli

import (
	"context"

	"nous-cli/internal/gitrepo"

	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show workspace and git status",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			git, err := gitrepo.GetStatus(context.Background(), s.Dir)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"dir":             s.Dir,
				"currentNotebook": db.CurrentNotebookID,
				"notebooks":       len(db.Notebooks),
				"folders":         len(db.Folders),
				"pages":           len(db.Pages),
				"sections":        len(db.Sections),
				"git":             git,
			})
		},
	}
}
