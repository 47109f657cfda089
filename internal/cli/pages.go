package cli

import (
	"nous-cli/internal/mutate"
	"nous-cli/internal/tree"

	"github.com/spf13/cobra"
)

func newPagesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pages",
		Short: "Manage pages",
	}
	cmd.AddCommand(newPagesListCmd(app))
	cmd.AddCommand(newPagesCreateCmd(app))
	cmd.AddCommand(newPagesShowCmd(app))
	cmd.AddCommand(newPagesRenameCmd(app))
	cmd.AddCommand(newPagesDeleteCmd(app))
	cmd.AddCommand(newPagesMoveCmd(app))
	cmd.AddCommand(newPagesNestCmd(app))
	cmd.AddCommand(newPagesDetachCmd(app))
	cmd.AddCommand(newPagesSetSectionCmd(app))
	cmd.AddCommand(newPagesReorderCmd(app))
	cmd.AddCommand(newPagesArchiveCmd(app))
	cmd.AddCommand(newPagesRestoreCmd(app))
	return cmd
}

func newPagesListCmd(app *App) *cobra.Command {
	var folder, parent string
	var showArchived bool
	var section string
	var unsorted bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pages in a folder or under a parent page (default: notebook root)",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			nb, err := currentNotebookID(app, db)
			if err != nil {
				return writeErr(cmd, err)
			}
			ix := tree.NewIndex(db, nb, tree.Filter{
				ShowArchived: showArchived,
				Section:      sectionFilterFlags(section, unsorted),
			})
			pages := ix.TopLevelPages(refFlag(folder))
			if parent != "" {
				pages = ix.ChildPages(parent)
			}
			return writeOut(cmd, app, map[string]any{
				"notebookId": nb,
				"pages":      pages,
			})
		},
	}

	cmd.Flags().StringVar(&folder, "folder", "", "Folder id")
	cmd.Flags().StringVar(&parent, "parent", "", "Parent page id (overrides --folder)")
	cmd.Flags().BoolVar(&showArchived, "archived", false, "Include archived pages")
	cmd.Flags().StringVar(&section, "section", "", "Only pages in this section")
	cmd.Flags().BoolVar(&unsorted, "unsorted", false, "Only pages with no section")
	return cmd
}

func newPagesCreateCmd(app *App) *cobra.Command {
	var folder, parent, section, body string

	cmd := &cobra.Command{
		Use:   "create <title>",
		Short: "Create a page",
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
			p, err := mutate.CreatePage(s, db, nb, args[0], refFlag(folder), refFlag(parent), refFlag(section))
			if err != nil {
				return writeErr(cmd, err)
			}
			if body != "" {
				if _, err := mutate.SetPageBody(db, p.ID, body); err != nil {
					return writeErr(cmd, err)
				}
			}
			if err := saveDB(app, s, db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, p)
		},
	}

	cmd.Flags().StringVar(&folder, "folder", "", "Folder id")
	cmd.Flags().StringVar(&parent, "parent", "", "Parent page id")
	cmd.Flags().StringVar(&section, "section", "", "Section id")
	cmd.Flags().StringVar(&body, "body", "", "Markdown body")
	return cmd
}

func newPagesShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <page-id>",
		Short: "Show a page with its child pages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			p, ok := db.FindPage(args[0])
			if !ok {
				return writeErr(cmd, mutate.NotFoundError{Kind: "page", ID: args[0]})
			}
			ix := tree.NewIndex(db, p.NotebookID, tree.Filter{ShowArchived: true})
			return writeOut(cmd, app, map[string]any{
				"page":     p,
				"children": ix.ChildPages(p.ID),
			})
		},
	}
}

func newPagesRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <page-id> <title>",
		Short: "Rename a page",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			changed, err := mutate.RenamePage(db, args[0], args[1])
			if err != nil {
				return writeErr(cmd, err)
			}
			if changed {
				if err := saveDB(app, s, db); err != nil {
					return writeErr(cmd, err)
				}
			}
			p, _ := db.FindPage(args[0])
			return writeOut(cmd, app, p)
		},
	}
}

func newPagesDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <page-id>",
		Short: "Delete a page (its child pages move up one level)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if _, err := mutate.DeletePage(db, args[0]); err != nil {
				return writeErr(cmd, err)
			}
			if err := saveDB(app, s, db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"deleted": args[0]})
		},
	}
}

func newPagesMoveCmd(app *App) *cobra.Command {
	var folder string

	cmd := &cobra.Command{
		Use:   "move <page-id>",
		Short: "Move a page into a folder (no --folder: notebook root)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			changed, err := mutate.MovePageToFolder(db, args[0], refFlag(folder))
			if err != nil {
				return writeErr(cmd, err)
			}
			if changed {
				if err := saveDB(app, s, db); err != nil {
					return writeErr(cmd, err)
				}
			}
			p, _ := db.FindPage(args[0])
			return writeOut(cmd, app, p)
		},
	}

	cmd.Flags().StringVar(&folder, "folder", "", "Destination folder id")
	return cmd
}

func newPagesNestCmd(app *App) *cobra.Command {
	var parent string

	cmd := &cobra.Command{
		Use:   "nest <page-id>",
		Short: "Nest a page under a parent page (clears its folder)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if parent == "" {
				return writeErr(cmd, mutate.ValidationError{Msg: "--parent is required"})
			}
			changed, err := mutate.MovePageToParent(db, args[0], &parent)
			if err != nil {
				return writeErr(cmd, err)
			}
			if changed {
				if err := saveDB(app, s, db); err != nil {
					return writeErr(cmd, err)
				}
			}
			p, _ := db.FindPage(args[0])
			return writeOut(cmd, app, p)
		},
	}

	cmd.Flags().StringVar(&parent, "parent", "", "Parent page id")
	return cmd
}

func newPagesDetachCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "detach <page-id>",
		Short: "Detach a nested page (it lands at the top level of its effective folder)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			changed, err := mutate.MovePageToParent(db, args[0], nil)
			if err != nil {
				return writeErr(cmd, err)
			}
			if changed {
				if err := saveDB(app, s, db); err != nil {
					return writeErr(cmd, err)
				}
			}
			p, _ := db.FindPage(args[0])
			return writeOut(cmd, app, p)
		},
	}
}

func newPagesSetSectionCmd(app *App) *cobra.Command {
	var section string
	var clear bool

	cmd := &cobra.Command{
		Use:   "set-section <page-id>",
		Short: "Assign a page to a section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			var target *string
			if !clear {
				target = refFlag(section)
			}
			changed, err := mutate.SetPageSection(db, args[0], target)
			if err != nil {
				return writeErr(cmd, err)
			}
			if changed {
				if err := saveDB(app, s, db); err != nil {
					return writeErr(cmd, err)
				}
			}
			p, _ := db.FindPage(args[0])
			return writeOut(cmd, app, p)
		},
	}

	cmd.Flags().StringVar(&section, "section", "", "Section id")
	cmd.Flags().BoolVar(&clear, "clear", false, "Clear the section")
	return cmd
}

func newPagesReorderCmd(app *App) *cobra.Command {
	var folder, parent string

	cmd := &cobra.Command{
		Use:   "reorder <page-id>...",
		Short: "Set the order of a page sibling group",
		Long: "The argument list must name every page of the sibling group identified by " +
			"--folder/--parent (neither: notebook root), in the desired order. " +
			"List indexes become the new positions.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			nb, err := currentNotebookID(app, db)
			if err != nil {
				return writeErr(cmd, err)
			}
			changed, err := mutate.ReorderPages(db, nb, refFlag(folder), refFlag(parent), args)
			if err != nil {
				return writeErr(cmd, err)
			}
			if changed {
				if err := saveDB(app, s, db); err != nil {
					return writeErr(cmd, err)
				}
			}
			ix := tree.NewIndex(db, nb, tree.Filter{ShowArchived: true})
			pages := ix.TopLevelPages(refFlag(folder))
			if parent != "" {
				pages = ix.ChildPages(parent)
			}
			return writeOut(cmd, app, map[string]any{
				"changed": changed,
				"pages":   pages,
			})
		},
	}

	cmd.Flags().StringVar(&folder, "folder", "", "Folder id of the sibling group")
	cmd.Flags().StringVar(&parent, "parent", "", "Parent page id of the sibling group")
	return cmd
}

func newPagesArchiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "archive <page-id>",
		Short: "Archive a page (moves it into the archive folder)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			changed, err := mutate.ArchivePage(s, db, args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			if changed {
				if err := saveDB(app, s, db); err != nil {
					return writeErr(cmd, err)
				}
			}
			p, _ := db.FindPage(args[0])
			return writeOut(cmd, app, p)
		},
	}
}

func newPagesRestoreCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "restore <page-id>",
		Short: "Restore an archived page to notebook root",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			changed, err := mutate.RestorePage(db, args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			if changed {
				if err := saveDB(app, s, db); err != nil {
					return writeErr(cmd, err)
				}
			}
			p, _ := db.FindPage(args[0])
			return writeOut(cmd, app, p)
		},
	}
}
