package cli

import (
	"nous-cli/internal/model"
	"nous-cli/internal/mutate"
	"nous-cli/internal/tree"

	"github.com/spf13/cobra"
)

func newFoldersCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "folders",
		Short: "Manage folders",
	}
	cmd.AddCommand(newFoldersListCmd(app))
	cmd.AddCommand(newFoldersCreateCmd(app))
	cmd.AddCommand(newFoldersRenameCmd(app))
	cmd.AddCommand(newFoldersDeleteCmd(app))
	cmd.AddCommand(newFoldersSetSectionCmd(app))
	cmd.AddCommand(newFoldersReorderCmd(app))
	return cmd
}

// refFlag turns a flag value into a nullable reference: unset => nil.
func refFlag(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func newFoldersListCmd(app *App) *cobra.Command {
	var parent string
	var showArchived bool
	var section string
	var unsorted bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List folders under a parent (default: notebook root)",
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
			return writeOut(cmd, app, map[string]any{
				"notebookId": nb,
				"folders":    ix.ChildFolders(refFlag(parent)),
			})
		},
	}

	cmd.Flags().StringVar(&parent, "parent", "", "Parent folder id")
	cmd.Flags().BoolVar(&showArchived, "archived", false, "Include archived folders")
	cmd.Flags().StringVar(&section, "section", "", "Only folders in this section")
	cmd.Flags().BoolVar(&unsorted, "unsorted", false, "Only folders with no section")
	return cmd
}

func newFoldersCreateCmd(app *App) *cobra.Command {
	var parent, section string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a folder",
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
			f, err := mutate.CreateFolder(s, db, nb, args[0], refFlag(parent), refFlag(section))
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := saveDB(app, s, db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, f)
		},
	}

	cmd.Flags().StringVar(&parent, "parent", "", "Parent folder id")
	cmd.Flags().StringVar(&section, "section", "", "Section id")
	return cmd
}

func newFoldersRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <folder-id> <name>",
		Short: "Rename a folder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			changed, err := mutate.RenameFolder(db, args[0], args[1])
			if err != nil {
				return writeErr(cmd, err)
			}
			if changed {
				if err := saveDB(app, s, db); err != nil {
					return writeErr(cmd, err)
				}
			}
			f, _ := db.FindFolder(args[0])
			return writeOut(cmd, app, f)
		},
	}
}

func newFoldersDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <folder-id>",
		Short: "Delete a folder (its pages move to the folder's parent)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if _, err := mutate.DeleteFolder(db, args[0]); err != nil {
				return writeErr(cmd, err)
			}
			if err := saveDB(app, s, db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"deleted": args[0]})
		},
	}
}

func newFoldersSetSectionCmd(app *App) *cobra.Command {
	var section string
	var clear bool

	cmd := &cobra.Command{
		Use:   "set-section <folder-id>",
		Short: "Assign a folder (and its pages) to a section",
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
			changed, err := mutate.SetFolderSection(db, args[0], target)
			if err != nil {
				return writeErr(cmd, err)
			}
			if changed {
				if err := saveDB(app, s, db); err != nil {
					return writeErr(cmd, err)
				}
			}
			f, _ := db.FindFolder(args[0])
			return writeOut(cmd, app, f)
		},
	}

	cmd.Flags().StringVar(&section, "section", "", "Section id")
	cmd.Flags().BoolVar(&clear, "clear", false, "Clear the section")
	return cmd
}

func newFoldersReorderCmd(app *App) *cobra.Command {
	var parent string

	cmd := &cobra.Command{
		Use:   "reorder <folder-id>...",
		Short: "Set the order of the folders under a parent",
		Long: "The argument list must name every standard folder of the sibling group, " +
			"in the desired order. The archive folder always sorts last and is not part of the group.",
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
			changed, err := mutate.ReorderFolders(db, nb, refFlag(parent), args)
			if err != nil {
				return writeErr(cmd, err)
			}
			if changed {
				if err := saveDB(app, s, db); err != nil {
					return writeErr(cmd, err)
				}
			}
			ix := tree.NewIndex(db, nb, tree.Filter{ShowArchived: true})
			return writeOut(cmd, app, map[string]any{
				"changed": changed,
				"folders": ix.ChildFolders(refFlag(parent)),
			})
		},
	}

	cmd.Flags().StringVar(&parent, "parent", "", "Parent folder id")
	return cmd
}

// sectionFilterFlags maps the --section/--unsorted flag pair onto the
// three-state filter: neither set means no filter at all.
func sectionFilterFlags(section string, unsorted bool) model.SectionFilter {
	switch {
	case unsorted:
		return model.UnsortedOnly()
	case section != "":
		return model.SectionOnly(section)
	default:
		return model.NoSectionFilter()
	}
}
