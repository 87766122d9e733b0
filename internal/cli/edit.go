package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/cheatnote/cheatnote/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit an existing note",
		Long:  "Edit a note by id. Omitted fields are unchanged; --tags \"\" clears the tags.",
		Args:  cobra.ExactArgs(1),
		Run:   runEdit,
	}

	cmd.Flags().StringP("title", "t", "", "New title")
	cmd.Flags().StringP("content", "c", "", "New content")
	cmd.Flags().StringP("tags", "g", "", "New tags (empty string clears)")

	RootCmd.AddCommand(cmd)
}

func runEdit(cmd *cobra.Command, args []string) {
	id, err := parseID(args[0])
	if err != nil {
		exitErr("edit", err)
	}

	p := store.EditParams{}
	p.Title, _ = cmd.Flags().GetString("title")
	p.Content, _ = cmd.Flags().GetString("content")
	if cmd.Flags().Changed("tags") {
		v, _ := cmd.Flags().GetString("tags")
		p.Tags = &v
	}

	if p.Title == "" && p.Content == "" && p.Tags == nil {
		exitErr("edit", errors.New("at least one of --title, --content, or --tags is required"))
	}

	st, path := openStore()
	if err := st.Edit(id, p); err != nil {
		exitErr("edit", err)
	}
	if err := st.Save(path); err != nil {
		exitErr("save", err)
	}
	renderer().Success("Note updated")
}
