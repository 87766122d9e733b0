package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "add [TITLE] [CONTENT] [TAGS]",
		Short: "Add a new note",
		Long:  "Add a new note. Title and content are required, via flags or positional args.",
		Args:  cobra.MaximumNArgs(3),
		Run:   runAdd,
	}

	cmd.Flags().StringP("title", "t", "", "Note title")
	cmd.Flags().StringP("content", "c", "", "Note content")
	cmd.Flags().StringP("tags", "g", "", "Comma-separated tags")

	RootCmd.AddCommand(cmd)
}

func runAdd(cmd *cobra.Command, args []string) {
	title, _ := cmd.Flags().GetString("title")
	content, _ := cmd.Flags().GetString("content")
	tags, _ := cmd.Flags().GetString("tags")

	// Positional fallback after flags.
	pos := 0
	if title == "" && pos < len(args) {
		title = args[pos]
		pos++
	}
	if content == "" && pos < len(args) {
		content = args[pos]
		pos++
	}
	if tags == "" && pos < len(args) {
		tags = args[pos]
	}

	st, path := openStore()
	id, err := st.Add(title, content, tags)
	if err != nil {
		exitErr("add", err)
	}
	if err := st.Save(path); err != nil {
		exitErr("save", err)
	}
	renderer().Success(fmt.Sprintf("Note added with ID %d", id))
}
