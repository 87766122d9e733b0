package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		Run:   runDelete,
	}

	RootCmd.AddCommand(cmd)
}

func runDelete(cmd *cobra.Command, args []string) {
	id, err := parseID(args[0])
	if err != nil {
		exitErr("delete", err)
	}

	st, path := openStore()
	if err := st.Delete(id); err != nil {
		exitErr("delete", err)
	}
	if err := st.Save(path); err != nil {
		exitErr("save", err)
	}
	renderer().Success("Note deleted")
}
