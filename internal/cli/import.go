package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cheatnote/cheatnote/internal/csvio"
	"github.com/cheatnote/cheatnote/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import notes from a CSV file",
		Long:  "Import notes from CSV. Replaces the current notes unless --merge is given. Ids are reassigned by the store.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runImport,
	}

	cmd.Flags().StringP("input", "i", "", "Input filename")
	cmd.Flags().BoolP("merge", "m", false, "Merge with existing notes (default: replace)")

	RootCmd.AddCommand(cmd)
}

func runImport(cmd *cobra.Command, args []string) {
	filename, _ := cmd.Flags().GetString("input")
	merge, _ := cmd.Flags().GetBool("merge")
	if filename == "" && len(args) > 0 {
		filename = args[0]
	}
	if filename == "" {
		exitErr("import", errors.New("input filename is required"))
	}

	f, err := os.Open(filename)
	if err != nil {
		exitErr("import", err)
	}
	defer f.Close()

	st, path := openStore()
	if !merge {
		st = store.New()
	}

	res, err := csvio.Import(f, st, logger())
	if err != nil {
		exitErr("import", err)
	}
	if err := st.Save(path); err != nil {
		exitErr("save", err)
	}

	msg := fmt.Sprintf("Imported %d notes from %s", res.Imported, filename)
	if res.Skipped > 0 {
		msg += fmt.Sprintf(" (%d errors)", res.Skipped)
	}
	renderer().Success(msg)
}
