package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cheatnote/cheatnote/internal/csvio"
)

const defaultExportFile = "cheatnotes_export.csv"

func init() {
	cmd := &cobra.Command{
		Use:   "export [FILE]",
		Short: "Export notes to a CSV file",
		Args:  cobra.MaximumNArgs(1),
		Run:   runExport,
	}

	cmd.Flags().StringP("output", "o", "", "Output filename")

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	filename, _ := cmd.Flags().GetString("output")
	if filename == "" && len(args) > 0 {
		filename = args[0]
	}
	if filename == "" {
		filename = defaultExportFile
		renderer().Info("No filename specified, using default: " + defaultExportFile)
	}

	st, _ := openStore()

	f, err := os.Create(filename)
	if err != nil {
		exitErr("export", err)
	}
	if err := csvio.Export(f, st); err != nil {
		f.Close()
		exitErr("export", err)
	}
	if err := f.Close(); err != nil {
		exitErr("export", err)
	}

	renderer().Success(fmt.Sprintf("Exported %d notes to %s", st.Len(), filename))
}
