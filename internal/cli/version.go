package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the released version of cheatnote.
const Version = "3.0.0"

func init() {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("cheatnote v%s\n", Version)
		},
	}

	RootCmd.AddCommand(cmd)
}
