package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cheatnote/cheatnote/internal/search"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list [PATTERN]",
		Short: "List and search notes",
		Long:  "List notes, optionally filtered by a content pattern and a tag list. Never modifies the snapshot.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runList,
	}

	cmd.Flags().StringP("search", "s", "", "Search in title, content, and tags")
	cmd.Flags().StringP("tags", "g", "", "Filter by tags (comma-separated, all required)")
	cmd.Flags().BoolP("regex", "r", false, "Treat the pattern as a regular expression")
	cmd.Flags().BoolP("case-insensitive", "i", false, "Case-insensitive matching")
	cmd.Flags().BoolP("exact", "e", false, "Exact whole-field match")
	cmd.Flags().BoolP("word-boundary", "w", false, "Match whole words only (regex mode)")
	cmd.Flags().BoolP("multiline", "m", false, "Multiline regex mode")
	cmd.Flags().BoolP("compact", "c", false, "Compact output format")
	cmd.Flags().BoolP("no-ids", "n", false, "Hide note ids")

	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	opts := search.Options{}
	opts.Pattern, _ = cmd.Flags().GetString("search")
	opts.Tags, _ = cmd.Flags().GetString("tags")
	opts.Regex, _ = cmd.Flags().GetBool("regex")
	opts.CaseInsensitive, _ = cmd.Flags().GetBool("case-insensitive")
	opts.Exact, _ = cmd.Flags().GetBool("exact")
	opts.WordBoundary, _ = cmd.Flags().GetBool("word-boundary")
	opts.Multiline, _ = cmd.Flags().GetBool("multiline")
	compact, _ := cmd.Flags().GetBool("compact")
	noIDs, _ := cmd.Flags().GetBool("no-ids")

	if opts.Pattern == "" && len(args) > 0 {
		opts.Pattern = args[0]
	}

	st, _ := openStore()
	r := renderer()

	found := 0
	notes := st.Notes()
	for i := range notes {
		n := &notes[i]
		if !search.Match(n, &opts) {
			continue
		}
		if compact {
			r.CompactNote(n, !noIDs)
		} else {
			r.FullNote(n, !noIDs)
		}
		found++
	}

	if found == 0 {
		r.Info("No notes found matching the criteria")
		return
	}
	plural := "s"
	if found == 1 {
		plural = ""
	}
	r.Success(fmt.Sprintf("Found %d note%s", found, plural))
}
