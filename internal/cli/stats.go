package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show snapshot statistics",
		Run:   runStats,
	}

	RootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) {
	st, path := openStore()
	r := renderer()

	if st.Len() == 0 {
		r.Info("No notes in database")
		return
	}

	notes := st.Notes()
	var totalChars, totalLines int
	oldest, newest := notes[0].CreatedAt, notes[0].CreatedAt
	for i := range notes {
		totalChars += len(notes[i].Content)
		totalLines += strings.Count(notes[i].Content, "\n")
		if notes[i].Content != "" {
			totalLines++
		}
		if notes[i].CreatedAt < oldest {
			oldest = notes[i].CreatedAt
		}
		if notes[i].CreatedAt > newest {
			newest = notes[i].CreatedAt
		}
	}

	var sizeKB float64
	if fi, err := os.Stat(path); err == nil {
		sizeKB = float64(fi.Size()) / 1024.0
	}

	fmt.Println("CheatNote Statistics")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("Total Notes:      %d\n", st.Len())
	fmt.Printf("Total Characters: %d\n", totalChars)
	fmt.Printf("Total Lines:      %d\n", totalLines)
	fmt.Printf("Avg Chars/Note:   %.1f\n", float64(totalChars)/float64(st.Len()))
	fmt.Printf("Oldest Note:      %s\n", statsTime(oldest))
	fmt.Printf("Newest Note:      %s\n", statsTime(newest))
	fmt.Printf("Snapshot Size:    %.2f KB\n", sizeKB)
}

func statsTime(unix int64) string {
	if unix <= 0 {
		return "Invalid date"
	}
	return time.Unix(unix, 0).Format("2006-01-02 15:04")
}
