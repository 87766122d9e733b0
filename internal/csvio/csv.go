// Package csvio implements CSV export and import of the note store.
//
// The exchange format is a header line `ID,Title,Content,Tags,Created,Modified`
// followed by one row per note: a bare numeric id, the three text fields
// double-quoted with embedded quotes doubled, and two bare Unix timestamps.
// Import re-derives ids through the store's normal Add path; ids in the file
// are not preserved.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/cheatnote/cheatnote/internal/store"
)

// Export writes every note in st to w.
func Export(w io.Writer, st *store.Store) error {
	if _, err := io.WriteString(w, "ID,Title,Content,Tags,Created,Modified\n"); err != nil {
		return fmt.Errorf("write export header: %w", err)
	}
	for _, n := range st.Notes() {
		_, err := fmt.Fprintf(w, "%d,%s,%s,%s,%d,%d\n",
			n.ID, quote(n.Title), quote(n.Content), quote(n.Tags),
			n.CreatedAt, n.ModifiedAt)
		if err != nil {
			return fmt.Errorf("write export row: %w", err)
		}
	}
	return nil
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// Result summarizes an import: how many rows became notes and how many were
// skipped as recoverable errors.
type Result struct {
	Imported int
	Skipped  int
}

// Import reads CSV rows from r and adds them to st. A recognized header line
// is skipped case-insensitively, blank lines are ignored, and any row with
// too few fields, an empty title or content, or a parse error is skipped,
// counted, and reported through log. The store decides each note's id. The
// only non-recoverable failure is a full store.
func Import(r io.Reader, st *store.Store, log zerolog.Logger) (Result, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var res Result
	line := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			log.Warn().Int("line", line).Err(err).Msg("skipping malformed line")
			res.Skipped++
			continue
		}
		if line == 1 && isHeader(rec) {
			continue
		}
		if len(rec) < 3 {
			log.Warn().Int("line", line).Msg("skipping line with too few fields")
			res.Skipped++
			continue
		}

		title, content := rec[1], rec[2]
		var tags string
		if len(rec) > 3 {
			tags = rec[3]
		}
		if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
			log.Warn().Int("line", line).Msg("skipping line with missing title or content")
			res.Skipped++
			continue
		}

		if _, err := st.Add(title, content, tags); err != nil {
			if errors.Is(err, store.ErrStoreFull) {
				return res, err
			}
			log.Warn().Int("line", line).Err(err).Msg("skipping line that failed to import")
			res.Skipped++
			continue
		}
		res.Imported++
	}
	return res, nil
}

func isHeader(rec []string) bool {
	return len(rec) >= 3 &&
		strings.EqualFold(strings.TrimSpace(rec[0]), "id") &&
		strings.EqualFold(strings.TrimSpace(rec[1]), "title") &&
		strings.EqualFold(strings.TrimSpace(rec[2]), "content")
}
