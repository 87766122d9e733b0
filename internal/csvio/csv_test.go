package csvio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cheatnote/cheatnote/internal/store"
)

func TestExportFormat(t *testing.T) {
	st := store.New()
	_, err := st.Add(`He said "hi"`, "line one\nline two", "git,cli")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, st))

	lines := strings.SplitN(buf.String(), "\n", 2)
	assert.Equal(t, "ID,Title,Content,Tags,Created,Modified", lines[0])
	assert.Contains(t, lines[1], `"He said ""hi"""`)
	assert.Contains(t, lines[1], "line one\nline two")
	assert.True(t, strings.HasPrefix(lines[1], "1,"))
}

func TestImportRoundTrip(t *testing.T) {
	src := store.New()
	src.Add("First", "content one", "git")
	src.Add("Second", "multi\nline", "")

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, src))

	dst := store.New()
	res, err := Import(&buf, dst, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 0, res.Skipped)
	require.Equal(t, 2, dst.Len())

	assert.Equal(t, "First", dst.Notes()[0].Title)
	assert.Equal(t, "content one", dst.Notes()[0].Content)
	assert.Equal(t, "git", dst.Notes()[0].Tags)
	assert.Equal(t, "multi\nline", dst.Notes()[1].Content)
}

func TestImportReassignsIDs(t *testing.T) {
	in := `ID,Title,Content,Tags,Created,Modified
999,"Title","Content","",0,0
`
	st := store.New()
	res, err := Import(strings.NewReader(in), st, zerolog.Nop())
	require.NoError(t, err)

	require.Equal(t, 1, res.Imported)
	assert.Equal(t, uint32(1), st.Notes()[0].ID, "file ids are not preserved")
}

func TestImportSkipsHeaderCaseInsensitively(t *testing.T) {
	in := "id,title,content,tags,created,modified\n1,\"A\",\"B\",\"\",0,0\n"

	st := store.New()
	res, err := Import(strings.NewReader(in), st, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Imported)
}

func TestImportSkipsBadRows(t *testing.T) {
	in := strings.Join([]string{
		"ID,Title,Content,Tags,Created,Modified",
		`1,"Good","Content","",0,0`,
		`2,"OnlyTwoFields"`,
		`3,"","MissingTitle","",0,0`,
		`4,"MissingContent","","",0,0`,
		"",
		`5,"Also Good","More","tag",0,0`,
	}, "\n") + "\n"

	st := store.New()
	res, err := Import(strings.NewReader(in), st, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 3, res.Skipped)
	assert.Equal(t, 2, st.Len())
}

func TestImportWithoutHeader(t *testing.T) {
	in := `7,"Title","Content","tag",0,0` + "\n"

	st := store.New()
	res, err := Import(strings.NewReader(in), st, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Imported)
}
