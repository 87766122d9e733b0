package store

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshotPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "cheatnote.db")
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := snapshotPath(t)

	st := New()
	id1, err := st.Add("Git Status", "git status -s\ngit log", "git,cli")
	require.NoError(t, err)
	_, err = st.Add("Second", "content", "")
	require.NoError(t, err)
	require.NoError(t, st.Delete(id1))

	require.NoError(t, st.Save(path))

	loaded := Load(path, zerolog.Nop())
	assert.Equal(t, st.Len(), loaded.Len())
	assert.Equal(t, st.NextID(), loaded.NextID())

	for _, want := range st.Notes() {
		got, ok := loaded.Get(want.ID)
		require.True(t, ok, "note %d missing after round trip", want.ID)
		assert.Equal(t, want, got)
	}
}

func TestSaveCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "cheatnote.db")

	st := New()
	st.Add("title", "content", "")
	require.NoError(t, st.Save(path))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestSaveFailsOnNonDirectoryComponent(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	st := New()
	st.Add("title", "content", "")
	err := st.Save(filepath.Join(blocker, "cheatnote.db"))
	assert.Error(t, err)
}

func TestSaveFailureLeavesPreviousSnapshot(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced for root")
	}
	path := snapshotPath(t)
	dir := filepath.Dir(path)

	st := New()
	st.Add("original", "content", "")
	require.NoError(t, st.Save(path))

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	// Make the directory read-only so the temp file cannot be created.
	require.NoError(t, os.Chmod(dir, 0o500))
	t.Cleanup(func() { os.Chmod(dir, 0o700) })

	st.Add("second", "content", "")
	require.Error(t, st.Save(path))

	require.NoError(t, os.Chmod(dir, 0o700))
	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after, "failed save must leave the prior snapshot byte-identical")
}

func TestSaveRenameFailureRemovesTemp(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cheatnote.db")
	// A directory at the target path makes the final rename fail after the
	// temp file has been fully written.
	require.NoError(t, os.Mkdir(path, 0o700))

	st := New()
	st.Add("title", "content", "")
	require.Error(t, st.Save(path))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp file must be removed after a failed rename")
	assert.Equal(t, "cheatnote.db", entries[0].Name())
}

func TestSaveLeavesNoTempFileBehind(t *testing.T) {
	path := snapshotPath(t)

	st := New()
	st.Add("title", "content", "")
	require.NoError(t, st.Save(path))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "cheatnote.db", entries[0].Name())
}

func TestLoadMissingFile(t *testing.T) {
	st := Load(snapshotPath(t), zerolog.Nop())

	assert.Equal(t, 0, st.Len())
	assert.Equal(t, uint32(1), st.NextID())
}

func TestLoadTruncatedHeader(t *testing.T) {
	path := snapshotPath(t)
	require.NoError(t, os.WriteFile(path, []byte{1, 2, 3}, 0o600))

	st := Load(path, zerolog.Nop())
	assert.Equal(t, 0, st.Len())
	assert.Equal(t, uint32(1), st.NextID())
}

func TestLoadImplausibleHeader(t *testing.T) {
	path := snapshotPath(t)

	// count beyond MaxNotes
	buf := make([]byte, 12)
	binary.LittleEndian.PutUint64(buf, 2_000_000)
	binary.LittleEndian.PutUint32(buf[8:], 5)
	require.NoError(t, os.WriteFile(path, buf, 0o600))
	st := Load(path, zerolog.Nop())
	assert.Equal(t, 0, st.Len())
	assert.Equal(t, uint32(1), st.NextID())

	// next_id of zero
	binary.LittleEndian.PutUint64(buf, 1)
	binary.LittleEndian.PutUint32(buf[8:], 0)
	require.NoError(t, os.WriteFile(path, buf, 0o600))
	st = Load(path, zerolog.Nop())
	assert.Equal(t, 0, st.Len())
}

func TestLoadEmptySnapshotPreservesNextID(t *testing.T) {
	path := snapshotPath(t)

	st := New()
	st.Add("only", "content", "")
	require.NoError(t, st.Delete(1))
	require.NoError(t, st.Save(path))

	loaded := Load(path, zerolog.Nop())
	assert.Equal(t, 0, loaded.Len())
	assert.Equal(t, uint32(2), loaded.NextID(), "emptied store must not reuse ids")
}

func TestLoadShortRecords(t *testing.T) {
	path := snapshotPath(t)

	st := New()
	st.Add("one", "c", "")
	st.Add("two", "c", "")
	require.NoError(t, st.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data[:len(data)-100], 0o600))

	loaded := Load(path, zerolog.Nop())
	assert.Equal(t, 0, loaded.Len())
	assert.Equal(t, uint32(1), loaded.NextID())
}

func TestLoadKeepsAnomalousRecords(t *testing.T) {
	path := snapshotPath(t)

	st := New()
	st.Add("title", "content", "")
	st.notes[0].ID = 0 // simulate a corrupted id on disk
	require.NoError(t, st.Save(path))

	loaded := Load(path, zerolog.Nop())
	require.Equal(t, 1, loaded.Len())
	assert.Equal(t, "title", loaded.Notes()[0].Title)
}

func TestLoadCapacityHeuristic(t *testing.T) {
	assert.Equal(t, 64, loadCapacity(1))
	assert.Equal(t, 200, loadCapacity(100))
	assert.Equal(t, 1_000_000, loadCapacity(1_000_000))
}

func TestCStringTruncation(t *testing.T) {
	assert.Equal(t, "abc", cString([]byte{'a', 'b', 'c', 0, 'x'}))
	// No terminator anywhere: forced truncation at the bound.
	assert.Equal(t, "abcd", cString([]byte{'a', 'b', 'c', 'd', 'e'}))
}
