package store

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/cheatnote/cheatnote/internal/model"
)

// On-disk snapshot layout, packed little-endian:
//
//	count    uint64
//	next_id  uint32
//	count x noteRecord
//
// Text buffers are fixed-size and NUL-terminated. The layout is the same on
// every platform Go targets.
const (
	titleBufLen   = model.MaxTitleLen + 1
	contentBufLen = model.MaxContentLen + 1
	tagsBufLen    = model.MaxTagsLen + 1
)

type snapshotHeader struct {
	Count  uint64
	NextID uint32
}

type noteRecord struct {
	ID         uint32
	Title      [titleBufLen]byte
	Content    [contentBufLen]byte
	Tags       [tagsBufLen]byte
	CreatedAt  int64
	ModifiedAt int64
}

func encodeRecord(n *model.Note) noteRecord {
	var r noteRecord
	r.ID = n.ID
	putCString(r.Title[:], n.Title)
	putCString(r.Content[:], n.Content)
	putCString(r.Tags[:], n.Tags)
	r.CreatedAt = n.CreatedAt
	r.ModifiedAt = n.ModifiedAt
	return r
}

func (r *noteRecord) decode() model.Note {
	return model.Note{
		ID:         r.ID,
		Title:      cString(r.Title[:]),
		Content:    cString(r.Content[:]),
		Tags:       cString(r.Tags[:]),
		CreatedAt:  r.CreatedAt,
		ModifiedAt: r.ModifiedAt,
	}
}

// putCString copies s into dst, truncating so the final byte is always a NUL
// terminator.
func putCString(dst []byte, s string) {
	n := copy(dst[:len(dst)-1], s)
	dst[n] = 0
}

// cString returns the bytes up to the first NUL. A buffer with no NUL at all
// is truncated at its bound.
func cString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return string(b[:i])
	}
	return string(b[:len(b)-1])
}

// Save serializes the whole store to path, replacing any previous snapshot
// atomically: the data is written to a temporary file in the same directory
// and renamed over the target only after a successful sync and close. On any
// failure the temporary file is removed and the previous snapshot is left
// untouched. A Save error is fatal to the operation that triggered it.
func (s *Store) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create snapshot directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".cheatnote-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	hdr := snapshotHeader{Count: uint64(len(s.notes)), NextID: s.nextID}
	if err := binary.Write(w, binary.LittleEndian, hdr); err != nil {
		tmp.Close()
		return fmt.Errorf("write snapshot header: %w", err)
	}
	for i := range s.notes {
		rec := encodeRecord(&s.notes[i])
		if err := binary.Write(w, binary.LittleEndian, &rec); err != nil {
			tmp.Close()
			return fmt.Errorf("write snapshot records: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("flush snapshot: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp snapshot: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o600); err != nil {
		return fmt.Errorf("chmod temp snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace snapshot %s: %w", path, err)
	}
	return nil
}

// Load reads a snapshot from path. A missing file yields a fresh empty
// store. Corruption of any kind — unreadable header, implausible header
// values, a short record read — is recovered locally: the problem is logged
// and a fresh empty store is returned, never an error. An empty snapshot
// preserves the stored next_id so a previously emptied store does not reuse
// ids.
func Load(path string, log zerolog.Logger) *Store {
	f, err := os.Open(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Warn().Err(err).Str("path", path).Msg("cannot open snapshot, starting fresh")
		}
		return New()
	}
	defer f.Close()

	r := bufio.NewReaderSize(f, 64*1024)

	var hdr snapshotHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		log.Warn().Str("path", path).Msg("snapshot header corrupted, starting fresh")
		return New()
	}
	if hdr.Count > model.MaxNotes || hdr.NextID == 0 {
		log.Warn().
			Uint64("count", hdr.Count).
			Uint32("next_id", hdr.NextID).
			Msg("snapshot header implausible, starting fresh")
		return New()
	}
	if hdr.Count == 0 {
		st := New()
		st.nextID = hdr.NextID
		return st
	}

	st := NewWithCapacity(loadCapacity(int(hdr.Count)))
	st.nextID = hdr.NextID
	for i := uint64(0); i < hdr.Count; i++ {
		var rec noteRecord
		if err := binary.Read(r, binary.LittleEndian, &rec); err != nil {
			log.Warn().Str("path", path).Msg("snapshot records truncated, starting fresh")
			return New()
		}
		n := rec.decode()
		if n.ID == 0 || n.CreatedAt < 0 || n.ModifiedAt < 0 {
			// Recoverable anomaly: keep the record, report it.
			log.Warn().Uint32("id", n.ID).Msg("possibly corrupted record preserved")
		}
		st.notes = append(st.notes, n)
	}
	return st
}

// loadCapacity sizes the allocation for count loaded notes, growing past the
// exact count to amortize the next few inserts.
func loadCapacity(count int) int {
	c := count
	if c < model.InitialCapacity {
		c = model.InitialCapacity
	}
	if g := count * model.GrowthFactor; g > c && g <= model.MaxNotes {
		c = g
	}
	return c
}
