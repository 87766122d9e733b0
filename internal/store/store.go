// Package store implements the in-memory note database and its binary
// snapshot persistence.
package store

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/cheatnote/cheatnote/internal/model"
)

// Validation failures leave the store untouched. ErrStoreFull means the store
// cannot grow any further; callers must treat it as fatal.
var (
	ErrEmptyField   = errors.New("title and content must not be empty")
	ErrFieldTooLong = errors.New("field exceeds maximum length")
	ErrInvalidID    = errors.New("invalid note id")
	ErrNotFound     = errors.New("note not found")
	ErrStoreFull    = errors.New("maximum number of notes reached")
)

// Store owns the note collection, the id counter, and the capacity.
//
// Notes keep insertion order only until the first Delete; Delete moves the
// last note into the vacated slot, so afterwards the order is unspecified.
type Store struct {
	notes    []model.Note
	capacity int
	nextID   uint32
}

// New returns an empty store with the default initial capacity.
func New() *Store {
	return NewWithCapacity(model.InitialCapacity)
}

// NewWithCapacity returns an empty store preallocated for n notes.
func NewWithCapacity(n int) *Store {
	if n < 1 {
		n = 1
	}
	return &Store{
		notes:    make([]model.Note, 0, n),
		capacity: n,
		nextID:   1,
	}
}

// Len returns the number of live notes.
func (s *Store) Len() int { return len(s.notes) }

// Cap returns the current allocated capacity.
func (s *Store) Cap() int { return s.capacity }

// NextID returns the id the next Add will assign.
func (s *Store) NextID() uint32 { return s.nextID }

// Notes returns the live notes. The slice is shared with the store and must
// not be mutated by callers.
func (s *Store) Notes() []model.Note { return s.notes }

// Get returns a copy of the note with the given id.
func (s *Store) Get(id uint32) (model.Note, bool) {
	for i := range s.notes {
		if s.notes[i].ID == id {
			return s.notes[i], true
		}
	}
	return model.Note{}, false
}

// Add validates and appends a new note, returning its assigned id. Title and
// content are required; tags may be empty. Leading and trailing whitespace is
// trimmed after the bounds check.
//
// The id counter wraps back to 1 after 2^32-1 assignments without checking
// live notes for collisions; ids are not guaranteed unique across a full
// wrap.
func (s *Store) Add(title, content, tags string) (uint32, error) {
	if title == "" || content == "" {
		return 0, ErrEmptyField
	}
	if len(title) > model.MaxTitleLen || len(content) > model.MaxContentLen {
		return 0, ErrFieldTooLong
	}
	if len(tags) > model.MaxTagsLen {
		return 0, ErrFieldTooLong
	}
	if len(s.notes) >= model.MaxNotes {
		return 0, ErrStoreFull
	}
	if err := s.ensureCapacity(); err != nil {
		return 0, err
	}

	id := s.nextID
	s.nextID++
	if s.nextID == 0 { // wrapped
		s.nextID = 1
	}

	now := time.Now().Unix()
	s.notes = append(s.notes, model.Note{
		ID:         id,
		Title:      strings.TrimSpace(title),
		Content:    strings.TrimSpace(content),
		Tags:       strings.TrimSpace(tags),
		CreatedAt:  now,
		ModifiedAt: now,
	})
	return id, nil
}

// EditParams selects the fields an Edit replaces. An empty Title or Content
// leaves that field unchanged. Tags is the only field distinguishing absent
// from empty: nil leaves tags unchanged, an empty string clears them.
type EditParams struct {
	Title   string
	Content string
	Tags    *string
}

// Edit updates the note with the given id. Every provided field is validated
// before any mutation, so a rejected edit never commits partially. A found
// note always gets a fresh ModifiedAt.
func (s *Store) Edit(id uint32, p EditParams) error {
	if id == 0 {
		return ErrInvalidID
	}
	if len(p.Title) > model.MaxTitleLen || len(p.Content) > model.MaxContentLen {
		return ErrFieldTooLong
	}
	if p.Tags != nil && len(*p.Tags) > model.MaxTagsLen {
		return ErrFieldTooLong
	}

	for i := range s.notes {
		if s.notes[i].ID != id {
			continue
		}
		n := &s.notes[i]
		if p.Title != "" {
			n.Title = strings.TrimSpace(p.Title)
		}
		if p.Content != "" {
			n.Content = strings.TrimSpace(p.Content)
		}
		if p.Tags != nil {
			n.Tags = strings.TrimSpace(*p.Tags)
		}
		n.ModifiedAt = time.Now().Unix()
		return nil
	}
	return ErrNotFound
}

// Delete removes the note with the given id in O(1) by moving the last note
// into its slot and zeroing the vacated slot. Ordering is not preserved.
func (s *Store) Delete(id uint32) error {
	if id == 0 {
		return ErrInvalidID
	}
	for i := range s.notes {
		if s.notes[i].ID != id {
			continue
		}
		last := len(s.notes) - 1
		s.notes[i] = s.notes[last]
		s.notes[last] = model.Note{}
		s.notes = s.notes[:last]
		return nil
	}
	return ErrNotFound
}

// Reset discards all notes and restarts the id counter, as before a
// non-merging import.
func (s *Store) Reset() {
	s.notes = make([]model.Note, 0, model.InitialCapacity)
	s.capacity = model.InitialCapacity
	s.nextID = 1
}

// ensureCapacity makes room for one more note, doubling the allocation when
// full. Growth is checked: it refuses to proceed rather than wrap or exceed
// MaxNotes.
func (s *Store) ensureCapacity() error {
	if len(s.notes) < s.capacity {
		return nil
	}
	next, ok := grownCapacity(s.capacity)
	if !ok {
		return ErrStoreFull
	}
	grown := make([]model.Note, len(s.notes), next)
	copy(grown, s.notes)
	s.notes = grown
	s.capacity = next
	return nil
}

func grownCapacity(cur int) (int, bool) {
	if cur <= 0 {
		return model.InitialCapacity, true
	}
	if cur > math.MaxInt/model.GrowthFactor {
		return 0, false
	}
	next := cur * model.GrowthFactor
	if next > model.MaxNotes {
		next = model.MaxNotes
	}
	if next <= cur {
		return 0, false
	}
	return next, true
}
