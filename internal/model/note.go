// Package model defines the note entity and the limits shared by the store,
// persistence, and search layers.
package model

// Field bounds are character payload limits, excluding the NUL terminator of
// the on-disk buffers.
const (
	MaxTitleLen   = 255
	MaxContentLen = 8191
	MaxTagsLen    = 511

	// MaxPatternLen bounds search patterns; longer patterns are treated as
	// non-matching rather than compiled.
	MaxPatternLen = 1024

	// MaxNotes is the hard ceiling on the store size.
	MaxNotes = 1_000_000

	InitialCapacity = 64
	GrowthFactor    = 2
)

// Note is a single stored record. Tags is a comma-separated list and may be
// empty. Timestamps are Unix seconds.
type Note struct {
	ID         uint32 `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Tags       string `json:"tags,omitempty"`
	CreatedAt  int64  `json:"created_at"`
	ModifiedAt int64  `json:"modified_at"`
}
