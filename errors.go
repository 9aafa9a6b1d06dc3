// Package montage provides a composition engine for editorial timelines:
// rational-time arithmetic, a tree of tracks, stacks, clips, gaps, and
// transitions, range computation across nested compositions, recursive clip
// search, and the classic family of non-destructive edit operations
// (overwrite, insert, slice, remove, slip, slide, trim, ripple, roll).
//
// The engine is synchronous and performs no I/O outside of the JSON
// document helpers. A timeline and everything attached to it form one
// ownership tree; concurrent mutation of a tree requires external
// synchronization (one lock per tree is sufficient). Moving a whole tree
// between goroutines is safe.
package montage

import "errors"

// Time errors
var (
	// ErrInvalidRate indicates a RationalTime with a zero or negative rate.
	ErrInvalidRate = errors.New("rate must be positive")

	// ErrNegativeDuration indicates an operation would leave an item with a
	// negative duration.
	ErrNegativeDuration = errors.New("operation would produce a negative duration")
)

// Composition errors
var (
	// ErrIndexOutOfRange indicates a child index (or a time that selects a
	// child) outside the composition's bounds.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrEmptyComposition indicates a range query on a composition with no
	// children.
	ErrEmptyComposition = errors.New("composition has no children")

	// ErrAlreadyAttached indicates an attempt to insert a child that already
	// has a parent. Remove it from its current parent first.
	ErrAlreadyAttached = errors.New("child is already attached to a parent")

	// ErrNoParent indicates an operation that requires a parent was called on
	// a detached item.
	ErrNoParent = errors.New("item has no parent")

	// ErrUnrelated indicates a time transform between items that do not share
	// an ancestor.
	ErrUnrelated = errors.New("items are not in the same hierarchy")
)

// Edit errors
var (
	// ErrNothingToSlice indicates a slice time that falls on an existing
	// boundary or outside all items.
	ErrNothingToSlice = errors.New("nothing to slice at the given time")

	// ErrTransitionConflict indicates an edit range that intersects a
	// transition which the caller chose not to remove.
	ErrTransitionConflict = errors.New("edit intersects a transition")

	// ErrCannotSplit indicates an item that cannot be divided at an interior
	// point (nested tracks and stacks are atomic within their parent).
	ErrCannotSplit = errors.New("item cannot be split")
)

// Media errors
var (
	// ErrNoMediaReference indicates the clip has no active media reference,
	// or the active reference exposes no available range.
	ErrNoMediaReference = errors.New("no media reference with an available range")
)

// Document errors
var (
	// ErrInvalidDocument indicates JSON input that is not a valid timeline
	// document.
	ErrInvalidDocument = errors.New("invalid timeline document")
)
