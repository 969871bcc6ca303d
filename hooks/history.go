// Copyright © 2024 The tracehook authors

package hooks

// History is the append-only sequence of previously displayed results.
// One History is constructed at install time and injected into the
// display hook; it lives for the session. Interactive evaluation is
// strictly sequential in the host, so no locking is required, but
// Append assigns the index and stores the value as a single step so an
// index is never reused.
type History struct {
	out  []any
	last any
	set  bool
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{}
}

// Append stores v and returns its index, which equals the history's
// length before the append. Indices are never reused or reordered.
func (h *History) Append(v any) int {
	idx := len(h.out)
	h.out = append(h.out, v)
	h.last = v
	h.set = true
	return idx
}

// SetLast updates the "last value" slot without recording v in the
// indexed sequence.
func (h *History) SetLast(v any) {
	h.last = v
	h.set = true
}

// Last returns the most recent value, or false if nothing was recorded.
func (h *History) Last() (any, bool) {
	return h.last, h.set
}

// Len returns the number of recorded results.
func (h *History) Len() int {
	return len(h.out)
}

// At returns the value at index i, or false if i is out of range.
func (h *History) At(i int) (any, bool) {
	if i < 0 || i >= len(h.out) {
		return nil, false
	}
	return h.out[i], true
}
