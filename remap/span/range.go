package span

import (
	"fmt"

	"github.com/joshuapare/rangekit/internal/buf"
	"github.com/joshuapare/rangekit/pkg/types"
)

// Range is the half-open interval [Start, Start+Len).
type Range struct {
	Start int64
	Len   int64
}

// New returns the range [start, start+length), or an error matching
// types.ErrInvalidRange when the pair does not describe a valid range.
func New(start, length int64) (Range, error) {
	if _, err := buf.CheckSpan(start, length); err != nil {
		return Range{}, types.Errorf(types.ErrKindRange, "range(%d, %d): %w", start, length, err)
	}
	return Range{Start: start, Len: length}, nil
}

// Must is like New but panics on invalid input. Intended for literals in
// tests and examples.
func Must(start, length int64) Range {
	r, err := New(start, length)
	if err != nil {
		panic(err)
	}
	return r
}

// Point returns the single-value range [v, v+1).
func Point(v int64) (Range, error) {
	return New(v, 1)
}

// End returns the exclusive upper bound.
func (r Range) End() int64 {
	return r.Start + r.Len
}

// Last returns the largest value in the range.
func (r Range) Last() int64 {
	return r.Start + r.Len - 1
}

// Valid reports whether r satisfies the invariants New enforces.
// The zero Range is not valid.
func (r Range) Valid() bool {
	_, err := buf.CheckSpan(r.Start, r.Len)
	return err == nil
}

// Contains reports whether Start <= v < End().
func (r Range) Contains(v int64) bool {
	return r.Start <= v && v < r.End()
}

// Overlaps reports whether r and o share at least one value.
func (r Range) Overlaps(o Range) bool {
	return r.Start < o.End() && o.Start < r.End()
}

// CanSplitAt reports whether splitting at point yields two non-empty ranges.
func (r Range) CanSplitAt(point int64) bool {
	return r.Start < point && point < r.End()
}

// SplitAt returns [Start, point) and [point, End()). It fails with an error
// matching types.ErrInvalidSplit unless Start < point < End().
func (r Range) SplitAt(point int64) (below, above Range, err error) {
	if !r.CanSplitAt(point) {
		return Range{}, Range{}, types.Errorf(types.ErrKindContract, "split %s at %d", r, point)
	}
	below = Range{Start: r.Start, Len: point - r.Start}
	above = Range{Start: point, Len: r.End() - point}
	return below, above, nil
}

// Shift returns r moved by delta, keeping its length.
func (r Range) Shift(delta int64) Range {
	return Range{Start: r.Start + delta, Len: r.Len}
}

// String renders the range as "[start, end)".
func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End())
}
