package stage

import (
	"fmt"

	"github.com/joshuapare/rangekit/internal/buf"
	"github.com/joshuapare/rangekit/remap/span"
)

// Rule maps every v in [Source, Source+Len) to v - Source + Dest.
type Rule struct {
	Source int64
	Dest   int64
	Len    int64
}

// FromTriple builds a rule from the (dest, source, length) order used by
// almanac input.
func FromTriple(t [3]int64) Rule {
	return Rule{Dest: t[0], Source: t[1], Len: t[2]}
}

// SourceEnd returns the exclusive end of the covered source interval.
func (r Rule) SourceEnd() int64 {
	return r.Source + r.Len
}

// SourceRange returns the covered source interval as a Range.
func (r Rule) SourceRange() span.Range {
	return span.Range{Start: r.Source, Len: r.Len}
}

// DestRange returns the image of the covered interval.
func (r Rule) DestRange() span.Range {
	return span.Range{Start: r.Dest, Len: r.Len}
}

// Offset returns Dest - Source.
func (r Rule) Offset() int64 {
	return r.Dest - r.Source
}

// Covers reports whether v lies in the rule's source interval.
func (r Rule) Covers(v int64) bool {
	return r.Source <= v && v < r.SourceEnd()
}

// Apply maps v through the rule. The result is meaningful only when Covers(v).
func (r Rule) Apply(v int64) int64 {
	return v - r.Source + r.Dest
}

func (r Rule) String() string {
	return fmt.Sprintf("%s -> %s", r.SourceRange(), r.DestRange())
}

// validate checks the rule on its own; overlap is checked by New.
func (r Rule) validate() error {
	if _, err := buf.CheckSpan(r.Source, r.Len); err != nil {
		return fmt.Errorf("source: %w", err)
	}
	if _, err := buf.CheckSpan(r.Dest, r.Len); err != nil {
		return fmt.Errorf("dest: %w", err)
	}
	return nil
}
