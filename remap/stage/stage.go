package stage

import (
	"cmp"
	"fmt"
	"slices"
	"sort"

	"github.com/joshuapare/rangekit/pkg/types"
	"github.com/joshuapare/rangekit/remap/span"
)

// Identity marks a Segment that no rule covered.
const Identity = -1

// Stage is an immutable piecewise remapping built from non-overlapping rules.
type Stage struct {
	from string
	to   string

	// rules is sorted by Source, ties by Len. Because rules never overlap,
	// SourceEnd is sorted as well, which lets lookups binary search on it.
	rules []Rule
}

// Option configures a Stage at construction.
type Option func(*Stage)

// WithLabel records the categories the stage maps between, for example
// "seed" and "soil". Labels do not affect mapping.
func WithLabel(from, to string) Option {
	return func(s *Stage) {
		s.from = from
		s.to = to
	}
}

// Segment is one piece of a MapRange result together with where it came from.
type Segment struct {
	// Source is the part of the input range this piece covers.
	Source span.Range
	// Target is Source after mapping.
	Target span.Range
	// Rule indexes Rules() for the rule that produced the piece, or Identity.
	Rule int
}

// New builds a stage from rules given in any order. The input slice is not
// retained. It returns an error matching ErrMalformedStage when a rule is
// invalid or two rules overlap.
func New(rules []Rule, opts ...Option) (*Stage, error) {
	s := &Stage{rules: slices.Clone(rules)}
	for _, opt := range opts {
		opt(s)
	}

	for _, r := range s.rules {
		if err := r.validate(); err != nil {
			return nil, types.Errorf(types.ErrKindMalformed, "%srule {dest=%d source=%d len=%d}: %w",
				s.labelPrefix(), r.Dest, r.Source, r.Len, err)
		}
	}

	slices.SortFunc(s.rules, func(a, b Rule) int {
		return cmp.Or(cmp.Compare(a.Source, b.Source), cmp.Compare(a.Len, b.Len))
	})

	for i := 1; i < len(s.rules); i++ {
		prev, cur := s.rules[i-1], s.rules[i]
		if prev.SourceEnd() > cur.Source {
			return nil, types.Errorf(types.ErrKindMalformed, "%srules %s and %s overlap on %s",
				s.labelPrefix(), prev.SourceRange(), cur.SourceRange(),
				span.Range{Start: cur.Source, Len: min(prev.SourceEnd(), cur.SourceEnd()) - cur.Source})
		}
	}

	return s, nil
}

// FromTriples builds a stage from (dest, source, length) triples.
func FromTriples(triples [][3]int64, opts ...Option) (*Stage, error) {
	rules := make([]Rule, len(triples))
	for i, t := range triples {
		rules[i] = FromTriple(t)
	}
	return New(rules, opts...)
}

// Rules returns a copy of the rules in lookup order.
func (s *Stage) Rules() []Rule {
	return slices.Clone(s.rules)
}

// Len returns the number of rules.
func (s *Stage) Len() int {
	return len(s.rules)
}

// From returns the source category label, if any.
func (s *Stage) From() string { return s.from }

// To returns the destination category label, if any.
func (s *Stage) To() string { return s.to }

// Label returns "from-to-to", or "" for an unlabeled stage.
func (s *Stage) Label() string {
	if s.from == "" && s.to == "" {
		return ""
	}
	return s.from + "-to-" + s.to
}

func (s *Stage) labelPrefix() string {
	if l := s.Label(); l != "" {
		return l + ": "
	}
	return ""
}

// firstEndingAfter returns the index of the first rule whose source
// interval ends after v. Every rule before it lies entirely at or below v.
func (s *Stage) firstEndingAfter(v int64) int {
	return sort.Search(len(s.rules), func(i int) bool {
		return s.rules[i].SourceEnd() > v
	})
}

// MapValue returns the image of v. Values outside every rule map to themselves.
func (s *Stage) MapValue(v int64) int64 {
	i := s.firstEndingAfter(v)
	if i < len(s.rules) && s.rules[i].Source <= v {
		return s.rules[i].Apply(v)
	}
	return v
}

// MapRange maps r and returns the resulting pieces in source order. The
// pieces' source intervals tile r exactly; images may be adjacent or
// overlapping each other. A range with Len <= 0 yields nil.
func (s *Stage) MapRange(r span.Range) []span.Range {
	if r.Len <= 0 {
		return nil
	}
	out := make([]span.Range, 0, 3)
	s.walk(r, func(seg Segment) {
		out = append(out, seg.Target)
	})
	return out
}

// Segments is MapRange with provenance for every piece.
func (s *Stage) Segments(r span.Range) []Segment {
	if r.Len <= 0 {
		return nil
	}
	out := make([]Segment, 0, 3)
	s.walk(r, func(seg Segment) {
		out = append(out, seg)
	})
	return out
}

// walk classifies r against the sorted rules, emitting pieces in source order.
func (s *Stage) walk(r span.Range, emit func(Segment)) {
	remaining := r

	for i := s.firstEndingAfter(remaining.Start); i < len(s.rules); i++ {
		rule := s.rules[i]

		// rule starts at or past the end: nothing further applies
		if remaining.End() <= rule.Source {
			break
		}

		if remaining.Start < rule.Source {
			below, above := mustSplit(remaining, rule.Source)
			emit(Segment{Source: below, Target: below, Rule: Identity})
			remaining = above
		}

		if remaining.End() > rule.SourceEnd() {
			covered, above := mustSplit(remaining, rule.SourceEnd())
			emit(Segment{Source: covered, Target: covered.Shift(rule.Offset()), Rule: i})
			remaining = above
			continue
		}

		emit(Segment{Source: remaining, Target: remaining.Shift(rule.Offset()), Rule: i})
		return
	}

	emit(Segment{Source: remaining, Target: remaining, Rule: Identity})
}

// mustSplit splits at a point the caller has already proven interior.
// A failure here is a bug in walk, not bad input.
func mustSplit(r span.Range, point int64) (span.Range, span.Range) {
	below, above, err := r.SplitAt(point)
	if err != nil {
		panic(fmt.Sprintf("stage: internal split error: %v", err))
	}
	return below, above
}
