package verify

import (
	"fmt"

	"github.com/joshuapare/rangekit/pkg/types"
	"github.com/joshuapare/rangekit/remap/pipeline"
	"github.com/joshuapare/rangekit/remap/span"
	"github.com/joshuapare/rangekit/remap/stage"
)

// ValidationError describes the first invariant violation a check found.
type ValidationError struct {
	Type    string
	Message string
	Value   int64
	Details map[string]any
}

func (e *ValidationError) Error() string {
	if e.Value >= 0 {
		return fmt.Sprintf("%s at value %d: %s", e.Type, e.Value, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Is lets errors.Is(err, types.ErrInvariant) match any ValidationError.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*types.Error)
	return ok && t.Kind == types.ErrKindInvariant
}

// AllInvariants runs every stage check for one input range.
// Returns the first error encountered, or nil if all checks pass.
func AllInvariants(st *stage.Stage, in span.Range) error {
	segs := st.Segments(in)
	if err := Coverage(st, in, segs); err != nil {
		return err
	}
	if err := Projection(st, in, segs); err != nil {
		return err
	}
	return Equivalence(st, in, segs)
}

// Coverage checks that segs tile in in source order and that each piece is
// the image of its source under the rule it names.
func Coverage(st *stage.Stage, in span.Range, segs []stage.Segment) error {
	if len(segs) == 0 {
		return &ValidationError{Type: "Coverage", Message: "no pieces for " + in.String(), Value: in.Start}
	}
	if limit := 2*st.Len() + 1; len(segs) > limit {
		return &ValidationError{
			Type:    "Coverage",
			Message: fmt.Sprintf("%d pieces exceed bound of %d", len(segs), limit),
			Value:   -1,
			Details: map[string]any{"rules": st.Len()},
		}
	}

	rules := st.Rules()
	next := in.Start
	for i, seg := range segs {
		if !seg.Source.Valid() || !seg.Target.Valid() {
			return &ValidationError{
				Type:    "Coverage",
				Message: fmt.Sprintf("piece %d is not a valid range: %s -> %s", i, seg.Source, seg.Target),
				Value:   seg.Source.Start,
			}
		}
		if seg.Source.Start != next {
			kind := "gap"
			if seg.Source.Start < next {
				kind = "overlap"
			}
			return &ValidationError{
				Type:    "Coverage",
				Message: fmt.Sprintf("%s before piece %d (%s)", kind, i, seg.Source),
				Value:   next,
			}
		}
		if seg.Source.Len != seg.Target.Len {
			return &ValidationError{
				Type:    "Coverage",
				Message: fmt.Sprintf("piece %d changed length: %d -> %d", i, seg.Source.Len, seg.Target.Len),
				Value:   seg.Source.Start,
			}
		}
		if err := checkProvenance(rules, i, seg); err != nil {
			return err
		}
		next = seg.Source.End()
	}

	if next != in.End() {
		return &ValidationError{
			Type:    "Coverage",
			Message: fmt.Sprintf("pieces end at %d, input %s", next, in),
			Value:   next,
		}
	}
	return nil
}

func checkProvenance(rules []stage.Rule, i int, seg stage.Segment) error {
	if seg.Rule == stage.Identity {
		if seg.Source != seg.Target {
			return &ValidationError{
				Type:    "Coverage",
				Message: fmt.Sprintf("identity piece %d moved: %s -> %s", i, seg.Source, seg.Target),
				Value:   seg.Source.Start,
			}
		}
		for _, r := range rules {
			if r.SourceRange().Overlaps(seg.Source) {
				return &ValidationError{
					Type:    "Coverage",
					Message: fmt.Sprintf("identity piece %d %s intersects rule %s", i, seg.Source, r),
					Value:   max(r.Source, seg.Source.Start),
				}
			}
		}
		return nil
	}

	if seg.Rule < 0 || seg.Rule >= len(rules) {
		return &ValidationError{
			Type:    "Coverage",
			Message: fmt.Sprintf("piece %d names rule %d of %d", i, seg.Rule, len(rules)),
			Value:   seg.Source.Start,
		}
	}
	r := rules[seg.Rule]
	if !r.Covers(seg.Source.Start) || !r.Covers(seg.Source.Last()) {
		return &ValidationError{
			Type:    "Coverage",
			Message: fmt.Sprintf("piece %d %s not inside rule %s", i, seg.Source, r),
			Value:   seg.Source.Start,
		}
	}
	if want := r.Apply(seg.Source.Start); seg.Target.Start != want {
		return &ValidationError{
			Type:    "Coverage",
			Message: fmt.Sprintf("piece %d maps to %d, rule %s gives %d", i, seg.Target.Start, r, want),
			Value:   seg.Source.Start,
		}
	}
	return nil
}

// Projection checks that MapRange returns exactly the targets of segs.
func Projection(st *stage.Stage, in span.Range, segs []stage.Segment) error {
	got := st.MapRange(in)
	if len(got) != len(segs) {
		return &ValidationError{
			Type:    "Projection",
			Message: fmt.Sprintf("MapRange returned %d pieces, Segments %d", len(got), len(segs)),
			Value:   in.Start,
		}
	}
	for i := range got {
		if got[i] != segs[i].Target {
			return &ValidationError{
				Type:    "Projection",
				Message: fmt.Sprintf("piece %d: MapRange %s, Segments %s", i, got[i], segs[i].Target),
				Value:   segs[i].Source.Start,
			}
		}
	}
	return nil
}

// Equivalence checks MapValue against the pieces at every rule boundary that
// falls inside in, and at both ends of every piece.
func Equivalence(st *stage.Stage, in span.Range, segs []stage.Segment) error {
	var probes []int64
	for _, r := range st.Rules() {
		probes = append(probes, r.Source-1, r.Source, r.SourceEnd()-1, r.SourceEnd())
	}
	for _, seg := range segs {
		probes = append(probes, seg.Source.Start, seg.Source.Last())
	}

	for _, v := range probes {
		if !in.Contains(v) {
			continue
		}
		image, ok := imageOf(segs, v)
		if !ok {
			return &ValidationError{Type: "Equivalence", Message: "value not covered by any piece", Value: v}
		}
		if got := st.MapValue(v); got != image {
			return &ValidationError{
				Type:    "Equivalence",
				Message: fmt.Sprintf("MapValue gives %d, range pieces give %d", got, image),
				Value:   v,
				Details: map[string]any{"map_value": got, "map_range": image},
			}
		}
	}
	return nil
}

func imageOf(segs []stage.Segment, v int64) (int64, bool) {
	for _, seg := range segs {
		if seg.Source.Contains(v) {
			return seg.Target.Start + (v - seg.Source.Start), true
		}
	}
	return 0, false
}

// Report summarizes a Pipeline check.
type Report struct {
	Stages int   `json:"stages"`
	Inputs int   `json:"inputs"`
	Pieces int   `json:"pieces"`
	Length int64 `json:"length"`

	// PerStage holds the number of pieces entering each stage.
	PerStage []int `json:"per_stage"`
}

// Pipeline checks every stage invariant on every piece that reaches it while
// pushing initial through p stage by stage, and that the pipeline's own Run
// produces the same number of final pieces and the same total length.
func Pipeline(p *pipeline.Pipeline, initial []span.Range) (Report, error) {
	rep := Report{Stages: p.Len(), Inputs: len(initial)}

	var inLength int64
	current := make([]span.Range, 0, len(initial))
	for _, r := range initial {
		if !r.Valid() {
			return rep, &ValidationError{Type: "Pipeline", Message: "invalid input range " + r.String(), Value: r.Start}
		}
		inLength += r.Len
		current = append(current, r)
	}

	for i, st := range p.Stages() {
		rep.PerStage = append(rep.PerStage, len(current))
		next := make([]span.Range, 0, len(current))
		for _, r := range current {
			if err := AllInvariants(st, r); err != nil {
				return rep, fmt.Errorf("stage %d %s: %w", i, st.Label(), err)
			}
			next = append(next, st.MapRange(r)...)
			rep.Pieces++
		}
		current = next
	}

	final := p.Run(initial)
	for _, r := range final {
		rep.Length += r.Len
	}
	if len(final) != len(current) {
		return rep, &ValidationError{
			Type:    "Pipeline",
			Message: fmt.Sprintf("Run returned %d pieces, stage-by-stage %d", len(final), len(current)),
			Value:   -1,
		}
	}
	if rep.Length != inLength {
		return rep, &ValidationError{
			Type:    "Pipeline",
			Message: fmt.Sprintf("total length changed: %d -> %d", inLength, rep.Length),
			Value:   -1,
		}
	}
	return rep, nil
}
