// Package almanac parses almanac text into seeds and remapping stages.
package almanac

import (
	"fmt"

	"github.com/joshuapare/rangekit/pkg/types"
	"github.com/joshuapare/rangekit/remap/pipeline"
	"github.com/joshuapare/rangekit/remap/span"
	"github.com/joshuapare/rangekit/remap/stage"
)

// Almanac is the parsed form of an almanac file.
type Almanac struct {
	Seeds []int64 // Values from the seeds line
	Maps  []Map   // Maps in file order
}

// Map is one "<from>-to-<to> map:" block.
type Map struct {
	From    string     // Source category
	To      string     // Destination category
	Line    int        // Line number of the header
	Triples [][3]int64 // Rules as (dest, source, length), in file order
}

// Label returns "from-to-to".
func (m Map) Label() string {
	return m.From + CategorySeparator + m.To
}

// Stage builds the stage for this map.
func (m Map) Stage() (*stage.Stage, error) {
	st, err := stage.FromTriples(m.Triples, stage.WithLabel(m.From, m.To))
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", m.Line, err)
	}
	return st, nil
}

// Stages builds every map's stage in file order. The first malformed map
// stops construction with an error matching types.ErrMalformedStage.
func (a *Almanac) Stages() ([]*stage.Stage, error) {
	out := make([]*stage.Stage, 0, len(a.Maps))
	for _, m := range a.Maps {
		st, err := m.Stage()
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, nil
}

// Pipeline builds the pipeline applying every map in file order.
func (a *Almanac) Pipeline(opts ...pipeline.Option) (*pipeline.Pipeline, error) {
	stages, err := a.Stages()
	if err != nil {
		return nil, err
	}
	return pipeline.New(stages, opts...), nil
}

// SeedRanges reads the seeds as (start, length) pairs.
func (a *Almanac) SeedRanges() ([]span.Range, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, types.Errorf(types.ErrKindFormat, "seed ranges need pairs, got %d values", len(a.Seeds))
	}
	out := make([]span.Range, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		r, err := span.New(a.Seeds[i], a.Seeds[i+1])
		if err != nil {
			return nil, fmt.Errorf("seed pair %d: %w", i/2, err)
		}
		out = append(out, r)
	}
	return out, nil
}

// Categories returns the category chain: the first map's From followed by
// every map's To. It is empty when there are no maps.
func (a *Almanac) Categories() []string {
	if len(a.Maps) == 0 {
		return nil
	}
	out := make([]string, 0, len(a.Maps)+1)
	out = append(out, a.Maps[0].From)
	for _, m := range a.Maps {
		out = append(out, m.To)
	}
	return out
}

// CheckChain reports the first map whose From differs from the previous
// map's To.
func (a *Almanac) CheckChain() error {
	for i := 1; i < len(a.Maps); i++ {
		prev, cur := a.Maps[i-1], a.Maps[i]
		if cur.From != prev.To {
			return types.Errorf(types.ErrKindFormat, "line %d: %s map follows %s map",
				cur.Line, cur.Label(), prev.Label())
		}
	}
	return nil
}
