package pipeline

import (
	"context"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/joshuapare/rangekit/remap/span"
	"github.com/joshuapare/rangekit/remap/stage"
)

// Order selects the worklist discipline used by Run.
type Order int

const (
	// DepthFirst pops the most recently pushed piece (stack).
	DepthFirst Order = iota
	// BreadthFirst pops the oldest pending piece (queue).
	BreadthFirst
)

func (o Order) String() string {
	switch o {
	case DepthFirst:
		return "depth-first"
	case BreadthFirst:
		return "breadth-first"
	default:
		return "unknown"
	}
}

// Pipeline applies an ordered list of stages. It holds no state between
// calls and is safe for concurrent use.
type Pipeline struct {
	stages []*stage.Stage
	order  Order
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithOrder selects the worklist discipline. The output multiset does not
// depend on it; only the order of the returned ranges does.
func WithOrder(o Order) Option {
	return func(p *Pipeline) { p.order = o }
}

// New returns a pipeline applying stages in the given order. Nil stages are
// skipped.
func New(stages []*stage.Stage, opts ...Option) *Pipeline {
	p := &Pipeline{stages: make([]*stage.Stage, 0, len(stages))}
	for _, s := range stages {
		if s != nil {
			p.stages = append(p.stages, s)
		}
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Stages returns the stages in application order.
func (p *Pipeline) Stages() []*stage.Stage {
	return slices.Clone(p.stages)
}

// Len returns the number of stages.
func (p *Pipeline) Len() int {
	return len(p.stages)
}

// Order returns the worklist discipline.
func (p *Pipeline) Order() Order {
	return p.order
}

// item is a pending piece and the index of the next stage to apply to it.
type item struct {
	stage int
	r     span.Range
}

// Run pushes every initial range through all stages and returns the
// resulting ranges. Ranges with Len <= 0 are dropped.
func (p *Pipeline) Run(initial []span.Range) []span.Range {
	var results []span.Range
	p.run(initial, func(r span.Range) { results = append(results, r) })
	return results
}

// run drives the worklist and hands each finished range to collect.
func (p *Pipeline) run(initial []span.Range, collect func(span.Range)) {
	work := make([]item, 0, len(initial))
	for _, r := range initial {
		if r.Len > 0 {
			work = append(work, item{stage: 0, r: r})
		}
	}

	for len(work) > 0 {
		var it item
		if p.order == BreadthFirst {
			it, work = work[0], work[1:]
		} else {
			it, work = work[len(work)-1], work[:len(work)-1]
		}

		if it.stage == len(p.stages) {
			collect(it.r)
			continue
		}
		for _, piece := range p.stages[it.stage].MapRange(it.r) {
			work = append(work, item{stage: it.stage + 1, r: piece})
		}
	}
}

// RunScalar maps a single value through every stage. It returns the same
// value as the lone start of Run([{v, 1}]).
func (p *Pipeline) RunScalar(v int64) int64 {
	for _, s := range p.stages {
		v = s.MapValue(v)
	}
	return v
}

// RunScalars maps each value independently.
func (p *Pipeline) RunScalars(values []int64) []int64 {
	out := make([]int64, len(values))
	for i, v := range values {
		out[i] = p.RunScalar(v)
	}
	return out
}

// Trace returns v followed by its image after each stage, so the result has
// Len()+1 entries and ends with RunScalar(v).
func (p *Pipeline) Trace(v int64) []int64 {
	out := make([]int64, 0, len(p.stages)+1)
	out = append(out, v)
	for _, s := range p.stages {
		v = s.MapValue(v)
		out = append(out, v)
	}
	return out
}

// RunParallel is Run with each initial range traversed on its own goroutine,
// at most workers at a time (workers < 1 means one). The result holds the
// same ranges as Run in unspecified order. It returns ctx.Err() if the
// context is cancelled before all traversals finish.
func (p *Pipeline) RunParallel(ctx context.Context, initial []span.Range, workers int) ([]span.Range, error) {
	if workers < 1 {
		workers = 1
	}

	var (
		mu      sync.Mutex
		results []span.Range
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, r := range initial {
		if err := gctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			var local []span.Range
			p.run([]span.Range{r}, func(out span.Range) { local = append(local, out) })

			mu.Lock()
			results = append(results, local...)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
