// Package pipeline composes stages and pushes ranges through them.
//
// # Overview
//
// Run keeps a worklist of (stage index, range) pairs seeded with (0, r) for
// every initial range. Each step pops one pair; a range that has passed the
// last stage is collected, otherwise the stage's MapRange pieces are pushed
// with the next index. The index grows on every push, so the loop ends after
// at most Len() rounds per piece, and the number of pieces depends on rule
// counts rather than on the size of the values:
//
//	p := pipeline.New(stages)
//	out := p.Run([]span.Range{span.Must(79, 14), span.Must(55, 13)})
//	lowest, err := reduce.MinStart(out)
//
// # Scalar Path
//
// RunScalar and Trace apply MapValue stage by stage. They agree with Run on
// single-value ranges, which the tests check across random stage sets.
//
// # Concurrency
//
// Pipelines and stages are immutable, so one Pipeline can serve many
// goroutines. RunParallel uses that to traverse initial ranges concurrently
// with a bounded number of workers.
package pipeline
