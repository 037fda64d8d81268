// Package verify checks the invariants of stage and pipeline output.
//
// # Overview
//
// The engine promises two things for every stage and range:
//
//   - Coverage: the pieces returned by MapRange, traced back through the rule
//     that produced each one (or identity), tile the input with no gaps and no
//     overlaps.
//   - Equivalence: MapValue agrees with the image the pieces assign to every
//     value, in particular at rule boundaries.
//
// These helpers recompute both and report the first violation. Tests use them
// directly; rangectl exposes them through its verify command.
//
// # Quick Start
//
//	if err := verify.AllInvariants(st, span.Must(79, 14)); err != nil {
//	    fmt.Printf("stage broken: %v\n", err)
//	}
//
//	report, err := verify.Pipeline(p, seedRanges)
//	fmt.Printf("%d pieces checked\n", report.Pieces)
//
// # ValidationError
//
// Every check returns *ValidationError on failure:
//
//	type ValidationError struct {
//	    Type    string         // Check that failed (e.g., "Coverage")
//	    Message string         // Human-readable description
//	    Value   int64          // Domain value where the failure was seen (-1 if N/A)
//	    Details map[string]any // Additional context
//	}
//
// ValidationError matches types.ErrInvariant under errors.Is.
package verify
