// Package stage implements a single piecewise remapping of the int64 domain.
//
// # Overview
//
// A Stage is built from Rules. Each rule moves the source interval
// [Source, Source+Len) onto [Dest, Dest+Len) by a constant offset; values no
// rule covers map to themselves.
//
//	st, err := stage.New([]stage.Rule{
//	    {Source: 98, Dest: 50, Len: 2},
//	    {Source: 50, Dest: 52, Len: 48},
//	})
//	st.MapValue(79) // 81
//	st.MapValue(14) // 14 (identity)
//
// # Construction
//
// Rules may be supplied in any order. New sorts them by Source (ties by
// ascending Len) once, so every lookup sees the same order no matter how
// the stage was built. New rejects, with an error matching
// types.ErrMalformedStage:
//
//   - two rules whose source intervals intersect
//   - a rule with Len <= 0
//   - a negative Source or Dest
//   - a source or destination end beyond math.MaxInt64
//
// A Stage is never modified after New returns and may be shared between
// goroutines.
//
// # Range Mapping
//
// MapRange walks the sorted rules once per input range and cuts the range at
// every rule boundary that falls strictly inside it:
//
//	input        [-------------------------------)
//	rules            [=====)      [=========)
//	pieces       [id)[ map )[ id )[   map   )[id)
//
// Identity pieces are emitted unchanged, covered pieces are shifted by the
// rule's offset. The pieces' source intervals, in emission order, tile the
// input exactly. A stage with k rules yields at most 2k+1 pieces for any
// input, independent of the magnitude of the values.
//
// Segments exposes the same walk with provenance (source interval and
// producing rule) for callers that need to check or explain the result.
package stage
