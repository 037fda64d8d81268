// Package span provides Range, an immutable half-open interval of int64
// values described by a start and a length.
//
// # Invariants
//
// A Range built through New always satisfies:
//
//   - Start >= 0
//   - Len > 0 (an empty result is represented by absence, never by a zero-length Range)
//   - Start+Len fits in int64
//
// Ranges are plain values. SplitAt and Shift return new Ranges and never
// modify the receiver, and two Ranges are equal exactly when their fields are.
//
// # Splitting
//
// SplitAt cuts a range at a point strictly inside it:
//
//	r, _ := span.New(79, 14)       // [79, 93)
//	lo, hi, err := r.SplitAt(90)   // [79, 90) and [90, 93)
//
// A point at or outside either end is a contract violation and yields an
// error matching types.ErrInvalidSplit.
package span
