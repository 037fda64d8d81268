// Package buf holds overflow-checked arithmetic for range endpoints.
package buf

import (
	"fmt"
	"math"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int64.
func AddOverflowSafe(a, b int64) (int64, bool) {
	switch {
	case b > 0 && a > math.MaxInt64-b:
		return 0, false
	case b < 0 && a < math.MinInt64-b:
		return 0, false
	default:
		return a + b, true
	}
}

// SubOverflowSafe computes a - b, returning ok = false when the result would overflow int64.
func SubOverflowSafe(a, b int64) (int64, bool) {
	switch {
	case b < 0 && a > math.MaxInt64+b:
		return 0, false
	case b > 0 && a < math.MinInt64+b:
		return 0, false
	default:
		return a - b, true
	}
}

// CheckSpan validates a start/length pair describing [start, start+length)
// and returns the exclusive end. Start must be non-negative, length strictly
// positive, and the end must fit in int64.
//
//	end, err := buf.CheckSpan(r.Start, r.Len)
//	if err != nil {
//	    return fmt.Errorf("rule %d: %w", i, err)
//	}
func CheckSpan(start, length int64) (int64, error) {
	if start < 0 {
		return 0, fmt.Errorf("negative start: %d", start)
	}
	if length <= 0 {
		return 0, fmt.Errorf("non-positive length: %d", length)
	}
	end, ok := AddOverflowSafe(start, length)
	if !ok {
		return 0, fmt.Errorf("overflow: start=%d + length=%d", start, length)
	}
	return end, nil
}
