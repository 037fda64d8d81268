// Package reduce extracts scalar answers from pipeline output.
package reduce

import (
	"github.com/joshuapare/rangekit/pkg/types"
	"github.com/joshuapare/rangekit/remap/span"
)

// ErrEmptyInput is returned when there is nothing to reduce.
var ErrEmptyInput = types.ErrEmptyInput

// MinStart returns the smallest Start among ranges.
func MinStart(ranges []span.Range) (int64, error) {
	if len(ranges) == 0 {
		return 0, types.Errorf(types.ErrKindEmpty, "min start of 0 ranges")
	}
	lowest := ranges[0].Start
	for _, r := range ranges[1:] {
		lowest = min(lowest, r.Start)
	}
	return lowest, nil
}

// MinValue returns the smallest of values, for the single-value path.
func MinValue(values []int64) (int64, error) {
	if len(values) == 0 {
		return 0, types.Errorf(types.ErrKindEmpty, "min of 0 values")
	}
	lowest := values[0]
	for _, v := range values[1:] {
		lowest = min(lowest, v)
	}
	return lowest, nil
}

// TotalLength returns the sum of the lengths of ranges.
func TotalLength(ranges []span.Range) int64 {
	var total int64
	for _, r := range ranges {
		total += r.Len
	}
	return total
}
