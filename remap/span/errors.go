package span

import "github.com/joshuapare/rangekit/pkg/types"

var (
	// ErrInvalidRange is returned by New for a bad start/length pair.
	ErrInvalidRange = types.ErrInvalidRange

	// ErrInvalidSplit is returned by SplitAt for a point outside (Start, End()).
	ErrInvalidSplit = types.ErrInvalidSplit
)
