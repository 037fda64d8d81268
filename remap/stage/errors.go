package stage

import "github.com/joshuapare/rangekit/pkg/types"

// ErrMalformedStage is returned by New when the rule set is invalid.
var ErrMalformedStage = types.ErrMalformedStage
