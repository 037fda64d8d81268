// Package types defines the error taxonomy shared by the rangekit packages.
//
// Every error returned by the engine, the parser, and the verifier is either
// one of the sentinels below or a *Error carrying the same ErrKind, so callers
// branch with errors.Is rather than on message text:
//
//	st, err := stage.New(rules...)
//	if errors.Is(err, types.ErrMalformedStage) {
//	    // overlapping rules in the input
//	}
//
// This package has no dependencies beyond the standard library.
package types
