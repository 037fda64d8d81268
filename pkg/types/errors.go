package types

import "fmt"

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindMalformed ErrKind = iota // stage rules overlap or are individually invalid
	ErrKindContract                 // caller broke a documented precondition (e.g., split outside range)
	ErrKindEmpty                    // aggregation requested over no input
	ErrKindRange                    // range construction with bad start/length
	ErrKindFormat                   // unparseable almanac text
	ErrKindInvariant                // engine output violated a checked invariant
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindMalformed:
		return "malformed"
	case ErrKindContract:
		return "contract"
	case ErrKindEmpty:
		return "empty"
	case ErrKindRange:
		return "range"
	case ErrKindFormat:
		return "format"
	case ErrKindInvariant:
		return "invariant"
	default:
		return fmt.Sprintf("ErrKind(%d)", int(k))
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is a *Error of the same kind. This lets detailed
// errors built with Errorf match the package sentinels under errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// Errorf builds an error of the given kind whose message is the kind's
// sentinel text followed by the formatted detail. A %w verb in format is
// honoured, so the detail's cause stays reachable through errors.Is/As.
func Errorf(kind ErrKind, format string, args ...any) error {
	return &Error{Kind: kind, Msg: sentinelMsg(kind), Err: fmt.Errorf(format, args...)}
}

func sentinelMsg(kind ErrKind) string {
	switch kind {
	case ErrKindMalformed:
		return ErrMalformedStage.Msg
	case ErrKindContract:
		return ErrInvalidSplit.Msg
	case ErrKindEmpty:
		return ErrEmptyInput.Msg
	case ErrKindRange:
		return ErrInvalidRange.Msg
	case ErrKindFormat:
		return ErrFormat.Msg
	case ErrKindInvariant:
		return ErrInvariant.Msg
	default:
		return kind.String()
	}
}

// Sentinels commonly returned by implementations.
var (
	// ErrMalformedStage indicates two rules of one stage cover the same value,
	// or a rule is invalid on its own.
	ErrMalformedStage = &Error{Kind: ErrKindMalformed, Msg: "malformed stage"}
	// ErrInvalidSplit indicates a split point that is not strictly inside the range.
	ErrInvalidSplit = &Error{Kind: ErrKindContract, Msg: "split point not interior to range"}
	// ErrEmptyInput indicates a reduction over an empty collection.
	ErrEmptyInput = &Error{Kind: ErrKindEmpty, Msg: "empty input"}
	// ErrInvalidRange indicates a range with non-positive length, negative start or overflowing end.
	ErrInvalidRange = &Error{Kind: ErrKindRange, Msg: "invalid range"}
	// ErrFormat indicates almanac text that could not be parsed.
	ErrFormat = &Error{Kind: ErrKindFormat, Msg: "bad almanac format"}
	// ErrInvariant indicates engine output that failed verification.
	ErrInvariant = &Error{Kind: ErrKindInvariant, Msg: "invariant violated"}
)
