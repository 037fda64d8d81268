package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorf_MatchesSentinelByKind(t *testing.T) {
	err := Errorf(ErrKindMalformed, "rules %s and %s overlap", "[0, 5)", "[3, 8)")

	assert.ErrorIs(t, err, ErrMalformedStage)
	assert.NotErrorIs(t, err, ErrFormat)
	assert.Equal(t, "malformed stage: rules [0, 5) and [3, 8) overlap", err.Error())

	var typed *Error
	require.True(t, errors.As(err, &typed))
	assert.Equal(t, ErrKindMalformed, typed.Kind)
}

func TestErrorf_KeepsCause(t *testing.T) {
	cause := errors.New("disk on fire")
	err := Errorf(ErrKindFormat, "line %d: %w", 4, cause)

	assert.ErrorIs(t, err, ErrFormat)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "bad almanac format: line 4: disk on fire", err.Error())
}

func TestError_SurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("almanac.txt: %w", Errorf(ErrKindRange, "length %d", 0))
	assert.ErrorIs(t, err, ErrInvalidRange)
	assert.NotErrorIs(t, err, ErrEmptyInput)
}

func TestError_Nil(t *testing.T) {
	var e *Error
	assert.Equal(t, "<nil>", e.Error())
	assert.False(t, e.Is(ErrFormat))
	assert.False(t, ErrFormat.Is(errors.New("bad almanac format")))
}

func TestErrKind_String(t *testing.T) {
	tests := map[ErrKind]string{
		ErrKindMalformed: "malformed",
		ErrKindContract:  "contract",
		ErrKindEmpty:     "empty",
		ErrKindRange:     "range",
		ErrKindFormat:    "format",
		ErrKindInvariant: "invariant",
		ErrKind(42):      "ErrKind(42)",
	}
	for kind, want := range tests {
		assert.Equal(t, want, kind.String())
	}

	// unknown kinds fall back to the kind name
	assert.Equal(t, "ErrKind(42): x", Errorf(ErrKind(42), "x").Error())
}
