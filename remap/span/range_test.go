package span

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/rangekit/pkg/types"
)

func TestNew_Valid(t *testing.T) {
	r, err := New(79, 14)
	require.NoError(t, err)
	assert.Equal(t, Range{Start: 79, Len: 14}, r)
	assert.Equal(t, int64(93), r.End())
	assert.Equal(t, int64(92), r.Last())
	assert.True(t, r.Valid())
}

func TestNew_Rejects(t *testing.T) {
	tests := []struct {
		name          string
		start, length int64
	}{
		{"zero length", 5, 0},
		{"negative length", 5, -1},
		{"negative start", -1, 3},
		{"end overflows", math.MaxInt64 - 1, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.start, tt.length)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidRange)
			assert.ErrorIs(t, err, types.ErrInvalidRange)
		})
	}
}

func TestZeroRangeIsInvalid(t *testing.T) {
	assert.False(t, Range{}.Valid())
}

func TestContains(t *testing.T) {
	r := Must(10, 5) // [10, 15)
	assert.False(t, r.Contains(9))
	assert.True(t, r.Contains(10))
	assert.True(t, r.Contains(14))
	assert.False(t, r.Contains(15))
}

func TestOverlaps(t *testing.T) {
	r := Must(10, 5)
	assert.True(t, r.Overlaps(Must(14, 1)))
	assert.True(t, r.Overlaps(Must(0, 11)))
	assert.True(t, r.Overlaps(Must(11, 2)))
	assert.False(t, r.Overlaps(Must(15, 3)), "adjacent above")
	assert.False(t, r.Overlaps(Must(5, 5)), "adjacent below")
}

func TestSplitAt(t *testing.T) {
	r := Must(79, 14)
	below, above, err := r.SplitAt(90)
	require.NoError(t, err)
	assert.Equal(t, Must(79, 11), below)
	assert.Equal(t, Must(90, 3), above)
	assert.Equal(t, r.Len, below.Len+above.Len)
	assert.Equal(t, below.End(), above.Start)

	// receiver is untouched
	assert.Equal(t, Must(79, 14), r)
}

func TestSplitAt_NotInterior(t *testing.T) {
	r := Must(79, 14)
	for _, p := range []int64{0, 78, 79, 93, 94} {
		_, _, err := r.SplitAt(p)
		require.Error(t, err, "point %d", p)
		assert.ErrorIs(t, err, ErrInvalidSplit)
		assert.False(t, r.CanSplitAt(p))
	}

	// a single-value range can never be split
	_, _, err := Must(4, 1).SplitAt(4)
	assert.ErrorIs(t, err, ErrInvalidSplit)
}

func TestShift(t *testing.T) {
	r := Must(98, 2)
	assert.Equal(t, Must(50, 2), r.Shift(-48))
	assert.Equal(t, Must(100, 2), r.Shift(2))
}

func TestPoint(t *testing.T) {
	r, err := Point(13)
	require.NoError(t, err)
	assert.Equal(t, Must(13, 1), r)
}

func TestString(t *testing.T) {
	assert.Equal(t, "[79, 93)", Must(79, 14).String())
}

func TestMust_Panics(t *testing.T) {
	assert.Panics(t, func() { Must(0, 0) })
}
