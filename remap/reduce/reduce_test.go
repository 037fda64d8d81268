package reduce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/rangekit/pkg/types"
	"github.com/joshuapare/rangekit/remap/span"
)

func TestMinStart(t *testing.T) {
	got, err := MinStart([]span.Range{span.Must(81, 14), span.Must(57, 13), span.Must(1000, 1)})
	require.NoError(t, err)
	assert.Equal(t, int64(57), got)

	got, err = MinStart([]span.Range{span.Must(4, 2)})
	require.NoError(t, err)
	assert.Equal(t, int64(4), got)
}

func TestMinStart_Empty(t *testing.T) {
	_, err := MinStart(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.ErrorIs(t, err, types.ErrEmptyInput)

	_, err = MinStart([]span.Range{})
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestMinValue(t *testing.T) {
	got, err := MinValue([]int64{82, 43, 86, 35})
	require.NoError(t, err)
	assert.Equal(t, int64(35), got)

	_, err = MinValue(nil)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestTotalLength(t *testing.T) {
	assert.Equal(t, int64(0), TotalLength(nil))
	assert.Equal(t, int64(27), TotalLength([]span.Range{span.Must(79, 14), span.Must(55, 13)}))
}
