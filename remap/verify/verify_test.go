package verify

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/rangekit/internal/testutil"
	"github.com/joshuapare/rangekit/pkg/types"
	"github.com/joshuapare/rangekit/remap/pipeline"
	"github.com/joshuapare/rangekit/remap/span"
	"github.com/joshuapare/rangekit/remap/stage"
)

func seedToSoil(t *testing.T) *stage.Stage {
	t.Helper()
	return testutil.SampleStages(t)[0]
}

func TestAllInvariants_SampleStages(t *testing.T) {
	for _, st := range testutil.SampleStages(t) {
		for _, in := range []span.Range{span.Must(0, 120), span.Must(79, 14), span.Must(55, 13), span.Must(97, 1)} {
			require.NoError(t, AllInvariants(st, in), "%s on %s", st.Label(), in)
		}
	}
}

func TestAllInvariants_RandomStages(t *testing.T) {
	rng := rand.New(rand.NewSource(23)) // Fixed seed for reproducibility

	for iter := range 300 {
		st, err := stage.New(testutil.RandomRules(rng, rng.Intn(10)))
		require.NoError(t, err)
		in := span.Must(int64(rng.Intn(500)), int64(1+rng.Intn(500)))
		require.NoError(t, AllInvariants(st, in), "iteration %d", iter)
	}
}

func TestCoverage_DetectsViolations(t *testing.T) {
	st := seedToSoil(t)
	in := span.Must(45, 60)
	good := st.Segments(in)
	require.NoError(t, Coverage(st, in, good))

	tests := []struct {
		name   string
		mutate func([]stage.Segment) []stage.Segment
		want   string
	}{
		{
			name:   "no pieces",
			mutate: func([]stage.Segment) []stage.Segment { return nil },
			want:   "no pieces",
		},
		{
			name:   "gap",
			mutate: func(s []stage.Segment) []stage.Segment { return append(s[:1:1], s[2:]...) },
			want:   "gap",
		},
		{
			name: "overlap",
			mutate: func(s []stage.Segment) []stage.Segment {
				s[1].Source = span.Must(49, 49)
				s[1].Target = span.Must(51, 49)
				return s
			},
			want: "overlap",
		},
		{
			name: "short",
			mutate: func(s []stage.Segment) []stage.Segment {
				return s[:len(s)-1]
			},
			want: "pieces end at 100",
		},
		{
			name: "identity moved",
			mutate: func(s []stage.Segment) []stage.Segment {
				s[0].Target = span.Must(0, 5)
				return s
			},
			want: "identity piece 0 moved",
		},
		{
			name: "identity inside rule",
			mutate: func(s []stage.Segment) []stage.Segment {
				s[2] = stage.Segment{Source: s[2].Source, Target: s[2].Source, Rule: stage.Identity}
				return s
			},
			want: "intersects rule",
		},
		{
			name: "wrong offset",
			mutate: func(s []stage.Segment) []stage.Segment {
				s[1].Target = s[1].Target.Shift(1)
				return s
			},
			want: "rule [50, 98) -> [52, 100) gives 52",
		},
		{
			name: "rule index out of range",
			mutate: func(s []stage.Segment) []stage.Segment {
				s[1].Rule = 9
				return s
			},
			want: "names rule 9",
		},
		{
			name: "length changed",
			mutate: func(s []stage.Segment) []stage.Segment {
				s[3].Target = span.Must(100, 4)
				return s
			},
			want: "changed length",
		},
		{
			name: "too many pieces",
			mutate: func(s []stage.Segment) []stage.Segment {
				extra := []stage.Segment{
					{Source: span.Must(45, 1), Target: span.Must(45, 1), Rule: stage.Identity},
					{Source: span.Must(46, 1), Target: span.Must(46, 1), Rule: stage.Identity},
					{Source: span.Must(47, 1), Target: span.Must(47, 1), Rule: stage.Identity},
					{Source: span.Must(48, 2), Target: span.Must(48, 2), Rule: stage.Identity},
				}
				return append(extra, s[1:]...)
			},
			want: "exceed bound of 5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segs := tt.mutate(st.Segments(in))
			err := Coverage(st, in, segs)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, "Coverage", verr.Type)
			assert.ErrorIs(t, err, types.ErrInvariant)
		})
	}
}

func TestEquivalence_DetectsMismatch(t *testing.T) {
	st := seedToSoil(t)
	in := span.Must(79, 14)

	// pretend the whole input was identity-mapped
	fake := []stage.Segment{{Source: in, Target: in, Rule: stage.Identity}}
	err := Equivalence(st, in, fake)
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Equivalence", verr.Type)
	assert.Equal(t, int64(79), verr.Value)
	assert.Equal(t, int64(81), verr.Details["map_value"])
	assert.Equal(t, int64(79), verr.Details["map_range"])
}

func TestProjection_SampleStage(t *testing.T) {
	st := seedToSoil(t)
	in := span.Must(0, 200)
	require.NoError(t, Projection(st, in, st.Segments(in)))

	err := Projection(st, in, st.Segments(in)[:2])
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Projection")
}

func TestPipeline_SampleAlmanac(t *testing.T) {
	p := pipeline.New(testutil.SampleStages(t))

	rep, err := Pipeline(p, testutil.SampleSeedRanges())
	require.NoError(t, err)
	assert.Equal(t, 7, rep.Stages)
	assert.Equal(t, 2, rep.Inputs)
	assert.Equal(t, int64(27), rep.Length)
	require.Len(t, rep.PerStage, 7)
	assert.Equal(t, 2, rep.PerStage[0])
	assert.GreaterOrEqual(t, rep.Pieces, 7*2)
}

func TestPipeline_RejectsInvalidInput(t *testing.T) {
	p := pipeline.New(testutil.SampleStages(t))
	_, err := Pipeline(p, []span.Range{{Start: 3, Len: 0}})
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrInvariant)
}

func TestPipeline_RandomStages(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	for range 50 {
		p := pipeline.New(testutil.RandomStages(t, rng, 1+rng.Intn(6), 6))
		in := []span.Range{span.Must(int64(rng.Intn(300)), int64(1+rng.Intn(300)))}
		_, err := Pipeline(p, in)
		require.NoError(t, err)
	}
}

func TestValidationError_Format(t *testing.T) {
	withValue := &ValidationError{Type: "Coverage", Message: "gap", Value: 12}
	assert.Equal(t, "Coverage at value 12: gap", withValue.Error())

	noValue := &ValidationError{Type: "Pipeline", Message: "bad", Value: -1}
	assert.Equal(t, "Pipeline: bad", noValue.Error())
}
