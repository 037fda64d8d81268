package almanac

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/rangekit/internal/testutil"
	"github.com/joshuapare/rangekit/pkg/types"
	"github.com/joshuapare/rangekit/remap/reduce"
	"github.com/joshuapare/rangekit/remap/span"
)

func TestParse_Sample(t *testing.T) {
	a, err := Parse(strings.NewReader(testutil.SampleText))
	require.NoError(t, err)

	assert.Equal(t, testutil.SampleSeeds, a.Seeds)
	require.Len(t, a.Maps, 7)

	first := a.Maps[0]
	assert.Equal(t, "seed", first.From)
	assert.Equal(t, "soil", first.To)
	assert.Equal(t, 3, first.Line)
	assert.Equal(t, [][3]int64{{50, 98, 2}, {52, 50, 48}}, first.Triples)

	last := a.Maps[6]
	assert.Equal(t, "humidity-to-location", last.Label())
	assert.Equal(t, [][3]int64{{60, 56, 37}, {56, 93, 4}}, last.Triples)

	assert.Equal(t, []string{
		"seed", "soil", "fertilizer", "water", "light", "temperature", "humidity", "location",
	}, a.Categories())
	assert.NoError(t, a.CheckChain())
}

func TestParse_SampleAnswers(t *testing.T) {
	a, err := ParseBytes([]byte(testutil.SampleText))
	require.NoError(t, err)

	p, err := a.Pipeline()
	require.NoError(t, err)
	require.Equal(t, 7, p.Len())

	lowest, err := reduce.MinValue(p.RunScalars(a.Seeds))
	require.NoError(t, err)
	assert.Equal(t, int64(testutil.SampleScalarMin), lowest)

	seeds, err := a.SeedRanges()
	require.NoError(t, err)
	assert.Equal(t, testutil.SampleSeedRanges(), seeds)

	lowest, err = reduce.MinStart(p.Run(seeds))
	require.NoError(t, err)
	assert.Equal(t, int64(testutil.SampleRangeMin), lowest)
}

func TestParse_TestdataFiles(t *testing.T) {
	plain, err := os.ReadFile(testutil.RepoPath(t, testutil.SampleAlmanac))
	require.NoError(t, err)
	want, err := ParseBytes(plain)
	require.NoError(t, err)

	wide, err := os.ReadFile(testutil.RepoPath(t, testutil.SampleAlmanacUTF16))
	require.NoError(t, err)
	got, err := ParseBytes(wide)
	require.NoError(t, err, "UTF-16LE with BOM and CRLF")

	assert.Equal(t, want, got)
}

func TestParse_UTF8BOMAndCRLF(t *testing.T) {
	text := "\ufeff" + strings.ReplaceAll(testutil.SampleText, "\n", "\r\n")
	a, err := Parse(strings.NewReader(text))
	require.NoError(t, err)
	assert.Equal(t, testutil.SampleSeeds, a.Seeds)
	assert.Len(t, a.Maps, 7)
}

func TestParse_CommentsAndSpacing(t *testing.T) {
	text := `# generated
seeds:   1   2

# first map
a-to-b map:
   10 0 5
# trailing note
b-to-c map:

c-to-d map:
`
	a, err := Parse(strings.NewReader(text))
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, a.Seeds)
	require.Len(t, a.Maps, 3)
	assert.Equal(t, [][3]int64{{10, 0, 5}}, a.Maps[0].Triples)
	assert.Empty(t, a.Maps[1].Triples, "header directly after rules starts a new map")
	assert.Empty(t, a.Maps[2].Triples)

	stages, err := a.Stages()
	require.NoError(t, err)
	require.Len(t, stages, 3)
	assert.Equal(t, 0, stages[2].Len())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"empty", "", "missing \"seeds:\" line"},
		{"only comments", "# nothing\n\n", "missing \"seeds:\" line"},
		{"no seeds prefix", "79 14\n", "line 1: expected \"seeds:\""},
		{"bad seed", "seeds: 79 x\n", "line 1: seed \"x\""},
		{"rule before header", "seeds: 1\n\n1 2 3\n", "line 3: rule \"1 2 3\" outside of a map"},
		{"bad header", "seeds: 1\n\nseed-soil map:\n", "line 3: bad map header"},
		{"header missing side", "seeds: 1\n\n-to-soil map:\n", "bad map header"},
		{"two fields", "seeds: 1\n\na-to-b map:\n1 2\n", "line 4: a-to-b map: expected 3 integers, got 2"},
		{"four fields", "seeds: 1\n\na-to-b map:\n1 2 3 4\n", "expected 3 integers, got 4"},
		{"bad field", "seeds: 1\n\na-to-b map:\n1 two 3\n", "rule field \"two\""},
		{"overflow", "seeds: 99999999999999999999\n", "seed \"99999999999999999999\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.text))
			require.Error(t, err)
			assert.ErrorIs(t, err, types.ErrFormat)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestStages_Malformed(t *testing.T) {
	data, err := os.ReadFile(testutil.RepoPath(t, testutil.OverlapAlmanac))
	require.NoError(t, err)

	a, err := ParseBytes(data)
	require.NoError(t, err, "overlap is detected when stages are built, not when parsing")

	_, err = a.Stages()
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrMalformedStage)
	assert.Contains(t, err.Error(), "line 6")
	assert.Contains(t, err.Error(), "b-to-c")

	_, err = a.Pipeline()
	assert.ErrorIs(t, err, types.ErrMalformedStage)
}

func TestSeedRanges(t *testing.T) {
	a := &Almanac{Seeds: []int64{79, 14, 55, 13}}
	got, err := a.SeedRanges()
	require.NoError(t, err)
	assert.Equal(t, []span.Range{span.Must(79, 14), span.Must(55, 13)}, got)

	_, err = (&Almanac{Seeds: []int64{1, 2, 3}}).SeedRanges()
	assert.ErrorIs(t, err, types.ErrFormat)

	_, err = (&Almanac{Seeds: []int64{5, 0}}).SeedRanges()
	assert.ErrorIs(t, err, types.ErrInvalidRange)

	got, err = (&Almanac{}).SeedRanges()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCheckChain(t *testing.T) {
	a := &Almanac{Maps: []Map{
		{From: "seed", To: "soil", Line: 3},
		{From: "water", To: "light", Line: 7},
	}}
	err := a.CheckChain()
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrFormat)
	assert.Contains(t, err.Error(), "line 7: water-to-light map follows seed-to-soil map")

	assert.Nil(t, (&Almanac{}).Categories())
}
