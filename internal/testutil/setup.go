// Package testutil holds fixtures shared by the package tests: the sample
// almanac, its stages, and random stage generators.
package testutil

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/rangekit/remap/span"
	"github.com/joshuapare/rangekit/remap/stage"
)

// SampleText is the example almanac in its text form.
const SampleText = `seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
`

// SampleSeeds are the seed values of SampleText.
var SampleSeeds = []int64{79, 14, 55, 13}

// Expected answers for SampleText.
const (
	SampleScalarMin = 35
	SampleRangeMin  = 46
)

type sampleStage struct {
	from, to string
	triples  [][3]int64
}

var sampleStages = []sampleStage{
	{"seed", "soil", [][3]int64{{50, 98, 2}, {52, 50, 48}}},
	{"soil", "fertilizer", [][3]int64{{0, 15, 37}, {37, 52, 2}, {39, 0, 15}}},
	{"fertilizer", "water", [][3]int64{{49, 53, 8}, {0, 11, 42}, {42, 0, 7}, {57, 7, 4}}},
	{"water", "light", [][3]int64{{88, 18, 7}, {18, 25, 70}}},
	{"light", "temperature", [][3]int64{{45, 77, 23}, {81, 45, 19}, {68, 64, 13}}},
	{"temperature", "humidity", [][3]int64{{0, 69, 1}, {1, 0, 69}}},
	{"humidity", "location", [][3]int64{{60, 56, 37}, {56, 93, 4}}},
}

// SampleStages builds the seven stages of SampleText.
func SampleStages(t testing.TB) []*stage.Stage {
	t.Helper()
	out := make([]*stage.Stage, 0, len(sampleStages))
	for _, s := range sampleStages {
		st, err := stage.FromTriples(s.triples, stage.WithLabel(s.from, s.to))
		require.NoError(t, err, "stage %s-to-%s", s.from, s.to)
		out = append(out, st)
	}
	return out
}

// SampleSeedRanges pairs SampleSeeds into (start, length) ranges.
func SampleSeedRanges() []span.Range {
	return []span.Range{span.Must(79, 14), span.Must(55, 13)}
}

// RandomRules returns n non-overlapping rules with random gaps, shuffled.
// Sources stay below roughly n*50 and destinations below 2000.
func RandomRules(rng *rand.Rand, n int) []stage.Rule {
	rules := make([]stage.Rule, 0, n)
	var cursor int64
	for range n {
		cursor += int64(rng.Intn(20))
		length := int64(1 + rng.Intn(30))
		rules = append(rules, stage.Rule{Source: cursor, Dest: int64(rng.Intn(2000)), Len: length})
		cursor += length
	}
	rng.Shuffle(len(rules), func(i, j int) { rules[i], rules[j] = rules[j], rules[i] })
	return rules
}

// RandomStages returns n stages of up to maxRules random rules each.
func RandomStages(t testing.TB, rng *rand.Rand, n, maxRules int) []*stage.Stage {
	t.Helper()
	out := make([]*stage.Stage, n)
	for i := range out {
		st, err := stage.New(RandomRules(rng, rng.Intn(maxRules+1)))
		require.NoError(t, err)
		out[i] = st
	}
	return out
}

// WriteAlmanac writes text to a file in a temporary directory and returns its path.
func WriteAlmanac(t testing.TB, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "almanac.txt")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

// RepoPath resolves a path relative to the repository root from within any
// package directory. It calls t.Skip if the file cannot be found.
func RepoPath(t testing.TB, rel string) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	for {
		candidate := filepath.Join(dir, rel)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Skipf("test file %s not found", rel)
			return ""
		}
		dir = parent
	}
}
