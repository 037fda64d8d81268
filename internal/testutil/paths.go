package testutil

// Test almanac paths relative to the repository root.
// These constants should be used instead of hardcoding paths in test files.
const (
	// SampleAlmanac is the seven-stage seed-to-location example.
	SampleAlmanac = "testdata/almanac/sample.txt"

	// SampleAlmanacUTF16 is SampleAlmanac re-encoded as UTF-16LE with a BOM and CRLF line endings.
	SampleAlmanacUTF16 = "testdata/almanac/sample_utf16le.txt"

	// OverlapAlmanac contains a stage with two overlapping rules.
	OverlapAlmanac = "testdata/almanac/overlap.txt"
)
