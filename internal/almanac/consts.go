package almanac

const (
	// ============================================================================
	// Almanac Format Tokens
	// ============================================================================

	// SeedsPrefix starts the seeds line: "seeds: 79 14 55 13"
	SeedsPrefix = "seeds:"

	// MapSuffix ends a map header: "seed-to-soil map:"
	MapSuffix = "map:"

	// CategorySeparator joins the two categories in a map header
	CategorySeparator = "-to-"

	// CommentPrefix marks a comment line
	CommentPrefix = "#"

	// RuleFields is the number of integers on a rule line (dest source length)
	RuleFields = 3

	// ============================================================================
	// Scanner Configuration
	// ============================================================================

	// ScannerInitialBufferSize is the initial buffer size for the almanac scanner
	ScannerInitialBufferSize = 64 * 1024 // 64KB

	// ScannerMaxLineSize is the maximum line size for the almanac scanner.
	// Seed lines of real inputs are short, but generated inputs can carry
	// thousands of seeds on one line.
	ScannerMaxLineSize = 16 * 1024 * 1024 // 16MB
)
