package builder

// Method names used as context prefixes in errors.
const (
	methodRandomCategory = "RandomCategory"
	methodRandomPipeline = "RandomPipeline"
	methodRandomPairs    = "RandomPairs"
	methodFixed          = "Fixed"
)

// Parameter minimums.
const (
	minIntervals = 0
	minStages    = 1
	minPairs     = 0
	// slotWidth is the smallest slot RandomCategory carves per interval.
	slotWidth = 2
)
