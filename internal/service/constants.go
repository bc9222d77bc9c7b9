package service

const (
	// FailureNotice is the only text shown for a failed calculation
	FailureNotice = "Failed to calculate calories. Please try again."

	// A per-day chart needs at least this many days to show a trend
	MinChartDays = 2
)
