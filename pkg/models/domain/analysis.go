package domain

// Grade is the overall noise rating, A being the quietest.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeE Grade = "E"
	GradeF Grade = "F"
	GradeG Grade = "G"
)

// Analysis is the outcome of a measurement run.
type Analysis struct {
	Grade Grade
	// MeanLevel is the mean LAeq rounded to two decimals.
	MeanLevel float64
	Series    MetricSeries
	Families  FamilyCounts
}

// Advice holds the advisor output consumed by the report and the session.
type Advice struct {
	Insights        []string
	Recommendations []string
}
