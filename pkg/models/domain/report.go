package domain

// Report represents a complete household noise report
type Report struct {
	Household       Household
	Summary         *ReportSummary
	Interpretation  []string
	Recommendations []string
}

// ReportSummary carries the headline figures, nil when no analysis exists
type ReportSummary struct {
	Grade     Grade
	MeanLevel float64
}
