package adapters

import "github.com/de-tools/sonalyze/pkg/models/domain"

// MapAssessmentToReport assembles the printable report; a nil analysis leaves the summary empty.
func MapAssessmentToReport(h domain.Household, a *domain.Analysis, advice domain.Advice) domain.Report {
	report := domain.Report{
		Household:       h,
		Interpretation:  append([]string{}, advice.Insights...),
		Recommendations: append([]string{}, advice.Recommendations...),
	}
	if a != nil {
		report.Summary = &domain.ReportSummary{
			Grade:     a.Grade,
			MeanLevel: a.MeanLevel,
		}
	}
	return report
}
