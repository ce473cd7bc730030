package analysis

import "github.com/de-tools/sonalyze/pkg/models/domain"

// Aggregate collects the indicator samples and the detected labels of records.
// Series and labels keep record order, then in-record order.
func Aggregate(records []domain.MeasurementRecord) (domain.MetricSeries, []string) {
	series := make(domain.MetricSeries, len(domain.Metrics))
	var labels []string

	for _, record := range records {
		for _, metric := range domain.Metrics {
			if v := record.Value(metric); v != nil {
				series[metric] = append(series[metric], *v)
			}
		}
		labels = append(labels, record.Labels...)
	}

	return series, labels
}
