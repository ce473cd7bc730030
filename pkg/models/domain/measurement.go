package domain

// Metric names one of the decibel indicators carried by a measurement segment.
type Metric string

const (
	MetricLmin  Metric = "Lmin"
	MetricLmax  Metric = "Lmax"
	MetricLpeak Metric = "Lpeak"
	MetricL10   Metric = "L10"
	MetricL50   Metric = "L50"
	MetricL90   Metric = "L90"
	MetricLAeq  Metric = "LAeq"
)

// Metrics lists every indicator in reporting order.
var Metrics = []Metric{
	MetricLmin,
	MetricLmax,
	MetricLpeak,
	MetricL10,
	MetricL50,
	MetricL90,
	MetricLAeq,
}

// MeasurementRecord is one analysed segment of the sound recorder output.
// Absent indicators are nil.
type MeasurementRecord struct {
	Lmin   *float64 `json:"Lmin_dB,omitempty"`
	Lmax   *float64 `json:"Lmax_dB,omitempty"`
	LPeak  *float64 `json:"LPeak_dB,omitempty"`
	L10    *float64 `json:"L10_dB,omitempty"`
	L50    *float64 `json:"L50_dB,omitempty"`
	L90    *float64 `json:"L90_dB,omitempty"`
	LAeq   *float64 `json:"LAeq_segment_dB,omitempty"`
	Labels []string `json:"top_5_labels,omitempty"`
}

// Value returns the sample recorded for m, or nil when the segment lacks it.
func (r MeasurementRecord) Value(m Metric) *float64 {
	switch m {
	case MetricLmin:
		return r.Lmin
	case MetricLmax:
		return r.Lmax
	case MetricLpeak:
		return r.LPeak
	case MetricL10:
		return r.L10
	case MetricL50:
		return r.L50
	case MetricL90:
		return r.L90
	case MetricLAeq:
		return r.LAeq
	default:
		return nil
	}
}

// MetricSeries holds the samples of each indicator in input order.
type MetricSeries map[Metric][]float64
