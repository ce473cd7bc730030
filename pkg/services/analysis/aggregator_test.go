package analysis

import (
	"testing"

	"github.com/de-tools/sonalyze/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func level(v float64) *float64 {
	return &v
}

func TestAggregate(t *testing.T) {
	records := []domain.MeasurementRecord{
		{
			Lmin:   level(28.1),
			Lmax:   level(51.2),
			LAeq:   level(35),
			Labels: []string{"car passing", "Music"},
		},
		{
			LAeq: level(45),
		},
		{
			Lmin:   level(30.4),
			L10:    level(41),
			L50:    level(38),
			L90:    level(31),
			LPeak:  level(70.3),
			LAeq:   level(35),
			Labels: []string{"Fridge"},
		},
		{},
	}

	series, labels := Aggregate(records)

	assert.Equal(t, []float64{28.1, 30.4}, series[domain.MetricLmin])
	assert.Equal(t, []float64{51.2}, series[domain.MetricLmax])
	assert.Equal(t, []float64{70.3}, series[domain.MetricLpeak])
	assert.Equal(t, []float64{41}, series[domain.MetricL10])
	assert.Equal(t, []float64{38}, series[domain.MetricL50])
	assert.Equal(t, []float64{31}, series[domain.MetricL90])
	assert.Equal(t, []float64{35, 45, 35}, series[domain.MetricLAeq], "order and duplicates are kept")
	assert.Equal(t, []string{"car passing", "Music", "Fridge"}, labels)
}

func TestAggregate_Empty(t *testing.T) {
	series, labels := Aggregate(nil)

	assert.Empty(t, series)
	assert.Empty(t, labels)
}
