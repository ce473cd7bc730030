package analysis

import (
	"context"
	"fmt"

	"github.com/de-tools/sonalyze/pkg/models/domain"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/stat"
)

// LevelPrecision is the number of decimals kept for displayed levels.
const LevelPrecision = 2

// Build turns measurement records into an analysis.
//
// A nil analysis with a nil error means the records carry no LAeq sample at
// all. The grade comes from the unrounded mean so that a mean of 29.998 stays
// an A even though it is displayed as 30.00.
func Build(ctx context.Context, records []domain.MeasurementRecord) (*domain.Analysis, error) {
	logger := zerolog.Ctx(ctx)

	series, labels := Aggregate(records)
	laeq := series[domain.MetricLAeq]
	if len(laeq) == 0 {
		logger.Info().
			Int("records", len(records)).
			Msg("no LAeq samples found, analysis unavailable")
		return nil, nil
	}

	mean := stat.Mean(laeq, nil)
	grade, err := GradeFor(mean)
	if err != nil {
		return nil, fmt.Errorf("failed to grade mean level: %w", err)
	}

	families := CountFamilies(labels)

	logger.Debug().
		Int("records", len(records)).
		Int("laeq_samples", len(laeq)).
		Int("labels", len(labels)).
		Float64("mean_level", mean).
		Str("grade", string(grade)).
		Msg("analysis built")

	return &domain.Analysis{
		Grade:     grade,
		MeanLevel: RoundLevel(mean),
		Series:    series,
		Families:  families,
	}, nil
}

// RoundLevel rounds a level in dB for display, ties to even.
func RoundLevel(level float64) float64 {
	return scalar.RoundEven(level, LevelPrecision)
}
