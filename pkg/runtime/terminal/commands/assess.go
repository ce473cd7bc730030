package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/de-tools/sonalyze/pkg/models/domain"
	"github.com/de-tools/sonalyze/pkg/services/advisor"
	"github.com/de-tools/sonalyze/pkg/services/analysis"
	"github.com/de-tools/sonalyze/pkg/services/config"
	"github.com/de-tools/sonalyze/pkg/store/measurements"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Dependencies are shared by every command
type Dependencies struct {
	Stores    measurements.StoreFactory
	Advisor   *advisor.Advisor
	Input     io.Reader
	Output    io.Writer
	LogOutput io.Writer
}

type assessment struct {
	household domain.Household
	analysis  *domain.Analysis
	advice    domain.Advice
}

func (d Dependencies) withLogger(cmd *cobra.Command, verbose bool) context.Context {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: d.LogOutput, TimeFormat: time.RFC3339}).
		Level(level).
		With().
		Timestamp().
		Str("run_id", uuid.NewString()).
		Logger()

	return logger.WithContext(cmd.Context())
}

// assess loads both input documents before analysing anything, so a load
// failure leaves no partial output behind.
func (d Dependencies) assess(ctx context.Context, settings Settings) (*assessment, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().
		Str("config", settings.ConfigPath).
		Str("measures", settings.MeasuresPath).
		Msg("loading input documents")

	household, err := config.ResolveHousehold(ctx, settings.ConfigPath, settings.Profile)
	if err != nil {
		return nil, fmt.Errorf("failed to load household config: %w", err)
	}

	store, err := d.Stores(settings.MeasuresPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create measurements store: %w", err)
	}

	records, err := store.Records(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load measurements: %w", err)
	}

	logger.Info().
		Int("records", len(records)).
		Str("household", household.String()).
		Msg("analysing sound data")
	result, err := analysis.Build(ctx, records)
	if err != nil {
		return nil, fmt.Errorf("failed to analyse measurements: %w", err)
	}

	return &assessment{
		household: household,
		analysis:  result,
		advice:    d.Advisor.Advise(result, household),
	}, nil
}
