package commands

import (
	"bytes"
	"fmt"
	"os"

	"github.com/de-tools/sonalyze/pkg/adapters"
	"github.com/de-tools/sonalyze/pkg/runtime/terminal/export"
	"github.com/de-tools/sonalyze/pkg/runtime/terminal/session"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type AnalyzeCmd struct {
	deps Dependencies
}

func NewAnalyzeCmd(deps Dependencies) *cobra.Command {
	ac := &AnalyzeCmd{deps: deps}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Write the noise report, then open the advisory session",
		RunE:  ac.run,
	}

	cmd.Flags().StringP(flagOutput, "o", defaultOutput, "Path of the text report to write")
	cmd.Flags().Bool(flagNoSession, false, "Do not start the advisory session after the report")

	return cmd
}

func (ac *AnalyzeCmd) run(cmd *cobra.Command, _ []string) error {
	settings, err := LoadSettings(cmd)
	if err != nil {
		return err
	}
	if err := settings.requireInputs(); err != nil {
		return err
	}
	if settings.OutputPath == "" {
		return fmt.Errorf("missing report path: use --%s or %s_OUTPUT", flagOutput, EnvPrefix)
	}

	ctx := ac.deps.withLogger(cmd, settings.Verbose)
	logger := zerolog.Ctx(ctx)

	result, err := ac.deps.assess(ctx, settings)
	if err != nil {
		return err
	}

	report := adapters.MapAssessmentToReport(result.household, result.analysis, result.advice)

	var buf bytes.Buffer
	if err := export.NewReporter(&buf).Handle(&report); err != nil {
		return err
	}
	if err := os.WriteFile(settings.OutputPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	logger.Info().Str("output", settings.OutputPath).Msg("report written")

	out := ac.deps.Output
	fmt.Fprintf(out, "✅ Rapport TXT généré : %s\n\n", settings.OutputPath)
	if _, err := out.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to print report: %w", err)
	}

	if settings.NoSession {
		return nil
	}
	return session.New(result.advice, ac.deps.Input, out).Run(ctx)
}
