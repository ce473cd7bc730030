package commands

import (
	"github.com/de-tools/sonalyze/pkg/runtime/terminal/session"
	"github.com/spf13/cobra"
)

type AskCmd struct {
	deps Dependencies
}

func NewAskCmd(deps Dependencies) *cobra.Command {
	ac := &AskCmd{deps: deps}
	return &cobra.Command{
		Use:   "ask",
		Short: "Open the advisory session without writing a report",
		RunE:  ac.run,
	}
}

func (ac *AskCmd) run(cmd *cobra.Command, _ []string) error {
	settings, err := LoadSettings(cmd)
	if err != nil {
		return err
	}
	if err := settings.requireInputs(); err != nil {
		return err
	}

	ctx := ac.deps.withLogger(cmd, settings.Verbose)
	result, err := ac.deps.assess(ctx, settings)
	if err != nil {
		return err
	}

	return session.New(result.advice, ac.deps.Input, ac.deps.Output).Run(ctx)
}
