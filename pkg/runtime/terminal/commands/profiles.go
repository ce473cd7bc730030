package commands

import (
	"fmt"
	"strings"

	"github.com/de-tools/sonalyze/pkg/services/config"
	"github.com/spf13/cobra"
)

type ProfilesCmd struct{}

func NewProfilesCmd() *cobra.Command {
	pc := &ProfilesCmd{}
	return &cobra.Command{
		Use:   "profiles",
		Short: "List the household profiles of an INI config file",
		RunE:  pc.run,
	}
}

func (pc *ProfilesCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	settings, err := LoadSettings(cmd)
	if err != nil {
		return err
	}
	if settings.ConfigPath == "" {
		return fmt.Errorf("missing household config: use --%s or %s_CONFIG", flagConfig, EnvPrefix)
	}

	registry, err := config.NewRegistry(settings.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to create profile registry: %w", err)
	}

	profiles, err := registry.GetProfiles(ctx)
	if err != nil {
		return fmt.Errorf("failed to list profiles: %w", err)
	}
	if len(profiles) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No household profiles found in %s\n", settings.ConfigPath)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Household profiles in %s:\n%s\n",
		settings.ConfigPath,
		strings.Join(profiles, "\n"))

	return nil
}
