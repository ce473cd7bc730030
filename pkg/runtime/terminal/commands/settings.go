package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables overriding command flags, e.g. SONALYZE_MEASURES.
const EnvPrefix = "SONALYZE"

const (
	flagConfig    = "config"
	flagProfile   = "profile"
	flagMeasures  = "measures"
	flagOutput    = "output"
	flagNoSession = "no-session"
	flagVerbose   = "verbose"

	defaultOutput = "rapport_sonalyze_complet.txt"
)

type Settings struct {
	ConfigPath   string `mapstructure:"config"`
	Profile      string `mapstructure:"profile"`
	MeasuresPath string `mapstructure:"measures"`
	OutputPath   string `mapstructure:"output"`
	NoSession    bool   `mapstructure:"no-session"`
	Verbose      bool   `mapstructure:"verbose"`
}

// LoadSettings resolves the flags of cmd, environment variables taking
// precedence over flag defaults.
func LoadSettings(cmd *cobra.Command) (Settings, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return Settings{}, fmt.Errorf("failed to bind flags: %w", err)
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings: %w", err)
	}
	return s, nil
}

func (s Settings) requireInputs() error {
	if s.ConfigPath == "" {
		return fmt.Errorf("missing household config: use --%s or %s_CONFIG", flagConfig, EnvPrefix)
	}
	if s.MeasuresPath == "" {
		return fmt.Errorf("missing measurements: use --%s or %s_MEASURES", flagMeasures, EnvPrefix)
	}
	return nil
}

// RegisterGlobalFlags declares the flags shared by every subcommand on the root command.
func RegisterGlobalFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringP(flagConfig, "c", "", "Path to the household config (JSON, YAML or INI profiles)")
	flags.StringP(flagProfile, "p", "", "Household profile to use from an INI config")
	flags.StringP(flagMeasures, "m", "", "Path to the JSON measurements document")
	flags.BoolP(flagVerbose, "v", false, "Enable debug logging")
}
