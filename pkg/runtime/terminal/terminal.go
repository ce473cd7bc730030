package terminal

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/de-tools/sonalyze/pkg/runtime/terminal/commands"
	"github.com/de-tools/sonalyze/pkg/services/advisor"
	"github.com/de-tools/sonalyze/pkg/store/measurements"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	deps    commands.Dependencies
	rootCmd *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Stores    measurements.StoreFactory
	Settings  advisor.Settings
	Input     io.Reader
	Output    io.Writer
	LogOutput io.Writer
	// EnvFile is loaded before the flags are resolved when it exists (default: ".env")
	EnvFile string
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Stores == nil {
		opts.Stores = measurements.NewFileStore
	}
	if opts.Settings == (advisor.Settings{}) {
		opts.Settings = advisor.DefaultSettings()
	}
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.LogOutput == nil {
		opts.LogOutput = os.Stderr
	}
	if opts.EnvFile == "" {
		opts.EnvFile = ".env"
	}

	cli := &CLI{
		deps: commands.Dependencies{
			Stores:    opts.Stores,
			Advisor:   advisor.NewAdvisor(opts.Settings),
			Input:     opts.Input,
			Output:    opts.Output,
			LogOutput: opts.LogOutput,
		},
	}

	cli.rootCmd = cli.newRootCmd(opts.EnvFile)
	cli.rootCmd.SetIn(opts.Input)
	cli.rootCmd.SetOut(opts.Output)
	cli.rootCmd.SetErr(opts.LogOutput)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd(envFile string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "sonalyze",
		Short:         "Household noise analysis tool",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("failed to load %s: %w", envFile, err)
			}
			return nil
		},
	}

	commands.RegisterGlobalFlags(cmd)
	cmd.AddCommand(commands.NewAnalyzeCmd(cli.deps))
	cmd.AddCommand(commands.NewAskCmd(cli.deps))
	cmd.AddCommand(commands.NewProfilesCmd())

	return cmd
}
