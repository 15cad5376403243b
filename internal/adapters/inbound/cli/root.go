package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cppgm/styletools/internal/adapters/outbound/config"
	"github.com/cppgm/styletools/internal/domain"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "styletools",
		Short:         "Code style and tooling helpers for the cppgm tree",
		Long:          "styletools turns diffs into formatter invocations, compares tokenizer output against reference output, and assembles compile_commands.json from bazel action records.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", config.FileName, "Path to the configuration file")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newDiff2CmdsCmd())
	cmd.AddCommand(newTokCmpCmd())
	cmd.AddCommand(newCompileDBCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

// Execute runs the root command. Errors are reported on stderr, except for
// differing token streams, which only set the exit status.
func Execute() error {
	err := newRootCmd().Execute()
	if err != nil && !errors.Is(err, domain.ErrStreamsDiffer) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

// loadConfig reads the file named by the persistent --config flag.
func loadConfig(cmd *cobra.Command) (domain.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return domain.Config{}, err
	}
	return config.New().Load(path)
}
