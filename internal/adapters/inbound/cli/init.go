package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cppgm/styletools/internal/adapters/outbound/config"
	"github.com/cppgm/styletools/internal/domain"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Generate a .styletools.yaml configuration file",
		Long:  "Create a .styletools.yaml listing the default formatter binaries, target prefix and bazel settings.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, config.FileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
				}
			}

			if err := os.WriteFile(dest, []byte(generateConfig()), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.FileName)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .styletools.yaml")

	return cmd
}

func generateConfig() string {
	cfg := domain.DefaultConfig()
	formatters := domain.DefaultFormatters()

	var b strings.Builder
	b.WriteString("# styletools configuration\n\n")
	b.WriteString("# Path segment git puts in front of target files.\n")
	fmt.Fprintf(&b, "target_prefix: %s\n\n", cfg.TargetPrefix)

	b.WriteString("# Formatter binaries, e.g. a versioned clang-format.\n")
	b.WriteString("formatters:\n")
	for _, kind := range domain.ValidFormatterKinds {
		fmt.Fprintf(&b, "  %s: %s\n", kind, formatters[kind].Binary)
	}

	b.WriteString("\ncompiledb:\n")
	fmt.Fprintf(&b, "  bazel: %s\n", cfg.CompileDB.Bazel)
	b.WriteString("  # output: compile_commands.json\n")

	return b.String()
}
