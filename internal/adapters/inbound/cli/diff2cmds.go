package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cppgm/styletools/internal/adapters/outbound/diffparser"
	"github.com/cppgm/styletools/internal/adapters/outbound/gitrev"
	"github.com/cppgm/styletools/internal/adapters/outbound/runner"
	"github.com/cppgm/styletools/internal/adapters/outbound/tui"
	"github.com/cppgm/styletools/internal/application"
	"github.com/cppgm/styletools/internal/domain"
)

func newDiff2CmdsCmd() *cobra.Command {
	var (
		input        string
		output       string
		modifiedOnly bool
		execute      bool
		rev          string
		repo         string
		prefix       string
		verbose      bool
	)

	cmd := &cobra.Command{
		Use:   "diff2cmds",
		Short: "Generate formatter commands for the files touched by a diff",
		Long: `Read a unified diff and print one clang-format or yapf command per touched
C++, Java or Python file. With --modified-only the commands are restricted to
the changed line ranges; with --execute they are run instead of printed.

Typical usage:
    git diff --cached | styletools diff2cmds -m`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			opts := cfg.PlanOptions(modifiedOnly)
			if cmd.Flags().Changed("prefix") {
				opts.TargetPrefix = prefix
			}

			formatters := runner.New()
			formatters.Stdout = cmd.OutOrStdout()
			formatters.Stderr = cmd.ErrOrStderr()
			revisions := gitrev.New()
			svc := application.NewPlanService(diffparser.New(), revisions, formatters)

			var out io.WriteCloser
			if !execute {
				if out, err = openOutput(cmd, output); err != nil {
					return err
				}
				defer out.Close()
			}

			var plan *domain.Plan
			if rev != "" {
				if !revisions.IsGitRepo(repo) {
					return fmt.Errorf("%s is not a git repository", repo)
				}
				plan, err = svc.PlanRevision(repo, rev, opts)
			} else {
				plan, err = planFromInput(cmd, svc, input, opts)
			}
			if err != nil {
				return err
			}

			if verbose {
				fmt.Fprint(cmd.ErrOrStderr(), tui.RenderSkipped(plan.Skipped))
			}

			if execute {
				var before func(domain.FormatCommand)
				if verbose {
					before = func(c domain.FormatCommand) {
						fmt.Fprint(cmd.ErrOrStderr(), tui.RenderRunning(c))
					}
				}
				return svc.Execute(cmd.Context(), plan, before)
			}

			for _, line := range plan.Lines() {
				if _, err := fmt.Fprintln(out, line); err != nil {
					return fmt.Errorf("writing commands: %w", err)
				}
			}
			return out.Close()
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "-", "Input diff file, '-' means stdin")
	cmd.Flags().StringVarP(&output, "output", "o", "-", "Output file, '-' means stdout")
	cmd.Flags().BoolVarP(&modifiedOnly, "modified-only", "m", false, "Only reformat the hunks modified by the diff")
	cmd.Flags().BoolVarP(&execute, "execute", "x", false, "Run the generated commands instead of printing them")
	cmd.Flags().StringVar(&rev, "rev", "", "Plan the changes of this git revision instead of reading a diff")
	cmd.Flags().StringVar(&repo, "repo", ".", "Repository used with --rev")
	cmd.Flags().StringVar(&prefix, "prefix", domain.DefaultTargetPrefix, "Path segment stripped from target files")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Report skipped files and executed commands on stderr")

	return cmd
}

func planFromInput(cmd *cobra.Command, svc *application.PlanService, input string, opts domain.PlanOptions) (*domain.Plan, error) {
	in, err := openInput(cmd, input)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	data, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("reading diff: %w", err)
	}
	return svc.Plan(string(data), opts)
}

// openInput resolves "-" to the command's stdin and anything else to a file.
func openInput(cmd *cobra.Command, name string) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	return f, nil
}

// openOutput resolves "-" to the command's stdout and anything else to a
// created or truncated file.
func openOutput(cmd *cobra.Command, name string) (io.WriteCloser, error) {
	if name == "-" {
		return nopWriteCloser{cmd.OutOrStdout()}, nil
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, fmt.Errorf("opening output: %w", err)
	}
	return f, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
