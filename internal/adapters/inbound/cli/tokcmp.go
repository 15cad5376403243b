package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cppgm/styletools/internal/adapters/outbound/linediff"
	"github.com/cppgm/styletools/internal/adapters/outbound/tui"
	"github.com/cppgm/styletools/internal/application"
	"github.com/cppgm/styletools/internal/domain"
)

func newTokCmpCmd() *cobra.Command {
	var color bool

	cmd := &cobra.Command{
		Use:   "tokcmp FROM TO",
		Short: "Compare two tokenizer outputs",
		Long: `Compare the tokenizer output in FROM against TO. whitespace-sequence tokens are
ignored and new-line tokens compare equal regardless of their value. Differing
lines are printed and the exit status is 1.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := application.NewCompareService(linediff.New())
			cmp, err := svc.CompareFiles(args[0], args[1])
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderDiffLines(cmp.Lines, color))
			if cmp.Differs {
				return domain.ErrStreamsDiffer
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&color, "color", false, "Colour removed and added lines")

	return cmd
}
