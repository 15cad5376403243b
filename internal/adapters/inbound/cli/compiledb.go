package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cppgm/styletools/internal/adapters/outbound/bazel"
	"github.com/cppgm/styletools/internal/adapters/outbound/records"
	"github.com/cppgm/styletools/internal/application"
)

func newCompileDBCmd() *cobra.Command {
	var (
		bazelBin string
		output   string
		dryRun   bool
	)

	cmd := &cobra.Command{
		Use:   "compiledb",
		Short: "Assemble compile_commands.json from bazel compile-action records",
		Long: `Collect the per-file compile command records written under bazel-bin by the
gen_cpp_db action listener and merge them into compile_commands.json at the
workspace root. Run it after a build with the listener enabled.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("bazel") {
				bazelBin = cfg.CompileDB.Bazel
			}
			if !cmd.Flags().Changed("output") {
				output = cfg.CompileDB.Output
			}

			store := records.New()
			svc := application.NewCompileDBService(bazel.New(bazelBin), store)

			if dryRun {
				db, err := svc.Collect(cmd.Context(), output)
				if err != nil {
					return err
				}
				return store.Encode(cmd.OutOrStdout(), db.Records)
			}

			db, err := svc.Assemble(cmd.Context(), output)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d entries to %s\n", len(db.Records), db.Path)
			return nil
		},
	}

	cmd.Flags().StringVar(&bazelBin, "bazel", "bazel", "Bazel binary to query")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output path (default <workspace>/compile_commands.json)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the database instead of writing it")

	return cmd
}
