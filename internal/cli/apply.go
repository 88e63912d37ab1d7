package cli

import (
	"fmt"

	"github.com/aem-labs/aemx/internal/plan"
	"github.com/spf13/cobra"
)

var (
	applyRoot   string
	applyDryRun bool
)

func init() {
	applyCmd.Flags().StringVar(&applyRoot, "root", ".", "Directory plan parents are relative to")
	applyCmd.Flags().BoolVar(&applyDryRun, "dry-run", false, "Show what would be created without writing")
	rootCmd.AddCommand(applyCmd)
}

var applyCmd = &cobra.Command{
	Use:   "apply <plan.yaml>",
	Short: "Run every scaffold listed in a plan file",
	Long: `Validate a plan file and scaffold its components, then its client libraries.
The run stops at the first failing entry; entries already generated are kept.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := plan.Load(args[0])
		if err != nil {
			return err
		}
		if err := p.CheckRequires(buildVersion); err != nil {
			return err
		}
		logger.Info("applying plan", "file", args[0], "components", len(p.Components), "clientlibs", len(p.ClientLibs))

		ws := openWorkspace(applyRoot, applyDryRun)
		err = plan.Apply(ws.scaffolds, ws.backend, p)
		ws.printCreated(cmd.OutOrStdout())
		if err != nil {
			return fmt.Errorf("applying %s: %w", args[0], err)
		}
		return nil
	},
}
