package cli

import (
	"encoding/json"
	"fmt"

	"github.com/aem-labs/aemx/internal/usage"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var usageJSON bool

func init() {
	usageCmd.Flags().BoolVar(&usageJSON, "json", false, "Print findings as JSON")
	rootCmd.AddCommand(usageCmd)
}

var usageCmd = &cobra.Command{
	Use:   "usage [paths...]",
	Short: "List Java classes and fields used implicitly by AEM",
	Long: `Scan Java sources for OSGi components, Sling Models and the injected fields
the framework writes, so they are not reported as unused.

Directories are walked recursively; hidden directories are skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		roots := args
		if len(roots) == 0 {
			roots = []string{"."}
		}
		logger.Debug("scanning sources", "roots", roots)

		findings, err := usage.ScanFS(afero.NewOsFs(), roots)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if usageJSON {
			if findings == nil {
				findings = []usage.Finding{}
			}
			data, err := json.MarshalIndent(findings, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling findings: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		for _, f := range findings {
			fmt.Fprintln(out, f)
		}
		logger.Info("scan complete", "findings", len(findings))
		return nil
	},
}
