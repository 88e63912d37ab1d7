package cli

import (
	"fmt"

	"github.com/aem-labs/aemx/internal/config"
	"github.com/aem-labs/aemx/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	componentGroup        string
	componentDialog       bool
	componentCqDialog     bool
	componentCqEditConfig bool
	componentCqTemplate   bool
	componentParent       string
	componentDryRun       bool
)

func init() {
	componentCmd.Flags().StringVar(&componentGroup, "group", "", "Component group shown in the editor (default from config component.group)")
	componentCmd.Flags().BoolVar(&componentDialog, "dialog", false, "Create a classic dialog/ node")
	componentCmd.Flags().BoolVar(&componentCqDialog, "cq-dialog", false, "Create a Touch UI _cq_dialog/ node")
	componentCmd.Flags().BoolVar(&componentCqEditConfig, "cq-edit-config", false, "Create a _cq_editConfig/ node")
	componentCmd.Flags().BoolVar(&componentCqTemplate, "cq-template", false, "Create a _cq_template/ node")
	componentCmd.Flags().StringVar(&componentParent, "parent", ".", "Directory the component is created in")
	componentCmd.Flags().BoolVar(&componentDryRun, "dry-run", false, "Show what would be created without writing")
	rootCmd.AddCommand(componentCmd)
}

var componentCmd = &cobra.Command{
	Use:   "component <title>",
	Short: "Scaffold an AEM component",
	Long: `Create <parent>/<title>/ with <title>.html, .content.xml and the selected dialog
and configuration nodes.

Examples:
  aemx component hero --group "Site - Content" --cq-dialog --cq-edit-config
  aemx component teaser --group "Site - Content" --parent apps/site/components --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := scaffold.ComponentRequest{
			Title:        args[0],
			Group:        stringOption(cmd, "group", config.KeyComponentGroup, componentGroup),
			Dialog:       boolOption(cmd, "dialog", config.KeyComponentDialog, componentDialog),
			CqDialog:     boolOption(cmd, "cq-dialog", config.KeyComponentCqDialog, componentCqDialog),
			CqEditConfig: boolOption(cmd, "cq-edit-config", config.KeyComponentCqEditConfig, componentCqEditConfig),
			CqTemplate:   boolOption(cmd, "cq-template", config.KeyComponentCqTemplate, componentCqTemplate),
		}

		ws := openWorkspace(componentParent, componentDryRun)
		if err := scaffold.ValidateComponent(ws.backend, req); err != nil {
			return err
		}
		logger.Info("scaffolding component", "title", req.Title, "group", req.Group)

		err := ws.scaffolds.Component(req)
		ws.printCreated(cmd.OutOrStdout())
		if err != nil {
			return fmt.Errorf("scaffolding component %q: %w", req.Title, err)
		}
		return nil
	},
}
