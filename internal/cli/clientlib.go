package cli

import (
	"fmt"

	"github.com/aem-labs/aemx/internal/config"
	"github.com/aem-labs/aemx/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	clientLibCSS    bool
	clientLibLess   bool
	clientLibJS     bool
	clientLibParent string
	clientLibDryRun bool
)

func init() {
	clientLibCmd.Flags().BoolVar(&clientLibCSS, "css", false, "Add css/style.css (default from config clientlib.css)")
	clientLibCmd.Flags().BoolVar(&clientLibLess, "less", false, "Add css/style.less (default from config clientlib.less)")
	clientLibCmd.Flags().BoolVar(&clientLibJS, "js", false, "Add js/script.js (default from config clientlib.js)")
	clientLibCmd.Flags().StringVar(&clientLibParent, "parent", ".", "Directory the client library is created in")
	clientLibCmd.Flags().BoolVar(&clientLibDryRun, "dry-run", false, "Show what would be created without writing")
	rootCmd.AddCommand(clientLibCmd)
}

var clientLibCmd = &cobra.Command{
	Use:   "clientlib <categories>",
	Short: "Scaffold a client library",
	Long: `Create <parent>/clientLibrary/ with its .content.xml, the selected asset files
and the css.txt/js.txt index files.

Examples:
  aemx clientlib site.hero --css --js --parent apps/site/components/hero
  aemx clientlib site.base --less --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := scaffold.ClientLibraryRequest{
			Categories: args[0],
			CSS:        boolOption(cmd, "css", config.KeyClientLibCSS, clientLibCSS),
			Less:       boolOption(cmd, "less", config.KeyClientLibLess, clientLibLess),
			JS:         boolOption(cmd, "js", config.KeyClientLibJS, clientLibJS),
		}

		ws := openWorkspace(clientLibParent, clientLibDryRun)
		if err := scaffold.ValidateClientLibrary(ws.backend, req); err != nil {
			return err
		}
		logger.Info("scaffolding client library", "categories", req.Categories)

		err := ws.scaffolds.ClientLibrary(req)
		ws.printCreated(cmd.OutOrStdout())
		if err != nil {
			return fmt.Errorf("scaffolding client library %q: %w", req.Categories, err)
		}
		return nil
	},
}
