package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/aem-labs/aemx/internal/branding"
	"github.com/aem-labs/aemx/internal/config"
	"github.com/aem-labs/aemx/internal/plan"
	"github.com/aem-labs/aemx/internal/templates"
	"github.com/spf13/cobra"
)

var checkPlan string

func init() {
	doctorCmd.Flags().StringVar(&checkPlan, "check-plan", "", "Validate a plan file at the given path")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the " + branding.DisplayName() + " installation",
	Long:  `Check the config file, the template override directory and every template, and optionally validate a plan file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		runConfigCheck(out)
		failed := runTemplatesCheck(out)

		if checkPlan != "" {
			if err := runPlanCheck(out, checkPlan); err != nil {
				return err
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d template(s) unavailable", failed)
		}
		return nil
	},
}

func runConfigCheck(out io.Writer) {
	fmt.Fprintln(out, "Config check:")
	path := config.FilePath()
	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(out, "  [INFO] No config file at %s, using defaults\n", path)
	} else {
		fmt.Fprintf(out, "  [ OK ] %s\n", path)
	}
	fmt.Fprintf(out, "  [INFO] log.level = %s\n", config.Get(config.KeyLogLevel))
}

// runTemplatesCheck renders every template and returns how many came back
// empty.
func runTemplatesCheck(out io.Writer) int {
	fmt.Fprintln(out, "Templates check:")

	dir := config.Get(config.KeyTemplatesDir)
	if dir != "" {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			fmt.Fprintf(out, "  [WARN] templates.dir %s is not a directory, using built-in templates\n", dir)
		} else {
			fmt.Fprintf(out, "  [ OK ] Overrides from %s\n", dir)
		}
	}

	r := templates.New(templates.WithOverrideDir(dir), templates.WithLogger(logger))
	failed := 0
	for _, id := range templates.IDs() {
		if r.Render(id) == "" {
			fmt.Fprintf(out, "  [MISS] %s\n", id)
			failed++
			continue
		}
		fmt.Fprintf(out, "  [ OK ] %s\n", id)
	}
	return failed
}

func runPlanCheck(out io.Writer, path string) error {
	fmt.Fprintf(out, "Plan validation: %s\n", path)

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return fmt.Errorf("plan validation failed: %w", err)
	}
	result, err := plan.Validate(data)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return fmt.Errorf("plan validation failed: %w", err)
	}

	if !result.Valid {
		fmt.Fprintf(out, "  [FAIL] %d validation issue(s):\n", len(result.Issues))
		for _, issue := range result.Issues {
			fmt.Fprintf(out, "    - %s\n", issue)
		}
		return fmt.Errorf("plan %s has %d validation issue(s)", path, len(result.Issues))
	}

	p, err := plan.Parse(data, path)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return err
	}
	if err := p.CheckRequires(buildVersion); err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return err
	}
	fmt.Fprintf(out, "  [ OK ] Valid plan: %d component(s), %d client librar(ies)\n", len(p.Components), len(p.ClientLibs))
	return nil
}
