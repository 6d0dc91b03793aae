package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/venuecast/internal/cli"
	"github.com/theirongolddev/venuecast/internal/config"
	"github.com/theirongolddev/venuecast/internal/forecast"
)

var (
	flagPlanFile string
	flagPlanName string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Manage stored projection plans",
}

var planInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a starter plan TOML file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPlanInit,
}

var planImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Validate a plan file and store it (replacing any previous version)",
	RunE:  runPlanImport,
}

var planListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored plans",
	RunE:  runPlanList,
}

func init() {
	planInitCmd.Flags().StringVar(&flagPlanName, "name", "my-venue", "Plan name to seed the file with")
	planImportCmd.Flags().StringVarP(&flagPlanFile, "file", "f", "", "Plan TOML file to import (required)")
	_ = planImportCmd.MarkFlagRequired("file")

	planCmd.AddCommand(planInitCmd, planImportCmd, planListCmd)
	rootCmd.AddCommand(planCmd)
}

func runPlanInit(_ *cobra.Command, args []string) error {
	path := "plan.toml"
	if len(args) == 1 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists, not overwriting", path)
	}

	appCfg := appConfig()
	plan := config.StarterPlan(flagPlanName, appCfg.General.DefaultHorizonWeeks)
	if err := config.SavePlan(path, plan); err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Printf("  Wrote starter plan to %s\n", path)
		fmt.Println("  Edit the assumptions, then run `venuecast plan import -f " + path + "`.")
	}
	return nil
}

func runPlanImport(_ *cobra.Command, _ []string) error {
	plan, err := config.LoadPlan(flagPlanFile)
	if err != nil {
		return err
	}

	// Generate once up front so fatal misconfiguration surfaces here, at
	// save time, rather than on every later read.
	if _, err := forecast.Generate(plan); err != nil {
		return fmt.Errorf("plan rejected: %w", err)
	}

	appCfg := appConfig()
	st, err := openStore(appCfg)
	if err != nil {
		return err
	}
	defer st.Close()

	pruned, err := st.SavePlan(plan)
	if err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Printf("  Stored plan %q (%d weeks)\n", plan.Name, plan.HorizonWeeks)
		if pruned > 0 {
			fmt.Printf("  Pruned %d actual record(s) beyond the new horizon\n", pruned)
		}
	}
	return nil
}

func runPlanList(_ *cobra.Command, _ []string) error {
	appCfg := appConfig()
	st, err := openStore(appCfg)
	if err != nil {
		return err
	}
	defer st.Close()

	plans, err := st.ListPlans()
	if err != nil {
		return err
	}
	if len(plans) == 0 {
		fmt.Println("\n  No stored plans. Run `venuecast plan import -f plan.toml` first.")
		return nil
	}

	rows := make([][]string, 0, len(plans))
	for _, p := range plans {
		rows = append(rows, []string{
			p.Name,
			fmt.Sprintf("%d", p.HorizonWeeks),
			fmt.Sprintf("%d", p.ActualWeeks),
			p.UpdatedAt.Local().Format("2006-01-02 15:04"),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Plan", "Horizon", "Actual Weeks", "Updated"},
		Rows:    rows,
	}))
	return nil
}
