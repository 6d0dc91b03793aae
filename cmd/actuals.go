package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/venuecast/internal/cli"
	"github.com/theirongolddev/venuecast/internal/model"
)

var (
	flagActualWeek     int
	flagActualRevenue  float64
	flagActualExpenses float64
	flagActualDate     string
)

var actualsCmd = &cobra.Command{
	Use:   "actuals",
	Short: "Record and list realized weekly results",
}

var actualsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record one week's realized results (replaces a previous record for the week)",
	RunE:  runActualsAdd,
}

var actualsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded weeks",
	RunE:  runActualsList,
}

func init() {
	actualsAddCmd.Flags().IntVarP(&flagActualWeek, "week", "w", 0, "Week index (required)")
	actualsAddCmd.Flags().Float64VarP(&flagActualRevenue, "revenue", "r", 0, "Realized revenue")
	actualsAddCmd.Flags().Float64VarP(&flagActualExpenses, "expenses", "e", 0, "Realized expenses")
	actualsAddCmd.Flags().StringVar(&flagActualDate, "date", "", "Week date (YYYY-MM-DD)")
	_ = actualsAddCmd.MarkFlagRequired("week")

	actualsCmd.AddCommand(actualsAddCmd, actualsListCmd)
	rootCmd.AddCommand(actualsCmd)
}

func runActualsAdd(_ *cobra.Command, _ []string) error {
	appCfg := appConfig()
	name, err := resolvePlanName(appCfg)
	if err != nil {
		return err
	}

	rec := model.ActualRecord{
		Week:     flagActualWeek,
		Revenue:  flagActualRevenue,
		Expenses: flagActualExpenses,
	}
	if flagActualDate != "" {
		d, err := time.Parse("2006-01-02", flagActualDate)
		if err != nil {
			return fmt.Errorf("invalid --date %q: %w", flagActualDate, err)
		}
		rec.Date = d
	}

	st, err := openStore(appCfg)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.UpsertActual(name, rec); err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Printf("  Recorded week %d for %q: revenue %s, expenses %s\n",
			rec.Week, name, cli.FormatMoney(rec.Revenue), cli.FormatMoney(rec.Expenses))
	}
	return nil
}

func runActualsList(_ *cobra.Command, _ []string) error {
	appCfg := appConfig()
	name, err := resolvePlanName(appCfg)
	if err != nil {
		return err
	}

	st, err := openStore(appCfg)
	if err != nil {
		return err
	}
	defer st.Close()

	records, err := st.ListActuals(name)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Printf("\n  No actual records for %q yet.\n", name)
		return nil
	}

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		date := ""
		if !rec.Date.IsZero() {
			date = rec.Date.Format("2006-01-02")
		}
		rows = append(rows, []string{
			cli.FormatWeek(rec.Week),
			date,
			cli.FormatMoney(rec.Revenue),
			cli.FormatMoney(rec.Expenses),
			cli.FormatMoney(rec.Profit()),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Actuals for %s", name),
		Headers: []string{"Week", "Date", "Revenue", "Expenses", "Profit"},
		Rows:    rows,
	}))
	return nil
}
