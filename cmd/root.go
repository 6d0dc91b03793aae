// Package cmd implements the venuecast CLI commands.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/venuecast/internal/config"
	"github.com/theirongolddev/venuecast/internal/forecast"
	"github.com/theirongolddev/venuecast/internal/model"
	"github.com/theirongolddev/venuecast/internal/store"
)

var (
	flagDB    string
	flagPlan  string
	flagQuiet bool
)

// memo caches generated forecasts across subcommand steps within one run.
// Generation is deterministic, so the cache needs no invalidation.
var memo = forecast.NewMemo()

var rootCmd = &cobra.Command{
	Use:   "venuecast",
	Short: "Weekly financial forecasting for event-driven businesses",
	Long: "Maintain weekly financial plans, generate multi-week forecasts,\n" +
		"overlay actual results, and compare scenarios.",
	RunE: runForecast,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Plan database path (default: data dir)")
	rootCmd.PersistentFlags().StringVarP(&flagPlan, "plan", "p", "", "Plan name (default: configured default plan)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress status output")
}

// appConfig loads the application config, falling back to defaults with a
// warning when the file is unreadable.
func appConfig() config.Config {
	cfg, err := config.Load()
	if err != nil && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Config error (%v), using defaults\n", err)
	}
	return cfg
}

func dbPath(cfg config.Config) string {
	if flagDB != "" {
		return flagDB
	}
	return filepath.Join(config.DataDir(cfg), "venuecast.db")
}

func openStore(cfg config.Config) (*store.Store, error) {
	return store.Open(dbPath(cfg))
}

// resolvePlanName picks the plan the command operates on: the --plan flag,
// then the configured default.
func resolvePlanName(cfg config.Config) (string, error) {
	if flagPlan != "" {
		return flagPlan, nil
	}
	if cfg.General.DefaultPlan != "" {
		return cfg.General.DefaultPlan, nil
	}
	return "", fmt.Errorf("no plan selected: pass --plan or set general.default_plan in %s", config.Path())
}

// loadPlanData is the shared loading path used by reporting commands: the
// stored plan, its generated forecast, and its actual records.
func loadPlanData() (model.ProjectionConfig, []model.WeeklyProjection, []model.ActualRecord, error) {
	appCfg := appConfig()

	name, err := resolvePlanName(appCfg)
	if err != nil {
		return model.ProjectionConfig{}, nil, nil, err
	}

	st, err := openStore(appCfg)
	if err != nil {
		return model.ProjectionConfig{}, nil, nil, err
	}
	defer st.Close()

	plan, err := st.LoadPlan(name)
	if err != nil {
		return model.ProjectionConfig{}, nil, nil, err
	}

	series, err := memo.Generate(plan)
	if err != nil {
		return model.ProjectionConfig{}, nil, nil, err
	}

	actuals, err := st.ListActuals(name)
	if err != nil {
		return model.ProjectionConfig{}, nil, nil, err
	}

	return plan, series, actuals, nil
}

// parseWeekSet parses a comma-separated week list like "1,2,5".
func parseWeekSet(s string) (map[int]bool, error) {
	weeks := make(map[int]bool)
	if s == "" {
		return weeks, nil
	}
	for _, part := range strings.Split(s, ",") {
		w, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid week %q", part)
		}
		weeks[w] = true
	}
	return weeks, nil
}
