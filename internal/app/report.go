package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/vahanalytics/internal/analytics"
	"github.com/blackwell-systems/vahanalytics/internal/insights"
	"github.com/blackwell-systems/vahanalytics/internal/output"
	"github.com/blackwell-systems/vahanalytics/internal/store"
	"github.com/blackwell-systems/vahanalytics/internal/vahan"
)

var (
	reportCategories []string
	reportPeriod     string
	reportLimit      int
	reportJSON       bool
	reportStored     bool
)

var reportCmd = &cobra.Command{
	Use:   "report <growth|concentration|scorecard|forecast|share|leadership|competitive|sizing|trends>",
	Short: "Compute and display analytics reports",
	Long: `Compute analytics over the stored registration data and render the
result as a table (or JSON with --json).

Report kinds:
  growth         ranked period-over-period growth by manufacturer
  concentration  per-category CR4/CR8/HHI market-structure metrics
  scorecard      per-category investment attractiveness scores
  forecast       per-category linear-trend registration forecasts
  share          stored market-share snapshot (requires --category)
  leadership     top-player position for one segment (requires --category)
  competitive    share-vs-growth matrix for one segment (requires --category)
  sizing         top-down TAM/SAM/SOM estimate
  trends         detected market insights (EV surge, share shifts, seasonality)`,
	Example: `  vahanalytics report growth --period qoq --limit 10
  vahanalytics report concentration --category 2W --json
  vahanalytics report share --category 4W
  vahanalytics report competitive --category 2W`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"growth", "concentration", "scorecard", "forecast", "share", "leadership", "competitive", "sizing", "trends"},
	RunE:      runReport,
}

func init() {
	reportCmd.Flags().StringSliceVar(&reportCategories, "category", nil, "restrict to vehicle categories (2W, 3W, 4W)")
	reportCmd.Flags().StringVar(&reportPeriod, "period", "yoy", "growth period: yoy or qoq")
	reportCmd.Flags().IntVar(&reportLimit, "limit", 0, "limit growth rows (0 means all)")
	reportCmd.Flags().BoolVar(&reportJSON, "json", false, "emit JSON instead of a table")
	reportCmd.Flags().BoolVar(&reportStored, "stored", false, "read growth metrics from the derived table instead of recomputing")

	RootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	switch args[0] {
	case "growth":
		return reportGrowth(st)
	case "concentration":
		return reportConcentration(st)
	case "scorecard":
		return reportScorecard(st)
	case "forecast":
		return reportForecast(st)
	case "share":
		return reportShare(st)
	case "leadership":
		return reportLeadership(st)
	case "competitive":
		return reportCompetitive(st)
	case "sizing":
		return reportSizing(st)
	case "trends":
		return reportTrends(st)
	default:
		return fmt.Errorf("unknown report kind %q", args[0])
	}
}

// loadRecords reads the registration rows matching the --category filter.
func loadRecords(st *store.Store) ([]vahan.Record, error) {
	return st.QueryRecords(store.Filter{Categories: reportCategories})
}

func reportGrowth(st *store.Store) error {
	if reportPeriod != "yoy" && reportPeriod != "qoq" {
		return fmt.Errorf("invalid period %q (must be yoy or qoq)", reportPeriod)
	}

	if reportStored {
		rows, err := st.GrowthMetrics(reportPeriod, "manufacturer", reportLimit)
		if err != nil {
			return err
		}
		return emit(rows, renderStoredGrowth(rows))
	}

	records, err := loadRecords(st)
	if err != nil {
		return err
	}

	period := analytics.YoY
	groupBy := analytics.ByManufacturerCategory
	if reportPeriod == "qoq" {
		period = analytics.QoQ
	}

	metrics := analytics.Growth(records, period, groupBy)
	if reportLimit > 0 && len(metrics) > reportLimit {
		metrics = metrics[:reportLimit]
	}
	return emit(metrics, output.RenderGrowthTable(metrics))
}

func reportConcentration(st *store.Store) error {
	records, err := loadRecords(st)
	if err != nil {
		return err
	}
	concentration := analytics.MarketConcentration(records)
	return emit(concentration, output.RenderConcentrationTable(concentration))
}

func reportScorecard(st *store.Store) error {
	records, err := loadRecords(st)
	if err != nil {
		return err
	}
	scorecard := analytics.InvestmentScorecard(records)
	return emit(scorecard, output.RenderScorecardTable(scorecard))
}

func reportForecast(st *store.Store) error {
	records, err := loadRecords(st)
	if err != nil {
		return err
	}
	forecasts := analytics.ForecastRegistrations(records, 4)
	return emit(forecasts, output.RenderForecastTable(forecasts))
}

func reportShare(st *store.Store) error {
	if len(reportCategories) != 1 {
		return fmt.Errorf("report share requires exactly one --category")
	}
	shares, err := st.MarketLeaders(reportCategories[0], "")
	if err != nil {
		return err
	}
	return emit(shares, output.RenderShareTable(shares))
}

func reportLeadership(st *store.Store) error {
	if len(reportCategories) != 1 {
		return fmt.Errorf("report leadership requires exactly one --category")
	}
	records, err := st.QueryRecords(store.Filter{})
	if err != nil {
		return err
	}
	leadership, ok := analytics.MarketLeadership(records, reportCategories[0])
	if !ok {
		fmt.Printf("No data for category %s\n", reportCategories[0])
		return nil
	}
	return emit(leadership, output.RenderLeadership(leadership))
}

func reportCompetitive(st *store.Store) error {
	if len(reportCategories) != 1 {
		return fmt.Errorf("report competitive requires exactly one --category")
	}
	records, err := st.QueryRecords(store.Filter{})
	if err != nil {
		return err
	}
	analysis, ok := insights.Competitive(records, reportCategories[0])
	if !ok {
		fmt.Printf("No data for category %s\n", reportCategories[0])
		return nil
	}
	return emit(analysis, output.RenderCompetitive(analysis))
}

func reportSizing(st *store.Store) error {
	records, err := loadRecords(st)
	if err != nil {
		return err
	}
	sizing := insights.Sizing(records)
	return emit(sizing, output.RenderSizing(sizing))
}

func reportTrends(st *store.Store) error {
	records, err := loadRecords(st)
	if err != nil {
		return err
	}
	trends := analytics.DetectTrends(records)
	return emit(trends, output.RenderInsights(trends))
}

func renderStoredGrowth(rows []store.GrowthRow) string {
	metrics := make([]analytics.GrowthMetric, len(rows))
	for i, r := range rows {
		metrics[i] = analytics.GrowthMetric{
			Entity:         r.EntityName,
			Period:         r.Period,
			CurrentValue:   r.CurrentValue,
			PreviousValue:  r.PreviousValue,
			GrowthRate:     r.GrowthRate,
			GrowthAbsolute: r.GrowthAbsolute,
			Rank:           i + 1,
		}
	}
	return output.RenderGrowthTable(metrics)
}

// emit prints v as indented JSON when --json is set, otherwise the
// pre-rendered table.
func emit(v any, table string) error {
	if !reportJSON {
		fmt.Print(table)
		return nil
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
