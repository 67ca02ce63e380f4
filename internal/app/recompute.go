package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

var recomputeCmd = &cobra.Command{
	Use:   "recompute",
	Short: "Rebuild the derived analytics tables",
	Long: `Rebuild the growth_metrics and market_share tables from the current
registration data. Each rebuild runs in a single transaction, so readers
never observe a partially rebuilt table.`,
	RunE: runRecompute,
}

func init() {
	RootCmd.AddCommand(recomputeCmd)
}

func runRecompute(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.RecomputeGrowthMetrics(); err != nil {
		return err
	}
	if err := st.RecomputeMarketShare(); err != nil {
		return err
	}

	stats, err := st.Stats()
	if err != nil {
		return err
	}
	fmt.Printf("Recomputed %d growth metric rows and %d market share rows\n",
		stats.GrowthMetricRows, stats.MarketShareRows)
	return nil
}
