package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/vahanalytics/internal/output"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show database statistics",
	Long: `Display summary statistics for the database: record counts, date
range, per-category distribution, and derived-table row counts.`,
	RunE: runStats,
}

func init() {
	RootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	stats, err := st.Stats()
	if err != nil {
		return err
	}

	fmt.Print(output.RenderStats(stats))
	return nil
}
