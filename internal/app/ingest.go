package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/vahanalytics/internal/vahan"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest <csv>",
	Short: "Load registration data from a CSV file",
	Long: `Load registration records from a CSV file, replacing any existing
data, then rebuild the derived growth-metric and market-share tables.

The ingest is not additive: the registrations table is fully replaced on
each run, and the derived tables are recomputed from scratch. The CSV must
have a header row with columns:

  date,year,quarter,month,vehicle_type,manufacturer,registrations[,fuel_type]`,
	Args: cobra.ExactArgs(1),
	RunE: runIngest,
}

func init() {
	RootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	records, err := vahan.ReadCSV(args[0])
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("%s contains no records", args[0])
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	// Schema creation is idempotent; ingest into a fresh DB just works.
	if err := st.CreateSchema(); err != nil {
		return err
	}
	if err := st.ReplaceRecords(records); err != nil {
		return err
	}
	if err := st.RecomputeGrowthMetrics(); err != nil {
		return err
	}
	if err := st.RecomputeMarketShare(); err != nil {
		return err
	}

	fmt.Printf("Ingested %d records and recomputed derived metrics\n", len(records))
	return nil
}
