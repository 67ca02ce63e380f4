package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/vahanalytics/internal/insights"
	"github.com/blackwell-systems/vahanalytics/internal/output"
	"github.com/blackwell-systems/vahanalytics/internal/store"
)

var summaryJSON bool

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the executive summary and investment themes",
	Long: `Generate the investor-facing executive summary (market overview, key
highlights, outlook, risk assessment) together with the investment themes
the current data supports. An empty database produces a placeholder
summary rather than an error.`,
	RunE: runSummary,
}

func init() {
	summaryCmd.Flags().BoolVar(&summaryJSON, "json", false, "emit JSON instead of text")

	RootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	records, err := st.QueryRecords(store.Filter{})
	if err != nil {
		return err
	}

	summary := insights.Summarize(records)
	themes := insights.Themes(records)

	if summaryJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			ExecutiveSummary insights.ExecutiveSummary `json:"executive_summary"`
			Themes           []insights.Theme          `json:"investment_themes"`
		}{summary, themes})
	}

	fmt.Print(output.RenderSummary(summary))
	fmt.Println()
	fmt.Print(output.RenderThemes(themes))
	return nil
}
