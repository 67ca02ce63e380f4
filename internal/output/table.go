// Package output provides terminal rendering for analytics results:
// fixed-width ASCII tables for metric listings and plain-text blocks for
// narrative output. ANSI colors are used only when stdout is a TTY and
// NO_COLOR is unset.
package output

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/blackwell-systems/vahanalytics/internal/analytics"
	"github.com/blackwell-systems/vahanalytics/internal/insights"
	"github.com/blackwell-systems/vahanalytics/internal/store"
)

const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorGray   = "\033[90m"
)

// IsColorEnabled returns true if ANSI color codes should be emitted.
// It checks that os.Stdout is a TTY and that the NO_COLOR env var is not set.
func IsColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

func colorize(color, text string) string {
	if IsColorEnabled() {
		return color + text + colorReset
	}
	return text
}

// RenderGrowthTable renders ranked growth metrics.
func RenderGrowthTable(metrics []analytics.GrowthMetric) string {
	if len(metrics) == 0 {
		return "No growth metrics available (need at least two periods of data).\n"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-5s %-28s %-10s %12s %12s %9s\n",
		"Rank", "Entity", "Period", "Current", "Previous", "Growth"))
	sb.WriteString(strings.Repeat("─", 82))
	sb.WriteString("\n")

	for _, m := range metrics {
		growth := fmt.Sprintf("%+.2f%%", m.GrowthRate)
		switch {
		case m.GrowthRate > 0:
			growth = colorize(colorGreen, growth)
		case m.GrowthRate < 0:
			growth = colorize(colorRed, growth)
		}
		sb.WriteString(fmt.Sprintf("%-5d %-28s %-10s %12s %12s %9s\n",
			m.Rank,
			truncate(m.Entity, 28),
			m.Period,
			humanize.Comma(int64(m.CurrentValue)),
			humanize.Comma(int64(m.PreviousValue)),
			growth))
	}

	return sb.String()
}

// RenderConcentrationTable renders per-category concentration metrics.
func RenderConcentrationTable(concentration map[string]analytics.Concentration) string {
	if len(concentration) == 0 {
		return "No concentration metrics available.\n"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-9s %-20s %8s %8s %8s %9s %8s  %s\n",
		"Category", "Leader", "Share", "CR4", "CR8", "HHI", "EffComp", "Structure"))
	sb.WriteString(strings.Repeat("─", 96))
	sb.WriteString("\n")

	for _, category := range sortedKeys(concentration) {
		c := concentration[category]
		sb.WriteString(fmt.Sprintf("%-9s %-20s %7.1f%% %7.1f%% %7.1f%% %9.0f %8.1f  %s\n",
			category,
			truncate(c.MarketLeader, 20),
			c.LeaderShare,
			c.CR4Ratio,
			c.CR8Ratio,
			c.HHIIndex,
			c.EffectiveCompetitors,
			c.MarketStructure))
	}

	return sb.String()
}

// RenderScorecardTable renders per-category investment scorecards, with the
// recommendation color-coded by sentiment.
func RenderScorecardTable(scorecard map[string]analytics.Scorecard) string {
	if len(scorecard) == 0 {
		return "No scorecard available.\n"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-9s %8s %8s %6s %8s %7s  %s\n",
		"Category", "Overall", "Growth", "Size", "Compete", "Innov", "Recommendation"))
	sb.WriteString(strings.Repeat("─", 92))
	sb.WriteString("\n")

	for _, category := range sortedKeys(scorecard) {
		s := scorecard[category]
		sb.WriteString(fmt.Sprintf("%-9s %8.1f %8.1f %6.0f %8.1f %7.1f  %s\n",
			category,
			s.OverallScore,
			s.GrowthMomentum,
			s.MarketSize,
			s.CompetitionIntensity,
			s.InnovationPotential,
			colorize(recommendationColor(s.Recommendation), s.Recommendation)))
	}

	return sb.String()
}

func recommendationColor(recommendation string) string {
	switch {
	case strings.HasPrefix(recommendation, "Strong Buy"), strings.HasPrefix(recommendation, "Buy"):
		return colorGreen
	case strings.HasPrefix(recommendation, "Hold"):
		return colorYellow
	default:
		return colorRed
	}
}

// RenderForecastTable renders per-category trend forecasts.
func RenderForecastTable(forecasts map[string]analytics.Forecast) string {
	if len(forecasts) == 0 {
		return "No forecasts available (need at least 4 quarters of data per category).\n"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-9s %12s %10s %12s %-9s  %s\n",
		"Category", "Last Actual", "Slope/Qtr", "±95% Conf", "Trend", "Next Quarters"))
	sb.WriteString(strings.Repeat("─", 100))
	sb.WriteString("\n")

	for _, category := range sortedKeys(forecasts) {
		f := forecasts[category]
		values := make([]string, len(f.ForecastValues))
		for i, v := range f.ForecastValues {
			values[i] = humanize.Comma(int64(v))
		}
		trend := f.GrowthTrend
		if trend == "Positive" {
			trend = colorize(colorGreen, trend)
		} else {
			trend = colorize(colorRed, trend)
		}
		sb.WriteString(fmt.Sprintf("%-9s %12s %10.1f %12.1f %-9s  %s\n",
			category,
			humanize.Comma(int64(f.LastActual)),
			f.TrendSlope,
			f.ConfidenceInterval,
			trend,
			strings.Join(values, ", ")))
	}

	return sb.String()
}

// RenderShareTable renders a stored market-share snapshot.
func RenderShareTable(shares []store.ShareRow) string {
	if len(shares) == 0 {
		return "No market share data available. Run 'vahanalytics recompute' after ingesting data.\n"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Market share — %s, %s\n\n", shares[0].Category, shares[0].Period))
	sb.WriteString(fmt.Sprintf("%-5s %-24s %14s %8s\n", "Rank", "Manufacturer", "Registrations", "Share"))
	sb.WriteString(strings.Repeat("─", 56))
	sb.WriteString("\n")

	for _, sh := range shares {
		sb.WriteString(fmt.Sprintf("%-5d %-24s %14s %7.2f%%\n",
			sh.Rank,
			truncate(sh.Manufacturer, 24),
			humanize.Comma(int64(sh.Registrations)),
			sh.SharePercent))
	}

	return sb.String()
}

// RenderLeadership renders a category's top-player position report.
func RenderLeadership(l analytics.Leadership) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s segment — %d players, %s structure, %s fragmentation\n\n",
		l.Category, l.TotalPlayers, l.MarketStructure, l.Fragmentation))
	sb.WriteString(fmt.Sprintf("  Leader:         %s (%.1f%%)\n", l.MarketLeader, l.LeaderShare))
	sb.WriteString(fmt.Sprintf("  Top 3 combined: %.1f%%\n", l.Top3Combined))
	sb.WriteString(fmt.Sprintf("  HHI:            %.0f\n", l.HHIIndex))

	if len(l.Top3Shares) > 0 {
		sb.WriteString("\n")
		for _, name := range sortedKeys(l.Top3Shares) {
			sb.WriteString(fmt.Sprintf("  %-24s %6.1f%%\n", name, l.Top3Shares[name]))
		}
	}

	return sb.String()
}

// RenderSummary renders an executive summary as a plain-text block.
func RenderSummary(summary insights.ExecutiveSummary) string {
	var sb strings.Builder

	sb.WriteString(colorize(colorBold, "Market Overview") + "\n")
	sb.WriteString(fmt.Sprintf("  Total registrations: %s\n", summary.MarketOverview.TotalRegistrations))
	sb.WriteString(fmt.Sprintf("  YoY growth:          %s\n", summary.MarketOverview.YoYGrowth))
	sb.WriteString(fmt.Sprintf("  Manufacturers:       %d\n", summary.MarketOverview.TotalManufacturers))
	sb.WriteString(fmt.Sprintf("  Dominant category:   %s\n", summary.MarketOverview.DominantCategory))
	sb.WriteString(fmt.Sprintf("  Market size:         %s\n", summary.MarketOverview.MarketSizeCategory))

	sb.WriteString("\n" + colorize(colorBold, "Key Highlights") + "\n")
	for _, h := range summary.KeyHighlights {
		sb.WriteString("  • " + h + "\n")
	}

	sb.WriteString("\n" + colorize(colorBold, "Investment Outlook") + "\n")
	sb.WriteString("  " + summary.InvestmentOutlook + "\n")

	sb.WriteString("\n" + colorize(colorBold, "Risk Assessment") + "\n")
	for _, r := range summary.RiskAssessment {
		sb.WriteString("  • " + r + "\n")
	}

	return sb.String()
}

// RenderThemes renders investment themes as plain-text blocks.
func RenderThemes(themes []insights.Theme) string {
	if len(themes) == 0 {
		return "No investment themes identified for the current dataset.\n"
	}

	var sb strings.Builder
	for i, t := range themes {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(colorize(colorBold, t.Name) + "\n")
		sb.WriteString("  " + t.Description + "\n")
		sb.WriteString("  Thesis:  " + t.InvestmentThesis + "\n")
		sb.WriteString("  Returns: " + t.PotentialReturns + "\n")
		for _, k := range sortedKeys(t.SupportingData) {
			sb.WriteString(fmt.Sprintf("  %-26s %s\n", k+":", t.SupportingData[k]))
		}
		sb.WriteString("  Risks:\n")
		for _, r := range t.RiskFactors {
			sb.WriteString("    • " + r + "\n")
		}
	}

	return sb.String()
}

// RenderInsights renders detected market insights.
func RenderInsights(list []analytics.MarketInsight) string {
	if len(list) == 0 {
		return "No notable trends detected.\n"
	}

	var sb strings.Builder
	for i, ins := range list {
		if i > 0 {
			sb.WriteString("\n")
		}
		impact := ins.ImpactLevel
		switch impact {
		case "High":
			impact = colorize(colorRed, impact)
		case "Medium":
			impact = colorize(colorYellow, impact)
		default:
			impact = colorize(colorGray, impact)
		}
		sb.WriteString(fmt.Sprintf("%s [%s impact] %s\n", colorize(colorBold, ins.Title), impact, ins.InsightType))
		sb.WriteString("  " + ins.Description + "\n")
		sb.WriteString("  → " + ins.Recommendation + "\n")
	}

	return sb.String()
}

// RenderCompetitive renders a segment's competitive matrix.
func RenderCompetitive(analysis insights.CompetitiveAnalysis) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s segment — %s registrations, leader %s (%.1f%%), fragmentation %s\n\n",
		analysis.Segment,
		humanize.Comma(int64(analysis.MarketSize)),
		analysis.MarketLeader,
		analysis.LeaderShare,
		analysis.Dynamics.FragmentationLevel))

	sb.WriteString(fmt.Sprintf("%-24s %8s %9s %14s  %s\n",
		"Manufacturer", "Share", "YoY", "Registrations", "Position"))
	sb.WriteString(strings.Repeat("─", 96))
	sb.WriteString("\n")

	for _, e := range analysis.Matrix {
		sb.WriteString(fmt.Sprintf("%-24s %7.2f%% %+8.2f%% %14s  %s\n",
			truncate(e.Manufacturer, 24),
			e.MarketShare,
			e.YoYGrowth,
			humanize.Comma(int64(e.Registrations)),
			e.Position))
	}

	return sb.String()
}

// RenderSizing renders a TAM/SAM/SOM estimate.
func RenderSizing(sizing insights.MarketSizing) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-5s %16s  %s\n", "", "Registrations", "Description"))
	sb.WriteString(strings.Repeat("─", 88))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%-5s %16s  %s\n", "TAM", humanize.Comma(int64(sizing.TAM.Value)), sizing.TAM.Description))
	sb.WriteString(fmt.Sprintf("%-5s %16s  %s\n", "SAM", humanize.Comma(int64(sizing.SAM.Value)), sizing.SAM.Description))
	sb.WriteString(fmt.Sprintf("%-5s %16s  %s\n", "SOM", humanize.Comma(int64(sizing.SOM.Value)), sizing.SOM.Description))
	sb.WriteString(fmt.Sprintf("\nCurrent penetration: %s   Growth potential: %s\n",
		sizing.CurrentPenetration, sizing.GrowthPotential))
	return sb.String()
}

// RenderStats renders database summary statistics.
func RenderStats(stats *store.Stats) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Records:        %s\n", humanize.Comma(int64(stats.TotalRecords))))
	sb.WriteString(fmt.Sprintf("Manufacturers:  %d\n", stats.TotalManufacturers))
	if stats.FirstDate != "" {
		sb.WriteString(fmt.Sprintf("Date range:     %s — %s\n", stats.FirstDate, stats.LastDate))
	}
	sb.WriteString(fmt.Sprintf("Growth metrics: %s rows\n", humanize.Comma(int64(stats.GrowthMetricRows))))
	sb.WriteString(fmt.Sprintf("Market share:   %s rows\n", humanize.Comma(int64(stats.MarketShareRows))))

	if len(stats.CategoryTotals) > 0 {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%-9s %10s %16s\n", "Category", "Records", "Registrations"))
		sb.WriteString(strings.Repeat("─", 40))
		sb.WriteString("\n")
		for _, ct := range stats.CategoryTotals {
			sb.WriteString(fmt.Sprintf("%-9s %10d %16s\n",
				ct.Category, ct.Records, humanize.Comma(int64(ct.Registrations))))
		}
	}

	return sb.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
