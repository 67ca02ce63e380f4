package insights

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/blackwell-systems/vahanalytics/internal/analytics"
	"github.com/blackwell-systems/vahanalytics/internal/vahan"
)

const noData = "No data available"

// Summarize builds the executive summary for the given records. An empty
// dataset returns a well-defined placeholder summary rather than an error.
func Summarize(records []vahan.Record) ExecutiveSummary {
	if len(records) == 0 {
		return ExecutiveSummary{
			MarketOverview: MarketOverview{
				TotalRegistrations: "0",
				YoYGrowth:          "N/A",
				TotalManufacturers: 0,
				DominantCategory:   noData,
				MarketSizeCategory: noData,
			},
			KeyHighlights:     []string{"No data available for the selected filters"},
			InvestmentOutlook: noData,
			RiskAssessment:    []string{noData},
		}
	}

	total := 0
	manufacturers := make(map[string]struct{})
	byYear := make(map[int]int)
	byCategory := make(map[string]int)
	latestYear := 0
	for _, r := range records {
		total += r.Registrations
		manufacturers[r.Manufacturer] = struct{}{}
		byYear[r.Year] += r.Registrations
		byCategory[r.Category] += r.Registrations
		if r.Year > latestYear {
			latestYear = r.Year
		}
	}

	yoy := 0.0
	if prev := byYear[latestYear-1]; prev > 0 {
		yoy = float64(byYear[latestYear]-prev) / float64(prev) * 100
	}

	dominant, dominantTotal := "", 0
	for _, category := range sortedKeys(byCategory) {
		if byCategory[category] > dominantTotal {
			dominant, dominantTotal = category, byCategory[category]
		}
	}

	concentration := analytics.MarketConcentration(records)

	return ExecutiveSummary{
		MarketOverview: MarketOverview{
			TotalRegistrations: humanize.Comma(int64(total)),
			YoYGrowth:          fmt.Sprintf("%.1f%%", yoy),
			TotalManufacturers: len(manufacturers),
			DominantCategory:   dominant,
			MarketSizeCategory: classifyMarketSize(total),
		},
		KeyHighlights: []string{
			fmt.Sprintf("Market grew %.1f%% YoY with %s total registrations", yoy, humanize.Comma(int64(total))),
			fmt.Sprintf("%s segment dominates with %s registrations", dominant, humanize.Comma(int64(dominantTotal))),
			fmt.Sprintf("Market features %d active manufacturers across all segments", len(manufacturers)),
			fmt.Sprintf("Concentration varies by segment: %s", concentrationSummary(concentration)),
		},
		InvestmentOutlook: investmentOutlook(records),
		RiskAssessment:    assessRisks(records, concentration),
	}
}

// classifyMarketSize buckets total registrations into a size label.
func classifyMarketSize(total int) string {
	switch {
	case total > 10_000_000:
		return "Large Market (>10M registrations)"
	case total > 1_000_000:
		return "Medium Market (1-10M registrations)"
	default:
		return "Small Market (<1M registrations)"
	}
}

// concentrationSummary collapses per-category structures into one phrase.
func concentrationSummary(concentration map[string]analytics.Concentration) string {
	if len(concentration) == 0 {
		return noData
	}
	allConcentrated, allCompetitive := true, true
	for _, c := range concentration {
		if c.MarketStructure != "Highly Concentrated" {
			allConcentrated = false
		}
		if !strings.Contains(c.MarketStructure, "Competitive") {
			allCompetitive = false
		}
	}
	switch {
	case allConcentrated:
		return "All segments highly concentrated"
	case allCompetitive:
		return "All segments competitive"
	default:
		return "Mixed concentration levels across segments"
	}
}

// investmentOutlook maps the mean scorecard score to an outlook phrase,
// using the same thresholds as the per-category recommendation.
func investmentOutlook(records []vahan.Record) string {
	scorecard := analytics.InvestmentScorecard(records)
	if len(scorecard) == 0 {
		return noData
	}
	sum := 0.0
	for _, s := range scorecard {
		sum += s.OverallScore
	}
	avg := sum / float64(len(scorecard))

	switch {
	case avg >= 75:
		return "Positive - Strong growth fundamentals with favorable market dynamics"
	case avg >= 60:
		return "Cautiously Optimistic - Good opportunities with selective approach needed"
	case avg >= 40:
		return "Neutral - Mixed signals requiring careful analysis"
	default:
		return "Cautious - Challenging market conditions with limited opportunities"
	}
}

// assessRisks lists data-driven risks (concentration, demand decline)
// followed by the standing market risks that apply regardless of data.
func assessRisks(records []vahan.Record, concentration map[string]analytics.Concentration) []string {
	var risks []string

	var concentrated []string
	for _, category := range sortedKeys(concentration) {
		if concentration[category].HHIIndex > 2500 {
			concentrated = append(concentrated, category)
		}
	}
	if len(concentrated) > 0 {
		risks = append(risks, fmt.Sprintf("High concentration risk in %s segments", strings.Join(concentrated, ", ")))
	}

	var declining []string
	seen := make(map[string]struct{})
	for _, m := range analytics.Growth(records, analytics.YoY, analytics.ByCategory) {
		if m.GrowthRate < -5 {
			if _, ok := seen[m.Entity]; !ok {
				seen[m.Entity] = struct{}{}
				declining = append(declining, m.Entity)
			}
		}
	}
	if len(declining) > 0 {
		risks = append(risks, fmt.Sprintf("Declining demand in %s", strings.Join(declining, ", ")))
	}

	risks = append(risks,
		"Economic downturn impact on vehicle purchases",
		"Regulatory changes affecting vehicle standards",
		"Technology disruption from new mobility solutions",
	)
	return risks
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
