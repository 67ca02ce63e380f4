package insights

import (
	"fmt"
	"math"
	"sort"

	"github.com/dustin/go-humanize"

	"github.com/blackwell-systems/vahanalytics/internal/analytics"
	"github.com/blackwell-systems/vahanalytics/internal/vahan"
)

// Themes identifies up to three investment themes supported by the data:
// electric-vehicle adoption, per-category market consolidation, and a
// high-growth segment opportunity. Themes whose preconditions do not hold
// are simply absent. Potential-return labels are fixed qualitative ranges,
// not derived from the data.
func Themes(records []vahan.Record) []Theme {
	var themes []Theme

	if t, ok := evTheme(records); ok {
		themes = append(themes, t)
	}

	concentration := analytics.MarketConcentration(records)
	for _, category := range sortedKeys(concentration) {
		c := concentration[category]
		if c.HHIIndex > 1500 {
			themes = append(themes, consolidationTheme(category, c))
		}
	}

	if t, ok := highGrowthTheme(records); ok {
		themes = append(themes, t)
	}

	return themes
}

// evTheme reports the electric-vehicle adoption theme when the dataset has
// Electric rows across at least two years. The CAGR runs from the first to
// the last year with EV data.
func evTheme(records []vahan.Record) (Theme, bool) {
	byYear := make(map[int]int)
	evTotal := 0
	total := 0
	for _, r := range records {
		total += r.Registrations
		if r.FuelType == "Electric" {
			byYear[r.Year] += r.Registrations
			evTotal += r.Registrations
		}
	}
	if len(byYear) < 2 || total == 0 {
		return Theme{}, false
	}

	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)

	first := byYear[years[0]]
	last := byYear[years[len(years)-1]]
	if first <= 0 {
		return Theme{}, false
	}
	cagr := (math.Pow(float64(last)/float64(first), 1/float64(len(years)-1)) - 1) * 100

	return Theme{
		Name:        "Electric Vehicle Adoption",
		Description: "Rapid transition to electric mobility across vehicle segments",
		SupportingData: map[string]string{
			"ev_cagr":                  fmt.Sprintf("%.1f%%", cagr),
			"current_ev_registrations": humanize.Comma(int64(last)),
			"ev_market_share":          fmt.Sprintf("%.1f%%", float64(evTotal)/float64(total)*100),
		},
		InvestmentThesis: "Government incentives and environmental concerns driving massive shift to EVs",
		RiskFactors: []string{
			"Charging infrastructure development lag",
			"Battery technology and cost challenges",
			"Policy changes affecting incentives",
		},
		PotentialReturns: "High (20-30% CAGR potential)",
	}, true
}

// consolidationTheme describes a category whose concentration favors its
// leaders (HHI above 1500).
func consolidationTheme(category string, c analytics.Concentration) Theme {
	return Theme{
		Name:        fmt.Sprintf("%s Market Consolidation", category),
		Description: fmt.Sprintf("Increasing concentration in %s segment favoring market leaders", category),
		SupportingData: map[string]string{
			"market_leader": c.MarketLeader,
			"leader_share":  fmt.Sprintf("%.1f%%", c.LeaderShare),
			"top_4_share":   fmt.Sprintf("%.1f%%", c.CR4Ratio),
			"hhi_index":     fmt.Sprintf("%.0f", c.HHIIndex),
		},
		InvestmentThesis: "Market leaders gaining pricing power and economies of scale",
		RiskFactors: []string{
			"Regulatory intervention in concentrated markets",
			"New entrant disruption",
			"Technology shifts favoring smaller players",
		},
		PotentialReturns: "Medium-High (15-25% CAGR for leaders)",
	}
}

// highGrowthTheme reports the single fastest-growing category, provided
// its YoY growth exceeds 15%.
func highGrowthTheme(records []vahan.Record) (Theme, bool) {
	metrics := analytics.Growth(records, analytics.YoY, analytics.ByCategory)

	var fastest *analytics.GrowthMetric
	for i := range metrics {
		if metrics[i].GrowthRate > 15 && (fastest == nil || metrics[i].GrowthRate > fastest.GrowthRate) {
			fastest = &metrics[i]
		}
	}
	if fastest == nil {
		return Theme{}, false
	}

	return Theme{
		Name:        "High-Growth Segment Opportunity",
		Description: fmt.Sprintf("Exceptional growth in %s segment", fastest.Entity),
		SupportingData: map[string]string{
			"growth_rate":           fmt.Sprintf("%.1f%%", fastest.GrowthRate),
			"current_registrations": humanize.Comma(int64(fastest.CurrentValue)),
			"growth_absolute":       humanize.Comma(int64(fastest.GrowthAbsolute)),
		},
		InvestmentThesis: "Structural demand drivers supporting sustained high growth",
		RiskFactors: []string{
			"Growth rate normalization as market matures",
			"Increased competition as segment attracts entrants",
			"Economic downturn impact on discretionary purchases",
		},
		PotentialReturns: "High (25-40% CAGR potential)",
	}, true
}
