package analytics

import (
	"fmt"
	"sort"

	"github.com/dustin/go-humanize"

	"github.com/blackwell-systems/vahanalytics/internal/vahan"
)

// DetectTrends scans the records for patterns worth flagging to an
// investor: an electric-vehicle surge, significant market-share shifts,
// and strong seasonal demand. Detectors that find nothing contribute no
// insight; an empty record set yields an empty list.
func DetectTrends(records []vahan.Record) []MarketInsight {
	var insights []MarketInsight
	insights = append(insights, detectEVSurge(records)...)
	insights = append(insights, detectShareShifts(records)...)
	insights = append(insights, detectSeasonality(records)...)
	return insights
}

// detectEVSurge flags electric-vehicle registrations growing more than 50%
// between the two most recent years with EV data.
func detectEVSurge(records []vahan.Record) []MarketInsight {
	byYear := make(map[int]int)
	for _, r := range records {
		if r.FuelType == "Electric" {
			byYear[r.Year] += r.Registrations
		}
	}
	if len(byYear) < 2 {
		return nil
	}

	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)

	current := byYear[years[len(years)-1]]
	previous := byYear[years[len(years)-2]]
	if previous <= 0 {
		return nil
	}
	growth := float64(current-previous) / float64(previous) * 100
	if growth <= 50 {
		return nil
	}

	return []MarketInsight{{
		InsightType: "Growth Trend",
		Title:       "Electric Vehicle Surge",
		Description: fmt.Sprintf("Electric vehicle registrations grew by %.1f%% YoY, indicating rapid adoption", growth),
		ImpactLevel: "High",
		DataPoints: map[string]string{
			"growth_rate":            fmt.Sprintf("%.1f%%", growth),
			"current_registrations":  humanize.Comma(int64(current)),
			"previous_registrations": humanize.Comma(int64(previous)),
		},
		Recommendation: "Consider investing in EV manufacturers and charging infrastructure",
	}}
}

// detectShareShifts flags manufacturers whose share of a category moved by
// more than two percentage points between consecutive years. Moves of five
// points or more are High impact.
func detectShareShifts(records []vahan.Record) []MarketInsight {
	var insights []MarketInsight

	for _, category := range sortedCategories(splitByCategory(records)) {
		// manufacturer totals per year within the category
		byYear := make(map[int]map[string]int)
		for _, r := range records {
			if r.Category != category {
				continue
			}
			m, ok := byYear[r.Year]
			if !ok {
				m = make(map[string]int)
				byYear[r.Year] = m
			}
			m[r.Manufacturer] += r.Registrations
		}

		years := make([]int, 0, len(byYear))
		for y := range byYear {
			years = append(years, y)
		}
		sort.Ints(years)

		for i, year := range years {
			if i == 0 {
				continue
			}
			current, previous := byYear[year], byYear[year-1]
			if previous == nil {
				continue
			}
			currentTotal, previousTotal := sumValues(current), sumValues(previous)
			if currentTotal <= 0 || previousTotal <= 0 {
				continue
			}

			manufacturers := make([]string, 0, len(current))
			for m := range current {
				manufacturers = append(manufacturers, m)
			}
			sort.Strings(manufacturers)

			for _, manufacturer := range manufacturers {
				prevCount, ok := previous[manufacturer]
				if !ok {
					continue
				}
				currentShare := float64(current[manufacturer]) / float64(currentTotal) * 100
				previousShare := float64(prevCount) / float64(previousTotal) * 100
				change := currentShare - previousShare
				if abs(change) <= 2 {
					continue
				}

				direction := "gained"
				if change < 0 {
					direction = "lost"
				}
				impact := "Medium"
				if abs(change) >= 5 {
					impact = "High"
				}
				recommendation := "Monitor for continued growth"
				if change < 0 {
					recommendation = "Investigate causes of decline"
				}

				insights = append(insights, MarketInsight{
					InsightType: "Market Share Shift",
					Title:       fmt.Sprintf("%s Market Position Change", manufacturer),
					Description: fmt.Sprintf("%s %s %.1f%% market share in %s segment",
						manufacturer, direction, abs(change), category),
					ImpactLevel: impact,
					DataPoints: map[string]string{
						"manufacturer":   manufacturer,
						"vehicle_type":   category,
						"share_change":   fmt.Sprintf("%.2f", change),
						"current_share":  fmt.Sprintf("%.2f", currentShare),
						"previous_share": fmt.Sprintf("%.2f", previousShare),
					},
					Recommendation: recommendation,
				})
			}
		}
	}

	return insights
}

// detectSeasonality flags quarterly demand variation above 20% of the mean.
func detectSeasonality(records []vahan.Record) []MarketInsight {
	// average registrations per quarter label across years
	type yearQuarter struct {
		year    int
		quarter string
	}
	totals := make(map[yearQuarter]int)
	for _, r := range records {
		totals[yearQuarter{r.Year, r.Quarter}] += r.Registrations
	}
	if len(totals) == 0 {
		return nil
	}

	sums := make(map[string]float64)
	counts := make(map[string]int)
	for yq, total := range totals {
		sums[yq.quarter] += float64(total)
		counts[yq.quarter]++
	}

	var quarters []string
	for q := range sums {
		quarters = append(quarters, q)
	}
	sort.Strings(quarters)

	var peak, low string
	var maxAvg, minAvg, totalAvg float64
	for i, q := range quarters {
		avg := sums[q] / float64(counts[q])
		totalAvg += avg
		if i == 0 || avg > maxAvg {
			maxAvg, peak = avg, q
		}
		if i == 0 || avg < minAvg {
			minAvg, low = avg, q
		}
	}
	totalAvg /= float64(len(quarters))
	if totalAvg <= 0 {
		return nil
	}

	strength := (maxAvg - minAvg) / totalAvg * 100
	if strength <= 20 {
		return nil
	}

	return []MarketInsight{{
		InsightType: "Seasonal Pattern",
		Title:       "Strong Seasonal Demand Pattern",
		Description: fmt.Sprintf("Vehicle registrations show %.1f%% seasonal variation, peaking in %s", strength, peak),
		ImpactLevel: "Medium",
		DataPoints: map[string]string{
			"peak_quarter":         peak,
			"low_quarter":          low,
			"seasonality_strength": fmt.Sprintf("%.1f%%", strength),
		},
		Recommendation: "Plan inventory and marketing campaigns around seasonal patterns",
	}}
}

func sumValues(m map[string]int) int {
	total := 0
	for _, v := range m {
		total += v
	}
	return total
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
