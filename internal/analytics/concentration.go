package analytics

import (
	"math"
	"sort"

	"github.com/blackwell-systems/vahanalytics/internal/vahan"
)

// share is one manufacturer's percent share of a category total.
type share struct {
	name string
	pct  float64
}

// MarketConcentration computes concentration metrics for every category
// present in the records: CR4/CR8 ratios, the Herfindahl-Hirschman Index
// over percent shares (0-10000 scale), and a structure classification.
// Categories whose registrations sum to zero are omitted.
func MarketConcentration(records []vahan.Record) map[string]Concentration {
	result := make(map[string]Concentration)

	for category, shares := range categoryShares(records) {
		hhi := 0.0
		for _, sh := range shares {
			hhi += sh.pct * sh.pct
		}

		effective := 0.0
		if hhi > 0 {
			effective = 10000 / hhi
		}

		top5 := make(map[string]float64)
		for i := 0; i < len(shares) && i < 5; i++ {
			top5[shares[i].name] = round2(shares[i].pct)
		}

		result[category] = Concentration{
			TotalManufacturers:   len(shares),
			MarketLeader:         shares[0].name,
			LeaderShare:          round2(shares[0].pct),
			CR4Ratio:             topShareSum(shares, 4),
			CR8Ratio:             topShareSum(shares, 8),
			HHIIndex:             round2(hhi),
			EffectiveCompetitors: round2(effective),
			MarketStructure:      classifyStructure(hhi),
			Top5Shares:           top5,
		}
	}

	return result
}

// MarketLeadership analyzes the competitive position of a single category's
// top players. The second return value is false when the category has no
// registrations.
func MarketLeadership(records []vahan.Record, category string) (Leadership, bool) {
	var filtered []vahan.Record
	for _, r := range records {
		if r.Category == category {
			filtered = append(filtered, r)
		}
	}

	shares, ok := categoryShares(filtered)[category]
	if !ok {
		return Leadership{}, false
	}

	hhi := 0.0
	for _, sh := range shares {
		hhi += sh.pct * sh.pct
	}

	top3 := make(map[string]float64)
	top3Combined := 0.0
	for i := 0; i < len(shares) && i < 3; i++ {
		top3[shares[i].name] = round2(shares[i].pct)
		top3Combined += shares[i].pct
	}

	return Leadership{
		Category:        category,
		MarketLeader:    shares[0].name,
		LeaderShare:     round2(shares[0].pct),
		Top3Shares:      top3,
		Top3Combined:    round2(math.Min(100, top3Combined)),
		HHIIndex:        round2(hhi),
		MarketStructure: classifyStructure(hhi),
		TotalPlayers:    len(shares),
		Fragmentation:   fragmentationLevel(len(shares)),
	}, true
}

// categoryShares returns, per category, each manufacturer's percent share
// of the category total, sorted descending (ties broken by name).
func categoryShares(records []vahan.Record) map[string][]share {
	totals := make(map[string]map[string]int)
	for _, r := range records {
		byManufacturer, ok := totals[r.Category]
		if !ok {
			byManufacturer = make(map[string]int)
			totals[r.Category] = byManufacturer
		}
		byManufacturer[r.Manufacturer] += r.Registrations
	}

	result := make(map[string][]share)
	for category, byManufacturer := range totals {
		total := 0
		for _, n := range byManufacturer {
			total += n
		}
		if total <= 0 {
			continue
		}

		shares := make([]share, 0, len(byManufacturer))
		for name, n := range byManufacturer {
			shares = append(shares, share{name: name, pct: float64(n) / float64(total) * 100})
		}
		sort.Slice(shares, func(i, j int) bool {
			if shares[i].pct != shares[j].pct {
				return shares[i].pct > shares[j].pct
			}
			return shares[i].name < shares[j].name
		})
		result[category] = shares
	}

	return result
}

// topShareSum returns the combined share of the top n manufacturers,
// clamped to 100 to absorb float accumulation error.
func topShareSum(shares []share, n int) float64 {
	sum := 0.0
	for i := 0; i < len(shares) && i < n; i++ {
		sum += shares[i].pct
	}
	return round2(math.Min(100, sum))
}

// classifyStructure maps an HHI value to a market-structure label using
// the standard antitrust thresholds.
func classifyStructure(hhi float64) string {
	switch {
	case hhi > 2500:
		return "Highly Concentrated"
	case hhi > 1500:
		return "Moderately Concentrated"
	case hhi > 1000:
		return "Unconcentrated"
	default:
		return "Highly Competitive"
	}
}

// fragmentationLevel classifies a category by participant count.
func fragmentationLevel(players int) string {
	switch {
	case players > 15:
		return "High"
	case players > 8:
		return "Medium"
	default:
		return "Low"
	}
}
