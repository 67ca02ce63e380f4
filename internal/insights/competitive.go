package insights

import (
	"math"
	"sort"

	"github.com/blackwell-systems/vahanalytics/internal/analytics"
	"github.com/blackwell-systems/vahanalytics/internal/vahan"
)

// maxMatrixEntries caps the competitive matrix at the top players by share.
const maxMatrixEntries = 10

// Competitive builds a share-vs-growth positioning report for one vehicle
// segment. Each of the top manufacturers is classified on the classic
// portfolio matrix: share above 15% and growth above 10% is a Star, high
// share with low growth a Cash Cow, low share with high growth a Question
// Mark, and the remainder Dogs. Returns false when the segment has no data.
func Competitive(records []vahan.Record, category string) (CompetitiveAnalysis, bool) {
	type manufacturerTotal struct {
		name  string
		total int
	}

	var segment []vahan.Record
	totals := make(map[string]int)
	marketSize := 0
	for _, r := range records {
		if r.Category != category {
			continue
		}
		segment = append(segment, r)
		totals[r.Manufacturer] += r.Registrations
		marketSize += r.Registrations
	}
	if marketSize == 0 {
		return CompetitiveAnalysis{}, false
	}

	ranked := make([]manufacturerTotal, 0, len(totals))
	for name, total := range totals {
		ranked = append(ranked, manufacturerTotal{name, total})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].total != ranked[j].total {
			return ranked[i].total > ranked[j].total
		}
		return ranked[i].name < ranked[j].name
	})

	growthMetrics := analytics.Growth(segment, analytics.YoY, analytics.ByManufacturer)
	growthFor := func(manufacturer string) float64 {
		for _, m := range growthMetrics {
			if m.Entity == manufacturer {
				return m.GrowthRate
			}
		}
		return 0
	}

	var matrix []CompetitorEntry
	for i, mt := range ranked {
		if i >= maxMatrixEntries {
			break
		}
		share := float64(mt.total) / float64(marketSize) * 100
		growth := growthFor(mt.name)
		matrix = append(matrix, CompetitorEntry{
			Manufacturer:  mt.name,
			MarketShare:   roundShare(share),
			YoYGrowth:     growth,
			Position:      competitivePosition(share, growth),
			Registrations: mt.total,
		})
	}

	dynamics := MarketDynamics{
		FragmentationLevel: fragmentationLevel(len(ranked)),
		MarketShareLeaders: make(map[string]float64),
	}
	for i := 0; i < len(ranked) && i < 3; i++ {
		dynamics.MarketShareLeaders[ranked[i].name] = roundShare(float64(ranked[i].total) / float64(marketSize) * 100)
	}
	for _, entry := range matrix {
		if entry.YoYGrowth > 15 {
			dynamics.GrowthLeaders = append(dynamics.GrowthLeaders, entry.Manufacturer)
		}
		if entry.Position == "Question Mark (Low Share, High Growth)" {
			dynamics.EmergingPlayers = append(dynamics.EmergingPlayers, entry.Manufacturer)
		}
	}

	return CompetitiveAnalysis{
		Segment:      category,
		MarketSize:   marketSize,
		MarketLeader: ranked[0].name,
		LeaderShare:  roundShare(float64(ranked[0].total) / float64(marketSize) * 100),
		Matrix:       matrix,
		Dynamics:     dynamics,
	}, true
}

func competitivePosition(share, growth float64) string {
	highShare := share > 15
	highGrowth := growth > 10
	switch {
	case highShare && highGrowth:
		return "Star (High Share, High Growth)"
	case highShare:
		return "Cash Cow (High Share, Low Growth)"
	case highGrowth:
		return "Question Mark (Low Share, High Growth)"
	default:
		return "Dog (Low Share, Low Growth)"
	}
}

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

func roundShare(v float64) float64 {
	return math.Round(v*100) / 100
}
