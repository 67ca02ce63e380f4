package analytics

import (
	"math"
	"sort"

	"github.com/blackwell-systems/vahanalytics/internal/vahan"
)

// Scorecard weights: growth momentum dominates, then market size,
// competition intensity, innovation potential.
const (
	weightGrowth      = 0.4
	weightSize        = 0.3
	weightCompetition = 0.2
	weightInnovation  = 0.1
)

// categorySizeScore is a fixed category-size lookup rather than a true
// percentile of market size. Kept deliberately: the upstream data source
// ships this mapping and downstream consumers expect it.
var categorySizeScore = map[string]float64{
	vahan.ThreeWheeler: 33,
	vahan.TwoWheeler:   67,
	vahan.FourWheeler:  100,
}

// InvestmentScorecard rates each category's investment attractiveness.
// Sub-scores are each normalized to 0-100:
//
//   - growth: clamp(0, 100, (avg YoY manufacturer growth + 20) * 2)
//   - size: fixed lookup per category
//   - competition: max(0, 100 - HHI/50), higher meaning more competitive
//   - innovation: min(100, distinct fuel types * 20) when fuel data is
//     present, else a flat 50
//
// The overall score is the weighted sum, and the recommendation label is a
// deterministic function of it.
func InvestmentScorecard(records []vahan.Record) map[string]Scorecard {
	byCategory := splitByCategory(records)
	concentration := MarketConcentration(records)

	scorecard := make(map[string]Scorecard)
	for category, catRecords := range byCategory {
		conc, ok := concentration[category]
		if !ok {
			continue
		}

		avgGrowth := averageGrowthRate(Growth(catRecords, YoY, ByManufacturer))
		growthScore := clamp((avgGrowth+20)*2, 0, 100)

		sizeScore, ok := categorySizeScore[category]
		if !ok {
			sizeScore = 100
		}

		competitionScore := math.Max(0, 100-conc.HHIIndex/50)
		innovationScore := innovationScore(catRecords)

		overall := growthScore*weightGrowth + sizeScore*weightSize +
			competitionScore*weightCompetition + innovationScore*weightInnovation

		total := 0
		for _, r := range catRecords {
			total += r.Registrations
		}

		scorecard[category] = Scorecard{
			OverallScore:         round1(overall),
			GrowthMomentum:       round1(growthScore),
			MarketSize:           sizeScore,
			CompetitionIntensity: round1(competitionScore),
			InnovationPotential:  round1(innovationScore),
			Recommendation:       recommendationFor(overall),
			KeyMetrics: KeyMetrics{
				AvgYoYGrowth:    round2(avgGrowth),
				TotalMarketSize: total,
				NumberOfPlayers: conc.TotalManufacturers,
				MarketLeader:    conc.MarketLeader,
			},
		}
	}

	return scorecard
}

// recommendationFor maps an overall score to an investment recommendation.
func recommendationFor(score float64) string {
	switch {
	case score >= 75:
		return "Strong Buy - High growth potential with favorable market dynamics"
	case score >= 60:
		return "Buy - Positive outlook with moderate risk"
	case score >= 40:
		return "Hold - Mixed signals, monitor closely"
	default:
		return "Avoid - Challenging market conditions"
	}
}

// averageGrowthRate returns the mean growth rate, or 0 when there are no
// metrics (a single-period category has nothing to average).
func averageGrowthRate(metrics []GrowthMetric) float64 {
	if len(metrics) == 0 {
		return 0
	}
	sum := 0.0
	for _, m := range metrics {
		sum += m.GrowthRate
	}
	return sum / float64(len(metrics))
}

// innovationScore scores fuel-type diversity: 20 points per distinct fuel
// type, capped at 100. Without any fuel data the score is a neutral 50.
func innovationScore(records []vahan.Record) float64 {
	fuels := make(map[string]struct{})
	for _, r := range records {
		if r.FuelType != "" {
			fuels[r.FuelType] = struct{}{}
		}
	}
	if len(fuels) == 0 {
		return 50
	}
	return math.Min(100, float64(len(fuels))*20)
}

func splitByCategory(records []vahan.Record) map[string][]vahan.Record {
	byCategory := make(map[string][]vahan.Record)
	for _, r := range records {
		byCategory[r.Category] = append(byCategory[r.Category], r)
	}
	return byCategory
}

// sortedCategories returns the categories present in the map in sorted
// order, for deterministic iteration.
func sortedCategories[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
