package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/vahanalytics/internal/vahan"
)

func TestInvestmentScorecard_Bounds(t *testing.T) {
	records := vahan.SampleData(3, 42)

	scorecard := InvestmentScorecard(records)
	require.NotEmpty(t, scorecard)

	for category, sc := range scorecard {
		for name, v := range map[string]float64{
			"overall":     sc.OverallScore,
			"growth":      sc.GrowthMomentum,
			"size":        sc.MarketSize,
			"competition": sc.CompetitionIntensity,
			"innovation":  sc.InnovationPotential,
		} {
			assert.GreaterOrEqualf(t, v, 0.0, "%s %s score below 0", category, name)
			assert.LessOrEqualf(t, v, 100.0, "%s %s score above 100", category, name)
		}
		assert.NotEmpty(t, sc.Recommendation)
		assert.NotEmpty(t, sc.KeyMetrics.MarketLeader)
		assert.Positive(t, sc.KeyMetrics.TotalMarketSize)
	}
}

func TestInvestmentScorecard_SizeLookup(t *testing.T) {
	records := []vahan.Record{
		rec(2021, "Q1", "2W", "A", 100),
		rec(2022, "Q1", "2W", "A", 110),
		rec(2021, "Q1", "3W", "B", 100),
		rec(2022, "Q1", "3W", "B", 110),
		rec(2021, "Q1", "4W", "C", 100),
		rec(2022, "Q1", "4W", "C", 110),
	}

	scorecard := InvestmentScorecard(records)
	require.Len(t, scorecard, 3)
	assert.Equal(t, 67.0, scorecard["2W"].MarketSize)
	assert.Equal(t, 33.0, scorecard["3W"].MarketSize)
	assert.Equal(t, 100.0, scorecard["4W"].MarketSize)
}

func TestInvestmentScorecard_MonopolyComponents(t *testing.T) {
	// One manufacturer, 10% YoY growth, no fuel data.
	records := []vahan.Record{
		rec(2021, "Q1", "4W", "Solo", 1000),
		rec(2022, "Q1", "4W", "Solo", 1100),
	}

	sc, ok := InvestmentScorecard(records)["4W"]
	require.True(t, ok)

	// growth: (10 + 20) * 2 = 60
	assert.Equal(t, 60.0, sc.GrowthMomentum)
	// competition: max(0, 100 - 10000/50) = 0 for a monopoly
	assert.Equal(t, 0.0, sc.CompetitionIntensity)
	// innovation: neutral 50 without fuel data
	assert.Equal(t, 50.0, sc.InnovationPotential)
	// overall: 60*0.4 + 100*0.3 + 0*0.2 + 50*0.1 = 59
	assert.Equal(t, 59.0, sc.OverallScore)
	assert.Equal(t, "Hold - Mixed signals, monitor closely", sc.Recommendation)

	assert.Equal(t, 10.0, sc.KeyMetrics.AvgYoYGrowth)
	assert.Equal(t, 2100, sc.KeyMetrics.TotalMarketSize)
	assert.Equal(t, 1, sc.KeyMetrics.NumberOfPlayers)
	assert.Equal(t, "Solo", sc.KeyMetrics.MarketLeader)
}

func TestInvestmentScorecard_SinglePeriod(t *testing.T) {
	// One year of data: no growth metrics to average, score still lands
	// inside [0, 100].
	records := []vahan.Record{rec(2022, "Q1", "2W", "A", 1000)}

	sc, ok := InvestmentScorecard(records)["2W"]
	require.True(t, ok)
	assert.Equal(t, 40.0, sc.GrowthMomentum, "zero average growth maps to (0+20)*2")
	assert.GreaterOrEqual(t, sc.OverallScore, 0.0)
	assert.LessOrEqual(t, sc.OverallScore, 100.0)
}

func TestRecommendationThresholds(t *testing.T) {
	assert.Equal(t, "Strong Buy - High growth potential with favorable market dynamics", recommendationFor(75))
	assert.Equal(t, "Buy - Positive outlook with moderate risk", recommendationFor(74.9))
	assert.Equal(t, "Buy - Positive outlook with moderate risk", recommendationFor(60))
	assert.Equal(t, "Hold - Mixed signals, monitor closely", recommendationFor(59.9))
	assert.Equal(t, "Hold - Mixed signals, monitor closely", recommendationFor(40))
	assert.Equal(t, "Avoid - Challenging market conditions", recommendationFor(39.9))
	assert.Equal(t, "Avoid - Challenging market conditions", recommendationFor(0))
}

func TestInnovationScore(t *testing.T) {
	noFuel := []vahan.Record{rec(2022, "Q1", "2W", "A", 100)}
	assert.Equal(t, 50.0, innovationScore(noFuel))

	twoFuels := []vahan.Record{
		{Year: 2022, Quarter: "Q1", Month: 1, Category: "2W", Manufacturer: "A", Registrations: 100, FuelType: "Petrol"},
		{Year: 2022, Quarter: "Q1", Month: 1, Category: "2W", Manufacturer: "B", Registrations: 100, FuelType: "Electric"},
	}
	assert.Equal(t, 40.0, innovationScore(twoFuels))

	many := make([]vahan.Record, 0, 6)
	for _, f := range []string{"Petrol", "Diesel", "Electric", "CNG", "Hybrid", "LPG"} {
		many = append(many, vahan.Record{Year: 2022, Quarter: "Q1", Month: 1, Category: "2W", Manufacturer: "A", Registrations: 10, FuelType: f})
	}
	assert.Equal(t, 100.0, innovationScore(many), "capped at 100")
}

func TestGrowthMomentumClamps(t *testing.T) {
	// -80% growth: (-80+20)*2 = -120, clamped to 0.
	crashing := []vahan.Record{
		rec(2021, "Q1", "2W", "A", 1000),
		rec(2022, "Q1", "2W", "A", 200),
	}
	sc := InvestmentScorecard(crashing)["2W"]
	assert.Equal(t, 0.0, sc.GrowthMomentum)

	// +100% growth: (100+20)*2 = 240, clamped to 100.
	booming := []vahan.Record{
		rec(2021, "Q1", "2W", "A", 1000),
		rec(2022, "Q1", "2W", "A", 2000),
	}
	sc = InvestmentScorecard(booming)["2W"]
	assert.Equal(t, 100.0, sc.GrowthMomentum)
}
