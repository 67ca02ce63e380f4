package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/vahanalytics/internal/vahan"
)

func TestMarketConcentration_KnownShares(t *testing.T) {
	// Shares 40/30/20/10 give HHI = 1600+900+400+100 = 3000.
	records := []vahan.Record{
		rec(2022, "Q1", "2W", "A", 400),
		rec(2022, "Q1", "2W", "B", 300),
		rec(2022, "Q1", "2W", "C", 200),
		rec(2022, "Q1", "2W", "D", 100),
	}

	result := MarketConcentration(records)
	require.Contains(t, result, "2W")
	c := result["2W"]

	assert.Equal(t, 4, c.TotalManufacturers)
	assert.Equal(t, "A", c.MarketLeader)
	assert.Equal(t, 40.0, c.LeaderShare)
	assert.Equal(t, 100.0, c.CR4Ratio)
	assert.Equal(t, 100.0, c.CR8Ratio)
	assert.Equal(t, 3000.0, c.HHIIndex)
	assert.Equal(t, "Highly Concentrated", c.MarketStructure)
	assert.InDelta(t, 10000.0/3000.0, c.EffectiveCompetitors, 0.01)
	assert.Equal(t, map[string]float64{"A": 40, "B": 30, "C": 20, "D": 10}, c.Top5Shares)
}

func TestMarketConcentration_Monopoly(t *testing.T) {
	records := []vahan.Record{rec(2022, "Q1", "3W", "Bajaj Auto", 1000)}

	c := MarketConcentration(records)["3W"]
	assert.Equal(t, 100.0, c.LeaderShare)
	assert.Equal(t, 10000.0, c.HHIIndex)
	assert.Equal(t, 1.0, c.EffectiveCompetitors)
	assert.Equal(t, "Highly Concentrated", c.MarketStructure)
}

func TestMarketConcentration_Invariants(t *testing.T) {
	records := vahan.SampleData(3, 42)
	for category, c := range MarketConcentration(records) {
		assert.LessOrEqualf(t, c.CR4Ratio, c.CR8Ratio, "%s: CR4 must not exceed CR8", category)
		assert.LessOrEqualf(t, c.CR8Ratio, 100.0, "%s: CR8 must not exceed 100", category)
		assert.Greaterf(t, c.HHIIndex, 0.0, "%s: HHI must be positive", category)
		assert.LessOrEqualf(t, c.HHIIndex, 10000.0, "%s: HHI bounded by monopoly", category)
		assert.LessOrEqualf(t, len(c.Top5Shares), 5, "%s: at most five top shares", category)
		assert.NotEmptyf(t, c.MarketLeader, "%s: leader must be named", category)
	}
}

func TestMarketConcentration_StructureThresholds(t *testing.T) {
	assert.Equal(t, "Highly Concentrated", classifyStructure(2501))
	assert.Equal(t, "Moderately Concentrated", classifyStructure(2500))
	assert.Equal(t, "Moderately Concentrated", classifyStructure(1501))
	assert.Equal(t, "Unconcentrated", classifyStructure(1500))
	assert.Equal(t, "Unconcentrated", classifyStructure(1001))
	assert.Equal(t, "Highly Competitive", classifyStructure(1000))
	assert.Equal(t, "Highly Competitive", classifyStructure(500))
}

func TestMarketConcentration_SkipsZeroTotal(t *testing.T) {
	records := []vahan.Record{
		rec(2022, "Q1", "2W", "A", 0),
		rec(2022, "Q1", "4W", "B", 100),
	}

	result := MarketConcentration(records)
	assert.NotContains(t, result, "2W")
	assert.Contains(t, result, "4W")
}

func TestMarketLeadership(t *testing.T) {
	records := []vahan.Record{
		rec(2022, "Q1", "2W", "A", 500),
		rec(2022, "Q1", "2W", "B", 300),
		rec(2022, "Q1", "2W", "C", 150),
		rec(2022, "Q1", "2W", "D", 50),
		rec(2022, "Q1", "4W", "Other", 9999),
	}

	l, ok := MarketLeadership(records, "2W")
	require.True(t, ok)

	assert.Equal(t, "2W", l.Category)
	assert.Equal(t, "A", l.MarketLeader)
	assert.Equal(t, 50.0, l.LeaderShare)
	assert.Equal(t, 95.0, l.Top3Combined)
	assert.Equal(t, map[string]float64{"A": 50, "B": 30, "C": 15}, l.Top3Shares)
	assert.Equal(t, 4, l.TotalPlayers)
	assert.Equal(t, "Low", l.Fragmentation)
	assert.Equal(t, "Highly Concentrated", l.MarketStructure)
}

func TestMarketLeadership_MissingCategory(t *testing.T) {
	_, ok := MarketLeadership([]vahan.Record{rec(2022, "Q1", "2W", "A", 100)}, "4W")
	assert.False(t, ok)

	_, ok = MarketLeadership(nil, "2W")
	assert.False(t, ok)
}

func TestFragmentationLevel(t *testing.T) {
	assert.Equal(t, "Low", fragmentationLevel(8))
	assert.Equal(t, "Medium", fragmentationLevel(9))
	assert.Equal(t, "Medium", fragmentationLevel(15))
	assert.Equal(t, "High", fragmentationLevel(16))
}
