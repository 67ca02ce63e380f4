package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/vahanalytics/internal/vahan"
)

func TestCompetitive_Positions(t *testing.T) {
	// Star: 40% share, +25% growth. Cash cow: 35% share, +2%.
	// Question mark: 15% share, +50%. Dog: 10% share, -10%.
	records := []vahan.Record{
		rec(2021, "Q1", "2W", "Star", 3200),
		rec(2022, "Q1", "2W", "Star", 4000),
		rec(2021, "Q1", "2W", "Cow", 3431),
		rec(2022, "Q1", "2W", "Cow", 3500),
		rec(2021, "Q1", "2W", "Quest", 1000),
		rec(2022, "Q1", "2W", "Quest", 1500),
		rec(2021, "Q1", "2W", "Dog", 1111),
		rec(2022, "Q1", "2W", "Dog", 1000),
	}

	analysis, ok := Competitive(records, "2W")
	require.True(t, ok)

	assert.Equal(t, "2W", analysis.Segment)
	assert.Equal(t, "Star", analysis.MarketLeader)
	require.Len(t, analysis.Matrix, 4)

	positions := make(map[string]string)
	for _, e := range analysis.Matrix {
		positions[e.Manufacturer] = e.Position
	}
	assert.Equal(t, "Star (High Share, High Growth)", positions["Star"])
	assert.Equal(t, "Cash Cow (High Share, Low Growth)", positions["Cow"])
	assert.Equal(t, "Question Mark (Low Share, High Growth)", positions["Quest"])
	assert.Equal(t, "Dog (Low Share, Low Growth)", positions["Dog"])

	// Matrix is ordered by total registrations descending.
	assert.Equal(t, "Star", analysis.Matrix[0].Manufacturer)
	assert.Equal(t, "Cow", analysis.Matrix[1].Manufacturer)

	assert.ElementsMatch(t, []string{"Star", "Quest"}, analysis.Dynamics.GrowthLeaders)
	assert.Equal(t, []string{"Quest"}, analysis.Dynamics.EmergingPlayers)
	assert.Equal(t, "Low", analysis.Dynamics.FragmentationLevel)
	assert.Len(t, analysis.Dynamics.MarketShareLeaders, 3)
}

func TestCompetitive_SharesSumToMarket(t *testing.T) {
	records := []vahan.Record{
		rec(2022, "Q1", "4W", "A", 600),
		rec(2022, "Q1", "4W", "B", 300),
		rec(2022, "Q1", "4W", "C", 100),
	}

	analysis, ok := Competitive(records, "4W")
	require.True(t, ok)

	assert.Equal(t, 1000, analysis.MarketSize)
	assert.Equal(t, 60.0, analysis.LeaderShare)

	var total float64
	for _, e := range analysis.Matrix {
		total += e.MarketShare
	}
	assert.InDelta(t, 100.0, total, 0.1)
}

func TestCompetitive_MatrixCapped(t *testing.T) {
	var records []vahan.Record
	for i := 0; i < 15; i++ {
		name := "Maker-" + string(rune('A'+i))
		records = append(records, rec(2022, "Q1", "2W", name, 100+i))
	}

	analysis, ok := Competitive(records, "2W")
	require.True(t, ok)
	assert.Len(t, analysis.Matrix, 10, "matrix holds at most the top ten")
	assert.Equal(t, "Medium", analysis.Dynamics.FragmentationLevel)
}

func TestCompetitive_MissingSegment(t *testing.T) {
	records := []vahan.Record{rec(2022, "Q1", "2W", "A", 100)}

	_, ok := Competitive(records, "4W")
	assert.False(t, ok)

	_, ok = Competitive(nil, "2W")
	assert.False(t, ok)
}

func TestCompetitive_NoGrowthHistoryDefaultsToZero(t *testing.T) {
	records := []vahan.Record{rec(2022, "Q1", "2W", "A", 100)}

	analysis, ok := Competitive(records, "2W")
	require.True(t, ok)
	require.Len(t, analysis.Matrix, 1)
	assert.Zero(t, analysis.Matrix[0].YoYGrowth)
	assert.Equal(t, "Cash Cow (High Share, Low Growth)", analysis.Matrix[0].Position)
}
