package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/vahanalytics/internal/vahan"
)

func evRec(year int, count int) vahan.Record {
	r := rec(year, "Q1", "2W", "Ola Electric", count)
	r.FuelType = "Electric"
	return r
}

func TestThemes_Empty(t *testing.T) {
	assert.Empty(t, Themes(nil))
}

func TestThemes_EVAdoption(t *testing.T) {
	records := []vahan.Record{
		evRec(2020, 1000),
		evRec(2021, 2000),
		evRec(2022, 4000),
		rec(2022, "Q1", "2W", "Hero MotoCorp", 3000),
	}

	themes := Themes(records)

	var ev *Theme
	for i := range themes {
		if themes[i].Name == "Electric Vehicle Adoption" {
			ev = &themes[i]
		}
	}
	require.NotNil(t, ev, "expected an EV adoption theme")

	// Doubling for two consecutive years is a 100% CAGR.
	assert.Equal(t, "100.0%", ev.SupportingData["ev_cagr"])
	assert.Equal(t, "4,000", ev.SupportingData["current_ev_registrations"])
	// 7000 of 10000 total registrations are electric.
	assert.Equal(t, "70.0%", ev.SupportingData["ev_market_share"])
	assert.Equal(t, "High (20-30% CAGR potential)", ev.PotentialReturns)
	assert.Len(t, ev.RiskFactors, 3)
}

func TestThemes_NoEVThemeWithSingleYear(t *testing.T) {
	records := []vahan.Record{evRec(2022, 1000)}
	for _, th := range Themes(records) {
		assert.NotEqual(t, "Electric Vehicle Adoption", th.Name)
	}
}

func TestThemes_Consolidation(t *testing.T) {
	// 2W monopoly (HHI 10000) qualifies; four even 4W players
	// (HHI 2500) also sit above the 1500 bar.
	records := []vahan.Record{
		rec(2022, "Q1", "2W", "Hero MotoCorp", 1000),
		rec(2022, "Q1", "4W", "A", 250),
		rec(2022, "Q1", "4W", "B", 250),
		rec(2022, "Q1", "4W", "C", 250),
		rec(2022, "Q1", "4W", "D", 250),
	}

	themes := Themes(records)

	var names []string
	for _, th := range themes {
		names = append(names, th.Name)
	}
	assert.Contains(t, names, "2W Market Consolidation")
	assert.Contains(t, names, "4W Market Consolidation")

	for _, th := range themes {
		if th.Name == "2W Market Consolidation" {
			assert.Equal(t, "Hero MotoCorp", th.SupportingData["market_leader"])
			assert.Equal(t, "100.0%", th.SupportingData["leader_share"])
			assert.Equal(t, "10000", th.SupportingData["hhi_index"])
		}
	}
}

func TestThemes_HighGrowthSegment(t *testing.T) {
	// 2W grows 30%, 4W grows 10%: only 2W clears the 15% bar, and the
	// theme names the single fastest category.
	records := []vahan.Record{
		rec(2021, "Q1", "2W", "A", 1000),
		rec(2022, "Q1", "2W", "A", 1300),
		rec(2021, "Q1", "4W", "B", 1000),
		rec(2022, "Q1", "4W", "B", 1100),
	}

	themes := Themes(records)

	var high *Theme
	for i := range themes {
		if themes[i].Name == "High-Growth Segment Opportunity" {
			high = &themes[i]
		}
	}
	require.NotNil(t, high)
	assert.Contains(t, high.Description, "2W segment")
	assert.Equal(t, "30.0%", high.SupportingData["growth_rate"])
	assert.Equal(t, "1,300", high.SupportingData["current_registrations"])
	assert.Equal(t, "300", high.SupportingData["growth_absolute"])
}

func TestThemes_NoHighGrowthBelowThreshold(t *testing.T) {
	records := []vahan.Record{
		rec(2021, "Q1", "2W", "A", 1000),
		rec(2022, "Q1", "2W", "A", 1100), // +10%
	}

	for _, th := range Themes(records) {
		assert.NotEqual(t, "High-Growth Segment Opportunity", th.Name)
	}
}
