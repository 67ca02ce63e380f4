package insights

import (
	"fmt"

	"github.com/blackwell-systems/vahanalytics/internal/vahan"
)

// Top-down sizing multipliers. These are coarse analyst assumptions, not
// measurements: current registrations are taken as one third of the total
// addressable market, half of the serviceable one, and 5% of the
// serviceable market is considered obtainable near-term.
const (
	tamMultiplier = 3.0
	samMultiplier = 2.0
	somFraction   = 0.05
)

// Sizing produces a TAM/SAM/SOM estimate from current registration volume.
func Sizing(records []vahan.Record) MarketSizing {
	current := 0
	for _, r := range records {
		current += r.Registrations
	}

	tam := float64(current) * tamMultiplier
	sam := float64(current) * samMultiplier
	som := sam * somFraction

	penetration := "N/A"
	potential := "N/A"
	if current > 0 {
		penetration = fmt.Sprintf("%.1f%%", float64(current)/tam*100)
		potential = fmt.Sprintf("%.0f%%", (sam-float64(current))/float64(current)*100)
	}

	return MarketSizing{
		TAM: MarketEstimate{
			Value:       tam,
			Description: "Total market opportunity across all segments and regions",
		},
		SAM: MarketEstimate{
			Value:       sam,
			Description: "Market opportunity for products/services we can realistically serve",
		},
		SOM: MarketEstimate{
			Value:       som,
			Description: "Realistic market share we can capture in near term",
		},
		CurrentPenetration: penetration,
		GrowthPotential:    potential,
	}
}
