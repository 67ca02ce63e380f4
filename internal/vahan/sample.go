package vahan

import (
	"math/rand"
	"time"
)

// Manufacturer rosters used by the synthetic generator. These mirror the
// real market participants so that sample output reads plausibly in demos.
var (
	sampleManufacturers2W = []string{"Hero MotoCorp", "Honda", "TVS", "Bajaj", "Yamaha", "Royal Enfield"}
	sampleManufacturers3W = []string{"Bajaj Auto", "TVS", "Mahindra", "Piaggio", "Atul Auto"}
	sampleManufacturers4W = []string{"Maruti Suzuki", "Hyundai", "Tata Motors", "Mahindra", "Kia", "Toyota"}

	// Electric-only 2W entrants, emitted with a rising trend so the
	// EV-adoption analytics have something to detect in sample data.
	sampleManufacturersEV = []string{"Ola Electric", "Ather Energy"}
)

// SampleData generates quarterly synthetic registration data covering the
// last `years` calendar years up to now. The generator stands in for the
// live registration portal when no real data feed is available. A fixed
// seed yields reproducible output.
func SampleData(years int, seed int64) []Record {
	if years < 1 {
		years = 1
	}
	rng := rand.New(rand.NewSource(seed))

	now := time.Now()
	start := time.Date(now.Year()-years+1, time.January, 1, 0, 0, 0, 0, time.UTC)

	var records []Record
	quarter := 0
	for cur := start; !cur.After(now); cur = cur.AddDate(0, 3, 0) {
		records = append(records, sampleQuarter(rng, cur, sampleManufacturers2W, TwoWheeler, 50000, 200000, 0.8, 1.3, "Petrol")...)
		records = append(records, sampleQuarter(rng, cur, sampleManufacturers4W, FourWheeler, 20000, 80000, 0.85, 1.25, "Petrol")...)
		records = append(records, sampleQuarter(rng, cur, sampleManufacturers3W, ThreeWheeler, 5000, 25000, 0.9, 1.2, "Petrol")...)

		// EV registrations start small and grow steadily quarter over quarter.
		evBase := 2000 + quarter*1500
		for _, m := range sampleManufacturersEV {
			count := int(float64(evBase+rng.Intn(2000)) * (0.9 + rng.Float64()*0.4))
			records = append(records, Record{
				Date:          cur.Format("2006-01-02"),
				Year:          cur.Year(),
				Quarter:       QuarterOf(int(cur.Month())),
				Month:         int(cur.Month()),
				Category:      TwoWheeler,
				Manufacturer:  m,
				Registrations: count,
				FuelType:      "Electric",
			})
		}
		quarter++
	}

	return records
}

func sampleQuarter(rng *rand.Rand, date time.Time, manufacturers []string, category string, baseMin, baseMax int, growMin, growMax float64, fuel string) []Record {
	records := make([]Record, 0, len(manufacturers))
	for _, m := range manufacturers {
		base := baseMin + rng.Intn(baseMax-baseMin+1)
		factor := growMin + rng.Float64()*(growMax-growMin)
		records = append(records, Record{
			Date:          date.Format("2006-01-02"),
			Year:          date.Year(),
			Quarter:       QuarterOf(int(date.Month())),
			Month:         int(date.Month()),
			Category:      category,
			Manufacturer:  m,
			Registrations: int(float64(base) * factor),
			FuelType:      fuel,
		})
	}
	return records
}
