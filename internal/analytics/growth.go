package analytics

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/blackwell-systems/vahanalytics/internal/vahan"
)

// Growth computes period-over-period growth metrics. Registrations are
// summed per (group, period); growth is taken between consecutive periods
// within each group, in chronological order. Groups with fewer than two
// periods contribute no rows, and a period whose predecessor sums to zero
// is skipped rather than dividing by zero. The returned metrics carry a
// dense 1-based rank by growth rate descending across all groups; ties
// keep their original relative order.
func Growth(records []vahan.Record, period Period, groupBy GroupBy) []GrowthMetric {
	type periodTotal struct {
		sortKey int
		label   string
		total   int
	}

	groups := make(map[string]map[int]*periodTotal)
	for _, r := range records {
		entity := entityName(r, groupBy)

		var key int
		var label string
		switch period {
		case QoQ:
			key = r.PeriodIndex()
			label = r.PeriodLabel()
		default:
			key = r.Year
			label = strconv.Itoa(r.Year)
		}

		byPeriod, ok := groups[entity]
		if !ok {
			byPeriod = make(map[int]*periodTotal)
			groups[entity] = byPeriod
		}
		pt, ok := byPeriod[key]
		if !ok {
			pt = &periodTotal{sortKey: key, label: label}
			byPeriod[key] = pt
		}
		pt.total += r.Registrations
	}

	entities := make([]string, 0, len(groups))
	for e := range groups {
		entities = append(entities, e)
	}
	sort.Strings(entities)

	var metrics []GrowthMetric
	for _, entity := range entities {
		byPeriod := groups[entity]
		series := make([]*periodTotal, 0, len(byPeriod))
		for _, pt := range byPeriod {
			series = append(series, pt)
		}
		sort.Slice(series, func(i, j int) bool { return series[i].sortKey < series[j].sortKey })

		for i := 1; i < len(series); i++ {
			prev, cur := series[i-1], series[i]
			if prev.total <= 0 {
				continue
			}
			rate := float64(cur.total-prev.total) / float64(prev.total) * 100
			metrics = append(metrics, GrowthMetric{
				Entity:         entity,
				Period:         cur.label,
				CurrentValue:   cur.total,
				PreviousValue:  prev.total,
				GrowthRate:     round2(rate),
				GrowthAbsolute: cur.total - prev.total,
			})
		}
	}

	sort.SliceStable(metrics, func(i, j int) bool {
		return metrics[i].GrowthRate > metrics[j].GrowthRate
	})
	for i := range metrics {
		metrics[i].Rank = i + 1
	}

	return metrics
}

func entityName(r vahan.Record, groupBy GroupBy) string {
	switch groupBy {
	case ByCategory:
		return r.Category
	case ByManufacturerCategory:
		return fmt.Sprintf("%s - %s", r.Manufacturer, r.Category)
	default:
		return r.Manufacturer
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
