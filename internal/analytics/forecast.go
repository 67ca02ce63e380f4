package analytics

import (
	"math"
	"sort"

	"github.com/blackwell-systems/vahanalytics/internal/vahan"
)

// minForecastQuarters is the minimum number of historical quarterly points
// needed to fit a trend; categories with less history are omitted.
const minForecastQuarters = 4

// ForecastRegistrations fits an ordinary-least-squares line to each
// category's quarterly registration sums and projects it `periods` quarters
// ahead. Projected values are floored at zero and truncated to integers.
// The confidence interval is 1.96 times the residual standard deviation
// (a 95% band under the usual normality assumption).
func ForecastRegistrations(records []vahan.Record, periods int) map[string]Forecast {
	if periods <= 0 {
		periods = 4
	}

	forecasts := make(map[string]Forecast)
	for category, catRecords := range splitByCategory(records) {
		x, y := quarterlySeries(catRecords)
		if len(x) < minForecastQuarters {
			continue
		}

		slope, intercept := olsFit(x, y)

		values := make([]int, 0, periods)
		last := x[len(x)-1]
		for p := last + 1; p <= last+float64(periods); p++ {
			v := slope*p + intercept
			values = append(values, int(math.Max(0, v)))
		}

		forecasts[category] = Forecast{
			ForecastValues:     values,
			TrendSlope:         slope,
			ConfidenceInterval: 1.96 * residualStdDev(x, y, slope, intercept),
			LastActual:         int(y[len(y)-1]),
			GrowthTrend:        trendDirection(slope),
		}
	}

	return forecasts
}

// quarterlySeries aggregates records into quarterly sums and returns them
// as (sequential quarter index, total) pairs in chronological order. The
// index is zero-based from the earliest year present.
func quarterlySeries(records []vahan.Record) (x, y []float64) {
	totals := make(map[int]int)
	minYear := 0
	for _, r := range records {
		if minYear == 0 || r.Year < minYear {
			minYear = r.Year
		}
		totals[r.PeriodIndex()] += r.Registrations
	}

	keys := make([]int, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	base := minYear * 4
	for _, k := range keys {
		x = append(x, float64(k-base))
		y = append(y, float64(totals[k]))
	}
	return x, y
}

// olsFit returns the least-squares slope and intercept of y against x.
func olsFit(x, y []float64) (slope, intercept float64) {
	n := float64(len(x))
	var sumX, sumY float64
	for i := range x {
		sumX += x[i]
		sumY += y[i]
	}
	meanX, meanY := sumX/n, sumY/n

	var num, den float64
	for i := range x {
		dx := x[i] - meanX
		num += dx * (y[i] - meanY)
		den += dx * dx
	}
	if den == 0 {
		return 0, meanY
	}
	slope = num / den
	intercept = meanY - slope*meanX
	return slope, intercept
}

// residualStdDev is the population standard deviation of the fit residuals.
func residualStdDev(x, y []float64, slope, intercept float64) float64 {
	n := float64(len(x))
	var sum, sumSq float64
	for i := range x {
		r := y[i] - (slope*x[i] + intercept)
		sum += r
		sumSq += r * r
	}
	mean := sum / n
	return math.Sqrt(sumSq/n - mean*mean)
}

func trendDirection(slope float64) string {
	if slope > 0 {
		return "Positive"
	}
	return "Negative"
}
