// Package analytics computes growth, market-concentration, scorecard, and
// forecast metrics from registration records. Every function is a stateless
// transform over an in-memory record slice; nothing here touches a database.
package analytics

// Period selects the comparison window for growth calculations.
type Period int

const (
	// YoY compares yearly registration sums against the previous year.
	YoY Period = iota
	// QoQ compares quarterly sums against the previous quarter.
	QoQ
)

func (p Period) String() string {
	if p == QoQ {
		return "qoq"
	}
	return "yoy"
}

// GroupBy selects the grouping key for growth calculations.
type GroupBy int

const (
	// ByManufacturer groups records by manufacturer alone.
	ByManufacturer GroupBy = iota
	// ByCategory groups records by vehicle category alone.
	ByCategory
	// ByManufacturerCategory groups by manufacturer within each category.
	ByManufacturerCategory
)

// GrowthMetric is one period-over-period growth observation for an entity.
type GrowthMetric struct {
	Entity         string  `json:"entity"`
	Period         string  `json:"period"`
	CurrentValue   int     `json:"current_value"`
	PreviousValue  int     `json:"previous_value"`
	GrowthRate     float64 `json:"growth_rate"`
	GrowthAbsolute int     `json:"growth_absolute"`
	Rank           int     `json:"rank"`
}

// Concentration captures competitive-structure metrics for one category.
type Concentration struct {
	TotalManufacturers   int                `json:"total_manufacturers"`
	MarketLeader         string             `json:"market_leader"`
	LeaderShare          float64            `json:"leader_share"`
	CR4Ratio             float64            `json:"cr4_ratio"`
	CR8Ratio             float64            `json:"cr8_ratio"`
	HHIIndex             float64            `json:"hhi_index"`
	EffectiveCompetitors float64            `json:"effective_competitors"`
	MarketStructure      string             `json:"market_structure"`
	Top5Shares           map[string]float64 `json:"top_5_shares"`
}

// Leadership describes the competitive position of a category's top players.
type Leadership struct {
	Category         string             `json:"vehicle_type"`
	MarketLeader     string             `json:"market_leader"`
	LeaderShare      float64            `json:"leader_share"`
	Top3Shares       map[string]float64 `json:"top_3_players"`
	Top3Combined     float64            `json:"top_3_combined_share"`
	HHIIndex         float64            `json:"hhi_index"`
	MarketStructure  string             `json:"market_structure"`
	TotalPlayers     int                `json:"total_players"`
	Fragmentation    string             `json:"fragmentation_level"`
}

// Scorecard rates a category's investment attractiveness on a 0-100 scale.
type Scorecard struct {
	OverallScore         float64    `json:"overall_score"`
	GrowthMomentum       float64    `json:"growth_momentum"`
	MarketSize           float64    `json:"market_size"`
	CompetitionIntensity float64    `json:"competition_intensity"`
	InnovationPotential  float64    `json:"innovation_potential"`
	Recommendation       string     `json:"recommendation"`
	KeyMetrics           KeyMetrics `json:"key_metrics"`
}

// KeyMetrics are the headline numbers backing a scorecard entry.
type KeyMetrics struct {
	AvgYoYGrowth    float64 `json:"avg_yoy_growth"`
	TotalMarketSize int     `json:"total_market_size"`
	NumberOfPlayers int     `json:"number_of_players"`
	MarketLeader    string  `json:"market_leader"`
}

// Forecast is a linear-trend projection of quarterly registrations.
type Forecast struct {
	ForecastValues     []int   `json:"forecast_values"`
	TrendSlope         float64 `json:"trend_slope"`
	ConfidenceInterval float64 `json:"confidence_interval"`
	LastActual         int     `json:"last_actual"`
	GrowthTrend        string  `json:"growth_trend"`
}

// MarketInsight is a detected pattern worth surfacing to an investor.
type MarketInsight struct {
	InsightType    string            `json:"insight_type"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	ImpactLevel    string            `json:"impact_level"` // High, Medium, Low
	DataPoints     map[string]string `json:"data_points"`
	Recommendation string            `json:"recommendation"`
}
