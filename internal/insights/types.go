// Package insights turns analytics outputs into investor-facing narrative:
// an executive summary, investment themes, competitive analyses, and
// market-sizing estimates. It does no numeric work of its own beyond
// simple formatting; all computation lives in the analytics package.
package insights

// MarketOverview is the headline block of an executive summary. Numeric
// fields are pre-formatted strings so the consumer renders them verbatim.
type MarketOverview struct {
	TotalRegistrations string `json:"total_registrations"`
	YoYGrowth          string `json:"yoy_growth"`
	TotalManufacturers int    `json:"total_manufacturers"`
	DominantCategory   string `json:"dominant_category"`
	MarketSizeCategory string `json:"market_size_category"`
}

// ExecutiveSummary is the investor-facing digest of the current dataset.
type ExecutiveSummary struct {
	MarketOverview    MarketOverview `json:"market_overview"`
	KeyHighlights     []string       `json:"key_highlights"`
	InvestmentOutlook string         `json:"investment_outlook"`
	RiskAssessment    []string       `json:"risk_assessment"`
}

// Theme is a named investment thesis supported by the data. The thesis and
// return-range labels are fixed narrative text, not derived quantities.
type Theme struct {
	Name             string            `json:"theme_name"`
	Description      string            `json:"description"`
	SupportingData   map[string]string `json:"supporting_data"`
	InvestmentThesis string            `json:"investment_thesis"`
	RiskFactors      []string          `json:"risk_factors"`
	PotentialReturns string            `json:"potential_returns"`
}

// CompetitorEntry is one manufacturer's row in a competitive matrix.
type CompetitorEntry struct {
	Manufacturer  string  `json:"manufacturer"`
	MarketShare   float64 `json:"market_share"`
	YoYGrowth     float64 `json:"yoy_growth"`
	Position      string  `json:"position"`
	Registrations int     `json:"registrations"`
}

// MarketDynamics summarizes the competitive texture of a segment.
type MarketDynamics struct {
	FragmentationLevel string             `json:"fragmentation_level"`
	GrowthLeaders      []string           `json:"growth_leaders"`
	MarketShareLeaders map[string]float64 `json:"market_share_leaders"`
	EmergingPlayers    []string           `json:"emerging_players"`
}

// CompetitiveAnalysis is a share-vs-growth positioning report for one
// vehicle segment.
type CompetitiveAnalysis struct {
	Segment      string            `json:"segment"`
	MarketSize   int               `json:"market_size"`
	MarketLeader string            `json:"market_leader"`
	LeaderShare  float64           `json:"leader_share"`
	Matrix       []CompetitorEntry `json:"competitive_matrix"`
	Dynamics     MarketDynamics    `json:"market_dynamics"`
}

// MarketEstimate is one layer of a TAM/SAM/SOM sizing.
type MarketEstimate struct {
	Value       float64 `json:"value"`
	Description string  `json:"description"`
}

// MarketSizing is a top-down TAM/SAM/SOM estimate derived from current
// registration volume with fixed multipliers.
type MarketSizing struct {
	TAM                MarketEstimate `json:"total_addressable_market"`
	SAM                MarketEstimate `json:"serviceable_addressable_market"`
	SOM                MarketEstimate `json:"serviceable_obtainable_market"`
	CurrentPenetration string         `json:"current_penetration"`
	GrowthPotential    string         `json:"growth_potential"`
}
