package store

// Filter narrows a registration query. Zero-value fields are ignored; the
// zero Filter matches all rows.
type Filter struct {
	StartDate     string // inclusive, ISO-8601
	EndDate       string // inclusive, ISO-8601
	Categories    []string
	Manufacturers []string
}

// GrowthRow is a persisted growth metric from the growth_metrics table.
type GrowthRow struct {
	EntityType     string // "manufacturer" or "vehicle_type"
	EntityName     string // e.g. "Hero MotoCorp (2W)" or "2W"
	MetricType     string // "yoy" or "qoq"
	Period         string
	CurrentValue   int
	PreviousValue  int
	GrowthRate     float64
	GrowthAbsolute int
}

// ShareRow is a persisted market-share snapshot from the market_share table.
type ShareRow struct {
	Period        string // "2023-Q2"
	Category      string
	Manufacturer  string
	Registrations int
	SharePercent  float64
	Rank          int
}

// Stats summarizes database contents.
type Stats struct {
	TotalRecords       int
	TotalManufacturers int
	FirstDate          string
	LastDate           string
	CategoryTotals     []CategoryTotal
	GrowthMetricRows   int
	MarketShareRows    int
}

// CategoryTotal is the per-category slice of the registration table.
type CategoryTotal struct {
	Category      string
	Records       int
	Registrations int
}
