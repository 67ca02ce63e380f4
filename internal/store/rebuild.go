package store

import "fmt"

// Derived-table rebuilds. Both recompute operations are destructive
// delete-then-insert rebuilds, but each runs inside a single transaction so
// a concurrent reader on the same database never observes a transient empty
// table. The raw registrations table is the sole source of truth; the
// derived tables can be rebuilt from it at any time.

// growth_metrics rebuild: yearly and quarterly sums self-joined against the
// prior period's sum for the same (manufacturer, vehicle_type) key, plus a
// category-level YoY series. Rows with no prior period are skipped.
const yoyManufacturerSQL = `
WITH yearly_data AS (
    SELECT manufacturer, vehicle_type, year, SUM(registrations) AS total
    FROM registrations
    GROUP BY manufacturer, vehicle_type, year
)
INSERT INTO growth_metrics
    (entity_type, entity_name, metric_type, period, current_value, previous_value, growth_rate, growth_absolute)
SELECT
    'manufacturer',
    y1.manufacturer || ' (' || y1.vehicle_type || ')',
    'yoy',
    CAST(y1.year AS TEXT),
    y1.total,
    y2.total,
    CASE WHEN y2.total > 0
         THEN ROUND((y1.total - y2.total) * 100.0 / y2.total, 2)
         ELSE NULL END,
    y1.total - y2.total
FROM yearly_data y1
JOIN yearly_data y2
    ON y1.manufacturer = y2.manufacturer
   AND y1.vehicle_type = y2.vehicle_type
   AND y1.year = y2.year + 1
`

const qoqManufacturerSQL = `
WITH quarterly_data AS (
    SELECT manufacturer, vehicle_type,
           (year || '-' || quarter) AS period,
           SUM(registrations) AS total,
           ROW_NUMBER() OVER (PARTITION BY manufacturer, vehicle_type ORDER BY year, quarter) AS period_num
    FROM registrations
    GROUP BY manufacturer, vehicle_type, year, quarter
)
INSERT INTO growth_metrics
    (entity_type, entity_name, metric_type, period, current_value, previous_value, growth_rate, growth_absolute)
SELECT
    'manufacturer',
    q1.manufacturer || ' (' || q1.vehicle_type || ')',
    'qoq',
    q1.period,
    q1.total,
    q2.total,
    CASE WHEN q2.total > 0
         THEN ROUND((q1.total - q2.total) * 100.0 / q2.total, 2)
         ELSE NULL END,
    q1.total - q2.total
FROM quarterly_data q1
JOIN quarterly_data q2
    ON q1.manufacturer = q2.manufacturer
   AND q1.vehicle_type = q2.vehicle_type
   AND q1.period_num = q2.period_num + 1
`

const yoyCategorySQL = `
WITH yearly_data AS (
    SELECT vehicle_type, year, SUM(registrations) AS total
    FROM registrations
    GROUP BY vehicle_type, year
)
INSERT INTO growth_metrics
    (entity_type, entity_name, metric_type, period, current_value, previous_value, growth_rate, growth_absolute)
SELECT
    'vehicle_type',
    v1.vehicle_type,
    'yoy',
    CAST(v1.year AS TEXT),
    v1.total,
    v2.total,
    CASE WHEN v2.total > 0
         THEN ROUND((v1.total - v2.total) * 100.0 / v2.total, 2)
         ELSE NULL END,
    v1.total - v2.total
FROM yearly_data v1
JOIN yearly_data v2
    ON v1.vehicle_type = v2.vehicle_type
   AND v1.year = v2.year + 1
`

// market_share rebuild: per (period, category), each manufacturer's percent
// share of the category total, ranked by registrations descending.
const marketShareSQL = `
WITH quarterly_totals AS (
    SELECT (year || '-' || quarter) AS period,
           vehicle_type, manufacturer,
           SUM(registrations) AS registrations
    FROM registrations
    GROUP BY year, quarter, vehicle_type, manufacturer
),
vehicle_type_totals AS (
    SELECT period, vehicle_type, SUM(registrations) AS total
    FROM quarterly_totals
    GROUP BY period, vehicle_type
)
INSERT INTO market_share
    (period, vehicle_type, manufacturer, registrations, market_share_percent, rank_position)
SELECT
    qt.period,
    qt.vehicle_type,
    qt.manufacturer,
    qt.registrations,
    ROUND(qt.registrations * 100.0 / vtt.total, 2),
    ROW_NUMBER() OVER (PARTITION BY qt.period, qt.vehicle_type ORDER BY qt.registrations DESC)
FROM quarterly_totals qt
JOIN vehicle_type_totals vtt
    ON qt.period = vtt.period AND qt.vehicle_type = vtt.vehicle_type
WHERE vtt.total > 0
`

// RecomputeGrowthMetrics rebuilds the growth_metrics table from the current
// registration data: YoY and QoQ per (manufacturer, category), plus YoY per
// category.
func (s *Store) RecomputeGrowthMetrics() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM growth_metrics`); err != nil {
		return wrapMissingTable(fmt.Errorf("failed to clear growth metrics: %w", err))
	}
	for _, q := range []string{yoyManufacturerSQL, qoqManufacturerSQL, yoyCategorySQL} {
		if _, err := tx.Exec(q); err != nil {
			return fmt.Errorf("failed to rebuild growth metrics: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit growth metrics: %w", err)
	}

	s.logger.Info("growth metrics recomputed")
	return nil
}

// RecomputeMarketShare rebuilds the market_share table: per-quarter
// manufacturer shares and rank positions within each category.
func (s *Store) RecomputeMarketShare() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM market_share`); err != nil {
		return wrapMissingTable(fmt.Errorf("failed to clear market share: %w", err))
	}
	if _, err := tx.Exec(marketShareSQL); err != nil {
		return fmt.Errorf("failed to rebuild market share: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit market share: %w", err)
	}

	s.logger.Info("market share recomputed")
	return nil
}
