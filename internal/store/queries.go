package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/blackwell-systems/vahanalytics/internal/vahan"
)

// Registration operations

// ReplaceRecords replaces the full contents of the registrations table with
// the given rows. The truncate and bulk insert run inside one transaction,
// so readers never observe a partially loaded table. Every record is
// validated before any write happens.
func (s *Store) ReplaceRecords(records []vahan.Record) error {
	for i, rec := range records {
		if err := rec.Validate(); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM registrations`); err != nil {
		return wrapMissingTable(fmt.Errorf("failed to clear registrations: %w", err))
	}

	stmt, err := tx.Prepare(`
		INSERT INTO registrations
		(date, year, quarter, month, vehicle_type, manufacturer, registrations, fuel_type)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		if _, err := stmt.Exec(
			rec.Date,
			rec.Year,
			rec.Quarter,
			rec.Month,
			rec.Category,
			rec.Manufacturer,
			rec.Registrations,
			rec.FuelType,
		); err != nil {
			return fmt.Errorf("failed to insert record %s/%s: %w", rec.Date, rec.Manufacturer, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit registrations: %w", err)
	}

	s.logger.Info("registration data replaced", "records", len(records))
	return nil
}

// QueryRecords returns registration rows matching the filter, ordered by
// (date, vehicle_type, manufacturer). A zero filter returns all rows.
func (s *Store) QueryRecords(f Filter) ([]vahan.Record, error) {
	query := `
		SELECT date, year, quarter, month, vehicle_type, manufacturer, registrations, fuel_type
		FROM registrations
		WHERE 1=1
	`
	var args []any

	if f.StartDate != "" {
		query += " AND date >= ?"
		args = append(args, f.StartDate)
	}
	if f.EndDate != "" {
		query += " AND date <= ?"
		args = append(args, f.EndDate)
	}
	if len(f.Categories) > 0 {
		query += " AND vehicle_type IN (" + placeholders(len(f.Categories)) + ")"
		for _, c := range f.Categories {
			args = append(args, c)
		}
	}
	if len(f.Manufacturers) > 0 {
		query += " AND manufacturer IN (" + placeholders(len(f.Manufacturers)) + ")"
		for _, m := range f.Manufacturers {
			args = append(args, m)
		}
	}

	query += " ORDER BY date, vehicle_type, manufacturer"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, wrapMissingTable(fmt.Errorf("failed to query registrations: %w", err))
	}
	defer rows.Close()

	var records []vahan.Record
	for rows.Next() {
		var rec vahan.Record
		if err := rows.Scan(
			&rec.Date,
			&rec.Year,
			&rec.Quarter,
			&rec.Month,
			&rec.Category,
			&rec.Manufacturer,
			&rec.Registrations,
			&rec.FuelType,
		); err != nil {
			return nil, fmt.Errorf("failed to scan registration row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating registrations: %w", err)
	}

	return records, nil
}

// Derived-table reads

// GrowthMetrics returns persisted growth metrics of the given metric type
// ("yoy" or "qoq") and entity type ("manufacturer" or "vehicle_type"),
// ordered by absolute growth rate descending.
func (s *Store) GrowthMetrics(metricType, entityType string, limit int) ([]GrowthRow, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(`
		SELECT entity_type, entity_name, metric_type, period,
		       current_value, previous_value, growth_rate, growth_absolute
		FROM growth_metrics
		WHERE metric_type = ? AND entity_type = ? AND growth_rate IS NOT NULL
		ORDER BY ABS(growth_rate) DESC
		LIMIT ?
	`, metricType, entityType, limit)
	if err != nil {
		return nil, wrapMissingTable(fmt.Errorf("failed to query growth metrics: %w", err))
	}
	defer rows.Close()

	var metrics []GrowthRow
	for rows.Next() {
		var m GrowthRow
		if err := rows.Scan(
			&m.EntityType, &m.EntityName, &m.MetricType, &m.Period,
			&m.CurrentValue, &m.PreviousValue, &m.GrowthRate, &m.GrowthAbsolute,
		); err != nil {
			return nil, fmt.Errorf("failed to scan growth metric row: %w", err)
		}
		metrics = append(metrics, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating growth metrics: %w", err)
	}

	return metrics, nil
}

// MarketLeaders returns the market-share snapshot for a category, ordered by
// rank. When period is empty the latest stored period for that category is
// used.
func (s *Store) MarketLeaders(category, period string) ([]ShareRow, error) {
	var rows *sql.Rows
	var err error

	if period != "" {
		rows, err = s.db.Query(`
			SELECT period, vehicle_type, manufacturer, registrations, market_share_percent, rank_position
			FROM market_share
			WHERE vehicle_type = ? AND period = ?
			ORDER BY rank_position
		`, category, period)
	} else {
		rows, err = s.db.Query(`
			SELECT period, vehicle_type, manufacturer, registrations, market_share_percent, rank_position
			FROM market_share
			WHERE vehicle_type = ? AND period = (
				SELECT MAX(period) FROM market_share WHERE vehicle_type = ?
			)
			ORDER BY rank_position
		`, category, category)
	}
	if err != nil {
		return nil, wrapMissingTable(fmt.Errorf("failed to query market share: %w", err))
	}
	defer rows.Close()

	var shares []ShareRow
	for rows.Next() {
		var sh ShareRow
		if err := rows.Scan(
			&sh.Period, &sh.Category, &sh.Manufacturer,
			&sh.Registrations, &sh.SharePercent, &sh.Rank,
		); err != nil {
			return nil, fmt.Errorf("failed to scan market share row: %w", err)
		}
		shares = append(shares, sh)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating market share: %w", err)
	}

	return shares, nil
}

// Stats returns summary statistics for the database contents.
func (s *Store) Stats() (*Stats, error) {
	st := &Stats{}

	err := s.db.QueryRow(`SELECT COUNT(*) FROM registrations`).Scan(&st.TotalRecords)
	if err != nil {
		return nil, wrapMissingTable(fmt.Errorf("failed to count registrations: %w", err))
	}

	if err := s.db.QueryRow(`SELECT COUNT(DISTINCT manufacturer) FROM registrations`).Scan(&st.TotalManufacturers); err != nil {
		return nil, fmt.Errorf("failed to count manufacturers: %w", err)
	}

	var first, last sql.NullString
	if err := s.db.QueryRow(`SELECT MIN(date), MAX(date) FROM registrations`).Scan(&first, &last); err != nil {
		return nil, fmt.Errorf("failed to get date range: %w", err)
	}
	st.FirstDate, st.LastDate = first.String, last.String

	rows, err := s.db.Query(`
		SELECT vehicle_type, COUNT(*), SUM(registrations)
		FROM registrations
		GROUP BY vehicle_type
		ORDER BY SUM(registrations) DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query category distribution: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var ct CategoryTotal
		if err := rows.Scan(&ct.Category, &ct.Records, &ct.Registrations); err != nil {
			return nil, fmt.Errorf("failed to scan category total: %w", err)
		}
		st.CategoryTotals = append(st.CategoryTotals, ct)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category totals: %w", err)
	}

	if err := s.db.QueryRow(`SELECT COUNT(*) FROM growth_metrics`).Scan(&st.GrowthMetricRows); err != nil {
		return nil, fmt.Errorf("failed to count growth metrics: %w", err)
	}
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM market_share`).Scan(&st.MarketShareRows); err != nil {
		return nil, fmt.Errorf("failed to count market share rows: %w", err)
	}

	return st, nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}
