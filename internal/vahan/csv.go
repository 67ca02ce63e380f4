package vahan

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// csvHeader is the canonical column order. The fuel_type column is
// optional on read; files written by WriteCSV always include it.
var csvHeader = []string{
	"date", "year", "quarter", "month", "vehicle_type", "manufacturer", "registrations", "fuel_type",
}

// ReadCSV parses registration records from a CSV file. The file must have
// a header row; every record is validated and the first invalid row aborts
// the read with an error naming the line.
func ReadCSV(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // fuel_type column is optional

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header from %s: %w", path, err)
	}
	if len(header) < 7 {
		return nil, fmt.Errorf("%s: expected at least 7 columns, got %d", path, len(header))
	}

	var records []Record
	line := 1
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: read error: %w", path, err)
		}
		line++
		if len(row) < 7 {
			return nil, fmt.Errorf("%s line %d: expected at least 7 fields, got %d", path, line, len(row))
		}

		rec := Record{
			Date:         row[0],
			Quarter:      row[2],
			Category:     row[4],
			Manufacturer: row[5],
		}
		if rec.Year, err = strconv.Atoi(row[1]); err != nil {
			return nil, fmt.Errorf("%s line %d: invalid year %q", path, line, row[1])
		}
		if rec.Month, err = strconv.Atoi(row[3]); err != nil {
			return nil, fmt.Errorf("%s line %d: invalid month %q", path, line, row[3])
		}
		if rec.Registrations, err = strconv.Atoi(row[6]); err != nil {
			return nil, fmt.Errorf("%s line %d: invalid registration count %q", path, line, row[6])
		}
		if len(row) >= 8 {
			rec.FuelType = row[7]
		}
		if err := rec.Validate(); err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, line, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

// WriteCSV writes records to path in the canonical column order,
// overwriting any existing file.
func WriteCSV(path string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, rec := range records {
		row := []string{
			rec.Date,
			strconv.Itoa(rec.Year),
			rec.Quarter,
			strconv.Itoa(rec.Month),
			rec.Category,
			rec.Manufacturer,
			strconv.Itoa(rec.Registrations),
			rec.FuelType,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return nil
}
