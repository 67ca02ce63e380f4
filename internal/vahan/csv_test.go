package vahan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVRoundTrip(t *testing.T) {
	records := []Record{
		{Date: "2022-01-01", Year: 2022, Quarter: "Q1", Month: 1, Category: TwoWheeler, Manufacturer: "Hero MotoCorp", Registrations: 100000, FuelType: "Petrol"},
		{Date: "2022-01-01", Year: 2022, Quarter: "Q1", Month: 1, Category: FourWheeler, Manufacturer: "Maruti Suzuki", Registrations: 40000},
	}

	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, WriteCSV(path, records))

	got, err := ReadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestReadCSV_FuelTypeOptional(t *testing.T) {
	csv := "date,year,quarter,month,vehicle_type,manufacturer,registrations\n" +
		"2022-01-01,2022,Q1,1,2W,Hero MotoCorp,100000\n"
	path := filepath.Join(t.TempDir(), "legacy.csv")
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))

	records, err := ReadCSV(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Empty(t, records[0].FuelType)
	assert.Equal(t, 100000, records[0].Registrations)
}

func TestReadCSV_InvalidRows(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			"bad registration count",
			"2022-01-01,2022,Q1,1,2W,Hero,abc,Petrol\n",
			"invalid registration count",
		},
		{
			"bad year",
			"2022-01-01,banana,Q1,1,2W,Hero,100,Petrol\n",
			"invalid year",
		},
		{
			"validation failure",
			"2022-01-01,2022,Q9,1,2W,Hero,100,Petrol\n",
			"line 2",
		},
		{
			"too few fields",
			"2022-01-01,2022,Q1,1,2W,Hero\n",
			"at least 7 fields",
		},
	}

	header := "date,year,quarter,month,vehicle_type,manufacturer,registrations,fuel_type\n"
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.csv")
			require.NoError(t, os.WriteFile(path, []byte(header+tt.body), 0o644))

			_, err := ReadCSV(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestReadCSV_MissingFile(t *testing.T) {
	_, err := ReadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}
