package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/blackwell-systems/vahanalytics/internal/vahan"
)

func TestSizing(t *testing.T) {
	records := []vahan.Record{
		rec(2022, "Q1", "2W", "A", 600),
		rec(2022, "Q1", "4W", "B", 400),
	}

	s := Sizing(records)

	assert.Equal(t, 3000.0, s.TAM.Value)
	assert.Equal(t, 2000.0, s.SAM.Value)
	assert.Equal(t, 100.0, s.SOM.Value)
	assert.NotEmpty(t, s.TAM.Description)
	assert.NotEmpty(t, s.SAM.Description)
	assert.NotEmpty(t, s.SOM.Description)

	// Current volume is a third of TAM by construction.
	assert.Equal(t, "33.3%", s.CurrentPenetration)
	// SAM leaves 100% headroom over current volume.
	assert.Equal(t, "100%", s.GrowthPotential)
}

func TestSizing_Empty(t *testing.T) {
	s := Sizing(nil)

	assert.Zero(t, s.TAM.Value)
	assert.Zero(t, s.SAM.Value)
	assert.Zero(t, s.SOM.Value)
	assert.Equal(t, "N/A", s.CurrentPenetration)
	assert.Equal(t, "N/A", s.GrowthPotential)
}
