package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultUnitsBalanced(t *testing.T) {
	units := DefaultUnits()
	assert.Equal(t, []string{"Machining", "Compressed Air", "Welding", "Testing"}, units.Names())
	for i := range units {
		assert.Equal(t, units[i].Demand, units[i].Supply, units[i].Name)
	}
}

func TestUnitsSetSuppliesAndInject(t *testing.T) {
	units := DefaultUnits()
	units.SetSupplies([NumUnits]float64{150, 100, 80, 150})
	assert.Equal(t, 100.0, units[1].Supply)
	assert.Equal(t, -20.0, units[1].ComputeNet())

	units.Inject()
	for i := range units {
		assert.Equal(t, 0.0, units[i].ComputeNet(), units[i].Name)
	}
}

func TestIndicatorProperties(t *testing.T) {
	cases := []struct {
		ind   Indicator
		name  string
		color string
		pin   int
	}{
		{IndicatorSurplus, "surplus", "green", 2},
		{IndicatorDeficit, "deficit", "red", 3},
		{IndicatorBalanced, "balanced", "white", 4},
		{IndicatorSolar, "solar", "yellow", 5},
	}
	for _, c := range cases {
		assert.Equal(t, c.name, c.ind.String())
		assert.Equal(t, c.color, c.ind.Color())
		assert.Equal(t, c.pin, c.ind.DefaultPin())
		parsed, ok := ParseIndicator(c.color)
		assert.True(t, ok)
		assert.Equal(t, c.ind, parsed)
	}
	_, ok := ParseIndicator("blue")
	assert.False(t, ok)
	assert.Equal(t, "unknown", Indicator(9).String())
}

func TestStatesForExclusive(t *testing.T) {
	for _, ind := range Indicators {
		s := StatesFor(ind)
		assert.Equal(t, []Indicator{ind}, s.Active())
	}
	assert.Empty(t, StatesFor(Indicator(-1)).Active())
}
