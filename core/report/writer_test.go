package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/zoa/core/balance"
	"github.com/kilianp07/zoa/core/model"
)

func TestStatusTable(t *testing.T) {
	units := model.DefaultUnits()
	units.SetSupplies([model.NumUnits]float64{150, 100, 80, 150})
	st := balance.Compute(&units)

	var buf bytes.Buffer
	require.NoError(t, NewWriter(&buf).Status(st))
	want := "----- Unit Data -----\n" +
		"Machining | Supply: 150.00 W, Demand: 150.00 W, Net: 0.00\n" +
		"Compressed Air | Supply: 100.00 W, Demand: 120.00 W, Net: -20.00\n" +
		"Welding | Supply: 80.00 W, Demand: 100.00 W, Net: -20.00\n" +
		"Testing | Supply: 150.00 W, Demand: 160.00 W, Net: -10.00\n" +
		"Total Surplus: 0.00\n" +
		"Total Deficit: 50.00\n" +
		"---------------------\n"
	assert.Equal(t, want, buf.String())
}

func TestBannersAndLines(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.Banner("ZOA Balancing Process", false))
	require.NoError(t, w.Scenario(2, "Surplus Condition"))
	require.NoError(t, w.Indicator("Surplus condition:", model.IndicatorSurplus))
	require.NoError(t, w.Announce("Injecting"))
	require.NoError(t, w.Banner("End of Process", true))
	want := "==== ZOA Balancing Process ====\n" +
		"\n=== Scenario 2: Surplus Condition ===\n" +
		"Surplus condition: Green LED ON\n" +
		"\n>>> Injecting\n" +
		"\n==== End of Process ====\n"
	assert.Equal(t, want, buf.String())
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestWriteErrorsPropagate(t *testing.T) {
	w := NewWriter(brokenWriter{})
	assert.Error(t, w.Status(balance.Status{}))
	assert.Error(t, w.Announce("x"))
}
