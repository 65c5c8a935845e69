package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/zoa/core/balance"
	"github.com/kilianp07/zoa/core/events"
	"github.com/kilianp07/zoa/core/model"
)

func surplusStatus() balance.Status {
	units := model.DefaultUnits()
	units.SetSupplies([model.NumUnits]float64{200, 120, 100, 160})
	return balance.Compute(&units)
}

func TestPromSinkRecordStatus(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)

	require.NoError(t, sink.RecordStatus(events.StatusEvent{Scenario: "surplus", Status: surplusStatus(), Time: time.Now()}))
	assert.Equal(t, 200.0, testutil.ToFloat64(sink.supply.WithLabelValues("Machining")))
	assert.Equal(t, 150.0, testutil.ToFloat64(sink.demand.WithLabelValues("Machining")))
	assert.Equal(t, 50.0, testutil.ToFloat64(sink.net.WithLabelValues("Machining")))
	assert.Equal(t, 0.0, testutil.ToFloat64(sink.net.WithLabelValues("Testing")))
	assert.Equal(t, 50.0, testutil.ToFloat64(sink.surplus))
	assert.Equal(t, 0.0, testutil.ToFloat64(sink.deficit))
	assert.Equal(t, 1.0, testutil.ToFloat64(sink.passes.WithLabelValues("surplus")))
}

func TestPromSinkIndicatorOneHot(t *testing.T) {
	sink, err := NewPromSinkWithRegistry(prometheus.NewRegistry())
	require.NoError(t, err)
	require.NoError(t, sink.RecordIndicator(events.IndicatorEvent{Indicator: model.IndicatorSurplus}))
	require.NoError(t, sink.RecordIndicator(events.IndicatorEvent{Indicator: model.IndicatorSolar, SolarUsed: true}))
	assert.Equal(t, 1.0, testutil.ToFloat64(sink.indicator.WithLabelValues("solar", "yellow")))
	assert.Equal(t, 0.0, testutil.ToFloat64(sink.indicator.WithLabelValues("surplus", "green")))
	assert.Equal(t, 4, testutil.CollectAndCount(sink.indicator))

	require.NoError(t, sink.RecordPhase(events.PhaseEvent{Scenario: "solar-injection"}))
	assert.Equal(t, 1.0, testutil.ToFloat64(sink.phases.WithLabelValues("solar-injection")))
}

func TestPromSinkReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	s1, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)
	s2, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)
	assert.Same(t, s1.supply, s2.supply)
	assert.Equal(t, s1.surplus, s2.surplus)
}
