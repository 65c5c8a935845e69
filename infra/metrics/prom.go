package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kilianp07/zoa/core/events"
	coremetrics "github.com/kilianp07/zoa/core/metrics"
	"github.com/kilianp07/zoa/core/model"
)

// PromSink exposes the latest balancing figures as Prometheus metrics.
type PromSink struct {
	supply    *prometheus.GaugeVec
	demand    *prometheus.GaugeVec
	net       *prometheus.GaugeVec
	surplus   prometheus.Gauge
	deficit   prometheus.Gauge
	indicator *prometheus.GaugeVec
	passes    *prometheus.CounterVec
	phases    *prometheus.CounterVec
}

// NewPromSink registers balancing metrics on the default Prometheus registerer.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	s := &PromSink{
		supply: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "zoa_unit_supply_watts",
			Help: "Supply of each unit in watts",
		}, []string{"unit"}),
		demand: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "zoa_unit_demand_watts",
			Help: "Demand of each unit in watts",
		}, []string{"unit"}),
		net: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "zoa_unit_net_watts",
			Help: "Supply minus demand of each unit in watts",
		}, []string{"unit"}),
		surplus: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "zoa_total_surplus_watts",
			Help: "Sum of positive unit nets",
		}),
		deficit: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "zoa_total_deficit_watts",
			Help: "Sum of absolute negative unit nets",
		}),
		indicator: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "zoa_indicator_state",
			Help: "1 for the lit indicator, 0 otherwise",
		}, []string{"indicator", "color"}),
		passes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "zoa_status_passes_total",
			Help: "Number of status passes per scenario",
		}, []string{"scenario"}),
		phases: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "zoa_phases_total",
			Help: "Number of scenario phases executed",
		}, []string{"scenario"}),
	}
	var err error
	if s.supply, err = register(reg, s.supply); err != nil {
		return nil, err
	}
	if s.demand, err = register(reg, s.demand); err != nil {
		return nil, err
	}
	if s.net, err = register(reg, s.net); err != nil {
		return nil, err
	}
	if s.surplus, err = register(reg, s.surplus); err != nil {
		return nil, err
	}
	if s.deficit, err = register(reg, s.deficit); err != nil {
		return nil, err
	}
	if s.indicator, err = register(reg, s.indicator); err != nil {
		return nil, err
	}
	if s.passes, err = register(reg, s.passes); err != nil {
		return nil, err
	}
	if s.phases, err = register(reg, s.phases); err != nil {
		return nil, err
	}
	return s, nil
}

// register adds c to reg, reusing the existing collector when an identical
// one is already registered.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// RecordStatus updates the per-unit and total gauges.
func (s *PromSink) RecordStatus(ev events.StatusEvent) error {
	for _, u := range ev.Status.Units {
		s.supply.WithLabelValues(u.Name).Set(u.Supply)
		s.demand.WithLabelValues(u.Name).Set(u.Demand)
		s.net.WithLabelValues(u.Name).Set(u.Net)
	}
	s.surplus.Set(ev.Status.TotalSurplus)
	s.deficit.Set(ev.Status.TotalDeficit)
	s.passes.WithLabelValues(ev.Scenario).Inc()
	return nil
}

// RecordIndicator sets the one-hot indicator gauge.
func (s *PromSink) RecordIndicator(ev events.IndicatorEvent) error {
	states := model.StatesFor(ev.Indicator)
	for _, ind := range model.Indicators {
		v := 0.0
		if states[ind] {
			v = 1
		}
		s.indicator.WithLabelValues(ind.String(), ind.Color()).Set(v)
	}
	return nil
}

// RecordPhase counts executed phases.
func (s *PromSink) RecordPhase(ev events.PhaseEvent) error {
	s.phases.WithLabelValues(ev.Scenario).Inc()
	return nil
}

var (
	_ coremetrics.Sink              = (*PromSink)(nil)
	_ coremetrics.IndicatorRecorder = (*PromSink)(nil)
	_ coremetrics.PhaseRecorder     = (*PromSink)(nil)
)
