package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kilianp07/zoa/config"
	coreind "github.com/kilianp07/zoa/core/indicator"
	coremetrics "github.com/kilianp07/zoa/core/metrics"
	"github.com/kilianp07/zoa/core/model"
	"github.com/kilianp07/zoa/core/scenario"
	_ "github.com/kilianp07/zoa/infra/indicator"
	"github.com/kilianp07/zoa/infra/logger"
	"github.com/kilianp07/zoa/infra/metrics"
	"github.com/kilianp07/zoa/internal/eventbus"
)

// Service wires the units, panels, report stream and metrics together.
type Service struct {
	units    model.Units
	panel    coreind.Panel
	sink     coremetrics.Sink
	bus      *eventbus.Bus
	out      io.Writer
	log      logger.Logger
	scale    float64
	promAddr string
}

// New creates a Service from the configuration. The status report is
// written to out; nil means stdout.
func New(cfg *config.Config, out io.Writer) (*Service, error) {
	if err := logger.Configure(cfg.Log.Level, cfg.Log.Format, nil); err != nil {
		return nil, err
	}
	if out == nil {
		out = os.Stdout
	}
	panel, err := coreind.NewPanel(cfg.Indicator.Panels)
	if err != nil {
		return nil, fmt.Errorf("indicator panel: %w", err)
	}
	sink, err := coremetrics.NewSink(cfg.Metrics.Sinks)
	if err != nil {
		_ = panel.Close()
		return nil, fmt.Errorf("metrics sink: %w", err)
	}
	return &Service{
		units:    model.DefaultUnits(),
		panel:    panel,
		sink:     sink,
		bus:      eventbus.New(),
		out:      out,
		log:      logger.New("service"),
		scale:    cfg.Pacing.Scale,
		promAddr: cfg.Metrics.PrometheusAddr,
	}, nil
}

// Run plays the named built-in scenarios, all of them when names is empty.
// A Service runs once; the event bus is closed when Run returns.
func (s *Service) Run(ctx context.Context, names ...string) (scenario.Summary, error) {
	scenarios, err := scenario.Select(names...)
	if err != nil {
		return scenario.Summary{}, err
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if s.promAddr != "" {
		go func() {
			if err := metrics.StartPromServer(ctx, s.promAddr); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}
	collector := metrics.StartEventCollector(ctx, s.bus, s.sink)

	runner := scenario.NewRunner(&s.units, s.panel, s.out,
		scenario.WithBus(s.bus),
		scenario.WithLogger(logger.New("runner")),
		scenario.WithPacingScale(s.scale),
	)
	sum, runErr := runner.Run(ctx, scenarios)
	s.bus.Close()
	collector.Wait()
	s.reportDropped()
	return sum, runErr
}

// reportDropped warns when metrics events were lost to a slow sink.
func (s *Service) reportDropped() {
	if n := s.bus.Dropped(); n > 0 {
		s.log.Warnf("%d metrics event(s) dropped: sink slower than the run", n)
	}
}

// Units returns a copy of the current unit state.
func (s *Service) Units() model.Units { return s.units }

// Close switches the panels off and releases their connections.
func (s *Service) Close() error {
	var errs []error
	if err := s.panel.Close(); err != nil {
		errs = append(errs, fmt.Errorf("panel close: %w", err))
	}
	if c, ok := s.sink.(interface{ Close() }); ok {
		c.Close()
	}
	s.bus.Close()
	return errors.Join(errs...)
}
