package metrics

import (
	"context"
	"sync"

	"github.com/kilianp07/zoa/core/events"
	coremetrics "github.com/kilianp07/zoa/core/metrics"
	"github.com/kilianp07/zoa/infra/logger"
	"github.com/kilianp07/zoa/internal/eventbus"
)

// StartEventCollector subscribes to the event bus and records metrics for
// events. It stops when the context is canceled or the bus is closed. The
// returned WaitGroup is done once the collector has drained.
func StartEventCollector(ctx context.Context, bus eventbus.EventBus, sink coremetrics.Sink) *sync.WaitGroup {
	var wg sync.WaitGroup
	if bus == nil || sink == nil {
		return &wg
	}
	log := logger.New("metrics_collector")
	sub := bus.Subscribe()
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer bus.Unsubscribe(sub)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-sub:
				if !ok {
					return
				}
				if err := record(sink, ev); err != nil {
					log.Warnf("record %T: %v", ev, err)
				}
			}
		}
	}()
	return &wg
}

func record(sink coremetrics.Sink, ev eventbus.Event) error {
	switch e := ev.(type) {
	case events.StatusEvent:
		return sink.RecordStatus(e)
	case events.IndicatorEvent:
		if r, ok := sink.(coremetrics.IndicatorRecorder); ok {
			return r.RecordIndicator(e)
		}
	case events.PhaseEvent:
		if r, ok := sink.(coremetrics.PhaseRecorder); ok {
			return r.RecordPhase(e)
		}
	}
	return nil
}
