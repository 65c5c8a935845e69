package indicator

import (
	"context"
	"sync"

	"github.com/kilianp07/zoa/core/model"
	"github.com/kilianp07/zoa/infra/logger"
)

// ConsolePanel logs indicator changes instead of driving hardware.
type ConsolePanel struct {
	log logger.Logger

	mu     sync.Mutex
	states model.IndicatorStates
}

// NewConsolePanel returns a panel writing to the given logger. A nil logger
// uses the "indicator" component logger.
func NewConsolePanel(log logger.Logger) *ConsolePanel {
	if log == nil {
		log = logger.New("indicator")
	}
	return &ConsolePanel{log: log}
}

// Show records the new output vector and logs it.
func (p *ConsolePanel) Show(_ context.Context, ind model.Indicator) error {
	states := model.StatesFor(ind)
	p.mu.Lock()
	p.states = states
	p.mu.Unlock()

	fields := map[string]any{"lit": ind.String()}
	for _, i := range model.Indicators {
		fields[i.Color()] = states[i]
	}
	p.log.Infow("indicator", fields)
	return nil
}

// States returns the current outputs.
func (p *ConsolePanel) States() model.IndicatorStates {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.states
}

// Close is a no-op.
func (p *ConsolePanel) Close() error { return nil }
