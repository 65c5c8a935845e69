package indicator

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/kilianp07/zoa/core/model"
	"github.com/kilianp07/zoa/infra/logger"
)

// PinWriter is the digital output surface of a board.
type PinWriter interface {
	// PinMode configures pin as a digital output.
	PinMode(pin int) error
	// DigitalWrite drives pin high or low.
	DigitalWrite(pin int, high bool) error
}

// PinMap assigns a digital output to every indicator.
type PinMap [model.NumIndicators]int

// DefaultPinMap returns the reference board wiring.
func DefaultPinMap() PinMap {
	var m PinMap
	for _, ind := range model.Indicators {
		m[ind] = ind.DefaultPin()
	}
	return m
}

// PinMapFromColors overrides the default wiring with colour or name keyed pins.
func PinMapFromColors(pins map[string]int) (PinMap, error) {
	m := DefaultPinMap()
	for key, pin := range pins {
		ind, ok := model.ParseIndicator(key)
		if !ok {
			return m, fmt.Errorf("unknown indicator %q", key)
		}
		m[ind] = pin
	}
	return m, m.Validate()
}

// Validate rejects negative and shared pins.
func (m PinMap) Validate() error {
	seen := make(map[int]model.Indicator, model.NumIndicators)
	for _, ind := range model.Indicators {
		pin := m[ind]
		if pin < 0 {
			return fmt.Errorf("pin for %s must not be negative", ind.Color())
		}
		if other, ok := seen[pin]; ok {
			return fmt.Errorf("pin %d shared by %s and %s", pin, other.Color(), ind.Color())
		}
		seen[pin] = ind
	}
	return nil
}

// GPIOPanel drives one digital output per indicator.
type GPIOPanel struct {
	w    PinWriter
	pins PinMap
	log  logger.Logger

	mu     sync.Mutex
	states model.IndicatorStates
}

// NewGPIOPanel configures every indicator pin as an output and switches
// them all off.
func NewGPIOPanel(w PinWriter, pins PinMap) (*GPIOPanel, error) {
	if err := pins.Validate(); err != nil {
		return nil, err
	}
	p := &GPIOPanel{w: w, pins: pins, log: logger.New("gpio_panel")}
	for _, ind := range model.Indicators {
		if err := w.PinMode(pins[ind]); err != nil {
			return nil, fmt.Errorf("configure pin %d: %w", pins[ind], err)
		}
	}
	if err := p.clear(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *GPIOPanel) clear() error {
	for _, ind := range model.Indicators {
		if err := p.w.DigitalWrite(p.pins[ind], false); err != nil {
			return fmt.Errorf("write pin %d: %w", p.pins[ind], err)
		}
	}
	p.states = model.IndicatorStates{}
	return nil
}

// Show drives every pin low, then drives the pin of ind high.
func (p *GPIOPanel) Show(_ context.Context, ind model.Indicator) error {
	if !ind.Valid() {
		return fmt.Errorf("invalid indicator %d", ind)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.clear(); err != nil {
		return err
	}
	if err := p.w.DigitalWrite(p.pins[ind], true); err != nil {
		return fmt.Errorf("write pin %d: %w", p.pins[ind], err)
	}
	p.states = model.StatesFor(ind)
	p.log.Debugf("pin %d (%s) high", p.pins[ind], ind.Color())
	return nil
}

// States returns the current outputs.
func (p *GPIOPanel) States() model.IndicatorStates {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.states
}

// Close switches every output off.
func (p *GPIOPanel) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.clear()
}

// MemoryPins is an in-process pin bank used when no board is attached.
type MemoryPins struct {
	mu     sync.Mutex
	output map[int]bool
	levels map[int]bool
	writes int
}

// NewMemoryPins returns an empty pin bank.
func NewMemoryPins() *MemoryPins {
	return &MemoryPins{output: make(map[int]bool), levels: make(map[int]bool)}
}

func (m *MemoryPins) PinMode(pin int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.output[pin] = true
	return nil
}

func (m *MemoryPins) DigitalWrite(pin int, high bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.output[pin] {
		return fmt.Errorf("pin %d is not an output", pin)
	}
	m.levels[pin] = high
	m.writes++
	return nil
}

// Level returns the last level written to pin.
func (m *MemoryPins) Level(pin int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.levels[pin]
}

// High returns the pins currently driven high, sorted.
func (m *MemoryPins) High() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []int
	for pin, lvl := range m.levels {
		if lvl {
			out = append(out, pin)
		}
	}
	sort.Ints(out)
	return out
}

// Writes returns the number of DigitalWrite calls.
func (m *MemoryPins) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
