package indicator

import (
	"fmt"
	"strconv"
	"sync"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

var (
	hostInit = func() error {
		_, err := host.Init()
		return err
	}
	lookupPin = gpioreg.ByName
)

// PeriphPins drives host GPIO lines through periph.io. Pins are resolved
// by their GPIO number, e.g. 17 for GPIO17 on a Raspberry Pi.
type PeriphPins struct {
	mu   sync.Mutex
	pins map[int]gpio.PinIO
}

// NewPeriphPins loads the host drivers.
func NewPeriphPins() (*PeriphPins, error) {
	if err := hostInit(); err != nil {
		return nil, fmt.Errorf("gpio host init: %w", err)
	}
	return &PeriphPins{pins: make(map[int]gpio.PinIO)}, nil
}

// PinMode resolves pin and drives it low as an output.
func (p *PeriphPins) PinMode(pin int) error {
	line := lookupPin(strconv.Itoa(pin))
	if line == nil {
		return fmt.Errorf("gpio %d not found", pin)
	}
	if err := line.Out(gpio.Low); err != nil {
		return fmt.Errorf("gpio %d out: %w", pin, err)
	}
	p.mu.Lock()
	p.pins[pin] = line
	p.mu.Unlock()
	return nil
}

func (p *PeriphPins) DigitalWrite(pin int, high bool) error {
	p.mu.Lock()
	line, ok := p.pins[pin]
	p.mu.Unlock()
	if !ok {
		return fmt.Errorf("pin %d is not an output", pin)
	}
	return line.Out(gpio.Level(high))
}

// newPinWriter selects the pin backend named by driver.
func newPinWriter(driver string) (PinWriter, error) {
	switch driver {
	case "", "memory":
		return NewMemoryPins(), nil
	case "periph":
		pins, err := NewPeriphPins()
		if err != nil {
			return nil, err
		}
		return pins, nil
	default:
		return nil, fmt.Errorf("unknown gpio driver %q", driver)
	}
}
