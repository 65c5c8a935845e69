package indicator

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"

	"github.com/kilianp07/zoa/core/factory"
	coreind "github.com/kilianp07/zoa/core/indicator"
	"github.com/kilianp07/zoa/core/model"
)

// fakeHost swaps the periph host for in-memory test pins numbered 2 to 5.
func fakeHost(t *testing.T) map[int]*gpiotest.Pin {
	t.Helper()
	pins := make(map[int]*gpiotest.Pin)
	for n := 2; n <= 5; n++ {
		pins[n] = &gpiotest.Pin{N: "GPIO" + strconv.Itoa(n), Num: n, L: gpio.High}
	}
	origInit, origLookup := hostInit, lookupPin
	hostInit = func() error { return nil }
	lookupPin = func(name string) gpio.PinIO {
		n, err := strconv.Atoi(name)
		if err != nil {
			return nil
		}
		if p, ok := pins[n]; ok {
			return p
		}
		return nil
	}
	t.Cleanup(func() { hostInit, lookupPin = origInit, origLookup })
	return pins
}

func TestPeriphPinsDriveLines(t *testing.T) {
	lines := fakeHost(t)
	w, err := NewPeriphPins()
	require.NoError(t, err)
	p, err := NewGPIOPanel(w, DefaultPinMap())
	require.NoError(t, err)
	for _, l := range lines {
		assert.Equal(t, gpio.Low, l.L)
	}

	require.NoError(t, p.Show(context.Background(), model.IndicatorSolar))
	assert.Equal(t, gpio.High, lines[5].L)
	assert.Equal(t, gpio.Low, lines[2].L)
	assert.Equal(t, gpio.Low, lines[3].L)
	assert.Equal(t, gpio.Low, lines[4].L)

	require.NoError(t, p.Close())
	assert.Equal(t, gpio.Low, lines[5].L)
}

func TestPeriphPinsErrors(t *testing.T) {
	fakeHost(t)
	w, err := NewPeriphPins()
	require.NoError(t, err)
	assert.Error(t, w.PinMode(40))
	assert.Error(t, w.DigitalWrite(2, true))

	hostInit = func() error { return errors.New("no gpio chip") }
	_, err = NewPeriphPins()
	assert.Error(t, err)
}

func TestGPIOFactoryDrivers(t *testing.T) {
	lines := fakeHost(t)
	p, err := coreind.NewPanel([]factory.ModuleConfig{{Type: "gpio", Conf: map[string]any{"driver": "periph"}}})
	require.NoError(t, err)
	require.NoError(t, p.Show(context.Background(), model.IndicatorBalanced))
	assert.Equal(t, gpio.High, lines[4].L)

	p, err = coreind.NewPanel([]factory.ModuleConfig{{Type: "gpio", Conf: map[string]any{"driver": "memory"}}})
	require.NoError(t, err)
	_, ok := p.(*GPIOPanel).w.(*MemoryPins)
	assert.True(t, ok)

	_, err = coreind.NewPanel([]factory.ModuleConfig{{Type: "gpio", Conf: map[string]any{"driver": "spi"}}})
	assert.Error(t, err)
}
