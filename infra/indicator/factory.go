package indicator

import (
	"github.com/kilianp07/zoa/core/factory"
	coreind "github.com/kilianp07/zoa/core/indicator"
	"github.com/kilianp07/zoa/infra/mqtt"
)

// init registers built-in indicator panels.
func init() {
	_ = coreind.RegisterPanel("nop", func(map[string]any) (coreind.Panel, error) {
		return coreind.NopPanel{}, nil
	})

	_ = coreind.RegisterPanel("console", func(map[string]any) (coreind.Panel, error) {
		return NewConsolePanel(nil), nil
	})

	_ = coreind.RegisterPanel("gpio", func(conf map[string]any) (coreind.Panel, error) {
		var c struct {
			Driver string         `json:"driver"`
			Pins   map[string]int `json:"pins"`
		}
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		pins, err := PinMapFromColors(c.Pins)
		if err != nil {
			return nil, err
		}
		w, err := newPinWriter(c.Driver)
		if err != nil {
			return nil, err
		}
		panel, err := NewGPIOPanel(w, pins)
		if err != nil {
			return nil, err
		}
		return panel, nil
	})

	_ = coreind.RegisterPanel("mqtt", func(conf map[string]any) (coreind.Panel, error) {
		var c struct {
			mqtt.Config `json:",squash"`
			TopicPrefix string `json:"topic_prefix"`
		}
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		pub, err := mqtt.NewPahoPublisher(c.Config)
		if err != nil {
			return nil, err
		}
		return NewMQTTPanel(pub, c.TopicPrefix), nil
	})
}
