// Package factory provides a small generic registry used to build output
// adapters (indicator panels, metrics sinks) from configuration. Modules are
// defined by a type string and a map of raw settings; factories decode the
// settings into typed structs and return the concrete implementation.
//
//	reg := factory.NewRegistry[indicator.Panel]()
//	_ = reg.Register("gpio", func(conf map[string]any) (indicator.Panel, error) {
//	    var c struct{ Pins map[string]int `json:"pins"` }
//	    if err := factory.Decode(conf, &c); err != nil {
//	        return nil, err
//	    }
//	    return newPanel(c.Pins), nil
//	})
//	p, err := reg.Create(factory.ModuleConfig{Type: "gpio"})
package factory
