package config

import (
	"fmt"

	"github.com/kilianp07/zoa/core/factory"
)

// IndicatorConfig lists the panels mirroring the four status outputs.
type IndicatorConfig struct {
	Panels []factory.ModuleConfig `json:"panels"`
}

// SetDefaults uses the console panel when none is configured.
func (c *IndicatorConfig) SetDefaults() {
	if len(c.Panels) == 0 {
		c.Panels = []factory.ModuleConfig{{Type: "console"}}
	}
}

// Validate checks every panel has a type.
func (c IndicatorConfig) Validate() error {
	for i, p := range c.Panels {
		if p.Type == "" {
			return fmt.Errorf("panel %d has no type", i)
		}
	}
	return nil
}
