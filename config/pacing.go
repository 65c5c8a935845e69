package config

import "fmt"

// PacingConfig scales the demo holds between steps. An absent scale means 1;
// an explicit 0 is kept.
type PacingConfig struct {
	// Scale multiplies every hold; 0 runs without waiting.
	Scale float64 `json:"scale"`
}

// Validate rejects negative scales.
func (c PacingConfig) Validate() error {
	if c.Scale < 0 {
		return fmt.Errorf("scale must not be negative, got %v", c.Scale)
	}
	return nil
}
