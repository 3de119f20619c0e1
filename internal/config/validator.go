package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/indaco/kopen/internal/tui"
)

// Validate checks every field and returns all problems joined together.
func (c *Config) Validate() error {
	var errs []error

	if c.Kicad == "" {
		errs = append(errs, errors.New("kicad: launcher binary must not be empty"))
	}

	if c.Timeout != "" {
		d, err := time.ParseDuration(c.Timeout)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("timeout: %w", err))
		case d <= 0:
			errs = append(errs, fmt.Errorf("timeout: must be positive, got %s", c.Timeout))
		}
	}

	if c.Theme != "" && !tui.IsValidTheme(c.Theme) {
		errs = append(errs, fmt.Errorf("theme: unknown theme %q (valid: %v)", c.Theme, tui.ValidThemes))
	}

	return errors.Join(errs...)
}
