package config

import "github.com/Wintoo12/Automation/internal/script"

// Units materializes the configured scripts as runnable units. A script
// without its own interpreter inherits the settings-level one.
func (c *Config) Units() []script.Unit {
	units := make([]script.Unit, 0, len(c.Scripts))
	for _, sc := range c.Scripts {
		interpreter := sc.Interpreter
		if interpreter == "" {
			interpreter = c.Settings.Interpreter
		}
		units = append(units, script.Unit{
			Path:        sc.Path,
			Repetitions: sc.Repetitions,
			Interpreter: interpreter,
		})
	}
	return units
}
