package config

import (
	"fmt"

	"github.com/Wintoo12/Automation/internal/logging"
)

// maxWorkers caps the worker pool; each worker can hold a live child
// process, so an absurd value mostly exhausts the host.
const maxWorkers = 64

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Path    string
	Message string
}

// Error returns the error message.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidateConfig performs semantic validation of a parsed configuration
// and returns every problem found.
func ValidateConfig(cfg *Config) []ValidationError {
	var errors []ValidationError

	if len(cfg.Scripts) == 0 {
		errors = append(errors, ValidationError{
			Path:    "scripts",
			Message: "at least one script is required",
		})
	}

	for i, sc := range cfg.Scripts {
		if sc.Path == "" {
			errors = append(errors, ValidationError{
				Path:    fmt.Sprintf("scripts[%d].path", i),
				Message: "path is required",
			})
		}
		if sc.Repetitions < 0 {
			errors = append(errors, ValidationError{
				Path:    fmt.Sprintf("scripts[%d].repetitions", i),
				Message: "repetitions cannot be negative",
			})
		}
	}

	s := cfg.Settings

	if s.Workers < 1 {
		errors = append(errors, ValidationError{
			Path:    "settings.workers",
			Message: "workers must be at least 1",
		})
	}
	if s.Workers > maxWorkers {
		errors = append(errors, ValidationError{
			Path:    "settings.workers",
			Message: fmt.Sprintf("workers cannot exceed %d", maxWorkers),
		})
	}

	if s.MinDelay < 0 {
		errors = append(errors, ValidationError{
			Path:    "settings.minDelay",
			Message: "minDelay cannot be negative",
		})
	}
	if s.MaxDelay < s.MinDelay {
		errors = append(errors, ValidationError{
			Path:    "settings.maxDelay",
			Message: "maxDelay must be greater than or equal to minDelay",
		})
	}

	if _, err := s.TimeoutDuration(); err != nil {
		errors = append(errors, ValidationError{
			Path:    "settings.timeout",
			Message: err.Error(),
		})
	}

	if s.Log.Level != "" && !logging.IsValidLevel(s.Log.Level) {
		errors = append(errors, ValidationError{
			Path:    "settings.log.level",
			Message: fmt.Sprintf("invalid log level %q, must be one of %v", s.Log.Level, logging.ValidLevels()),
		})
	}
	if s.Log.MaxSizeMB < 0 {
		errors = append(errors, ValidationError{
			Path:    "settings.log.maxSizeMB",
			Message: "maxSizeMB cannot be negative",
		})
	}
	if s.Log.MaxBackups < 0 {
		errors = append(errors, ValidationError{
			Path:    "settings.log.maxBackups",
			Message: "maxBackups cannot be negative",
		})
	}

	return errors
}
