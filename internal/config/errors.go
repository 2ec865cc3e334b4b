package config

import "github.com/ayoisaiah/pointage/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errInvalidDuration = &apperr.Error{
		Message: "%s must be between %v and %v",
	}

	errInvalidCLIDuration = &apperr.Error{
		Message: "invalid duration for --%s: %s",
	}

	errInvalidFootprint = &apperr.Error{
		Message: "display item %s must be at least 1, got %d",
	}

	errInvalidView = &apperr.Error{
		Message: "unknown view: %s (must be absent or all)",
	}

	errInvalidPolicy = &apperr.Error{
		Message: "unknown notification policy: %s (must be newly-listed, arrivals, or silent)",
	}

	errInvalidOffset = &apperr.Error{
		Message: "device clock offset must be within ±%v, got %v",
	}

	errInvalidTimeout = &apperr.Error{
		Message: "device timeout must be between 0 and %v, got %v",
	}

	errInvalidCmd = &apperr.Error{
		Message: "notification command is not valid shell syntax",
	}
)
