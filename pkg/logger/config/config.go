package config

import (
	"errors"
	"fmt"
)

// log levels, same values as zapcore.Level
const (
	DEBUG_LEVEL = -1
	INFO_LEVEL  = 0
	WARN_LEVEL  = 1
	ERROR_LEVEL = 2
)

var ErrInvalidConfiguration = errors.New("invalid logger configuration")

type Configuration struct {
	Level      int
	TimeFormat string
}

func (c Configuration) Validate() error {
	if c.Level < DEBUG_LEVEL || c.Level > ERROR_LEVEL {
		return fmt.Errorf("log level %d not in [%d, %d]: %w", c.Level, DEBUG_LEVEL, ERROR_LEVEL, ErrInvalidConfiguration)
	}
	if c.TimeFormat == "" {
		return fmt.Errorf("empty time format: %w", ErrInvalidConfiguration)
	}
	return nil
}
