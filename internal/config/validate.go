package config

import (
	"errors"
	"fmt"
	"time"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSchedule(); err != nil {
		return err
	}
	if c.Search.TopK <= 0 {
		return errors.New("search.top_k must be positive")
	}
	if c.LLM.TimeoutSeconds < 0 {
		return errors.New("llm.timeout_seconds must not be negative")
	}
	return c.validateLogging()
}

func (c *Config) validateSchedule() error {
	opts, err := c.ScheduleOptions()
	if err != nil {
		return err
	}
	if opts.MaxHoursPerDay <= 0 || opts.MaxHoursPerDay > 24 {
		return fmt.Errorf("schedule.max_hours_per_day must be between 1 and 24, got %d", opts.MaxHoursPerDay)
	}
	if c.Schedule.LunchMinutes < 0 {
		return errors.New("schedule.lunch_minutes must not be negative")
	}
	dayEnd := opts.WorkdayStart.Add(time.Duration(opts.MaxHoursPerDay) * time.Hour)
	if opts.LunchAt < opts.WorkdayStart || opts.LunchAt >= dayEnd {
		return fmt.Errorf("schedule.lunch_at %s must fall inside the working day %s-%s", opts.LunchAt, opts.WorkdayStart, dayEnd)
	}
	if opts.LargeCastThreshold < 0 {
		return errors.New("schedule.large_cast_threshold must not be negative")
	}
	if opts.BaseHours <= 0 || opts.LargeCastHours <= 0 {
		return errors.New("schedule.base_hours and schedule.large_cast_hours must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
