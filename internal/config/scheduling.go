package config

import (
	"os"
	"strconv"

	"github.com/agrocoop-dev/delivery-scheduling/internal/domain"
)

const (
	windowOpensAtEnv     = "WINDOW_OPENS_AT"
	windowClosesAtEnv    = "WINDOW_CLOSES_AT"
	searchHorizonDaysEnv = "SEARCH_HORIZON_DAYS"

	defaultWindowOpensAt  = "08:00"
	defaultWindowClosesAt = "18:00"
)

// SchedulingConfig carries the fallback operating window used until a
// settings row exists, plus the availability search horizon.
type SchedulingConfig struct {
	DefaultWindow domain.OperatingWindow
	HorizonDays   int
}

func LoadSchedulingConfig() (*SchedulingConfig, error) {
	opensRaw := os.Getenv(windowOpensAtEnv)
	if opensRaw == "" {
		opensRaw = defaultWindowOpensAt
	}
	closesRaw := os.Getenv(windowClosesAtEnv)
	if closesRaw == "" {
		closesRaw = defaultWindowClosesAt
	}

	opens, err := domain.ParseClock(opensRaw)
	if err != nil {
		return nil, ErrInvalidWindowClock
	}
	closes, err := domain.ParseClock(closesRaw)
	if err != nil {
		return nil, ErrInvalidWindowClock
	}

	window := domain.OperatingWindow{OpensAt: opens, ClosesAt: closes}
	if err := window.Validate(); err != nil {
		return nil, ErrInvalidWindowClock
	}

	horizonDays := 0 // 0 lets the searcher apply its default
	if v := os.Getenv(searchHorizonDaysEnv); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			return nil, ErrInvalidHorizonDays
		}
		horizonDays = parsed
	}

	return &SchedulingConfig{
		DefaultWindow: window,
		HorizonDays:   horizonDays,
	}, nil
}
