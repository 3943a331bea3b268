package config

import "errors"

var (
	ErrRedisAddrMissing   = errors.New("REDIS_ADDR is required")
	ErrInvalidRedisDB     = errors.New("REDIS_DB must be a valid integer")
	ErrDatabaseURLMissing = errors.New("DATABASE_URL is required")
	ErrInvalidWindowClock = errors.New("window clock must be HH:MM within the day")
	ErrInvalidHorizonDays = errors.New("SEARCH_HORIZON_DAYS must be a positive integer")
)
