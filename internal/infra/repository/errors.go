package repository

import "errors"

var (
	ErrRedisConnection = errors.New("redis connection error")
	ErrInvalidDayData  = errors.New("invalid day schedule data")
)
