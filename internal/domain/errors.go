package domain

import "errors"

var (
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrInvalidTimeFactor = errors.New("delivery time factor must be positive")
	ErrInvalidSlotCount  = errors.New("slot count must be positive")
	ErrInvalidClock      = errors.New("invalid clock value")
	ErrInvalidWindow     = errors.New("invalid operating window")

	ErrNoCapacity  = errors.New("no free slot run on the requested date")
	ErrDayConflict = errors.New("day schedule changed concurrently")

	ErrProductNotFound  = errors.New("product not found")
	ErrFarmerNotFound   = errors.New("farmer not found")
	ErrCompanyNotFound  = errors.New("company not found")
	ErrWeighingNotFound = errors.New("weighing not found")
	ErrSettingsNotFound = errors.New("window settings not found")
	ErrAlreadyExists    = errors.New("record already exists")
)
