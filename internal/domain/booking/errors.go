package booking

import "errors"

var (
	ErrMissingFields       = errors.New("missing fields")
	ErrUnknownUser         = errors.New("user not found")
	ErrInvalidDate         = errors.New("invalid date")
	ErrInvalidTime         = errors.New("invalid time")
	ErrWeekendNotAllowed   = errors.New("no bookings on weekends")
	ErrOutsideWorkingHours = errors.New("outside working hours")
	ErrSlotConflict        = errors.New("time already booked")
	ErrInvalidStatus       = errors.New("invalid status")
	ErrNotFound            = errors.New("booking not found")
	ErrForbidden           = errors.New("not allowed")
)
