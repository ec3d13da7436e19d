package domain

import "errors"

var (
	ErrNotFound                = errors.New("not found")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrVehicleUnavailable      = errors.New("vehicle is not available for booking")
	ErrUnauthorized            = errors.New("unauthorized")
	ErrDuplicateReference      = errors.New("reservation reference already exists")
)
