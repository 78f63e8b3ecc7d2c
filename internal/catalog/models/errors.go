package models

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrInvalidArgument = errors.New("invalid arguments")
	ErrPayloadTooLarge = errors.New("payload too large")
)
