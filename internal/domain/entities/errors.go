package entities

import "errors"

// Domain errors
var (
	ErrEmptyTitle   = errors.New("title must not be empty")
	ErrEmptyContent = errors.New("content must not be empty")
	ErrEmptyStatus  = errors.New("status must not be empty")
	ErrInvalidDate  = errors.New("date must be a YYYY-MM-DD calendar date")
)
