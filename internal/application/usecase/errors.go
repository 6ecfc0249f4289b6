package usecase

import "errors"

var (
	ErrInvalidPin  = errors.New("invalid pin data: lat and lng are required")
	ErrInvalidBody = errors.New("invalid request body")
)
