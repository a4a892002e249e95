package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by services, repositories and controllers.
var (
	ErrNotFound         = errors.New("not found")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrInvalidInput     = errors.New("invalid input")
	ErrCapacityExceeded = errors.New("event is full")
	ErrDuplicateToken   = errors.New("registration token already exists")
)

// Registration validation errors. Each wraps ErrInvalidInput.
var (
	ErrInvalidEmail        = fmt.Errorf("%w: email must contain exactly one @", ErrInvalidInput)
	ErrInvalidAge          = fmt.Errorf("%w: age must be between %d and %d", ErrInvalidInput, MinAge, MaxAge)
	ErrInvalidStudyYear    = fmt.Errorf("%w: study year must be between %d and %d", ErrInvalidInput, MinStudyYear, MaxStudyYear)
	ErrInvalidName         = fmt.Errorf("%w: name is required", ErrInvalidInput)
	ErrRegistrationNotOpen = errors.New("registration has not opened yet")
)
