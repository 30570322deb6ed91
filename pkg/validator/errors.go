package validator

import "errors"

var (
	// ErrInvalidPhoneConfig is returned when phone length bounds or the
	// phone pattern cannot be used.
	ErrInvalidPhoneConfig = errors.New("invalid phone configuration")

	// ErrTagRegistration is returned when a struct tag cannot be registered
	// with a go-playground validator instance.
	ErrTagRegistration = errors.New("failed to register validation tag")
)
