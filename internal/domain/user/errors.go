package user

import "errors"

var (
	ErrUserNotFound             = errors.New("user not found")
	ErrEmailExists              = errors.New("email already registered")
	ErrRegistrationNumberExists = errors.New("registration number already registered")
	ErrInsufficientPermissions  = errors.New("insufficient permissions")
	ErrInvalidProfilePhoto      = errors.New("invalid profile photo upload")
)
