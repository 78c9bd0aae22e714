package services

import (
	"errors"
)

var (
	// ErrInvalidUserID is returned when a user ID is not an unsigned decimal integer
	ErrInvalidUserID = errors.New("invalid user ID")

	// ErrInvalidUserPayload is returned when a create body does not decode into a user
	ErrInvalidUserPayload = errors.New("invalid user payload")
)

// IsBadRequest reports whether err was caused by the caller's input
func IsBadRequest(err error) bool {
	return errors.Is(err, ErrInvalidUserID) || errors.Is(err, ErrInvalidUserPayload)
}
