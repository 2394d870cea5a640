package services

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned, wrapped with a user-facing message, when
// input is rejected before any request is made.
var ErrInvalidInput = errors.New("invalid input")

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}
