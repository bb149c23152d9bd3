package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound = errors.New("not found")
	ErrExists   = errors.New("already exists")
	ErrInvalid  = errors.New("invalid")
)

func NewError(model string, err error) error {
	return fmt.Errorf("%s: %w", strings.ToLower(model), err)
}

// Invalidf reports a malformed value of model. The result matches ErrInvalid.
func Invalidf(model string, format string, args ...any) error {
	return NewError(model, fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...)))
}
