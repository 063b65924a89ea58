// Package common defines shared sentinel errors used across the back-office
// console. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Store-level errors.
	ErrorNotFound = errors.New("not found")

	// Draft/save errors.
	ErrValidation   = errors.New("validation error")
	ErrUnknownField = errors.New("unknown field")
	ErrInvalidValue = errors.New("invalid value")

	// Controller flow errors.
	ErrInvalidState = errors.New("not allowed in the current view")
	ErrNoDetail     = errors.New("screen has no detail view")
	ErrNoCategory   = errors.New("screen has no category filter")
)
