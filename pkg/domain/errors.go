package domain

import "errors"

// Common domain errors
var (
	// ErrNotFound is returned when a requested resource is not found
	ErrNotFound = errors.New("resource not found")
	// ErrAlreadyExists is returned when trying to create a resource that already exists
	ErrAlreadyExists = errors.New("resource already exists")
	// ErrValidation is returned when input validation fails
	ErrValidation = errors.New("validation error")
	// ErrUnauthorized is returned when credentials do not match
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidID is returned when id allocation yields a non-positive value
	ErrInvalidID = errors.New("invalid id")
	// ErrNotImplemented marks operations that are not supported yet
	ErrNotImplemented = errors.New("not implemented")
)
