package domain

import "errors"

var (
	// ErrOrderNotFound maps to 404 on the manual finalize endpoint.
	ErrOrderNotFound = errors.New("order not found")
)
