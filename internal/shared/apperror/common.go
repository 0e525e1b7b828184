package apperror

import "net/http"

var (
	ErrNotFound = New(
		CodeNotFound,
		"Route not found",
		http.StatusNotFound,
	)

	ErrInvalidBody = New(
		CodeInvalidInput,
		"Invalid request body",
		http.StatusBadRequest,
	)

	ErrTooManyRequests = New(
		CodeTooMany,
		"Too many requests",
		http.StatusTooManyRequests,
	)

	ErrStoreUnavailable = New(
		CodeServiceUnavailable,
		"Record store is unavailable",
		http.StatusServiceUnavailable,
	)
)
