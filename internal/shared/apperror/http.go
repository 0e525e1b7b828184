package apperror

import (
	"errors"
	"net/http"
)

type HTTPError struct {
	Status  int
	Code    string
	Message string
}

// ToHTTP resolves the status and client-facing message for err. Errors that
// are not an *AppError resolve to a 500 with an empty message so the caller
// can pick an operation-specific one.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
		}
	}

	return HTTPError{
		Status: http.StatusInternalServerError,
		Code:   CodeInternalError,
	}
}

// IsClientError reports whether err maps to a 4xx response.
func IsClientError(err error) bool {
	status := ToHTTP(err).Status
	return status >= 400 && status < 500
}
