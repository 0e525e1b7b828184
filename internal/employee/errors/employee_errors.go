package employeeerrors

import (
	"net/http"

	"github.com/naveen224793-boop/assignment3/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrMissingEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Employee ID is required for update",
		http.StatusBadRequest,
	)
	ErrMissingRequiredFields = apperror.New(
		apperror.CodeInvalidInput,
		"All fields (name, location, position, salary) are required",
		http.StatusBadRequest,
	)
	ErrInvalidSalary = apperror.InvalidField("Salary")
)
