package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/naveen224793-boop/assignment3/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
)

func TestAppError_WithErr(t *testing.T) {
	cause := errors.New("no documents in result")
	err := apperror.ErrNotFound.WithErr(cause)

	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Route not found: no documents in result", err.Error())
	assert.Nil(t, apperror.ErrNotFound.Err, "sentinel must stay untouched")
}

func TestAppError_IsMatchesCodeAndMessage(t *testing.T) {
	a := apperror.New(apperror.CodeInvalidInput, "Salary is invalid", http.StatusBadRequest)
	b := apperror.InvalidField("Salary")
	c := apperror.InvalidField("Name")

	assert.ErrorIs(t, a, b)
	assert.NotErrorIs(t, a, c)
	assert.NotErrorIs(t, a, errors.New("Salary is invalid"))
}

func TestWrap(t *testing.T) {
	assert.Nil(t, apperror.Wrap(nil, apperror.CodeInternalError, "x", http.StatusInternalServerError))

	err := apperror.Wrap(errors.New("eof"), apperror.CodeInvalidInput, "bad", http.StatusBadRequest)
	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus)
	assert.EqualError(t, err, "bad: eof")
}

func TestToHTTP(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"app error", apperror.ErrTooManyRequests, http.StatusTooManyRequests, "Too many requests"},
		{"wrapped app error", fmt.Errorf("handler: %w", apperror.ErrStoreUnavailable), http.StatusServiceUnavailable, "Record store is unavailable"},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := apperror.ToHTTP(tt.err)
			assert.Equal(t, tt.status, got.Status)
			assert.Equal(t, tt.msg, got.Message)
		})
	}

	assert.True(t, apperror.IsClientError(apperror.ErrInvalidBody))
	assert.False(t, apperror.IsClientError(errors.New("boom")))
}

func TestMapValidationError(t *testing.T) {
	type payload struct {
		BaseSalary *float64 `json:"base_salary" validate:"required,gte=0"`
		FullName   string   `json:"full_name" validate:"required"`
	}
	v := apperror.NewValidator()

	t.Run("required uses json name", func(t *testing.T) {
		err := apperror.MapValidationError(v.Struct(payload{FullName: "A"}))
		assert.EqualError(t, err, "Base Salary is required")
	})

	t.Run("other tags are invalid", func(t *testing.T) {
		neg := -1.0
		err := apperror.MapValidationError(v.Struct(payload{BaseSalary: &neg, FullName: "A"}))
		assert.EqualError(t, err, "Base Salary is invalid")
	})

	t.Run("non validator error", func(t *testing.T) {
		err := apperror.MapValidationError(errors.New("x"))
		assert.EqualError(t, err, "Invalid input")
	})
}
