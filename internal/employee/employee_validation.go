package employee

import (
	"bytes"
	"errors"
	"math"
	"strconv"
	"strings"

	employeeerrors "github.com/naveen224793-boop/assignment3/internal/employee/errors"
	"github.com/naveen224793-boop/assignment3/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	json "github.com/goccy/go-json"
)

var validate = apperror.NewValidator()

// fieldsRule is the normalized shape checked by the validator.
type fieldsRule struct {
	Name     string   `json:"name" validate:"required"`
	Location string   `json:"location" validate:"required"`
	Position string   `json:"position" validate:"required"`
	Salary   *float64 `json:"salary" validate:"required,gte=0"`
}

// ValidateCreate trims and checks a create body. It never touches the store.
func ValidateCreate(req CreateEmployeeRequest) (EmployeeFields, error) {
	salary, err := parseSalary(req.Salary)
	if err != nil {
		return EmployeeFields{}, err
	}

	rule := fieldsRule{
		Name:     strings.TrimSpace(req.Name),
		Location: strings.TrimSpace(req.Location),
		Position: strings.TrimSpace(req.Position),
		Salary:   salary,
	}

	if err := validate.Struct(rule); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				if fe.Tag() == "required" {
					return EmployeeFields{}, employeeerrors.ErrMissingRequiredFields
				}
			}
		}
		return EmployeeFields{}, apperror.MapValidationError(err)
	}

	return EmployeeFields{
		Name:     rule.Name,
		Location: rule.Location,
		Position: rule.Position,
		Salary:   *rule.Salary,
	}, nil
}

// ValidateUpdate checks the id before the business fields so a missing id
// always yields its own message.
func ValidateUpdate(req UpdateEmployeeRequest) (string, EmployeeFields, error) {
	id := strings.TrimSpace(req.ID)
	if id == "" {
		return "", EmployeeFields{}, employeeerrors.ErrMissingEmployeeID
	}

	fields, err := ValidateCreate(req.fields())
	if err != nil {
		return "", EmployeeFields{}, err
	}
	return id, fields, nil
}

// parseSalary returns nil for an absent, null or blank salary. Numeric
// strings are accepted; any other shape is invalid.
func parseSalary(raw []byte) (*float64, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, employeeerrors.ErrInvalidSalary
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil, nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, employeeerrors.ErrInvalidSalary
		}
		return &v, nil
	}

	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, employeeerrors.ErrInvalidSalary
	}
	return &v, nil
}
