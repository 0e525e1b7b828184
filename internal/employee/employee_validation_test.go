package employee_test

import (
	"encoding/json"
	"testing"

	"github.com/naveen224793-boop/assignment3/internal/employee"
	employeeerrors "github.com/naveen224793-boop/assignment3/internal/employee/errors"

	"github.com/stretchr/testify/assert"
)

func createReq(salary string) employee.CreateEmployeeRequest {
	req := employee.CreateEmployeeRequest{Name: " A ", Location: "X", Position: "Dev"}
	if salary != "" {
		req.Salary = json.RawMessage(salary)
	}
	return req
}

func TestValidateCreate(t *testing.T) {
	tests := []struct {
		name    string
		req     employee.CreateEmployeeRequest
		want    employee.EmployeeFields
		wantErr error
	}{
		{
			name: "trims strings",
			req:  createReq(`42`),
			want: employee.EmployeeFields{Name: "A", Location: "X", Position: "Dev", Salary: 42},
		},
		{
			name: "zero salary",
			req:  createReq(`0`),
			want: employee.EmployeeFields{Name: "A", Location: "X", Position: "Dev", Salary: 0},
		},
		{
			name: "numeric string salary",
			req:  createReq(`" 1200.50 "`),
			want: employee.EmployeeFields{Name: "A", Location: "X", Position: "Dev", Salary: 1200.5},
		},
		{name: "absent salary", req: createReq(``), wantErr: employeeerrors.ErrMissingRequiredFields},
		{name: "null salary", req: createReq(`null`), wantErr: employeeerrors.ErrMissingRequiredFields},
		{name: "blank string salary", req: createReq(`"  "`), wantErr: employeeerrors.ErrMissingRequiredFields},
		{name: "negative salary", req: createReq(`-5`), wantErr: employeeerrors.ErrInvalidSalary},
		{name: "word salary", req: createReq(`"ten"`), wantErr: employeeerrors.ErrInvalidSalary},
		{name: "NaN string salary", req: createReq(`"NaN"`), wantErr: employeeerrors.ErrInvalidSalary},
		{name: "boolean salary", req: createReq(`true`), wantErr: employeeerrors.ErrInvalidSalary},
		{name: "object salary", req: createReq(`{"amount":1}`), wantErr: employeeerrors.ErrInvalidSalary},
		{
			name:    "blank location",
			req:     employee.CreateEmployeeRequest{Name: "A", Location: "\t", Position: "Dev", Salary: json.RawMessage(`1`)},
			wantErr: employeeerrors.ErrMissingRequiredFields,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := employee.ValidateCreate(tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateUpdate(t *testing.T) {
	t.Run("id checked before fields", func(t *testing.T) {
		_, _, err := employee.ValidateUpdate(employee.UpdateEmployeeRequest{})
		assert.ErrorIs(t, err, employeeerrors.ErrMissingEmployeeID)
	})

	t.Run("blank id", func(t *testing.T) {
		_, _, err := employee.ValidateUpdate(employee.UpdateEmployeeRequest{
			ID: "  ", Name: "A", Location: "X", Position: "Dev", Salary: json.RawMessage(`1`),
		})
		assert.ErrorIs(t, err, employeeerrors.ErrMissingEmployeeID)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, _, err := employee.ValidateUpdate(employee.UpdateEmployeeRequest{ID: testID, Name: "A"})
		assert.ErrorIs(t, err, employeeerrors.ErrMissingRequiredFields)
	})

	t.Run("valid", func(t *testing.T) {
		id, fields, err := employee.ValidateUpdate(employee.UpdateEmployeeRequest{
			ID: " " + testID + " ", Name: "A", Location: "X", Position: "Dev", Salary: json.RawMessage(`"7"`),
		})
		assert.NoError(t, err)
		assert.Equal(t, testID, id)
		assert.Equal(t, float64(7), fields.Salary)
	})
}
