package employee

import (
	stdjson "encoding/json"
	"time"
)

// CreateEmployeeRequest mirrors the create body. Absent and empty strings
// both count as missing; Salary stays raw so that an absent value, an empty
// string and 0 can be told apart during validation.
type CreateEmployeeRequest struct {
	Name     string             `json:"name"`
	Location string             `json:"location"`
	Position string             `json:"position"`
	Salary   stdjson.RawMessage `json:"salary"`
}

// UpdateEmployeeRequest carries the target id in the body, not the path.
type UpdateEmployeeRequest struct {
	ID       string             `json:"_id"`
	Name     string             `json:"name"`
	Location string             `json:"location"`
	Position string             `json:"position"`
	Salary   stdjson.RawMessage `json:"salary"`
}

func (r UpdateEmployeeRequest) fields() CreateEmployeeRequest {
	return CreateEmployeeRequest{
		Name:     r.Name,
		Location: r.Location,
		Position: r.Position,
		Salary:   r.Salary,
	}
}

type EmployeeResponse struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Position  string    `json:"position"`
	Salary    float64   `json:"salary"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
